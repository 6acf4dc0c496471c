package document

type CreateDocumentRequest struct {
	Email        string `json:"email" binding:"required,email"`
	DocumentType string `json:"document_type" binding:"required"`
	Reason       string `json:"reason"`
}

type DocumentResponse struct {
	Row          int    `json:"row"`
	Email        string `json:"email"`
	DocumentType string `json:"document_type"`
	Reason       string `json:"reason,omitempty"`
	Status       string `json:"status"`
}

type CreateDocumentResponse struct {
	Row    int    `json:"row"`
	Status string `json:"status"`
}
