package employee

import "io"

type CreateEmployeeForm struct {
	Email       string `form:"email" binding:"required,email"`
	Name        string `form:"name" binding:"required"`
	Position    string `form:"position" binding:"required"`
	Department  string `form:"department" binding:"required"`
	Contact     string `form:"contact" binding:"required"`
	JoiningDate string `form:"joining_date" binding:"required"`
}

// PhotoUpload adalah isi file multipart yang diteruskan handler ke service.
type PhotoUpload struct {
	Name     string
	MimeType string
	Content  io.Reader
}

// UpdateEmployeeRequest adalah partial update: field nil tidak disentuh.
type UpdateEmployeeRequest struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	Name        *string `json:"name"`
	Position    *string `json:"position"`
	Department  *string `json:"department"`
	Contact     *string `json:"contact"`
	JoiningDate *string `json:"joining_date"`
}

type EmployeeResponse struct {
	Row          int    `json:"row"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Department   string `json:"department"`
	Contact      string `json:"contact"`
	JoiningDate  string `json:"joining_date"`
	PhotoFileID  string `json:"photo_file_id,omitempty"`
	BaseFolderID string `json:"base_folder_id,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
}

type CreateEmployeeResponse struct {
	Row         int    `json:"row"`
	FolderID    string `json:"folder_id"`
	PhotoFileID string `json:"photo_file_id"`
}

type MutationResponse struct {
	Status string `json:"status"`
	Row    int    `json:"row"`
}

type ReplacePhotoResponse struct {
	Status      string `json:"status"`
	PhotoFileID string `json:"photo_file_id"`
}
