package holiday

type CreateHolidayRequest struct {
	Name        string `json:"name" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// UpdateHolidayRequest adalah partial update: field nil tidak disentuh.
type UpdateHolidayRequest struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

type HolidayResponse struct {
	Row         int    `json:"row"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}
