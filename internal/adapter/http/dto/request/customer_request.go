package request

type CustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	ContactInfo string `json:"contactInfo" binding:"required"`
}
