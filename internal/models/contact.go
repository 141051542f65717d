package models

// ContactRequest is a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone"`
	Message string `json:"message" form:"message" validate:"required"`
}
