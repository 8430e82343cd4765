package dto

// Credentials This is necessary to prevent any Mass Assignment Vulnerability attack
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
