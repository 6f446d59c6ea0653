package dto

// LoginRequest describes admin login payload.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
