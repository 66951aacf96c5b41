package request_models

// LoginRequest accepts an email or, for couples, the bare username.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
