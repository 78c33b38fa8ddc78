package request

// LoginRequest carries operator credentials forwarded to the upstream.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
