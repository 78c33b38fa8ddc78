package entities

import "time"

// User is the operator account returned by the upstream login call.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"createdAt"`
	LastLogin int64  `json:"lastLogin"`
}

// Session is the authenticated upstream session held for the lifetime of an
// operator login. The token is passed explicitly to every gateway call; no
// component reads it from ambient state.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
