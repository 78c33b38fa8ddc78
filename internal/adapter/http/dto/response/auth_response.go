package response

import (
	"time"

	"tienda_admin/internal/domain/entities"
)

type SessionResponse struct {
	Token     string        `json:"token"`
	User      entities.User `json:"user"`
	CreatedAt time.Time     `json:"created_at"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{Token: s.Token, User: s.User, CreatedAt: s.CreatedAt}
}
