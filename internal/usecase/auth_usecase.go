package usecase

import (
	"context"
	"errors"
	"strings"

	"tienda_admin/internal/domain/entities"
	"tienda_admin/internal/session"
	"tienda_admin/internal/usecase/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// IAuthUseCase manages the upstream session lifecycle.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (entities.Session, error)
	Logout(ctx context.Context)
	Current() (entities.Session, bool)
	Authorized(token string) bool
}

type AuthUseCase struct {
	gateway  interfaces.ISyncGateway
	sessions *session.Manager
	repo     interfaces.IOrderRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(gateway interfaces.ISyncGateway, sessions *session.Manager, repo interfaces.IOrderRepository) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, sessions: sessions, repo: repo}
}

// Login authenticates against the upstream and opens the session on
// success. An upstream rejection surfaces as ErrInvalidCredentials so the
// login view can present it inline.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (entities.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Session{}, ErrInvalidCredentials
	}

	token, user, err := u.gateway.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, interfaces.ErrUnauthenticated) {
			return entities.Session{}, ErrInvalidCredentials
		}
		return entities.Session{}, err
	}

	return u.sessions.Open(token, user), nil
}

// Logout closes the session and drops the session-scoped order store.
func (u *AuthUseCase) Logout(ctx context.Context) {
	u.sessions.Close()
	u.repo.Clear()
	log.Infof("session closed")
}

func (u *AuthUseCase) Current() (entities.Session, bool) {
	return u.sessions.Current()
}

// Authorized reports whether the presented bearer token belongs to the
// active session. This is the whole authorization model: a token you either
// have or you don't.
func (u *AuthUseCase) Authorized(token string) bool {
	return token != "" && token == u.sessions.Token()
}
