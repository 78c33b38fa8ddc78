package interfaces

import (
	"context"
	"errors"
	"fmt"

	"tienda_admin/internal/domain/entities"
)

var (
	// ErrUnauthenticated is returned when no token is available or the
	// upstream rejects the one provided.
	ErrUnauthenticated = errors.New("not authenticated against upstream")
	// ErrUnreachable wraps transport-level failures (DNS, refused
	// connections, timeouts).
	ErrUnreachable = errors.New("upstream unreachable")
)

// StatusError is returned for non-2xx upstream responses other than 401/403.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// ISyncGateway abstracts the upstream commerce API.
//
// Every call takes the session token explicitly; the gateway holds no
// authentication state of its own. The returned Order values are already
// normalized into the internal shape.
type ISyncGateway interface {
	Login(ctx context.Context, username, password string) (token string, user entities.User, err error)
	FetchAll(ctx context.Context, token string) ([]entities.Order, error)
	SetStatus(ctx context.Context, token, orderID string, status entities.OrderStatus) (entities.Order, error)
	DashboardAnalytics(ctx context.Context, token string) (entities.AnalyticsData, error)
}
