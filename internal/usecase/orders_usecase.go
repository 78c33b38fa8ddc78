package usecase

import (
	"context"
	"errors"
	"sync"

	"tienda_admin/internal/domain/entities"
	"tienda_admin/internal/session"
	"tienda_admin/internal/usecase/interfaces"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("usecase")

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNoActiveSession   = errors.New("no active session")
)

// IOrdersUseCase exposes the order lifecycle operations.
//
// Every mutation round-trips through the sync gateway: the store is only
// updated with the order the upstream returns, never with a locally built
// optimistic copy, so upstream enrichment (attended fields) is never lost
// and a failed call leaves the store untouched.
type IOrdersUseCase interface {
	List(ctx context.Context) []entities.Order
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Refresh(ctx context.Context) (int, error)
	Acknowledge(ctx context.Context, id string) (entities.Order, error)
	Transition(ctx context.Context, id string, target entities.OrderStatus) (entities.Order, error)
}

type OrdersUseCase struct {
	repo     interfaces.IOrderRepository
	gateway  interfaces.ISyncGateway
	sessions *session.Manager

	// serializes acknowledgements so two quick opens of the same new
	// order produce a single upstream transition
	ackMu sync.Mutex
}

var _ IOrdersUseCase = (*OrdersUseCase)(nil)

func NewOrdersUseCase(repo interfaces.IOrderRepository, gateway interfaces.ISyncGateway, sessions *session.Manager) *OrdersUseCase {
	return &OrdersUseCase{repo: repo, gateway: gateway, sessions: sessions}
}

// List returns the current store snapshot without touching the upstream.
func (u *OrdersUseCase) List(ctx context.Context) []entities.Order {
	return u.repo.Snapshot()
}

func (u *OrdersUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	o, ok := u.repo.GetByID(id)
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// Refresh pulls the full order list from the upstream and swaps the store.
// The generation reserved before the fetch guards against a concurrent
// refresh finishing later with older data.
func (u *OrdersUseCase) Refresh(ctx context.Context) (int, error) {
	token := u.sessions.Token()
	if token == "" {
		return 0, ErrNoActiveSession
	}

	generation := u.repo.NextGeneration()
	orders, err := u.gateway.FetchAll(ctx, token)
	if err != nil {
		return 0, err
	}

	if !u.repo.ReplaceAll(generation, orders) {
		log.Debugf("refresh generation %d superseded, dropping %d orders", generation, len(orders))
		return u.repo.Len(), nil
	}
	log.Infof("order store refreshed with %d orders", len(orders))
	return len(orders), nil
}

// Acknowledge performs the explicit new → processing transition that marks
// an order as attended. Acknowledging an order that is already processing is
// a no-op returning the stored order, which makes a double-open harmless.
func (u *OrdersUseCase) Acknowledge(ctx context.Context, id string) (entities.Order, error) {
	u.ackMu.Lock()
	defer u.ackMu.Unlock()

	o, ok := u.repo.GetByID(id)
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	if o.Status == entities.OrderStatusProcessing {
		return o, nil
	}
	if o.Status != entities.OrderStatusNew {
		return entities.Order{}, ErrInvalidTransition
	}
	return u.dispatch(ctx, o, entities.OrderStatusProcessing)
}

// Transition requests the status edge current → target for the given order.
// Illegal edges fail with ErrInvalidTransition before any upstream call.
func (u *OrdersUseCase) Transition(ctx context.Context, id string, target entities.OrderStatus) (entities.Order, error) {
	if !target.Valid() {
		return entities.Order{}, ErrInvalidStatus
	}

	o, ok := u.repo.GetByID(id)
	if !ok {
		return entities.Order{}, ErrOrderNotFound
	}
	if !o.Status.CanTransitionTo(target) {
		return entities.Order{}, ErrInvalidTransition
	}
	return u.dispatch(ctx, o, target)
}

// dispatch sends the transition upstream and stores the returned record.
// On failure the store is left exactly as it was.
func (u *OrdersUseCase) dispatch(ctx context.Context, o entities.Order, target entities.OrderStatus) (entities.Order, error) {
	token := u.sessions.Token()
	if token == "" {
		return entities.Order{}, ErrNoActiveSession
	}

	updated, err := u.gateway.SetStatus(ctx, token, o.ID, target)
	if err != nil {
		log.Warningf("transition %s -> %s for order %s failed: %v", o.Status, target, o.ID, err)
		return entities.Order{}, err
	}

	u.repo.Put(updated)
	log.Infof("order %s transitioned %s -> %s", o.ID, o.Status, updated.Status)
	return updated, nil
}
