package interfaces

import "tienda_admin/internal/domain/entities"

// IOrderRepository abstracts the in-memory order store for the current
// session.
//
// Replacement is generation-guarded: callers reserve a generation with
// NextGeneration before starting a fetch and pass it to ReplaceAll, so a
// response from a superseded fetch can never overwrite newer state.
type IOrderRepository interface {
	// Snapshot returns a copy of the stored orders in insertion order.
	Snapshot() []entities.Order
	// GetByID returns the stored order with the given id.
	GetByID(id string) (entities.Order, bool)
	// Put upserts a single order, keeping its position when it already
	// exists.
	Put(o entities.Order)
	// NextGeneration reserves the next refresh generation.
	NextGeneration() uint64
	// ReplaceAll swaps the whole collection. It reports false, without
	// mutating anything, when a replacement with a newer generation has
	// already been applied.
	ReplaceAll(generation uint64, orders []entities.Order) bool
	// Clear drops all orders and resets the generation guard.
	Clear()
	// Len returns the number of stored orders.
	Len() int
}
