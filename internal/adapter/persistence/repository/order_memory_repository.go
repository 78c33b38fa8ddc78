package repository

import (
	"sync"
	"sync/atomic"

	"tienda_admin/internal/domain/entities"
	"tienda_admin/internal/usecase/interfaces"
)

// OrderMemoryRepository is the session-scoped order store.
//
// Orders live only in memory: the upstream API is the system of record and
// the collection is rebuilt from it on every refresh. Iteration order is the
// order the upstream returned, which downstream aggregation depends on.
//
// Concurrent refreshes are resolved by generation: each refresh reserves a
// generation before fetching and ReplaceAll drops any payload whose
// generation is older than the last one applied.
type OrderMemoryRepository struct {
	mu      sync.RWMutex
	orders  []entities.Order
	index   map[string]int
	applied uint64

	gen atomic.Uint64
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{index: map[string]int{}}
}

func (r *OrderMemoryRepository) Snapshot() []entities.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *OrderMemoryRepository) GetByID(id string) (entities.Order, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return entities.Order{}, false
	}
	return r.orders[i], true
}

func (r *OrderMemoryRepository) Put(o entities.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.index[o.ID]; ok {
		r.orders[i] = o
		return
	}
	r.index[o.ID] = len(r.orders)
	r.orders = append(r.orders, o)
}

func (r *OrderMemoryRepository) NextGeneration() uint64 {
	return r.gen.Add(1)
}

func (r *OrderMemoryRepository) ReplaceAll(generation uint64, orders []entities.Order) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if generation <= r.applied {
		return false
	}
	r.applied = generation
	r.orders = make([]entities.Order, len(orders))
	copy(r.orders, orders)
	r.index = make(map[string]int, len(orders))
	for i, o := range r.orders {
		r.index[o.ID] = i
	}
	return true
}

func (r *OrderMemoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = nil
	r.index = map[string]int{}
	r.applied = 0
	r.gen.Store(0)
}

func (r *OrderMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
