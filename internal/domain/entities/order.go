package entities

import "time"

// OrderStatus represents the fulfillment lifecycle of an order.
//
// Domain notes:
//   - The upstream commerce API is the source of truth for order state; this
//     service only requests transitions and mirrors the result.
//   - completed and cancelled are terminal: once reached no further
//     transition is legal.

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// allowedEdges holds the legal status transitions:
//
//	new → processing → {completed, cancelled}
var allowedEdges = map[OrderStatus][]OrderStatus{
	OrderStatusNew:        {OrderStatusProcessing},
	OrderStatusProcessing: {OrderStatusCompleted, OrderStatusCancelled},
}

// Valid reports whether s is one of the four known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s is an absorbing state.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the edge s → target is legal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, t := range allowedEdges[s] {
		if t == target {
			return true
		}
	}
	return false
}

// AllowedTargets returns the statuses reachable from s in one transition.
// Terminal states return an empty slice.
func (s OrderStatus) AllowedTargets() []OrderStatus {
	targets := allowedEdges[s]
	out := make([]OrderStatus, len(targets))
	copy(out, targets)
	return out
}

// Customer is the structured buyer record attached to an order. The upstream
// sometimes serves it as a bare name string; the gateway normalizes both
// shapes into this one.
type Customer struct {
	Name         string `json:"name"`
	IDNumber     string `json:"id_number,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
}

// Product is the catalog item the order was placed for.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// Payment is the monetary breakdown of an order.
//
// Total is expected to equal ProductPrice + DeliveryCost but the upstream
// does not guarantee it, so nothing here enforces it; values are carried
// through as received.
type Payment struct {
	Total        float64 `json:"total"`
	ProductPrice float64 `json:"product_price"`
	DeliveryCost float64 `json:"delivery_cost"`
	ProofURL     string  `json:"proof_url,omitempty"`
}

// Order is a single customer purchase mirrored from the upstream API.
//
// Orders are created upstream at checkout and enter this service through the
// sync gateway. They are mutated only by status transitions, and even then
// the upstream's returned record replaces the local one, since the upstream
// may enrich it (AttendedBy, AttendedAt).
type Order struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Status    OrderStatus `json:"status"`
	Customer  Customer    `json:"customer"`
	Product   Product     `json:"product"`
	Payment   Payment     `json:"payment"`

	AttendedBy string     `json:"attended_by,omitempty"`
	AttendedAt *time.Time `json:"attended_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}
