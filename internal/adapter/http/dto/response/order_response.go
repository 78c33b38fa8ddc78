package response

import (
	"time"

	"tienda_admin/internal/domain/entities"
)

type OrderResponse struct {
	ID        string            `json:"id"`
	CreatedAt time.Time         `json:"created_at"`
	Status    string            `json:"status"`
	Customer  entities.Customer `json:"customer"`
	Product   entities.Product  `json:"product"`
	Payment   entities.Payment  `json:"payment"`

	AttendedBy string     `json:"attended_by,omitempty"`
	AttendedAt *time.Time `json:"attended_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		CreatedAt:  o.CreatedAt,
		Status:     string(o.Status),
		Customer:   o.Customer,
		Product:    o.Product,
		Payment:    o.Payment,
		AttendedBy: o.AttendedBy,
		AttendedAt: o.AttendedAt,
		Notes:      o.Notes,
	}
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count"`
}

func FromOrders(orders []entities.Order) OrderListResponse {
	out := OrderListResponse{Orders: make([]OrderResponse, 0, len(orders)), Count: len(orders)}
	for _, o := range orders {
		out.Orders = append(out.Orders, FromOrder(o))
	}
	return out
}

// RefreshResponse reports the outcome of a forced store refresh.
type RefreshResponse struct {
	Count int `json:"count"`
}
