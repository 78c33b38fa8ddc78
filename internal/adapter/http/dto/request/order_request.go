package request

import "tienda_admin/internal/domain/entities"

// UpdateOrderStatusRequest is the payload of PATCH /v1/orders/:id/status.
// "new" is not an accepted target: orders only move forward.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

func (r UpdateOrderStatusRequest) ToStatus() entities.OrderStatus {
	return entities.OrderStatus(r.Status)
}
