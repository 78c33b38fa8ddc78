package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"tienda_admin/internal/domain/entities"
)

// New returns a configured validator with the custom rules used by the
// request DTOs registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// order_status accepts only statuses an operator may request. "new" is
	// excluded on purpose: orders are born new upstream, nothing moves back.
	v.RegisterValidation("order_status", func(fl validatorv10.FieldLevel) bool {
		s := entities.OrderStatus(fl.Field().String())
		return s.Valid() && s != entities.OrderStatusNew
	})

	return v
}
