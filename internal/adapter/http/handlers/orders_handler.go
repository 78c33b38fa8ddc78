package handlers

import (
	"errors"
	"net/http"

	request "tienda_admin/internal/adapter/http/dto/request"
	response "tienda_admin/internal/adapter/http/dto/response"
	"tienda_admin/internal/usecase"
	"tienda_admin/internal/usecase/interfaces"
	"tienda_admin/internal/validation"
	"tienda_admin/pkg"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// OrdersHandler handles HTTP requests for the order store and lifecycle.

type OrdersHandler struct {
	usecase usecase.IOrdersUseCase
	v       *validatorv10.Validate
}

func NewOrdersHandler(uc usecase.IOrdersUseCase) *OrdersHandler {
	return &OrdersHandler{usecase: uc, v: validation.New()}
}

// List godoc
// @Summary      List the mirrored orders
// @Tags         orders
// @Produce      json
// @Success      200  {object}  response.OrderListResponse
// @Security     Bearer
// @Router       /orders [get]
func (h *OrdersHandler) List(c *gin.Context) {
	orders := h.usecase.List(c.Request.Context())
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// Get godoc
// @Summary      Fetch a single order from the store
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id} [get]
func (h *OrdersHandler) Get(c *gin.Context) {
	id := c.Param("id")
	o, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// Refresh godoc
// @Summary      Force a sync against the upstream
// @Tags         orders
// @Produce      json
// @Success      200  {object}  response.RefreshResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/refresh [post]
func (h *OrdersHandler) Refresh(c *gin.Context) {
	n, err := h.usecase.Refresh(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.RefreshResponse{Count: n})
}

// Acknowledge godoc
// @Summary      Mark a new order as being attended
// @Description  Explicit new → processing transition. Acknowledging an order
// @Description  that is already processing is a harmless no-op.
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/acknowledge [post]
func (h *OrdersHandler) Acknowledge(c *gin.Context) {
	id := c.Param("id")
	o, err := h.usecase.Acknowledge(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

// UpdateStatus godoc
// @Summary      Request a status transition
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id      path  string                            true  "order id"
// @Param        status  body  request.UpdateOrderStatusRequest  true  "target status"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/status [patch]
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := validation.BindAndValidate(c, &payload, h.v); err != nil {
		return
	}

	id := c.Param("id")
	o, err := h.usecase.Transition(c.Request.Context(), id, payload.ToStatus())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Requested status transition is not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Unknown order status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoActiveSession), errors.Is(err, interfaces.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "No active session", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrUnreachable):
		return pkg.NewDomainError("UPSTREAM_UNREACHABLE", "Upstream service unreachable", err, http.StatusBadGateway)
	default:
		var statusErr *interfaces.StatusError
		if errors.As(err, &statusErr) {
			return pkg.NewDomainError("UPSTREAM_ERROR", "Upstream service rejected the request", err, http.StatusBadGateway)
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
