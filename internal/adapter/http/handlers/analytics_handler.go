package handlers

import (
	"net/http"

	"tienda_admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves both analytics sources: the locally aggregated
// store summary and the upstream dashboard passthrough.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// Summary godoc
// @Summary      Aggregate snapshot of the mirrored orders
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  entities.AggregateSnapshot
// @Security     Bearer
// @Router       /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.LocalSummary(c.Request.Context()))
}

// Dashboard godoc
// @Summary      Upstream dashboard analytics
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  entities.AnalyticsData
// @Failure      401  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	data, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, data)
}
