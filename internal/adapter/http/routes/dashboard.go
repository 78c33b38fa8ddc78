package routes

import (
	"net/http"

	"tienda_admin/internal/adapter/http/handlers"
	"tienda_admin/internal/adapter/http/middlewares"
	"tienda_admin/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathOrders    = "/orders"
	PathAnalytics = "/analytics"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, auth usecase.IAuthUseCase) {
	group := rg.Group(PathAuth)
	{
		group.POST("/login", authHandler.Login)
		group.GET("/session", authHandler.Session)
		group.POST("/logout", middlewares.RequireSession(auth), authHandler.Logout)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, ordersHandler *handlers.OrdersHandler, auth usecase.IAuthUseCase) {
	orders := rg.Group(PathOrders, middlewares.RequireSession(auth))
	{
		orders.GET("", ordersHandler.List)
		orders.GET("/:id", ordersHandler.Get)
		orders.POST("/refresh", ordersHandler.Refresh)
		orders.POST("/:id/acknowledge", ordersHandler.Acknowledge)
		orders.PATCH("/:id/status", ordersHandler.UpdateStatus)
	}
}

func addAnalyticsRoutes(rg *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler, auth usecase.IAuthUseCase) {
	analytics := rg.Group(PathAnalytics, middlewares.RequireSession(auth))
	{
		analytics.GET("/summary", analyticsHandler.Summary)
		analytics.GET("/dashboard", analyticsHandler.Dashboard)
	}
}
