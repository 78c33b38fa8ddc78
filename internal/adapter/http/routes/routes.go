package routes

import (
	"context"

	_ "tienda_admin/docs" // This will be auto-generated
	"tienda_admin/internal/adapter/http/handlers"
	"tienda_admin/internal/adapter/http/middlewares"
	"tienda_admin/internal/adapter/persistence/repository"
	"tienda_admin/internal/config"
	"tienda_admin/internal/infrastructure/notify"
	"tienda_admin/internal/infrastructure/upstream"
	"tienda_admin/internal/session"
	"tienda_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var log = logging.MustGetLogger("routes")

// Run wires the whole service together and starts the HTTP server. It blocks
// until the server stops.
func Run(cfg *config.Config) {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	gateway := upstream.NewSyncGateway(cfg.APIBaseURL, cfg.ProofBaseURL)
	repo := repository.NewOrderMemoryRepository()
	sessions := session.NewManager()

	ordersUseCase := usecase.NewOrdersUseCase(repo, gateway, sessions)
	analyticsUseCase := usecase.NewAnalyticsUseCase(repo, gateway, sessions)
	authUseCase := usecase.NewAuthUseCase(gateway, sessions, repo)

	authHandler := handlers.NewAuthHandler(authUseCase)
	ordersHandler := handlers.NewOrdersHandler(ordersUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	// Push notifications trigger a full re-sync; a refresh failure only
	// means the store keeps serving its previous snapshot.
	listener := notify.NewListener(cfg.WebsocketURL, func() {
		if _, err := ordersUseCase.Refresh(context.Background()); err != nil {
			log.Warningf("notification-triggered refresh failed: %v", err)
		}
	})
	go listener.Run(context.Background())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, authUseCase)
	addOrderRoutes(v1, ordersHandler, authUseCase)
	addAnalyticsRoutes(v1, analyticsHandler, authUseCase)

	if err := router.Run(cfg.ListenAddress); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(middlewares.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
