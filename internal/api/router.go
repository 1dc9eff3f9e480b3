package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orderdesk/approval-system/internal/api/handler"
	"github.com/orderdesk/approval-system/internal/api/middleware"
	"github.com/orderdesk/approval-system/internal/core/domain"
	"github.com/orderdesk/approval-system/internal/core/service"
	"github.com/orderdesk/approval-system/internal/core/session"
	"github.com/orderdesk/approval-system/internal/infrastructure/config"
	mongodb "github.com/orderdesk/approval-system/internal/infrastructure/db/mongo"
	redisdb "github.com/orderdesk/approval-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("approval"))

	// --- Dependencies ---
	codec := session.NewCodec(cfg.JWTSecret, cfg.SessionTTL)
	revocation := redisdb.NewRevocationStore(rdb)

	accountRepo := mongodb.NewAccountRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	authService := service.NewAuthService(accountRepo, codec, log)
	orderService := service.NewOrderService(orderRepo, log)

	authHandler := handler.NewAuthHandler(authService, revocation)
	orderHandler := handler.NewOrderHandler(orderService)

	authMiddleware := middleware.Auth(codec, revocation)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Order routes (all authenticated; fine-grained scope enforced by the
	// service layer on top of the coarse role gates below) ---
	orders := e.Group("/v1/orders", authMiddleware)
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create, middleware.RBAC(domain.RoleUser))
	orders.GET("/:id", orderHandler.Get)
	orders.PUT("/:id", orderHandler.Update, middleware.RBAC(domain.RoleUser))
	orders.PATCH("/:id/status", orderHandler.UpdateStatus, middleware.RBAC(domain.RoleManager))
	orders.DELETE("/:id", orderHandler.Delete, middleware.RBAC(domain.RoleUser))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
