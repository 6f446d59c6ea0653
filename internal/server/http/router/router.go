package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/anandpatel/cafewala/internal/config"
	"github.com/anandpatel/cafewala/internal/server/http/handlers"
	"github.com/anandpatel/cafewala/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.CafeFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	expose := !cfg.IsProduction()
	authHandler := handlers.NewAuthHandler(facade, expose)
	orderHandler := handlers.NewOrderHandler(facade, expose)
	menuHandler := handlers.NewMenuHandler(facade, expose)
	reservationHandler := handlers.NewReservationHandler(facade, expose)
	contactHandler := handlers.NewContactHandler(facade, expose)
	healthHandler := handlers.NewHealthHandler(facade)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler()

	api := engine.Group("/api")
	api.GET("/health", healthHandler.Check)
	api.POST("/auth/login", limiter, authHandler.Login)

	api.GET("/menu", menuHandler.List)
	api.GET("/menu/:id", menuHandler.Get)
	api.POST("/orders", limiter, orderHandler.Create)
	api.GET("/orders/:orderNumber", orderHandler.Track)
	api.POST("/reservations", limiter, reservationHandler.Create)
	api.POST("/contact", limiter, contactHandler.Create)

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(facade))
	admin.GET("/orders", orderHandler.List)
	admin.PUT("/orders/:orderNumber/status", orderHandler.UpdateStatus)
	admin.POST("/menu", menuHandler.Create)
	admin.PUT("/menu/:id", menuHandler.Update)
	admin.PATCH("/menu/:id/availability", menuHandler.SetAvailability)
	admin.DELETE("/menu/:id", menuHandler.Delete)
	admin.GET("/reservations", reservationHandler.List)
	admin.GET("/reservations/:id", reservationHandler.Get)
	admin.PUT("/reservations/:id/status", reservationHandler.UpdateStatus)
	admin.DELETE("/reservations/:id", reservationHandler.Delete)
	admin.GET("/contact", contactHandler.List)
	admin.PATCH("/contact/:id/read", contactHandler.MarkRead)

	return engine
}
