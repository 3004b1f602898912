package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/manafood/internal/config"
	"github.com/polkiloo/manafood/internal/pkg/validation"
	"github.com/polkiloo/manafood/internal/server/http/dto"
	"github.com/polkiloo/manafood/internal/server/http/handlers"
	"github.com/polkiloo/manafood/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.OrderFacade, validator *validation.Validator, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	// Recovery must run inside gzip so the 500 body is written before the
	// compressed writer is closed.
	engine.Use(middleware.Recovery(logger))

	healthHandler := handlers.NewHealthHandler(cfg.ServiceStatus, cfg.Region)
	orderHandler := handlers.NewOrderHandler(facade, validator)

	engine.GET("/", healthHandler.Check)

	api := engine.Group("/api")
	api.POST("/orders", orderHandler.Create)
	api.GET("/orders", orderHandler.List)
	api.GET("/orders/:id", orderHandler.Get)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
	})

	return engine
}
