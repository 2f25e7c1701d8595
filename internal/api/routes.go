package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/cuesim/internal/api/handlers"
	"github.com/playmatatu/cuesim/internal/config"
	"github.com/playmatatu/cuesim/internal/middleware"
	"github.com/playmatatu/cuesim/internal/session"
	"github.com/playmatatu/cuesim/internal/ws"
)

// Deps are the services the routes are built on. Shots and Snapshots may be
// nil when the backing store is not configured.
type Deps struct {
	Config    *config.Config
	Tables    *session.Manager
	Hub       *ws.Hub
	Shots     handlers.ShotLister
	Snapshots handlers.SnapshotLoader
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, d Deps) {
	cfg := d.Config
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] no-cache headers enabled for all routes")
	}

	wsHandler := ws.NewHandler(d.Hub, d.Tables, cfg.JWTSecret, func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || middleware.OriginAllowed(cfg, origin)
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck(d.Tables))

		tables := v1.Group("/tables")
		{
			tables.POST("", handlers.CreateTable(d.Tables, cfg))
			tables.GET("/:id", handlers.GetTable(d.Tables, d.Snapshots))
			tables.POST("/:id/join", handlers.JoinTable(d.Tables, cfg))
			tables.GET("/:id/shots", handlers.ListShots(d.Shots))
			tables.GET("/:id/ws", middleware.WebSocketCORSCheck(cfg), wsHandler.ServeTable)
		}
	}
}
