package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/cuesim/internal/api"
	"github.com/playmatatu/cuesim/internal/config"
	"github.com/playmatatu/cuesim/internal/database"
	"github.com/playmatatu/cuesim/internal/migrations"
	"github.com/playmatatu/cuesim/internal/redis"
	"github.com/playmatatu/cuesim/internal/session"
	"github.com/playmatatu/cuesim/internal/ws"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Initialize configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	deps := api.Deps{Config: cfg, Hub: ws.NewHub()}
	var shots session.ShotRecorder
	var snaps session.SnapshotSaver

	// Shot log is optional
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if cfg.MigrateOnStart {
			log.Println("↗ Running DB migrations on startup...")
			if err := migrations.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}

		shotLog := database.NewShotLog(db)
		shots, deps.Shots = shotLog, shotLog
	} else {
		log.Println("[DB] DATABASE_URL not set, shots will not be recorded")
	}

	// Snapshots are optional
	if cfg.RedisURL != "" {
		rdb, err := redis.Connect(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()

		store := redis.NewSnapshotStore(rdb, time.Duration(cfg.SnapshotTTLMinutes)*time.Minute)
		snaps, deps.Snapshots = store, store
	} else {
		log.Println("[REDIS] REDIS_URL not set, snapshots will not be kept")
	}

	deps.Tables = session.NewManager(session.Options{
		Settings:    cfg.Physics,
		FrameRate:   cfg.FrameRate,
		RackSeed:    cfg.RackSeed,
		IdleTimeout: time.Duration(cfg.IdleTableMinutes) * time.Minute,
	}, shots, snaps)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	api.SetupRoutes(router, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return deps.Hub.Run(ctx) })
	g.Go(func() error { return deps.Tables.Run(ctx) })
	g.Go(func() error {
		log.Printf("Starting cuesim server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
	log.Println("Server stopped")
}
