package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/playmatatu/cuesim/internal/game"
)

type Config struct {
	// Environment
	Environment string

	// Database (empty disables the shot log)
	DatabaseURL    string
	MigrateOnStart bool
	MigrationsDir  string

	// Redis (empty disables snapshots)
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Tables
	FrameRate          int
	SnapshotTTLMinutes int
	IdleTableMinutes   int

	// Security
	JWTSecret            string
	TableTokenTTLMinutes int

	// Physics tuning handed to every new table
	Physics  game.Settings
	RackSeed int64 // 0 racks every ball with the same face up
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Database
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrateOnStart: getEnv("MIGRATE_ON_START", "false") == "true",
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Tables
		FrameRate:          getEnvInt("FRAME_RATE", 60),
		SnapshotTTLMinutes: getEnvInt("SNAPSHOT_TTL_MINUTES", 60),
		IdleTableMinutes:   getEnvInt("IDLE_TABLE_MINUTES", 30),

		// Security
		JWTSecret:            getEnv("JWT_SECRET", "change-me-in-production"),
		TableTokenTTLMinutes: getEnvInt("TABLE_TOKEN_TTL_MINUTES", 120),

		Physics:  loadPhysics(),
		RackSeed: int64(getEnvInt("RACK_SEED", 0)),
	}
}

func loadPhysics() game.Settings {
	s := game.DefaultSettings()
	s.Friction = getEnvFloat("FRICTION", s.Friction)
	s.RollingFriction = getEnvFloat("ROLLING_FRICTION", s.RollingFriction)
	s.CounterRollingFriction = getEnvFloat("COUNTER_ROLLING_FRICTION", s.CounterRollingFriction)
	s.PowerToSpinRatio = getEnvFloat("POWER_TO_SPIN_RATIO", s.PowerToSpinRatio)
	s.BallDiameter = getEnvFloat("BALL_DIAMETER", s.BallDiameter)
	s.MinVelocity = getEnvFloat("MIN_VELOCITY", s.MinVelocity)
	s.MaxPower = getEnvFloat("MAX_STICK_POWER", s.MaxPower)
	s.PowerRateScale = getEnvFloat("POWER_RATE_SCALE", s.PowerRateScale)
	return s
}

// Validate rejects values that would make tables unusable. It runs once at
// startup, before any table is built.
func (c *Config) Validate() error {
	if err := c.Physics.Validate(); err != nil {
		return err
	}
	if c.FrameRate <= 0 || c.FrameRate > 240 {
		return fmt.Errorf("frame rate %d not in (0,240]", c.FrameRate)
	}
	if c.IdleTableMinutes <= 0 {
		return fmt.Errorf("idle table minutes must be positive, got %d", c.IdleTableMinutes)
	}
	if c.TableTokenTTLMinutes <= 0 {
		return fmt.Errorf("table token ttl must be positive, got %d", c.TableTokenTTLMinutes)
	}
	if c.Environment == "production" && c.JWTSecret == "change-me-in-production" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
