package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/playmatatu/cuesim/internal/auth"
	"github.com/playmatatu/cuesim/internal/config"
	"github.com/playmatatu/cuesim/internal/database"
	"github.com/playmatatu/cuesim/internal/game"
	"github.com/playmatatu/cuesim/internal/session"
)

// Tables is the live table registry.
type Tables interface {
	Create(passphrase string) (*session.Session, error)
	Join(id, passphrase string) (*session.Session, error)
	Get(id string) (*session.Session, error)
}

//go:generate go tool mockgen -destination=./mocks/stores_mock.go -package=mocks . ShotLister,SnapshotLoader

type ShotLister interface {
	ListShots(ctx context.Context, tableID string) ([]database.ShotRow, error)
}

type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, tableID string) (game.TableSnapshot, bool, error)
}

type passphraseRequest struct {
	Passphrase string `json:"passphrase" binding:"max=128"`
}

// bindPassphrase accepts an empty body as an empty passphrase.
func bindPassphrase(c *gin.Context) (string, bool) {
	var req passphraseRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return "", false
	}
	return req.Passphrase, true
}

func issueToken(c *gin.Context, cfg *config.Config, s *session.Session, status int) {
	ttl := time.Duration(cfg.TableTokenTTLMinutes) * time.Minute
	token, err := auth.IssueTableToken(cfg.JWTSecret, s.ID, ttl)
	if err != nil {
		log.Printf("[API] token for table %s: %v", s.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue table token"})
		return
	}
	c.JSON(status, gin.H{
		"table_id":   s.ID,
		"token":      token,
		"private":    s.HasPassphrase(),
		"expires_in": int(ttl.Seconds()),
		"ws_path":    "/api/v1/tables/" + s.ID + "/ws?token=" + token,
	})
}

// CreateTable racks a new table and returns a token to drive it.
func CreateTable(tables Tables, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		passphrase, ok := bindPassphrase(c)
		if !ok {
			return
		}
		s, err := tables.Create(passphrase)
		if err != nil {
			log.Printf("[API] create table: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
			return
		}
		issueToken(c, cfg, s, http.StatusCreated)
	}
}

// JoinTable checks the passphrase and returns a token for an existing table.
func JoinTable(tables Tables, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		passphrase, ok := bindPassphrase(c)
		if !ok {
			return
		}
		s, err := tables.Join(c.Param("id"), passphrase)
		switch {
		case errors.Is(err, session.ErrTableNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
			return
		case errors.Is(err, auth.ErrPassphraseMissing), errors.Is(err, auth.ErrWrongPassphrase):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join table"})
			return
		}
		issueToken(c, cfg, s, http.StatusOK)
	}
}

// GetTable returns the live state of a table, or its last saved snapshot
// once the table has been closed.
func GetTable(tables Tables, snaps SnapshotLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if s, err := tables.Get(id); err == nil {
			c.JSON(http.StatusOK, gin.H{
				"table_id": id,
				"live":     true,
				"private":  s.HasPassphrase(),
				"created":  s.CreatedAt(),
				"snapshot": s.Snapshot(),
			})
			return
		}

		if snaps != nil {
			snap, ok, err := snaps.LoadSnapshot(c.Request.Context(), id)
			if err != nil {
				log.Printf("[API] load snapshot %s: %v", id, err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Snapshot store unavailable"})
				return
			}
			if ok {
				c.JSON(http.StatusOK, gin.H{"table_id": id, "live": false, "snapshot": snap})
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
	}
}

// ListShots returns the recorded strikes of a table.
func ListShots(shots ShotLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		if shots == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Shot log disabled"})
			return
		}
		id := c.Param("id")
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid table id"})
			return
		}
		rows, err := shots.ListShots(c.Request.Context(), id)
		if err != nil {
			log.Printf("[API] list shots %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shots"})
			return
		}
		if rows == nil {
			rows = []database.ShotRow{}
		}
		c.JSON(http.StatusOK, gin.H{"table_id": id, "count": len(rows), "shots": rows})
	}
}
