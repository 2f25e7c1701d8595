package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/playmatatu/cuesim/internal/game"
)

// ShotRow is one recorded strike.
type ShotRow struct {
	ID         int64     `db:"id" json:"id"`
	TableID    string    `db:"table_id" json:"table_id"`
	ShotNumber int       `db:"shot_number" json:"shot_number"`
	Power      float64   `db:"power" json:"power"`
	Angle      float64   `db:"angle" json:"angle"`
	HitX       float64   `db:"hit_x" json:"hit_x"`
	HitY       float64   `db:"hit_y" json:"hit_y"`
	Volume     float64   `db:"volume" json:"volume"`
	Frame      int64     `db:"frame" json:"frame"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// ShotLog persists strikes in the shots table.
type ShotLog struct {
	db *sqlx.DB
}

func NewShotLog(db *sqlx.DB) *ShotLog {
	return &ShotLog{db: db}
}

// RecordShot appends a strike to the table's log, numbering it after the
// last recorded shot.
func (l *ShotLog) RecordShot(ctx context.Context, tableID string, frame uint64, shot game.Shot) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO shots (table_id, shot_number, power, angle, hit_x, hit_y, volume, frame, created_at)
		SELECT $1, COALESCE(MAX(shot_number), 0) + 1, $2, $3, $4, $5, $6, $7, NOW()
		FROM shots WHERE table_id = $1
	`, tableID, shot.Power, shot.Angle, shot.HitOffset.X, shot.HitOffset.Y, shot.Volume, int64(frame))
	if err != nil {
		return fmt.Errorf("failed to record shot for table %s: %w", tableID, err)
	}
	return nil
}

// ListShots returns the table's shots in order.
func (l *ShotLog) ListShots(ctx context.Context, tableID string) ([]ShotRow, error) {
	rows := []ShotRow{}
	err := l.db.SelectContext(ctx, &rows, `
		SELECT id, table_id, shot_number, power, angle, hit_x, hit_y, volume, frame, created_at
		FROM shots WHERE table_id = $1 ORDER BY shot_number
	`, tableID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shots for table %s: %w", tableID, err)
	}
	return rows, nil
}
