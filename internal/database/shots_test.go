package database

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/playmatatu/cuesim/internal/game"
	"github.com/playmatatu/cuesim/internal/migrations"
)

// Runs against a real postgres when TEST_DATABASE_URL is set.
func TestShotLogRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if err := migrations.RunMigrations(url, "../../migrations"); err != nil {
		t.Fatalf("migrations: %v", err)
	}
	db, err := Connect(url)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer db.Close()

	log := NewShotLog(db)
	ctx := context.Background()
	table := uuid.NewString()

	shots := []game.Shot{
		{Power: 50, Angle: 0.5, HitOffset: game.NewVec2(0.1, -0.2), Volume: 1},
		{Power: 20, Angle: -1, Volume: 0.4},
	}
	for i, s := range shots {
		if err := log.RecordShot(ctx, table, uint64(10*(i+1)), s); err != nil {
			t.Fatalf("RecordShot: %v", err)
		}
	}

	rows, err := log.ListShots(ctx, table)
	if err != nil {
		t.Fatalf("ListShots: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ShotNumber != 1 || rows[1].ShotNumber != 2 {
		t.Errorf("shot numbers = %d, %d", rows[0].ShotNumber, rows[1].ShotNumber)
	}
	if rows[0].HitY != -0.2 || rows[1].Frame != 20 {
		t.Errorf("rows = %+v", rows)
	}
}
