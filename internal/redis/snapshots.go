package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/playmatatu/cuesim/internal/game"
	"github.com/redis/go-redis/v9"
)

// SnapshotStore keeps the last settled snapshot of each table so it can be
// served after the live table is gone.
type SnapshotStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSnapshotStore(rdb *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{rdb: rdb, ttl: ttl}
}

func snapshotKey(tableID string) string {
	return "table:" + tableID + ":snapshot"
}

func (s *SnapshotStore) SaveSnapshot(ctx context.Context, tableID string, snap game.TableSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for table %s: %w", tableID, err)
	}
	if err := s.rdb.SetEx(ctx, snapshotKey(tableID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot for table %s: %w", tableID, err)
	}
	return nil
}

// LoadSnapshot returns the stored snapshot. ok is false when none is stored.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context, tableID string) (snap game.TableSnapshot, ok bool, err error) {
	data, err := s.rdb.Get(ctx, snapshotKey(tableID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return snap, false, nil
	}
	if err != nil {
		return snap, false, fmt.Errorf("failed to load snapshot for table %s: %w", tableID, err)
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, false, fmt.Errorf("corrupt snapshot for table %s: %w", tableID, err)
	}
	return snap, true, nil
}
