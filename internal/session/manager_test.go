package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playmatatu/cuesim/internal/auth"
	"github.com/playmatatu/cuesim/internal/game"
	"github.com/playmatatu/cuesim/internal/session/mocks"
	"go.uber.org/mock/gomock"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := NewManager(Options{Settings: game.DefaultSettings(), FrameRate: 30, IdleTimeout: time.Minute}, nil, nil)
	t.Cleanup(m.Shutdown)
	return m
}

func TestManagerCreateGetJoin(t *testing.T) {
	m := newTestManager(t)

	pub, err := m.Create("")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	priv, err := m.Create("secret")
	if err != nil {
		t.Fatalf("Create private: %v", err)
	}
	if pub.ID == priv.ID {
		t.Fatal("duplicate table ids")
	}
	if m.Count() != 2 {
		t.Errorf("count = %d", m.Count())
	}

	if got, err := m.Get(pub.ID); err != nil || got != pub {
		t.Errorf("Get = %v, %v", got, err)
	}
	if _, err := m.Get("missing"); !errors.Is(err, ErrTableNotFound) {
		t.Errorf("err = %v, want ErrTableNotFound", err)
	}

	if _, err := m.Join(pub.ID, "anything"); err != nil {
		t.Errorf("join public: %v", err)
	}
	if _, err := m.Join(priv.ID, "secret"); err != nil {
		t.Errorf("join private: %v", err)
	}
	if _, err := m.Join(priv.ID, "guess"); !errors.Is(err, auth.ErrWrongPassphrase) {
		t.Errorf("err = %v, want ErrWrongPassphrase", err)
	}
}

func TestManagerRemoveStopsLoop(t *testing.T) {
	m := newTestManager(t)
	s, err := m.Create("")
	if err != nil {
		t.Fatal(err)
	}
	events, _ := s.Subscribe(1)

	if !m.Remove(s.ID) {
		t.Fatal("Remove reported missing table")
	}
	if m.Remove(s.ID) {
		t.Error("second Remove succeeded")
	}
	select {
	case _, ok := <-events:
		for ok {
			_, ok = <-events
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber not closed after Remove")
	}
}

func TestManagerReapsIdleTables(t *testing.T) {
	m := newTestManager(t)
	idle, _ := m.Create("")
	fresh, _ := m.Create("")
	idle.lastActive.Store(time.Now().Add(-time.Hour).UnixNano())

	if n := m.Reap(time.Minute); n != 1 {
		t.Fatalf("reaped %d tables, want 1", n)
	}
	if _, err := m.Get(idle.ID); !errors.Is(err, ErrTableNotFound) {
		t.Error("idle table survived")
	}
	if _, err := m.Get(fresh.ID); err != nil {
		t.Error("fresh table reaped")
	}
}

func TestManagerSavesSnapshotOnRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	snaps := mocks.NewMockSnapshotSaver(ctrl)
	m := NewManager(Options{Settings: game.DefaultSettings()}, nil, snaps)
	defer m.Shutdown()

	s, err := m.Create("")
	if err != nil {
		t.Fatal(err)
	}
	snaps.EXPECT().SaveSnapshot(gomock.Any(), s.ID, gomock.Any()).Return(nil)
	m.Remove(s.ID)
}

func TestManagerRunStopsOnCancel(t *testing.T) {
	m := NewManager(Options{Settings: game.DefaultSettings(), IdleTimeout: time.Minute}, nil, nil)
	if _, err := m.Create(""); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	if m.Count() != 0 {
		t.Errorf("%d tables left after shutdown", m.Count())
	}
}

func TestManagerRejectsBadSettings(t *testing.T) {
	s := game.DefaultSettings()
	s.BallDiameter = 0
	m := NewManager(Options{Settings: s}, nil, nil)
	defer m.Shutdown()
	if _, err := m.Create(""); !errors.Is(err, game.ErrInvalidSettings) {
		t.Errorf("err = %v, want ErrInvalidSettings", err)
	}
}
