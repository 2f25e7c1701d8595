package session

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playmatatu/cuesim/internal/auth"
	"github.com/playmatatu/cuesim/internal/game"
)

var ErrTableNotFound = errors.New("table not found")

// Options configure every table a Manager creates.
type Options struct {
	Settings  game.Settings
	FrameRate int
	RackSeed  int64 // 0 racks with the rest attitude

	IdleTimeout time.Duration // Run reaps tables idle this long
}

// Manager owns the live tables.
type Manager struct {
	opts  Options
	shots ShotRecorder
	snaps SnapshotSaver

	mu       sync.RWMutex
	sessions map[string]*Session

	base   context.Context
	cancel context.CancelFunc
}

// NewManager creates an empty manager. shots and snaps may be nil.
func NewManager(opts Options, shots ShotRecorder, snaps SnapshotSaver) *Manager {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	base, cancel := context.WithCancel(context.Background())
	return &Manager{
		opts:     opts,
		shots:    shots,
		snaps:    snaps,
		sessions: make(map[string]*Session),
		base:     base,
		cancel:   cancel,
	}
}

// Create racks a new table and starts its frame loop. A non-empty
// passphrase makes the table private.
func (m *Manager) Create(passphrase string) (*Session, error) {
	hash, err := auth.HashPassphrase(passphrase)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	settings := m.opts.Settings
	var rng *rand.Rand
	if m.opts.RackSeed != 0 {
		rng = rand.New(rand.NewSource(m.opts.RackSeed))
	}

	s, err := newSession(id, hash, func(sounder game.StrikeSounder) (*game.Table, error) {
		t, err := game.NewTable(settings, game.SystemClock{}, sounder, rng)
		if err != nil {
			return nil, err
		}
		t.SetResolver(game.NewRailResolver(&settings))
		return t, nil
	}, m.opts.FrameRate, m.shots, m.snaps)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	s.start(m.base)
	log.Printf("[SESSION] table %s created (private=%v)", id, s.HasPassphrase())
	return s, nil
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrTableNotFound
	}
	return s, nil
}

// Join returns the table if passphrase opens it.
func (m *Manager) Join(id, passphrase string) (*Session, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.CheckPassphrase(passphrase); err != nil {
		return nil, err
	}
	s.touch()
	return s, nil
}

// Remove stops and forgets a table. It reports whether the table existed.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return false
	}
	s.stop()
	log.Printf("[SESSION] table %s removed", id)
	return true
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Reap removes tables with no input for longer than idle and returns how
// many it removed.
func (m *Manager) Reap(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	m.mu.RLock()
	var stale []string
	for id, s := range m.sessions {
		if s.LastActive().Before(cutoff) {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()

	n := 0
	for _, id := range stale {
		if m.Remove(id) {
			n++
		}
	}
	if n > 0 {
		log.Printf("[SESSION] reaped %d idle tables", n)
	}
	return n
}

// Run reaps idle tables until ctx is done, then stops every table.
func (m *Manager) Run(ctx context.Context) error {
	log.Println("[SESSION] Reaper started")
	idle := m.opts.IdleTimeout
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	interval := idle / 4
	if interval > time.Minute {
		interval = time.Minute
	}
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[SESSION] Reaper stopping")
			m.Shutdown()
			return nil
		case <-ticker.C:
			m.Reap(idle)
		}
	}
}

// Shutdown stops every table.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.stop()
	}
	m.cancel()
}
