package session

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/playmatatu/cuesim/internal/auth"
	"github.com/playmatatu/cuesim/internal/game"
	"github.com/playmatatu/cuesim/internal/input"
)

//go:generate go tool mockgen -destination=./mocks/stores_mock.go -package=mocks . ShotRecorder,SnapshotSaver

// ShotRecorder persists every strike.
type ShotRecorder interface {
	RecordShot(ctx context.Context, tableID string, frame uint64, shot game.Shot) error
}

// SnapshotSaver keeps the settled state of a table.
type SnapshotSaver interface {
	SaveSnapshot(ctx context.Context, tableID string, snap game.TableSnapshot) error
}

const (
	EventFrame  = "frame"
	EventStrike = "strike"
)

// StrikeEvent carries what a client needs to play the strike sound.
type StrikeEvent struct {
	Volume float64 `json:"volume"`
	Power  float64 `json:"power"`
	Angle  float64 `json:"angle"`
}

// Event is published to subscribers of a session.
type Event struct {
	Type     string              `json:"type"`
	Snapshot *game.TableSnapshot `json:"snapshot,omitempty"`
	Strike   *StrikeEvent        `json:"strike,omitempty"`
}

const storeTimeout = 2 * time.Second

// Session is one live table with its own frame loop.
type Session struct {
	ID string

	passHash string
	tracker  *input.Tracker
	shots    ShotRecorder
	snaps    SnapshotSaver
	interval time.Duration

	mu    sync.Mutex // guards table
	table *game.Table

	subsMu  sync.RWMutex
	subs    map[int]chan Event
	nextSub int

	lastActive atomic.Int64 // unix nanos
	created    time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// strikeRelay is the table's sounder on the server: instead of playing the
// strike it publishes it so each client plays it locally.
type strikeRelay struct {
	s *Session
}

// PlayStrike runs inside Table.Frame, with the session lock held and the
// stick still holding the released power and aim.
func (r strikeRelay) PlayStrike(volume float64) {
	st := r.s.table.Stick()
	r.s.publish(Event{Type: EventStrike, Strike: &StrikeEvent{
		Volume: volume,
		Power:  st.Power(),
		Angle:  st.Rotation(),
	}})
}

func newSession(id, passHash string, table func(game.StrikeSounder) (*game.Table, error), frameRate int, shots ShotRecorder, snaps SnapshotSaver) (*Session, error) {
	s := &Session{
		ID:       id,
		passHash: passHash,
		tracker:  input.NewTracker(),
		shots:    shots,
		snaps:    snaps,
		interval: time.Second / time.Duration(frameRate),
		subs:     make(map[int]chan Event),
		created:  time.Now(),
		done:     make(chan struct{}),
	}
	t, err := table(strikeRelay{s: s})
	if err != nil {
		return nil, err
	}
	s.table = t
	s.touch()
	return s, nil
}

func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

func (s *Session) CreatedAt() time.Time { return s.created }

func (s *Session) HasPassphrase() bool { return s.passHash != "" }

// CheckPassphrase verifies a join attempt.
func (s *Session) CheckPassphrase(passphrase string) error {
	return auth.CheckPassphrase(s.passHash, passphrase)
}

// Input handlers, called from connection goroutines.

func (s *Session) Pointer(x, y float64) { s.tracker.Pointer(x, y) }
func (s *Session) Button(down bool) { s.tracker.Button(down) }
func (s *Session) Nudge(d input.Dir, down bool) { s.tracker.Nudge(d, down) }
func (s *Session) ToggleHitLine() { s.tracker.ToggleHitLine() }

// PlaceCueBall puts the cue ball in hand at (x, y).
func (s *Session) PlaceCueBall(x, y float64) error {
	s.mu.Lock()
	err := s.table.PlaceCueBall(game.NewVec2(x, y))
	snap := s.table.Snapshot()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.touch()
	s.publish(Event{Type: EventFrame, Snapshot: &snap})
	return nil
}

func (s *Session) Snapshot() game.TableSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Snapshot()
}

// Subscribe returns a channel of events and a cancel func. Slow subscribers
// miss events rather than stall the frame loop.
func (s *Session) Subscribe(buffer int) (<-chan Event, func()) {
	ch := make(chan Event, buffer)

	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subsMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subsMu.Lock()
			if _, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(ch)
			}
			s.subsMu.Unlock()
		})
	}
}

func (s *Session) publish(ev Event) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for id, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			log.Printf("[SESSION] table %s subscriber %d buffer full, dropping %s", s.ID, id, ev.Type)
		}
	}
}

func (s *Session) closeSubscribers() {
	s.subsMu.Lock()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	s.subsMu.Unlock()
}

// Step runs one frame: fold pending input, advance the table, persist and
// publish what happened.
func (s *Session) Step(ctx context.Context) game.FrameResult {
	in := s.tracker.Next()
	touched := s.tracker.Touched()
	if touched {
		s.touch()
	}

	s.mu.Lock()
	res := s.table.Frame(in)
	rolling := s.table.Phase() == game.PhaseRolling
	var snap game.TableSnapshot
	publish := touched || rolling || res.Shot != nil || res.Settled
	if publish {
		snap = s.table.Snapshot()
	}
	s.mu.Unlock()

	if res.Shot != nil && s.shots != nil {
		sctx, cancel := context.WithTimeout(ctx, storeTimeout)
		if err := s.shots.RecordShot(sctx, s.ID, res.Frame, *res.Shot); err != nil {
			log.Printf("[SESSION] table %s: %v", s.ID, err)
		}
		cancel()
	}
	if res.Settled && s.snaps != nil {
		s.saveSnapshot(ctx, snap)
	}
	if publish {
		s.publish(Event{Type: EventFrame, Snapshot: &snap})
	}
	return res
}

func (s *Session) saveSnapshot(ctx context.Context, snap game.TableSnapshot) {
	sctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if err := s.snaps.SaveSnapshot(sctx, s.ID, snap); err != nil {
		log.Printf("[SESSION] table %s: %v", s.ID, err)
	}
}

func (s *Session) run(ctx context.Context) {
	defer close(s.done)
	defer s.closeSubscribers()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step(ctx)
		}
	}
}

func (s *Session) start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	go s.run(ctx)
}

// stop ends the frame loop, waits for it and saves the final state.
func (s *Session) stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	if s.snaps != nil {
		s.saveSnapshot(context.Background(), s.Snapshot())
	}
}
