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

type stepClock struct{ now int64 }

func (c *stepClock) NowMillis() int64 {
	c.now += 10
	return c.now
}

func newTestSession(t *testing.T, shots ShotRecorder, snaps SnapshotSaver) *Session {
	t.Helper()
	s, err := newSession("t1", "", func(sounder game.StrikeSounder) (*game.Table, error) {
		return game.NewTable(game.DefaultSettings(), &stepClock{}, sounder, nil)
	}, 60, shots, snaps)
	if err != nil {
		t.Fatalf("newSession: %v", err)
	}
	return s
}

// shoot drives a full draw-back and follow-through along +x.
func shoot(s *Session) game.FrameResult {
	ctx := context.Background()
	s.Pointer(600, 412.5)
	s.Step(ctx)
	s.Button(true)
	s.Step(ctx)
	s.Pointer(590, 412.5)
	s.Step(ctx)
	s.Pointer(595, 412.5)
	s.Step(ctx)
	s.Pointer(606, 412.5)
	return s.Step(ctx)
}

func TestStepRecordsShotAndSettles(t *testing.T) {
	ctrl := gomock.NewController(t)
	shots := mocks.NewMockShotRecorder(ctrl)
	snaps := mocks.NewMockSnapshotSaver(ctrl)

	shots.EXPECT().RecordShot(gomock.Any(), "t1", uint64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ uint64, shot game.Shot) error {
			if shot.Power != 50 || shot.Volume != 1 {
				t.Errorf("recorded shot = %+v", shot)
			}
			return nil
		})
	snaps.EXPECT().SaveSnapshot(gomock.Any(), "t1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, snap game.TableSnapshot) error {
			if snap.Phase != game.PhaseAiming {
				t.Errorf("saved snapshot phase = %s", snap.Phase)
			}
			return nil
		})

	s := newTestSession(t, shots, snaps)
	events, cancel := s.Subscribe(4096)
	defer cancel()

	if res := shoot(s); res.Shot == nil {
		t.Fatal("no shot released")
	}

	settled := false
	for i := 0; i < 10000 && !settled; i++ {
		settled = s.Step(context.Background()).Settled
	}
	if !settled {
		t.Fatal("table never settled")
	}

	var strikes, frames int
	for len(events) > 0 {
		ev := <-events
		switch ev.Type {
		case EventStrike:
			strikes++
			if ev.Strike.Volume != 1 || ev.Strike.Power != 50 || ev.Strike.Angle != 0 {
				t.Errorf("strike event = %+v", ev.Strike)
			}
		case EventFrame:
			frames++
		}
	}
	if strikes != 1 {
		t.Errorf("got %d strike events, want 1", strikes)
	}
	if frames == 0 {
		t.Error("no frame events published")
	}
}

func TestStoreErrorsDoNotStopTheTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	shots := mocks.NewMockShotRecorder(ctrl)
	shots.EXPECT().RecordShot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	s := newTestSession(t, shots, nil)
	if res := shoot(s); res.Shot == nil {
		t.Fatal("no shot released")
	}
	if s.Snapshot().Phase != game.PhaseRolling {
		t.Error("table stopped rolling after a store error")
	}
}

func TestIdleTablePublishesNothing(t *testing.T) {
	s := newTestSession(t, nil, nil)
	events, cancel := s.Subscribe(8)
	defer cancel()

	s.Step(context.Background())
	if len(events) != 0 {
		t.Errorf("idle frame published %d events", len(events))
	}

	s.Pointer(10, 10)
	s.Step(context.Background())
	if len(events) != 1 {
		t.Errorf("input frame published %d events, want 1", len(events))
	}
}

func TestPlaceCueBallPublishesFrame(t *testing.T) {
	s := newTestSession(t, nil, nil)
	events, cancel := s.Subscribe(8)
	defer cancel()

	if err := s.PlaceCueBall(300, 300); err != nil {
		t.Fatalf("PlaceCueBall: %v", err)
	}
	ev := <-events
	if ev.Type != EventFrame || ev.Snapshot.Balls[0].Position != game.NewVec2(300, 300) {
		t.Errorf("event = %+v", ev)
	}

	if err := s.PlaceCueBall(-5, 300); !errors.Is(err, game.ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	s := newTestSession(t, nil, nil)
	events, cancel := s.Subscribe(1)
	cancel()
	cancel()
	if _, ok := <-events; ok {
		t.Fatal("channel still open after cancel")
	}
	s.Pointer(1, 1)
	s.Step(context.Background()) // must not panic on the closed channel
}

func TestSlowSubscriberDropsEvents(t *testing.T) {
	s := newTestSession(t, nil, nil)
	events, cancel := s.Subscribe(1)
	defer cancel()

	for i := 0; i < 3; i++ {
		s.Pointer(float64(i), 0)
		s.Step(context.Background())
	}
	if len(events) != 1 {
		t.Errorf("buffer holds %d events, want 1", len(events))
	}
}

func TestTouchTracksInput(t *testing.T) {
	s := newTestSession(t, nil, nil)
	old := time.Now().Add(-time.Hour)
	s.lastActive.Store(old.UnixNano())

	s.Step(context.Background())
	if !s.LastActive().Equal(old) {
		t.Error("idle frame refreshed activity")
	}
	s.ToggleHitLine()
	s.Step(context.Background())
	if !s.LastActive().After(old) {
		t.Error("input did not refresh activity")
	}
}

func TestCheckPassphrase(t *testing.T) {
	hash, err := auth.HashPassphrase("rack")
	if err != nil {
		t.Fatal(err)
	}
	s := newTestSession(t, nil, nil)
	s.passHash = hash
	if !s.HasPassphrase() {
		t.Fatal("private table reports no passphrase")
	}
	if err := s.CheckPassphrase("rack"); err != nil {
		t.Errorf("correct passphrase rejected: %v", err)
	}
	if err := s.CheckPassphrase("nine"); !errors.Is(err, auth.ErrWrongPassphrase) {
		t.Errorf("err = %v", err)
	}
}
