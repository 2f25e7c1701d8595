package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/playmatatu/cuesim/internal/audio"
	"github.com/playmatatu/cuesim/internal/config"
	"github.com/playmatatu/cuesim/internal/game"
	"github.com/playmatatu/cuesim/internal/input"
)

func main() {
	// tcell owns the terminal; keep log lines out of it
	if f, err := os.OpenFile("tabletop.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	spk := audio.NewSpeaker()
	if err := spk.Init(); err != nil {
		// Non-fatal, the table can run without sound
		log.Printf("[AUDIO] init failed: %v", err)
	}
	defer spk.Close()

	seed := cfg.RackSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	table, err := game.NewTable(cfg.Physics, game.SystemClock{}, spk, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatalf("Failed to rack table: %v", err)
	}
	resolver := game.NewRailResolver(&cfg.Physics)
	table.SetResolver(resolver)

	tracker := input.NewTracker()
	cols, rows := screen.Size()
	v := newView(cols, rows, cfg.Physics.TableSize)
	var pointer game.Vec2

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				cols, rows = screen.Size()
				v = newView(cols, rows, cfg.Physics.TableSize)
				screen.Sync()
			case *tcell.EventMouse:
				x, y := ev.Position()
				pointer = v.toTable(x, y)
				tracker.Pointer(pointer.X, pointer.Y)
				tracker.Button(ev.Buttons()&tcell.Button1 != 0)
			case *tcell.EventKey:
				if quit := handleKey(ev, tracker, table, pointer); quit {
					return
				}
			}

		case <-ticker.C:
			res := table.Frame(tracker.Next())
			if res.Shot != nil {
				log.Printf("[TABLE] shot power=%.1f angle=%.3f hit=(%.2f,%.2f)", res.Shot.Power, res.Shot.Angle, res.Shot.HitOffset.X, res.Shot.HitOffset.Y)
			}
			for _, c := range resolver.Events() {
				if c.Type == "pocket" {
					log.Printf("[TABLE] ball %d pocketed in %d", c.BallID, c.TargetID)
				}
			}
			if res.Settled && !table.Cue().Visible() {
				// scratch: cue ball in hand on the head spot
				rack := game.Standard8BallRack(&cfg.Physics)
				if err := table.PlaceCueBall(rack[0]); err != nil {
					log.Printf("[TABLE] respawn cue ball: %v", err)
				}
			}
			render(screen, v, table)
		}
	}
}

// handleKey maps keys onto table input. It reports whether to quit.
func handleKey(ev *tcell.EventKey, tracker *input.Tracker, table *game.Table, pointer game.Vec2) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		tracker.Nudge(input.Up, true)
	case tcell.KeyDown:
		tracker.Nudge(input.Down, true)
	case tcell.KeyLeft:
		tracker.Nudge(input.Left, true)
	case tcell.KeyRight:
		tracker.Nudge(input.Right, true)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'h':
			tracker.ToggleHitLine()
		case 'c':
			if err := table.PlaceCueBall(pointer); err != nil {
				log.Printf("[TABLE] cue in hand: %v", err)
			}
		}
	}
	// terminals report no key-up, so every arrow press is a single tap
	for _, d := range []input.Dir{input.Up, input.Down, input.Left, input.Right} {
		tracker.Nudge(d, false)
	}
	return false
}
