package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/playmatatu/cuesim/internal/game"
)

// view maps table coordinates onto terminal cells. The last row holds the
// status line.
type view struct {
	cols, rows int
	table      game.Vec2
}

func newView(cols, rows int, table game.Vec2) view {
	return view{cols: cols, rows: rows, table: table}
}

func (v view) scale() (float64, float64) {
	return float64(v.cols) / v.table.X, float64(v.rows-1) / v.table.Y
}

func (v view) toScreen(p game.Vec2) (int, int) {
	sx, sy := v.scale()
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y * sy))
}

// toTable returns the table point at the centre of a cell.
func (v view) toTable(x, y int) game.Vec2 {
	sx, sy := v.scale()
	return game.NewVec2((float64(x)+0.5)/sx, (float64(y)+0.5)/sy)
}

func (v view) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.cols && y < v.rows-1
}

var ballColors = [...]tcell.Color{
	tcell.ColorWhite,
	tcell.ColorYellow, tcell.ColorBlue, tcell.ColorRed, tcell.ColorPurple,
	tcell.ColorOrange, tcell.ColorGreen, tcell.ColorMaroon, tcell.ColorGray,
}

func ballColor(number int) tcell.Color {
	if number > 8 {
		number -= 8
	}
	if number < 0 || number >= len(ballColors) {
		return tcell.ColorWhite
	}
	return ballColors[number]
}

const numberRunes = "0123456789abcdef"

var stripeRunes = [4]rune{'─', '╲', '│', '╱'}

// ballGlyph picks the character for a ball: its number when the spot faces
// the viewer, the stripe band direction for striped balls.
func ballGlyph(b *game.Ball, f game.SpriteFrame) rune {
	switch {
	case b.Type() == game.BallCue:
		return '○'
	case f.SpotVisible:
		return rune(numberRunes[b.Number()%len(numberRunes)])
	case b.Type() == game.BallStripe:
		a := math.Mod(f.Rotation, math.Pi)
		if a < 0 {
			a += math.Pi
		}
		return stripeRunes[int(math.Round(a/(math.Pi/4)))%4]
	default:
		return '●'
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func render(s tcell.Screen, v view, t *game.Table) {
	s.Clear()
	felt := tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	for y := 0; y < v.rows-1; y++ {
		for x := 0; x < v.cols; x++ {
			s.SetContent(x, y, ' ', nil, felt)
		}
	}

	st := t.Stick()
	if st.Visible() {
		drawStick(s, v, felt, st, t.Settings().BallDiameter)
	}

	for _, b := range t.Balls() {
		if !b.Visible() {
			continue
		}
		x, y := v.toScreen(b.Position())
		if v.inside(x, y) {
			s.SetContent(x, y, ballGlyph(b, game.SpriteFor(b)), nil, felt.Foreground(ballColor(b.Number())).Bold(true))
		}
	}

	drawText(s, 0, v.rows-1, tcell.StyleDefault, statusLine(t))
	s.Show()
}

// drawStick draws the cue behind the ball, pulled back by the draw-back,
// and the dotted hit line ahead of it.
func drawStick(s tcell.Screen, v view, felt tcell.Style, st *game.Stick, diameter float64) {
	dir := game.NewVec2(math.Cos(st.Rotation()), math.Sin(st.Rotation()))
	pos := st.Position()
	sx, _ := v.scale()
	cell := 1 / sx

	cue := felt.Foreground(tcell.ColorBurlyWood)
	start := diameter/2 + math.Max(st.DrawBack(), 0)
	for d := start; d < start+diameter*6; d += cell {
		x, y := v.toScreen(pos.Minus(dir.Times(d)))
		if v.inside(x, y) {
			s.SetContent(x, y, '=', nil, cue)
		}
	}

	if !st.ShowHitLine() {
		return
	}
	line := felt.Foreground(tcell.ColorLightGray)
	for d := diameter; d < v.table.X; d += cell * 2 {
		x, y := v.toScreen(pos.Plus(dir.Times(d)))
		if !v.inside(x, y) {
			break
		}
		s.SetContent(x, y, '·', nil, line)
	}
}

func statusLine(t *game.Table) string {
	st := t.Stick()
	h := st.HitOffset()
	power := st.Power()
	if g, shown := st.Gauge(); shown {
		power = g
	}
	return fmt.Sprintf(" %-7s power %5.1f  draw %5.1f  hit (%+.2f,%+.2f)  [drag] aim/shoot  [arrows] spin  [h] hit line  [c] cue in hand  [q] quit",
		t.Phase(), power, st.DrawBack(), h.X, h.Y)
}
