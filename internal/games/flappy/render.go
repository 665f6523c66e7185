package flappy

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Render glyphs
const (
	CloudChar     = '░'
	PipeChar      = '█'
	PipeCapChar   = '▓'
	PipeShineChar = '▒'
	GrassChar     = '▀'
	GrassTipChar  = '▲'
	DirtChar      = '▒'
	BirdChar      = '█'
	ParticleChar  = '•'
	ParticleFaint = '·'
)

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	d := g.cfg.Design
	Draw(dst, g.Snapshot(), d.CellW, d.CellH)
}

// cellView maps canvas pixels onto screen cells, centring the canvas.
type cellView struct {
	offX, offY int
	cols, rows int
	cw, ch     float64
}

func newCellView(dst *core.Screen, m Metrics, cw, ch float64) cellView {
	cols := int(math.Ceil(m.Width / cw))
	rows := int(math.Ceil(m.Height / ch))
	return cellView{
		offX: (dst.Width() - cols) / 2,
		offY: (dst.Height() - rows) / 2,
		cols: cols,
		rows: rows,
		cw:   cw,
		ch:   ch,
	}
}

func (v cellView) col(px float64) int { return v.offX + int(math.Floor(px/v.cw)) }
func (v cellView) row(py float64) int { return v.offY + int(math.Floor(py/v.ch)) }

// span converts a pixel length to a cell count of at least one.
func span(px, cell float64) int {
	return max(int(math.Round(px/cell)), 1)
}

// Draw paints a snapshot into dst. It reads nothing but the snapshot.
func Draw(dst *core.Screen, s Snapshot, cellW, cellH float64) {
	dst.Clear()

	if !s.Sized || s.Metrics.Width <= 0 {
		dst.DrawTextCenteredColor(dst.Height()/2, "TAP TO START", core.ColorTitle)
		return
	}

	v := newCellView(dst, s.Metrics, cellW, cellH)

	drawSky(dst, v)
	if v.offX > 0 && v.offY > 0 {
		dst.DrawBox(v.offX-1, v.offY-1, v.cols+2, v.rows+2, core.ColorDefault)
	}
	for _, d := range s.Decorations {
		drawCloud(dst, v, d)
	}
	for _, o := range s.Obstacles {
		drawObstacle(dst, v, s.Metrics, o)
	}
	for _, p := range s.Particles {
		drawParticle(dst, v, p, s.Lifetime)
	}
	drawGround(dst, v, s.Metrics, s.GroundOffset)
	drawBird(dst, v, s.Player)
	drawHUD(dst, v, s)
}

// drawSky fills the canvas with two colour bands.
func drawSky(dst *core.Screen, v cellView) {
	high := v.rows / 2
	dst.DrawRect(v.offX, v.offY, v.cols, high, ' ', core.ColorSkyHigh)
	dst.DrawRect(v.offX, v.offY+high, v.cols, v.rows-high, ' ', core.ColorSky)
}

func drawCloud(dst *core.Screen, v cellView, d Decoration) {
	w := span(d.Size*2, v.cw)
	h := span(d.Size, v.ch)
	x := v.col(d.X - d.Size)
	y := v.row(d.Y - d.Size/2)

	for dy := 0; dy < h; dy++ {
		// Round the corners of taller clouds.
		inset := 0
		if h > 1 && (dy == 0 || dy == h-1) {
			inset = 1
		}
		dst.DrawHLine(x+inset, y+dy, w-2*inset, CloudChar, core.ColorCloud)
	}
}

// drawObstacle draws both pipes with a cap at the gap and a shine column.
func drawObstacle(dst *core.Screen, v cellView, m Metrics, o Obstacle) {
	x := v.col(o.X)
	w := span(m.ObstacleWidth, v.cw)
	gapTop := v.row(o.GapTop)
	gapBottom := v.row(o.GapBottom)
	ground := v.row(m.GroundY())

	// Upper pipe: canvas top to the gap.
	if h := gapTop - v.offY; h > 0 {
		drawPipe(dst, x, v.offY, w, h)
		dst.DrawHLine(x-1, gapTop-1, w+2, PipeCapChar, core.ColorPipeCap)
	}

	// Lower pipe: gap to the ground line.
	if h := ground - gapBottom; h > 0 {
		drawPipe(dst, x, gapBottom, w, h)
		dst.DrawHLine(x-1, gapBottom, w+2, PipeCapChar, core.ColorPipeCap)
	}
}

func drawPipe(dst *core.Screen, x, y, w, h int) {
	dst.DrawRect(x, y, w, h, PipeChar, core.ColorPipe)
	if w > 2 {
		dst.DrawVLine(x+1, y, h, PipeShineChar, core.ColorPipeShine)
	}
}

// drawParticle fades particles in the second half of their life.
func drawParticle(dst *core.Screen, v cellView, p Particle, lifetime int) {
	r, c := ParticleChar, core.ColorParticle
	if p.Life*2 < lifetime {
		r, c = ParticleFaint, core.ColorParticleFaint
	}
	dst.SetColor(v.col(p.X), v.row(p.Y), r, c)
}

// drawGround draws a scrolling grass row over dirt.
func drawGround(dst *core.Screen, v cellView, m Metrics, offset float64) {
	top := v.row(m.GroundY())
	bottom := v.offY + v.rows

	for cx := 0; cx < v.cols; cx++ {
		r, c := GrassChar, core.ColorGrass
		if m.GroundPattern > 0 {
			phase := math.Mod(float64(cx)*v.cw+offset, m.GroundPattern)
			if phase < m.GroundPattern/2 {
				r, c = GrassTipChar, core.ColorGrassTip
			}
		}
		dst.SetColor(v.offX+cx, top, r, c)
	}
	for y := top + 1; y < bottom; y++ {
		dst.DrawHLine(v.offX, y, v.cols, DirtChar, core.ColorDirt)
	}
}

// beakGlyph points the beak along the bird's tilt.
func beakGlyph(rotation float64) rune {
	switch {
	case rotation < -10:
		return '^'
	case rotation > 30:
		return 'v'
	default:
		return '>'
	}
}

func drawBird(dst *core.Screen, v cellView, p Player) {
	b := p.Bounds()
	x := v.col(b.X)
	y := v.row(b.Y)
	w := span(b.W, v.cw)
	h := span(b.H, v.ch)

	dst.DrawRect(x, y, w, h, BirdChar, core.ColorBird)
	dst.SetColor(x+w, v.row(p.Y), beakGlyph(p.Rotation), core.ColorBeak)
}

func drawHUD(dst *core.Screen, v cellView, s Snapshot) {
	mid := v.offY + v.rows/2

	best := fmt.Sprintf("BEST: %d", s.Best)
	dst.DrawTextColor(v.offX+v.cols-utf8.RuneCountInString(best)-1, v.offY, best, core.ColorScore)

	switch s.Phase {
	case PhaseNotStarted:
		drawCentered(dst, v, mid-1, "TAP TO START", core.ColorTitle)
		drawCentered(dst, v, mid+1, "space / click to flap", core.ColorHint)
	case PhaseActive:
		drawCentered(dst, v, v.offY+1, fmt.Sprintf("%d", s.Score), core.ColorScore)
	case PhaseEnded:
		drawCentered(dst, v, mid-2, "GAME OVER", core.ColorGameOver)
		drawCentered(dst, v, mid, fmt.Sprintf("SCORE: %d", s.Score), core.ColorScore)
		drawCentered(dst, v, mid+2, "TAP TO RETRY", core.ColorHint)
	}
}

func drawCentered(dst *core.Screen, v cellView, y int, text string, c core.Color) {
	x := v.offX + (v.cols-utf8.RuneCountInString(text))/2
	dst.DrawTextColor(x, y, text, c)
}
