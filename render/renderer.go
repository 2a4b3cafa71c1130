package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/swish/game"
	"github.com/lixenwraith/swish/vmath"
)

const (
	rimSegments    = 16
	boardEdgeSteps = 24
	ballCloseDepth = 6.5
)

// DragState is the live swipe overlay in cell coordinates.
type DragState struct {
	StartX, StartY int
	X, Y           int
	Active         bool
}

// Renderer draws one session snapshot per frame onto a tcell screen.
// It reads only the snapshot; it never touches session internals.
type Renderer struct {
	screen tcell.Screen
	camera Camera
	width  int
	height int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: DefaultCamera(),
		width:  w,
		height: h,
	}
}

// Resize updates the cached screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// RenderFrame renders the full scene and flushes it to the terminal.
func (r *Renderer) RenderFrame(snap game.Snapshot, drag DragState, now time.Time) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)

	r.drawCourt(base)
	r.drawBackboard(snap, base)
	r.drawRim(snap, base)
	if len(snap.Trajectory) > 0 {
		r.drawTrajectory(snap, base)
	}
	r.drawBall(snap, base)
	if drag.Active {
		r.drawDrag(drag, base)
	}
	r.drawHUD(snap, base)
	if snap.PulseUntil.After(now) {
		r.drawScorePulse(snap, base)
	}
	if snap.Paused {
		r.drawPauseOverlay(base)
	}

	r.screen.Show()
}

// drawCourt lays a dot grid on the floor, fading with distance.
func (r *Renderer) drawCourt(base tcell.Style) {
	for zi := -3; zi <= 3; zi++ {
		for xi := -4; xi <= 4; xi++ {
			p := vmath.Vec3{X: float64(xi), Z: float64(zi)}
			x, y, ok := r.camera.Project(p, r.width, r.height)
			if !ok {
				continue
			}
			fade := 5.0 / r.camera.Depth(p)
			if fade > 1 {
				fade = 1
			}
			color := RgbCourtGrid
			if xi == -4 || xi == 4 || zi == -3 || zi == 3 {
				color = RgbCourtEdge
			}
			r.screen.SetContent(x, y, '·', nil, base.Foreground(fadeColor(color, fade)))
		}
	}
}

// drawBackboard outlines the front face of the board.
func (r *Renderer) drawBackboard(snap game.Snapshot, base tcell.Style) {
	style := base.Foreground(RgbBackboard)
	c := snap.BoardCenter
	h := snap.BoardHalf

	for i := 0; i <= boardEdgeSteps; i++ {
		t := -1 + 2*float64(i)/boardEdgeSteps
		edges := [4]vmath.Vec3{
			{X: c.X + h.X*t, Y: c.Y + h.Y, Z: c.Z},
			{X: c.X + h.X*t, Y: c.Y - h.Y, Z: c.Z},
			{X: c.X - h.X, Y: c.Y + h.Y*t, Z: c.Z},
			{X: c.X + h.X, Y: c.Y + h.Y*t, Z: c.Z},
		}
		for _, p := range edges {
			if x, y, ok := r.camera.Project(p, r.width, r.height); ok {
				r.screen.SetContent(x, y, '▒', nil, style)
			}
		}
	}
}

// drawRim samples points around the rim circle.
func (r *Renderer) drawRim(snap game.Snapshot, base tcell.Style) {
	style := base.Foreground(RgbRim)
	for i := 0; i < rimSegments; i++ {
		a := 2 * math.Pi * float64(i) / rimSegments
		p := vmath.Vec3{
			X: snap.RimCenter.X + snap.RimRadius*math.Cos(a),
			Y: snap.RimCenter.Y,
			Z: snap.RimCenter.Z + snap.RimRadius*math.Sin(a),
		}
		if x, y, ok := r.camera.Project(p, r.width, r.height); ok {
			r.screen.SetContent(x, y, 'o', nil, style)
		}
	}
}

// drawTrajectory plots the preview arc. The tail of a grounded arc
// repeats the launch point, so drawing stops at the first sample that
// collapses back onto the ball.
func (r *Renderer) drawTrajectory(snap game.Snapshot, base tcell.Style) {
	style := base.Foreground(RgbTrajectory)
	for _, p := range snap.Trajectory {
		if p == snap.BallPosition {
			break
		}
		if x, y, ok := r.camera.Project(p, r.width, r.height); ok {
			r.screen.SetContent(x, y, '•', nil, style)
		}
	}
}

func (r *Renderer) drawBall(snap game.Snapshot, base tcell.Style) {
	// Ground shadow first so the ball wins the cell when they overlap
	shadow := vmath.Vec3{X: snap.BallPosition.X, Z: snap.BallPosition.Z}
	if x, y, ok := r.camera.Project(shadow, r.width, r.height); ok {
		r.screen.SetContent(x, y, '▿', nil, base.Foreground(RgbBallShadow))
	}

	x, y, ok := r.camera.Project(snap.BallPosition, r.width, r.height)
	if !ok {
		return
	}
	style := base.Foreground(RgbBall)
	r.screen.SetContent(x, y, '●', nil, style)
	if r.camera.Depth(snap.BallPosition) < ballCloseDepth {
		r.screen.SetContent(x-1, y, '(', nil, style)
		r.screen.SetContent(x+1, y, ')', nil, style)
	}
}

// drawDrag traces the active swipe from anchor to pointer.
func (r *Renderer) drawDrag(d DragState, base tcell.Style) {
	style := base.Foreground(RgbDragVector)

	dx := d.X - d.StartX
	dy := d.Y - d.StartY
	steps := absInt(dx)
	if absInt(dy) > steps {
		steps = absInt(dy)
	}
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := d.StartX + int(math.Round(t*float64(dx)))
		y := d.StartY + int(math.Round(t*float64(dy)))
		r.screen.SetContent(x, y, '·', nil, style)
	}
	r.screen.SetContent(d.StartX, d.StartY, '+', nil, style)
	r.screen.SetContent(d.X, d.Y, '◉', nil, style)
}

func (r *Renderer) drawHUD(snap game.Snapshot, base tcell.Style) {
	score := fmt.Sprintf(" Score %d  Streak %d ", snap.Score.Points, snap.Score.Streak)
	r.drawText(0, 0, score, base.Foreground(RgbHudText))

	best := fmt.Sprintf(" Best %d ", snap.Score.Best)
	r.drawText(len(score), 0, best, base.Foreground(RgbHudBest))

	phase := snap.Phase.String()
	r.drawText(r.width-len(phase)-1, 0, phase, base.Foreground(RgbHudDim))

	if r.height > 2 {
		r.drawText(0, r.height-1, " drag: shoot   p: pause   m: mute   q: quit ", base.Foreground(RgbHudDim))
	}
}

// drawScorePulse flashes the made basket above the rim.
func (r *Renderer) drawScorePulse(snap game.Snapshot, base tcell.Style) {
	x, y, ok := r.camera.Project(snap.RimCenter, r.width, r.height)
	if !ok {
		return
	}
	r.drawText(x-1, y-2, "+1", base.Foreground(RgbScorePulse).Bold(true))
}

func (r *Renderer) drawPauseOverlay(base tcell.Style) {
	msg := " PAUSED  p resumes "
	x := (r.width - len(msg)) / 2
	y := r.height / 2
	r.drawText(x, y, msg, base.Foreground(tcell.ColorBlack).Background(RgbPausedBg))
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
