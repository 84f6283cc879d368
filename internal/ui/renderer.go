package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/qhalsey/BlitzBallz/internal/game"
	"github.com/qhalsey/BlitzBallz/internal/grid"
	"github.com/qhalsey/BlitzBallz/internal/physics"
	"github.com/qhalsey/BlitzBallz/internal/trajectory"
	"github.com/qhalsey/BlitzBallz/internal/vec"
)

const (
	BallChar       = '⬤' // ⬤
	PickupChar     = '◉' // ◉
	TrajectoryChar = '·' // ·
	LaunchChar     = '▲' // ▲
)

// trajectoryStep is the play-space spacing between preview dots.
const trajectoryStep = 14.0

// Renderer draws the whole game from the controller's state each frame.
type Renderer struct {
	screen   *Screen
	viewport Viewport
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Viewport returns the mapping used by the last Render call; the app uses
// it to translate mouse positions back into play space.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// Render draws one frame for the current state.
func (r *Renderer) Render(c *game.Controller) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	r.viewport = NewViewport(c.Layout(), screenW, screenH)

	switch c.State() {
	case game.StateMenu:
		r.renderMenu(c, screenW, screenH)
	case game.StateGameOver:
		r.renderCourt(c, screenW, screenH)
		r.renderGameOverBox(c, screenW, screenH)
	case game.StatePaused:
		r.renderCourt(c, screenW, screenH)
		r.renderPauseBox(screenW, screenH)
	case game.StateSettings:
		r.renderCourt(c, screenW, screenH)
		r.renderSettingsBox(c, screenW, screenH)
	default:
		r.renderCourt(c, screenW, screenH)
	}

	r.screen.Show()
}

// renderMenu displays the title screen
func (r *Renderer) renderMenu(c *game.Controller, screenW, screenH int) {
	title := "=== BLITZ BALLZ ==="
	titleX := (screenW - len(title)) / 2
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	r.screen.DrawText(titleX, screenH/2-5, title, titleStyle)

	sub := "break the bricks before they reach you"
	r.screen.DrawText((screenW-len(sub))/2, screenH/2-3, sub, tcell.StyleDefault.Foreground(tcell.ColorGray))

	best := fmt.Sprintf("Best level: %d", c.Profile().HighScore(false))
	r.screen.DrawText((screenW-len(best))/2, screenH/2-1, best, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	bestEasy := fmt.Sprintf("Best level (easy): %d", c.Profile().HighScore(true))
	r.screen.DrawText((screenW-len(bestEasy))/2, screenH/2, bestEasy, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	start := "Press ENTER or click to start"
	r.screen.DrawText((screenW-len(start))/2, screenH/2+3, start, tcell.StyleDefault.Foreground(tcell.ColorGreen))

	hints := "'o' settings | 'q' quit"
	r.screen.DrawText((screenW-len(hints))/2, screenH-2, hints, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// renderCourt draws the playfield: bricks, pickups, balls, the aim preview
// and the two status bars.
func (r *Renderer) renderCourt(c *game.Controller, screenW, screenH int) {
	layout := c.Layout()

	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Launch zone separator
	_, sepY := r.viewport.ToScreen(vec.New(0, layout.LaunchY))
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for x := 0; x < screenW; x += 2 {
		r.screen.SetCell(x, sepY, lineStyle, '-')
	}

	for _, brick := range c.Board.Bricks {
		r.renderBrick(brick, c.Level, layout)
	}

	for _, pickup := range c.Board.Pickups {
		r.renderPickup(pickup, layout)
	}

	// Aim preview before the launch marker so the marker stays on top.
	if len(c.Trajectory) > 1 {
		r.renderTrajectory(c.Trajectory)
	}

	if c.State() != game.StateAnimating {
		mx, my := r.viewport.ToScreen(c.LaunchPos)
		markStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		r.screen.SetCell(mx, my, markStyle, LaunchChar)
	}

	ballStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, ball := range c.Balls {
		if !ball.Active {
			continue
		}
		bx, by := r.viewport.ToScreen(ball.Body.Pos)
		if bx >= 0 && bx < screenW && by >= 1 && by < screenH-1 {
			r.screen.SetCell(bx, by, ballStyle, BallChar)
		}
	}

	for _, effect := range c.Effects {
		r.renderEffect(effect)
	}

	r.renderHUD(c, screenW)
	r.renderStatusBar(c, screenW, screenH)
}

// renderBrick fills the brick's scaled cell with its heat color and centers
// the remaining hit count on it.
func (r *Renderer) renderBrick(brick *grid.Brick, level int, layout physics.Layout) {
	rect := layout.BrickRect(brick.Col, brick.Row)
	x0, y0 := r.viewport.ToScreen(vec.New(rect.Left, rect.Top))
	x1, y1 := r.viewport.ToScreen(vec.New(rect.Right, rect.Bottom))
	w := x1 - x0
	h := y1 - y0
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	color := brickColor(brick.Hits, level, brick.DestroyProgress)
	style := tcell.StyleDefault.Background(color).Foreground(tcell.ColorBlack)
	r.screen.FillRect(x0, y0, w, h, style, ' ')

	if !brick.Destroying {
		label := fmt.Sprintf("%d", brick.Hits)
		r.screen.DrawText(x0+(w-len(label))/2, y0+h/2, label, style.Bold(true))
	}
}

func (r *Renderer) renderPickup(pickup *grid.Pickup, layout physics.Layout) {
	if pickup.Collected && pickup.CollectProgress >= 1 {
		return
	}
	cx, cy := r.viewport.ToScreen(layout.PickupCenter(pickup.Col, pickup.Row))
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	if pickup.Collected {
		style = style.Dim(true)
	}
	r.screen.SetCell(cx, cy, style, PickupChar)
	label := pickup.Type.Label()
	r.screen.DrawText(cx-len(label)/2, cy+1, label, style)
}

// renderTrajectory draws dots along each preview segment at a fixed
// play-space spacing.
func (r *Renderer) renderTrajectory(points []trajectory.Point) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 1; i < len(points); i++ {
		from := points[i-1].Pos
		seg := points[i].Pos.Sub(from)
		length := seg.Len()
		if length == 0 {
			continue
		}
		dir := seg.Scale(1 / length)
		for d := trajectoryStep; d < length; d += trajectoryStep {
			x, y := r.viewport.ToScreen(from.Add(dir.Scale(d)))
			r.screen.SetCell(x, y, style, TrajectoryChar)
		}
	}
}

// renderEffect draws a collect label floating up as it fades.
func (r *Renderer) renderEffect(e *game.CollectEffect) {
	pos := e.Pos
	pos.Y -= e.Progress * 30
	x, y := r.viewport.ToScreen(pos)
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	if e.Progress > 0.5 {
		style = style.Dim(true)
	}
	r.screen.DrawText(x-len(e.Text)/2, y, e.Text, style)
}

// renderHUD draws the top status line: level, ball count, speed, mode.
func (r *Renderer) renderHUD(c *game.Controller, screenW int) {
	hudStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, 0, hudStyle, ' ')
	}

	mode := ""
	if c.Profile().EasyMode() {
		mode = " | EASY"
	}
	text := fmt.Sprintf(" LEVEL %d | BALLS %d%s", c.Level, c.BallCount, mode)
	r.screen.DrawText(0, 0, text, hudStyle.Bold(true))

	if c.SpeedMult > 1 {
		speed := fmt.Sprintf("x%.0f ", c.SpeedMult)
		r.screen.DrawText(screenW-len(speed), 0, speed, hudStyle.Foreground(tcell.ColorYellow).Bold(true))
	}
}

// renderStatusBar draws the bottom hint line for the current state.
func (r *Renderer) renderStatusBar(c *game.Controller, screenW, screenH int) {
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}

	var hint string
	switch c.State() {
	case game.StateAiming:
		hint = " drag or ←/→ to aim, release or ENTER to fire | ESC pause"
		if c.Profile().EasyMode() {
			hint = " drag or ←/→ to aim, ENTER fire | h/l move launch | ESC pause"
		}
	case game.StateAnimating:
		hint = " click or TAB to change speed | ESC pause"
	case game.StateGameOver:
		hint = " click or ENTER to continue"
	case game.StatePaused:
		hint = " ESC resume | 'o' settings | 'q' quit"
	case game.StateSettings:
		hint = " 'e' toggle easy mode | ESC back"
	}
	r.screen.DrawText(0, statusY, hint, statusStyle)
}

// renderGameOverBox draws the end-of-run summary over the court.
func (r *Renderer) renderGameOverBox(c *game.Controller, screenW, screenH int) {
	boxW, boxH := 34, 8
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.fillBox(boxX, boxY, boxW, boxH)

	title := "GAME OVER"
	titleStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorRed).Bold(true)
	r.screen.DrawText((screenW-len(title))/2, boxY+1, title, titleStyle)

	textStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	reached := fmt.Sprintf("Reached level %d", c.Level)
	r.screen.DrawText((screenW-len(reached))/2, boxY+3, reached, textStyle)

	best := fmt.Sprintf("Best: %d", c.Profile().HighScore(c.Profile().EasyMode()))
	r.screen.DrawText((screenW-len(best))/2, boxY+4, best, textStyle)

	hint := "Press ENTER to continue"
	hintStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorGreen)
	r.screen.DrawText((screenW-len(hint))/2, boxY+6, hint, hintStyle)
}

// renderPauseBox draws the pause overlay.
func (r *Renderer) renderPauseBox(screenW, screenH int) {
	boxW, boxH := 30, 7
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.fillBox(boxX, boxY, boxW, boxH)

	title := "PAUSED"
	titleStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawText((screenW-len(title))/2, boxY+1, title, titleStyle)

	textStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.DrawText((screenW-len("ESC to resume"))/2, boxY+3, "ESC to resume", textStyle)
	r.screen.DrawText((screenW-len("'o' for settings"))/2, boxY+4, "'o' for settings", textStyle)
	r.screen.DrawText((screenW-len("'q' to quit"))/2, boxY+5, "'q' to quit", textStyle)
}

// renderSettingsBox draws the settings overlay.
func (r *Renderer) renderSettingsBox(c *game.Controller, screenW, screenH int) {
	boxW, boxH := 34, 7
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.fillBox(boxX, boxY, boxW, boxH)

	title := "SETTINGS"
	titleStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorTeal).Bold(true)
	r.screen.DrawText((screenW-len(title))/2, boxY+1, title, titleStyle)

	state := "OFF"
	if c.Profile().EasyMode() {
		state = "ON"
	}
	easy := fmt.Sprintf("Easy mode: %s  (press 'e')", state)
	textStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.DrawText((screenW-len(easy))/2, boxY+3, easy, textStyle)

	hint := "ESC to go back"
	r.screen.DrawText((screenW-len(hint))/2, boxY+5, hint, textStyle)
}

// fillBox draws a bordered box with a dark filled background.
func (r *Renderer) fillBox(x, y, w, h int) {
	boxStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawBox(x, y, w, h, boxStyle)
	fillStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	for dy := y + 1; dy < y+h-1; dy++ {
		for dx := x + 1; dx < x+w-1; dx++ {
			r.screen.SetCell(dx, dy, fillStyle, ' ')
		}
	}
}

// brickColor maps remaining hits to a green-to-red heat gradient relative
// to the current level, darkened as the destroy fade progresses.
func brickColor(hits, level int, destroyProgress float64) tcell.Color {
	if level < 1 {
		level = 1
	}
	frac := float64(hits) / float64(level)
	if frac > 1 {
		frac = 1
	}
	if frac < 0 {
		frac = 0
	}
	// Hue 120 is green, 0 is red.
	c := colorful.Hsv(120*(1-frac), 0.85, 0.9*(1-destroyProgress))
	cr, cg, cb := c.RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}
