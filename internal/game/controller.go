package game

import (
	"math"

	"github.com/qhalsey/BlitzBallz/internal/grid"
	"github.com/qhalsey/BlitzBallz/internal/physics"
	"github.com/qhalsey/BlitzBallz/internal/trajectory"
	"github.com/qhalsey/BlitzBallz/internal/vec"
)

// Tuning constants for the turn cycle.
const (
	BaseBallSpeed = 520.0 // units per second
	MaxFrameDelta = 0.1   // seconds; clamp against frame hitches

	// MinAimAngle is the minimum elevation from horizontal, both sides.
	MinAimAngle = 10.0 * math.Pi / 180

	// launchInterval is the base delay between ball activations; the
	// speed multiplier divides it.
	launchInterval = 0.08

	destroyFadeSeconds = 0.3
	collectFadeSeconds = 0.5
	effectFadeSeconds  = 0.8
)

// Profile is the settings and high-score service the controller persists
// through. The store package provides the file-backed implementation.
type Profile interface {
	EasyMode() bool
	SetEasyMode(on bool)
	HighScore(easy bool) int
	SetHighScore(easy bool, score int)
}

// Sound identifies an audible moment the update produced. The app drains
// these once per frame and plays them; the controller never touches audio.
type Sound int

const (
	SoundLaunch Sound = iota
	SoundWallBounce
	SoundBrickHit
	SoundBrickDestroyed
	SoundPickup
	SoundGameOver
)

// PauseTap is the sentinel tap position meaning "pause request".
var PauseTap = vec.New(-1, -1)

// Controller owns all game state and mutates it exactly once per frame from
// Update plus whatever input events arrived. Single-threaded by design: no
// locks, one writer.
type Controller struct {
	engine    *physics.Engine
	predictor *trajectory.Predictor
	spawner   *grid.Spawner
	profile   Profile

	state    State
	overlays []State // remembered prior states, depth <= overlayDepthLimit

	Board   *grid.Board
	Balls   []*Ball
	Effects []*CollectEffect

	Level     int
	BallCount int
	SpeedMult float64

	LaunchPos  vec.Vec2
	AimDir     vec.Vec2 // zero when no valid aim
	Trajectory []trajectory.Point

	aiming          bool
	moving          bool // easy-mode launch-point relocation in progress
	launched        int
	returned        int
	launchTimer     float64
	nextLaunchX     float64
	haveNextLaunchX bool
	nextBallID      int

	sounds []Sound
}

// NewController wires the controller over its collaborators.
func NewController(engine *physics.Engine, spawner *grid.Spawner, profile Profile) *Controller {
	c := &Controller{
		engine:     engine,
		predictor:  trajectory.New(engine),
		spawner:    spawner,
		profile:    profile,
		state:      StateMenu,
		Board:      grid.NewBoard(),
		SpeedMult:  1,
		nextBallID: 1,
	}
	c.LaunchPos = c.defaultLaunchPos()
	return c
}

// State returns the current state, overlays included.
func (c *Controller) State() State {
	return c.state
}

// Profile returns the injected profile service.
func (c *Controller) Profile() Profile {
	return c.profile
}

// Layout returns the engine's authoritative geometry.
func (c *Controller) Layout() physics.Layout {
	return c.engine.Layout
}

// SetLayout adopts a recomputed layout, keeping the launch point inside the
// new play width.
func (c *Controller) SetLayout(l physics.Layout) {
	c.engine.Layout = l
	c.LaunchPos.X = clamp(c.LaunchPos.X, l.BallRadius, l.Width-l.BallRadius)
	c.LaunchPos.Y = l.LaunchY - l.BallRadius
}

// SetMaxBounces caps the aim preview's bounce count.
func (c *Controller) SetMaxBounces(n int) {
	c.predictor.MaxBounces = n
}

// DrainSounds returns and clears the sounds produced since the last drain.
func (c *Controller) DrainSounds() []Sound {
	out := c.sounds
	c.sounds = nil
	return out
}

// StartGame begins a fresh run from the menu.
func (c *Controller) StartGame() {
	next, ok := Transition(c.state, EventStart)
	if !ok {
		return
	}
	c.state = next
	c.Level = 1
	c.BallCount = 1
	c.SpeedMult = 1
	c.Board = grid.NewBoard()
	c.Balls = nil
	c.Effects = nil
	c.AimDir = vec.Vec2{}
	c.Trajectory = nil
	c.LaunchPos = c.defaultLaunchPos()
	c.spawner.SpawnRow(c.Board, c.Level)
}

// Update advances the simulation by dt seconds. Called once per frame; dt
// is clamped so a long pause between frames cannot tunnel a ball through
// anything.
func (c *Controller) Update(dt float64) {
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	switch c.state {
	case StateAnimating:
		scaled := dt * c.SpeedMult
		c.stepBalls(dt)
		c.updateFades(scaled)
	case StateAiming, StateGameOver:
		c.updateFades(dt)
	}
}

// AimStart begins tracking an aim drag at the given play-space position.
func (c *Controller) AimStart(p vec.Vec2) {
	if c.state != StateAiming {
		return
	}
	c.aiming = true
	c.AimMove(p)
}

// AimMove recomputes the live aim from the pointer position. The aim vector
// runs from the pointer to the launch point, the slingshot inversion: a pull
// toward lower-left aims up-right. Every valid recompute refreshes the
// trajectory preview.
func (c *Controller) AimMove(p vec.Vec2) {
	if c.state != StateAiming || !c.aiming {
		return
	}
	c.AimDir = c.clampAim(c.LaunchPos.Sub(p))
	if c.AimDir.IsZero() {
		c.Trajectory = nil
		return
	}
	c.Trajectory = c.predictor.Predict(c.LaunchPos, c.AimDir, c.liveBrickRects())
}

// AimEnd releases the drag; a valid aim launches the wave.
func (c *Controller) AimEnd() {
	if c.state != StateAiming || !c.aiming {
		return
	}
	c.aiming = false
	if c.AimDir.IsZero() {
		c.Trajectory = nil
		return
	}
	if next, ok := Transition(c.state, EventAimRelease); ok {
		c.state = next
		c.launch()
	}
}

// launch instantiates one inactive ball per current ball count and enters
// the animating state. The speed multiplier is applied at integration time,
// not baked into the velocity.
func (c *Controller) launch() {
	c.Balls = make([]*Ball, 0, c.BallCount)
	for i := 0; i < c.BallCount; i++ {
		c.Balls = append(c.Balls, &Ball{
			ID: c.nextBallID,
			Body: physics.Body{
				Pos: c.LaunchPos,
				Vel: c.AimDir.Scale(BaseBallSpeed),
			},
		})
		c.nextBallID++
	}
	c.launched = 0
	c.returned = 0
	c.launchTimer = 0
	c.haveNextLaunchX = false
	c.Trajectory = nil

	if next, ok := Transition(c.state, EventLaunched); ok {
		c.state = next
	}
}

// stepBalls runs one physics tick: sequenced activation, integration,
// collisions, pickups, returns, and turn resolution.
func (c *Controller) stepBalls(dt float64) {
	scaled := dt * c.SpeedMult

	// Activate queued balls on the launch cadence; higher speed also
	// shortens the spacing because the timer runs on scaled time.
	if c.launched < len(c.Balls) {
		c.launchTimer -= scaled
		for c.launchTimer <= 0 && c.launched < len(c.Balls) {
			c.Balls[c.launched].Active = true
			c.launched++
			c.launchTimer += launchInterval
			c.sound(SoundLaunch)
		}
	}

	for _, ball := range c.Balls {
		if !ball.Active {
			continue
		}

		c.engine.Advance(&ball.Body, dt, c.SpeedMult)

		if c.engine.ResolveWalls(&ball.Body) {
			c.sound(SoundWallBounce)
		}

		for _, brick := range c.Board.LiveBricks() {
			rect := c.engine.Layout.BrickRect(brick.Col, brick.Row)
			if face := c.engine.ResolveBrick(&ball.Body, rect); face != physics.FaceNone {
				brick.Damage()
				if brick.Destroying {
					c.sound(SoundBrickDestroyed)
				} else {
					c.sound(SoundBrickHit)
				}
			}
		}

		for _, pickup := range c.Board.Pickups {
			if pickup.Collected {
				continue
			}
			center := c.engine.Layout.PickupCenter(pickup.Col, pickup.Row)
			if c.engine.PickupOverlaps(&ball.Body, center) {
				c.collect(pickup, center)
			}
		}

		if c.engine.ReachedBottom(&ball.Body) {
			ball.Active = false
			ball.Returned = true
			c.returned++
			// The first ball home fixes the next turn's launch x.
			if !c.haveNextLaunchX {
				r := c.engine.Layout.BallRadius
				c.nextLaunchX = clamp(ball.Body.Pos.X, r, c.engine.Layout.Width-r)
				c.haveNextLaunchX = true
			}
		}
	}

	if len(c.Balls) > 0 && c.returned == len(c.Balls) {
		c.endTurn()
	}
}

// collect applies a pickup: the ball count grows by the type's gain and a
// floating label spawns at the pickup's cell.
func (c *Controller) collect(p *grid.Pickup, center vec.Vec2) {
	p.Collected = true
	c.BallCount += p.Type.Gain(c.BallCount)
	c.Effects = append(c.Effects, &CollectEffect{Pos: center, Text: p.Type.Label()})
	c.sound(SoundPickup)
}

// endTurn resolves the turn: compaction, row advance, game-over or the next
// level's spawn.
func (c *Controller) endTurn() {
	c.Balls = nil
	if c.haveNextLaunchX {
		c.LaunchPos.X = c.nextLaunchX
	}

	c.Board.Compact()
	c.spawner.AdvanceRows(c.Board)
	c.spawner.PruneFallen(c.Board)

	if c.spawner.IsGameOver(c.Board) {
		easy := c.profile.EasyMode()
		if c.Level > c.profile.HighScore(easy) {
			c.profile.SetHighScore(easy, c.Level)
		}
		c.sound(SoundGameOver)
		if next, ok := Transition(c.state, EventGameOver); ok {
			c.state = next
		}
		return
	}

	c.Level++
	c.spawner.SpawnRow(c.Board, c.Level)
	c.AimDir = vec.Vec2{}
	c.Trajectory = nil
	c.SpeedMult = 1

	if next, ok := Transition(c.state, EventTurnEnded); ok {
		c.state = next
	}
}

// Tap handles a discrete tap. The sentinel position (-1,-1) is a pause
// request; otherwise a tap starts the game from the menu, restarts from
// game over, or cycles the speed multiplier mid-flight.
func (c *Controller) Tap(p vec.Vec2) {
	if p == PauseTap {
		c.TogglePause()
		return
	}
	switch c.state {
	case StateMenu:
		c.StartGame()
	case StateGameOver:
		if next, ok := Transition(c.state, EventRestart); ok {
			c.state = next
		}
	case StateAnimating:
		c.CycleSpeed()
	}
}

// CycleSpeed steps the multiplier 1x -> 2x -> 4x -> 1x, only mid-flight.
func (c *Controller) CycleSpeed() {
	if c.state != StateAnimating {
		return
	}
	switch c.SpeedMult {
	case 1:
		c.SpeedMult = 2
	case 2:
		c.SpeedMult = 4
	default:
		c.SpeedMult = 1
	}
}

// TogglePause pushes or pops the pause overlay.
func (c *Controller) TogglePause() {
	if c.state == StatePaused {
		c.Resume()
		return
	}
	c.pushOverlay(StatePaused)
}

// OpenSettings pushes the settings overlay; legal on top of pause too.
func (c *Controller) OpenSettings() {
	c.pushOverlay(StateSettings)
}

// Resume pops the innermost overlay, restoring the remembered state.
func (c *Controller) Resume() {
	if len(c.overlays) == 0 {
		return
	}
	c.state = c.overlays[len(c.overlays)-1]
	c.overlays = c.overlays[:len(c.overlays)-1]
}

// ToggleEasyMode flips the easy-mode setting; the profile persists it
// immediately.
func (c *Controller) ToggleEasyMode() {
	c.profile.SetEasyMode(!c.profile.EasyMode())
}

// MoveStart begins an easy-mode launch-point relocation.
func (c *Controller) MoveStart(p vec.Vec2) {
	if !c.profile.EasyMode() || c.state != StateAiming {
		return
	}
	c.moving = true
	c.relocate(p)
}

// MoveEnd completes the relocation at the given position.
func (c *Controller) MoveEnd(p vec.Vec2) {
	if !c.moving {
		return
	}
	c.relocate(p)
	c.moving = false
}

func (c *Controller) relocate(p vec.Vec2) {
	r := c.engine.Layout.BallRadius
	c.LaunchPos.X = clamp(p.X, r, c.engine.Layout.Width-r)
}

// clampAim normalizes a raw pull vector into a legal aim: always upward,
// at least MinAimAngle above horizontal on both sides. Downward or zero
// pulls are invalid and return the zero vector.
func (c *Controller) clampAim(pull vec.Vec2) vec.Vec2 {
	d := pull.Normalize()
	if d.IsZero() || d.Y >= 0 {
		return vec.Vec2{}
	}
	minY := math.Sin(MinAimAngle)
	if -d.Y < minY {
		x := math.Cos(MinAimAngle)
		if d.X < 0 {
			x = -x
		}
		return vec.Vec2{X: x, Y: -minY}
	}
	return d
}

// liveBrickRects collects the collision rectangles of every brick that is
// not fading out, the obstacle set the predictor sees.
func (c *Controller) liveBrickRects() []physics.Rect {
	bricks := c.Board.LiveBricks()
	rects := make([]physics.Rect, 0, len(bricks))
	for _, b := range bricks {
		rects = append(rects, c.engine.Layout.BrickRect(b.Col, b.Row))
	}
	return rects
}

// updateFades advances destroy, collect and effect animations.
func (c *Controller) updateFades(dt float64) {
	for _, b := range c.Board.Bricks {
		if b.Destroying && b.DestroyProgress < 1 {
			b.DestroyProgress = math.Min(1, b.DestroyProgress+dt/destroyFadeSeconds)
		}
	}
	for _, p := range c.Board.Pickups {
		if p.Collected && p.CollectProgress < 1 {
			p.CollectProgress = math.Min(1, p.CollectProgress+dt/collectFadeSeconds)
		}
	}
	effects := c.Effects[:0]
	for _, e := range c.Effects {
		e.Progress += dt / effectFadeSeconds
		if e.Progress < 1 {
			effects = append(effects, e)
		}
	}
	c.Effects = effects
}

func (c *Controller) defaultLaunchPos() vec.Vec2 {
	l := c.engine.Layout
	return vec.New(l.Width/2, l.LaunchY-l.BallRadius)
}

func (c *Controller) pushOverlay(s State) {
	if !canHostOverlay(c.state) || len(c.overlays) >= overlayDepthLimit {
		return
	}
	c.overlays = append(c.overlays, c.state)
	c.state = s
}

func (c *Controller) sound(s Sound) {
	c.sounds = append(c.sounds, s)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
