package app

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/qhalsey/BlitzBallz/internal/audio"
	"github.com/qhalsey/BlitzBallz/internal/config"
	"github.com/qhalsey/BlitzBallz/internal/game"
	"github.com/qhalsey/BlitzBallz/internal/grid"
	"github.com/qhalsey/BlitzBallz/internal/physics"
	"github.com/qhalsey/BlitzBallz/internal/store"
	"github.com/qhalsey/BlitzBallz/internal/ui"
	"github.com/qhalsey/BlitzBallz/internal/vec"
)

// keyAimStep is how far one arrow press swings the keyboard aim, radians.
const keyAimStep = 3.0 * math.Pi / 180

// moveStep is how far one nudge key shifts the launch point, play units.
const moveStep = 15.0

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg        *config.Config
	screen     *ui.Screen
	renderer   *ui.Renderer
	controller *game.Controller

	// Input state
	mouseAiming bool
	keyAiming   bool
	keyAngle    float64 // radians from vertical, negative aims left

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It builds the game, initializes the screen, sets up signal handling,
// and runs the frame loop until quit.
func (a *App) Run() error {
	// Initialize audio (ignore errors - game works without sound)
	if !a.cfg.Mute {
		_ = audio.Init()
	}

	a.controller = a.buildController()

	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	runErr := a.mainLoop()

	a.cleanup()
	return runErr
}

// buildController assembles the physics, spawning and persistence stack
// from the configuration.
func (a *App) buildController() *game.Controller {
	layout := physics.NewLayout(a.cfg.Columns)
	engine := physics.NewEngine(layout)

	gridCfg := grid.DefaultConfig()
	gridCfg.Columns = a.cfg.Columns
	gridCfg.LastRow = layout.LastRow

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	spawner := grid.NewSpawner(gridCfg, seed)

	profile := store.LoadProfile(store.NewStore(a.cfg.ResolveDataDir()))

	c := game.NewController(engine, spawner, profile)
	c.SetMaxBounces(a.cfg.Bounces)
	return c
}

// mainLoop is the main event loop that handles all input and frame updates.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	// Ticker for updating and rendering at ~60fps
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			a.controller.Update(dt)
			a.playSounds()
			a.renderer.Render(a.controller)
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.screen.Clear()
		a.renderer.Render(a.controller)
	}

	return false
}

// handleKey dispatches a decoded key action to the controller.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ui.KeyToAction(ev.Key(), ev.Rune()) {
	case ui.ActionQuit:
		return true

	case ui.ActionConfirm:
		if a.controller.State() == game.StateAiming && a.keyAiming {
			a.controller.AimEnd()
			a.keyAiming = false
			return false
		}
		a.controller.Tap(a.courtCenter())

	case ui.ActionPause:
		a.controller.Tap(game.PauseTap)

	case ui.ActionSettings:
		a.controller.OpenSettings()

	case ui.ActionEasyToggle:
		a.controller.ToggleEasyMode()

	case ui.ActionSpeed:
		a.controller.CycleSpeed()

	case ui.ActionAimLeft:
		a.keyAim(-keyAimStep)

	case ui.ActionAimRight:
		a.keyAim(keyAimStep)

	case ui.ActionMoveLeft:
		a.nudgeLaunch(-moveStep)

	case ui.ActionMoveRight:
		a.nudgeLaunch(moveStep)
	}
	return false
}

// handleMouse runs the drag-to-aim cycle and discrete taps. Press begins
// or updates a drag; release either fires the aim or counts as a tap.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := a.renderer.Viewport().ToPlay(x, y)

	pressed := ev.Buttons()&tcell.Button1 != 0

	switch a.controller.State() {
	case game.StateAiming:
		if pressed && !a.mouseAiming {
			a.mouseAiming = true
			a.keyAiming = false
			a.controller.AimStart(pos)
		} else if pressed {
			a.controller.AimMove(pos)
		} else if a.mouseAiming {
			a.mouseAiming = false
			a.controller.AimEnd()
		}

	default:
		a.mouseAiming = false
		if pressed {
			a.controller.Tap(pos)
		}
	}
}

// keyAim swings the keyboard aim and feeds it to the controller as a
// synthetic pull below the launch point.
func (a *App) keyAim(delta float64) {
	if a.controller.State() != game.StateAiming {
		return
	}
	if !a.keyAiming {
		a.keyAiming = true
		a.keyAngle = 0
		a.controller.AimStart(a.keyAimPull())
		return
	}
	limit := math.Pi/2 - game.MinAimAngle
	a.keyAngle = math.Max(-limit, math.Min(limit, a.keyAngle+delta))
	a.controller.AimMove(a.keyAimPull())
}

// keyAimPull returns the pointer position whose slingshot inversion yields
// the current keyboard aim direction.
func (a *App) keyAimPull() vec.Vec2 {
	dir := vec.New(math.Sin(a.keyAngle), -math.Cos(a.keyAngle))
	return a.controller.LaunchPos.Sub(dir.Scale(100))
}

// nudgeLaunch shifts the launch point sideways, easy mode only.
func (a *App) nudgeLaunch(dx float64) {
	target := a.controller.LaunchPos
	target.X += dx
	a.controller.MoveStart(target)
	a.controller.MoveEnd(target)
}

// courtCenter is a throwaway non-sentinel tap position.
func (a *App) courtCenter() vec.Vec2 {
	l := a.controller.Layout()
	return vec.New(l.Width/2, l.Height/2)
}

// playSounds drains the controller's sound queue into the audio package.
func (a *App) playSounds() {
	for _, s := range a.controller.DrainSounds() {
		switch s {
		case game.SoundLaunch:
			audio.PlayLaunch()
		case game.SoundWallBounce:
			audio.PlayWallBounce()
		case game.SoundBrickHit:
			audio.PlayBrickHit()
		case game.SoundBrickDestroyed:
			audio.PlayBrickDestroyed()
		case game.SoundPickup:
			audio.PlayPickup()
		case game.SoundGameOver:
			audio.PlayGameOver()
		}
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}
}
