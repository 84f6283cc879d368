package game

import (
	"github.com/qhalsey/BlitzBallz/internal/physics"
	"github.com/qhalsey/BlitzBallz/internal/vec"
)

// Ball is one launched projectile. Balls live only for the duration of a
// turn: created inactive at launch, activated one by one on the launch
// cadence, deactivated when they return to the launch zone, and cleared at
// turn resolution.
type Ball struct {
	ID       int
	Body     physics.Body
	Active   bool
	Returned bool
}

// CollectEffect is the transient floating label spawned when a pickup is
// collected. Purely cosmetic; discarded once Progress reaches 1.
type CollectEffect struct {
	Pos      vec.Vec2
	Text     string
	Progress float64 // 0 to 1
}
