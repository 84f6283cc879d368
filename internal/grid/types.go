package grid

import "fmt"

// PickupType enumerates what a pickup does when collected. Adding a type
// means extending every switch below; the compiler and the default panic
// keep the dispatch exhaustive.
type PickupType int

const (
	PickupPlus1 PickupType = iota
	PickupTimes2
	PickupTimes3
	PickupTimes5
	PickupTimes10
)

// Gain returns how many balls collecting the pickup adds, given the current
// ball count. The standard pickup adds one; a multiplier brings the total to
// current times its factor.
func (t PickupType) Gain(current int) int {
	switch t {
	case PickupPlus1:
		return 1
	case PickupTimes2:
		return current
	case PickupTimes3:
		return current * 2
	case PickupTimes5:
		return current * 4
	case PickupTimes10:
		return current * 9
	default:
		panic(fmt.Sprintf("grid: unknown pickup type %d", t))
	}
}

// Label returns the collect-effect display text.
func (t PickupType) Label() string {
	switch t {
	case PickupPlus1:
		return "+1"
	case PickupTimes2:
		return "x2"
	case PickupTimes3:
		return "x3"
	case PickupTimes5:
		return "x5"
	case PickupTimes10:
		return "x10"
	default:
		panic(fmt.Sprintf("grid: unknown pickup type %d", t))
	}
}

// Weight returns the type's relative spawn weight.
func (t PickupType) Weight() float64 {
	switch t {
	case PickupPlus1:
		return 1.0
	case PickupTimes2:
		return 0.2
	case PickupTimes3:
		return 0.143
	case PickupTimes5:
		return 0.1
	case PickupTimes10:
		return 0.05
	default:
		panic(fmt.Sprintf("grid: unknown pickup type %d", t))
	}
}

// PickupTypes lists every type in weight order for sampling and tests.
var PickupTypes = []PickupType{
	PickupPlus1,
	PickupTimes2,
	PickupTimes3,
	PickupTimes5,
	PickupTimes10,
}

// Brick is one numbered block on the grid. Hits stays positive while the
// brick is live; reaching exactly zero starts the destroy fade, and the
// board compaction removes it once DestroyProgress reaches 1.
type Brick struct {
	ID              int
	Col             int
	Row             int
	Hits            int
	Destroying      bool
	DestroyProgress float64 // 0 to 1 fade-out fraction
}

// Damage decrements the hit counter by one contact and starts the destroy
// fade when it reaches zero. Damaging an already destroying brick is a
// programmer error.
func (b *Brick) Damage() {
	if b.Hits <= 0 {
		panic(fmt.Sprintf("grid: damaging brick %d with hits=%d", b.ID, b.Hits))
	}
	b.Hits--
	if b.Hits == 0 {
		b.Destroying = true
	}
}

// Pickup is a collectible occupying a grid cell no brick uses. Collecting
// starts the float-up fade; compaction removes it once done.
type Pickup struct {
	ID              int
	Col             int
	Row             int
	Type            PickupType
	Collected       bool
	CollectProgress float64 // 0 to 1 fade fraction
}
