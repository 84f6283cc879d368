package grid

// Board is the arena of grid entities. IDs are stable and monotonic; entity
// removal is expressed through the destroying/collected flags and resolved
// at a single point per turn by Compact, so iteration order never breaks
// mid-frame.
type Board struct {
	Bricks  []*Brick
	Pickups []*Pickup

	nextID int
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{nextID: 1}
}

// AddBrick places a new brick and returns it.
func (b *Board) AddBrick(col, row, hits int) *Brick {
	brick := &Brick{ID: b.nextID, Col: col, Row: row, Hits: hits}
	b.nextID++
	b.Bricks = append(b.Bricks, brick)
	return brick
}

// AddPickup places a new pickup and returns it.
func (b *Board) AddPickup(col, row int, t PickupType) *Pickup {
	p := &Pickup{ID: b.nextID, Col: col, Row: row, Type: t}
	b.nextID++
	b.Pickups = append(b.Pickups, p)
	return p
}

// LiveBricks returns the bricks that still collide, excluding ones fading out.
func (b *Board) LiveBricks() []*Brick {
	live := make([]*Brick, 0, len(b.Bricks))
	for _, brick := range b.Bricks {
		if !brick.Destroying {
			live = append(live, brick)
		}
	}
	return live
}

// Compact drops bricks that finished destroying and pickups that finished
// their collect fade. Called once per turn at resolution.
func (b *Board) Compact() {
	bricks := b.Bricks[:0]
	for _, brick := range b.Bricks {
		if brick.Destroying && brick.DestroyProgress >= 1 {
			continue
		}
		bricks = append(bricks, brick)
	}
	b.Bricks = bricks

	pickups := b.Pickups[:0]
	for _, p := range b.Pickups {
		if p.Collected && p.CollectProgress >= 1 {
			continue
		}
		pickups = append(pickups, p)
	}
	b.Pickups = pickups
}
