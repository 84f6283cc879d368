package grid

import "math/rand"

// Default spawn tuning.
const (
	DefaultColumns    = 7
	DefaultMinBricks  = 3
	DefaultMaxBricks  = 5
	DefaultMaxPickups = 1
	DefaultLastRow    = 8
	// DefaultHitVariance spreads brick hit counts around the level number.
	DefaultHitVariance = 0.20
)

// Config tunes the spawner.
type Config struct {
	Columns     int
	MinBricks   int
	MaxBricks   int
	MaxPickups  int // per-row pickup cap
	LastRow     int // first row index past the playable area
	HitVariance float64
}

// DefaultConfig returns the standard spawn tuning.
func DefaultConfig() Config {
	return Config{
		Columns:     DefaultColumns,
		MinBricks:   DefaultMinBricks,
		MaxBricks:   DefaultMaxBricks,
		MaxPickups:  DefaultMaxPickups,
		LastRow:     DefaultLastRow,
		HitVariance: DefaultHitVariance,
	}
}

// Spawner procedurally fills new rows and owns the row-advance and
// game-over checks. Pickup types are drawn by weight, keyed to the level.
type Spawner struct {
	cfg Config
	rng *rand.Rand
}

// NewSpawner creates a spawner seeded for a reproducible run.
func NewSpawner(cfg Config, seed int64) *Spawner {
	return &Spawner{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// Config returns the spawner's tuning.
func (s *Spawner) Config() Config {
	return s.cfg
}

// SpawnRow fills row 0 of the board with a fresh set of bricks and pickups
// for the given level. Brick count is uniform in [MinBricks,MaxBricks] over
// distinct random columns; pickups go in leftover columns up to the cap, so
// a brick and a pickup never share a cell.
func (s *Spawner) SpawnRow(board *Board, level int) {
	cols := s.rng.Perm(s.cfg.Columns)

	count := s.cfg.MinBricks + s.rng.Intn(s.cfg.MaxBricks-s.cfg.MinBricks+1)
	if count > len(cols) {
		count = len(cols)
	}
	for _, col := range cols[:count] {
		board.AddBrick(col, 0, s.brickHits(level))
	}

	free := cols[count:]
	pickups := s.cfg.MaxPickups
	if pickups > len(free) {
		pickups = len(free)
	}
	for _, col := range free[:pickups] {
		board.AddPickup(col, 0, s.pickType())
	}
}

// brickHits returns max(1, level ± variance) with the variance a fixed
// fraction of the level, rounded down, applied as a symmetric random offset.
func (s *Spawner) brickHits(level int) int {
	v := int(float64(level) * s.cfg.HitVariance)
	hits := level
	if v > 0 {
		hits += s.rng.Intn(2*v+1) - v
	}
	if hits < 1 {
		hits = 1
	}
	return hits
}

// pickType draws a pickup type by cumulative weight: a uniform value over
// the total weight, walked down type by type. The standard type backstops
// floating point edge cases.
func (s *Spawner) pickType() PickupType {
	total := 0.0
	for _, t := range PickupTypes {
		total += t.Weight()
	}

	u := s.rng.Float64() * total
	for _, t := range PickupTypes {
		u -= t.Weight()
		if u <= 0 {
			return t
		}
	}
	return PickupPlus1
}

// AdvanceRows moves every brick and pickup one row toward the bottom.
func (s *Spawner) AdvanceRows(board *Board) {
	for _, b := range board.Bricks {
		b.Row++
	}
	for _, p := range board.Pickups {
		p.Row++
	}
}

// IsGameOver reports whether any brick has reached the last playable row.
func (s *Spawner) IsGameOver(board *Board) bool {
	for _, b := range board.Bricks {
		if b.Row >= s.cfg.LastRow {
			return true
		}
	}
	return false
}

// PruneFallen removes pickups that scrolled past the last playable row
// without being collected. They are lost, not collected.
func (s *Spawner) PruneFallen(board *Board) {
	pickups := board.Pickups[:0]
	for _, p := range board.Pickups {
		if !p.Collected && p.Row >= s.cfg.LastRow {
			continue
		}
		pickups = append(pickups, p)
	}
	board.Pickups = pickups
}
