package lines

import (
	"math/rand"
	"slices"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// NewRand returns a seeded generator suitable for one game session.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Placement pairs a cell with the ball placed on it.
type Placement struct {
	Cell Cell
	Ball Ball
}

// Spawner picks empty cells for new balls. It keeps one random source for
// its whole life so a fixed seed reproduces a whole game.
type Spawner struct {
	rng Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Rand) *Spawner {
	return &Spawner{rng: rng}
}

// ChooseSpawnPositions picks min(len(balls), len(empty)) distinct cells from
// empty uniformly at random and pairs them with balls in order.
func (s *Spawner) ChooseSpawnPositions(empty []Cell, balls []Ball) []Placement {
	n := min(len(balls), len(empty))
	if n == 0 {
		return nil
	}

	pool := slices.Clone(empty)
	out := make([]Placement, 0, n)
	for _, ball := range balls[:n] {
		i := s.rng.Intn(len(pool))
		out = append(out, Placement{Cell: pool[i], Ball: ball})
		pool = slices.Delete(pool, i, i+1)
	}
	return out
}

// RandomBalls draws n balls with colours uniformly from palette.
func RandomBalls(rng Rand, palette []Color, n int) []Ball {
	if n <= 0 || len(palette) == 0 {
		return nil
	}
	balls := make([]Ball, n)
	for i := range balls {
		balls[i] = NewBall(palette[rng.Intn(len(palette))])
	}
	return balls
}
