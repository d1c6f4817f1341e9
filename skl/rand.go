package skl

const (
	defaultSeed = uint64(0xdeadbeefcafebabe)
	float64Unit = 1.0 / (1 << 53)
)

// RNG is a xorshift generator owned by a single list. It is seeded once and
// drawn from repeatedly.
type RNG struct {
	state uint64
}

func newRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{state: seed}
}

func (r *RNG) next64() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	if x == 0 {
		x = defaultSeed
	}
	r.state = x
	return x * 2685821657736338717
}

// Float64 returns a uniform draw in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next64()>>11) * float64Unit
}

// level draws the level of a new node: it starts at 1 and climbs while the
// level does not exceed the current height, stays under maxLevel and the
// draw falls under p. A list therefore grows by at most one level per insert.
func (r *RNG) level(height, maxLevel int, p float64) int {
	lvl := 1
	for lvl <= height && lvl < maxLevel && r.Float64() < p {
		lvl++
	}
	return lvl
}
