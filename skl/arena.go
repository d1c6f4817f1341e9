package skl

const (
	chunkBits = 7
	chunkSize = 1 << chunkBits
	chunkMask = chunkSize - 1
)

// arena owns every node of a list. Nodes live in fixed-size chunks that are
// never reallocated, so a *V handed out for a live node stays valid.
type arena[K, V any] struct {
	chunks [][]node[K, V]
	free   []Ref
	used   int
}

func (a *arena[K, V]) at(r Ref) *node[K, V] {
	return &a.chunks[r>>chunkBits][r&chunkMask]
}

// acquire returns a detached node slot, reusing released slots first.
func (a *arena[K, V]) acquire(key K, val V, sentinel bool) Ref {
	var r Ref
	if n := len(a.free); n > 0 {
		r = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if a.used>>chunkBits == len(a.chunks) {
			a.chunks = append(a.chunks, make([]node[K, V], chunkSize))
		}
		r = Ref(a.used)
		a.used++
	}

	n := a.at(r)
	n.key = key
	n.val = val
	n.sentinel = sentinel
	n.unlinked()
	return r
}

func (a *arena[K, V]) acquireSentinel() Ref {
	var (
		zeroK K
		zeroV V
	)
	return a.acquire(zeroK, zeroV, true)
}

func (a *arena[K, V]) release(r Ref) {
	if r == Nil {
		return
	}
	n := a.at(r)
	var (
		zeroK K
		zeroV V
	)
	n.key = zeroK
	n.val = zeroV
	n.sentinel = false
	n.unlinked()
	a.free = append(a.free, r)
}

// live reports the number of slots currently handed out.
func (a *arena[K, V]) live() int {
	return a.used - len(a.free)
}

func (a *arena[K, V]) reset() {
	a.chunks = nil
	a.free = nil
	a.used = 0
}
