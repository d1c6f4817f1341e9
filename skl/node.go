package skl

// node is one level occurrence of an entry, or a sentinel bounding a level.
// Only the bottom-level node of a key holds its value; upper occurrences
// carry the key alone.
type node[K, V any] struct {
	key K
	val V

	next, prev Ref
	up, down   Ref

	sentinel bool
}

func (n *node[K, V]) unlinked() {
	n.next, n.prev = Nil, Nil
	n.up, n.down = Nil, Nil
}
