package skl

// materialize creates the bottom sentinel pair of an empty list.
func (list *SkipList[K, V]) materialize() {
	head := list.nodes.acquireSentinel()
	tail := list.nodes.acquireSentinel()
	list.node(head).next = tail
	list.node(tail).prev = head

	list.head, list.tail = head, tail
	list.bottomHead, list.bottomTail = head, tail
	list.height = 1
}

// grow puts a new empty level on top.
func (list *SkipList[K, V]) grow() {
	head := list.nodes.acquireSentinel()
	tail := list.nodes.acquireSentinel()
	h, t := list.node(head), list.node(tail)
	h.next = tail
	t.prev = head

	h.down = list.head
	list.node(list.head).up = head
	t.down = list.tail
	list.node(list.tail).up = tail

	list.head, list.tail = head, tail
	list.height++
}

// collapse drops empty top levels while more than one level remains.
func (list *SkipList[K, V]) collapse() {
	for list.height > 1 && list.node(list.head).next == list.tail {
		head, tail := list.head, list.tail
		list.head = list.node(head).down
		list.tail = list.node(tail).down
		list.node(list.head).up = Nil
		list.node(list.tail).up = Nil

		list.nodes.release(head)
		list.nodes.release(tail)
		list.height--
	}
}

func (list *SkipList[K, V]) spliceAfter(pred, r Ref) {
	p := list.node(pred)
	n := list.node(r)
	n.prev = pred
	n.next = p.next
	list.node(p.next).prev = r
	p.next = r
}

func (list *SkipList[K, V]) unlink(r Ref) {
	n := list.node(r)
	list.node(n.prev).next = n.next
	list.node(n.next).prev = n.prev
}

// Insert places key after every key not greater than it, on a randomly drawn
// number of levels, and returns the bottom-level node. Insert does not check
// for an existing equal key: callers that need unique keys search first.
func (list *SkipList[K, V]) Insert(key K, val V) Ref {
	if list.height == 0 {
		list.materialize()
	}

	lvl := list.rng.level(list.height, list.config.MaxLevel(), list.config.p)
	if lvl > list.height {
		list.grow()
	}

	notGreater := func(k K) bool { return !list.less(key, k) }

	var (
		zeroV   V
		above   = Nil
		created = Nil
		x       = list.head
	)
	for level := list.height; ; level-- {
		x = list.advance(x, notGreater)
		if level <= lvl {
			stored := zeroV
			if level == 1 {
				stored = val
			}
			r := list.nodes.acquire(key, stored, false)
			list.spliceAfter(x, r)
			if above != Nil {
				list.node(above).down = r
				list.node(r).up = above
			}
			above = r
			created = r
		}
		if level == 1 {
			break
		}
		x = list.node(x).down
	}

	list.length++
	return created
}

// Remove unlinks key from every level it occupies and reports whether it was
// present. Removing an absent key is a no-op.
func (list *SkipList[K, V]) Remove(key K) bool {
	r := list.highest(key)
	if r == Nil {
		return false
	}
	for r != Nil {
		down := list.node(r).down
		list.unlink(r)
		list.nodes.release(r)
		r = down
	}

	list.length--
	list.collapse()
	return true
}

// Clear drops every node and sentinel; the list returns to height 0.
func (list *SkipList[K, V]) Clear() {
	list.nodes.reset()
	list.head, list.tail = Nil, Nil
	list.bottomHead, list.bottomTail = Nil, Nil
	list.height = 0
	list.length = 0
}
