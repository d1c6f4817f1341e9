package skl

// advance walks right from x along x's level while the next entry satisfies
// before, and returns the last node passed (possibly x itself).
func (list *SkipList[K, V]) advance(x Ref, before func(K) bool) Ref {
	for {
		next := list.node(x).next
		n := list.node(next)
		if n.sentinel || !before(n.key) {
			return x
		}
		x = next
	}
}

// highest returns the occurrence of key on the highest level it reaches, or
// Nil. The descent stops at the first level where the key is met.
func (list *SkipList[K, V]) highest(key K) Ref {
	if list.height == 0 {
		return Nil
	}
	lessThanKey := func(k K) bool { return list.less(k, key) }

	x := list.head
	for {
		x = list.advance(x, lessThanKey)
		n := list.node(x)
		next := list.node(n.next)
		if !next.sentinel && !list.less(key, next.key) {
			return n.next
		}
		if n.down == Nil {
			return Nil
		}
		x = n.down
	}
}

// bottom follows r's vertical chain down to level 0.
func (list *SkipList[K, V]) bottom(r Ref) Ref {
	for {
		down := list.node(r).down
		if down == Nil {
			return r
		}
		r = down
	}
}

// Search returns the bottom-level node holding key, or End when the key is
// absent.
func (list *SkipList[K, V]) Search(key K) Ref {
	r := list.highest(key)
	if r == Nil {
		return list.bottomTail
	}
	return list.bottom(r)
}

// SeekGE returns the first bottom-level node whose key is not less than key,
// or End when there is none.
func (list *SkipList[K, V]) SeekGE(key K) Ref {
	if list.height == 0 {
		return Nil
	}
	lessThanKey := func(k K) bool { return list.less(k, key) }

	x := list.head
	for {
		x = list.advance(x, lessThanKey)
		n := list.node(x)
		if n.down == Nil {
			return n.next
		}
		x = n.down
	}
}

// LevelKeys returns the keys present on level, 0 being the bottom.
func (list *SkipList[K, V]) LevelKeys(level int) []K {
	if level < 0 || level >= list.height {
		return nil
	}
	x := list.head
	for i := list.height - 1; i > level; i-- {
		x = list.node(x).down
	}

	var keys []K
	for r := list.node(x).next; !list.node(r).sentinel; r = list.node(r).next {
		keys = append(keys, list.node(r).key)
	}
	return keys
}
