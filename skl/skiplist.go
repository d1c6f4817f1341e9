package skl

import "github.com/pkg/errors"

// ErrMalformedList is raised when a SkipList is built without an ordering.
var ErrMalformedList = errors.New("the list was not init-ed properly")

// SkipList is an ordered multi-level linked list. Every level is bounded by
// a head and a tail sentinel, and the sentinels of adjacent levels are linked
// vertically. Levels are materialized lazily: an empty list has height 0 and
// no sentinels at all.
//
// The bottom-level tail sentinel is the list's End position. SkipList is not
// safe for concurrent use.
type SkipList[K, V any] struct {
	less  Less[K]
	nodes arena[K, V]

	// head and tail bound the top level.
	head, tail Ref
	// bottomHead and bottomTail bound level 0.
	bottomHead, bottomTail Ref

	height int
	length int

	config Config
	rng    *RNG
}

// New creates an empty SkipList ordered by less.
func New[K, V any](less Less[K], opts ...func(*Config)) *SkipList[K, V] {
	if less == nil {
		panic(errors.Wrap(ErrMalformedList, "nil Less"))
	}

	config := NewConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config = config.normalize()

	return &SkipList[K, V]{
		less:       less,
		head:       Nil,
		tail:       Nil,
		bottomHead: Nil,
		bottomTail: Nil,
		config:     config,
		rng:        newRNG(config.seed),
	}
}

func (list *SkipList[K, V]) node(r Ref) *node[K, V] {
	return list.nodes.at(r)
}

// Less returns the ordering the list was built with.
func (list *SkipList[K, V]) Less() Less[K] { return list.less }

// Config returns the list's effective configuration.
func (list *SkipList[K, V]) Config() Config { return list.config }

// Len returns the number of keys stored, counting each key once regardless
// of how many levels it occupies.
func (list *SkipList[K, V]) Len() int { return list.length }

// Height returns the current number of levels.
func (list *SkipList[K, V]) Height() int { return list.height }

// End returns the bottom-level tail sentinel, or Nil while the list has
// never been materialized.
func (list *SkipList[K, V]) End() Ref { return list.bottomTail }

// REnd returns the bottom-level head sentinel, the End of reverse traversal.
func (list *SkipList[K, V]) REnd() Ref { return list.bottomHead }

// Begin returns the first bottom-level node, or End when empty.
func (list *SkipList[K, V]) Begin() Ref {
	if list.height == 0 {
		return Nil
	}
	return list.node(list.bottomHead).next
}

// RBegin returns the last bottom-level node, or REnd when empty.
func (list *SkipList[K, V]) RBegin() Ref {
	if list.height == 0 {
		return Nil
	}
	return list.node(list.bottomTail).prev
}

// Next returns r's successor on its level.
func (list *SkipList[K, V]) Next(r Ref) Ref {
	if r == Nil {
		return Nil
	}
	return list.node(r).next
}

// Prev returns r's predecessor on its level.
func (list *SkipList[K, V]) Prev(r Ref) Ref {
	if r == Nil {
		return Nil
	}
	return list.node(r).prev
}

// IsSentinel reports whether r is a level boundary rather than an entry.
func (list *SkipList[K, V]) IsSentinel(r Ref) bool {
	return r == Nil || list.node(r).sentinel
}

// Key returns the key stored at r. r must not be a sentinel.
func (list *SkipList[K, V]) Key(r Ref) K {
	return list.node(r).key
}

// Value returns a pointer to the value stored at bottom-level node r. The
// pointer stays valid until the key is removed or the list is cleared.
func (list *SkipList[K, V]) Value(r Ref) *V {
	return &list.node(r).val
}

// Levels returns how many levels the entry at r occupies.
func (list *SkipList[K, V]) Levels(r Ref) int {
	if list.IsSentinel(r) {
		return 0
	}
	n := 0
	for ; r != Nil; r = list.node(r).up {
		n++
	}
	return n
}

// Get retrieves the value associated with key. If the key does not exist
// ErrKeyNotFound is returned.
func (list *SkipList[K, V]) Get(key K) (V, error) {
	r := list.Search(key)
	if list.IsSentinel(r) {
		var empty V
		return empty, ErrKeyNotFound
	}
	return list.node(r).val, nil
}
