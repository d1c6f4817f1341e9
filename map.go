// Package skipmap implements an ordered map on top of a skip list, fronted
// by a small recency cache that speeds up repeated lookups of the same keys.
//
// Keys only need a strict weak ordering; two keys are equal when neither is
// less than the other. A Map is not safe for concurrent use.
package skipmap

import (
	"iter"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/metailurini/skipmap/skl"
)

// ErrKeyNotFound is returned by At when the key is absent.
var ErrKeyNotFound = skl.ErrKeyNotFound

// Pair is a key and its value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map. Every read consults the cache first and falls back
// to the skip list, which stays the single source of truth.
type Map[K, V any] struct {
	list  *skl.SkipList[K, V]
	cache *cache[K]
	opts  []Option
	stats Stats
}

// New returns an empty Map ordered by less.
func New[K, V any](less func(a, b K) bool, opts ...Option) *Map[K, V] {
	c := newConfig(opts)
	m := &Map[K, V]{
		list: skl.New[K, V](less, c.list...),
		opts: opts,
	}
	m.cache = newCache[K](less, c.cacheCapacity, &m.stats)
	return m
}

// NewOrdered returns an empty Map ordered by the natural order of K.
func NewOrdered[K constraints.Ordered, V any](opts ...Option) *Map[K, V] {
	return New[K, V](func(a, b K) bool { return a < b }, opts...)
}

// NewFrom returns a Map holding pairs. When a key repeats, the later pair
// wins.
func NewFrom[K, V any](less func(a, b K) bool, pairs []Pair[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](less, opts...)
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// resolve finds key through the cache, then the skip list. On a miss the
// returned Ref is End.
func (m *Map[K, V]) resolve(key K) (skl.Ref, bool) {
	if r, ok := m.cache.lookup(key); ok {
		return r, true
	}
	r := m.list.Search(key)
	return r, !m.list.IsSentinel(r)
}

func (m *Map[K, V]) iterator(r skl.Ref) Iterator[K, V] {
	return Iterator[K, V]{list: m.list, ref: r}
}

// Find returns an Iterator at key, or End when the key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	r, ok := m.resolve(key)
	if ok {
		m.cache.insertOrTouch(key, r)
	}
	return m.iterator(r)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.Find(key).Valid()
}

// At returns a pointer to the value stored for key. It fails with
// ErrKeyNotFound, leaving the map untouched, when the key is absent.
func (m *Map[K, V]) At(key K) (*V, error) {
	r, ok := m.resolve(key)
	if !ok {
		return nil, errors.Wrapf(ErrKeyNotFound, "key %v", key)
	}
	m.cache.insertOrTouch(key, r)
	return m.list.Value(r), nil
}

// Get returns the value stored for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, err := m.At(key)
	if err != nil {
		var zero V
		return zero, false
	}
	return *v, true
}

// Index returns a pointer to the value stored for key, inserting the zero
// value first when the key is absent.
func (m *Map[K, V]) Index(key K) *V {
	r, ok := m.resolve(key)
	if ok {
		m.cache.insertOrTouch(key, r)
		return m.list.Value(r)
	}

	var zero V
	r = m.list.Insert(key, zero)
	m.stats.Inserts++
	return m.list.Value(r)
}

// Insert adds key with value unless the key is already present. It returns
// an Iterator at the key's entry and whether an insertion took place; an
// existing value is left unchanged.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	r, ok := m.resolve(key)
	if ok {
		m.cache.insertOrTouch(key, r)
		return m.iterator(r), false
	}

	r = m.list.Insert(key, value)
	m.stats.Inserts++
	return m.iterator(r), true
}

// Set stores value for key. It returns the previous value and true when an
// existing entry was replaced.
func (m *Map[K, V]) Set(key K, value V) (V, bool) {
	it, inserted := m.Insert(key, value)
	if inserted {
		var zero V
		return zero, false
	}
	v := it.Value()
	old := *v
	*v = value
	return old, true
}

// Erase removes key and reports whether it was present. Erasing an absent
// key is a no-op.
func (m *Map[K, V]) Erase(key K) bool {
	m.cache.remove(key)
	if !m.list.Remove(key) {
		return false
	}
	m.stats.Erases++
	return true
}

// EraseAt removes the entry it points at. Iterators at End, or belonging to
// another Map, are ignored.
func (m *Map[K, V]) EraseAt(it Iterator[K, V]) {
	if it.list != m.list || !it.Valid() {
		return
	}
	m.Erase(it.Key())
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.list.Len() }

// Empty reports whether the map has no entries.
func (m *Map[K, V]) Empty() bool { return m.list.Len() == 0 }

// Height returns the number of levels of the underlying skip list.
func (m *Map[K, V]) Height() int { return m.list.Height() }

// Stats returns counters of cache and mutation activity.
func (m *Map[K, V]) Stats() Stats { return m.stats }

// Clear removes every entry and empties the cache. Iterators and value
// pointers obtained before are invalidated.
func (m *Map[K, V]) Clear() {
	m.cache.clear()
	m.list.Clear()
}

// Clone returns a copy with the same ordering and options. The copy starts
// with a cold cache.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := New[K, V](m.list.Less(), m.opts...)
	c.copyFrom(m)
	return c
}

// Assign replaces m's contents with a copy of src's entries and empties m's
// cache. Assigning a map to itself is a no-op.
func (m *Map[K, V]) Assign(src *Map[K, V]) {
	if src == m {
		return
	}
	m.Clear()
	m.copyFrom(src)
}

// copyFrom re-inserts src's entries in ascending order; m must be empty.
func (m *Map[K, V]) copyFrom(src *Map[K, V]) {
	for r := src.list.Begin(); !src.list.IsSentinel(r); r = src.list.Next(r) {
		m.list.Insert(src.list.Key(r), *src.list.Value(r))
	}
}

// Begin returns an Iterator at the smallest key, or End when empty.
func (m *Map[K, V]) Begin() Iterator[K, V] { return m.iterator(m.list.Begin()) }

// End returns the Iterator one past the largest key.
func (m *Map[K, V]) End() Iterator[K, V] { return m.iterator(m.list.End()) }

// CBegin is Begin for read-only access.
func (m *Map[K, V]) CBegin() ConstIterator[K, V] { return m.Begin().Const() }

// CEnd is End for read-only access.
func (m *Map[K, V]) CEnd() ConstIterator[K, V] { return m.End().Const() }

// RBegin returns a ReverseIterator at the largest key, or REnd when empty.
func (m *Map[K, V]) RBegin() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{list: m.list, ref: m.list.RBegin()}
}

// REnd returns the ReverseIterator one before the smallest key.
func (m *Map[K, V]) REnd() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{list: m.list, ref: m.list.REnd()}
}

// SeekGE returns an Iterator at the first key not less than key, or End.
func (m *Map[K, V]) SeekGE(key K) Iterator[K, V] {
	return m.iterator(m.list.SeekGE(key))
}

// All yields entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); it.Valid(); it.Next() {
			if !yield(it.Key(), *it.Value()) {
				return
			}
		}
	}
}

// Backward yields entries in descending key order.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.RBegin(); it.Valid(); it.Next() {
			if !yield(it.Key(), *it.Value()) {
				return
			}
		}
	}
}

// Entries returns the entries in ascending key order.
func (m *Map[K, V]) Entries() []Pair[K, V] {
	entries := make([]Pair[K, V], 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Pair[K, V]{Key: k, Value: v})
	}
	return entries
}

// Keys returns the keys in ascending order.
func (m *Map[K, V]) Keys() []K {
	return lo.Map(m.Entries(), func(p Pair[K, V], _ int) K { return p.Key })
}
