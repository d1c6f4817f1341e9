package skipmap

import "github.com/metailurini/skipmap/skl"

// Position is a place in a Map. Iterator and ConstIterator are both
// Positions and compare equal when they point at the same node.
type Position[K, V any] interface {
	position() (*skl.SkipList[K, V], skl.Ref)
}

// Iterator is a forward cursor over a Map's entries that allows the value
// to be modified in place.
//
// Key and Value must only be called when Valid reports true. An Iterator is
// invalidated when its entry is erased or the map is cleared.
type Iterator[K, V any] struct {
	list *skl.SkipList[K, V]
	ref  skl.Ref
}

func (it Iterator[K, V]) position() (*skl.SkipList[K, V], skl.Ref) {
	return it.list, it.ref
}

// Valid reports whether the iterator points at an entry rather than a
// boundary.
func (it Iterator[K, V]) Valid() bool {
	return it.list != nil && !it.list.IsSentinel(it.ref)
}

// Next moves to the following entry and reports whether it is valid.
func (it *Iterator[K, V]) Next() bool {
	it.ref = it.list.Next(it.ref)
	return it.Valid()
}

// Prev moves to the preceding entry and reports whether it is valid. Prev on
// End moves to the last entry.
func (it *Iterator[K, V]) Prev() bool {
	it.ref = it.list.Prev(it.ref)
	return it.Valid()
}

// Key returns the key at the iterator's position.
func (it Iterator[K, V]) Key() K {
	return it.list.Key(it.ref)
}

// Value returns a pointer to the value at the iterator's position.
func (it Iterator[K, V]) Value() *V {
	return it.list.Value(it.ref)
}

// Equal reports whether it and o point at the same node.
func (it Iterator[K, V]) Equal(o Position[K, V]) bool {
	list, ref := o.position()
	return it.list == list && it.ref == ref
}

// Const returns a read-only iterator at the same position.
func (it Iterator[K, V]) Const() ConstIterator[K, V] {
	return ConstIterator[K, V](it)
}

// ConstIterator is a forward cursor that only reads values.
type ConstIterator[K, V any] struct {
	list *skl.SkipList[K, V]
	ref  skl.Ref
}

func (it ConstIterator[K, V]) position() (*skl.SkipList[K, V], skl.Ref) {
	return it.list, it.ref
}

// Valid reports whether the iterator points at an entry.
func (it ConstIterator[K, V]) Valid() bool {
	return it.list != nil && !it.list.IsSentinel(it.ref)
}

// Next moves to the following entry and reports whether it is valid.
func (it *ConstIterator[K, V]) Next() bool {
	it.ref = it.list.Next(it.ref)
	return it.Valid()
}

// Prev moves to the preceding entry and reports whether it is valid.
func (it *ConstIterator[K, V]) Prev() bool {
	it.ref = it.list.Prev(it.ref)
	return it.Valid()
}

// Key returns the key at the iterator's position.
func (it ConstIterator[K, V]) Key() K {
	return it.list.Key(it.ref)
}

// Value returns a copy of the value at the iterator's position.
func (it ConstIterator[K, V]) Value() V {
	return *it.list.Value(it.ref)
}

// Equal reports whether it and o point at the same node.
func (it ConstIterator[K, V]) Equal(o Position[K, V]) bool {
	list, ref := o.position()
	return it.list == list && it.ref == ref
}

// ReverseIterator walks a Map from the largest key to the smallest. Next
// moves toward smaller keys.
type ReverseIterator[K, V any] struct {
	list *skl.SkipList[K, V]
	ref  skl.Ref
}

// Valid reports whether the iterator points at an entry.
func (it ReverseIterator[K, V]) Valid() bool {
	return it.list != nil && !it.list.IsSentinel(it.ref)
}

// Next moves to the preceding key and reports whether it is valid.
func (it *ReverseIterator[K, V]) Next() bool {
	it.ref = it.list.Prev(it.ref)
	return it.Valid()
}

// Prev moves to the following key and reports whether it is valid. Prev on
// REnd moves to the smallest key.
func (it *ReverseIterator[K, V]) Prev() bool {
	it.ref = it.list.Next(it.ref)
	return it.Valid()
}

// Key returns the key at the iterator's position.
func (it ReverseIterator[K, V]) Key() K {
	return it.list.Key(it.ref)
}

// Value returns a pointer to the value at the iterator's position.
func (it ReverseIterator[K, V]) Value() *V {
	return it.list.Value(it.ref)
}

// Equal reports whether both reverse iterators point at the same node.
func (it ReverseIterator[K, V]) Equal(o ReverseIterator[K, V]) bool {
	return it.list == o.list && it.ref == o.ref
}
