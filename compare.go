package skipmap

import "golang.org/x/exp/constraints"

// EqualFunc reports whether a and b hold the same number of entries with
// equal keys and, per eq, equal values in ascending order. Keys are compared
// with a's ordering.
func EqualFunc[K, V any](a, b *Map[K, V], eq func(V, V) bool) bool {
	if a == b {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}

	less := a.list.Less()
	ia, ib := a.CBegin(), b.CBegin()
	for ; ia.Valid() && ib.Valid(); ia.Next() {
		ka, kb := ia.Key(), ib.Key()
		if less(ka, kb) || less(kb, ka) {
			return false
		}
		if !eq(ia.Value(), ib.Value()) {
			return false
		}
		ib.Next()
	}
	return !ia.Valid() && !ib.Valid()
}

// Equal is EqualFunc with ==.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// CompareFunc compares a and b lexicographically over their ascending
// entries: the first differing key, then the first differing value per cmp,
// decides; when one map is a prefix of the other the shorter one is less.
// The result is -1, 0 or +1.
func CompareFunc[K, V any](a, b *Map[K, V], cmp func(V, V) int) int {
	if a == b {
		return 0
	}

	less := a.list.Less()
	ia, ib := a.CBegin(), b.CBegin()
	for ; ia.Valid() && ib.Valid(); ia.Next() {
		ka, kb := ia.Key(), ib.Key()
		switch {
		case less(ka, kb):
			return -1
		case less(kb, ka):
			return +1
		}
		if c := cmp(ia.Value(), ib.Value()); c != 0 {
			return sign(c)
		}
		ib.Next()
	}

	switch {
	case ia.Valid():
		return +1
	case ib.Valid():
		return -1
	}
	return 0
}

// Compare is CompareFunc with the natural order of V.
func Compare[K any, V constraints.Ordered](a, b *Map[K, V]) int {
	return CompareFunc(a, b, func(x, y V) int {
		switch {
		case x < y:
			return -1
		case y < x:
			return +1
		}
		return 0
	})
}

// LessThan reports whether a orders before b lexicographically.
func LessThan[K any, V constraints.Ordered](a, b *Map[K, V]) bool {
	return Compare(a, b) < 0
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return +1
	}
	return 0
}
