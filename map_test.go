package skipmap

import (
	"strings"
	"testing"

	"github.com/bloomberg/go-testgroup"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func TestMap(t *testing.T) {
	testgroup.RunInParallel(t, &MapTests{})
}

type MapTests struct {
}

func (g *MapTests) newIntMap(opts ...Option) *Map[int, string] {
	return NewOrdered[int, string](append([]Option{WithSeed(0x5eed)}, opts...)...)
}

func (g *MapTests) InsertTraverseErase(t *testgroup.T) {
	m := g.newIntMap()
	m.Insert(1, "a")
	m.Insert(3, "c")
	m.Insert(2, "b")

	t.Equal([]Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}, m.Entries())

	v, err := m.At(2)
	t.NoError(err)
	t.Equal("b", *v)

	t.True(m.Erase(2))
	t.True(m.Find(2).Equal(m.End()))
	t.Equal(2, m.Len())
}

func (g *MapTests) IndexCreatesZeroValueOnce(t *testgroup.T) {
	m := NewOrdered[string, int]()

	first := m.Index("x")
	t.Equal(0, *first)
	t.Equal(1, m.Len())

	second := m.Index("x")
	t.Same(first, second)
	t.Equal(1, m.Len())

	*second = 5
	v, err := m.At("x")
	t.NoError(err)
	t.Equal(5, *v)
}

func (g *MapTests) InsertExistingKeyKeepsValue(t *testgroup.T) {
	m := g.newIntMap()

	it, inserted := m.Insert(1, "a")
	t.True(inserted)
	t.Equal("a", *it.Value())

	again, inserted := m.Insert(1, "z")
	t.False(inserted)
	t.True(again.Equal(it))
	t.Equal("a", *again.Value())
	t.Equal(1, m.Len())
}

func (g *MapTests) AtMissingKey(t *testgroup.T) {
	m := g.newIntMap()
	m.Insert(1, "a")

	v, err := m.At(2)
	t.Nil(v)
	t.ErrorIs(err, ErrKeyNotFound)
	t.Equal(ErrKeyNotFound, errors.Cause(err))
	t.Equal(1, m.Len())

	_, ok := m.Get(2)
	t.False(ok)
}

func (g *MapTests) AtReturnsMutableValue(t *testgroup.T) {
	m := g.newIntMap()
	m.Insert(7, "seven")

	v, err := m.At(7)
	t.NoError(err)
	*v = "SEVEN"

	got, ok := m.Get(7)
	t.True(ok)
	t.Equal("SEVEN", got)
}

func (g *MapTests) EraseAbsentKeyIsNoop(t *testgroup.T) {
	m := g.newIntMap()
	t.False(m.Erase(1))

	m.Insert(1, "a")
	t.False(m.Erase(2))
	t.Equal(1, m.Len())
	t.Equal(int64(1), m.Stats().Inserts)
	t.Equal(int64(0), m.Stats().Erases)
}

func (g *MapTests) EraseAt(t *testgroup.T) {
	m := g.newIntMap()
	for _, k := range []int{1, 2, 3} {
		m.Insert(k, "")
	}

	m.EraseAt(m.Find(2))
	t.Equal([]int{1, 3}, m.Keys())

	m.EraseAt(m.End())
	m.EraseAt(g.newIntMap().Begin())
	t.Equal(2, m.Len())
}

func (g *MapTests) ClearIsRepeatable(t *testgroup.T) {
	m := g.newIntMap()
	m.Clear()
	t.Equal(0, m.Len())
	t.True(m.Empty())

	for k := 0; k < 50; k++ {
		m.Insert(k, "")
		m.Find(k)
	}
	m.Clear()
	m.Clear()
	t.True(m.Empty())
	t.Equal(0, m.Height())
	t.Equal(0, m.cache.len())
	t.True(m.Begin().Equal(m.End()))
	t.False(m.Find(3).Valid())

	m.Insert(3, "three")
	got, ok := m.Get(3)
	t.True(ok)
	t.Equal("three", got)
}

func (g *MapTests) HeightShrinksAfterErase(t *testgroup.T) {
	m := g.newIntMap(WithProbability(0.5))
	for k := 0; k < 2000; k++ {
		m.Insert(k, "")
	}
	t.Greater(m.Height(), 1)

	for k := 1; k < 2000; k++ {
		t.True(m.Erase(k))
	}
	t.Equal(m.list.Levels(m.Find(0).ref), m.Height())

	m.Erase(0)
	t.Equal(1, m.Height())
	t.True(m.Empty())
}

func (g *MapTests) CloneIsIndependent(t *testgroup.T) {
	m := g.newIntMap()
	for _, k := range lo.Range(20) {
		m.Insert(k, strings.Repeat("x", k))
		m.Find(k)
	}

	c := m.Clone()
	t.True(Equal(m, c))
	t.Equal(0, c.cache.len())

	*m.Index(3) = "changed"
	m.Erase(4)
	t.Equal("xxx", lo.Must(c.Get(3)))
	t.True(c.Contains(4))
	t.False(Equal(m, c))
}

func (g *MapTests) Assign(t *testgroup.T) {
	src := g.newIntMap()
	src.Insert(1, "a")
	src.Insert(2, "b")

	dst := g.newIntMap()
	dst.Insert(9, "z")
	dst.Find(9)

	dst.Assign(src)
	t.True(Equal(src, dst))
	t.False(dst.Contains(9))

	dst.Assign(dst)
	t.Equal([]int{1, 2}, dst.Keys())
}

func (g *MapTests) NewFromLaterPairWins(t *testgroup.T) {
	m := NewFrom(func(a, b string) bool { return a < b }, []Pair[string, int]{
		{"b", 1}, {"a", 2}, {"b", 3},
	})

	t.Equal(2, m.Len())
	t.Equal([]Pair[string, int]{{"a", 2}, {"b", 3}}, m.Entries())
}

func (g *MapTests) SetReturnsPreviousValue(t *testgroup.T) {
	m := g.newIntMap()

	old, replaced := m.Set(1, "a")
	t.False(replaced)
	t.Equal("", old)

	old, replaced = m.Set(1, "b")
	t.True(replaced)
	t.Equal("a", old)
	t.Equal("b", lo.Must(m.Get(1)))
}

func (g *MapTests) SeekGE(t *testgroup.T) {
	m := g.newIntMap()
	for _, k := range []int{10, 20, 30} {
		m.Insert(k, "")
	}

	t.Equal(20, m.SeekGE(15).Key())
	t.Equal(20, m.SeekGE(20).Key())
	t.True(m.SeekGE(31).Equal(m.End()))
	t.False(g.newIntMap().SeekGE(1).Valid())
}

func (g *MapTests) AllAndBackward(t *testgroup.T) {
	m := g.newIntMap()
	for _, k := range lo.Shuffle(lo.Range(10)) {
		m.Insert(k, "")
	}

	var forward, backward []int
	for k := range m.All() {
		forward = append(forward, k)
	}
	for k := range m.Backward() {
		backward = append(backward, k)
	}
	t.Equal(lo.Range(10), forward)
	t.Equal(lo.Reverse(lo.Range(10)), backward)

	var firstThree []int
	for k := range m.All() {
		if len(firstThree) == 3 {
			break
		}
		firstThree = append(firstThree, k)
	}
	t.Equal([]int{0, 1, 2}, firstThree)
}

func (g *MapTests) EqualityDerivedFromOrdering(t *testgroup.T) {
	m := New[string, int](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})

	m.Insert("Go", 1)
	_, inserted := m.Insert("GO", 2)
	t.False(inserted)
	t.Equal(1, m.Len())
	t.Equal(1, lo.Must(m.Get("go")))

	t.True(m.Erase("gO"))
	t.True(m.Empty())
}

func (g *MapTests) CustomDescendingOrder(t *testgroup.T) {
	m := New[int, string](func(a, b int) bool { return a > b })
	for _, k := range []int{2, 5, 1} {
		m.Insert(k, "")
	}
	t.Equal([]int{5, 2, 1}, m.Keys())
}
