package skipmap

import (
	"testing"

	"github.com/hashicorp/go-set/v2"
	"github.com/stretchr/testify/require"
)

type fuzzOp struct {
	typ byte
	key int
	val int
}

// decodeFuzzOps turns input into at most maxOps operations of three bytes
// each; keys are folded into a small range so that collisions are common.
func decodeFuzzOps(input []byte, maxOps int) []fuzzOp {
	ops := make([]fuzzOp, 0, maxOps)
	for i := 0; i+2 < len(input) && len(ops) < maxOps; i += 3 {
		ops = append(ops, fuzzOp{
			typ: input[i],
			key: int(input[i+1] % 32),
			val: int(input[i+2]),
		})
	}
	return ops
}

func FuzzMapAgainstModel(f *testing.F) {
	f.Add([]byte{0, 1, 1, 0, 2, 2})
	f.Add([]byte{1, 2, 3, 2, 2, 4})
	f.Add([]byte{2, 3, 5, 0, 3, 7, 4, 3, 0, 5, 3, 0})
	f.Add([]byte{0, 9, 9, 0, 8, 8, 6, 0, 0, 0, 7, 7})

	f.Fuzz(func(t *testing.T, input []byte) {
		ops := decodeFuzzOps(input, 256)
		if len(ops) == 0 {
			t.Skip()
		}

		m := NewOrdered[int, int](WithCacheCapacity(3), WithSeed(1))
		model := make(map[int]int)
		keys := set.New[int](len(ops))

		for _, op := range ops {
			switch op.typ % 7 {
			case 0: // Insert
				_, inserted := m.Insert(op.key, op.val)
				require.Equal(t, !keys.Contains(op.key), inserted)
				if inserted {
					model[op.key] = op.val
					keys.Insert(op.key)
				}
			case 1: // Set
				old, replaced := m.Set(op.key, op.val)
				want, ok := model[op.key]
				require.Equal(t, ok, replaced)
				require.Equal(t, want, old)
				model[op.key] = op.val
				keys.Insert(op.key)
			case 2: // Erase
				require.Equal(t, keys.Contains(op.key), m.Erase(op.key))
				delete(model, op.key)
				keys.Remove(op.key)
			case 3: // At
				v, err := m.At(op.key)
				want, ok := model[op.key]
				if ok {
					require.NoError(t, err)
					require.Equal(t, want, *v)
				} else {
					require.ErrorIs(t, err, ErrKeyNotFound)
				}
			case 4: // Index
				require.Equal(t, model[op.key], *m.Index(op.key))
				if !keys.Contains(op.key) {
					model[op.key] = 0
					keys.Insert(op.key)
				}
			case 5: // Find
				require.Equal(t, keys.Contains(op.key), m.Find(op.key).Valid())
			case 6: // Clear
				if op.val%8 == 0 {
					m.Clear()
					model = make(map[int]int)
					keys = set.New[int](len(ops))
				}
			}

			require.Equal(t, keys.Size(), m.Len())
			require.LessOrEqual(t, m.cache.len(), 3)
			for e := m.cache.head.next; e != &m.cache.tail; e = e.next {
				require.True(t, keys.Contains(e.key))
				require.Equal(t, e.key, m.list.Key(e.ref))
			}
		}

		want := keys.Slice()
		require.ElementsMatch(t, want, m.Keys())
		prev := -1
		for k, v := range m.All() {
			require.Greater(t, k, prev)
			require.Equal(t, model[k], v)
			prev = k
		}
	})
}
