package skipmap

import "github.com/metailurini/skipmap/skl"

type cacheEntry[K any] struct {
	prev *cacheEntry[K]
	next *cacheEntry[K]

	key K
	ref skl.Ref
}

func (e *cacheEntry[K]) insert(a, b *cacheEntry[K]) {
	a.next = e
	e.prev = a

	e.next = b
	b.prev = e
}

func (e *cacheEntry[K]) remove() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
}

// cache is a bounded recency list of references into the bottom level of a
// skip list. It never owns the nodes it points to: an entry must be removed
// before the node it references is freed.
//
// The most recent entry sits right after head, the least recent right
// before tail.
type cache[K any] struct {
	less     skl.Less[K]
	capacity int
	size     int
	stats    *Stats

	head cacheEntry[K]
	tail cacheEntry[K]
}

func newCache[K any](less skl.Less[K], capacity int, stats *Stats) *cache[K] {
	c := &cache[K]{
		less:     less,
		capacity: capacity,
		stats:    stats,
	}
	c.head.next = &c.tail
	c.tail.prev = &c.head
	return c
}

func (c *cache[K]) find(key K) *cacheEntry[K] {
	for e := c.head.next; e != &c.tail; e = e.next {
		if !c.less(e.key, key) && !c.less(key, e.key) {
			return e
		}
	}
	return nil
}

// lookup scans from most to least recent.
func (c *cache[K]) lookup(key K) (skl.Ref, bool) {
	if e := c.find(key); e != nil {
		c.stats.CacheHits++
		return e.ref, true
	}
	c.stats.CacheMisses++
	return skl.Nil, false
}

// insertOrTouch makes key the most recent entry, evicting the least recent
// one when the cache is full.
func (c *cache[K]) insertOrTouch(key K, ref skl.Ref) {
	if c.capacity <= 0 {
		return
	}

	if e := c.find(key); e != nil {
		e.ref = ref
		e.remove()
		e.insert(&c.head, c.head.next)
		return
	}

	if c.size >= c.capacity {
		oldest := c.tail.prev
		oldest.remove()
		c.size--
		c.stats.CacheEvictions++
		if cacheEvictHook != nil {
			cacheEvictHook(oldest.key)
		}
	}

	e := &cacheEntry[K]{key: key, ref: ref}
	e.insert(&c.head, c.head.next)
	c.size++
}

// remove purges the entry for key, if any.
func (c *cache[K]) remove(key K) {
	if e := c.find(key); e != nil {
		e.remove()
		c.size--
	}
}

func (c *cache[K]) clear() {
	c.head.next = &c.tail
	c.tail.prev = &c.head
	c.size = 0
}

func (c *cache[K]) len() int {
	return c.size
}

// keys lists cached keys from most to least recent.
func (c *cache[K]) keys() []K {
	keys := make([]K, 0, c.size)
	for e := c.head.next; e != &c.tail; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}
