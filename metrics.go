package skipmap

// Stats counts what a Map did since it was created.
type Stats struct {
	CacheHits      int64
	CacheMisses    int64
	CacheEvictions int64
	Inserts        int64
	Erases         int64
}

// HitRatio returns the share of lookups answered by the cache.
func (s Stats) HitRatio() float64 {
	total := s.CacheHits + s.CacheMisses
	if total == 0 {
		return 0
	}
	return float64(s.CacheHits) / float64(total)
}
