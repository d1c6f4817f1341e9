package skipmap

// Set by tests only.
var (
	// cacheEvictHook is invoked with the key of every entry evicted for
	// capacity.
	cacheEvictHook func(key any)
)
