package timing

import (
	"encoding/json"
	"sync"
)

// Memoize returns a wrapper that caches fn's result per argument list. The
// cache key is the JSON encoding of the arguments, so it is sensitive to both
// order and value. Argument lists that cannot be encoded bypass the cache.
//
// The wrapper is safe for concurrent use. fn runs outside the lock; when two
// callers miss on the same key at once, the first result stored wins and both
// return it.
//
// The cache is unbounded and never evicted; memoize only functions whose
// argument space is small.
func Memoize[A any, R any](fn func(...A) R) func(...A) R {
	var mu sync.Mutex
	cache := make(map[string]R)
	return func(args ...A) R {
		if args == nil {
			args = []A{}
		}
		raw, err := json.Marshal(args)
		if err != nil {
			return fn(args...)
		}
		key := string(raw)

		mu.Lock()
		r, ok := cache[key]
		mu.Unlock()
		if ok {
			return r
		}

		r = fn(args...)

		mu.Lock()
		defer mu.Unlock()
		if prev, ok := cache[key]; ok {
			return prev
		}
		cache[key] = r
		return r
	}
}
