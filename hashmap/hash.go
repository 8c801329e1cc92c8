package hashmap

import (
	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to an integer. It must be deterministic; the result may
// be negative, bucket selection takes care of that.
type HashFunc func(key string) int

// StringHash sums each byte weighted by its 1-based position. Short keys
// collide often, which only affects chain lengths.
func StringHash(key string) int {
	r := 0
	for i := 0; i < len(key); i++ {
		r += (i + 1) * int(key[i])
	}
	return r
}

// XXHash spreads keys far better than StringHash for large tables.
func XXHash(key string) int {
	return int(xxhash.Sum64String(key))
}
