package hashmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// hashFunc selects the hash implementation for key type K, once per table.
// String keys take a dedicated xxHash path, which is fast on short text keys
// and deterministic across processes. Every other comparable type is hashed
// with maphash.Comparable under the table's seed, making a key's hash stable
// for the lifetime of its table. Named string types are not matched by the
// fast path and hash through maphash like any other comparable type.
func hashFunc[K comparable]() func(maphash.Seed, K) uint64 {
	var zero K
	if _, isString := any(zero).(string); isString {
		return func(_ maphash.Seed, key K) uint64 {
			return xxhash.Sum64String(any(key).(string))
		}
	}
	return maphash.Comparable[K]
}
