package hashmap

import (
	"hash/maphash"
)

const (
	// initialBuckets is the bucket count after the first growth step.
	initialBuckets = 1

	// Growth triggers when the pair count exceeds loadFactorNum/loadFactorDen
	// of the bucket count, checked with integer arithmetic: with one bucket
	// the threshold is 3*1/4 = 0, so any nonzero length grows the table.
	loadFactorNum = 3
	loadFactorDen = 4
)

// Map is a hash table mapping keys of comparable type K to values of type V.
// Collisions are resolved by separate chaining, and the bucket array doubles
// whenever the load factor passes 3/4 so chains stay short. The zero Map is
// empty and ready for use.
//
// A Map is not safe for concurrent use: exactly one writer may mutate it at
// a time, and readers must not overlap with a writer.
type Map[K comparable, V any] struct {
	buckets [][]entry[K, V]
	length  int
	seed    maphash.Seed
	hash    func(maphash.Seed, K) uint64
}

// entry is a single key-value pair stored in a bucket chain.
type entry[K comparable, V any] struct {
	key K
	val V
}

// New creates an empty Map. No buckets are allocated until the first insert.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Set inserts a key-value pair, replacing the value for a key that is
// already present. It returns the displaced value and whether a replacement
// happened. On replacement the key already stored stays in place; only the
// value changes.
func (m *Map[K, V]) Set(key K, value V) (prev V, replaced bool) {
	// The growth check must run before the target bucket is computed,
	// since growing changes which bucket is correct for the key.
	if len(m.buckets) == 0 || m.length > loadFactorNum*len(m.buckets)/loadFactorDen {
		m.grow()
	}

	i, ok := m.bucketIndex(key)
	if !ok {
		panic("hashmap: no buckets after grow")
	}

	bucket := m.buckets[i]
	for j := range bucket {
		if bucket[j].key == key {
			prev, bucket[j].val = bucket[j].val, value
			return prev, true
		}
	}

	m.buckets[i] = append(bucket, entry[K, V]{key: key, val: value})
	m.length++
	return prev, false
}

// Get returns the value stored for key. The second return reports whether
// the key was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if i, ok := m.bucketIndex(key); ok {
		bucket := m.buckets[i]
		for j := range bucket {
			if bucket[j].key == key {
				return bucket[j].val, true
			}
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present in the map.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Remove deletes the entry for key and returns the stored key and value.
// The vacated chain slot is filled by swapping in the chain's last entry,
// so the relative order of the remaining entries changes; the bucket array
// itself never shrinks.
func (m *Map[K, V]) Remove(key K) (K, V, bool) {
	if i, ok := m.bucketIndex(key); ok {
		bucket := m.buckets[i]
		for j := range bucket {
			if bucket[j].key != key {
				continue
			}
			e := bucket[j]
			last := len(bucket) - 1
			bucket[j] = bucket[last]
			bucket[last] = entry[K, V]{} // release the vacated slot
			m.buckets[i] = bucket[:last]
			m.length--
			return e.key, e.val, true
		}
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

// Len returns the number of stored key-value pairs.
func (m *Map[K, V]) Len() int {
	return m.length
}

// IsEmpty reports whether the map holds no pairs.
func (m *Map[K, V]) IsEmpty() bool {
	return m.length == 0
}

// Clear removes all pairs and releases the bucket array, returning the map
// to its freshly created state.
func (m *Map[K, V]) Clear() {
	m.buckets = nil
	m.length = 0
}

// bucketIndex returns the chain index for key, or false when the map has no
// buckets yet. It is a pure function of the key and the current bucket count.
func (m *Map[K, V]) bucketIndex(key K) (int, bool) {
	if len(m.buckets) == 0 {
		return 0, false
	}
	return int(m.hash(m.seed, key) % uint64(len(m.buckets))), true
}

// grow doubles the bucket array (one bucket when currently empty) and
// rehashes every stored pair against the new bucket count. The pair set and
// the length are unchanged; only chain membership moves.
func (m *Map[K, V]) grow() {
	if m.hash == nil {
		m.seed = maphash.MakeSeed()
		m.hash = hashFunc[K]()
	}

	target := len(m.buckets) * 2
	if target == 0 {
		target = initialBuckets
	}

	next := make([][]entry[K, V], target)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			i := m.hash(m.seed, e.key) % uint64(target)
			next[i] = append(next[i], e)
		}
	}
	m.buckets = next
}
