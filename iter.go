package hashmap

import "iter"

// All returns an iterator over the map's key-value pairs. Each range over
// the sequence starts fresh from the first bucket and yields every stored
// pair exactly once. Traversal is bucket order, then chain position; that is
// not insertion order and may change after removals. Mutating the map during
// iteration is undefined.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for i := range bucket {
				if !yield(bucket[i].key, bucket[i].val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over the map's keys, in the same traversal order
// as All.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, bucket := range m.buckets {
			for i := range bucket {
				if !yield(bucket[i].key) {
					return
				}
			}
		}
	}
}

// Values returns an iterator over the map's values, in the same traversal
// order as All.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, bucket := range m.buckets {
			for i := range bucket {
				if !yield(bucket[i].val) {
					return
				}
			}
		}
	}
}
