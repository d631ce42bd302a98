/*
Package hashmap provides a generic hash table built on separate chaining.

Map stores key-value pairs in an array of bucket chains and doubles the
bucket array whenever the load factor passes 3/4, keeping chains short as
the table grows. Keys may be any comparable Go type; values are
unconstrained.

Basic usage:

	import hashmap "github.com/arunma/buildx-basic-hashmap"

	m := hashmap.New[string, int]()

	// Insert data. Setting an existing key replaces its value and
	// returns the displaced one.
	m.Set("a", 1)
	prev, replaced := m.Set("a", 2) // prev == 1, replaced == true

	// Retrieve data
	if v, ok := m.Get("a"); ok {
		fmt.Println("Value:", v)
	}

	// Remove returns the evicted pair
	key, val, ok := m.Remove("a")

	// Iterate all pairs (order is unspecified)
	for k, v := range m.All() {
		fmt.Println(k, v)
	}

Features:

  - Generic over comparable key types and arbitrary value types
  - Separate chaining for collision resolution
  - Automatic doubling growth once the load factor passes 3/4
  - Constant-time removal via swap-with-last chain compaction
  - Lazy iteration with iter.Seq2, restarting on every range statement
  - xxHash for string keys, hash/maphash for every other key type

Implementation Details:

A new table has no buckets at all; the first insert materializes a single
bucket and each later growth step doubles the count, rehashing every stored
pair against the new bucket count. The load-factor check uses integer
arithmetic (length > 3*buckets/4) and runs before the inserted key's bucket
is computed, since growing changes which bucket is correct.

Removal swaps the vacated chain slot with the chain's last entry instead of
shifting the tail down, trading chain order for constant-time deletion.
Iteration order is therefore not insertion order and may change after
removals.

Map is not safe for concurrent use: exactly one writer may mutate the table
at a time, and readers must not overlap with a writer.
*/
package hashmap
