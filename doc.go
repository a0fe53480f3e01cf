package gobloom

/*

# A Bloom filter with enhanced double hashing

This package implements a Bloom filter, a space-efficient probabilistic data
structure for set-membership queries. A filter answers either "definitely not
present" or "possibly present":

- If the filter says "definitely not present", the item was never inserted.
- If the filter says "possibly present", the item may or may not have been
  inserted (false positives are possible, false negatives are not).

Items can be added but never removed; as more items are added the false
positive probability grows toward (and eventually past) the configured
target. Fewer than 10 bits per item suffice for a 1% false positive
probability, independent of item size or count.

A filter is sized once at construction from the approximate number of items
it is expected to hold and a target false positive probability:

	m = ceil(-(n * ln p) / ln(2)^2)     bits
	k = ceil((m / n) * ln 2)            hash functions

where the m/n division truncates. Both values are fixed for the lifetime of
the filter; there is no resize operation.

# Index derivation

Rather than computing k independent hashes per item, the filter computes two
base digests and derives the k probe positions from them:

	g_i = (h1 + i*h2 + i^3) mod m,  i in [0, k)

Kirsch and Mitzenmacher showed this "enhanced double hashing" scheme loses
nothing in the asymptotic false positive probability while needing only two
hash computations per operation ("Less Hashing, Same Performance: Building a
Better Bloom Filter").

The two digests come from two different hash families so that a collision in
one does not imply a collision in the other: murmur3 (x64 128-bit, truncated
to 64 bits) and xxhash64. Each filter instance draws its own random seeds at
construction and reuses them for every Set and Has call, so two filters
built from identical parameters place bits independently. The HashSource
interface lets callers substitute a fixed-seed source when deterministic
placement is needed.

# What this filter is not

The filter keeps no record of inserted items: there is no iteration, no
deletion (a plain Bloom filter cannot safely unset bits), and no exact
count. ApproxItems estimates the distinct-insert count from the set-bit
ratio alone, and that estimate degrades as the filter saturates.

There is no serialized form and no internal locking. A Filter is not safe
for concurrent use; callers that share one across goroutines must provide
their own synchronization around both Set and Has.

*/
