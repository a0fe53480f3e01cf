package gobloom

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// HashSource derives two independent 64-bit digests for an item. The two
// digests seed the probe derivation for every Set and Has call, so a source
// must be deterministic for the lifetime of the filter that holds it: equal
// items yield equal digest pairs on every call.
type HashSource interface {
	Hash(item []byte) (h1, h2 uint64)
}

// dualHash is the default HashSource. It pairs two unrelated hash families,
// murmur3 x64 128-bit truncated to its low 64 bits and seeded xxhash64, so a
// collision in one digest does not correlate with a collision in the other.
type dualHash struct {
	murmurSeed uint32
	xxSeed     uint64
}

// NewHashSource returns the default HashSource with randomly drawn seeds.
// Distinct sources hash the same item to distinct digest pairs with
// overwhelming probability.
func NewHashSource() HashSource {
	return NewSeededHashSource(rand.Uint32(), rand.Uint64())
}

// NewSeededHashSource returns the default HashSource with fixed seeds. Two
// sources built with equal seeds are interchangeable, which makes bit
// placement reproducible across filter instances and test runs.
func NewSeededHashSource(murmurSeed uint32, xxSeed uint64) HashSource {
	return &dualHash{murmurSeed: murmurSeed, xxSeed: xxSeed}
}

func (d *dualHash) Hash(item []byte) (uint64, uint64) {
	h1, _ := murmur3.Sum128WithSeed(item, d.murmurSeed)

	// xxhash.Digest carries no seed parameter, so the seed is keyed in as
	// an 8-byte digest prefix. Digest.Write cannot fail.
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], d.xxSeed)
	x := xxhash.New()
	_, _ = x.Write(seed[:])
	_, _ = x.Write(item)

	return h1, x.Sum64()
}
