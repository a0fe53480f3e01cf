package gobloom

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Filter is a Bloom filter that tracks the total number of set bits
// alongside the underlying bit vector and its dual hash source.
//
// A Filter is append-only: bits flip from unset to set and never back, so
// there is no remove operation. It is not safe for concurrent use.
type Filter struct {
	bits     *bitset.BitSet
	bitCount uint64
	hashes   uint64
	setBits  uint64
	src      HashSource
}

// New returns a filter sized for approximately expectedItems items at the
// default false positive probability of DefaultFalsePositiveRate.
func New(expectedItems uint64) (*Filter, error) {
	return NewWithRate(expectedItems, DefaultFalsePositiveRate)
}

// NewWithRate returns a filter sized for approximately expectedItems items
// at a caller-chosen false positive probability in (0,1).
func NewWithRate(expectedItems uint64, fpRate float64) (*Filter, error) {
	return NewWithHashSource(expectedItems, fpRate, NewHashSource())
}

// NewWithHashSource is NewWithRate with a caller-supplied HashSource,
// typically a NewSeededHashSource for deterministic bit placement.
func NewWithHashSource(expectedItems uint64, fpRate float64, src HashSource) (*Filter, error) {
	if expectedItems == 0 {
		return nil, ErrZeroExpectedItems
	}
	if fpRate <= 0 || fpRate >= 1 {
		return nil, ErrInvalidFalsePositiveRate
	}
	if src == nil {
		return nil, ErrNilHashSource
	}

	m := OptimalBitCount(expectedItems, fpRate)
	k := OptimalHashCount(m, expectedItems)

	return &Filter{
		bits:     bitset.New(uint(m)),
		bitCount: m,
		hashes:   k,
		src:      src,
	}, nil
}

// Set inserts item into the filter. The operation is idempotent per unique
// item: re-inserting changes neither the bit vector nor the set-bit count.
func (f *Filter) Set(item []byte) {
	h1, h2 := f.src.Hash(item)
	for i := uint64(0); i < f.hashes; i++ {
		g := uint(f.probe(h1, h2, i))
		if !f.bits.Test(g) {
			f.setBits++
			f.bits.Set(g)
		}
	}
}

// Has reports whether item is possibly in the filter. A false result is
// definitive: the item was never inserted. A true result is correct for
// every inserted item and wrong for a never-inserted item with probability
// approaching the configured false positive rate as the filter fills.
func (f *Filter) Has(item []byte) bool {
	h1, h2 := f.src.Hash(item)
	for i := uint64(0); i < f.hashes; i++ {
		if !f.bits.Test(uint(f.probe(h1, h2, i))) {
			return false
		}
	}
	return true
}

// probe returns the i-th probe position via enhanced double hashing:
//
//	g_i = (h1 + i*h2 + i^3) mod m
//
// The intermediate sums wrap on uint64 overflow, so the final modulo keeps
// the result in [0, bitCount) without any bounds check.
func (f *Filter) probe(h1, h2, i uint64) uint64 {
	return (h1 + i*h2 + i*i*i) % f.bitCount
}

// ApproxItems estimates the number of distinct items inserted so far from
// the set-bit ratio:
//
//	round(-(m/k) * ln(1 - setBits/m))
//
// The estimate is non-decreasing across insertions and grows without bound
// as the filter saturates; once every bit is set it is clamped to MaxUint64
// because the formula has no finite value there.
func (f *Filter) ApproxItems() uint64 {
	if f.setBits == f.bitCount {
		return math.MaxUint64
	}

	m := float64(f.bitCount)
	k := float64(f.hashes)
	x := float64(f.setBits)

	return uint64(math.Round(-(m / k) * math.Log(1-x/m)))
}

// EstimatedFalsePositiveRate returns the probability that Has reports true
// for a never-inserted item given the current fill, (setBits/m)^k.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	fill := float64(f.setBits) / float64(f.bitCount)
	return math.Pow(fill, float64(f.hashes))
}

// BitCount returns the length m of the bit vector.
func (f *Filter) BitCount() uint64 { return f.bitCount }

// HashCount returns the number of hash functions k.
func (f *Filter) HashCount() uint64 { return f.hashes }

// SetBits returns the number of bits currently set.
func (f *Filter) SetBits() uint64 { return f.setBits }
