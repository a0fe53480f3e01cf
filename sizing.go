package gobloom

import "math"

const ln2Sqr = math.Ln2 * math.Ln2

// OptimalBitCount returns the bit vector length m for a filter expected to
// hold expectedItems items with false positive probability fpRate:
//
//	m = ceil(-(ln(fpRate) * expectedItems) / ln(2)^2)
//
// The caller must ensure expectedItems > 0 and fpRate is in (0,1); the
// filter constructors check both before calling here.
func OptimalBitCount(expectedItems uint64, fpRate float64) uint64 {
	return uint64(math.Ceil(-(math.Log(fpRate) * float64(expectedItems)) / ln2Sqr))
}

// OptimalHashCount returns the number of hash functions k for a filter with
// bitCount bits expected to hold expectedItems items:
//
//	k = ceil((bitCount / expectedItems) * ln 2)
//
// The bitCount / expectedItems division truncates before the multiply.
// Changing it to a float division shifts k, and with it the effective false
// positive rate, away from the documented sizing behavior.
func OptimalHashCount(bitCount, expectedItems uint64) uint64 {
	return uint64(math.Ceil(float64(bitCount/expectedItems) * math.Ln2))
}
