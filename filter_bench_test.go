package gobloom

import (
	"math/rand"
	"testing"
)

func benchmarkItems(seed uint64, n int) [][]byte {
	r := rand.New(rand.NewSource(int64(seed)))
	items := make([][]byte, n)
	for i := range items {
		items[i] = []byte(randomString(r, 30))
	}
	return items
}

func benchmarkFilterSet(b *testing.B, expectedItems uint64) {
	bf, err := New(expectedItems)
	if err != nil {
		b.Fatal(err)
	}
	items := benchmarkItems(expectedItems, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bf.Set(items[i%len(items)])
	}
}

func benchmarkFilterHas(b *testing.B, expectedItems uint64) {
	bf, err := New(expectedItems)
	if err != nil {
		b.Fatal(err)
	}
	items := benchmarkItems(expectedItems, 1024)
	for _, item := range items {
		bf.Set(item)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bf.Has(items[i%len(items)])
	}
}

func BenchmarkFilterSet1000(b *testing.B)  { benchmarkFilterSet(b, 1000) }
func BenchmarkFilterSet10000(b *testing.B) { benchmarkFilterSet(b, 10000) }
func BenchmarkFilterSet50000(b *testing.B) { benchmarkFilterSet(b, 50000) }

func BenchmarkFilterHas1000(b *testing.B)  { benchmarkFilterHas(b, 1000) }
func BenchmarkFilterHas10000(b *testing.B) { benchmarkFilterHas(b, 10000) }
func BenchmarkFilterHas50000(b *testing.B) { benchmarkFilterHas(b, 50000) }
