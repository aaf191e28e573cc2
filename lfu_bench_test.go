package lfu_test

import (
	"fmt"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/hashicorp/golang-lru/arc/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

type (
	benchCache[Key comparable, Value any] interface {
		Set(Key, Value)
		Get(Key) (Value, bool)
	}
	policy struct {
		name string
		new  func(capacity int, b *testing.B) benchCache[int, int]
	}
	workload struct {
		name string
		keys func(capacity int) []int
	}
	arcWrapper[Key comparable, Value any] struct {
		*arc.ARCCache[Key, Value]
	}
	lruWrapper[Key comparable, Value any] struct {
		*lru.Cache[Key, Value]
	}
)

func (aw arcWrapper[Key, Value]) Set(key Key, value Value) { aw.Add(key, value) }

func (lw lruWrapper[Key, Value]) Set(key Key, value Value) { lw.Add(key, value) }

// Fixed RNG seed for reproducibility.
// Change to test variance between runs.
const rngSeed = 1

// Workload sequences are a power of two long so
// benchmark loops can wrap with a mask.
const sequenceLength = 1 << 16

func BenchmarkCache(b *testing.B) {
	b.Run("promotion", benchPromotion)
	b.Run("eviction", benchEviction)
	var (
		policies   = policies()
		capacities = []int{128, 1024}
		workloads  = workloads()
	)
	for _, work := range workloads {
		b.Run(work.name, func(b *testing.B) {
			for _, capacity := range capacities {
				keys := work.keys(capacity)
				b.Run(fmt.Sprintf("Cap%d", capacity), func(b *testing.B) {
					for _, policy := range policies {
						b.Run(policy.name, func(b *testing.B) {
							benchHitRate(b, policy.new(capacity, b), keys)
						})
					}
				})
			}
		})
	}
}

func policies() []policy {
	return []policy{
		{
			"LFU",
			func(capacity int, b *testing.B) benchCache[int, int] {
				return newCache[int, int](b, capacity)
			},
		},
		{
			"ARC",
			func(capacity int, b *testing.B) benchCache[int, int] {
				cache, err := arc.NewARC[int, int](capacity)
				if err != nil {
					b.Fatal(err)
				}
				return arcWrapper[int, int]{ARCCache: cache}
			},
		},
		{
			"LRU",
			func(capacity int, b *testing.B) benchCache[int, int] {
				cache, err := lru.New[int, int](capacity)
				if err != nil {
					b.Fatal(err)
				}
				return lruWrapper[int, int]{Cache: cache}
			},
		},
	}
}

func workloads() []workload {
	return []workload{
		{
			"Zipf",
			func(capacity int) []int {
				const (
					skew = 1.2
					bias = 1.0
				)
				universe := capacity * 16
				return makeZipf(universe, skew, bias)
			},
		},
		{
			// A stable hot set interrupted by one-off scans.
			// Frequency should keep the hot set resident.
			"Hot set with scans",
			func(capacity int) []int {
				const (
					scanEvery  = 1 << 12
					scanLength = 1 << 10
				)
				hotSize := max(1, capacity/2)
				return makeScanPolluted(hotSize, scanEvery, scanLength)
			},
		},
		{
			"Uniform random",
			func(capacity int) []int {
				var (
					rng        = newReproducibleRNG()
					upperBound = capacity * 4
				)
				return makeRandomSequence(rng, upperBound, sequenceLength)
			},
		},
	}
}

func benchHitRate(b *testing.B, cache benchCache[int, int], keys []int) {
	type (
		Key   = int
		Value = int
	)
	const dataSize = int64(unsafe.Sizeof(Key(0)) + unsafe.Sizeof(Value(0)))
	warmUp(cache, keys)
	b.ReportAllocs()
	b.SetBytes(dataSize)
	b.ResetTimer()
	var (
		hits, misses int64
		mask         = len(keys) - 1
	)
	for i := 0; b.Loop(); i++ {
		key := keys[i&mask]
		if _, ok := cache.Get(key); ok {
			hits++
		} else {
			misses++
			cache.Set(key, key)
		}
	}
	b.StopTimer()
	total := float64(hits + misses)
	b.ReportMetric(float64(hits)/total*100.0, "hit_rate_pct")
	b.ReportMetric(float64(misses)/total*100.0, "miss_rate_pct")
}

// benchPromotion measures Get on resident keys, where every
// call moves a key into the next frequency bucket.
func benchPromotion(b *testing.B) {
	const (
		capacity = 1024
		mask     = sequenceLength - 1
	)
	var (
		cache = newCache[int, int](b, capacity)
		rng   = newReproducibleRNG()
		keys  = makeRandomSequence(rng, capacity, sequenceLength)
	)
	addIncrementingInts(cache, capacity)
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		key := keys[i&mask] + 1
		if _, ok := cache.Get(key); !ok {
			b.Fatalf("resident key %d missed", key)
		}
	}
}

// benchEviction measures Set of never-seen keys into a full cache.
func benchEviction(b *testing.B) {
	const capacity = 1024
	cache := newCache[int, int](b, capacity)
	addIncrementingInts(cache, capacity)
	b.ReportAllocs()
	for i := capacity + 1; b.Loop(); i++ {
		cache.Set(i, i)
	}
}

func makeZipf(universe int, skew, bias float64) []int {
	var (
		seq  = make([]int, sequenceLength)
		rng  = newReproducibleRNG()
		imax = uint64(max(universe, 2) - 1)
		zipf = rand.NewZipf(rng, skew, bias, imax)
	)
	for i := range seq {
		seq[i] = int(zipf.Uint64())
	}
	return seq
}

func makeScanPolluted(hotSize, scanEvery, scanLength int) []int {
	var (
		seq     = make([]int, sequenceLength)
		rng     = newReproducibleRNG()
		scanKey = hotSize // Scan keys never repeat.
	)
	for i := 0; i < len(seq); {
		if i > 0 && i%scanEvery == 0 {
			for end := min(i+scanLength, len(seq)); i < end; i++ {
				seq[i] = scanKey
				scanKey++
			}
			continue
		}
		seq[i] = rng.Intn(hotSize)
		i++
	}
	return seq
}

func makeRandomSequence(rng *rand.Rand, upperBound, length int) []int {
	keys := make([]int, length)
	for i := range keys {
		keys[i] = rng.Intn(upperBound)
	}
	return keys
}

func warmUp(c benchCache[int, int], seq []int) {
	for _, k := range seq {
		if _, ok := c.Get(k); !ok {
			c.Set(k, k)
		}
	}
}

func newReproducibleRNG() *rand.Rand {
	return rand.New(rand.NewSource(rngSeed))
}
