package lfu_test

import (
	"fmt"

	lfu "github.com/djdv/go-lfu"
)

func ExampleCache() {
	const capacity = 2
	cache, err := lfu.New[string, int](capacity)
	if err != nil {
		panic(err)
	}
	cache.Set("kept", 1)
	cache.Set("dropped", 2)
	cache.Get("kept") // "kept" now has the higher frequency.
	cache.Set("new", 3)
	for _, key := range []string{"kept", "dropped", "new"} {
		if got, ok := cache.Peek(key); ok {
			fmt.Printf("%s: %d\n", key, got)
		} else {
			fmt.Printf("%s: evicted\n", key)
		}
	}
	// Output:
	// kept: 1
	// dropped: evicted
	// new: 3
}

func ExampleCache_Keys() {
	cache, err := lfu.New[string, int](3)
	if err != nil {
		panic(err)
	}
	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)
	cache.Get("a")
	for key := range cache.Keys() {
		frequency, _ := cache.Frequency(key)
		fmt.Printf("%s (%d)\n", key, frequency)
	}
	// Output:
	// b (1)
	// c (1)
	// a (2)
}
