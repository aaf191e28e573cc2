package lfu

import "iter"

type (
	entry[Value any] struct {
		value Value
		locator
	}
	// Cache evicts the least frequently used key when full,
	// preferring the least recently used key among equals.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Cache[Key comparable, Value any] struct {
		index    map[Key]*entry[Value]
		ledger   ledger[Key]
		capacity int
	}
)

// New creates a [Cache] that holds up to capacity keys.
// A capacity of 0 is valid and produces a cache that
// discards every [Cache.Set] and misses every [Cache.Get].
func New[Key comparable, Value any](capacity int) (*Cache[Key, Value], error) {
	if capacity < 0 {
		return nil, capacityError(capacity)
	}
	return &Cache[Key, Value]{
		capacity: capacity,
		index:    make(map[Key]*entry[Value], capacity),
	}, nil
}

// Load returns the cached value for key. Otherwise, it calls fetch,
// inserts and returns the value on success.
// If fetch returns an error, the value is not cached.
func (c *Cache[Key, Value]) Load(key Key, fetch func() (Value, error)) (Value, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	c.Set(key, value)
	return value, nil
}

// Get returns the Value for key and counts the access;
// otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	found, ok := c.index[key]
	if !ok {
		var zero Value
		return zero, false
	}
	c.ledger.promote(&found.locator)
	c.checkInvariants()
	return found.value, true
}

// Peek is like [Cache.Get] but does not count the access.
func (c *Cache[Key, Value]) Peek(key Key) (Value, bool) {
	if found, ok := c.index[key]; ok {
		return found.value, true
	}
	var zero Value
	return zero, false
}

// Set inserts or updates key with value.
// Updating an existing key counts as an access to it.
// Inserting into a full cache evicts first.
func (c *Cache[Key, Value]) Set(key Key, value Value) {
	if c.capacity == 0 {
		return
	}
	if found, ok := c.index[key]; ok {
		found.value = value
		c.ledger.promote(&found.locator)
		c.checkInvariants()
		return
	}
	if c.atCapacity() {
		c.evict()
	}
	c.index[key] = &entry[Value]{
		value:   value,
		locator: c.ledger.admit(key),
	}
	c.checkInvariants()
}

func (c *Cache[_, _]) atCapacity() bool {
	return len(c.index) >= c.capacity
}

// evict discards the least recently used key
// from the lowest frequency bucket.
func (c *Cache[Key, Value]) evict() {
	key, ok := c.ledger.skim()
	if debugging {
		assert(ok, "eviction from an empty ledger")
	}
	if ok {
		delete(c.index, key)
	}
}

// Frequency returns how many times key was accessed
// since it was inserted (starting at 1), without counting
// this query as an access.
func (c *Cache[Key, _]) Frequency(key Key) (int, bool) {
	if found, ok := c.index[key]; ok {
		return c.ledger.frequency(found.locator), true
	}
	return 0, false
}

// Len returns the number of cached keys.
func (c *Cache[_, _]) Len() int { return len(c.index) }

// Cap returns the capacity the cache was constructed with.
func (c *Cache[_, _]) Cap() int { return c.capacity }

// Keys returns an iterator over the cached keys in eviction order;
// the key that would be evicted next is yielded first.
// The cache must not be modified during iteration.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return c.ledger.all()
}

func (c *Cache[_, _]) checkInvariants() {
	if !debugging {
		return
	}
	if err := c.validate(); err != nil {
		panic(err)
	}
}
