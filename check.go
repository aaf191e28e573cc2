package lfu

// validate walks the whole structure and reports the first
// broken invariant it finds. It is O(n) and only runs in
// debug builds and tests.
func (c *Cache[Key, Value]) validate() error {
	if len(c.index) > c.capacity {
		return inconsistency("%d keys exceed capacity %d",
			len(c.index), c.capacity)
	}
	var (
		count    int
		previous int
		l        = &c.ledger
	)
	for handle, bucket := range l.buckets.All(&l.order) {
		if bucket.frequency <= previous {
			return inconsistency("bucket frequency %d follows %d",
				bucket.frequency, previous)
		}
		previous = bucket.frequency
		if bucket.keys.Len() == 0 {
			return inconsistency("empty bucket for frequency %d",
				bucket.frequency)
		}
		for position, key := range l.keys.All(&bucket.keys) {
			found, ok := c.index[key]
			if !ok {
				return inconsistency("bucket %d holds unindexed key %v",
					bucket.frequency, key)
			}
			if found.bucket != handle || found.position != position {
				return inconsistency("locator for key %v does not match its bucket slot",
					key)
			}
			count++
		}
	}
	if count != len(c.index) {
		return inconsistency("index holds %d keys but buckets hold %d",
			len(c.index), count)
	}
	return nil
}
