package lfu

import (
	"iter"

	"github.com/djdv/go-lfu/internal/list"
)

type (
	// bucket holds the keys currently sharing an access frequency.
	// Front of keys is the eviction candidate; back is the
	// key most recently promoted (or admitted) into the bucket.
	bucket[Key comparable] struct {
		keys      list.List
		frequency int
	}
	// ledger is the frequency-ordered chain of buckets.
	// Frequencies strictly ascend from the head but may skip values.
	// No bucket is left empty once a protocol step returns.
	ledger[Key comparable] struct {
		buckets list.Arena[bucket[Key]]
		keys    list.Arena[Key]
		order   list.List
	}
	// locator pins a key to its bucket and to its slot within that bucket.
	// position is only meaningful relative to bucket;
	// both are always rewritten together.
	locator struct {
		bucket, position list.Handle
	}
)

// bucketFor returns the bucket at handle if it holds frequency.
func (l *ledger[Key]) bucketFor(handle list.Handle, frequency int) (*bucket[Key], bool) {
	bucket := l.buckets.Get(handle)
	if bucket.frequency != frequency {
		return nil, false
	}
	return bucket, true
}

// ensureBucketAfter returns the bucket following handle
// if it holds frequency, otherwise a new bucket for frequency
// is spliced in directly after handle.
func (l *ledger[Key]) ensureBucketAfter(handle list.Handle, frequency int) list.Handle {
	if next, ok := l.buckets.Next(handle); ok {
		if _, match := l.bucketFor(next, frequency); match {
			return next
		}
	}
	return l.buckets.InsertAfter(&l.order, handle,
		bucket[Key]{frequency: frequency})
}

// purgeIfEmpty drops the bucket at handle if it no longer holds keys.
// The frequency 1 bucket is not exempt; [ledger.floor] recreates it.
func (l *ledger[Key]) purgeIfEmpty(handle list.Handle) {
	if l.buckets.Get(handle).keys.Len() == 0 {
		l.buckets.Remove(&l.order, handle)
	}
}

// floor returns the frequency 1 bucket, creating it at the head if needed.
// 1 is the lowest possible frequency so it always belongs at the head.
func (l *ledger[Key]) floor() list.Handle {
	const admitted = 1
	if head, ok := l.buckets.Front(&l.order); ok {
		if _, match := l.bucketFor(head, admitted); match {
			return head
		}
	}
	return l.buckets.PushFront(&l.order,
		bucket[Key]{frequency: admitted})
}

// admit appends a new key to the frequency 1 bucket.
func (l *ledger[Key]) admit(key Key) locator {
	var (
		floor  = l.floor()
		bucket = l.buckets.Get(floor)
	)
	return locator{
		bucket:   floor,
		position: l.keys.PushBack(&bucket.keys, key),
	}
}

// promote moves the key at loc from its bucket (frequency f)
// to the back of the f+1 bucket, and rewrites loc to match.
// The target bucket is resolved relative to the origin before
// the origin is considered for purging, since the origin
// is the splice point for a new target.
func (l *ledger[Key]) promote(loc *locator) {
	var (
		origin    = loc.bucket
		current   = l.buckets.Get(origin)
		frequency = current.frequency
		key       = l.keys.Remove(&current.keys, loc.position)
	)
	// current may be invalidated by the insertion below.
	target := l.ensureBucketAfter(origin, frequency+1)
	next := l.buckets.Get(target)
	loc.bucket = target
	loc.position = l.keys.PushBack(&next.keys, key)
	l.purgeIfEmpty(origin)
}

// skim removes the least recently used key of the lowest frequency.
// It returns false if the ledger is empty.
func (l *ledger[Key]) skim() (Key, bool) {
	head, ok := l.buckets.Front(&l.order)
	if !ok {
		var zero Key
		return zero, false
	}
	key, ok := l.keys.PopFront(&l.buckets.Get(head).keys)
	l.purgeIfEmpty(head)
	return key, ok
}

func (l *ledger[Key]) frequency(loc locator) int {
	return l.buckets.Get(loc.bucket).frequency
}

// all yields keys in eviction order:
// lowest frequency first, least recent first within a frequency.
func (l *ledger[Key]) all() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for _, bucket := range l.buckets.All(&l.order) {
			for key := range l.keys.Values(&bucket.keys) {
				if !yield(key) {
					return
				}
			}
		}
	}
}
