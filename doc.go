// Package lfu implements a [Cache] using Least Frequently Used replacement
// with constant time lookup, insertion, and eviction.
//
// The structure follows "An O(1) algorithm for implementing the LFU cache
// eviction scheme" (Shah, Mitra, Matani), with the linked lists stored in
// arenas and addressed by handles rather than pointers.
//
// The following is a summary intended for maintainers.
//
// Glossary:
//
//   - Frequency
//
//     Number of accesses to a key since it was inserted.
//     Insertion counts as the first; every [Cache.Get] hit
//     and every [Cache.Set] of a present key adds one.
//
//   - Bucket
//
//     The keys currently sharing a frequency, ordered by recency.
//     The front is the least recently touched key, the back the most recent.
//
//   - Ledger
//
//     The chain of buckets, ordered by ascending frequency.
//
//   - Locator
//
//     The pair of handles (bucket, position within bucket)
//     stored alongside each cached value.
//
// Invariants:
//
//   - Bucket frequencies strictly ascend from the head of the ledger.
//
//     They need not be contiguous; buckets for 1 and 3 may be neighbours.
//
//   - No bucket is empty between operations.
//
//     Consequently the head bucket always holds the minimum frequency.
//
//   - A key's locator always names the bucket holding it
//     and its slot in that bucket.
//
// Operations:
//
//   - Promotion
//
//     On access, a key at frequency f is unlinked from its bucket
//     and appended to the f+1 bucket, which is either the next
//     bucket in the ledger or a new one spliced in directly after
//     the current bucket. Only then is the old bucket purged if empty.
//
//   - Admission
//
//     A new key is appended to the frequency 1 bucket,
//     which is the head if present, otherwise a new head.
//
//   - Skim (eviction)
//
//     The front key of the head bucket is removed;
//     the lowest frequency, least recently touched key.
//
// Build with the `lfu_debug` tag to validate every invariant
// after each mutating call.
package lfu
