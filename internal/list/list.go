// Package list is an arena of doubly linked lists whose elements
// are addressed by generation-checked handles rather than pointers.
package list

import (
	"fmt"
	"iter"
)

type (
	// Handle locates an element within an [Arena].
	// A Handle stays valid until its element is removed;
	// removing or inserting other elements does not affect it.
	// The zero Handle never refers to an element.
	Handle struct {
		index      uint32
		generation uint32
	}
	// List is an ordered sequence of elements stored in an [Arena].
	// The zero value is an empty list.
	// A List must only be used with the Arena it was populated from.
	List struct {
		head, tail uint32
		length     int
	}
	// Arena owns the elements of any number of [List]s.
	// Slots of removed elements are recycled by later insertions.
	// The zero value is ready to use.
	Arena[T any] struct {
		slots []slot[T]
		free  uint32 // Head of the free slot chain (linked via next).
	}
	slot[T any] struct {
		value      T
		prev, next uint32
		generation uint32
		linked     bool
	}
)

// Slot 0 is reserved so that a zero index can mean "none".
const none = 0

// Len returns the number of elements in l.
func (l *List) Len() int { return l.length }

// Valid reports whether h refers to a linked element of a.
func (a *Arena[T]) Valid(h Handle) bool {
	if h.index == none || int(h.index) >= len(a.slots) {
		return false
	}
	s := &a.slots[h.index]
	return s.linked && s.generation == h.generation
}

// Get returns a pointer to the element referenced by h.
// The pointer is only valid until the next insertion into a,
// as insertions may reallocate the arena's storage.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.slots[a.resolve(h)].value
}

// Front returns the first element of l, if any.
func (a *Arena[T]) Front(l *List) (Handle, bool) {
	return a.handle(l.head)
}

// Back returns the last element of l, if any.
func (a *Arena[T]) Back(l *List) (Handle, bool) {
	return a.handle(l.tail)
}

// Next returns the element following h, if any.
func (a *Arena[T]) Next(h Handle) (Handle, bool) {
	return a.handle(a.slots[a.resolve(h)].next)
}

// Prev returns the element preceding h, if any.
func (a *Arena[T]) Prev(h Handle) (Handle, bool) {
	return a.handle(a.slots[a.resolve(h)].prev)
}

// PushFront inserts value at the front of l.
func (a *Arena[T]) PushFront(l *List, value T) Handle {
	index := a.alloc(value)
	a.linkAfter(l, none, index)
	return a.mustHandle(index)
}

// PushBack inserts value at the back of l.
func (a *Arena[T]) PushBack(l *List, value T) Handle {
	index := a.alloc(value)
	a.linkAfter(l, l.tail, index)
	return a.mustHandle(index)
}

// InsertAfter inserts value immediately after the element at
// within l and returns its handle.
func (a *Arena[T]) InsertAfter(l *List, at Handle, value T) Handle {
	var (
		prev  = a.resolve(at)
		index = a.alloc(value)
	)
	a.linkAfter(l, prev, index)
	return a.mustHandle(index)
}

// Remove unlinks the element h from l and returns its value.
// h (and only h) becomes invalid.
func (a *Arena[T]) Remove(l *List, h Handle) T {
	index := a.resolve(h)
	a.unlink(l, index)
	return a.release(index)
}

// PopFront removes and returns the first element of l.
// It returns false if l is empty.
func (a *Arena[T]) PopFront(l *List) (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	index := l.head
	a.unlink(l, index)
	return a.release(index), true
}

// All returns an iterator over the handles and values of l,
// front to back. l must not be modified during iteration.
func (a *Arena[T]) All(l *List) iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for index := l.head; index != none; index = a.slots[index].next {
			s := &a.slots[index]
			if !yield(Handle{index: index, generation: s.generation}, s.value) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of l, front to back.
// l must not be modified during iteration.
func (a *Arena[T]) Values(l *List) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range a.All(l) {
			if !yield(value) {
				return
			}
		}
	}
}

func (a *Arena[T]) resolve(h Handle) uint32 {
	if !a.Valid(h) {
		panic(fmt.Errorf("%w: %+v", ErrStaleHandle, h))
	}
	return h.index
}

func (a *Arena[T]) handle(index uint32) (Handle, bool) {
	if index == none {
		return Handle{}, false
	}
	return Handle{
		index:      index,
		generation: a.slots[index].generation,
	}, true
}

func (a *Arena[T]) mustHandle(index uint32) Handle {
	h, _ := a.handle(index)
	return h
}

// alloc stores value in a free slot (or a new one) and returns its index.
func (a *Arena[T]) alloc(value T) uint32 {
	if len(a.slots) == 0 {
		a.slots = append(a.slots, slot[T]{})
	}
	index := a.free
	if index == none {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{generation: 1})
	} else {
		a.free = a.slots[index].next
	}
	s := &a.slots[index]
	s.value = value
	s.linked = true
	return index
}

// release zeroes the slot, invalidates outstanding handles to it,
// and returns it to the free chain.
func (a *Arena[T]) release(index uint32) T {
	var (
		zero  T
		s     = &a.slots[index]
		value = s.value
	)
	s.value = zero
	s.linked = false
	s.prev = none
	if s.generation++; s.generation == 0 {
		s.generation = 1
	}
	s.next = a.free
	a.free = index
	return value
}

// linkAfter splices index into l after prev.
// A prev of none links at the front.
func (a *Arena[T]) linkAfter(l *List, prev, index uint32) {
	var next uint32
	if prev == none {
		next = l.head
		l.head = index
	} else {
		next = a.slots[prev].next
		a.slots[prev].next = index
	}
	if next == none {
		l.tail = index
	} else {
		a.slots[next].prev = index
	}
	s := &a.slots[index]
	s.prev, s.next = prev, next
	l.length++
}

func (a *Arena[T]) unlink(l *List, index uint32) {
	var (
		s          = &a.slots[index]
		prev, next = s.prev, s.next
	)
	if prev == none {
		l.head = next
	} else {
		a.slots[prev].next = next
	}
	if next == none {
		l.tail = prev
	} else {
		a.slots[next].prev = prev
	}
	l.length--
}
