package fixtab

import "iter"

type node[T any] struct {
	value T
	next  *node[T]
	// prev is a back link used only for PushFront and Backward.
	prev *node[T]
}

// List is an insertion-ordered doubly-linked sequence. The zero value is an
// empty list ready to use. A List is not safe for concurrent use.
type List[T any] struct {
	head, tail *node[T]
	n          int
}

// NewList returns a list holding values in order.
func NewList[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Collect appends every element of seq, in order, to a new list.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.head == nil }

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.n }

// PushBack appends v at the back.
func (l *List[T]) PushBack(v T) {
	nd := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = nd
	} else {
		l.tail.next = nd
	}
	l.tail = nd
	l.n++
}

// PushFront prepends v at the front.
func (l *List[T]) PushFront(v T) {
	nd := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = nd
	} else {
		l.head.prev = nd
	}
	l.head = nd
	l.n++
}

// All yields the elements front to back. Each call starts from the list's
// current head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.head; nd != nil; nd = nd.next {
			if !yield(nd.value) {
				return
			}
		}
	}
}

// Backward yields the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.tail; nd != nil; nd = nd.prev {
			if !yield(nd.value) {
				return
			}
		}
	}
}
