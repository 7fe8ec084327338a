// Package list implements a generic singly-linked list with stack (LIFO) semantics.
//
// A LinkedList is not safe for concurrent use. Iterators obtained from a list are
// invalidated by any structural mutation (Push, Pop, Clear) made while they are live;
// see Iter and IterMut.
package list

import (
	"fmt"
	"log/slog"
	"strings"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly-linked chain of nodes. The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head    *node[T]
	len     int
	version uint64
}

// New returns an empty list.
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Of returns a list holding values in the given order, values[0] at the head.
func Of[T any](values ...T) *LinkedList[T] {
	l := New[T]()
	for i := len(values) - 1; i >= 0; i-- {
		l.Push(values[i])
	}
	return l
}

// Push prepends value as the new head.
func (l *LinkedList[T]) Push(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.len++
	l.version++
}

// Peek returns the head value without removing it. ok is false if the list is empty.
func (l *LinkedList[T]) Peek() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// PeekRef returns a pointer to the head value, or nil if the list is empty.
func (l *LinkedList[T]) PeekRef() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// Pop removes the head and returns its value. ok is false if the list is empty.
func (l *LinkedList[T]) Pop() (v T, ok bool) {
	var zero T
	old := l.head
	if old == nil {
		return zero, false
	}

	l.head = old.next
	l.len--
	l.version++

	v = old.value
	old.value = zero
	old.next = nil
	return v, true
}

// Clear removes every element, unlinking the chain one node at a time.
func (l *LinkedList[T]) Clear() {
	if l.head == nil {
		return
	}

	var zero T
	current := l.head
	l.head = nil
	for current != nil {
		next := current.next
		current.value = zero
		current.next = nil
		current = next
	}
	l.len = 0
	l.version++
}

func (l *LinkedList[T]) Len() int {
	return l.len
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// String renders the chain head to tail, e.g. "3 -> 2 -> 1 -> nil". An empty list renders as "nil".
func (l *LinkedList[T]) String() string {
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&sb, "%v -> ", n.value)
	}
	sb.WriteString("nil")
	return sb.String()
}

// LogValue implements slog.LogValuer.
func (l *LinkedList[T]) LogValue() slog.Value {
	if l.head == nil {
		return slog.GroupValue(slog.Int("len", 0))
	}
	return slog.GroupValue(slog.Int("len", l.len), slog.Any("head", l.head.value))
}
