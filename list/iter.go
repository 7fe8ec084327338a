package list

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidated is reported by an iterator whose list was structurally modified after the
// iterator was created.
var ErrInvalidated = errors.New("list modified during iteration")

// Iter is a read-only forward cursor over a list, head to tail. It must not outlive a
// structural mutation of its list: once the list changes, Next returns false and Err
// returns ErrInvalidated.
type Iter[T any] struct {
	list    *LinkedList[T]
	version uint64
	current *node[T]
	err     error
}

// Iter returns a new cursor positioned at the head.
func (l *LinkedList[T]) Iter() *Iter[T] {
	return &Iter[T]{list: l, version: l.version, current: l.head}
}

// Next returns the current value and advances. ok is false once the list is exhausted
// or the cursor has been invalidated.
func (it *Iter[T]) Next() (v T, ok bool) {
	if it.list.version != it.version {
		it.current = nil
		it.err = ErrInvalidated
	}
	if it.current == nil {
		return v, false
	}

	n := it.current
	it.current = n.next
	return n.value, true
}

func (it *Iter[T]) Err() error {
	return it.err
}

// IterMut is a forward cursor yielding pointers to the stored values. Values may be
// modified through the pointers; the chain itself may not. The caller must hold the
// list exclusively while the cursor is in use.
type IterMut[T any] struct {
	list    *LinkedList[T]
	version uint64
	current *node[T]
	err     error
}

// IterMut returns a new mutable cursor positioned at the head.
func (l *LinkedList[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{list: l, version: l.version, current: l.head}
}

// Next returns a pointer to the current value and advances.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.list.version != it.version {
		it.current = nil
		it.err = ErrInvalidated
	}
	if it.current == nil {
		return nil, false
	}

	n := it.current
	it.current = n.next
	return &n.value, true
}

func (it *IterMut[T]) Err() error {
	return it.err
}

// All returns an iterator over the values, head to tail. It panics if the loop body
// pushes, pops or clears.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for {
			v, ok := it.Next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(fmt.Errorf("list: range over All: %w", err))
		}
	}
}

// Pointers returns an iterator over pointers to the values, head to tail. It panics if
// the loop body pushes, pops or clears.
func (l *LinkedList[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := l.IterMut()
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			if !yield(p) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(fmt.Errorf("list: range over Pointers: %w", err))
		}
	}
}

// Drain returns an iterator that pops each element as it is yielded. A full range
// leaves the list empty; breaking early leaves the remaining elements in place.
func (l *LinkedList[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := l.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
