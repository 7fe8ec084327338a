// Package demo walks a list through push, peek, pop, clear and a draining range, printing
// each result.
package demo

import (
	"fmt"
	"github.com/aleph-zero/linkedlist/list"
	"io"
)

const emptyMarker = "(empty)"

func Run(w io.Writer) {
	l := list.New[uint32]()
	show := func(op string, v uint32, ok bool) {
		if !ok {
			fmt.Fprintf(w, "%s: %s\n", op, emptyMarker)
			return
		}
		fmt.Fprintf(w, "%s: %d\n", op, v)
	}

	l.Push(1)
	v, ok := l.Peek()
	show("peek", v, ok)
	v, ok = l.Pop()
	show("pop", v, ok)
	v, ok = l.Peek()
	show("peek", v, ok)

	l.Push(1)
	l.Push(2)
	l.Push(3)
	v, ok = l.Peek()
	show("peek", v, ok)
	v, ok = l.Pop()
	show("pop", v, ok)
	v, ok = l.Peek()
	show("peek", v, ok)

	l.Clear()
	fmt.Fprintf(w, "list: %v\n", l)

	l.Push(4)
	l.Push(5)
	l.Push(6)
	for v := range l.Drain() {
		fmt.Fprintln(w, v)
	}
}
