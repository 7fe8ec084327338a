package list

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// newLinkedList returns 1 -> 2 -> nil built by hand, without Push.
func newLinkedList() *LinkedList[uint32] {
	return &LinkedList[uint32]{
		head: &node[uint32]{value: 1, next: &node[uint32]{value: 2}},
		len:  2,
	}
}

func drainToSlice[T any](l *LinkedList[T]) []T {
	var out []T
	for {
		v, ok := l.Pop()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestLinkedList_Push(t *testing.T) {
	l := New[uint32]()
	l.Push(1)
	require.NotNil(t, l.head)
	require.Equal(t, uint32(1), l.head.value)
	require.Nil(t, l.head.next)

	l.Push(2)
	require.Equal(t, uint32(2), l.head.value)
	require.Equal(t, uint32(1), l.head.next.value)
	require.Equal(t, 2, l.Len())
}

func TestLinkedList_Peek(t *testing.T) {
	tests := []struct {
		name     string
		pushes   []int
		expected int
		ok       bool
	}{
		{"empty", nil, 0, false},
		{"single", []int{7}, 7, true},
		{"many", []int{1, 2, 3, 4}, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			for _, v := range tt.pushes {
				l.Push(v)
			}
			v, ok := l.Peek()
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.expected, v)
			require.Equal(t, len(tt.pushes), l.Len())
		})
	}
}

func TestLinkedList_PeekRef(t *testing.T) {
	l := New[string]()
	require.Nil(t, l.PeekRef())

	l.Push("a")
	p := l.PeekRef()
	require.NotNil(t, p)
	*p = "b"

	v, ok := l.Peek()
	require.True(t, ok)
	require.Equal(t, "b", v)
}

func TestLinkedList_Pop(t *testing.T) {
	l := newLinkedList()

	v, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(1), v)

	v, ok = l.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(2), v)

	_, ok = l.Pop()
	require.False(t, ok)
	require.True(t, l.IsEmpty())
	require.Equal(t, 0, l.Len())
}

func TestLinkedList_PopReversesPushOrder(t *testing.T) {
	tests := []struct {
		name   string
		values []int
	}{
		{"none", nil},
		{"one", []int{1}},
		{"several", []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New[int]()
			for _, v := range tt.values {
				l.Push(v)
			}

			var expected []int
			for i := len(tt.values) - 1; i >= 0; i-- {
				expected = append(expected, tt.values[i])
			}
			if diff := cmp.Diff(expected, drainToSlice(l)); diff != "" {
				t.Errorf("pop order mismatch (-want +got):\n%s", diff)
			}

			_, ok := l.Pop()
			require.False(t, ok)
		})
	}
}

func TestLinkedList_PopThenPeek(t *testing.T) {
	l := Of(3, 2, 1)
	_, _ = l.Pop()

	v, ok := l.Peek()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 2, l.Len())
}

func TestLinkedList_Clear(t *testing.T) {
	l := newLinkedList()
	l.Clear()
	require.Nil(t, l.head)
	require.Equal(t, 0, l.Len())

	_, ok := l.Peek()
	require.False(t, ok)
	_, ok = l.Pop()
	require.False(t, ok)

	require.Equal(t, New[uint32]().String(), l.String())

	// clearing an empty list is a no-op
	l.Clear()
	require.True(t, l.IsEmpty())
}

func TestLinkedList_ClearLongList(t *testing.T) {
	const n = 1_000_000
	l := New[int]()
	for i := 0; i < n; i++ {
		l.Push(i)
	}
	require.Equal(t, n, l.Len())

	l.Clear()
	require.True(t, l.IsEmpty())

	l.Push(1)
	v, ok := l.Peek()
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestLinkedList_DropLongList(t *testing.T) {
	const n = 1_000_000
	func() {
		l := New[int]()
		for i := 0; i < n; i++ {
			l.Push(i)
		}
	}()
	// no destructor runs; the unreachable chain is reclaimed by the collector
}

func TestLinkedList_Combined(t *testing.T) {
	l := New[uint32]()
	l.Push(1)
	v, ok := l.Peek()
	require.True(t, ok)
	require.Equal(t, uint32(1), v)

	v, ok = l.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(1), v)
	_, ok = l.Peek()
	require.False(t, ok)

	l.Push(1)
	l.Push(2)
	l.Push(3)
	v, _ = l.Peek()
	require.Equal(t, uint32(3), v)
	v, _ = l.Pop()
	require.Equal(t, uint32(3), v)
	v, _ = l.Peek()
	require.Equal(t, uint32(2), v)

	l.Clear()
	require.Nil(t, l.head)
}

func TestLinkedList_ZeroValue(t *testing.T) {
	var l LinkedList[int]
	require.True(t, l.IsEmpty())
	l.Push(5)
	v, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, 5, v)
}

func TestOf(t *testing.T) {
	l := Of("a", "b", "c")
	require.Equal(t, 3, l.Len())
	if diff := cmp.Diff([]string{"a", "b", "c"}, drainToSlice(l)); diff != "" {
		t.Errorf("Of() mismatch (-want +got):\n%s", diff)
	}
	require.True(t, Of[int]().IsEmpty())
}

func TestLinkedList_String(t *testing.T) {
	tests := []struct {
		list     *LinkedList[int]
		expected string
	}{
		{New[int](), "nil"},
		{Of(1), "1 -> nil"},
		{Of(3, 2, 1), "3 -> 2 -> 1 -> nil"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.list.String())
		})
	}
}

func TestLinkedList_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))

	logger.Info("state", "list", Of(4, 5))
	require.Equal(t, "level=INFO msg=state list.len=2 list.head=4\n", buf.String())

	buf.Reset()
	logger.Info("state", "list", New[int]())
	require.Equal(t, "level=INFO msg=state list.len=0\n", buf.String())
}
