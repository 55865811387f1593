// Package stack implements the LIFO stack the cursor tracks open
// elements with.
package stack

// Stack is a slice-backed stack. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Peek returns the top item. ok is false when the stack is empty.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

// Pop removes up to n items from the top of the stack. Once the stack
// has shrunk to less than half its capacity the backing array is
// reallocated.
func (s *Stack[T]) Pop(n int) {
	if n <= 0 {
		return
	}
	if n > len(s.items) {
		n = len(s.items)
	}
	clear(s.items[len(s.items)-n:])
	s.items = s.items[:len(s.items)-n]

	if c := cap(s.items); c > 20 && c > len(s.items)*2 {
		s.items = append([]T(nil), s.items...)
	}
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}
