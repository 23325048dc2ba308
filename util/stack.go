package util

// Stack is a LIFO used for navigation history. When Limit is positive the
// stack never holds more than Limit items: pushing onto a full stack
// forgets the oldest one.
type Stack[T any] struct {
	Limit int
	items []T
}

func (s *Stack[T]) Push(item T) {
	if s.Limit > 0 && len(s.items) >= s.Limit {
		s.items = append(s.items[:0], s.items[len(s.items)-s.Limit+1:]...)
	}
	s.items = append(s.items, item)
}

// Pop removes the top item. An empty stack yields the zero value.
func (s *Stack[T]) Pop() (item T) {
	n := len(s.items)
	if n == 0 {
		return
	}
	item, s.items = s.items[n-1], s.items[:n-1]
	return
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int { return len(s.items) }

func (s *Stack[T]) Clear() { s.items = s.items[:0] }
