package util

// Stack is a LIFO over a slice. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

// Push puts item on top.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item, or the zero value when empty.
func (s *Stack[T]) Pop() (item T) {
	if last := len(s.items) - 1; last >= 0 {
		item = s.items[last]
		s.items = s.items[:last]
	}
	return
}

// Peek returns the top item without removing it, or the zero value when empty.
func (s *Stack[T]) Peek() (item T) {
	if last := len(s.items) - 1; last >= 0 {
		item = s.items[last]
	}
	return
}

// Len reports how many items the stack holds.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Clear empties the stack.
func (s *Stack[T]) Clear() {
	s.items = nil
}
