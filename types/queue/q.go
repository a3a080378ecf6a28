package queue

// Q is a generic container supporting both stack and queue access.
// Push/Pop are O(1), Enqueue is O(1) amortized, Dequeue is O(n).
type Q[T any] struct {
	items []T
}

// New creates an empty Q.
func New[T any]() *Q[T] {
	return &Q[T]{}
}

// Push adds an item on top of the stack.
func (q *Q[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the top item of the stack.
func (q *Q[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	item := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]

	return item, true
}

// Enqueue adds an item at the end of the queue.
func (q *Q[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the first item of the queue.
func (q *Q[T]) Dequeue() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	item := q.items[0]
	q.items = q.items[1:]

	return item, true
}

// At returns the item at index without removing it.
func (q *Q[T]) At(index int) (T, bool) {
	if index < 0 || index >= len(q.items) {
		var zero T
		return zero, false
	}

	return q.items[index], true
}

// Len returns the number of stored items.
func (q *Q[T]) Len() int {
	return len(q.items)
}

// Clear removes all items.
func (q *Q[T]) Clear() {
	q.items = q.items[:0]
}
