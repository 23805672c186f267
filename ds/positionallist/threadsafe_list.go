package positionallist

import (
	"github.com/iotaledger/containers.go/syncutils"
)

// threadSafeList implements a thread safe PositionalList by guarding a simpleList with a single mutex.
type threadSafeList[T any] struct {
	list  *simpleList[T]
	mutex syncutils.RWMutex
}

// newThreadSafeList returns a new thread safe PositionalList.
func newThreadSafeList[T any]() *threadSafeList[T] {
	return &threadSafeList[T]{
		list: newSimpleList[T](),
	}
}

// Push appends the given value to the end of the PositionalList.
func (l *threadSafeList[T]) Push(value T) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.list.Push(value)
}

// AddAt inserts the given value at the given position. Inserting at Len() appends the value.
func (l *threadSafeList[T]) AddAt(index int, value T) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.list.AddAt(index, value)
}

// RemoveAt removes the element at the given position and returns its value.
func (l *threadSafeList[T]) RemoveAt(index int) (T, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.list.RemoveAt(index)
}

// Pop removes the last element and returns its value.
func (l *threadSafeList[T]) Pop() (T, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	return l.list.Pop()
}

// GetAt returns the value at the given position.
func (l *threadSafeList[T]) GetAt(index int) (T, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.GetAt(index)
}

// Len returns the number of elements in the PositionalList.
func (l *threadSafeList[T]) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.Len()
}

// IsEmpty returns true if the PositionalList does not contain any elements.
func (l *threadSafeList[T]) IsEmpty() bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.IsEmpty()
}

// Clear removes all elements from the PositionalList.
func (l *threadSafeList[T]) Clear() {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.list.Clear()
}

// Values returns a slice of all values in the PositionalList, starting at the head.
func (l *threadSafeList[T]) Values() []T {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.Values()
}

// String returns the values of the PositionalList from head to tail, separated by " -> ".
func (l *threadSafeList[T]) String() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.list.String()
}

// code contract - make sure the type implements the interface.
var _ PositionalList[int] = &threadSafeList[int]{}
