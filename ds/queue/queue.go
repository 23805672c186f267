package queue

import (
	"github.com/iotaledger/containers.go/syncutils"
)

// element is a single link of the queue.
type element[T any] struct {
	value T
	next  *element[T]
}

// Queue is an unbounded FIFO queue. Elements are added at the tail and removed from the head.
type Queue[T any] struct {
	// head is the oldest element, it is the one that is polled next.
	head *element[T]
	// tail is the newest element, new elements are linked behind it.
	tail  *element[T]
	size  int
	mutex syncutils.Mutex
}

// New creates a new empty queue.
func New[T any]() *Queue[T] {
	return new(Queue[T])
}

// Size returns the size of the queue.
func (queue *Queue[T]) Size() int {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	return queue.size
}

// IsEmpty returns true if the queue does not contain any elements.
func (queue *Queue[T]) IsEmpty() bool {
	return queue.Size() == 0
}

// Offer adds an element to the tail of the queue.
func (queue *Queue[T]) Offer(value T) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	newElement := &element[T]{value: value}
	if queue.tail == nil {
		queue.head = newElement
	} else {
		queue.tail.next = newElement
	}
	queue.tail = newElement
	queue.size++
}

// Poll returns and removes the oldest element in the queue and true if successful.
// It returns false if the queue is empty.
func (queue *Queue[T]) Poll() (value T, success bool) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if success = queue.head != nil; !success {
		return
	}

	polled := queue.head
	queue.head = polled.next
	polled.next = nil
	if queue.head == nil {
		queue.tail = nil
	}
	queue.size--

	return polled.value, true
}

// Peek returns the oldest element in the queue without removing it and true if successful.
// It returns false if the queue is empty.
func (queue *Queue[T]) Peek() (value T, success bool) {
	queue.mutex.Lock()
	defer queue.mutex.Unlock()

	if success = queue.head != nil; !success {
		return
	}

	return queue.head.value, true
}
