package ringbuffer

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/iotaledger/containers.go/syncutils"
)

// DefaultCapacity is the capacity of a RingBuffer that is created with New.
const DefaultCapacity = 10

var (
	// ErrFull is returned if an element is pushed to a RingBuffer that has no free slot.
	ErrFull = ierrors.New("ring buffer is full")
	// ErrEmpty is returned if an element is read from a RingBuffer that does not contain any elements.
	ErrEmpty = ierrors.New("ring buffer is empty")
)

// RingBuffer is a thread-safe fixed buffer of elements with FIFO semantics.
// The read and write counters only ever grow, the slot of a counter is the counter modulo the capacity.
type RingBuffer[T any] struct {
	buffer []T
	read   uint64
	write  uint64
	mutex  syncutils.RWMutex
}

// New creates a new RingBuffer with the DefaultCapacity.
func New[T any]() *RingBuffer[T] {
	return NewRingBuffer[T](DefaultCapacity)
}

// NewRingBuffer creates a new RingBuffer with a maximum size of capacity.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		panic(ierrors.Errorf("invalid ring buffer capacity %d", capacity))
	}

	return &RingBuffer[T]{
		buffer: make([]T, capacity),
	}
}

// Push adds an element to the buffer. It returns ErrFull if the buffer has no free slot.
func (r *RingBuffer[T]) Push(element T) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.isFull() {
		return ErrFull
	}

	r.push(element)

	return nil
}

// ForcePush adds an element to the buffer, overwriting the oldest element if the buffer is full.
func (r *RingBuffer[T]) ForcePush(element T) (removedElement T, wasRemoved bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if wasRemoved = r.isFull(); wasRemoved {
		removedElement = r.get()
	}

	r.push(element)

	return removedElement, wasRemoved
}

// Get returns and removes the oldest element of the buffer. It returns ErrEmpty if the buffer is empty.
func (r *RingBuffer[T]) Get() (element T, err error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.isEmpty() {
		return element, ErrEmpty
	}

	return r.get(), nil
}

// Size returns the number of elements in the buffer.
func (r *RingBuffer[T]) Size() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return int(r.write - r.read)
}

// Capacity returns the capacity of the buffer.
func (r *RingBuffer[T]) Capacity() int {
	return len(r.buffer)
}

// IsEmpty returns true if the buffer does not contain any elements.
func (r *RingBuffer[T]) IsEmpty() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.isEmpty()
}

// IsFull returns true if the buffer has no free slot.
func (r *RingBuffer[T]) IsFull() bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.isFull()
}

// ToSlice returns all the elements currently in the buffer, from newest to oldest.
func (r *RingBuffer[T]) ToSlice() []T {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make([]T, 0, r.write-r.read)
	for counter := r.write; counter > r.read; counter-- {
		result = append(result, r.buffer[r.slot(counter-1)])
	}

	return result
}

func (r *RingBuffer[T]) push(element T) {
	r.buffer[r.slot(r.write)] = element
	r.write++
}

func (r *RingBuffer[T]) get() (element T) {
	slot := r.slot(r.read)
	element = r.buffer[slot]

	var emptyElement T
	r.buffer[slot] = emptyElement
	r.read++

	return element
}

func (r *RingBuffer[T]) slot(counter uint64) uint64 {
	return counter % uint64(len(r.buffer))
}

func (r *RingBuffer[T]) isFull() bool {
	return r.write-r.read == uint64(len(r.buffer))
}

func (r *RingBuffer[T]) isEmpty() bool {
	return r.write == r.read
}
