package positionallist

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// separator is placed between two values in the string representation of a list.
const separator = " -> "

// node is a single link of the chain. It is referenced either by the head of the list or by the next field of its
// predecessor, never by both.
type node[T any] struct {
	value T
	next  *node[T]
}

// simpleList implements a non-thread safe PositionalList.
type simpleList[T any] struct {
	// head is the first node of the chain or nil if the list is empty.
	head *node[T]

	// length is the number of nodes reachable from head.
	length int
}

// newSimpleList returns a new non-thread safe PositionalList.
func newSimpleList[T any]() *simpleList[T] {
	return new(simpleList[T])
}

// Push appends the given value to the end of the PositionalList.
func (l *simpleList[T]) Push(value T) {
	if err := l.AddAt(l.length, value); err != nil {
		panic(err)
	}
}

// AddAt inserts the given value at the given position. Inserting at Len() appends the value.
func (l *simpleList[T]) AddAt(index int, value T) error {
	if index < 0 || index > l.length {
		return &IndexError{Index: index}
	}

	newNode := &node[T]{value: value}

	if index == 0 {
		newNode.next = l.head
		l.head = newNode
		l.length++

		return nil
	}

	predecessor, err := l.nodeAt(index - 1)
	if err != nil {
		return err
	}

	newNode.next = predecessor.next
	predecessor.next = newNode
	l.length++

	return nil
}

// RemoveAt removes the element at the given position and returns its value.
func (l *simpleList[T]) RemoveAt(index int) (value T, err error) {
	if l.length == 0 {
		return value, ErrEmpty
	}

	if index < 0 || index >= l.length {
		return value, &IndexError{Index: index}
	}

	if index == 0 {
		removed := l.head
		if removed == nil {
			return value, ierrors.Wrapf(ErrUnknown, "missing head in list of length %d", l.length)
		}

		l.head = removed.next
		removed.next = nil
		l.length--

		return removed.value, nil
	}

	predecessor, err := l.nodeAt(index - 1)
	if err != nil {
		return value, err
	}

	removed := predecessor.next
	if removed == nil {
		return value, ierrors.Wrapf(ErrUnknown, "missing node at position %d in list of length %d", index, l.length)
	}

	predecessor.next = removed.next
	removed.next = nil
	l.length--

	return removed.value, nil
}

// Pop removes the last element and returns its value.
func (l *simpleList[T]) Pop() (value T, err error) {
	if l.length == 0 {
		return value, ErrEmpty
	}

	return l.RemoveAt(l.length - 1)
}

// GetAt returns the value at the given position.
func (l *simpleList[T]) GetAt(index int) (value T, err error) {
	if index < 0 || index >= l.length {
		return value, &IndexError{Index: index}
	}

	target, err := l.nodeAt(index)
	if err != nil {
		return value, err
	}

	return target.value, nil
}

// Len returns the number of elements in the PositionalList.
func (l *simpleList[T]) Len() int {
	return l.length
}

// IsEmpty returns true if the PositionalList does not contain any elements.
func (l *simpleList[T]) IsEmpty() bool {
	return l.length == 0
}

// Clear removes all elements from the PositionalList.
func (l *simpleList[T]) Clear() {
	// detach the nodes one by one so that long chains are released without recursion
	for l.head != nil {
		detached := l.head
		l.head = detached.next
		detached.next = nil
	}

	l.length = 0
}

// Values returns a slice of all values in the PositionalList, starting at the head.
func (l *simpleList[T]) Values() []T {
	values := make([]T, 0, l.length)
	for current := l.head; current != nil; current = current.next {
		values = append(values, current.value)
	}

	return values
}

// String returns the values of the PositionalList from head to tail, separated by " -> ".
func (l *simpleList[T]) String() string {
	var builder strings.Builder
	for index := 0; ; index++ {
		value, err := l.GetAt(index)
		if err != nil {
			break
		}

		if index > 0 {
			builder.WriteString(separator)
		}
		builder.WriteString(fmt.Sprint(value))
	}

	return builder.String()
}

// nodeAt returns the node that is reached by following index links from the head.
func (l *simpleList[T]) nodeAt(index int) (*node[T], error) {
	current := l.head
	for i := 0; i < index && current != nil; i++ {
		current = current.next
	}

	if current == nil {
		return nil, ierrors.Wrapf(ErrUnknown, "chain ends before position %d in list of length %d", index, l.length)
	}

	return current, nil
}

// code contract - make sure the type implements the interface.
var _ PositionalList[int] = &simpleList[int]{}
