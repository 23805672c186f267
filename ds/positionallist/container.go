package positionallist

import (
	"github.com/emirpasic/gods/containers"

	"github.com/iotaledger/hive.go/lo"
)

// Container exposes a PositionalList as a gods container, so it can be used with the helpers of that library.
type Container[T any] struct {
	list PositionalList[T]
}

// NewContainer wraps the given PositionalList.
func NewContainer[T any](list PositionalList[T]) *Container[T] {
	return &Container[T]{list: list}
}

// Empty returns true if the underlying list does not contain any elements.
func (c *Container[T]) Empty() bool {
	return c.list.IsEmpty()
}

// Size returns the number of elements in the underlying list.
func (c *Container[T]) Size() int {
	return c.list.Len()
}

// Clear removes all elements from the underlying list.
func (c *Container[T]) Clear() {
	c.list.Clear()
}

// Values returns the values of the underlying list, starting at the head.
func (c *Container[T]) Values() []interface{} {
	return lo.Map(c.list.Values(), func(value T) interface{} {
		return value
	})
}

// String returns the string representation of the underlying list.
func (c *Container[T]) String() string {
	return c.list.String()
}

// code contract - make sure the type implements the interface.
var _ containers.Container = &Container[int]{}
