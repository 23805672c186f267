package positionallist

// PositionalList is an ordered sequence of elements that is addressed by zero-based positions. Position 0 is the head
// of the list and position Len() denotes the slot behind the last element.
type PositionalList[T any] interface {
	// Push appends the given value to the end of the PositionalList.
	Push(value T)

	// AddAt inserts the given value at the given position. Inserting at Len() appends the value.
	AddAt(index int, value T) error

	// RemoveAt removes the element at the given position and returns its value.
	RemoveAt(index int) (T, error)

	// Pop removes the last element and returns its value.
	Pop() (T, error)

	// GetAt returns the value at the given position.
	GetAt(index int) (T, error)

	// Len returns the number of elements in the PositionalList.
	Len() int

	// IsEmpty returns true if the PositionalList does not contain any elements.
	IsEmpty() bool

	// Clear removes all elements from the PositionalList.
	Clear()

	// Values returns a slice of all values in the PositionalList, starting at the head.
	Values() []T

	// String returns the values of the PositionalList from head to tail, separated by " -> ".
	String() string
}

// New returns a new PositionalList that is thread safe if the optional threadSafe parameter is set to true.
func New[T any](threadSafe ...bool) PositionalList[T] {
	if len(threadSafe) >= 1 && threadSafe[0] {
		return newThreadSafeList[T]()
	}

	return newSimpleList[T]()
}
