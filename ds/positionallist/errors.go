package positionallist

import (
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrIndexOutOfRange is returned if a position lies outside of the valid range of a list.
	ErrIndexOutOfRange = ierrors.New("index out of range")
	// ErrEmpty is returned if an element is removed from an empty list.
	ErrEmpty = ierrors.New("list is empty")
	// ErrUnknown is returned if the chain of nodes does not match the length of a list.
	ErrUnknown = ierrors.New("unknown list error")
)

// IndexError is returned if a position lies outside of the valid range of a list. It matches ErrIndexOutOfRange.
type IndexError struct {
	// Index is the offending position.
	Index int
}

// Error returns the error message.
func (e *IndexError) Error() string {
	return ErrIndexOutOfRange.Error() + ": " + strconv.Itoa(e.Index)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// IndexOf returns the offending position of an index error and true, or false if err is not an index error.
func IndexOf(err error) (index int, ok bool) {
	var indexErr *IndexError
	if !ierrors.As(err, &indexErr) {
		return 0, false
	}

	return indexErr.Index, true
}
