package bitview

import "fmt"

// ErrIndexOutOfRange indicates a bit index outside [0, Cap).
//
// It is returned by Test and Set before any storage access takes place.
type ErrIndexOutOfRange struct {
	Index    int
	Capacity int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("bit index out of range: %d (capacity %d)", e.Index, e.Capacity)
}
