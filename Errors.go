package Go_Cols

import "strconv"

// FullError reports that a container needed to grow its backing storage but
// its Grower denied the request. The failed operation leaves the container
// exactly as it was.
type FullError struct {
	Cap int
}

func (e *FullError) Error() string {
	return "container is full at capacity " + strconv.Itoa(e.Cap) + ": growth denied"
}

// BoundsError reports an index or range outside a container's logical size.
type BoundsError struct {
	Index, Len int
}

func (e *BoundsError) Error() string {
	return "index " + strconv.Itoa(e.Index) + " out of range for length " + strconv.Itoa(e.Len)
}
