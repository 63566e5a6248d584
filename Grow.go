package Go_Cols

// Grower decides the next capacity of a container's backing array when the
// current one can't fit another element. current is the present capacity and
// required is the minimum capacity the container needs. Returning ok==false
// denies the reallocation; the container then reports FullError instead of
// growing. A container handed FixedCap therefore never reallocates and can
// safely share caller-provided storage.
type Grower func(current, required int) (next int, ok bool)

// DoubleCap doubles the capacity until required fits. This is the default
// policy for all containers constructed without an explicit Grower.
func DoubleCap(current, required int) (int, bool) {
	n := current
	if n == 0 {
		n = 1
	}
	for n < required {
		n *= 2
	}
	return n, true
}

// FixedCap denies every growth request.
func FixedCap(current, _ int) (int, bool) {
	return current, false
}
