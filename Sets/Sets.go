package Sets

// Set of unique elements. Put reports whether e was absent; err is non-nil
// only when the set is at capacity and growth is denied. Take removes and
// returns an arbitrary element.
type Set[E any] interface {
	Put(e E) (added bool, err error)
	Has(E) bool
	Remove(E) bool
	Size() int
	Take() (E, bool)
	Range(func(E) bool)
	Clear(des func(*E))
}

// ExtendedSet adds bulk operations taking another Set.
type ExtendedSet[E any] interface {
	Set[E]
	PutAll(Set[E]) int
	RemoveAll(Set[E]) int
	Eq(Set[E]) bool
	Intersect(Set[E])
	Filter(keep func(E) bool)
}
