package Trees

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers returning A pointer use nil to indicate that no element is
// defined for the query; the pointed-to value is owned by the tree and is
// only valid until the next structurally mutating call on the same tree.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, calling PopMin on an
// empty tree returns (x T, false bool); in this case x should be undefined.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Remove v from the Tree, returning the removed element. The bool is
	//false when v wasn't present, in which case the tree is untouched.
	Remove(v T) (T, bool)
	//Min element of the tree.
	Min() *T
	//Max element of the tree.
	Max() *T
	//PopMin removes and returns the minimum element.
	PopMin() (T, bool)
	//PopMax removes and returns the maximum element.
	PopMax() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) *T
	//Successor returns the smallest element greater than v.
	Successor(v T) *T
	//Has element v. Note that even though by utilizing the second
	//return value of other methods achieves the same functionality
	//as Has, it is encouraged to use Has for the purposes of checking
	//if some value exists, as Has should be optimized for this purpose
	//in implementations.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//InOrder calls f on every element in ascending order until f returns
	//false. The tree must not be modified during the iteration.
	InOrder(f func(*T) bool)
	//Validate returns whether the tree still satisfies all structural
	//properties of the specific implementation. This exists for tests and
	//debugging; a false return indicates caller misuse, not a recoverable
	//runtime condition.
	Validate() bool
}
