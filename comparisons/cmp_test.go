package comparisons

import "cmp"

// pi permutes [0, treeItemCount) with a prime stride so setup insertions
// aren't presorted.
func pi(i int) int {
	return i * 53 % treeItemCount
}

func intCmp(a, b int) int { return cmp.Compare(a, b) }
