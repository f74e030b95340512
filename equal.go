package arraytable

// EqualFunc reports whether two keys are the same key.
// It must stay consistent for the whole lifetime of a table.
type EqualFunc[K any] func(a, b K) bool

// Equal is the EqualFunc for comparable keys, using ==.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// EqualFromCompare reduces a three-way comparator (negative, zero, positive)
// to an equality check. Useful with cmp.Compare, strings.Compare and friends.
func EqualFromCompare[K any](compare func(a, b K) int) EqualFunc[K] {
	return func(a, b K) bool {
		return compare(a, b) == 0
	}
}
