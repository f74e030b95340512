package arraytable

// Entry is a key/value pair owned by a table.
// Entries are stored by value, so moving one between slots is a plain copy.
type Entry[K, V any] struct {
	Key   K
	Value V
}
