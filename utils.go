package arraytable

import "unsafe"

// Estimates capacity (number of slots) from the given memory size in bytes.
func CapacityFromSize[K, V any](size uintptr) int {
	sizeOfEntry := unsafe.Sizeof(Entry[K, V]{})
	if sizeOfEntry == 0 {
		return 0
	}

	return int(size / sizeOfEntry)
}
