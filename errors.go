package arraytable

import "github.com/go-faster/errors"

var (
	// ErrAllocation is returned by New when the backing storage can't be created.
	ErrAllocation = errors.New("arraytable: storage allocation failed")

	// ErrCapacityExceeded is returned by Insert when a new key doesn't fit anymore.
	ErrCapacityExceeded = errors.New("arraytable: capacity exceeded")

	// ErrEmptyTable is returned by operations that need at least one entry.
	ErrEmptyTable = errors.New("arraytable: table is empty")

	// ErrDestroyed is returned by Insert once the table has been destroyed.
	ErrDestroyed = errors.New("arraytable: table is destroyed")
)
