package arraytable

import (
	"iter"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// Table is an associative container backed by a fixed-capacity array.
// Lookups are linear scans over the occupied slots, which always form the
// contiguous range [low, low+size). Removal moves the last entry into the
// freed slot, so the iteration order is the insertion order only until the
// first removal.
// Table is not safe for concurrent use.
type Table[K, V any] struct {
	storage Storage[Entry[K, V]]
	alloc   Allocator[K, V]

	low      int
	size     int
	capacity int

	equal        EqualFunc[K]
	destroyKey   func(K)
	destroyValue func(V)

	logger *zap.Logger
}

// Returns a new empty table, which compares keys with the given equal function.
func New[K, V any](equal EqualFunc[K], opts ...Option[K, V]) (*Table[K, V], error) {
	if equal == nil {
		return nil, errors.New("arraytable: equal func is required")
	}

	t := &Table[K, V]{
		equal:    equal,
		capacity: DefaultCapacity,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}

	if t.alloc == nil {
		t.alloc = allocateArray[K, V]
	}

	storage, err := t.alloc(0, t.capacity-1)
	if err != nil {
		if errors.Is(err, ErrAllocation) {
			return nil, errors.Wrap(err, "allocate storage")
		}

		return nil, errors.Wrapf(ErrAllocation, "allocate storage: %v", err)
	}

	t.storage = storage
	t.low = storage.Low()
	t.capacity = storage.High() - storage.Low() + 1

	t.logger.Debug("table created", zap.Int("capacity", t.capacity))

	return t, nil
}

// Returns a new empty table for comparable keys, compared with ==.
func NewComparable[K comparable, V any](opts ...Option[K, V]) (*Table[K, V], error) {
	return New(Equal[K], opts...)
}

// IsEmpty reports whether the table holds no entries.
func (t *Table[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	return t.size
}

// Capacity returns the maximum number of entries.
func (t *Table[K, V]) Capacity() int {
	return t.capacity
}

// Insert puts the pair into the table.
// If an equal key is already stored, the old key and value are handed to the
// destructors and replaced in place. Otherwise the pair is appended, which
// fails with ErrCapacityExceeded when every slot is taken.
func (t *Table[K, V]) Insert(key K, value V) error {
	if t.storage == nil {
		return ErrDestroyed
	}

	if idx := t.search(key); idx >= 0 {
		t.destroyEntry(t.storage.Get(idx))
		t.storage.Set(idx, Entry[K, V]{Key: key, Value: value})

		return nil
	}

	if t.size >= t.capacity {
		t.logger.Warn("insert rejected, table is full", zap.Int("capacity", t.capacity))

		return errors.Wrapf(ErrCapacityExceeded, "all %d slots are in use", t.capacity)
	}

	t.storage.Set(t.low+t.size, Entry[K, V]{Key: key, Value: value})
	t.size++

	return nil
}

// Lookup returns the value of the first entry matching the key.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	if idx := t.search(key); idx >= 0 {
		return t.storage.Get(idx).Value, true
	}

	var zero V
	return zero, false
}

// ChooseKey returns the key of an arbitrary entry, currently the first slot.
// Paired with Remove, it can be used to drain the table.
func (t *Table[K, V]) ChooseKey() (K, error) {
	if t.size == 0 {
		var zero K
		return zero, ErrEmptyTable
	}

	return t.storage.Get(t.low).Key, nil
}

// Remove deletes the first entry matching the key and reports whether one was found.
// Only a single entry is removed per call, use RemoveAll to drop every duplicate.
func (t *Table[K, V]) Remove(key K) bool {
	idx := t.search(key)
	if idx < 0 {
		return false
	}

	t.removeAt(idx)

	return true
}

// RemoveAll deletes every entry matching the key and returns how many were removed.
func (t *Table[K, V]) RemoveAll(key K) int {
	removed := 0

	for idx := t.low; idx < t.low+t.size; {
		if !t.equal(t.storage.Get(idx).Key, key) {
			idx++
			continue
		}

		// The last entry lands in idx, so it has to be checked again.
		t.removeAt(idx)
		removed++
	}

	return removed
}

// ForEach calls fn for every entry in the current slot order.
// fn must not modify the table.
func (t *Table[K, V]) ForEach(fn func(key K, value V)) {
	for idx := t.low; idx < t.low+t.size; idx++ {
		e := t.storage.Get(idx)
		fn(e.Key, e.Value)
	}
}

// All returns an iterator over the entries in the current slot order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for idx := t.low; idx < t.low+t.size; idx++ {
			e := t.storage.Get(idx)
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Destroy hands every entry to the destructors and releases the storage.
// Entries are destroyed in the same order repeated ChooseKey and Remove calls
// would visit them: the first slot, then from the last slot backwards.
func (t *Table[K, V]) Destroy() {
	if t.storage == nil {
		return
	}

	destroyed := t.size
	if t.size > 0 {
		t.destroyEntry(t.storage.Get(t.low))

		for idx := t.low + t.size - 1; idx > t.low; idx-- {
			t.destroyEntry(t.storage.Get(idx))
		}
	}

	t.storage.Release()
	t.storage = nil
	t.size = 0

	t.logger.Debug("table destroyed", zap.Int("entries", destroyed))
}

func (t *Table[K, V]) Stats() Stats {
	return Stats{
		Size:      t.size,
		Capacity:  t.capacity,
		Free:      t.capacity - t.size,
		Destroyed: t.storage == nil,
	}
}

// Returns the index of the first entry matching the key, or -1.
func (t *Table[K, V]) search(key K) int {
	for idx := t.low; idx < t.low+t.size; idx++ {
		if t.equal(t.storage.Get(idx).Key, key) {
			return idx
		}
	}

	return -1
}

func (t *Table[K, V]) removeAt(idx int) {
	t.destroyEntry(t.storage.Get(idx))

	last := t.low + t.size - 1
	if idx != last {
		t.storage.Set(idx, t.storage.Get(last))
	}

	t.clearSlot(last)
	t.size--
}

func (t *Table[K, V]) clearSlot(idx int) {
	if c, ok := t.storage.(interface{ Clear(int) }); ok {
		c.Clear(idx)
		return
	}

	t.storage.Set(idx, Entry[K, V]{})
}

func (t *Table[K, V]) destroyEntry(e Entry[K, V]) {
	if t.destroyKey != nil {
		t.destroyKey(e.Key)
	}

	if t.destroyValue != nil {
		t.destroyValue(e.Value)
	}
}
