package arraytable

import "go.uber.org/zap"

// DefaultCapacity is the number of slots a table gets unless WithCapacity is used.
const DefaultCapacity = 80000

// Allocator creates the backing storage for the index range [low, high].
type Allocator[K, V any] func(low, high int) (Storage[Entry[K, V]], error)

type Option[K, V any] func(t *Table[K, V])

// Override the default capacity.
func WithCapacity[K, V any](capacity int) Option[K, V] {
	return func(t *Table[K, V]) {
		t.capacity = capacity
	}
}

// Called on a key when it's overwritten, removed or the table is destroyed.
func WithKeyDestructor[K, V any](f func(K)) Option[K, V] {
	return func(t *Table[K, V]) {
		t.destroyKey = f
	}
}

// Called on a value when it's overwritten, removed or the table is destroyed.
func WithValueDestructor[K, V any](f func(V)) Option[K, V] {
	return func(t *Table[K, V]) {
		t.destroyValue = f
	}
}

func WithLogger[K, V any](logger *zap.Logger) Option[K, V] {
	return func(t *Table[K, V]) {
		t.logger = logger
	}
}

// Override the backing storage. The default is an Array.
func WithAllocator[K, V any](alloc Allocator[K, V]) Option[K, V] {
	return func(t *Table[K, V]) {
		t.alloc = alloc
	}
}

func allocateArray[K, V any](low, high int) (Storage[Entry[K, V]], error) {
	a, err := NewArray[Entry[K, V]](low, high)
	if err != nil {
		return nil, err
	}

	return a, nil
}
