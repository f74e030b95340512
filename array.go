package arraytable

import (
	"fmt"

	"github.com/go-faster/errors"
)

// MaxArraySize limits a single array allocation to 1<<30 slots.
const MaxArraySize = 1 << 30

// Storage is a fixed-size indexable sequence the table keeps its entries in.
// Indices run from Low to High inclusive. Implementations must never reorder
// or resize the stored elements on their own.
type Storage[E any] interface {
	Low() int
	High() int
	Get(index int) E
	Set(index int, value E)
	Release()
}

// Array is a one-dimensional array with caller-chosen bounds.
// Every access is bounds checked; an out of range index panics.
type Array[E any] struct {
	low   int
	high  int
	data  []E
	isSet []bool
}

var _ Storage[int] = (*Array[int])(nil)

// Returns a new array covering indices [low, high].
func NewArray[E any](low, high int) (*Array[E], error) {
	if high < low {
		return nil, errors.Wrapf(ErrAllocation, "invalid bounds [%d, %d]", low, high)
	}

	size := high - low + 1
	if size > MaxArraySize {
		return nil, errors.Wrapf(ErrAllocation, "%d slots requested, max is %d", size, MaxArraySize)
	}

	return &Array[E]{
		low:   low,
		high:  high,
		data:  make([]E, size),
		isSet: make([]bool, size),
	}, nil
}

func (a *Array[E]) Low() int {
	return a.low
}

func (a *Array[E]) High() int {
	return a.high
}

// Len returns the number of slots, set or not.
func (a *Array[E]) Len() int {
	return len(a.data)
}

func (a *Array[E]) Get(index int) E {
	return a.data[a.offset(index)]
}

func (a *Array[E]) Set(index int, value E) {
	i := a.offset(index)
	a.data[i] = value
	a.isSet[i] = true
}

// Clear resets the slot to the zero value, dropping any references it held.
func (a *Array[E]) Clear(index int) {
	i := a.offset(index)

	var zero E
	a.data[i] = zero
	a.isSet[i] = false
}

// HasValue reports whether the slot has been set since allocation or the last Clear.
func (a *Array[E]) HasValue(index int) bool {
	return a.isSet[a.offset(index)]
}

// Release drops the underlying memory. The array is unusable afterwards.
func (a *Array[E]) Release() {
	a.data = nil
	a.isSet = nil
}

func (a *Array[E]) offset(index int) int {
	if a.data == nil {
		panic("arraytable: access to a released array")
	}

	if index < a.low || index > a.high {
		panic(fmt.Sprintf("arraytable: index %d out of range [%d, %d]", index, a.low, a.high))
	}

	return index - a.low
}
