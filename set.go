package arraytable

// Set is a Table without values, for callers that only track keys.
// It shares the table's layout, so membership checks are linear too.
type Set[K any] struct {
	t *Table[K, struct{}]
}

// Returns a new set, destroyKey may be nil.
func NewSet[K any](equal EqualFunc[K], capacity int, destroyKey func(K)) (*Set[K], error) {
	t, err := New(equal,
		WithCapacity[K, struct{}](capacity),
		WithKeyDestructor[K, struct{}](destroyKey),
	)
	if err != nil {
		return nil, err
	}

	return &Set[K]{t: t}, nil
}

// Checks whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	_, ok := s.t.Lookup(key)
	return ok
}

// Puts a key in the set. An equal key already in the set is replaced.
func (s *Set[K]) Put(key K) error {
	return s.t.Insert(key, struct{}{})
}

func (s *Set[K]) Delete(key K) bool {
	return s.t.Remove(key)
}

func (s *Set[K]) Len() int {
	return s.t.Len()
}

func (s *Set[K]) Destroy() {
	s.t.Destroy()
}
