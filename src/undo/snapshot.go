package undo

// Snapshot is one recorded state. A Snapshot that is not Valid stands for
// "no state yet", which is what a History starts with before Initialize.
type Snapshot[T any] struct {
	Value T
	Valid bool
}

// Some wraps a recorded state
func Some[T any](value T) Snapshot[T] {
	return Snapshot[T]{Value: value, Valid: true}
}

// None is the empty snapshot, standing for "no state yet"
func None[T any]() Snapshot[T] {
	return Snapshot[T]{}
}

// Get returns the stored value and whether there is one
func (s Snapshot[T]) Get() (T, bool) {
	return s.Value, s.Valid
}

// OrElse returns the stored value, or fallback for the empty snapshot
func (s Snapshot[T]) OrElse(fallback T) T {
	if !s.Valid {
		return fallback
	}
	return s.Value
}
