package types

// Optional holds a value that may be absent. The zero Optional is absent.
type Optional[T comparable] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v. The zero value of T is treated
// as absent, so a present Optional[string] is never empty.
func Some[T comparable](v T) Optional[T] {
	var zero T
	if v == zero {
		return Optional[T]{}
	}
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether a value is held
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the value, or fallback when absent
func (o Optional[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// Ptr returns a pointer to a copy of the value, or nil when absent
func (o Optional[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}
