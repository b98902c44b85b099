package util

// Optional is a generic container for a value that may be absent.
type Optional[T any] struct {
	// Value holds the contained value, only meaningful if Present is true.
	Value T
	// Present indicates if a value is contained.
	Present bool
}

// Some returns an Optional holding the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{Value: value, Present: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the contained value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// OrElse returns the contained value if present, otherwise defaultValue.
func (o Optional[T]) OrElse(defaultValue T) T {
	if o.Present {
		return o.Value
	}
	return defaultValue
}

func (o Optional[T]) IsPresent() bool {
	return o.Present
}

// Set stores value and marks it as present.
func (o *Optional[T]) Set(value T) {
	o.Value = value
	o.Present = true
}

// Clear removes the contained value.
func (o *Optional[T]) Clear() {
	var zero T
	o.Value = zero
	o.Present = false
}
