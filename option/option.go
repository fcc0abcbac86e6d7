package option

// Option holds a value that a track file may or may not carry, e.g. heart rate.
type Option[T any] struct {
	value  T
	isSome bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

// When returns Some(value) if ok holds and None otherwise.
func When[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

func (x *Option[T]) IsSome() bool {
	return x.isSome
}

func (x *Option[T]) IsNone() bool {
	return !x.isSome
}

func (x *Option[T]) Get() T {
	if !x.isSome {
		panic("option is none")
	}
	return x.value
}

// Value returns the contained value in the comma-ok form.
func (x *Option[T]) Value() (T, bool) {
	return x.value, x.isSome
}
