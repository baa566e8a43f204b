// Package options implements the functional-options pattern used by every
// configurable type in symts.
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Validator is implemented by targets that check their final state once all
// options have been applied.
type Validator interface {
	Validate() error
}

// Func is an Option backed by a plain function.
type Func[T any] struct {
	fn func(T) error
}

// apply is a no-op on a nil *Func or a zero Func, so a typed nil stored in an
// Option behaves like an untyped nil.
func (f *Func[T]) apply(target T) error {
	if f == nil || f.fn == nil {
		return nil
	}

	return f.fn(target)
}

// New wraps fn as an Option.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError wraps an infallible setter as an Option.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error. Nil
// options, typed or not, are skipped.
//
// When target implements Validator, Validate runs after the last option so
// that options may be given in any order.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	if v, ok := any(target).(Validator); ok {
		return v.Validate()
	}

	return nil
}
