package opt

import "github.com/igen-org/igen-go/util/rfutil"

// Optional value.
//
// Use [New] or [Nil] to instantiate.
type Opt[T any] struct {
	v     T
	isNil bool
}

func (o *Opt[T]) IsNil() bool {
	return o.isNil
}

func (o *Opt[T]) Get() T {
	return o.v
}

func (o *Opt[T]) MayGet() (T, bool) {
	return o.v, !o.isNil
}

// Get the value or fall back to def when absent.
func (o *Opt[T]) OrElse(def T) T {
	if o.isNil {
		return def
	}
	return o.v
}

func Nil[T any]() Opt[T] {
	return Opt[T]{
		isNil: true,
	}
}

func New[T any](v T) Opt[T] {
	return Opt[T]{
		isNil: rfutil.IsAnyNil(v),
		v:     v,
	}
}
