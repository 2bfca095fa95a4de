package opt

// Result wraps a value-or-error pair.
//
// Use [Ok] / [Err] to instantiate, or [Wrap] to capture a (value, error) return directly:
//
//	r := opt.Wrap(strconv.Atoi(s))
type Result[T any] struct {
	v   T
	err error
}

func Ok[T any](v T) Result[T] {
	return Result[T]{v: v}
}

func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

func Wrap[T any](v T, err error) Result[T] {
	return Result[T]{v: v, err: err}
}

func (r Result[T]) IsErr() bool {
	return r.err != nil
}

func (r Result[T]) Err() error {
	return r.err
}

// Get the value, the zero value is returned when the Result holds an error.
func (r Result[T]) Get() T {
	return r.v
}

func (r Result[T]) MayGet() (T, error) {
	return r.v, r.err
}

// Get the value or fall back to def when the Result holds an error.
func (r Result[T]) OrElse(def T) T {
	if r.err != nil {
		return def
	}
	return r.v
}

// Get the value, panic when the Result holds an error.
func (r Result[T]) MustGet() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.v
}

// Map transforms the wrapped value, errors pass through untouched.
func Map[T any, V any](r Result[T], f func(T) V) Result[V] {
	if r.err != nil {
		return Err[V](r.err)
	}
	return Ok(f(r.v))
}
