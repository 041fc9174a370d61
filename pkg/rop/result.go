package rop

import "fmt"

// Result is either a success holding a value of T or a failure holding an
// accumulation of failure information E. The zero value is Failure(zero E).
type Result[T, E any] struct {
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
	}
}

// Result returns the success value, or the zero T for a failure.
func (r Result[T, E]) Result() T {
	return r.result
}

// Err returns the failure payload, or the zero E for a success.
func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Get unpacks the result; ok reports success.
func (r Result[T, E]) Get() (value T, err E, ok bool) {
	return r.result, r.err, r.isSuccess
}

// Match calls exactly one of the handlers. Nil handlers are skipped.
func (r Result[T, E]) Match(onSuccess func(T), onFailure func(E)) {
	if r.isSuccess {
		if onSuccess != nil {
			onSuccess(r.result)
		}
		return
	}
	if onFailure != nil {
		onFailure(r.err)
	}
}

func (r Result[T, E]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}
