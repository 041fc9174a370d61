package solo

import (
	"github.com/ib-77/vrop/pkg/rop"
	"github.com/ib-77/vrop/pkg/rop/merge"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Failure[T](err)
}

// Validate succeeds with input when isValid holds, otherwise fails with err.
func Validate[T, E any](input T, isValid func(in T) bool, err E) rop.Result[T, E] {
	if isValid(input) {
		return rop.Success[T, E](input)
	}
	return rop.Failure[T](err)
}

// Chain sequences a dependent step. onSuccess is not called for a failure.
func Chain[In, Out, E any](input rop.Result[In, E],
	onSuccess func(r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return rop.Failure[Out](input.Err())
}

func Map[In, Out, E any](input rop.Result[In, E],
	onSuccess func(r In) Out) rop.Result[Out, E] {

	return Chain(input, func(r In) rop.Result[Out, E] {
		return rop.Success[Out, E](onSuccess(r))
	})
}

// MapErr rewrites the failure payload, successes pass through.
func MapErr[T, E, F any](input rop.Result[T, E],
	onFailure func(err E) F) rop.Result[T, F] {

	if input.IsSuccess() {
		return rop.Success[T, F](input.Result())
	}
	return rop.Failure[T](onFailure(input.Err()))
}

// Try runs f and turns a non-nil error into a failure.
func Try[T any](f func() (T, error)) rop.Result[T, merge.Errors] {
	out, err := f()
	if err != nil {
		return rop.Failure[T](merge.FromError(err))
	}
	return rop.Success[T, merge.Errors](out)
}

func Tee[T, E any](input rop.Result[T, E], onSuccess func(r T)) rop.Result[T, E] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

func DoubleTee[T, E any](input rop.Result[T, E],
	onSuccess func(r T),
	onFailure func(err E)) rop.Result[T, E] {

	input.Match(onSuccess, onFailure)
	return input
}

// Finally collapses a result to a plain value.
func Finally[In, E, Out any](input rop.Result[In, E],
	onSuccess func(r In) Out,
	onFailure func(err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}
