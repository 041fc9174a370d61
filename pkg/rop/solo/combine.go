package solo

import (
	"github.com/ib-77/vrop/pkg/rop"
	"github.com/ib-77/vrop/pkg/rop/merge"
)

// Apply feeds the argument into the function held by fn.
//
//	fn success          -> Map(arg, f)
//	fn failure, arg ok  -> fn's failure
//	both failed         -> fn.Err().Combine(arg.Err())
func Apply[T, U any, E merge.Mergeable[E]](fn rop.Result[func(T) U, E],
	arg rop.Result[T, E]) rop.Result[U, E] {

	return ApplyWith(fn, arg, merge.Of[E]())
}

// ApplyWith is Apply with an explicit combine function.
func ApplyWith[T, U, E any](fn rop.Result[func(T) U, E],
	arg rop.Result[T, E], combine merge.Func[E]) rop.Result[U, E] {

	switch {
	case fn.IsSuccess():
		return Map(arg, fn.Result())
	case arg.IsSuccess():
		return rop.Failure[U](fn.Err())
	default:
		return rop.Failure[U](combine(fn.Err(), arg.Err()))
	}
}

// Or holds when at least one side holds. The first success wins; when both
// fail, the failures are merged, input first.
func Or[T any, E merge.Mergeable[E]](input, alternative rop.Result[T, E]) rop.Result[T, E] {
	return OrWith(input, alternative, merge.Of[E]())
}

func OrWith[T, E any](input, alternative rop.Result[T, E], combine merge.Func[E]) rop.Result[T, E] {
	switch {
	case input.IsSuccess():
		return input
	case alternative.IsSuccess():
		return alternative
	default:
		return rop.Failure[T](combine(input.Err(), alternative.Err()))
	}
}

// And requires both sides. A failing input is returned as is and the
// required side's failure is dropped; otherwise required is returned.
// Use Both to merge the two failures instead.
func And[T, E any](input, required rop.Result[T, E]) rop.Result[T, E] {
	if input.IsFailure() {
		return input
	}
	return required
}

// Both requires both sides like And, but merges the failures when both fail.
func Both[T any, E merge.Mergeable[E]](input, required rop.Result[T, E]) rop.Result[T, E] {
	if input.IsFailure() && required.IsFailure() {
		return rop.Failure[T](input.Err().Combine(required.Err()))
	}
	return And(input, required)
}

// Any folds Or from left to right.
func Any[T any, E merge.Mergeable[E]](first rop.Result[T, E], rest ...rop.Result[T, E]) rop.Result[T, E] {
	out := first
	for _, r := range rest {
		out = Or(out, r)
	}
	return out
}

// All folds And from left to right, so the first failure wins.
func All[T, E any](first rop.Result[T, E], rest ...rop.Result[T, E]) rop.Result[T, E] {
	out := first
	for _, r := range rest {
		out = And(out, r)
	}
	return out
}

// Sequence collects every success value in order, or merges every failure
// left to right.
func Sequence[T any, E merge.Mergeable[E]](results ...rop.Result[T, E]) rop.Result[[]T, E] {
	out := rop.Success[[]T, E](make([]T, 0, len(results)))
	for _, r := range results {
		out = Apply(Map(out, appendTo[T]), r)
	}
	return out
}

func appendTo[T any](values []T) func(T) []T {
	return func(v T) []T {
		return append(values, v)
	}
}

// ValidateAll runs every check against input and merges all failures in check
// order. With no checks the input succeeds.
func ValidateAll[T any, E merge.Mergeable[E]](input T,
	checks ...func(in T) rop.Result[T, E]) rop.Result[T, E] {

	out := rop.Success[T, E](input)
	for _, check := range checks {
		out = Both(out, Map(check(input), func(T) T { return input }))
	}
	return out
}
