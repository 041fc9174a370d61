package chain

import (
	"github.com/ib-77/vrop/pkg/rop"
	"github.com/ib-77/vrop/pkg/rop/merge"
	"github.com/ib-77/vrop/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T any, E merge.Mergeable[E]] struct {
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T any, E merge.Mergeable[E]](result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any, E merge.Mergeable[E]](value T) *Chain[T, E] {
	return Start(rop.Success[T, E](value))
}

// FromFailure creates a new chain from a failure payload
func FromFailure[T any, E merge.Mergeable[E]](err E) *Chain[T, E] {
	return Start(rop.Failure[T](err))
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

func (c *Chain[T, E]) Or(alternative rop.Result[T, E]) *Chain[T, E] {
	return Start(solo.Or(c.result, alternative))
}

// And keeps the chain's own failure and ignores required's in that case.
func (c *Chain[T, E]) And(required rop.Result[T, E]) *Chain[T, E] {
	return Start(solo.And(c.result, required))
}

func (c *Chain[T, E]) Both(required rop.Result[T, E]) *Chain[T, E] {
	return Start(solo.Both(c.result, required))
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(T)) *Chain[T, E] {
	return Start(solo.Tee(c.result, onSuccess))
}

// OnFailure performs a side effect on failure without changing the result
func (c *Chain[T, E]) OnFailure(onFailure func(E)) *Chain[T, E] {
	return Start(solo.DoubleTee(c.result, nil, onFailure))
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U any, E merge.Mergeable[E]](c *Chain[T, E], onSuccess func(T) rop.Result[U, E]) *Chain[U, E] {
	return Start(solo.Chain(c.result, onSuccess))
}

// Map chains a pure transformation function
func Map[T, U any, E merge.Mergeable[E]](c *Chain[T, E], onSuccess func(T) U) *Chain[U, E] {
	return Start(solo.Map(c.result, onSuccess))
}

// Apply feeds arg into the function held by fn, merging both failures with
// fn's first.
func Apply[T, U any, E merge.Mergeable[E]](fn *Chain[func(T) U, E], arg rop.Result[T, E]) *Chain[U, E] {
	return Start(solo.Apply(fn.result, arg))
}

// Finally collapses the chain into a final value
func Finally[T, U any, E merge.Mergeable[E]](c *Chain[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
