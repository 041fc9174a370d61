package solo

import (
	"github.com/ib-77/vrop/pkg/rop"
	"github.com/ib-77/vrop/pkg/rop/merge"
)

func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return f(a, b)
		}
	}
}

func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return func(b B) func(C) R {
			return func(c C) R {
				return f(a, b, c)
			}
		}
	}
}

func Curry4[A, B, C, D, R any](f func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R {
					return f(a, b, c, d)
				}
			}
		}
	}
}

// Lift2 is Success(Curry2(f)) applied to a then b. ctor runs only when every
// argument succeeded; otherwise all failures are merged in argument order.
func Lift2[A, B, R any, E merge.Mergeable[E]](ctor func(A, B) R,
	a rop.Result[A, E], b rop.Result[B, E]) rop.Result[R, E] {

	return Apply(Apply(rop.Success[func(A) func(B) R, E](Curry2(ctor)), a), b)
}

func Lift3[A, B, C, R any, E merge.Mergeable[E]](ctor func(A, B, C) R,
	a rop.Result[A, E], b rop.Result[B, E], c rop.Result[C, E]) rop.Result[R, E] {

	return Apply(Apply(Apply(rop.Success[func(A) func(B) func(C) R, E](Curry3(ctor)), a), b), c)
}

func Lift4[A, B, C, D, R any, E merge.Mergeable[E]](ctor func(A, B, C, D) R,
	a rop.Result[A, E], b rop.Result[B, E], c rop.Result[C, E], d rop.Result[D, E]) rop.Result[R, E] {

	return Apply(Apply(Apply(Apply(
		rop.Success[func(A) func(B) func(C) func(D) R, E](Curry4(ctor)), a), b), c), d)
}
