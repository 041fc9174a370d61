// Package solo contains single-value, synchronous operators over
// rop.Result[T, E]. They form the algebra used to compose validations.
//
// Highlights:
// - Map/Chain: transform or sequence a success, failures pass through untouched
// - Apply: combine a Result holding a function with a Result holding its
//   argument, merging both failures (function side first)
// - Or/And: alternatives and requirements; Or merges both failures, And keeps
//   only the left failure
// - Both/Any/All/Sequence/ValidateAll: n-ary and symmetric helpers
// - Curry2..4/Lift2..4: curried constructors folded through Apply
// - Validate/Try: build results from predicates and (T, error) calls
// - Tee/DoubleTee/Finally: side effects and folding to a plain value
//
// Operators never mutate their operands and never panic on valid input.
package solo
