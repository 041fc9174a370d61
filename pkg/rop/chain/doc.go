// Package chain provides a fluent wrapper around rop.Result[T, E]
// for building synchronous validation chains using solo primitives.
//
// Go has no user-defined infix operators, so the chain stands in for them:
// every step is a left-associative call, which makes precedence explicit.
//
// Key operations:
// - Start/FromValue/FromFailure: begin a chain
// - Or/And/Both: same-typed alternatives and requirements
// - Then: switch to a new Result[U, E] via a function
// - Map: transform the successful value (T -> U)
// - Apply: feed a validated argument into a curried constructor
// - Ensure/OnFailure: side effects without changing the result
// - Finally: collapse the chain into a final value
package chain
