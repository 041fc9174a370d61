// Package merge defines how failure payloads of rop.Result are combined when
// more than one independent validation fails.
//
// Highlights:
// - Mergeable: constraint for error accumulators, a.Combine(b) keeps a before b
// - Messages: canonical accumulator, an ordered list of human-readable reasons
// - Errors: accumulator of Go errors, joins/splits with errors.Join
// - FieldErrors: per-field failures with translation keys
// - Func/Concat: combine functions for types that cannot carry methods
//
// Combine never mutates or aliases its operands; it always returns a new value.
package merge
