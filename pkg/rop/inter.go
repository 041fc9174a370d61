package rop

// ResultProvider exposes the success value
type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
}

// Outcome is the read-only view of a Result used by consumers that only
// inspect, never compose
type Outcome[T, E any] interface {
	ResultProvider[T]
	// Err returns the failure payload if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

var _ Outcome[int, []string] = Result[int, []string]{}
