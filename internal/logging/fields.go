package logging

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Bool[S ~string](s S, v bool) Field {
	return zap.Bool(string(s), v)
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

// Reasons logs an ordered list of failure reasons.
func Reasons[S ~string, V ~[]string](s S, reasons V) Field {
	return zap.Strings(string(s), []string(reasons))
}

func Stringer[S ~string](s S, v interface{ String() string }) Field {
	return zap.Stringer(string(s), v)
}
