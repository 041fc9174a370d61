package merge

import (
	"errors"
	"reflect"
	"strings"
)

// Mergeable is implemented by failure accumulators. Combine returns a value
// representing both the receiver and other, receiver first.
type Mergeable[E any] interface {
	Combine(other E) E
}

// Func combines two failure accumulations, left operand first.
type Func[E any] func(a, b E) E

// Concat appends b after a into a fresh slice.
func Concat[S ~[]V, V any](a, b S) S {
	out := make(S, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Of adapts a Mergeable type to Func.
func Of[E Mergeable[E]]() Func[E] {
	return func(a, b E) E {
		return a.Combine(b)
	}
}

// Messages is an ordered list of failure reasons.
type Messages []string

func NewMessages(msgs ...string) Messages {
	return Concat(Messages{}, Messages(msgs))
}

func (m Messages) Combine(other Messages) Messages {
	return Concat(m, other)
}

func (m Messages) Strings() []string {
	return Concat([]string{}, []string(m))
}

func (m Messages) Error() string {
	return strings.Join(m, "; ")
}

// Errors accumulates Go errors in the order they were produced.
type Errors []error

// FromError splits err into its joined parts. A nil (or typed-nil pointer)
// error gives an empty list.
func FromError(err error) Errors {
	if isNil(err) {
		return Errors{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return Concat(Errors{}, Errors(e.Unwrap()))
	}

	return Errors{err}
}

func (e Errors) Combine(other Errors) Errors {
	return Concat(e, other)
}

// Err joins the list back into a single error, nil when empty.
func (e Errors) Err() error {
	return errors.Join(e...)
}

func (e Errors) Error() string {
	if err := e.Err(); err != nil {
		return err.Error()
	}
	return ""
}

func (e Errors) Messages() Messages {
	out := make(Messages, 0, len(e))
	for _, err := range e {
		if err != nil {
			out = append(out, err.Error())
		}
	}
	return out
}

func isNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
