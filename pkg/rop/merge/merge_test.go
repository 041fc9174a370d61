package merge_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/vrop/pkg/rop/merge"
)

func TestMessages_Combine(t *testing.T) {
	t.Parallel()

	t.Run("keeps left entries before right entries", func(t *testing.T) {
		a := merge.NewMessages("a", "b")
		b := merge.NewMessages("c")
		assert.Equal(t, merge.Messages{"a", "b", "c"}, a.Combine(b))
	})

	t.Run("does not alias operands", func(t *testing.T) {
		a := make(merge.Messages, 1, 10)
		a[0] = "a"
		first := a.Combine(merge.Messages{"b"})
		second := a.Combine(merge.Messages{"c"})

		assert.Equal(t, merge.Messages{"a", "b"}, first)
		assert.Equal(t, merge.Messages{"a", "c"}, second)
		assert.Equal(t, merge.Messages{"a"}, a)
	})

	t.Run("empty is identity", func(t *testing.T) {
		a := merge.NewMessages("x")
		assert.Equal(t, a, a.Combine(merge.Messages{}))
		assert.Equal(t, a, merge.Messages{}.Combine(a))
	})

	t.Run("is associative", func(t *testing.T) {
		a, b, c := merge.NewMessages("a"), merge.NewMessages("b"), merge.NewMessages("c")
		assert.Equal(t, a.Combine(b).Combine(c), a.Combine(b.Combine(c)))
	})

	t.Run("renders reasons", func(t *testing.T) {
		assert.Equal(t, "a; b", merge.NewMessages("a", "b").Error())
		assert.Equal(t, []string{"a"}, merge.NewMessages("a").Strings())
	})
}

func TestFuncAndConcat(t *testing.T) {
	t.Parallel()

	var f merge.Func[[]string] = merge.Concat[[]string]
	assert.Equal(t, []string{"x", "y"}, f([]string{"x"}, []string{"y"}))

	viaMethod := merge.Of[merge.Messages]()
	assert.Equal(t, merge.Messages{"x", "y"}, viaMethod(merge.Messages{"x"}, merge.Messages{"y"}))
}

func TestErrors(t *testing.T) {
	t.Parallel()

	errA := errors.New("a")
	errB := errors.New("b")

	t.Run("from nil", func(t *testing.T) {
		assert.Empty(t, merge.FromError(nil))
		assert.NoError(t, merge.FromError(nil).Err())
		assert.Equal(t, "", merge.Errors{}.Error())
	})

	t.Run("from typed nil pointer", func(t *testing.T) {
		var p *fsErr
		assert.Empty(t, merge.FromError(p))
	})

	t.Run("splits joined errors", func(t *testing.T) {
		errs := merge.FromError(errors.Join(errA, errB))
		require.Len(t, errs, 2)
		assert.Same(t, errA, errs[0])
		assert.Same(t, errB, errs[1])
	})

	t.Run("combine then join keeps identity", func(t *testing.T) {
		joined := merge.Errors{errA}.Combine(merge.Errors{errB}).Err()
		assert.ErrorIs(t, joined, errA)
		assert.ErrorIs(t, joined, errB)
		assert.Equal(t, merge.Messages{"a", "b"}, merge.FromError(joined).Messages())
	})

	t.Run("single wrapped error stays whole", func(t *testing.T) {
		wrapped := fmt.Errorf("ctx: %w", errA)
		errs := merge.FromError(wrapped)
		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], errA)
	})
}

type fsErr struct{}

func (*fsErr) Error() string { return "fs" }

func TestFieldErrors(t *testing.T) {
	t.Parallel()

	errs := merge.Field("email", "invalid email", "validation.email").
		Combine(merge.Field("age", "too young", "validation.min")).
		Combine(merge.Field("email", "not gmail", "validation.gmail"))

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("id"))
	assert.Equal(t, []string{"invalid email", "not gmail"}, errs.Get("email"))
	assert.Equal(t, []string{"email", "age"}, errs.Fields())
	assert.Equal(t, merge.Messages{"invalid email", "too young", "not gmail"}, errs.Messages())
	assert.Equal(t, "validation failed: email: invalid email; age: too young; email: not gmail", errs.Error())
	assert.Equal(t, "validation failed", merge.FieldErrors{}.Error())
	assert.Equal(t, "email", errs[0].TranslationValues["field"])
}
