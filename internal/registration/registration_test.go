package registration

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/vrop/internal/logging"
	"github.com/ib-77/vrop/pkg/rop/merge"
)

func TestCreate_EveryFieldFails(t *testing.T) {
	t.Parallel()

	out := Create(UnregisteredUser{ID: 0, Email: "test@test.com", Age: 7})

	require.True(t, out.IsFailure())
	assert.Equal(t, merge.Messages{
		"invalid id",
		"invalid gmail address",
		"invalid millennial",
		"invalid gen x",
	}, out.Err())
}

func TestCreate_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user UnregisteredUser
	}{
		{"millennial", UnregisteredUser{ID: 1, Email: "ann@gmail.com", Age: 18}},
		{"millennial upper bound", UnregisteredUser{ID: 2, Email: "bob@gmail.com", Age: 34}},
		{"gen x", UnregisteredUser{ID: 3, Email: "cy@gmail.com", Age: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Create(tt.user)
			require.True(t, out.IsSuccess(), "unexpected failure: %v", out.Err())

			u := out.Result()
			assert.Equal(t, tt.user.ID, u.ID)
			assert.Equal(t, tt.user.Email, u.Email)
			assert.Equal(t, tt.user.Age, u.Age)
			assert.NotEqual(t, uuid.Nil, u.Ref)
		})
	}
}

func TestValidate_FieldDetails(t *testing.T) {
	t.Parallel()

	t.Run("missing @ stops at the first email check", func(t *testing.T) {
		out := Validate(UnregisteredUser{ID: 5, Email: "nobody", Age: 40})
		require.True(t, out.IsFailure())
		assert.Equal(t, merge.Messages{MsgInvalidEmail}, out.Err().Messages())
		assert.Equal(t, []string{FieldEmail}, out.Err().Fields())
	})

	t.Run("age fails both ranges", func(t *testing.T) {
		out := Validate(UnregisteredUser{ID: 5, Email: "x@gmail.com", Age: 51})
		require.True(t, out.IsFailure())
		assert.Equal(t, []string{MsgInvalidMillennial, MsgInvalidGenX}, out.Err().Get(FieldAge))
		assert.False(t, out.Err().Has(FieldID))
		assert.Equal(t, 35, out.Err()[1].TranslationValues["min"])
	})
}

func TestValidators(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidID(1).IsSuccess())
	assert.True(t, ValidID(-4).IsFailure())
	assert.True(t, ValidEmail("a@b").IsSuccess())
	assert.True(t, ValidEmail("ab").IsFailure())
	assert.True(t, ValidGmailEmail("a@gmail.com").IsSuccess())
	assert.True(t, ValidGmailEmail("a@test.com").IsFailure())
	assert.True(t, ValidMillennial(17).IsFailure())
	assert.True(t, ValidMillennial(18).IsSuccess())
	assert.True(t, ValidMillennial(35).IsFailure())
	assert.True(t, ValidGenX(35).IsSuccess())
	assert.True(t, ValidGenX(51).IsFailure())
}

func TestDecodeUser(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		u, err := DecodeUser(strings.NewReader("id: 3\nemail: a@gmail.com\nage: 20\n"))
		require.NoError(t, err)
		assert.Equal(t, UnregisteredUser{ID: 3, Email: "a@gmail.com", Age: 20}, u)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := DecodeUser(strings.NewReader("id: 3\nname: ann\n"))
		require.Error(t, err)
		assert.True(t, registrationErr.Has(err))
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := DecodeUser(strings.NewReader(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty input")
	})
}

func TestReport_Encode(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	report := NewReport(Validate(UnregisteredUser{ID: 0, Email: "test@test.com", Age: 7}), now)

	assert.False(t, report.Accepted)
	assert.Nil(t, report.User)
	assert.Equal(t, merge.Messages{MsgInvalidID, MsgInvalidGmail, MsgInvalidMillennial, MsgInvalidGenX}, report.Reasons())

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, false, decoded["accepted"])
	assert.Equal(t, report.ID.String(), decoded["id"])
	assert.Len(t, decoded["errors"], 4)
	assert.NotContains(t, decoded, "user")
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logging.Wrap(zap.New(core)).WithContext(context.Background())

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := &Service{now: func() time.Time { return fixed }}

	accepted := svc.Register(ctx, UnregisteredUser{ID: 9, Email: "z@gmail.com", Age: 30})
	require.True(t, accepted.Accepted)
	require.NotNil(t, accepted.User)
	assert.Equal(t, fixed, accepted.CheckedAt)

	rejected := svc.Register(ctx, UnregisteredUser{ID: 0, Email: "test@test.com", Age: 7})
	require.False(t, rejected.Accepted)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "user registered", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, accepted.User.Ref.String(), entries[0].ContextMap()["ref"])

	assert.Equal(t, "user rejected", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, []interface{}{
		"invalid id", "invalid gmail address", "invalid millennial", "invalid gen x",
	}, entries[1].ContextMap()["reasons"])
	assert.Equal(t, int64(0), entries[1].ContextMap()["user_id"])
}
