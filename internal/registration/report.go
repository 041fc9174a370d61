package registration

import (
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/vrop/pkg/rop"
	"github.com/ib-77/vrop/pkg/rop/merge"
)

// Report is a serialisable snapshot of one registration attempt.
type Report struct {
	ID        uuid.UUID          `yaml:"id"`
	CheckedAt time.Time          `yaml:"checked_at"`
	Accepted  bool               `yaml:"accepted"`
	User      *RegisteredUser    `yaml:"user,omitempty"`
	Errors    []merge.FieldError `yaml:"errors,omitempty"`
}

func NewReport(outcome rop.Outcome[RegisteredUser, merge.FieldErrors], now time.Time) Report {
	report := Report{
		ID:        uuid.New(),
		CheckedAt: now.UTC(),
		Accepted:  outcome.IsSuccess(),
	}

	if outcome.IsSuccess() {
		user := outcome.Result()
		report.User = &user
	} else {
		report.Errors = outcome.Err()
	}

	return report
}

// Reasons lists the failure messages in validation order.
func (r Report) Reasons() merge.Messages {
	return merge.FieldErrors(r.Errors).Messages()
}

func (r Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return registrationErr.Wrap(err)
	}
	return registrationErr.Wrap(enc.Close())
}
