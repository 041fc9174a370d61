package registration

import (
	"context"
	"time"

	"github.com/ib-77/vrop/internal/logging"
	"github.com/ib-77/vrop/pkg/rop/chain"
	"github.com/ib-77/vrop/pkg/rop/merge"
)

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Register validates user and returns the report of the attempt. Accepted
// users are logged at info, rejections at warn with every reason.
func (s *Service) Register(ctx context.Context, user UnregisteredUser) Report {
	logger := logging.FromContext(ctx).With(
		logging.Int("user_id", user.ID),
		logging.String("email", user.Email),
	)

	outcome := chain.Start(Validate(user)).
		Ensure(func(u RegisteredUser) {
			logger.Info("user registered", logging.Stringer("ref", u.Ref))
		}).
		OnFailure(func(errs merge.FieldErrors) {
			logger.Warn("user rejected",
				logging.Reasons("reasons", errs.Messages()),
				logging.Any("fields", errs.Fields()))
		}).
		Result()

	return NewReport(outcome, s.now())
}
