// Package notification delivers verification codes to users.
package notification

import (
	"context"

	"go.uber.org/zap"

	appidentity "github.com/dukadash/backend/internal/application/identity"
	"github.com/dukadash/backend/internal/domain/identity"
)

// LogCodeSender writes verification codes to the application log
// instead of sending them. It stands in for an email/SMS gateway in
// development and test deployments.
type LogCodeSender struct {
	logger *zap.Logger
}

// NewLogCodeSender creates a LogCodeSender
func NewLogCodeSender(logger *zap.Logger) *LogCodeSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogCodeSender{logger: logger.Named("2fa")}
}

// Send logs the code together with its delivery target
func (s *LogCodeSender) Send(_ context.Context, user *identity.User, method identity.TwoFactorMethod, code string) error {
	target := user.Email
	if method == identity.MethodSMS {
		target = "sms:" + user.Username
	}
	s.logger.Info("verification code issued",
		zap.String("user_id", user.ID.String()),
		zap.String("method", string(method)),
		zap.String("target", target),
		zap.String("code", code),
	)
	return nil
}

var _ appidentity.CodeSender = (*LogCodeSender)(nil)
