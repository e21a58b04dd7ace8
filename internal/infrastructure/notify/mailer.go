// Package notify holds outbound notification adapters. The log mailer is
// the default: it records what would have been sent instead of delivering
// mail, which is enough for local and staging environments.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer satisfies ports.Notifier by logging the reset token instead of
// sending an email.
type LogMailer struct {
	logger zerolog.Logger
}

func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger.With().Str("component", "notify").Logger()}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	m.logger.Info().
		Str("email", email).
		Str("token", token).
		Msg("password reset requested")
	return nil
}
