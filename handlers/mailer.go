package handlers

import "log/slog"

// Mailer delivers password-reset links. The server has no SMTP
// dependency; deployments front this with their own delivery and the
// default implementation just logs the link so local setups can copy
// it from the server output.
type Mailer interface {
	SendPasswordReset(email, resetURL string) error
}

// LogMailer writes reset links to the server log.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(email, resetURL string) error {
	slog.Info("password reset requested", "email", email, "reset_url", resetURL)
	return nil
}
