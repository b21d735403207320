package store

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every repository service. Handlers translate
// these into HTTP status codes; anything else is treated as a transport
// failure.
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("caller is not permitted to modify this record")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid login credentials")
)

// ValidationError reports rejected input: empty titles, malformed URLs,
// blank comment text, weak passwords.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
