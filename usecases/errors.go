package usecases

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("user with that email already exists")
	ErrCategoryTaken      = errors.New("category with that name already exists")
	ErrMissingCredentials = errors.New("please provide an email and password")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks input the caller can fix (missing or malformed
// fields), as opposed to conflicts and internal failures.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a field-level validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
