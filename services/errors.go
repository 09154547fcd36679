package services

import "errors"

// Validation errors are rejected before any I/O; the duplicate error is
// surfaced distinctly so the UI can prompt for a different username.
// Anything else reaching the caller is a storage failure.
var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmptyCart          = errors.New("order is empty")
	ErrEmptyComment       = errors.New("comment is required")
	ErrRatingOutOfRange   = errors.New("rating must be between 1 and 5")
)

// IsValidation reports whether err is an input problem the user can fix,
// as opposed to a storage failure.
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrUsernameRequired),
		errors.Is(err, ErrPasswordTooShort),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrEmptyComment),
		errors.Is(err, ErrRatingOutOfRange):
		return true
	}
	return false
}
