package errs

import "errors"

// Domain failures surfaced to callers. The HTTP layer maps each sentinel to
// a status code and a short reason string; everything else becomes a 500.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrAssignmentNotFound = errors.New("task not assigned to this user")
	ErrTooManyRequests    = errors.New("too many requests")
)
