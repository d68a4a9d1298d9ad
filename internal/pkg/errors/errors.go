package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources. Looking up an
	// assessment owned by another user also resolves to ErrNotFound so that
	// ownership failures are indistinguishable from missing rows.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoAnswers is returned by quiz submission when no valid answer could
	// be resolved. Nothing is persisted in that case.
	ErrNoAnswers = errors.New("no answers provided")
)
