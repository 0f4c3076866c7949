// Package apperr defines the error taxonomy shared by the service layer.
// Services wrap these sentinels with context via fmt.Errorf("%w: ...") and
// handlers map them to HTTP status codes with errors.Is.
package apperr

import "errors"

var (
	// ErrAuthenticationFailed means bad credentials. The message never
	// reveals whether the username or the password was wrong.
	ErrAuthenticationFailed = errors.New("invalid username or password")

	// ErrForbidden means the caller's role or zone does not permit the
	// requested action on the requested resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a uniqueness violation (HN, CID or username).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput means malformed input, such as a bad date or a
	// missing required identifying field.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOperation means the action is disallowed by the current
	// entity state, e.g. editing a completed appointment or deleting
	// your own account.
	ErrInvalidOperation = errors.New("invalid operation")
)
