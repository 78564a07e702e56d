package errs

import "errors"

// Error taxonomy shared by commands and queries. Handlers map these onto HTTP
// statuses; lower layers attach them with Mark.
var (
	ErrNotFound          = errors.New("not found")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMalformedInput    = errors.New("malformed input")
	ErrConflict          = errors.New("conflict")
	ErrUnauthorized      = errors.New("unauthorized")
)
