package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidDateRange    = errors.New("check-out must be after check-in")
	ErrIncompleteSelection = errors.New("select check-in/check-out dates and a room")
	ErrUnauthenticated     = errors.New("login required")
	ErrInvalidCredentials  = errors.New("invalid login credentials")
	ErrDuplicateValue      = errors.New("value already present")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrForbidden           = errors.New("forbidden")
	ErrValidation          = errors.New("validation failed")
	ErrNoPendingDelete     = errors.New("no deletion pending")
	ErrLoginSuperseded     = errors.New("login superseded by a newer attempt")
)
