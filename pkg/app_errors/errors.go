package apperrors

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrProposalNotFound = errors.New("proposal not found")
	ErrClubNotFound     = errors.New("club not found")

	ErrAuthRequired = errors.New("authentication required")

	// Validation errors. ErrMissingField and ErrFieldIndex are wrapped with
	// the offending field name / index when raised.
	ErrEmptyForm          = errors.New("empty form")
	ErrMissingField       = errors.New("missing required field")
	ErrFieldIndex         = errors.New("field index out of range")
	ErrInconsistentMethod = errors.New("inconsistent method")
	ErrDuplicateFieldName = errors.New("duplicate field name")
	ErrInvalidInput       = errors.New("invalid input")

	ErrInvalidStatusTransition = errors.New("invalid proposal status transition")
	ErrExternalRegistration    = errors.New("registration is handled externally")

	ErrInternalServerError = errors.New("internal server error")
)
