package domain

import "errors"

// Sentinel errors shared across services and repositories.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller is not allowed to perform the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned when the request is structurally valid but semantically wrong.
	ErrInvalidInput = errors.New("invalid input")
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// Sentinel errors for enrollment operations.
var (
	ErrAlreadyApplied    = errors.New("already applied as volunteer for this service")
	ErrAlreadyRegistered = errors.New("already registered as participant for this service")
)

// Sentinel errors for the notification pipeline.
var (
	// ErrStoreUnavailable means the reminder window query failed; the whole invocation aborts.
	ErrStoreUnavailable = errors.New("event store unavailable")
	// ErrNoEmailFound means the identity directory has no address for a required recipient.
	ErrNoEmailFound = errors.New("no email found")
	// ErrInvalidTrigger means the trigger discriminant is missing or unrecognized.
	ErrInvalidTrigger = errors.New("invalid event type")
)
