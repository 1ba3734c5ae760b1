package service

import "errors"

// NotFoundError covers both genuinely missing records and ownership failures.
// Records owned by another user are reported as missing so their existence
// never leaks.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ValidationError carries a client-facing message for a malformed or
// rule-violating input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError marks a duplicate unique field.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ForbiddenError marks an action the caller is not allowed to take even
// though the target exists.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

// ErrInvalidCredentials is deliberately generic so login responses cannot be
// used to enumerate registered emails or usernames.
var ErrInvalidCredentials = errors.New("Invalid email or password")
