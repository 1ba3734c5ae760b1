// Package httperr is the client-facing error model. Every error body is
// {"error": message} with a conventional status code.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/service"
)

// Error is the serialized error body.
type Error struct {
	status  int
	Message string `json:"error"`
}

func New(status int, message string) *Error {
	return &Error{status: status, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

// NewError replaces huma's default error constructor so framework-generated
// errors (validation, parsing, not found) share the same body shape. Huma's
// unprocessable-entity validation failures are reported as plain bad
// requests.
func NewError(status int, message string, _ ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}
	return New(status, message)
}

// FromService maps service-layer errors onto HTTP statuses. Anything
// unrecognized becomes a generic 500 so internal details never reach the
// client.
func FromService(err error) error {
	var (
		notFound   *service.NotFoundError
		validation *service.ValidationError
		conflict   *service.ConflictError
		forbidden  *service.ForbiddenError
	)
	switch {
	case errors.As(err, &validation):
		return New(http.StatusBadRequest, validation.Message)
	case errors.As(err, &notFound):
		return New(http.StatusNotFound, notFound.Error())
	case errors.As(err, &conflict):
		return New(http.StatusConflict, conflict.Message)
	case errors.As(err, &forbidden):
		return New(http.StatusForbidden, forbidden.Message)
	case errors.Is(err, service.ErrInvalidCredentials):
		return New(http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	}
	return New(http.StatusInternalServerError, "Internal server error")
}
