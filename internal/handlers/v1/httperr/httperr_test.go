package httperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-server/internal/service"
)

func TestFromService(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "validation",
			err:     &service.ValidationError{Message: "Amount must be positive"},
			status:  http.StatusBadRequest,
			message: "Amount must be positive",
		},
		{
			name:    "not found",
			err:     &service.NotFoundError{Resource: "Budget"},
			status:  http.StatusNotFound,
			message: "Budget not found",
		},
		{
			name:    "conflict",
			err:     &service.ConflictError{Message: "Username already exists"},
			status:  http.StatusConflict,
			message: "Username already exists",
		},
		{
			name:    "forbidden",
			err:     &service.ForbiddenError{Message: "Admin access required"},
			status:  http.StatusForbidden,
			message: "Admin access required",
		},
		{
			name:    "invalid credentials",
			err:     service.ErrInvalidCredentials,
			status:  http.StatusUnauthorized,
			message: service.ErrInvalidCredentials.Error(),
		},
		{
			name:    "unknown error is masked",
			err:     errors.New("pq: connection refused"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := FromService(tt.err)

			var httpErr *Error
			assert.ErrorAs(t, mapped, &httpErr)
			assert.Equal(t, tt.status, httpErr.GetStatus())
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestNewError_DowngradesUnprocessableEntity(t *testing.T) {
	err := NewError(http.StatusUnprocessableEntity, "validation failed")
	assert.Equal(t, http.StatusBadRequest, err.GetStatus())
}

func TestNewError_KeepsOtherStatuses(t *testing.T) {
	err := NewError(http.StatusNotFound, "gone")
	assert.Equal(t, http.StatusNotFound, err.GetStatus())
}
