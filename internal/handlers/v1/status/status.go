// Package status exposes the unauthenticated health check.
package status

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthResponse is the response body for the health check.
type HealthResponse struct {
	Status  string `json:"status" doc:"Always healthy when the server responds"`
	Message string `json:"message" doc:"Human readable banner"`
}

// HealthOutput is the response for the health check.
type HealthOutput struct {
	Body HealthResponse
}

// Handler handles GET /health.
type Handler struct{}

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Register registers the endpoint with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports whether the API is up.",
		Tags:        []string{"Status"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: HealthResponse{
			Status:  "healthy",
			Message: "Personal Finance Manager API is running",
		},
	}, nil
}
