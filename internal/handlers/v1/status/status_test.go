package status

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
)

func TestHTTP_HealthCheck(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler().Register(api)

	resp := api.Get("/health")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body HealthResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "Personal Finance Manager API is running", body.Message)
}
