package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ListLogsInput is the Huma input for the audit log listing.
type ListLogsInput struct {
	Page    int    `query:"page" doc:"Page number, starting at 1"`
	PerPage int    `query:"per_page" doc:"Page size, defaults to 50"`
	Action  string `query:"action" doc:"Restrict to one action"`
}

// Log is one serialized audit entry.
type Log struct {
	ID            int64   `json:"id" doc:"Entry id"`
	AdminID       int64   `json:"admin_id" doc:"Acting admin's user id"`
	AdminUsername *string `json:"admin_username" doc:"Acting admin's username, null if deleted"`
	Action        string  `json:"action" doc:"Recorded action"`
	TargetType    *string `json:"target_type" doc:"Kind of record acted on"`
	TargetID      *int64  `json:"target_id" doc:"Id of the record acted on"`
	Details       *string `json:"details" doc:"Free text details"`
	IPAddress     string  `json:"ip_address" doc:"Source address"`
	CreatedAt     string  `json:"created_at" doc:"Entry timestamp"`
}

// ListLogsResponse is the response body for the audit log listing.
type ListLogsResponse struct {
	Logs        []Log `json:"logs"`
	Total       int64 `json:"total" doc:"Total matching entries"`
	Pages       int64 `json:"pages" doc:"Total pages at this page size"`
	CurrentPage int   `json:"current_page" doc:"Requested page number"`
}

// ListLogsOutput is the response for the audit log listing.
type ListLogsOutput struct {
	Body ListLogsResponse
}

// logLister is the interface for the audit log listing.
type logLister interface {
	adminGate
	ListLogs(ctx context.Context, filter *sqlconfig.AdminLogFilter) ([]*sqlconfig.AdminLog, int64, error)
}

// ListLogsHandler handles GET /api/admin/logs.
type ListLogsHandler struct {
	AdminService logLister
}

// NewListLogsHandler creates a new ListLogsHandler.
func NewListLogsHandler(svc logLister) *ListLogsHandler {
	return &ListLogsHandler{AdminService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListLogsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-list-logs",
		Method:      http.MethodGet,
		Path:        "/api/admin/logs",
		Summary:     "List audit log entries",
		Description: "Pages through the append-only audit log, newest first.",
		Tags:        []string{"Admin"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *ListLogsHandler) handle(ctx context.Context, input *ListLogsInput) (*ListLogsOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.AdminService.RequireAdmin(ctx, userID); err != nil {
		return nil, httperr.FromService(err)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultLogsPerPage
	}

	entries, total, err := h.AdminService.ListLogs(ctx, &sqlconfig.AdminLogFilter{
		Action: input.Action,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	logs := make([]Log, len(entries))
	for i, entry := range entries {
		logs[i] = Log{
			ID:            entry.ID,
			AdminID:       entry.AdminID,
			AdminUsername: entry.AdminUsername,
			Action:        entry.Action,
			TargetType:    entry.TargetType,
			TargetID:      entry.TargetID,
			Details:       entry.Details,
			IPAddress:     entry.IPAddress,
			CreatedAt:     entry.CreatedAt.Format(timestampLayout),
		}
	}

	return &ListLogsOutput{
		Body: ListLogsResponse{
			Logs:        logs,
			Total:       total,
			Pages:       pageCount(total, perPage),
			CurrentPage: page,
		},
	}, nil
}
