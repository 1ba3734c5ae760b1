package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
)

// TableCounts is the per-table row count snapshot.
type TableCounts struct {
	Users        int64 `json:"users" doc:"Rows in users"`
	Accounts     int64 `json:"accounts" doc:"Rows in accounts"`
	Transactions int64 `json:"transactions" doc:"Rows in transactions"`
	Categories   int64 `json:"categories" doc:"Rows in categories"`
	Budgets      int64 `json:"budgets" doc:"Rows in budgets"`
	AdminLogs    int64 `json:"admin_logs" doc:"Rows in admin_logs"`
}

// SystemInfoResponse is the response body for the system info view.
type SystemInfoResponse struct {
	DatabaseSizeMB float64     `json:"database_size_mb" doc:"Database size in megabytes"`
	TableCounts    TableCounts `json:"table_counts"`
	Timestamp      string      `json:"timestamp" doc:"Snapshot timestamp, UTC"`
}

// SystemInfoOutput is the response for the system info view.
type SystemInfoOutput struct {
	Body SystemInfoResponse
}

// systemInfoReader is the interface for the system info view.
type systemInfoReader interface {
	adminGate
	GetSystemInfo(ctx context.Context, adminID int64, ip string) (*service.SystemInfo, error)
}

// SystemInfoHandler handles GET /api/admin/system-info.
type SystemInfoHandler struct {
	AdminService systemInfoReader
}

// NewSystemInfoHandler creates a new SystemInfoHandler.
func NewSystemInfoHandler(svc systemInfoReader) *SystemInfoHandler {
	return &SystemInfoHandler{AdminService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *SystemInfoHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-system-info",
		Method:      http.MethodGet,
		Path:        "/api/admin/system-info",
		Summary:     "System information",
		Description: "Snapshots database size and per-table row counts.",
		Tags:        []string{"Admin"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *SystemInfoHandler) handle(ctx context.Context, _ *struct{}) (*SystemInfoOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.AdminService.RequireAdmin(ctx, userID); err != nil {
		return nil, httperr.FromService(err)
	}

	info, err := h.AdminService.GetSystemInfo(ctx, userID, identity.ClientIP(ctx))
	if err != nil {
		return nil, httperr.FromService(err)
	}

	return &SystemInfoOutput{
		Body: SystemInfoResponse{
			DatabaseSizeMB: info.DatabaseSizeMB,
			TableCounts: TableCounts{
				Users:        info.TableCounts.Users,
				Accounts:     info.TableCounts.Accounts,
				Transactions: info.TableCounts.Transactions,
				Categories:   info.TableCounts.Categories,
				Budgets:      info.TableCounts.Budgets,
				AdminLogs:    info.TableCounts.AdminLogs,
			},
			Timestamp: info.Timestamp.Format(timestampLayout),
		},
	}, nil
}
