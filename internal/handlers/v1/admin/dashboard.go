package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
)

// TopUser is one entry of the most-active-users listing.
type TopUser struct {
	ID               int64  `json:"id" doc:"User id"`
	Username         string `json:"username" doc:"Username"`
	TransactionCount int64  `json:"transaction_count" doc:"Total transactions recorded"`
}

// RecentUser is one entry of the recently-registered listing.
type RecentUser struct {
	ID        int64  `json:"id" doc:"User id"`
	Username  string `json:"username" doc:"Username"`
	Email     string `json:"email" doc:"Email address"`
	CreatedAt string `json:"created_at" doc:"Registration timestamp"`
}

// DashboardResponse is the response body for the admin dashboard.
type DashboardResponse struct {
	TotalUsers            int64        `json:"total_users" doc:"Registered non-admin users"`
	TotalAdmins           int64        `json:"total_admins" doc:"Registered admins"`
	TotalAccounts         int64        `json:"total_accounts" doc:"Accounts across all users"`
	TotalTransactions     int64        `json:"total_transactions" doc:"Transactions across all users"`
	TotalCustomCategories int64        `json:"total_custom_categories" doc:"User-created categories"`
	TotalBudgets          int64        `json:"total_budgets" doc:"Budgets across all users"`
	TotalBalance          float64      `json:"total_balance" doc:"Sum of all account balances"`
	NewUsersToday         int64        `json:"new_users_today" doc:"Registrations since midnight"`
	TransactionsToday     int64        `json:"transactions_today" doc:"Transactions recorded since midnight"`
	TopUsers              []TopUser    `json:"top_users" doc:"Most active users by transaction count"`
	RecentUsers           []RecentUser `json:"recent_users" doc:"Most recently registered users"`
}

// DashboardOutput is the response for the admin dashboard.
type DashboardOutput struct {
	Body DashboardResponse
}

// dashboardService is the interface for the dashboard view.
type dashboardService interface {
	adminGate
	GetDashboard(ctx context.Context, adminID int64, ip string) (*service.Dashboard, error)
}

// DashboardHandler handles GET /api/admin/dashboard.
type DashboardHandler struct {
	AdminService dashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{AdminService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *DashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-dashboard",
		Method:      http.MethodGet,
		Path:        "/api/admin/dashboard",
		Summary:     "Admin dashboard",
		Description: "System-wide totals with the most active and most recently registered users.",
		Tags:        []string{"Admin"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *DashboardHandler) handle(ctx context.Context, _ *struct{}) (*DashboardOutput, error) {
	userID, err := identity.Require(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.AdminService.RequireAdmin(ctx, userID); err != nil {
		return nil, httperr.FromService(err)
	}

	dashboard, err := h.AdminService.GetDashboard(ctx, userID, identity.ClientIP(ctx))
	if err != nil {
		return nil, httperr.FromService(err)
	}

	topUsers := make([]TopUser, len(dashboard.TopUsers))
	for i, user := range dashboard.TopUsers {
		topUsers[i] = TopUser{
			ID:               user.ID,
			Username:         user.Username,
			TransactionCount: user.TransactionCount,
		}
	}
	recentUsers := make([]RecentUser, len(dashboard.RecentUsers))
	for i, user := range dashboard.RecentUsers {
		recentUsers[i] = RecentUser{
			ID:        user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt.Format(timestampLayout),
		}
	}

	totals := dashboard.Totals
	return &DashboardOutput{
		Body: DashboardResponse{
			TotalUsers:            totals.TotalUsers,
			TotalAdmins:           totals.TotalAdmins,
			TotalAccounts:         totals.TotalAccounts,
			TotalTransactions:     totals.TotalTransactions,
			TotalCustomCategories: totals.TotalCustomCategories,
			TotalBudgets:          totals.TotalBudgets,
			TotalBalance:          totals.TotalBalance.InexactFloat64(),
			NewUsersToday:         totals.NewUsersToday,
			TransactionsToday:     totals.TransactionsToday,
			TopUsers:              topUsers,
			RecentUsers:           recentUsers,
		},
	}, nil
}
