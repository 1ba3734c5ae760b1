package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/httperr"
	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// ListUsersInput is the Huma input for the paginated user listing.
type ListUsersInput struct {
	Page    int    `query:"page" doc:"Page number, starting at 1"`
	PerPage int    `query:"per_page" doc:"Page size, defaults to 20"`
	Search  string `query:"search" doc:"Substring match on username or email"`
	Role    string `query:"role" doc:"Restrict to one role"`
}

// UserStatistics is the aggregate counters attached to each listed user.
type UserStatistics struct {
	AccountsCount       int64   `json:"accounts_count" doc:"Number of accounts"`
	TransactionsCount   int64   `json:"transactions_count" doc:"Number of transactions"`
	CategoriesCount     int64   `json:"categories_count" doc:"Number of custom categories"`
	BudgetsCount        int64   `json:"budgets_count" doc:"Number of budgets"`
	TotalIncome         float64 `json:"total_income" doc:"Lifetime income"`
	TotalExpenses       float64 `json:"total_expenses" doc:"Lifetime expenses"`
	LastTransactionDate *string `json:"last_transaction_date" doc:"Most recent transaction timestamp"`
}

// ListedUser is one entry of the user listing.
type ListedUser struct {
	User
	Statistics UserStatistics `json:"statistics"`
}

// ListUsersResponse is the response body for the user listing.
type ListUsersResponse struct {
	Users       []ListedUser `json:"users"`
	Total       int64        `json:"total" doc:"Total matching users"`
	Pages       int64        `json:"pages" doc:"Total pages at this page size"`
	CurrentPage int          `json:"current_page" doc:"Requested page number"`
}

// ListUsersOutput is the response for the user listing.
type ListUsersOutput struct {
	Body ListUsersResponse
}

// userLister is the interface for the paginated user listing.
type userLister interface {
	adminGate
	ListUsers(ctx context.Context, filter *sqlconfig.UserFilter) ([]*service.UserWithStatistics, int64, error)
}

// ListUsersHandler handles GET /api/admin/users.
type ListUsersHandler struct {
	AdminService userLister
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(svc userLister) *ListUsersHandler {
	return &ListUsersHandler{AdminService: svc}
}

// Register registers the endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "admin-list-users",
		Method:      http.MethodGet,
		Path:        "/api/admin/users",
		Summary:     "List users",
		Description: "Pages through all users with their aggregate counters.",
		Tags:        []string{"Admin"},
		Security:    identity.BearerSecurity,
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
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
		perPage = defaultUsersPerPage
	}

	users, total, err := h.AdminService.ListUsers(ctx, &sqlconfig.UserFilter{
		Search: input.Search,
		Role:   input.Role,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	})
	if err != nil {
		return nil, httperr.FromService(err)
	}

	listed := make([]ListedUser, len(users))
	for i, entry := range users {
		stats := UserStatistics{
			AccountsCount:     entry.Statistics.AccountsCount,
			TransactionsCount: entry.Statistics.TransactionsCount,
			CategoriesCount:   entry.Statistics.CategoriesCount,
			BudgetsCount:      entry.Statistics.BudgetsCount,
			TotalIncome:       entry.Statistics.TotalIncome.InexactFloat64(),
			TotalExpenses:     entry.Statistics.TotalExpenses.InexactFloat64(),
		}
		if entry.Statistics.LastTransactionAt != nil {
			formatted := entry.Statistics.LastTransactionAt.Format(timestampLayout)
			stats.LastTransactionDate = &formatted
		}
		listed[i] = ListedUser{User: serializeUser(entry.User), Statistics: stats}
	}

	return &ListUsersOutput{
		Body: ListUsersResponse{
			Users:       listed,
			Total:       total,
			Pages:       pageCount(total, perPage),
			CurrentPage: page,
		},
	}, nil
}
