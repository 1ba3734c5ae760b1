package service

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const (
	dashboardTopUsers    = 5
	dashboardRecentUsers = 5
	detailsRecentLimit   = 10
)

// Dashboard is the cross-user statistics view.
type Dashboard struct {
	Totals      *sqlconfig.SystemTotals
	TopUsers    []*sqlconfig.UserTransactionCount
	RecentUsers []*sqlconfig.User
}

// UserWithStatistics pairs a user record with its aggregate counters.
type UserWithStatistics struct {
	User       *sqlconfig.User
	Statistics *sqlconfig.UserStatistics
}

// UserDetails is the full per-user drill-down for admins.
type UserDetails struct {
	User               *sqlconfig.User
	Accounts           []*sqlconfig.Account
	Categories         []*sqlconfig.Category
	RecentTransactions []*sqlconfig.Transaction
	Budgets            []*sqlconfig.Budget
}

// SystemInfo is the database health snapshot.
type SystemInfo struct {
	DatabaseSizeMB float64
	TableCounts    *sqlconfig.TableCounts
	Timestamp      time.Time
}

// AdminService handles cross-user reporting and user administration. Every
// mutating or inspecting call appends an audit entry.
type AdminService struct {
	storage *storage.Storage
	log     *logrus.Logger
}

func NewAdminService(store *storage.Storage) *AdminService {
	return &AdminService{storage: store, log: logrus.StandardLogger()}
}

// RequireAdmin verifies the caller holds the admin role.
func (s *AdminService) RequireAdmin(ctx context.Context, userID int64) (*sqlconfig.User, error) {
	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return nil, &ForbiddenError{Message: "Admin access required"}
		}
		return nil, err
	}
	if user.Role != sqlconfig.RoleAdmin {
		return nil, &ForbiddenError{Message: "Admin access required"}
	}
	return user, nil
}

// logAction appends an audit entry. Audit failures are logged but never fail
// the request that triggered them.
func (s *AdminService) logAction(ctx context.Context, adminID int64, action, targetType string, targetID int64, details, ip string) {
	err := s.storage.AdminLogs.Insert(ctx, &sqlconfig.AdminLogCreate{
		AdminID:    adminID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    details,
		IPAddress:  ip,
	})
	if err != nil {
		s.log.WithError(err).WithField("action", action).Warn("Admin.AuditLog.Failed")
	}
}

// GetDashboard gathers the system totals plus the most active and most
// recently registered users.
func (s *AdminService) GetDashboard(ctx context.Context, adminID int64, ip string) (*Dashboard, error) {
	totals, err := s.storage.Stats.SystemTotals(ctx)
	if err != nil {
		return nil, err
	}
	topUsers, err := s.storage.Stats.TopUsersByTransactions(ctx, dashboardTopUsers)
	if err != nil {
		return nil, err
	}
	recentUsers, _, err := s.storage.Users.List(ctx, &sqlconfig.UserFilter{
		Role:  sqlconfig.RoleUser,
		Limit: dashboardRecentUsers,
	})
	if err != nil {
		return nil, err
	}

	s.logAction(ctx, adminID, "VIEW_DASHBOARD", "", 0, "", ip)

	return &Dashboard{
		Totals:      totals,
		TopUsers:    topUsers,
		RecentUsers: recentUsers,
	}, nil
}

// ListUsers pages through all users with their aggregate counters.
func (s *AdminService) ListUsers(ctx context.Context, filter *sqlconfig.UserFilter) ([]*UserWithStatistics, int64, error) {
	users, total, err := s.storage.Users.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*UserWithStatistics, 0, len(users))
	for _, user := range users {
		stats, err := s.storage.Stats.UserStatistics(ctx, user.ID)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, &UserWithStatistics{User: user, Statistics: stats})
	}
	return result, total, nil
}

// GetUserDetails returns one user's record with their accounts, own
// categories, recent transactions and budgets.
func (s *AdminService) GetUserDetails(ctx context.Context, adminID, userID int64, ip string) (*UserDetails, error) {
	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "User"}
		}
		return nil, err
	}

	accounts, err := s.storage.Accounts.List(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	// The category listing includes global rows; keep only the user's own.
	visible, err := s.storage.Categories.List(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	categories := make([]*sqlconfig.Category, 0, len(visible))
	for _, category := range visible {
		if category.UserID != nil && *category.UserID == userID {
			categories = append(categories, category)
		}
	}

	transactions, err := s.storage.Transactions.List(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	if len(transactions) > detailsRecentLimit {
		transactions = transactions[:detailsRecentLimit]
	}

	budgets, err := s.storage.Budgets.List(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	s.logAction(ctx, adminID, "VIEW_USER_DETAILS", "user", userID, "", ip)

	return &UserDetails{
		User:               user,
		Accounts:           accounts,
		Categories:         categories,
		RecentTransactions: transactions,
		Budgets:            budgets,
	}, nil
}

// UpdateUser changes a user's username, email or role, guarding uniqueness.
// The audit entry records the before and after state.
func (s *AdminService) UpdateUser(ctx context.Context, adminID, userID int64, setter *sqlconfig.UserSetter, ip string) (*sqlconfig.User, error) {
	existing, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "User"}
		}
		return nil, err
	}

	if setter.Username.IsValue() {
		other, err := s.storage.Users.FindByUsername(ctx, setter.Username.MustGet())
		if err == nil && other.ID != userID {
			return nil, &ConflictError{Message: "Username already exists"}
		} else if err != nil && !isNoRows(err) {
			return nil, err
		}
	}
	if setter.Email.IsValue() {
		other, err := s.storage.Users.FindByEmail(ctx, setter.Email.MustGet())
		if err == nil && other.ID != userID {
			return nil, &ConflictError{Message: "Email already exists"}
		} else if err != nil && !isNoRows(err) {
			return nil, err
		}
	}
	if setter.Role.IsValue() {
		role := setter.Role.MustGet()
		if role != sqlconfig.RoleUser && role != sqlconfig.RoleAdmin {
			return nil, &ValidationError{Message: `Role must be either "user" or "admin"`}
		}
	}

	updated, err := s.storage.Users.Update(ctx, userID, setter)
	if err != nil {
		if isNoRows(err) {
			return nil, &NotFoundError{Resource: "User"}
		}
		return nil, err
	}

	details := spew.Sprintf("Updated from %+v to %+v", existing, updated)
	s.logAction(ctx, adminID, "UPDATE_USER", "user", userID, details, ip)

	return updated, nil
}

// DeleteUser removes a user and all their owned records. Admins cannot
// delete themselves or other admins.
func (s *AdminService) DeleteUser(ctx context.Context, adminID, userID int64, ip string) (string, error) {
	if adminID == userID {
		return "", &ValidationError{Message: "Cannot delete yourself"}
	}

	user, err := s.storage.Users.FindByID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return "", &NotFoundError{Resource: "User"}
		}
		return "", err
	}
	if user.Role == sqlconfig.RoleAdmin {
		return "", &ForbiddenError{Message: "Cannot delete another admin"}
	}

	if err = s.storage.Users.Delete(ctx, userID); err != nil {
		if isNoRows(err) {
			return "", &NotFoundError{Resource: "User"}
		}
		return "", err
	}

	s.logAction(ctx, adminID, "DELETE_USER", "user", userID, "Deleted user: "+user.Username, ip)

	return user.Username, nil
}

// ListLogs pages through the audit log, optionally filtered by action.
func (s *AdminService) ListLogs(ctx context.Context, filter *sqlconfig.AdminLogFilter) ([]*sqlconfig.AdminLog, int64, error) {
	return s.storage.AdminLogs.List(ctx, filter)
}

// GetSystemInfo snapshots database size and per-table row counts.
func (s *AdminService) GetSystemInfo(ctx context.Context, adminID int64, ip string) (*SystemInfo, error) {
	size, err := s.storage.Stats.DatabaseSizeMB(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.storage.Stats.TableCounts(ctx)
	if err != nil {
		return nil, err
	}

	s.logAction(ctx, adminID, "VIEW_SYSTEM_INFO", "", 0, "", ip)

	return &SystemInfo{
		DatabaseSizeMB: size,
		TableCounts:    counts,
		Timestamp:      time.Now().UTC(),
	}, nil
}
