package sqlconfig

import (
	"context"
	"time"
)

// AdminLog is one append-only audit entry. Entries are never mutated or
// deleted.
type AdminLog struct {
	ID            int64     `db:"id"`
	AdminID       int64     `db:"admin_id"`
	Action        string    `db:"action"`
	TargetType    *string   `db:"target_type"`
	TargetID      *int64    `db:"target_id"`
	Details       *string   `db:"details"`
	IPAddress     string    `db:"ip_address"`
	CreatedAt     time.Time `db:"created_at"`
	AdminUsername *string   `db:"admin_username"`
}

// AdminLogCreate is the input for appending an audit entry.
type AdminLogCreate struct {
	AdminID    int64
	Action     string
	TargetType string
	TargetID   int64
	Details    string
	IPAddress  string
}

// AdminLogFilter specifies filters for listing audit entries.
type AdminLogFilter struct {
	Action string
	Limit  int
	Offset int
}

// IAdminLogTable defines the interface for audit log storage operations.
type IAdminLogTable interface {
	Insert(ctx context.Context, create *AdminLogCreate) error
	List(ctx context.Context, filter *AdminLogFilter) ([]*AdminLog, int64, error)
}
