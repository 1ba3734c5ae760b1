package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IAdminLogTable = (*AdminLogsTable)(nil)

// AdminLogsTable provides access to the admin_logs table.
type AdminLogsTable struct {
	exec bob.Executor
}

func NewAdminLogsTable(db *sql.DB) *AdminLogsTable {
	return &AdminLogsTable{exec: bob.NewDB(db)}
}

func NewAdminLogsTableWithExecutor(exec bob.Executor) *AdminLogsTable {
	return &AdminLogsTable{exec: exec}
}

// Insert appends an audit entry. Empty target/details fields are stored as
// NULL.
func (t *AdminLogsTable) Insert(ctx context.Context, create *AdminLogCreate) error {
	var targetType, details *string
	var targetID *int64
	if create.TargetType != "" {
		targetType = &create.TargetType
	}
	if create.TargetID != 0 {
		targetID = &create.TargetID
	}
	if create.Details != "" {
		details = &create.Details
	}

	q := psql.Insert(
		im.Into("admin_logs", "admin_id", "action", "target_type", "target_id", "details", "ip_address"),
		im.Values(psql.Arg(create.AdminID, create.Action, targetType, targetID, details, create.IPAddress)),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// List returns audit entries newest first with the acting admin's username
// joined in, plus the total count for pagination.
func (t *AdminLogsTable) List(ctx context.Context, filter *AdminLogFilter) ([]*AdminLog, int64, error) {
	var wheres []bob.Mod[*dialect.SelectQuery]
	if filter != nil && filter.Action != "" {
		wheres = append(wheres, sm.Where(psql.Quote("l", "action").EQ(psql.Arg(filter.Action))))
	}

	countMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("COUNT(*) AS total")),
		sm.From("admin_logs AS l"),
	}, wheres...)
	total, err := bob.One(ctx, t.exec, psql.Select(countMods...), scan.ColumnMapper[int64]("total"))
	if err != nil {
		return nil, 0, err
	}

	mods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(
			"l.id, l.admin_id, l.action, l.target_type, l.target_id, l.details, " +
				"l.ip_address, l.created_at, u.username AS admin_username",
		)),
		sm.From("admin_logs AS l"),
		sm.LeftJoin("users AS u").On(psql.Raw("u.id = l.admin_id")),
	}, wheres...)
	mods = append(mods,
		sm.OrderBy(psql.Quote("l", "created_at")).Desc(),
		sm.OrderBy(psql.Quote("l", "id")).Desc(),
	)
	if filter != nil && filter.Limit > 0 {
		mods = append(mods, sm.Limit(filter.Limit))
		if filter.Offset > 0 {
			mods = append(mods, sm.Offset(filter.Offset))
		}
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(mods...), scan.StructMapper[AdminLog]())
	if err != nil {
		return nil, 0, err
	}
	result := make([]*AdminLog, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, total, nil
}
