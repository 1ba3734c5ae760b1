package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec bob.Executor
}

func NewUsersTable(db *sql.DB) *UsersTable {
	return &UsersTable{exec: bob.NewDB(db)}
}

func NewUsersTableWithExecutor(exec bob.Executor) *UsersTable {
	return &UsersTable{exec: exec}
}

const userColumns = "id, username, email, password_hash, role, created_at"

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id int64) (*User, error) {
	return t.findBy(ctx, psql.Quote("id").EQ(psql.Arg(id)))
}

// FindByUsername retrieves a user by unique username.
func (t *UsersTable) FindByUsername(ctx context.Context, username string) (*User, error) {
	return t.findBy(ctx, psql.Quote("username").EQ(psql.Arg(username)))
}

// FindByEmail retrieves a user by unique email.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	return t.findBy(ctx, psql.Quote("email").EQ(psql.Arg(email)))
}

func (t *UsersTable) findBy(ctx context.Context, where bob.Expression) (*User, error) {
	q := psql.Select(
		sm.Columns(psql.Raw(userColumns)),
		sm.From("users"),
		sm.Where(where),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new user and returns the stored row.
func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	role := create.Role
	if role == "" {
		role = RoleUser
	}
	q := psql.Insert(
		im.Into("users", "username", "email", "password_hash", "role"),
		im.Values(psql.Arg(create.Username, create.Email, create.PasswordHash, role)),
		im.Returning(userColumns),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns users matching the filter, newest first, plus the total count
// for pagination.
func (t *UsersTable) List(ctx context.Context, filter *UserFilter) ([]*User, int64, error) {
	var wheres []bob.Mod[*dialect.SelectQuery]
	if filter != nil {
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			wheres = append(wheres, sm.Where(psql.Raw("(username LIKE ? OR email LIKE ?)", pattern, pattern)))
		}
		if filter.Role != "" {
			wheres = append(wheres, sm.Where(psql.Quote("role").EQ(psql.Arg(filter.Role))))
		}
	}

	countMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("COUNT(*) AS total")),
		sm.From("users"),
	}, wheres...)
	total, err := bob.One(ctx, t.exec, psql.Select(countMods...), scan.ColumnMapper[int64]("total"))
	if err != nil {
		return nil, 0, err
	}

	listMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(userColumns)),
		sm.From("users"),
	}, wheres...)
	listMods = append(listMods,
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	if filter != nil && filter.Limit > 0 {
		listMods = append(listMods, sm.Limit(filter.Limit))
		if filter.Offset > 0 {
			listMods = append(listMods, sm.Offset(filter.Offset))
		}
	}

	rows, err := bob.All(ctx, t.exec, psql.Select(listMods...), scan.StructMapper[User]())
	if err != nil {
		return nil, 0, err
	}

	result := make([]*User, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, total, nil
}

// Update applies the set fields of the setter and returns the updated row.
func (t *UsersTable) Update(ctx context.Context, id int64, setter *UserSetter) (*User, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table("users")}
	if setter.Username.IsValue() {
		mods = append(mods, um.SetCol("username").ToArg(setter.Username.MustGet()))
	}
	if setter.Email.IsValue() {
		mods = append(mods, um.SetCol("email").ToArg(setter.Email.MustGet()))
	}
	if setter.Role.IsValue() {
		mods = append(mods, um.SetCol("role").ToArg(setter.Role.MustGet()))
	}
	// An UPDATE with no SET columns is invalid SQL; an empty setter returns
	// the row unchanged.
	if len(mods) == 1 {
		return t.FindByID(ctx, id)
	}
	mods = append(mods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	if _, err := bob.Exec(ctx, t.exec, psql.Update(mods...)); err != nil {
		return nil, err
	}
	return t.FindByID(ctx, id)
}

// Delete removes a user; owned rows cascade at the database level.
func (t *UsersTable) Delete(ctx context.Context, id int64) error {
	q := psql.Delete(
		dm.From("users"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
