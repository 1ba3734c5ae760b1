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

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

func NewCategoriesTable(db *sql.DB) *CategoriesTable {
	return &CategoriesTable{exec: bob.NewDB(db)}
}

func NewCategoriesTableWithExecutor(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

const categoryColumns = "id, user_id, name, type, color"

// FindByID retrieves a category owned by the user or a global one.
func (t *CategoriesTable) FindByID(ctx context.Context, userID, id int64) (*Category, error) {
	q := psql.Select(
		sm.Columns(psql.Raw(categoryColumns)),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Raw("(user_id = ? OR user_id IS NULL)", userID)),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new category and returns the stored row.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	color := create.Color
	if color == "" {
		color = DefaultCategoryColor
	}
	q := psql.Insert(
		im.Into("categories", "user_id", "name", "type", "color"),
		im.Values(psql.Arg(create.UserID, create.Name, create.Type, color)),
		im.Returning(categoryColumns),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the user's categories plus global ones, optionally filtered
// by type.
func (t *CategoriesTable) List(ctx context.Context, userID int64, filter *CategoryFilter) ([]*Category, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(categoryColumns)),
		sm.From("categories"),
		sm.Where(psql.Raw("(user_id = ? OR user_id IS NULL)", userID)),
	}
	if filter != nil && filter.Type != "" {
		mods = append(mods, sm.Where(psql.Quote("type").EQ(psql.Arg(filter.Type))))
	}
	mods = append(mods,
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(mods...), scan.StructMapper[Category]())
	if err != nil {
		return nil, err
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update applies the set fields of the setter. Global categories are not
// updatable through this path.
func (t *CategoriesTable) Update(ctx context.Context, userID, id int64, setter *CategorySetter) (*Category, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table("categories")}
	if setter.Name.IsValue() {
		mods = append(mods, um.SetCol("name").ToArg(setter.Name.MustGet()))
	}
	if setter.Color.IsValue() {
		mods = append(mods, um.SetCol("color").ToArg(setter.Color.MustGet()))
	}
	// An UPDATE with no SET columns is invalid SQL; an empty setter returns
	// the row unchanged.
	if len(mods) == 1 {
		return t.FindByID(ctx, userID, id)
	}
	mods = append(mods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	result, err := bob.Exec(ctx, t.exec, psql.Update(mods...))
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}
	return t.FindByID(ctx, userID, id)
}

// Delete removes an owned category. Referencing transactions keep their rows
// with a NULL category and budgets cascade, both via the FK policy.
func (t *CategoriesTable) Delete(ctx context.Context, userID, id int64) error {
	q := psql.Delete(
		dm.From("categories"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
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
