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

var _ IBudgetTable = (*BudgetsTable)(nil)

// BudgetsTable provides access to the budgets table.
type BudgetsTable struct {
	exec bob.Executor
}

func NewBudgetsTable(db *sql.DB) *BudgetsTable {
	return &BudgetsTable{exec: bob.NewDB(db)}
}

func NewBudgetsTableWithExecutor(exec bob.Executor) *BudgetsTable {
	return &BudgetsTable{exec: exec}
}

const budgetColumns = "b.id, b.user_id, b.category_id, b.amount, b.start_date, b.end_date"

func budgetSelectMods() []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(budgetColumns + ", c.name AS category_name, c.color AS category_color")),
		sm.From("budgets AS b"),
		sm.LeftJoin("categories AS c").On(psql.Raw("c.id = b.category_id")),
	}
}

// FindByID retrieves a budget scoped to its owner.
func (t *BudgetsTable) FindByID(ctx context.Context, userID, id int64) (*Budget, error) {
	mods := append(budgetSelectMods(),
		sm.Where(psql.Quote("b", "id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("b", "user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, psql.Select(mods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new budget and returns the stored row.
func (t *BudgetsTable) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into("budgets", "user_id", "category_id", "amount", "start_date", "end_date"),
		im.Values(psql.Arg(create.UserID, create.CategoryID, create.Amount, create.StartDate, create.EndDate)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.ColumnMapper[int64]("id"))
	if err != nil {
		return nil, err
	}
	return t.FindByID(ctx, create.UserID, id)
}

// List returns the user's budgets, optionally restricted to those whose date
// range overlaps the filter range.
func (t *BudgetsTable) List(ctx context.Context, userID int64, filter *BudgetFilter) ([]*Budget, error) {
	mods := append(budgetSelectMods(),
		sm.Where(psql.Quote("b", "user_id").EQ(psql.Arg(userID))),
	)
	if filter != nil {
		if filter.OverlapEnd != nil {
			mods = append(mods, sm.Where(psql.Quote("b", "start_date").LTE(psql.Arg(*filter.OverlapEnd))))
		}
		if filter.OverlapStart != nil {
			mods = append(mods, sm.Where(psql.Quote("b", "end_date").GTE(psql.Arg(*filter.OverlapStart))))
		}
	}
	mods = append(mods,
		sm.OrderBy(psql.Quote("b", "start_date")).Desc(),
		sm.OrderBy(psql.Quote("b", "id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(mods...), scan.StructMapper[Budget]())
	if err != nil {
		return nil, err
	}
	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update applies the set fields of the setter and returns the updated row.
func (t *BudgetsTable) Update(ctx context.Context, userID, id int64, setter *BudgetSetter) (*Budget, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table("budgets")}
	if setter.Amount.IsValue() {
		mods = append(mods, um.SetCol("amount").ToArg(setter.Amount.MustGet()))
	}
	if setter.StartDate.IsValue() {
		mods = append(mods, um.SetCol("start_date").ToArg(setter.StartDate.MustGet()))
	}
	if setter.EndDate.IsValue() {
		mods = append(mods, um.SetCol("end_date").ToArg(setter.EndDate.MustGet()))
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

// Delete removes a budget.
func (t *BudgetsTable) Delete(ctx context.Context, userID, id int64) error {
	q := psql.Delete(
		dm.From("budgets"),
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
