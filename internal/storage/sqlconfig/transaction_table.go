package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{exec: bob.NewDB(db)}
}

func NewTransactionsTableWithExecutor(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

const transactionColumns = "t.id, t.user_id, t.account_id, t.category_id, t.amount, t.type, t.description, t.date, t.created_at"

func joinedSelectMods() []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(transactionColumns + ", c.name AS category_name, c.color AS category_color")),
		sm.From("transactions AS t"),
		sm.LeftJoin("categories AS c").On(psql.Raw("c.id = t.category_id")),
	}
}

// FindByID retrieves a transaction scoped to its owner, with the category
// name and color joined in.
func (t *TransactionsTable) FindByID(ctx context.Context, userID, id int64) (*Transaction, error) {
	mods := append(joinedSelectMods(),
		sm.Where(psql.Quote("t", "id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("t", "user_id").EQ(psql.Arg(userID))),
	)
	row, err := bob.One(ctx, t.exec, psql.Select(mods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByIDForUpdate retrieves a bare transaction row locked for the
// surrounding transaction. No join so the row lock stays on one table.
func (t *TransactionsTable) FindByIDForUpdate(ctx context.Context, userID, id int64) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("id, user_id, account_id, category_id, amount, type, description, date, created_at")),
		sm.From("transactions"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	q := psql.Insert(
		im.Into("transactions", "user_id", "account_id", "category_id", "amount", "type", "description", "date"),
		im.Values(psql.Arg(
			create.UserID,
			create.AccountID,
			create.CategoryID,
			create.Amount,
			create.Type,
			create.Description,
			create.Date,
		)),
		im.Returning("id, user_id, account_id, category_id, amount, type, description, date, created_at"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Update applies the set fields of the setter. Ownership is checked by the
// caller before the write, inside the same database transaction.
func (t *TransactionsTable) Update(ctx context.Context, id int64, setter *TransactionSetter) error {
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table("transactions")}
	if setter.Amount.IsValue() {
		mods = append(mods, um.SetCol("amount").ToArg(setter.Amount.MustGet()))
	}
	if setter.Type.IsValue() {
		mods = append(mods, um.SetCol("type").ToArg(setter.Type.MustGet()))
	}
	if setter.Description.IsValue() {
		mods = append(mods, um.SetCol("description").ToArg(setter.Description.MustGet()))
	}
	if setter.Date.IsValue() {
		mods = append(mods, um.SetCol("date").ToArg(setter.Date.MustGet()))
	}
	if !setter.CategoryID.IsUnset() {
		if setter.CategoryID.IsNull() {
			mods = append(mods, um.SetCol("category_id").ToArg(nil))
		} else {
			mods = append(mods, um.SetCol("category_id").ToArg(setter.CategoryID.MustGet()))
		}
	}
	// An UPDATE with no SET columns is invalid SQL; an empty setter is a no-op.
	if len(mods) == 1 {
		return nil
	}
	mods = append(mods, um.Where(psql.Quote("id").EQ(psql.Arg(id))))

	_, err := bob.Exec(ctx, t.exec, psql.Update(mods...))
	return err
}

// Delete removes a transaction row.
func (t *TransactionsTable) Delete(ctx context.Context, id int64) error {
	q := psql.Delete(
		dm.From("transactions"),
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

// List returns the user's transactions matching the filter, newest first.
func (t *TransactionsTable) List(ctx context.Context, userID int64, filter *TransactionFilter) ([]*Transaction, error) {
	mods := append(joinedSelectMods(),
		sm.Where(psql.Quote("t", "user_id").EQ(psql.Arg(userID))),
	)
	if filter != nil {
		if filter.Type != "" {
			mods = append(mods, sm.Where(psql.Quote("t", "type").EQ(psql.Arg(filter.Type))))
		}
		if filter.AccountID != nil {
			mods = append(mods, sm.Where(psql.Quote("t", "account_id").EQ(psql.Arg(*filter.AccountID))))
		}
		if filter.CategoryID != nil {
			mods = append(mods, sm.Where(psql.Quote("t", "category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.StartDate != nil {
			mods = append(mods, sm.Where(psql.Quote("t", "date").GTE(psql.Arg(*filter.StartDate))))
		}
		if filter.EndDate != nil {
			mods = append(mods, sm.Where(psql.Quote("t", "date").LTE(psql.Arg(*filter.EndDate))))
		}
	}
	mods = append(mods,
		sm.OrderBy(psql.Quote("t", "date")).Desc(),
		sm.OrderBy(psql.Quote("t", "id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(mods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// SumExpenses sums expense amounts for one category inside an inclusive date
// range. This is the budget aggregation query.
func (t *TransactionsTable) SumExpenses(ctx context.Context, userID, categoryID int64, start, end time.Time) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(amount), 0) AS total")),
		sm.From("transactions"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(TransactionTypeExpense))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(start))),
		sm.Where(psql.Quote("date").LTE(psql.Arg(end))),
	)
	return bob.One(ctx, t.exec, q, scan.ColumnMapper[decimal.Decimal]("total"))
}

// SumByCategory buckets income and expense transactions by category for the
// summary report. Transfers are excluded; uncategorized rows collapse into
// the id 0 bucket.
func (t *TransactionsTable) SumByCategory(ctx context.Context, userID int64, start, end *time.Time) ([]*CategorySum, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(
			"t.type, COALESCE(t.category_id, 0) AS category_id, " +
				"COALESCE(c.name, 'Uncategorized') AS name, " +
				"COALESCE(c.color, '" + UncategorizedCategoryColor + "') AS color, " +
				"SUM(t.amount) AS amount",
		)),
		sm.From("transactions AS t"),
		sm.LeftJoin("categories AS c").On(psql.Raw("c.id = t.category_id")),
		sm.Where(psql.Quote("t", "user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Raw("t.type IN (?, ?)", TransactionTypeIncome, TransactionTypeExpense)),
	}
	if start != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "date").GTE(psql.Arg(*start))))
	}
	if end != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "date").LTE(psql.Arg(*end))))
	}
	mods = append(mods,
		sm.GroupBy(psql.Raw("t.type")),
		sm.GroupBy(psql.Raw("COALESCE(t.category_id, 0)")),
		sm.GroupBy(psql.Raw("COALESCE(c.name, 'Uncategorized')")),
		sm.GroupBy(psql.Raw("COALESCE(c.color, '"+UncategorizedCategoryColor+"')")),
		sm.OrderBy(psql.Raw("t.type")).Asc(),
		sm.OrderBy(psql.Raw("amount")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(mods...), scan.StructMapper[CategorySum]())
	if err != nil {
		return nil, err
	}
	result := make([]*CategorySum, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
