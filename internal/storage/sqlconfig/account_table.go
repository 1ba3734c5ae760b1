package sqlconfig

import (
	"context"
	"database/sql"

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

var _ IAccountTable = (*AccountsTable)(nil)

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

func NewAccountsTable(db *sql.DB) *AccountsTable {
	return &AccountsTable{exec: bob.NewDB(db)}
}

func NewAccountsTableWithExecutor(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

const accountColumns = "id, user_id, name, balance, currency, is_active, created_at"

// FindByID retrieves an account scoped to its owner. With forUpdate the row
// is locked for the duration of the surrounding transaction.
func (t *AccountsTable) FindByID(ctx context.Context, userID, id int64, forUpdate bool) (*Account, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(accountColumns)),
		sm.From("accounts"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if forUpdate {
		mods = append(mods, sm.ForUpdate())
	}
	row, err := bob.One(ctx, t.exec, psql.Select(mods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Insert creates a new account and returns the stored row.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	currency := create.Currency
	if currency == "" {
		currency = "UAH"
	}
	q := psql.Insert(
		im.Into("accounts", "user_id", "name", "balance", "currency", "is_active"),
		im.Values(psql.Arg(create.UserID, create.Name, create.Balance, currency, create.IsActive)),
		im.Returning(accountColumns),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns the user's accounts. Nil filter returns all of them.
func (t *AccountsTable) List(ctx context.Context, userID int64, filter *AccountFilter) ([]*Account, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw(accountColumns)),
		sm.From("accounts"),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	if filter != nil && filter.IsActive != nil {
		mods = append(mods, sm.Where(psql.Quote("is_active").EQ(psql.Arg(*filter.IsActive))))
	}
	mods = append(mods,
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(mods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update applies the set fields of the setter and returns the updated row.
func (t *AccountsTable) Update(ctx context.Context, userID, id int64, setter *AccountSetter) (*Account, error) {
	mods := []bob.Mod[*dialect.UpdateQuery]{um.Table("accounts")}
	if setter.Name.IsValue() {
		mods = append(mods, um.SetCol("name").ToArg(setter.Name.MustGet()))
	}
	if setter.Balance.IsValue() {
		mods = append(mods, um.SetCol("balance").ToArg(setter.Balance.MustGet()))
	}
	if setter.Currency.IsValue() {
		mods = append(mods, um.SetCol("currency").ToArg(setter.Currency.MustGet()))
	}
	if setter.IsActive.IsValue() {
		mods = append(mods, um.SetCol("is_active").ToArg(setter.IsActive.MustGet()))
	}
	// An UPDATE with no SET columns is invalid SQL; an empty setter returns
	// the row unchanged.
	if len(mods) == 1 {
		return t.FindByID(ctx, userID, id, false)
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
	return t.FindByID(ctx, userID, id, false)
}

// UpdateBalance overwrites the cached balance. Callers are expected to hold
// the row lock taken by FindByID with forUpdate.
func (t *AccountsTable) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	q := psql.Update(
		um.Table("accounts"),
		um.SetCol("balance").ToArg(balance),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// Delete removes an account and, via the FK policy, its transactions.
func (t *AccountsTable) Delete(ctx context.Context, userID, id int64) error {
	q := psql.Delete(
		dm.From("accounts"),
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
