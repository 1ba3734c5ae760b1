package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stephenafamo/scan"
	"github.com/stretchr/testify/assert"
)

var errStubExecutor = errors.New("stub executor")

// stubExecutor records every statement it receives and fails them all, so a
// test can tell a read path from a write path without a database.
type stubExecutor struct {
	queries []string
	execs   []string
}

func (e *stubExecutor) QueryContext(ctx context.Context, query string, args ...any) (scan.Rows, error) {
	e.queries = append(e.queries, query)
	return nil, errStubExecutor
}

func (e *stubExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	e.execs = append(e.execs, query)
	return nil, errStubExecutor
}

func TestTransactionsUpdate_EmptySetterIsNoOp(t *testing.T) {
	exec := &stubExecutor{}
	table := NewTransactionsTableWithExecutor(exec)

	err := table.Update(context.Background(), 42, &TransactionSetter{})

	assert.NoError(t, err)
	assert.Empty(t, exec.execs)
	assert.Empty(t, exec.queries)
}

func TestAccountsUpdate_EmptySetterReadsCurrentRow(t *testing.T) {
	exec := &stubExecutor{}
	table := NewAccountsTableWithExecutor(exec)

	_, err := table.Update(context.Background(), 1, 7, &AccountSetter{})

	assert.Error(t, err)
	assert.Empty(t, exec.execs)
	assert.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "SELECT")
}

func TestCategoriesUpdate_EmptySetterReadsCurrentRow(t *testing.T) {
	exec := &stubExecutor{}
	table := NewCategoriesTableWithExecutor(exec)

	_, err := table.Update(context.Background(), 1, 3, &CategorySetter{})

	assert.Error(t, err)
	assert.Empty(t, exec.execs)
	assert.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "SELECT")
}

func TestBudgetsUpdate_EmptySetterReadsCurrentRow(t *testing.T) {
	exec := &stubExecutor{}
	table := NewBudgetsTableWithExecutor(exec)

	_, err := table.Update(context.Background(), 1, 9, &BudgetSetter{})

	assert.Error(t, err)
	assert.Empty(t, exec.execs)
	assert.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "SELECT")
}

func TestUsersUpdate_EmptySetterReadsCurrentRow(t *testing.T) {
	exec := &stubExecutor{}
	table := NewUsersTableWithExecutor(exec)

	_, err := table.Update(context.Background(), 5, &UserSetter{})

	assert.Error(t, err)
	assert.Empty(t, exec.execs)
	assert.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "SELECT")
}
