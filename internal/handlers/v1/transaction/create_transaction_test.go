package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/handlers/v1/identity"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// mockTransactionService is a mock for transactionCreator.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Transaction), args.Error(1)
}

// newTestAPI registers the handler against a humatest API with user 1
// authenticated.
func newTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(identity.AttachUserID(ctx, 1))
	})
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

func storedTransaction() *sqlconfig.Transaction {
	categoryID := int64(3)
	name := "Groceries"
	color := "#EF4444"
	return &sqlconfig.Transaction{
		ID:            42,
		UserID:        1,
		AccountID:     7,
		CategoryID:    &categoryID,
		Amount:        decimal.RequireFromString("50.00"),
		Type:          "expense",
		Description:   "Weekly shop",
		Date:          time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		CategoryName:  &name,
		CategoryColor: &color,
	}
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	categoryID := int64(3)
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.UserID == 1 &&
			c.AccountID == 7 &&
			c.CategoryID != nil && *c.CategoryID == 3 &&
			c.Amount.Equal(decimal.RequireFromString("50")) &&
			c.Type == "expense" &&
			c.Date.Equal(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	})).Return(storedTransaction(), nil)

	resp := newTestAPI(t, mockSvc).Post("/api/transactions", CreateTransactionBody{
		AccountID:   7,
		CategoryID:  &categoryID,
		Amount:      50,
		Type:        "expense",
		Description: "Weekly shop",
		Date:        "2026-01-15",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Transaction created successfully", body.Message)
	assert.Equal(t, int64(42), body.Transaction.ID)
	assert.Equal(t, "Groceries", *body.Transaction.CategoryName)
	assert.Equal(t, "2026-01-15", body.Transaction.Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_UncategorizedUsesFallbackColor(t *testing.T) {
	stored := storedTransaction()
	stored.CategoryID = nil
	stored.CategoryName = nil
	stored.CategoryColor = nil

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).Return(stored, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/transactions", CreateTransactionBody{
		AccountID: 7,
		Amount:    50,
		Type:      "expense",
		Date:      "2026-01-15",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Transaction.CategoryID)
	assert.Equal(t, sqlconfig.UncategorizedCategoryColor, body.Transaction.CategoryColor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newTestAPI(t, mockSvc).Post("/api/transactions", CreateTransactionBody{
		AccountID: 7,
		Amount:    50,
		Type:      "expense",
		Date:      "15-01-2026",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid date format. Use YYYY-MM-DD")
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_ServiceValidationError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, &service.ValidationError{Message: "Amount must be positive"})

	resp := newTestAPI(t, mockSvc).Post("/api/transactions", CreateTransactionBody{
		AccountID: 7,
		Amount:    50,
		Type:      "expense",
		Date:      "2026-01-15",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Amount must be positive")
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, &service.NotFoundError{Resource: "Account"})

	resp := newTestAPI(t, mockSvc).Post("/api/transactions", CreateTransactionBody{
		AccountID: 99,
		Amount:    50,
		Type:      "expense",
		Date:      "2026-01-15",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_CreateTransaction_Unauthenticated(t *testing.T) {
	mockSvc := new(mockTransactionService)
	_, api := humatest.New(t)
	NewCreateTransactionHandler(mockSvc).Register(api)

	resp := api.Post("/api/transactions", CreateTransactionBody{
		AccountID: 7,
		Amount:    50,
		Type:      "expense",
		Date:      "2026-01-15",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}
