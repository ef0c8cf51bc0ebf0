package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID     uuid.UUID
	AccountID  *uuid.UUID
	Type       *entity.TransactionType
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string // Case-insensitive match over description, category and notes
	SortBy     string // "date" or "amount", defaults to date
	Descending bool
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*entity.Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// AccountTotals represents per-account income and expense sums over
// non-deleted transactions.
type AccountTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
}

// TransactionTotals represents aggregated totals for a filtered set of
// transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ExpenseScope bounds an expense aggregation to a period window and an
// optional category and account restriction. Empty Categories or
// AccountIDs means the dimension is unrestricted.
type ExpenseScope struct {
	UserID     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Categories []string
	AccountIDs []uuid.UUID
}

// ScopedExpenseTotal is the aggregate a progress calculation consumes.
type ScopedExpenseTotal struct {
	Total decimal.Decimal
	Count int
}

// TransactionRepository defines the interface for transaction persistence operations.
// All lookups are scoped by owner.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateTransferPair persists both legs of a transfer in a single
	// database transaction. Either both legs commit or neither does.
	CreateTransferPair(ctx context.Context, expenseLeg, incomeLeg *entity.Transaction) error

	// FindByID retrieves a non-deleted transaction by its ID for the given owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with pagination.
	// Soft-deleted transactions are excluded.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*TransactionListResult, error)

	// FindRecent retrieves the owner's most recent transactions by date.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// GetAccountTotals sums income and expense amounts of non-deleted
	// transactions on the given account.
	GetAccountTotals(ctx context.Context, userID, accountID uuid.UUID) (*AccountTotals, error)

	// GetTotals calculates income/expense/net totals for transactions
	// matching the filter.
	GetTotals(ctx context.Context, filter TransactionFilter) (*TransactionTotals, error)

	// GetScopedExpenseTotal sums non-deleted expense amounts within the scope
	// and counts the matching transactions.
	GetScopedExpenseTotal(ctx context.Context, scope ExpenseScope) (*ScopedExpenseTotal, error)

	// GetCategoryTotals sums non-deleted expense amounts per category within
	// the date range, ordered by total descending.
	GetCategoryTotals(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CategoryTotal, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// SoftDelete marks a transaction as deleted without removing it.
	SoftDelete(ctx context.Context, id, userID uuid.UUID) error
}
