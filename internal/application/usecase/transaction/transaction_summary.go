package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
)

// TransactionSummaryInput represents the input for the period summary.
// The range defaults to the current calendar month when unset.
type TransactionSummaryInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// CategoryTotalOutput is one category's spend within the summary range.
type CategoryTotalOutput struct {
	Category string
	Total    decimal.Decimal
}

// TransactionSummaryOutput aggregates income, expense and per-category spend
// over a date range.
type TransactionSummaryOutput struct {
	StartDate      time.Time
	EndDate        time.Time
	IncomeTotal    decimal.Decimal
	ExpenseTotal   decimal.Decimal
	NetTotal       decimal.Decimal
	CategoryTotals []CategoryTotalOutput
}

// TransactionSummaryUseCase computes income/expense totals and a category
// breakdown for a date range.
type TransactionSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewTransactionSummaryUseCase creates a new TransactionSummaryUseCase instance.
func NewTransactionSummaryUseCase(transactionRepo adapter.TransactionRepository) *TransactionSummaryUseCase {
	return &TransactionSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary for the requested range.
func (uc *TransactionSummaryUseCase) Execute(ctx context.Context, input TransactionSummaryInput) (*TransactionSummaryOutput, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}

	totals, err := uc.transactionRepo.GetTotals(ctx, adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute totals: %w", err)
	}

	categoryTotals, err := uc.transactionRepo.GetCategoryTotals(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load category totals: %w", err)
	}

	output := &TransactionSummaryOutput{
		StartDate:      start,
		EndDate:        end,
		IncomeTotal:    totals.IncomeTotal,
		ExpenseTotal:   totals.ExpenseTotal,
		NetTotal:       totals.NetTotal,
		CategoryTotals: make([]CategoryTotalOutput, len(categoryTotals)),
	}
	for i, total := range categoryTotals {
		output.CategoryTotals[i] = CategoryTotalOutput{
			Category: total.Category,
			Total:    total.Total,
		}
	}

	return output, nil
}
