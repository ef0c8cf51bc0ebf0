package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
)

const defaultRecentLimit = 10

// RecentTransactionsInput represents the input for the recent activity feed.
type RecentTransactionsInput struct {
	UserID uuid.UUID
	Limit  int
}

// RecentTransactionsOutput represents the output of the recent activity feed.
type RecentTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// RecentTransactionsUseCase returns the user's latest ledger activity.
type RecentTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewRecentTransactionsUseCase creates a new RecentTransactionsUseCase instance.
func NewRecentTransactionsUseCase(transactionRepo adapter.TransactionRepository) *RecentTransactionsUseCase {
	return &RecentTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the most recent transactions by date.
func (uc *RecentTransactionsUseCase) Execute(ctx context.Context, input RecentTransactionsInput) (*RecentTransactionsOutput, error) {
	limit := input.Limit
	if limit < 1 {
		limit = defaultRecentLimit
	}
	if limit > 50 {
		limit = 50
	}

	transactions, err := uc.transactionRepo.FindRecent(ctx, input.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	output := &RecentTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(transactions)),
	}
	for i, transaction := range transactions {
		output.Transactions[i] = toTransactionOutput(transaction)
	}

	return output, nil
}
