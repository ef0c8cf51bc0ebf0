package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// recentTransactionLimit is how many latest transactions accompany an
// account detail view.
const recentTransactionLimit = 10

// GetAccountInput represents the input for fetching one account.
type GetAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// GetAccountOutput represents the output of fetching one account.
type GetAccountOutput struct {
	Account            *AccountOutput
	RecentTransactions []*entity.Transaction
}

// GetAccountUseCase handles fetching a single account with its latest activity.
type GetAccountUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the account and its most recent transactions.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	result, err := uc.transactionRepo.FindByFilter(ctx,
		adapter.TransactionFilter{
			UserID:     input.UserID,
			AccountID:  &input.AccountID,
			SortBy:     "date",
			Descending: true,
		},
		adapter.TransactionPagination{Page: 1, Limit: recentTransactionLimit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load account transactions: %w", err)
	}

	return &GetAccountOutput{
		Account:            toAccountOutput(account),
		RecentTransactions: result.Transactions,
	}, nil
}
