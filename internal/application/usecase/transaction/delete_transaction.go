// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/application/usecase/account"
	"github.com/paisatrack/backend/internal/application/usecase/budget"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic. Deletion is a
// soft delete: the row stays but stops counting toward balances and budget
// progress, so both shrink accordingly.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	reconciler      *account.BalanceReconciler
	budgetRefresh   *budget.RefreshOnTransactionUseCase
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	reconciler *account.BalanceReconciler,
	budgetRefresh *budget.RefreshOnTransactionUseCase,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		reconciler:      reconciler,
		budgetRefresh:   budgetRefresh,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if err := uc.transactionRepo.SoftDelete(ctx, input.TransactionID, input.UserID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	reconcileAfterWrite(ctx, uc.reconciler, input.UserID, transaction.AccountID)

	uc.budgetRefresh.Execute(ctx, budget.RefreshOnTransactionInput{Transaction: transaction})

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
