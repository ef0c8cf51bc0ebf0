package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// OverrideBalanceInput represents the input for a manual balance correction.
type OverrideBalanceInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Balance   decimal.Decimal
}

// OverrideBalanceOutput represents the output of a balance override.
type OverrideBalanceOutput struct {
	Account *AccountOutput
}

// OverrideBalanceUseCase sets an account balance to a user-supplied figure.
// Instead of storing the figure directly, the initial balance is back-solved
// so the ledger still reconciles to exactly the requested balance.
type OverrideBalanceUseCase struct {
	accountRepo adapter.AccountRepository
	reconciler  *BalanceReconciler
}

// NewOverrideBalanceUseCase creates a new OverrideBalanceUseCase instance.
func NewOverrideBalanceUseCase(
	accountRepo adapter.AccountRepository,
	reconciler *BalanceReconciler,
) *OverrideBalanceUseCase {
	return &OverrideBalanceUseCase{
		accountRepo: accountRepo,
		reconciler:  reconciler,
	}
}

// Execute performs the balance override.
func (uc *OverrideBalanceUseCase) Execute(ctx context.Context, input OverrideBalanceInput) (*OverrideBalanceOutput, error) {
	if _, err := uc.reconciler.Override(ctx, input.UserID, input.AccountID, input.Balance); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, err
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &OverrideBalanceOutput{Account: toAccountOutput(account)}, nil
}
