package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountUseCase handles soft deletion of accounts. The account's
// transactions stay in the ledger so historic summaries keep adding up.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if _, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID); err != nil {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if err := uc.accountRepo.SoftDelete(ctx, input.AccountID, input.UserID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
