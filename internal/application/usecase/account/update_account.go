package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account updates. Nil pointer
// fields are left untouched. The account type and initial balance are not
// updatable here; balance corrections go through the balance override.
type UpdateAccountInput struct {
	UserID        uuid.UUID
	AccountID     uuid.UUID
	Name          *string
	SubType       *string
	CreditLimit   *decimal.Decimal
	PaymentDueDay *int
	UPIHandle     *string
	IsActive      *bool
}

// UpdateAccountOutput represents the output of an account update.
type UpdateAccountOutput struct {
	Account *AccountOutput
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if input.Name != nil {
		if len(*input.Name) < MinAccountNameLength {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameTooShort,
				fmt.Sprintf("account name must have at least %d characters", MinAccountNameLength),
				domainerror.ErrAccountNameTooShort,
			)
		}
		account.Name = *input.Name
	}
	if input.SubType != nil {
		account.SubType = *input.SubType
	}
	if input.CreditLimit != nil {
		account.CreditLimit = input.CreditLimit
	}
	if input.PaymentDueDay != nil {
		if *input.PaymentDueDay < 1 || *input.PaymentDueDay > 31 {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidPaymentDueDay,
				"paymentDueDay must be between 1 and 31",
				domainerror.ErrInvalidPaymentDueDay,
			)
		}
		account.PaymentDueDay = input.PaymentDueDay
	}
	if input.UPIHandle != nil {
		account.UPIHandle = *input.UPIHandle
	}
	if input.IsActive != nil {
		account.IsActive = *input.IsActive
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: toAccountOutput(account)}, nil
}
