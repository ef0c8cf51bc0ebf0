// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

const (
	// MinAccountNameLength is the minimum allowed length for account names.
	MinAccountNameLength = 2
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID        uuid.UUID
	Name          string
	Type          entity.AccountType
	SubType       string
	Balance       decimal.Decimal
	CreditLimit   *decimal.Decimal
	PaymentDueDay *int
	UPIHandle     string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *AccountOutput
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if len(input.Name) < MinAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooShort,
			fmt.Sprintf("account name must have at least %d characters", MinAccountNameLength),
			domainerror.ErrAccountNameTooShort,
		)
	}

	if !entity.ValidAccountType(input.Type) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			"account type must be 'cash', 'upi', 'credit_card' or 'bank'",
			domainerror.ErrInvalidAccountType,
		)
	}

	// Type-specific required fields
	if input.Type == entity.AccountTypeUPI && input.UPIHandle == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeUPIHandleRequired,
			"upiHandle is required for upi accounts",
			domainerror.ErrUPIHandleRequired,
		)
	}
	if input.Type == entity.AccountTypeCreditCard && input.CreditLimit == nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeCreditLimitRequired,
			"creditLimit is required for credit_card accounts",
			domainerror.ErrCreditLimitRequired,
		)
	}
	if input.PaymentDueDay != nil && (*input.PaymentDueDay < 1 || *input.PaymentDueDay > 31) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidPaymentDueDay,
			"paymentDueDay must be between 1 and 31",
			domainerror.ErrInvalidPaymentDueDay,
		)
	}

	account := entity.NewAccount(
		input.UserID,
		input.Name,
		input.Type,
		input.SubType,
		input.Balance,
		input.CreditLimit,
		input.PaymentDueDay,
		input.UPIHandle,
	)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: toAccountOutput(account)}, nil
}
