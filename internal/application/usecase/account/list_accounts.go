package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// AccountOutput represents account information in use case output.
type AccountOutput struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           entity.AccountType
	SubType        string
	Balance        decimal.Decimal
	InitialBalance decimal.Decimal
	CreditLimit    *decimal.Decimal
	PaymentDueDay  *int
	UPIHandle      string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func toAccountOutput(account *entity.Account) *AccountOutput {
	return &AccountOutput{
		ID:             account.ID,
		UserID:         account.UserID,
		Name:           account.Name,
		Type:           account.Type,
		SubType:        account.SubType,
		Balance:        account.Balance,
		InitialBalance: account.InitialBalance,
		CreditLimit:    account.CreditLimit,
		PaymentDueDay:  account.PaymentDueDay,
		UPIHandle:      account.UPIHandle,
		IsActive:       account.IsActive,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	UserID  uuid.UUID
	Type    *entity.AccountType
	SubType string
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*AccountOutput
	// TotalBalance sums balances across non-credit-card accounts.
	// Credit card balances track debt, not available money.
	TotalBalance decimal.Decimal
}

// ListAccountsUseCase handles listing a user's accounts.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves the user's accounts with an aggregate balance.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByFilter(ctx, adapter.AccountFilter{
		UserID:  input.UserID,
		Type:    input.Type,
		SubType: input.SubType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	output := &ListAccountsOutput{
		Accounts:     make([]*AccountOutput, 0, len(accounts)),
		TotalBalance: decimal.Zero,
	}
	for _, account := range accounts {
		output.Accounts = append(output.Accounts, toAccountOutput(account))
		if account.Type != entity.AccountTypeCreditCard {
			output.TotalBalance = output.TotalBalance.Add(account.Balance)
		}
	}

	return output, nil
}
