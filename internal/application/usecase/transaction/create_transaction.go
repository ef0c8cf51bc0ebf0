// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/application/usecase/account"
	"github.com/paisatrack/backend/internal/application/usecase/budget"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// MaxNotesLength is the maximum allowed length for transaction notes.
	MaxNotesLength = 1000
)

// transferCategory labels the two legs of a transfer when the caller does
// not pick a category.
const transferCategory = "Transfer"

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID            uuid.UUID
	AccountID         uuid.UUID
	Amount            decimal.Decimal
	Type              entity.TransactionType
	Category          string
	SubCategory       string
	Description       string
	Notes             string
	Date              time.Time
	TransferAccountID *uuid.UUID // Destination account, transfers only
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
	// TransferLeg is the income side of a transfer, nil otherwise.
	TransferLeg *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
//
// A transfer request is materialized as two linked rows written in one
// database transaction. After any write, the balances of the touched
// accounts are recomputed from the ledger, and budget memos are refreshed
// best-effort.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	reconciler      *account.BalanceReconciler
	budgetRefresh   *budget.RefreshOnTransactionUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	reconciler *account.BalanceReconciler,
	budgetRefresh *budget.RefreshOnTransactionUseCase,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		reconciler:      reconciler,
		budgetRefresh:   budgetRefresh,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateWriteFields(input.Amount, input.Description, input.Notes); err != nil {
		return nil, err
	}

	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income', 'expense' or 'transfer'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Type != entity.TransactionTypeTransfer && input.Category == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}

	// Source account must exist and belong to the caller
	if _, err := uc.accountRepo.FindByID(ctx, input.AccountID, input.UserID); err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if input.Type == entity.TransactionTypeTransfer {
		return uc.executeTransfer(ctx, input)
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.AccountID,
		input.Amount,
		input.Type,
		input.Category,
		input.SubCategory,
		input.Description,
		input.Notes,
		input.Date,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	reconcileAfterWrite(ctx, uc.reconciler, input.UserID, input.AccountID)

	uc.budgetRefresh.Execute(ctx, budget.RefreshOnTransactionInput{Transaction: transaction})

	return &CreateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}

// reconcileAfterWrite recomputes an account balance after a ledger write. The
// write already succeeded at this point, so a reconciliation failure is
// logged and never surfaced to the caller.
func reconcileAfterWrite(ctx context.Context, reconciler *account.BalanceReconciler, userID, accountID uuid.UUID) {
	if _, err := reconciler.Reconcile(ctx, userID, accountID); err != nil {
		slog.Error("Failed to reconcile account balance after transaction write",
			"account_id", accountID,
			"user_id", userID,
			"error", err)
	}
}

// executeTransfer writes both legs of a transfer atomically and reconciles
// both touched accounts.
func (uc *CreateTransactionUseCase) executeTransfer(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.TransferAccountID == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransferAccountRequired,
			"transferAccountId is required for transfers",
			domainerror.ErrTransferAccountRequired,
		)
	}
	if *input.TransferAccountID == input.AccountID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransferSameAccount,
			"cannot transfer to the same account",
			domainerror.ErrTransferSameAccount,
		)
	}
	if _, err := uc.accountRepo.FindByID(ctx, *input.TransferAccountID, input.UserID); err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"transfer account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	category := input.Category
	if category == "" {
		category = transferCategory
	}

	expenseLeg, incomeLeg := entity.NewTransferPair(
		input.UserID,
		input.AccountID,
		*input.TransferAccountID,
		input.Amount,
		category,
		input.SubCategory,
		input.Description,
		input.Notes,
		input.Date,
	)

	if err := uc.transactionRepo.CreateTransferPair(ctx, expenseLeg, incomeLeg); err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	reconcileAfterWrite(ctx, uc.reconciler, input.UserID, input.AccountID)
	reconcileAfterWrite(ctx, uc.reconciler, input.UserID, *input.TransferAccountID)

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(expenseLeg),
		TransferLeg: toTransactionOutput(incomeLeg),
	}, nil
}

// validateWriteFields checks the field constraints shared by creation and update.
func validateWriteFields(amount decimal.Decimal, description, notes string) error {
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if len(notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}
	return nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense ||
		transactionType == entity.TransactionTypeIncome ||
		transactionType == entity.TransactionTypeTransfer
}
