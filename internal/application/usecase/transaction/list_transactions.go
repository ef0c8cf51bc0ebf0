// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	AccountID  *uuid.UUID
	Type       *entity.TransactionType
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
	SortBy     string
	Descending bool
	Page       int
	Limit      int
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	AccountID         uuid.UUID
	Amount            decimal.Decimal
	Type              entity.TransactionType
	Category          string
	SubCategory       string
	Description       string
	Notes             string
	Date              time.Time
	TransferAccountID *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func toTransactionOutput(transaction *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:                transaction.ID,
		UserID:            transaction.UserID,
		AccountID:         transaction.AccountID,
		Amount:            transaction.Amount,
		Type:              transaction.Type,
		Category:          transaction.Category,
		SubCategory:       transaction.SubCategory,
		Description:       transaction.Description,
		Notes:             transaction.Notes,
		Date:              transaction.Date,
		TransferAccountID: transaction.TransferAccountID,
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
	}
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	// Set default pagination values
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.TransactionFilter{
		UserID:     input.UserID,
		AccountID:  input.AccountID,
		Type:       input.Type,
		Category:   input.Category,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Search:     input.Search,
		SortBy:     input.SortBy,
		Descending: input.Descending,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, adapter.TransactionPagination{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, len(result.Transactions)),
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
	for i, transaction := range result.Transactions {
		output.Transactions[i] = toTransactionOutput(transaction)
	}

	return output, nil
}
