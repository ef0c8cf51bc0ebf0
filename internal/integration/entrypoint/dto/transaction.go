// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/paisatrack/backend/internal/application/usecase/transaction"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID         string  `json:"account_id" binding:"required,uuid"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	Type              string  `json:"type" binding:"required,oneof=income expense transfer"`
	Category          string  `json:"category" binding:"required"`
	SubCategory       string  `json:"sub_category,omitempty"`
	Description       string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Notes             string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Date              string  `json:"date" binding:"required"`
	TransferAccountID *string `json:"transfer_account_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Category    *string  `json:"category,omitempty"`
	SubCategory *string  `json:"sub_category,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Notes       *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Date        *string  `json:"date,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	AccountID         string    `json:"account_id"`
	Amount            string    `json:"amount"`
	Type              string    `json:"type"`
	Category          string    `json:"category"`
	SubCategory       string    `json:"sub_category,omitempty"`
	Description       string    `json:"description"`
	Notes             string    `json:"notes,omitempty"`
	Date              string    `json:"date"`
	TransferAccountID *string   `json:"transfer_account_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// CreateTransactionResponse represents the response for transaction creation.
// TransferLeg carries the income side when the request was a transfer.
type CreateTransactionResponse struct {
	Transaction TransactionResponse  `json:"transaction"`
	TransferLeg *TransactionResponse `json:"transfer_leg,omitempty"`
}

// CategoryTotalResponse is one category's spend in the summary response.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// TransactionSummaryResponse represents the period summary response.
type TransactionSummaryResponse struct {
	StartDate      string                  `json:"start_date"`
	EndDate        string                  `json:"end_date"`
	IncomeTotal    string                  `json:"income_total"`
	ExpenseTotal   string                  `json:"expense_total"`
	NetTotal       string                  `json:"net_total"`
	CategoryTotals []CategoryTotalResponse `json:"category_totals"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		AccountID:   txn.AccountID.String(),
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		Category:    txn.Category,
		SubCategory: txn.SubCategory,
		Description: txn.Description,
		Notes:       txn.Notes,
		Date:        txn.Date.Format("2006-01-02"),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.TransferAccountID != nil {
		transferID := txn.TransferAccountID.String()
		response.TransferAccountID = &transferID
	}

	return response
}

// ToTransactionResponseFromEntity converts a domain Transaction entity
// directly, for views that embed raw ledger rows.
func ToTransactionResponseFromEntity(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		AccountID:   txn.AccountID.String(),
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		Category:    txn.Category,
		SubCategory: txn.SubCategory,
		Description: txn.Description,
		Notes:       txn.Notes,
		Date:        txn.Date.Format("2006-01-02"),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.TransferAccountID != nil {
		transferID := txn.TransferAccountID.String()
		response.TransferAccountID = &transferID
	}

	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to TransactionListResponse.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}

// ToTransactionSummaryResponse converts a TransactionSummaryOutput to its DTO.
func ToTransactionSummaryResponse(output *transaction.TransactionSummaryOutput) TransactionSummaryResponse {
	categoryTotals := make([]CategoryTotalResponse, len(output.CategoryTotals))
	for i, ct := range output.CategoryTotals {
		categoryTotals[i] = CategoryTotalResponse{
			Category: ct.Category,
			Total:    ct.Total.String(),
		}
	}

	return TransactionSummaryResponse{
		StartDate:      output.StartDate.Format("2006-01-02"),
		EndDate:        output.EndDate.Format("2006-01-02"),
		IncomeTotal:    output.IncomeTotal.String(),
		ExpenseTotal:   output.ExpenseTotal.String(),
		NetTotal:       output.NetTotal.String(),
		CategoryTotals: categoryTotals,
	}
}
