package dto

import (
	"time"

	"github.com/paisatrack/backend/internal/application/usecase/account"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name           string   `json:"name" binding:"required,min=2,max=100"`
	Type           string   `json:"type" binding:"required,oneof=bank cash credit_card wallet"`
	SubType        string   `json:"sub_type,omitempty"`
	InitialBalance float64  `json:"initial_balance"`
	CreditLimit    *float64 `json:"credit_limit,omitempty" binding:"omitempty,gt=0"`
	PaymentDueDay  *int     `json:"payment_due_day,omitempty" binding:"omitempty,min=1,max=31"`
	UPIHandle      string   `json:"upi_handle,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
// Type and initial balance are not updatable through this endpoint.
type UpdateAccountRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	SubType       *string  `json:"sub_type,omitempty"`
	CreditLimit   *float64 `json:"credit_limit,omitempty" binding:"omitempty,gt=0"`
	PaymentDueDay *int     `json:"payment_due_day,omitempty" binding:"omitempty,min=1,max=31"`
	UPIHandle     *string  `json:"upi_handle,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// OverrideBalanceRequest represents the request body for a balance override.
type OverrideBalanceRequest struct {
	Balance float64 `json:"balance"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	SubType        string    `json:"sub_type,omitempty"`
	Balance        string    `json:"balance"`
	InitialBalance string    `json:"initial_balance"`
	CreditLimit    *string   `json:"credit_limit,omitempty"`
	PaymentDueDay  *int      `json:"payment_due_day,omitempty"`
	UPIHandle      string    `json:"upi_handle,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts     []AccountResponse `json:"accounts"`
	TotalBalance string            `json:"total_balance"`
}

// AccountDetailResponse represents the response for a single account view.
type AccountDetailResponse struct {
	Account            AccountResponse       `json:"account"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// ToAccountResponse converts an AccountOutput to an AccountResponse DTO.
func ToAccountResponse(acc *account.AccountOutput) AccountResponse {
	response := AccountResponse{
		ID:             acc.ID.String(),
		UserID:         acc.UserID.String(),
		Name:           acc.Name,
		Type:           string(acc.Type),
		SubType:        acc.SubType,
		Balance:        acc.Balance.String(),
		InitialBalance: acc.InitialBalance.String(),
		PaymentDueDay:  acc.PaymentDueDay,
		UPIHandle:      acc.UPIHandle,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		UpdatedAt:      acc.UpdatedAt,
	}

	if acc.CreditLimit != nil {
		creditLimit := acc.CreditLimit.String()
		response.CreditLimit = &creditLimit
	}

	return response
}

// ToAccountListResponse converts a ListAccountsOutput to AccountListResponse.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	accounts := make([]AccountResponse, len(output.Accounts))
	for i, acc := range output.Accounts {
		accounts[i] = ToAccountResponse(acc)
	}

	return AccountListResponse{
		Accounts:     accounts,
		TotalBalance: output.TotalBalance.String(),
	}
}
