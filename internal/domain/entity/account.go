// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account a user holds.
type AccountType string

const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeUPI        AccountType = "upi"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeBank       AccountType = "bank"
)

// ValidAccountType reports whether t is one of the supported account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeCash, AccountTypeUPI, AccountTypeCreditCard, AccountTypeBank:
		return true
	}
	return false
}

// Account represents a money holding account in the PaisaTrack system.
//
// Balance is derived state: it always equals InitialBalance plus the sum of
// non-deleted income transactions minus the sum of non-deleted expense
// transactions on the account. It is fully recomputed on every relevant
// mutation rather than maintained incrementally.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Type           AccountType
	SubType        string // Optional provider label (e.g. bank name)
	Balance        decimal.Decimal
	InitialBalance decimal.Decimal
	CreditLimit    *decimal.Decimal // Required for credit_card accounts
	PaymentDueDay  *int             // 1-31, credit cards only
	UPIHandle      string           // Required for upi accounts
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewAccount creates a new Account entity. The opening balance doubles as
// the initial balance so the reconciliation invariant holds from day one.
func NewAccount(
	userID uuid.UUID,
	name string,
	accountType AccountType,
	subType string,
	balance decimal.Decimal,
	creditLimit *decimal.Decimal,
	paymentDueDay *int,
	upiHandle string,
) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Type:           accountType,
		SubType:        subType,
		Balance:        balance,
		InitialBalance: balance,
		CreditLimit:    creditLimit,
		PaymentDueDay:  paymentDueDay,
		UPIHandle:      upiHandle,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
