// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a ledger record.
//
// TransactionTypeTransfer only exists at the API boundary: a transfer is
// materialized as two linked records, an expense leg on the source account
// and an income leg on the destination account. Persisted rows carry only
// income or expense.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction represents one record in a user's ledger. Amounts are always
// stored positive; the sign is implied by Type.
type Transaction struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	AccountID         uuid.UUID
	Amount            decimal.Decimal
	Type              TransactionType
	Category          string
	SubCategory       string
	Description       string
	Notes             string
	Date              time.Time // User-supplied, may differ from CreatedAt
	TransferAccountID *uuid.UUID
	IsDeleted         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	accountID uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	subCategory string,
	description string,
	notes string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		Amount:      amount,
		Type:        transactionType,
		Category:    category,
		SubCategory: subCategory,
		Description: description,
		Notes:       notes,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewTransferPair builds the two linked legs of a transfer of amount from
// sourceAccountID to destAccountID. The legs reference each other through
// TransferAccountID and must be persisted atomically.
func NewTransferPair(
	userID uuid.UUID,
	sourceAccountID uuid.UUID,
	destAccountID uuid.UUID,
	amount decimal.Decimal,
	category string,
	subCategory string,
	description string,
	notes string,
	date time.Time,
) (expenseLeg, incomeLeg *Transaction) {
	expenseLeg = NewTransaction(userID, sourceAccountID, amount, TransactionTypeExpense, category, subCategory, description, notes, date)
	incomeLeg = NewTransaction(userID, destAccountID, amount, TransactionTypeIncome, category, subCategory, description, notes, date)
	expenseLeg.TransferAccountID = &destAccountID
	incomeLeg.TransferAccountID = &sourceAccountID
	return expenseLeg, incomeLeg
}

// CategoryTotal represents spending aggregated by category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}
