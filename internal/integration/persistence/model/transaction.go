// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paisatrack/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Soft deletion uses gorm's DeletedAt so deleted rows drop out of every
// query by default; balance and budget math relies on that.
type TransactionModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type              string          `gorm:"type:varchar(10);not null;index"`
	Category          string          `gorm:"type:varchar(100);not null;index"`
	SubCategory       string          `gorm:"type:varchar(100)"`
	Description       string          `gorm:"type:varchar(255)"`
	Notes             string          `gorm:"type:text"`
	Date              time.Time       `gorm:"not null;index"`
	TransferAccountID *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
	DeletedAt         gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID"`
	User    *UserModel    `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                m.ID,
		UserID:            m.UserID,
		AccountID:         m.AccountID,
		Amount:            m.Amount,
		Type:              entity.TransactionType(m.Type),
		Category:          m.Category,
		SubCategory:       m.SubCategory,
		Description:       m.Description,
		Notes:             m.Notes,
		Date:              m.Date,
		TransferAccountID: m.TransferAccountID,
		IsDeleted:         m.DeletedAt.Valid,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                transaction.ID,
		UserID:            transaction.UserID,
		AccountID:         transaction.AccountID,
		Amount:            transaction.Amount,
		Type:              string(transaction.Type),
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
