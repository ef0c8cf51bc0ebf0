// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paisatrack/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name           string           `gorm:"type:varchar(100);not null"`
	Type           string           `gorm:"type:varchar(20);not null;index"`
	SubType        string           `gorm:"type:varchar(100)"`
	Balance        decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	InitialBalance decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	CreditLimit    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	PaymentDueDay  *int             `gorm:"type:integer"`
	UPIHandle      string           `gorm:"type:varchar(100)"`
	IsActive       bool             `gorm:"default:true"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`
	DeletedAt      gorm.DeletedAt   `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Account{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           entity.AccountType(m.Type),
		SubType:        m.SubType,
		Balance:        m.Balance,
		InitialBalance: m.InitialBalance,
		CreditLimit:    m.CreditLimit,
		PaymentDueDay:  m.PaymentDueDay,
		UPIHandle:      m.UPIHandle,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	var deletedAt gorm.DeletedAt
	if account.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *account.DeletedAt, Valid: true}
	}

	return &AccountModel{
		ID:             account.ID,
		UserID:         account.UserID,
		Name:           account.Name,
		Type:           string(account.Type),
		SubType:        account.SubType,
		Balance:        account.Balance,
		InitialBalance: account.InitialBalance,
		CreditLimit:    account.CreditLimit,
		PaymentDueDay:  account.PaymentDueDay,
		UPIHandle:      account.UPIHandle,
		IsActive:       account.IsActive,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
		DeletedAt:      deletedAt,
	}
}
