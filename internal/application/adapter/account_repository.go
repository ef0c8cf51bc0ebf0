// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/domain/entity"
)

// AccountFilter defines filter options for listing accounts.
type AccountFilter struct {
	UserID  uuid.UUID
	Type    *entity.AccountType
	SubType string
}

// AccountRepository defines the interface for account persistence operations.
// Lookups are always scoped by owner; an ID belonging to another user
// behaves exactly like a missing one.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID for the given owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error)

	// FindByFilter retrieves all non-deleted accounts matching the filter.
	FindByFilter(ctx context.Context, filter AccountFilter) ([]*entity.Account, error)

	// FindActiveByTypes retrieves the owner's active accounts of the given types.
	FindActiveByTypes(ctx context.Context, userID uuid.UUID, types []entity.AccountType) ([]*entity.Account, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error

	// UpdateBalances persists a recomputed balance and initial balance pair.
	UpdateBalances(ctx context.Context, id, userID uuid.UUID, balance, initialBalance decimal.Decimal) error

	// SoftDelete marks an account as deleted and inactive without removing it.
	SoftDelete(ctx context.Context, id, userID uuid.UUID) error
}
