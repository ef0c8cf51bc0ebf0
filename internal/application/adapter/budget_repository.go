package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/domain/entity"
)

// BudgetFilter defines filter options for listing budgets.
type BudgetFilter struct {
	UserID     uuid.UUID
	Type       *entity.BudgetType
	Period     *entity.BudgetPeriod
	ActiveOnly bool
}

// BudgetRepository defines the interface for budget persistence operations.
// All lookups are scoped by owner.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID for the given owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByFilter retrieves budgets matching the filter, newest first.
	FindByFilter(ctx context.Context, filter BudgetFilter) ([]*entity.Budget, error)

	// FindActiveByUser retrieves all of the owner's active budgets.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// UpdateCurrentPeriod persists a freshly computed period snapshot without
	// touching the budget definition.
	UpdateCurrentPeriod(ctx context.Context, id uuid.UUID, progress *entity.BudgetPeriodProgress) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
