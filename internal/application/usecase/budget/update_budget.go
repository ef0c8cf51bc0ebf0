package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget updates. Nil pointer
// fields are left untouched. Changing the type or period re-anchors the
// current window on the next progress computation.
type UpdateBudgetInput struct {
	UserID          uuid.UUID
	BudgetID        uuid.UUID
	Name            *string
	Description     *string
	Type            *entity.BudgetType
	Scope           *entity.BudgetScope
	Amount          *decimal.Decimal
	Period          *entity.BudgetPeriod
	AlertThresholds *entity.AlertThresholds
	Rollover        *entity.RolloverPolicy
	IsActive        *bool
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *BudgetOutput
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	engine     *ProgressEngine
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, engine *ProgressEngine) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		engine:     engine,
	}
}

// Execute performs the budget update and returns the budget with progress
// recomputed against the new definition.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if input.Name != nil {
		budget.Name = *input.Name
	}
	if input.Description != nil {
		budget.Description = *input.Description
	}
	if input.Type != nil {
		budget.Type = *input.Type
	}
	if input.Scope != nil {
		budget.Scope = *input.Scope
	}
	if input.Amount != nil {
		budget.Amount = *input.Amount
	}
	if input.Period != nil {
		budget.Period = *input.Period
	}
	if input.AlertThresholds != nil {
		budget.AlertThresholds = *input.AlertThresholds
	}
	if input.Rollover != nil {
		budget.Rollover = *input.Rollover
	}
	if input.IsActive != nil {
		budget.IsActive = *input.IsActive
	}

	if err := validateDefinition(budget.Name, budget.Type, budget.Period, budget.Amount, budget.Scope); err != nil {
		return nil, err
	}

	budget.UpdatedAt = time.Now().UTC()

	progress, err := uc.engine.Compute(ctx, budget, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to recompute budget progress: %w", err)
	}
	budget.CurrentPeriod = progress

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: toBudgetOutput(budget, progress)}, nil
}
