package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// BudgetOutput represents budget information in use case output, with a
// freshly computed progress snapshot.
type BudgetOutput struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Description     string
	Type            entity.BudgetType
	Scope           entity.BudgetScope
	Amount          decimal.Decimal
	Period          entity.BudgetPeriod
	AlertThresholds entity.AlertThresholds
	Rollover        entity.RolloverPolicy
	Progress        *entity.BudgetPeriodProgress
	Status          entity.BudgetStatus
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toBudgetOutput(budget *entity.Budget, progress *entity.BudgetPeriodProgress) *BudgetOutput {
	output := &BudgetOutput{
		ID:              budget.ID,
		UserID:          budget.UserID,
		Name:            budget.Name,
		Description:     budget.Description,
		Type:            budget.Type,
		Scope:           budget.Scope,
		Amount:          budget.Amount,
		Period:          budget.Period,
		AlertThresholds: budget.AlertThresholds,
		Rollover:        budget.Rollover,
		Progress:        progress,
		Status:          entity.BudgetStatusOnTrack,
		IsActive:        budget.IsActive,
		CreatedAt:       budget.CreatedAt,
		UpdatedAt:       budget.UpdatedAt,
	}
	if progress != nil {
		output.Status = entity.StatusFor(progress.ProgressPercentage)
	}
	return output
}

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID     uuid.UUID
	Type       *entity.BudgetType
	Period     *entity.BudgetPeriod
	Status     *entity.BudgetStatus
	ActiveOnly bool
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetOutput
}

// ListBudgetsUseCase handles listing budgets with live progress. Progress is
// recomputed from the ledger on every call rather than read from the memo.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	engine     *ProgressEngine
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, engine *ProgressEngine) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		engine:     engine,
	}
}

// Execute retrieves the user's budgets, computes progress for each, and
// applies the status filter after computation.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByFilter(ctx, adapter.BudgetFilter{
		UserID:     input.UserID,
		Type:       input.Type,
		Period:     input.Period,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	now := time.Now()
	output := &ListBudgetsOutput{Budgets: make([]*BudgetOutput, 0, len(budgets))}
	for _, budget := range budgets {
		progress, err := uc.engine.Compute(ctx, budget, now)
		if err != nil {
			return nil, fmt.Errorf("failed to compute progress for budget %s: %w", budget.ID, err)
		}

		budgetOutput := toBudgetOutput(budget, progress)
		if input.Status != nil && budgetOutput.Status != *input.Status {
			continue
		}
		output.Budgets = append(output.Budgets, budgetOutput)
	}

	return output, nil
}
