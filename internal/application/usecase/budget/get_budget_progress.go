package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// GetBudgetProgressInput represents the input for fetching one budget's progress.
type GetBudgetProgressInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// GetBudgetProgressOutput represents the output of a budget progress query.
type GetBudgetProgressOutput struct {
	Budget *BudgetOutput
}

// GetBudgetProgressUseCase computes live progress for a single budget.
type GetBudgetProgressUseCase struct {
	budgetRepo adapter.BudgetRepository
	engine     *ProgressEngine
}

// NewGetBudgetProgressUseCase creates a new GetBudgetProgressUseCase instance.
func NewGetBudgetProgressUseCase(budgetRepo adapter.BudgetRepository, engine *ProgressEngine) *GetBudgetProgressUseCase {
	return &GetBudgetProgressUseCase{
		budgetRepo: budgetRepo,
		engine:     engine,
	}
}

// Execute retrieves the budget and recomputes its progress from the ledger.
func (uc *GetBudgetProgressUseCase) Execute(ctx context.Context, input GetBudgetProgressInput) (*GetBudgetProgressOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID, input.UserID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	progress, err := uc.engine.Compute(ctx, budget, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to compute budget progress: %w", err)
	}

	return &GetBudgetProgressOutput{Budget: toBudgetOutput(budget, progress)}, nil
}
