package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

const (
	// MaxBudgetNameLength is the maximum allowed length for budget names.
	MaxBudgetNameLength = 50
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID          uuid.UUID
	Name            string
	Description     string
	Type            entity.BudgetType
	Scope           entity.BudgetScope
	Amount          decimal.Decimal
	Period          entity.BudgetPeriod
	AlertThresholds *entity.AlertThresholds
	Rollover        *entity.RolloverPolicy
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *BudgetOutput
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	engine     *ProgressEngine
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, engine *ProgressEngine) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		engine:     engine,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateDefinition(input.Name, input.Type, input.Period, input.Amount, input.Scope); err != nil {
		return nil, err
	}

	budget := entity.NewBudget(
		input.UserID,
		input.Name,
		input.Description,
		input.Type,
		input.Scope,
		input.Amount,
		input.Period,
	)
	if input.AlertThresholds != nil {
		budget.AlertThresholds = *input.AlertThresholds
	}
	if input.Rollover != nil {
		budget.Rollover = *input.Rollover
	}

	// Seed the memo so the row never carries an empty snapshot. Reads
	// recompute anyway, so a failure here only costs freshness.
	progress, err := uc.engine.Compute(ctx, budget, time.Now())
	if err != nil {
		slog.Warn("Failed to compute initial budget progress",
			"userID", input.UserID,
			"budgetName", input.Name,
			"error", err,
		)
	} else {
		budget.CurrentPeriod = progress
	}

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: toBudgetOutput(budget, budget.CurrentPeriod)}, nil
}

// validateDefinition checks the invariants shared by budget creation and
// update.
func validateDefinition(
	name string,
	budgetType entity.BudgetType,
	period entity.BudgetPeriod,
	amount decimal.Decimal,
	scope entity.BudgetScope,
) error {
	if len(name) > MaxBudgetNameLength {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNameTooLong,
			fmt.Sprintf("budget name must not exceed %d characters", MaxBudgetNameLength),
			domainerror.ErrBudgetNameTooLong,
		)
	}
	if !entity.ValidBudgetType(budgetType) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetType,
			"budget type must be 'overall', 'category' or 'account'",
			domainerror.ErrInvalidBudgetType,
		)
	}
	if !entity.ValidBudgetPeriod(period) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"budget period must be 'daily', 'weekly', 'monthly', 'quarterly' or 'yearly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	if budgetType == entity.BudgetTypeCategory && len(scope.Categories) == 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetScope,
			"category budgets need at least one category",
			domainerror.ErrEmptyBudgetScope,
		)
	}
	if budgetType == entity.BudgetTypeAccount && len(scope.AccountIDs) == 0 && len(scope.AccountTypes) == 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetScope,
			"account budgets need at least one account or account type",
			domainerror.ErrEmptyBudgetScope,
		)
	}
	return nil
}
