package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// ContributeGoalInput represents the input for a goal contribution.
type ContributeGoalInput struct {
	GoalID    uuid.UUID
	UserID    uuid.UUID
	Amount    float64
	AccountID *uuid.UUID // Optional funding account
}

// ContributeGoalOutput represents the output of a goal contribution.
type ContributeGoalOutput struct {
	Goal *GoalOutput
	// JustCompleted is true when this contribution pushed the goal over
	// its target.
	JustCompleted bool
}

// ContributeGoalUseCase records a contribution toward a savings goal. The
// contribution history is append-only; contributions do not touch the
// transaction ledger or account balances.
type ContributeGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewContributeGoalUseCase creates a new ContributeGoalUseCase instance.
func NewContributeGoalUseCase(goalRepo adapter.GoalRepository) *ContributeGoalUseCase {
	return &ContributeGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute records the contribution.
func (uc *ContributeGoalUseCase) Execute(ctx context.Context, input ContributeGoalInput) (*ContributeGoalOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidContribution,
			"contribution amount must be greater than zero",
			domainerror.ErrInvalidContribution,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	wasCompleted := goal.IsCompleted
	goal.Contribute(input.Amount, input.AccountID)

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save contribution: %w", err)
	}

	return &ContributeGoalOutput{
		Goal:          toGoalOutput(goal),
		JustCompleted: goal.IsCompleted && !wasCompleted,
	}, nil
}
