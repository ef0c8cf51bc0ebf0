package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// CompleteGoalInput represents the input for manually completing a goal.
type CompleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// CompleteGoalOutput represents the output of manual goal completion.
type CompleteGoalOutput struct {
	Goal *GoalOutput
}

// CompleteGoalUseCase marks a goal as completed regardless of its
// current amount. Completing an already-completed goal is a no-op.
type CompleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCompleteGoalUseCase creates a new CompleteGoalUseCase instance.
func NewCompleteGoalUseCase(goalRepo adapter.GoalRepository) *CompleteGoalUseCase {
	return &CompleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute marks the goal as completed.
func (uc *CompleteGoalUseCase) Execute(ctx context.Context, input CompleteGoalInput) (*CompleteGoalOutput, error) {
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

	if !goal.IsCompleted {
		goal.IsCompleted = true
		goal.UpdatedAt = time.Now().UTC()

		if err := uc.goalRepo.Update(ctx, goal); err != nil {
			return nil, fmt.Errorf("failed to complete goal: %w", err)
		}
	}

	return &CompleteGoalOutput{Goal: toGoalOutput(goal)}, nil
}
