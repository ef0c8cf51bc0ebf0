// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil pointer fields
// are left untouched. Raising the target past the current amount reopens a
// completed goal.
type UpdateGoalInput struct {
	GoalID       uuid.UUID
	UserID       uuid.UUID
	Name         *string
	Description  *string
	TargetAmount *float64
	TargetDate   *time.Time
	Category     *string
	Priority     *entity.GoalPriority
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *GoalOutput
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if input.Name != nil {
		if len(*input.Name) < MinGoalNameLength {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNameTooShort,
				fmt.Sprintf("goal name must have at least %d characters", MinGoalNameLength),
				domainerror.ErrGoalNameTooShort,
			)
		}
		goal.Name = *input.Name
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.TargetAmount != nil {
		if *input.TargetAmount <= 0 {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		goal.TargetAmount = *input.TargetAmount
		goal.IsCompleted = goal.CurrentAmount >= goal.TargetAmount
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}
	if input.Category != nil {
		goal.Category = *input.Category
	}
	if input.Priority != nil {
		if !isValidPriority(*input.Priority) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPriority,
				"priority must be 'high', 'medium' or 'low'",
				domainerror.ErrInvalidGoalPriority,
			)
		}
		goal.Priority = *input.Priority
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: toGoalOutput(goal)}, nil
}
