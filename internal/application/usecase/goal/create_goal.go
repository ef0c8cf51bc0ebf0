// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// MinGoalNameLength is the minimum allowed length for goal names.
const MinGoalNameLength = 2

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	Description  string
	TargetAmount float64
	TargetDate   *time.Time
	Category     string
	Priority     *entity.GoalPriority // Optional, defaults to medium
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *GoalOutput
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if len(input.Name) < MinGoalNameLength {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNameTooShort,
			fmt.Sprintf("goal name must have at least %d characters", MinGoalNameLength),
			domainerror.ErrGoalNameTooShort,
		)
	}

	if input.TargetAmount <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	priority := entity.GoalPriorityMedium
	if input.Priority != nil {
		if !isValidPriority(*input.Priority) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalPriority,
				"priority must be 'high', 'medium' or 'low'",
				domainerror.ErrInvalidGoalPriority,
			)
		}
		priority = *input.Priority
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Name,
		input.Description,
		input.TargetAmount,
		input.TargetDate,
		input.Category,
		priority,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{Goal: toGoalOutput(goal)}, nil
}

// isValidPriority validates the goal priority.
func isValidPriority(priority entity.GoalPriority) bool {
	return priority == entity.GoalPriorityHigh ||
		priority == entity.GoalPriorityMedium ||
		priority == entity.GoalPriorityLow
}
