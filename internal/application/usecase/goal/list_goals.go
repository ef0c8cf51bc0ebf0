// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals   []*GoalOutput
	Summary entity.GoalSummary
}

// GoalOutput represents a single goal in the output.
type GoalOutput struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	Description        string
	TargetAmount       float64
	CurrentAmount      float64
	ProgressPercentage float64
	TargetDate         *time.Time
	DaysRemaining      *int
	Category           string
	Priority           entity.GoalPriority
	Contributions      []entity.GoalContribution
	IsCompleted        bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func toGoalOutput(g *entity.Goal) *GoalOutput {
	output := &GoalOutput{
		ID:            g.ID,
		UserID:        g.UserID,
		Name:          g.Name,
		Description:   g.Description,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		Category:      g.Category,
		Priority:      g.Priority,
		Contributions: g.Contributions,
		IsCompleted:   g.IsCompleted,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}

	if g.TargetAmount > 0 {
		output.ProgressPercentage = math.Round(g.CurrentAmount / g.TargetAmount * 100)
	}
	if g.TargetDate != nil {
		days := int(math.Ceil(time.Until(*g.TargetDate).Hours() / 24))
		if days < 0 {
			days = 0
		}
		output.DaysRemaining = &days
	}

	return output
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}

	for _, g := range goals {
		output.Goals = append(output.Goals, toGoalOutput(g))

		output.Summary.TotalGoals++
		if g.IsCompleted {
			output.Summary.CompletedGoals++
		} else {
			output.Summary.ActiveGoals++
		}
	}

	return output, nil
}
