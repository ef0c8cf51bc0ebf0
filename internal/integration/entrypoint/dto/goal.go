package dto

import (
	"time"

	"github.com/paisatrack/backend/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	Description  string  `json:"description,omitempty"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	TargetDate   *string `json:"target_date,omitempty"`
	Category     string  `json:"category,omitempty"`
	Priority     string  `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name         *string  `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Description  *string  `json:"description,omitempty"`
	TargetAmount *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	TargetDate   *string  `json:"target_date,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Priority     *string  `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
}

// ContributeGoalRequest represents the request body for a goal contribution.
type ContributeGoalRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	AccountID *string `json:"account_id,omitempty" binding:"omitempty,uuid"`
}

// GoalContributionResponse represents one contribution in API responses.
type GoalContributionResponse struct {
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	AccountID *string `json:"account_id,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                 string                     `json:"id"`
	UserID             string                     `json:"user_id"`
	Name               string                     `json:"name"`
	Description        string                     `json:"description,omitempty"`
	TargetAmount       float64                    `json:"target_amount"`
	CurrentAmount      float64                    `json:"current_amount"`
	ProgressPercentage float64                    `json:"progress_percentage"`
	TargetDate         *string                    `json:"target_date,omitempty"`
	DaysRemaining      *int                       `json:"days_remaining,omitempty"`
	Category           string                     `json:"category,omitempty"`
	Priority           string                     `json:"priority"`
	Contributions      []GoalContributionResponse `json:"contributions"`
	IsCompleted        bool                       `json:"is_completed"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}

// GoalSummaryResponse represents aggregate counts across a user's goals.
type GoalSummaryResponse struct {
	TotalGoals     int `json:"total_goals"`
	CompletedGoals int `json:"completed_goals"`
	ActiveGoals    int `json:"active_goals"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals   []GoalResponse      `json:"goals"`
	Summary GoalSummaryResponse `json:"summary"`
}

// ContributeGoalResponse represents the response for a goal contribution.
type ContributeGoalResponse struct {
	Goal          GoalResponse `json:"goal"`
	JustCompleted bool         `json:"just_completed"`
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	response := GoalResponse{
		ID:                 output.ID.String(),
		UserID:             output.UserID.String(),
		Name:               output.Name,
		Description:        output.Description,
		TargetAmount:       output.TargetAmount,
		CurrentAmount:      output.CurrentAmount,
		ProgressPercentage: output.ProgressPercentage,
		DaysRemaining:      output.DaysRemaining,
		Category:           output.Category,
		Priority:           string(output.Priority),
		Contributions:      make([]GoalContributionResponse, len(output.Contributions)),
		IsCompleted:        output.IsCompleted,
		CreatedAt:          output.CreatedAt,
		UpdatedAt:          output.UpdatedAt,
	}

	if output.TargetDate != nil {
		dateStr := output.TargetDate.Format("2006-01-02")
		response.TargetDate = &dateStr
	}

	for i, contribution := range output.Contributions {
		cr := GoalContributionResponse{
			Amount: contribution.Amount,
			Date:   contribution.Date.Format("2006-01-02"),
		}
		if contribution.AccountID != nil {
			accountID := contribution.AccountID.String()
			cr.AccountID = &accountID
		}
		response.Contributions[i] = cr
	}

	return response
}

// ToGoalListResponse converts a ListGoalsOutput to GoalListResponse.
func ToGoalListResponse(output *goal.ListGoalsOutput) GoalListResponse {
	goals := make([]GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = ToGoalResponse(g)
	}

	return GoalListResponse{
		Goals: goals,
		Summary: GoalSummaryResponse{
			TotalGoals:     output.Summary.TotalGoals,
			CompletedGoals: output.Summary.CompletedGoals,
			ActiveGoals:    output.Summary.ActiveGoals,
		},
	}
}
