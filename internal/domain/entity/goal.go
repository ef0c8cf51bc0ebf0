// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GoalPriority represents the priority of a savings goal.
type GoalPriority string

const (
	GoalPriorityHigh   GoalPriority = "high"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityLow    GoalPriority = "low"
)

// GoalContribution is one entry in a goal's append-only contribution history.
type GoalContribution struct {
	Amount    float64
	Date      time.Time
	AccountID *uuid.UUID // Optional funding account
}

// Goal represents a savings goal accumulated through discrete contributions.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Description   string
	TargetAmount  float64
	CurrentAmount float64
	TargetDate    *time.Time
	Category      string
	Priority      GoalPriority
	Contributions []GoalContribution
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(userID uuid.UUID, name, description string, targetAmount float64, targetDate *time.Time, category string, priority GoalPriority) *Goal {
	now := time.Now().UTC()

	if priority == "" {
		priority = GoalPriorityMedium
	}

	return &Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Description:  description,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		Category:     category,
		Priority:     priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Contribute records a contribution and marks the goal completed once the
// accumulated amount reaches the target.
func (g *Goal) Contribute(amount float64, accountID *uuid.UUID) {
	g.CurrentAmount += amount
	g.Contributions = append(g.Contributions, GoalContribution{
		Amount:    amount,
		Date:      time.Now().UTC(),
		AccountID: accountID,
	})
	if g.CurrentAmount >= g.TargetAmount {
		g.IsCompleted = true
	}
	g.UpdatedAt = time.Now().UTC()
}

// GoalSummary represents the completed/active goal counts for a user.
type GoalSummary struct {
	TotalGoals     int
	CompletedGoals int
	ActiveGoals    int
}
