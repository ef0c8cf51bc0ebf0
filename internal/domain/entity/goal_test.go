package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewGoal_DefaultPriority(t *testing.T) {
	goal := NewGoal(uuid.New(), "Emergency Fund", "", 50000, nil, "savings", "")

	if goal.Priority != GoalPriorityMedium {
		t.Errorf("expected default priority %s, got %s", GoalPriorityMedium, goal.Priority)
	}

	if goal.IsCompleted {
		t.Error("expected new goal to not be completed")
	}

	if goal.CurrentAmount != 0 {
		t.Errorf("expected zero current amount, got %v", goal.CurrentAmount)
	}
}

func TestGoal_Contribute(t *testing.T) {
	goal := NewGoal(uuid.New(), "Emergency Fund", "", 50000, nil, "savings", GoalPriorityHigh)

	t.Run("contribution accumulates and records history", func(t *testing.T) {
		accountID := uuid.New()
		goal.Contribute(20000, &accountID)

		if goal.CurrentAmount != 20000 {
			t.Errorf("expected current amount 20000, got %v", goal.CurrentAmount)
		}

		if goal.IsCompleted {
			t.Error("expected goal to still be incomplete")
		}

		if len(goal.Contributions) != 1 {
			t.Fatalf("expected 1 contribution, got %d", len(goal.Contributions))
		}

		if goal.Contributions[0].Amount != 20000 {
			t.Errorf("expected recorded amount 20000, got %v", goal.Contributions[0].Amount)
		}

		if goal.Contributions[0].AccountID == nil || *goal.Contributions[0].AccountID != accountID {
			t.Error("expected funding account to be recorded")
		}
	})

	t.Run("reaching the target exactly completes the goal", func(t *testing.T) {
		goal.Contribute(30000, nil)

		if goal.CurrentAmount != 50000 {
			t.Errorf("expected current amount 50000, got %v", goal.CurrentAmount)
		}

		if !goal.IsCompleted {
			t.Error("expected goal to be completed at target")
		}
	})

	t.Run("contributions past the target keep accumulating", func(t *testing.T) {
		goal.Contribute(1000, nil)

		if goal.CurrentAmount != 51000 {
			t.Errorf("expected current amount 51000, got %v", goal.CurrentAmount)
		}

		if len(goal.Contributions) != 3 {
			t.Errorf("expected 3 contributions, got %d", len(goal.Contributions))
		}
	})
}
