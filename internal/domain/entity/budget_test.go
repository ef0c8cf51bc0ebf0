package entity

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name       string
		percentage float64
		want       BudgetStatus
	}{
		{"zero is on track", 0, BudgetStatusOnTrack},
		{"exactly 80 is on track", 80, BudgetStatusOnTrack},
		{"just above 80 is warning", 80.5, BudgetStatusWarning},
		{"exactly 100 is warning", 100, BudgetStatusWarning},
		{"above 100 is over budget", 101, BudgetStatusOverBudget},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFor(tc.percentage); got != tc.want {
				t.Errorf("StatusFor(%v) = %s, want %s", tc.percentage, got, tc.want)
			}
		})
	}
}

func TestValidBudgetType(t *testing.T) {
	for _, valid := range []BudgetType{BudgetTypeOverall, BudgetTypeCategory, BudgetTypeAccount} {
		if !ValidBudgetType(valid) {
			t.Errorf("expected %s to be valid", valid)
		}
	}

	if ValidBudgetType(BudgetType("envelope")) {
		t.Error("expected unknown budget type to be invalid")
	}
}

func TestValidBudgetPeriod(t *testing.T) {
	for _, valid := range []BudgetPeriod{BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly} {
		if !ValidBudgetPeriod(valid) {
			t.Errorf("expected %s to be valid", valid)
		}
	}

	if ValidBudgetPeriod(BudgetPeriod("fortnightly")) {
		t.Error("expected unknown budget period to be invalid")
	}
}

func TestNewBudget_Defaults(t *testing.T) {
	userID := uuid.New()
	budget := NewBudget(userID, "Groceries", "", BudgetTypeCategory,
		BudgetScope{Categories: []string{"Groceries"}},
		decimal.NewFromInt(5000), BudgetPeriodMonthly)

	if budget.AlertThresholds.Warning != 80 {
		t.Errorf("expected warning threshold 80, got %v", budget.AlertThresholds.Warning)
	}

	if budget.AlertThresholds.Critical != 100 {
		t.Errorf("expected critical threshold 100, got %v", budget.AlertThresholds.Critical)
	}

	if budget.Rollover.Enabled {
		t.Error("expected rollover to be disabled by default")
	}

	if budget.Rollover.Type != RolloverRemaining {
		t.Errorf("expected rollover type %s, got %s", RolloverRemaining, budget.Rollover.Type)
	}

	if !budget.IsActive {
		t.Error("expected new budget to be active")
	}

	if budget.CurrentPeriod != nil {
		t.Error("expected new budget to have no cached period snapshot")
	}
}

func TestExpandCategories(t *testing.T) {
	t.Run("taxonomy category expands to subcategories", func(t *testing.T) {
		got := ExpandCategories([]string{"Food & Dining"})
		want := []string{"Food & Dining", "Restaurants", "Groceries", "Takeout", "Coffee & Tea", "Alcohol & Bars"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("unknown category passes through literally", func(t *testing.T) {
		got := ExpandCategories([]string{"Pet Supplies"})
		if !reflect.DeepEqual(got, []string{"Pet Supplies"}) {
			t.Errorf("expected passthrough, got %v", got)
		}
	})

	t.Run("mixed list keeps order", func(t *testing.T) {
		got := ExpandCategories([]string{"Pet Supplies", "Healthcare"})
		want := []string{"Pet Supplies", "Healthcare", "Doctor", "Pharmacy", "Dental", "Vision", "Medical Equipment"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		if got := ExpandCategories(nil); len(got) != 0 {
			t.Errorf("expected empty result, got %v", got)
		}
	})
}
