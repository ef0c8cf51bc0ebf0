// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetType determines which transactions count toward a budget.
type BudgetType string

const (
	// BudgetTypeOverall tracks every expense of the owner.
	BudgetTypeOverall BudgetType = "overall"
	// BudgetTypeCategory tracks expenses whose category falls in the
	// budget's expanded category set.
	BudgetTypeCategory BudgetType = "category"
	// BudgetTypeAccount tracks expenses on specific accounts or on all
	// active accounts of the configured types.
	BudgetTypeAccount BudgetType = "account"
)

// ValidBudgetType reports whether t is a supported budget type.
func ValidBudgetType(t BudgetType) bool {
	return t == BudgetTypeOverall || t == BudgetTypeCategory || t == BudgetTypeAccount
}

// BudgetPeriod represents the recurring tracking cycle of a budget.
type BudgetPeriod string

const (
	BudgetPeriodDaily     BudgetPeriod = "daily"
	BudgetPeriodWeekly    BudgetPeriod = "weekly"
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
)

// ValidBudgetPeriod reports whether p is a supported budget period.
func ValidBudgetPeriod(p BudgetPeriod) bool {
	switch p {
	case BudgetPeriodDaily, BudgetPeriodWeekly, BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly:
		return true
	}
	return false
}

// BudgetScope restricts which transactions count toward a budget. Which
// fields are meaningful depends on the budget type: Categories for category
// budgets, AccountIDs/AccountTypes for account budgets, none for overall.
type BudgetScope struct {
	Categories   []string
	AccountTypes []AccountType
	AccountIDs   []uuid.UUID
}

// AlertThresholds are progress percentages at which the owner is notified.
type AlertThresholds struct {
	Warning  float64
	Critical float64
}

// RolloverType states what carries into the next period when rollover is on.
type RolloverType string

const (
	RolloverRemaining RolloverType = "remaining"
	RolloverOverspend RolloverType = "overspend"
)

// RolloverPolicy is the stored rollover preference for a budget.
type RolloverPolicy struct {
	Enabled bool
	Type    RolloverType
}

// BudgetPeriodProgress holds the computed spend metrics for a budget's
// current period window. The copy cached on the budget document is a memo:
// progress is always recomputable from the ledger, and read paths recompute
// it fresh rather than trusting the cache.
type BudgetPeriodProgress struct {
	StartDate          time.Time
	EndDate            time.Time
	SpentAmount        decimal.Decimal
	RemainingAmount    decimal.Decimal
	ProgressPercentage float64
	DaysRemaining      int
	DailySpendingRate  decimal.Decimal
	ProjectedSpending  decimal.Decimal
	TransactionCount   int
	IsOverBudget       bool
	ProjectedOverspend bool
	LastCalculated     time.Time
}

// Budget represents a spending limit over a recurring period window.
type Budget struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Description     string
	Type            BudgetType
	Scope           BudgetScope
	Amount          decimal.Decimal
	Period          BudgetPeriod
	AlertThresholds AlertThresholds
	Rollover        RolloverPolicy
	CurrentPeriod   *BudgetPeriodProgress // Cached memo, refreshed on writes
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBudget creates a new Budget entity with default alert thresholds.
func NewBudget(
	userID uuid.UUID,
	name string,
	description string,
	budgetType BudgetType,
	scope BudgetScope,
	amount decimal.Decimal,
	period BudgetPeriod,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Type:        budgetType,
		Scope:       scope,
		Amount:      amount,
		Period:      period,
		AlertThresholds: AlertThresholds{
			Warning:  80,
			Critical: 100,
		},
		Rollover: RolloverPolicy{
			Enabled: false,
			Type:    RolloverRemaining,
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BudgetStatus classifies a budget by its progress percentage.
type BudgetStatus string

const (
	BudgetStatusOnTrack    BudgetStatus = "on_track"
	BudgetStatusWarning    BudgetStatus = "warning"
	BudgetStatusOverBudget BudgetStatus = "over_budget"
)

// StatusFor returns the status bucket for a progress percentage:
// on_track at or below 80, warning up to and including 100, over_budget above.
func StatusFor(progressPercentage float64) BudgetStatus {
	switch {
	case progressPercentage <= 80:
		return BudgetStatusOnTrack
	case progressPercentage <= 100:
		return BudgetStatusWarning
	default:
		return BudgetStatusOverBudget
	}
}
