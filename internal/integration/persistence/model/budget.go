// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. Scope lists are
// stored as Postgres arrays; membership checks happen in the application
// after expanding the taxonomy, so the arrays are only ever read whole.
// The Period* columns hold the cached progress memo; PeriodLastCalculated
// doubles as its presence flag.
type BudgetModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	Description   string          `gorm:"type:text"`
	Type          string          `gorm:"type:varchar(20);not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period        string          `gorm:"type:varchar(20);not null"`
	AlertWarning  float64         `gorm:"not null;default:80"`
	AlertCritical float64         `gorm:"not null;default:100"`

	RolloverEnabled bool   `gorm:"default:false"`
	RolloverType    string `gorm:"type:varchar(20);default:'remaining'"`

	ScopeCategories   pq.StringArray `gorm:"type:text[]"`
	ScopeAccountTypes pq.StringArray `gorm:"type:text[]"`
	ScopeAccountIDs   pq.StringArray `gorm:"type:uuid[]"`

	PeriodStartDate          *time.Time
	PeriodEndDate            *time.Time
	PeriodSpentAmount        *decimal.Decimal `gorm:"type:decimal(15,2)"`
	PeriodRemainingAmount    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	PeriodProgressPercentage float64          `gorm:"default:0"`
	PeriodDaysRemaining      int              `gorm:"default:0"`
	PeriodDailySpendingRate  *decimal.Decimal `gorm:"type:decimal(15,4)"`
	PeriodProjectedSpending  *decimal.Decimal `gorm:"type:decimal(15,2)"`
	PeriodTransactionCount   int              `gorm:"default:0"`
	PeriodIsOverBudget       bool             `gorm:"default:false"`
	PeriodProjectedOverspend bool             `gorm:"default:false"`
	PeriodLastCalculated     *time.Time

	IsActive  bool      `gorm:"default:true;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	budget := &entity.Budget{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Type:        entity.BudgetType(m.Type),
		Amount:      m.Amount,
		Period:      entity.BudgetPeriod(m.Period),
		AlertThresholds: entity.AlertThresholds{
			Warning:  m.AlertWarning,
			Critical: m.AlertCritical,
		},
		Rollover: entity.RolloverPolicy{
			Enabled: m.RolloverEnabled,
			Type:    entity.RolloverType(m.RolloverType),
		},
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	budget.Scope.Categories = append([]string{}, m.ScopeCategories...)
	for _, accountType := range m.ScopeAccountTypes {
		budget.Scope.AccountTypes = append(budget.Scope.AccountTypes, entity.AccountType(accountType))
	}
	for _, raw := range m.ScopeAccountIDs {
		if id, err := uuid.Parse(raw); err == nil {
			budget.Scope.AccountIDs = append(budget.Scope.AccountIDs, id)
		}
	}

	if m.PeriodLastCalculated != nil && m.PeriodStartDate != nil && m.PeriodEndDate != nil {
		progress := &entity.BudgetPeriodProgress{
			StartDate:          *m.PeriodStartDate,
			EndDate:            *m.PeriodEndDate,
			SpentAmount:        decimal.Zero,
			RemainingAmount:    decimal.Zero,
			ProgressPercentage: m.PeriodProgressPercentage,
			DaysRemaining:      m.PeriodDaysRemaining,
			DailySpendingRate:  decimal.Zero,
			ProjectedSpending:  decimal.Zero,
			TransactionCount:   m.PeriodTransactionCount,
			IsOverBudget:       m.PeriodIsOverBudget,
			ProjectedOverspend: m.PeriodProjectedOverspend,
			LastCalculated:     *m.PeriodLastCalculated,
		}
		if m.PeriodSpentAmount != nil {
			progress.SpentAmount = *m.PeriodSpentAmount
		}
		if m.PeriodRemainingAmount != nil {
			progress.RemainingAmount = *m.PeriodRemainingAmount
		}
		if m.PeriodDailySpendingRate != nil {
			progress.DailySpendingRate = *m.PeriodDailySpendingRate
		}
		if m.PeriodProjectedSpending != nil {
			progress.ProjectedSpending = *m.PeriodProjectedSpending
		}
		budget.CurrentPeriod = progress
	}

	return budget
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	model := &BudgetModel{
		ID:              budget.ID,
		UserID:          budget.UserID,
		Name:            budget.Name,
		Description:     budget.Description,
		Type:            string(budget.Type),
		Amount:          budget.Amount,
		Period:          string(budget.Period),
		AlertWarning:    budget.AlertThresholds.Warning,
		AlertCritical:   budget.AlertThresholds.Critical,
		RolloverEnabled: budget.Rollover.Enabled,
		RolloverType:    string(budget.Rollover.Type),
		IsActive:        budget.IsActive,
		CreatedAt:       budget.CreatedAt,
		UpdatedAt:       budget.UpdatedAt,
	}

	model.ScopeCategories = append(pq.StringArray{}, budget.Scope.Categories...)
	for _, accountType := range budget.Scope.AccountTypes {
		model.ScopeAccountTypes = append(model.ScopeAccountTypes, string(accountType))
	}
	for _, id := range budget.Scope.AccountIDs {
		model.ScopeAccountIDs = append(model.ScopeAccountIDs, id.String())
	}

	if budget.CurrentPeriod != nil {
		model.ApplyProgress(budget.CurrentPeriod)
	}

	return model
}

// ApplyProgress copies a progress snapshot onto the model's memo columns.
func (m *BudgetModel) ApplyProgress(progress *entity.BudgetPeriodProgress) {
	startDate := progress.StartDate
	endDate := progress.EndDate
	spent := progress.SpentAmount
	remaining := progress.RemainingAmount
	rate := progress.DailySpendingRate
	projected := progress.ProjectedSpending
	lastCalculated := progress.LastCalculated

	m.PeriodStartDate = &startDate
	m.PeriodEndDate = &endDate
	m.PeriodSpentAmount = &spent
	m.PeriodRemainingAmount = &remaining
	m.PeriodProgressPercentage = progress.ProgressPercentage
	m.PeriodDaysRemaining = progress.DaysRemaining
	m.PeriodDailySpendingRate = &rate
	m.PeriodProjectedSpending = &projected
	m.PeriodTransactionCount = progress.TransactionCount
	m.PeriodIsOverBudget = progress.IsOverBudget
	m.PeriodProjectedOverspend = progress.ProjectedOverspend
	m.PeriodLastCalculated = &lastCalculated
}
