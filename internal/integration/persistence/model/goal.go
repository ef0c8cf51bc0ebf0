// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name          string     `gorm:"type:varchar(100);not null"`
	Description   string     `gorm:"type:text"`
	TargetAmount  float64    `gorm:"type:decimal(15,2);not null"`
	CurrentAmount float64    `gorm:"type:decimal(15,2);not null;default:0"`
	TargetDate    *time.Time `gorm:"type:date"`
	Category      string     `gorm:"type:varchar(100)"`
	Priority      string     `gorm:"type:varchar(10);not null;default:'medium'"`
	IsCompleted   bool       `gorm:"default:false"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time  `gorm:"not null"`

	// Contribution history, ordered by date
	Contributions []GoalContributionModel `gorm:"foreignKey:GoalID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// GoalContributionModel represents the goal_contributions table.
type GoalContributionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount    float64    `gorm:"type:decimal(15,2);not null"`
	Date      time.Time  `gorm:"not null"`
	AccountID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GoalContributionModel.
func (GoalContributionModel) TableName() string {
	return "goal_contributions"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	goal := &entity.Goal{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		TargetDate:    m.TargetDate,
		Category:      m.Category,
		Priority:      entity.GoalPriority(m.Priority),
		IsCompleted:   m.IsCompleted,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	for _, contribution := range m.Contributions {
		goal.Contributions = append(goal.Contributions, entity.GoalContribution{
			Amount:    contribution.Amount,
			Date:      contribution.Date,
			AccountID: contribution.AccountID,
		})
	}

	return goal
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	model := &GoalModel{
		ID:            goal.ID,
		UserID:        goal.UserID,
		Name:          goal.Name,
		Description:   goal.Description,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		TargetDate:    goal.TargetDate,
		Category:      goal.Category,
		Priority:      string(goal.Priority),
		IsCompleted:   goal.IsCompleted,
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}

	for _, contribution := range goal.Contributions {
		model.Contributions = append(model.Contributions, GoalContributionModel{
			ID:        uuid.New(),
			GoalID:    goal.ID,
			Amount:    contribution.Amount,
			Date:      contribution.Date,
			AccountID: contribution.AccountID,
			CreatedAt: contribution.Date,
		})
	}

	return model
}
