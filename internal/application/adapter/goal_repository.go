package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence operations.
// All lookups are scoped by owner.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID for the given owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal and its contribution history.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal and its contributions from the database.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
