package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

type stubGoalRepo struct {
	findByIDFn func(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error)
	updateFn   func(ctx context.Context, goal *entity.Goal) error
}

func (s *stubGoalRepo) Create(ctx context.Context, goal *entity.Goal) error {
	return nil
}

func (s *stubGoalRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Goal, error) {
	return s.findByIDFn(ctx, id, userID)
}

func (s *stubGoalRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}

func (s *stubGoalRepo) Update(ctx context.Context, goal *entity.Goal) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, goal)
	}
	return nil
}

func (s *stubGoalRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func TestCompleteGoal(t *testing.T) {
	userID := uuid.New()

	t.Run("marks an open goal as completed and persists it", func(t *testing.T) {
		g := entity.NewGoal(userID, "Emergency Fund", "", 50000, nil, "", "")
		g.CurrentAmount = 12000

		var updated *entity.Goal
		repo := &stubGoalRepo{
			findByIDFn: func(ctx context.Context, id, uid uuid.UUID) (*entity.Goal, error) {
				return g, nil
			},
			updateFn: func(ctx context.Context, goal *entity.Goal) error {
				updated = goal
				return nil
			},
		}

		output, err := NewCompleteGoalUseCase(repo).Execute(context.Background(), CompleteGoalInput{
			GoalID: g.ID,
			UserID: userID,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.Goal.IsCompleted {
			t.Error("expected output goal to be completed")
		}
		if updated == nil {
			t.Fatal("expected goal to be persisted")
		}
		if !updated.IsCompleted {
			t.Error("expected persisted goal to be completed")
		}
	})

	t.Run("completing an already completed goal does not persist again", func(t *testing.T) {
		g := entity.NewGoal(userID, "Vacation", "", 20000, nil, "", "")
		g.CurrentAmount = 20000
		g.IsCompleted = true

		repo := &stubGoalRepo{
			findByIDFn: func(ctx context.Context, id, uid uuid.UUID) (*entity.Goal, error) {
				return g, nil
			},
			updateFn: func(ctx context.Context, goal *entity.Goal) error {
				t.Error("unexpected Update call for an already completed goal")
				return nil
			},
		}

		output, err := NewCompleteGoalUseCase(repo).Execute(context.Background(), CompleteGoalInput{
			GoalID: g.ID,
			UserID: userID,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.Goal.IsCompleted {
			t.Error("expected output goal to remain completed")
		}
	})

	t.Run("unknown goal maps to a not found error", func(t *testing.T) {
		repo := &stubGoalRepo{
			findByIDFn: func(ctx context.Context, id, uid uuid.UUID) (*entity.Goal, error) {
				return nil, domainerror.ErrGoalNotFound
			},
		}

		_, err := NewCompleteGoalUseCase(repo).Execute(context.Background(), CompleteGoalInput{
			GoalID: uuid.New(),
			UserID: userID,
		})
		var goalErr *domainerror.GoalError
		if !errors.As(err, &goalErr) {
			t.Fatalf("expected GoalError, got %v", err)
		}
		if goalErr.Code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("Code = %s, want %s", goalErr.Code, domainerror.ErrCodeGoalNotFound)
		}
	})
}
