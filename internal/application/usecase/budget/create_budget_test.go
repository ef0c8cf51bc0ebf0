package budget

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

func TestCreateBudget(t *testing.T) {
	engine := NewProgressEngine(&stubTransactionRepo{}, &stubAccountRepo{})
	uc := NewCreateBudgetUseCase(&stubBudgetRepo{}, engine)
	userID := uuid.New()

	baseInput := func() CreateBudgetInput {
		return CreateBudgetInput{
			UserID: userID,
			Name:   "Monthly groceries",
			Type:   entity.BudgetTypeCategory,
			Scope:  entity.BudgetScope{Categories: []string{"groceries"}},
			Amount: decimal.NewFromInt(5000),
			Period: entity.BudgetPeriodMonthly,
		}
	}

	t.Run("accepts a name at the length cap", func(t *testing.T) {
		input := baseInput()
		input.Name = strings.Repeat("n", MaxBudgetNameLength)

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Budget.Name != input.Name {
			t.Errorf("Name = %q, want %q", output.Budget.Name, input.Name)
		}
	})

	t.Run("rejects a name over 50 characters", func(t *testing.T) {
		input := baseInput()
		input.Name = strings.Repeat("n", MaxBudgetNameLength+1)

		_, err := uc.Execute(context.Background(), input)
		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) {
			t.Fatalf("Execute() error = %v, want BudgetError", err)
		}
		if budgetErr.Code != domainerror.ErrCodeBudgetNameTooLong {
			t.Errorf("Code = %s, want %s", budgetErr.Code, domainerror.ErrCodeBudgetNameTooLong)
		}
	})

	t.Run("rejects a category budget without categories", func(t *testing.T) {
		input := baseInput()
		input.Scope = entity.BudgetScope{}

		_, err := uc.Execute(context.Background(), input)
		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) {
			t.Fatalf("Execute() error = %v, want BudgetError", err)
		}
		if budgetErr.Code != domainerror.ErrCodeEmptyBudgetScope {
			t.Errorf("Code = %s, want %s", budgetErr.Code, domainerror.ErrCodeEmptyBudgetScope)
		}
	})
}
