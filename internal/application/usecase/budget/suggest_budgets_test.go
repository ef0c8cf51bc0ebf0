package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/domain/entity"
)

func TestSuggestBudgetsUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("suggests budgets with headroom rounded up", func(t *testing.T) {
		var gotStart, gotEnd time.Time
		transactionRepo := &stubTransactionRepo{
			categoryTotalsFn: func(startDate, endDate time.Time) ([]*entity.CategoryTotal, error) {
				gotStart, gotEnd = startDate, endDate
				return []*entity.CategoryTotal{
					{Category: "Food & Dining", Total: decimal.NewFromInt(4525)},
					{Category: "Transportation", Total: decimal.NewFromInt(2000)},
				}, nil
			},
		}
		useCase := NewSuggestBudgetsUseCase(transactionRepo)

		output, err := useCase.Execute(ctx, SuggestBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Suggestions) != 2 {
			t.Fatalf("expected 2 suggestions, got %d", len(output.Suggestions))
		}

		first := output.Suggestions[0]
		if first.Category != "Food & Dining" {
			t.Errorf("expected first suggestion for Food & Dining, got %s", first.Category)
		}

		// 4525 * 1.1 = 4977.5, rounded up to the next whole unit.
		if !first.SuggestedAmount.Equal(decimal.NewFromInt(4978)) {
			t.Errorf("expected suggested amount 4978, got %s", first.SuggestedAmount)
		}

		if !output.Suggestions[1].SuggestedAmount.Equal(decimal.NewFromInt(2200)) {
			t.Errorf("expected suggested amount 2200, got %s", output.Suggestions[1].SuggestedAmount)
		}

		if first.Period != entity.BudgetPeriodMonthly {
			t.Errorf("expected monthly period, got %s", first.Period)
		}

		wantStart, wantEnd := PeriodWindow(entity.BudgetPeriodMonthly, time.Now().AddDate(0, -1, 0))
		if !gotStart.Equal(wantStart) || !gotEnd.Equal(wantEnd) {
			t.Errorf("expected previous month window [%v, %v], got [%v, %v]", wantStart, wantEnd, gotStart, gotEnd)
		}
	})

	t.Run("skips categories at or below the minimum spend", func(t *testing.T) {
		transactionRepo := &stubTransactionRepo{
			categoryTotalsFn: func(startDate, endDate time.Time) ([]*entity.CategoryTotal, error) {
				return []*entity.CategoryTotal{
					{Category: "Shopping", Total: decimal.NewFromInt(1500)},
					{Category: "Coffee & Tea", Total: decimal.NewFromInt(1000)},
					{Category: "Books", Total: decimal.NewFromInt(300)},
				}, nil
			},
		}
		useCase := NewSuggestBudgetsUseCase(transactionRepo)

		output, err := useCase.Execute(ctx, SuggestBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Suggestions) != 1 {
			t.Fatalf("expected 1 suggestion, got %d", len(output.Suggestions))
		}

		if output.Suggestions[0].Category != "Shopping" {
			t.Errorf("expected Shopping, got %s", output.Suggestions[0].Category)
		}
	})

	t.Run("caps the number of suggestions", func(t *testing.T) {
		transactionRepo := &stubTransactionRepo{
			categoryTotalsFn: func(startDate, endDate time.Time) ([]*entity.CategoryTotal, error) {
				totals := make([]*entity.CategoryTotal, 8)
				for i := range totals {
					totals[i] = &entity.CategoryTotal{
						Category: string(rune('A' + i)),
						Total:    decimal.NewFromInt(int64(8000 - i*100)),
					}
				}
				return totals, nil
			},
		}
		useCase := NewSuggestBudgetsUseCase(transactionRepo)

		output, err := useCase.Execute(ctx, SuggestBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Suggestions) != suggestionLimit {
			t.Errorf("expected %d suggestions, got %d", suggestionLimit, len(output.Suggestions))
		}
	})

	t.Run("no qualifying spend yields an empty non-nil list", func(t *testing.T) {
		useCase := NewSuggestBudgetsUseCase(&stubTransactionRepo{})

		output, err := useCase.Execute(ctx, SuggestBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Suggestions == nil {
			t.Fatal("expected non-nil suggestions slice")
		}

		if len(output.Suggestions) != 0 {
			t.Errorf("expected no suggestions, got %d", len(output.Suggestions))
		}
	})
}
