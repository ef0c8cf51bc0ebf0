package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
)

const (
	// suggestionMinSpend is the minimum last-month category spend that
	// warrants a suggestion.
	suggestionMinSpend = 1000
	// suggestionLimit caps how many suggestions are returned.
	suggestionLimit = 5
)

// suggestionHeadroom is the multiplier applied to observed spend when
// proposing a budget amount.
var suggestionHeadroom = decimal.NewFromFloat(1.1)

// BudgetSuggestion proposes a category budget derived from recent spending.
type BudgetSuggestion struct {
	Category        string
	LastMonthSpend  decimal.Decimal
	SuggestedAmount decimal.Decimal
	Period          entity.BudgetPeriod
}

// SuggestBudgetsInput represents the input for budget suggestions.
type SuggestBudgetsInput struct {
	UserID uuid.UUID
}

// SuggestBudgetsOutput represents the output of budget suggestions.
type SuggestBudgetsOutput struct {
	Suggestions []BudgetSuggestion
}

// SuggestBudgetsUseCase proposes monthly category budgets from the previous
// calendar month's spending. Categories under the minimum spend are skipped;
// amounts get ten percent headroom rounded up to the next whole unit.
type SuggestBudgetsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSuggestBudgetsUseCase creates a new SuggestBudgetsUseCase instance.
func NewSuggestBudgetsUseCase(transactionRepo adapter.TransactionRepository) *SuggestBudgetsUseCase {
	return &SuggestBudgetsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes budget suggestions from last month's category totals.
func (uc *SuggestBudgetsUseCase) Execute(ctx context.Context, input SuggestBudgetsInput) (*SuggestBudgetsOutput, error) {
	start, end := PeriodWindow(entity.BudgetPeriodMonthly, time.Now().AddDate(0, -1, 0))

	totals, err := uc.transactionRepo.GetCategoryTotals(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load category totals: %w", err)
	}

	minSpend := decimal.NewFromInt(suggestionMinSpend)
	output := &SuggestBudgetsOutput{Suggestions: []BudgetSuggestion{}}
	for _, total := range totals {
		if len(output.Suggestions) == suggestionLimit {
			break
		}
		if !total.Total.GreaterThan(minSpend) {
			continue
		}
		output.Suggestions = append(output.Suggestions, BudgetSuggestion{
			Category:        total.Category,
			LastMonthSpend:  total.Total,
			SuggestedAmount: total.Total.Mul(suggestionHeadroom).Ceil(),
			Period:          entity.BudgetPeriodMonthly,
		})
	}

	return output, nil
}
