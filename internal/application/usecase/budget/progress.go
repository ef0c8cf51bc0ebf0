package budget

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// ProgressEngine computes period spend metrics for budgets against the
// transaction ledger. Results are pure functions of the ledger; the snapshot
// cached on a budget row is only a memo and read paths always recompute.
type ProgressEngine struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewProgressEngine creates a new ProgressEngine instance.
func NewProgressEngine(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *ProgressEngine {
	return &ProgressEngine{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// budgetScopeQuery is the resolved transaction restriction of a budget.
// matchNone flags an account scope that resolved to zero accounts, which
// must count zero transactions rather than all of them.
type budgetScopeQuery struct {
	categories []string
	accountIDs []uuid.UUID
	matchNone  bool
}

// resolveScope translates a budget's stored scope into concrete query
// dimensions. Category names are expanded through the taxonomy so a budget
// on "Food & Dining" also counts its sub-categories.
func (e *ProgressEngine) resolveScope(ctx context.Context, budget *entity.Budget) (*budgetScopeQuery, error) {
	query := &budgetScopeQuery{}

	switch budget.Type {
	case entity.BudgetTypeOverall:
		// No restriction: every expense counts.

	case entity.BudgetTypeCategory:
		query.categories = entity.ExpandCategories(budget.Scope.Categories)

	case entity.BudgetTypeAccount:
		if len(budget.Scope.AccountIDs) > 0 {
			query.accountIDs = budget.Scope.AccountIDs
			break
		}
		accounts, err := e.accountRepo.FindActiveByTypes(ctx, budget.UserID, budget.Scope.AccountTypes)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve account scope: %w", err)
		}
		if len(accounts) == 0 {
			query.matchNone = true
			break
		}
		for _, account := range accounts {
			query.accountIDs = append(query.accountIDs, account.ID)
		}
	}

	return query, nil
}

// Compute calculates the progress snapshot for the budget's period window
// containing now.
func (e *ProgressEngine) Compute(ctx context.Context, budget *entity.Budget, now time.Time) (*entity.BudgetPeriodProgress, error) {
	start, end := PeriodWindow(budget.Period, now)

	query, err := e.resolveScope(ctx, budget)
	if err != nil {
		return nil, err
	}

	spent := decimal.Zero
	count := 0
	if !query.matchNone {
		total, err := e.transactionRepo.GetScopedExpenseTotal(ctx, adapter.ExpenseScope{
			UserID:     budget.UserID,
			StartDate:  start,
			EndDate:    end,
			Categories: query.categories,
			AccountIDs: query.accountIDs,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to sum scoped expenses: %w", err)
		}
		spent = total.Total
		count = total.Count
	}

	progress := &entity.BudgetPeriodProgress{
		StartDate:        start,
		EndDate:          end,
		SpentAmount:      spent,
		RemainingAmount:  budget.Amount.Sub(spent),
		DaysRemaining:    daysRemaining(start, end, now),
		TransactionCount: count,
		IsOverBudget:     spent.GreaterThan(budget.Amount),
		LastCalculated:   now,
	}

	if budget.Amount.IsPositive() {
		ratio, _ := spent.Div(budget.Amount).Float64()
		progress.ProgressPercentage = math.Round(ratio * 100)
	}

	progress.DailySpendingRate = decimal.Zero
	if elapsed := daysElapsed(start, now); elapsed > 0 {
		progress.DailySpendingRate = spent.Div(decimal.NewFromInt(int64(elapsed)))
	}
	progress.ProjectedSpending = progress.DailySpendingRate.Mul(decimal.NewFromInt(int64(periodDays(start, end))))
	progress.ProjectedOverspend = progress.ProjectedSpending.GreaterThan(budget.Amount)

	return progress, nil
}

// Matches reports whether the transaction falls inside the budget's scope.
// The caller has already checked the transaction is an expense.
func (e *ProgressEngine) Matches(ctx context.Context, budget *entity.Budget, transaction *entity.Transaction) (bool, error) {
	query, err := e.resolveScope(ctx, budget)
	if err != nil {
		return false, err
	}
	if query.matchNone {
		return false, nil
	}

	if len(query.categories) > 0 {
		found := false
		for _, category := range query.categories {
			if category == transaction.Category {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}

	if len(query.accountIDs) > 0 {
		found := false
		for _, id := range query.accountIDs {
			if id == transaction.AccountID {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}

	return true, nil
}
