package budget

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// Insight classifications surfaced by the analytics view.
const (
	InsightOverBudget    = "over_budget"
	InsightAtRisk        = "at_risk"
	InsightUnderutilized = "underutilized"
)

// BudgetInsight is an actionable observation about one budget.
type BudgetInsight struct {
	Type       string
	BudgetID   uuid.UUID
	BudgetName string
	Message    string
}

// BudgetAnalyticsInput represents the input for the analytics view.
type BudgetAnalyticsInput struct {
	UserID uuid.UUID
}

// ChartPoint is one name/value pair of a chart series.
type ChartPoint struct {
	Name  string
	Value decimal.Decimal
}

// BudgetProgressPoint is one bar of the budget progress chart.
type BudgetProgressPoint struct {
	Name      string
	Budgeted  decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// BudgetChartData groups the chart-ready series of the analytics view.
type BudgetChartData struct {
	SpendingByCategory []ChartPoint
	SpendingByAccount  []ChartPoint
	BudgetProgress     []BudgetProgressPoint
}

// BudgetAnalyticsOutput aggregates progress across all active budgets.
// Breakdowns bucket each budget's period spend by the scope dimensions it
// declares: category budgets feed CategoryBreakdown, account budgets feed
// AccountTypeBreakdown.
type BudgetAnalyticsOutput struct {
	TotalBudgeted        decimal.Decimal
	TotalSpent           decimal.Decimal
	OverallProgress      float64
	OnTrackCount         int
	WarningCount         int
	OverBudgetCount      int
	CategoryBreakdown    map[string]decimal.Decimal
	AccountTypeBreakdown map[string]decimal.Decimal
	Budgets              []*BudgetOutput
	Insights             []BudgetInsight
	ChartData            BudgetChartData
}

// BudgetAnalyticsUseCase computes the cross-budget analytics view.
type BudgetAnalyticsUseCase struct {
	budgetRepo adapter.BudgetRepository
	engine     *ProgressEngine
}

// NewBudgetAnalyticsUseCase creates a new BudgetAnalyticsUseCase instance.
func NewBudgetAnalyticsUseCase(budgetRepo adapter.BudgetRepository, engine *ProgressEngine) *BudgetAnalyticsUseCase {
	return &BudgetAnalyticsUseCase{
		budgetRepo: budgetRepo,
		engine:     engine,
	}
}

// Execute computes live progress for every active budget and derives
// aggregate totals and insights.
func (uc *BudgetAnalyticsUseCase) Execute(ctx context.Context, input BudgetAnalyticsInput) (*BudgetAnalyticsOutput, error) {
	budgets, err := uc.budgetRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	now := time.Now()
	output := &BudgetAnalyticsOutput{
		TotalBudgeted:        decimal.Zero,
		TotalSpent:           decimal.Zero,
		CategoryBreakdown:    map[string]decimal.Decimal{},
		AccountTypeBreakdown: map[string]decimal.Decimal{},
		Budgets:              make([]*BudgetOutput, 0, len(budgets)),
		Insights:             []BudgetInsight{},
	}

	for _, budget := range budgets {
		progress, err := uc.engine.Compute(ctx, budget, now)
		if err != nil {
			return nil, fmt.Errorf("failed to compute progress for budget %s: %w", budget.ID, err)
		}

		budgetOutput := toBudgetOutput(budget, progress)
		output.Budgets = append(output.Budgets, budgetOutput)
		output.TotalBudgeted = output.TotalBudgeted.Add(budget.Amount)
		output.TotalSpent = output.TotalSpent.Add(progress.SpentAmount)

		switch budgetOutput.Status {
		case entity.BudgetStatusOnTrack:
			output.OnTrackCount++
		case entity.BudgetStatusWarning:
			output.WarningCount++
		case entity.BudgetStatusOverBudget:
			output.OverBudgetCount++
		}

		output.Insights = append(output.Insights, insightsFor(budget, progress)...)

		switch budget.Type {
		case entity.BudgetTypeCategory:
			for _, category := range budget.Scope.Categories {
				output.CategoryBreakdown[category] = output.CategoryBreakdown[category].Add(progress.SpentAmount)
			}
		case entity.BudgetTypeAccount:
			for _, accountType := range budget.Scope.AccountTypes {
				output.AccountTypeBreakdown[string(accountType)] = output.AccountTypeBreakdown[string(accountType)].Add(progress.SpentAmount)
			}
		}

		output.ChartData.BudgetProgress = append(output.ChartData.BudgetProgress, BudgetProgressPoint{
			Name:      budget.Name,
			Budgeted:  budget.Amount,
			Spent:     progress.SpentAmount,
			Remaining: budget.Amount.Sub(progress.SpentAmount),
		})
	}

	output.ChartData.SpendingByCategory = toChartSeries(output.CategoryBreakdown)
	output.ChartData.SpendingByAccount = toChartSeries(output.AccountTypeBreakdown)

	if output.TotalBudgeted.IsPositive() {
		ratio, _ := output.TotalSpent.Div(output.TotalBudgeted).Float64()
		output.OverallProgress = math.Round(ratio * 100)
	}

	return output, nil
}

// toChartSeries flattens a breakdown map into a name-sorted series so the
// response is stable across requests.
func toChartSeries(breakdown map[string]decimal.Decimal) []ChartPoint {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	series := make([]ChartPoint, 0, len(names))
	for _, name := range names {
		series = append(series, ChartPoint{Name: name, Value: breakdown[name]})
	}
	return series
}

// insightsFor derives the insight entries for one budget's progress.
func insightsFor(budget *entity.Budget, progress *entity.BudgetPeriodProgress) []BudgetInsight {
	var insights []BudgetInsight

	switch {
	case progress.ProgressPercentage > 100:
		insights = append(insights, BudgetInsight{
			Type:       InsightOverBudget,
			BudgetID:   budget.ID,
			BudgetName: budget.Name,
			Message: fmt.Sprintf("'%s' is over budget: spent %s of %s",
				budget.Name, progress.SpentAmount.StringFixed(2), budget.Amount.StringFixed(2)),
		})
	case progress.ProjectedOverspend:
		insights = append(insights, BudgetInsight{
			Type:       InsightAtRisk,
			BudgetID:   budget.ID,
			BudgetName: budget.Name,
			Message: fmt.Sprintf("'%s' is projected to reach %s against a budget of %s",
				budget.Name, progress.ProjectedSpending.StringFixed(2), budget.Amount.StringFixed(2)),
		})
	}

	if progress.ProgressPercentage < 50 && progress.DaysRemaining < 7 {
		insights = append(insights, BudgetInsight{
			Type:       InsightUnderutilized,
			BudgetID:   budget.ID,
			BudgetName: budget.Name,
			Message: fmt.Sprintf("'%s' has used only %.0f%% with %d days left",
				budget.Name, progress.ProgressPercentage, progress.DaysRemaining),
		})
	}

	return insights
}
