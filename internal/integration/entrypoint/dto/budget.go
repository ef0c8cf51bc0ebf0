package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/usecase/budget"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// BudgetScopeRequest represents the scope object in budget requests.
type BudgetScopeRequest struct {
	Categories   []string `json:"categories,omitempty"`
	AccountTypes []string `json:"account_types,omitempty"`
	AccountIDs   []string `json:"account_ids,omitempty" binding:"omitempty,dive,uuid"`
}

// AlertThresholdsRequest represents alert threshold overrides in requests.
type AlertThresholdsRequest struct {
	Warning  *float64 `json:"warning,omitempty" binding:"omitempty,gt=0,lte=100"`
	Critical *float64 `json:"critical,omitempty" binding:"omitempty,gt=0"`
}

// RolloverRequest represents the rollover preference in requests.
type RolloverRequest struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type,omitempty" binding:"omitempty,oneof=remaining overspend"`
}

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name            string                  `json:"name" binding:"required,min=1,max=50"`
	Description     string                  `json:"description,omitempty"`
	Type            string                  `json:"type" binding:"required,oneof=overall category account"`
	Scope           BudgetScopeRequest      `json:"scope"`
	Amount          float64                 `json:"amount" binding:"required,gt=0"`
	Period          string                  `json:"period" binding:"required,oneof=daily weekly monthly quarterly yearly"`
	AlertThresholds *AlertThresholdsRequest `json:"alert_thresholds,omitempty"`
	Rollover        *RolloverRequest        `json:"rollover,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name            *string                 `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Description     *string                 `json:"description,omitempty"`
	Type            *string                 `json:"type,omitempty" binding:"omitempty,oneof=overall category account"`
	Scope           *BudgetScopeRequest     `json:"scope,omitempty"`
	Amount          *float64                `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Period          *string                 `json:"period,omitempty" binding:"omitempty,oneof=daily weekly monthly quarterly yearly"`
	AlertThresholds *AlertThresholdsRequest `json:"alert_thresholds,omitempty"`
	Rollover        *RolloverRequest        `json:"rollover,omitempty"`
	IsActive        *bool                   `json:"is_active,omitempty"`
}

// BudgetScopeResponse represents the scope object in budget responses.
type BudgetScopeResponse struct {
	Categories   []string `json:"categories,omitempty"`
	AccountTypes []string `json:"account_types,omitempty"`
	AccountIDs   []string `json:"account_ids,omitempty"`
}

// BudgetProgressResponse represents a computed period progress snapshot.
type BudgetProgressResponse struct {
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	SpentAmount        string  `json:"spent_amount"`
	RemainingAmount    string  `json:"remaining_amount"`
	ProgressPercentage float64 `json:"progress_percentage"`
	DaysRemaining      int     `json:"days_remaining"`
	DailySpendingRate  string  `json:"daily_spending_rate"`
	ProjectedSpending  string  `json:"projected_spending"`
	TransactionCount   int     `json:"transaction_count"`
	IsOverBudget       bool    `json:"is_over_budget"`
	ProjectedOverspend bool    `json:"projected_overspend"`
	LastCalculated     string  `json:"last_calculated"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID              string                  `json:"id"`
	UserID          string                  `json:"user_id"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description,omitempty"`
	Type            string                  `json:"type"`
	Scope           BudgetScopeResponse     `json:"scope"`
	Amount          string                  `json:"amount"`
	Period          string                  `json:"period"`
	AlertWarning    float64                 `json:"alert_warning"`
	AlertCritical   float64                 `json:"alert_critical"`
	RolloverEnabled bool                    `json:"rollover_enabled"`
	RolloverType    string                  `json:"rollover_type"`
	Progress        *BudgetProgressResponse `json:"progress,omitempty"`
	Status          string                  `json:"status"`
	IsActive        bool                    `json:"is_active"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetInsightResponse represents one analytics insight.
type BudgetInsightResponse struct {
	Type       string `json:"type"`
	BudgetID   string `json:"budget_id"`
	BudgetName string `json:"budget_name"`
	Message    string `json:"message"`
}

// ChartPointResponse represents one name/value pair of a chart series.
type ChartPointResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BudgetProgressPointResponse represents one bar of the progress chart.
type BudgetProgressPointResponse struct {
	Name      string `json:"name"`
	Budgeted  string `json:"budgeted"`
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
}

// BudgetChartDataResponse represents the chart-ready analytics series.
type BudgetChartDataResponse struct {
	SpendingByCategory []ChartPointResponse          `json:"spending_by_category"`
	SpendingByAccount  []ChartPointResponse          `json:"spending_by_account"`
	BudgetProgress     []BudgetProgressPointResponse `json:"budget_progress"`
}

// BudgetAnalyticsResponse represents the cross-budget analytics view.
type BudgetAnalyticsResponse struct {
	TotalBudgeted        string                  `json:"total_budgeted"`
	TotalSpent           string                  `json:"total_spent"`
	OverallProgress      float64                 `json:"overall_progress"`
	OnTrackCount         int                     `json:"on_track_count"`
	WarningCount         int                     `json:"warning_count"`
	OverBudgetCount      int                     `json:"over_budget_count"`
	CategoryBreakdown    map[string]string       `json:"category_breakdown"`
	AccountTypeBreakdown map[string]string       `json:"account_type_breakdown"`
	Budgets              []BudgetResponse        `json:"budgets"`
	Insights             []BudgetInsightResponse `json:"insights"`
	ChartData            BudgetChartDataResponse `json:"chart_data"`
}

// BudgetSuggestionResponse represents one suggested budget.
type BudgetSuggestionResponse struct {
	Category        string `json:"category"`
	LastMonthSpend  string `json:"last_month_spend"`
	SuggestedAmount string `json:"suggested_amount"`
	Period          string `json:"period"`
}

// BudgetSuggestionsResponse represents the suggestion list response.
type BudgetSuggestionsResponse struct {
	Suggestions []BudgetSuggestionResponse `json:"suggestions"`
}

// ToBudgetProgressResponse converts a BudgetPeriodProgress to its DTO.
func ToBudgetProgressResponse(progress *entity.BudgetPeriodProgress) *BudgetProgressResponse {
	if progress == nil {
		return nil
	}
	return &BudgetProgressResponse{
		StartDate:          progress.StartDate.Format(time.RFC3339),
		EndDate:            progress.EndDate.Format(time.RFC3339),
		SpentAmount:        progress.SpentAmount.String(),
		RemainingAmount:    progress.RemainingAmount.String(),
		ProgressPercentage: progress.ProgressPercentage,
		DaysRemaining:      progress.DaysRemaining,
		DailySpendingRate:  progress.DailySpendingRate.String(),
		ProjectedSpending:  progress.ProjectedSpending.String(),
		TransactionCount:   progress.TransactionCount,
		IsOverBudget:       progress.IsOverBudget,
		ProjectedOverspend: progress.ProjectedOverspend,
		LastCalculated:     progress.LastCalculated.Format(time.RFC3339),
	}
}

// ToBudgetResponse converts a BudgetOutput to a BudgetResponse DTO.
func ToBudgetResponse(b *budget.BudgetOutput) BudgetResponse {
	scope := BudgetScopeResponse{
		Categories: b.Scope.Categories,
	}
	for _, accountType := range b.Scope.AccountTypes {
		scope.AccountTypes = append(scope.AccountTypes, string(accountType))
	}
	for _, accountID := range b.Scope.AccountIDs {
		scope.AccountIDs = append(scope.AccountIDs, accountID.String())
	}

	return BudgetResponse{
		ID:              b.ID.String(),
		UserID:          b.UserID.String(),
		Name:            b.Name,
		Description:     b.Description,
		Type:            string(b.Type),
		Scope:           scope,
		Amount:          b.Amount.String(),
		Period:          string(b.Period),
		AlertWarning:    b.AlertThresholds.Warning,
		AlertCritical:   b.AlertThresholds.Critical,
		RolloverEnabled: b.Rollover.Enabled,
		RolloverType:    string(b.Rollover.Type),
		Progress:        ToBudgetProgressResponse(b.Progress),
		Status:          string(b.Status),
		IsActive:        b.IsActive,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToBudgetAnalyticsResponse converts a BudgetAnalyticsOutput to its DTO.
func ToBudgetAnalyticsResponse(output *budget.BudgetAnalyticsOutput) BudgetAnalyticsResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = ToBudgetResponse(b)
	}

	insights := make([]BudgetInsightResponse, len(output.Insights))
	for i, insight := range output.Insights {
		insights[i] = BudgetInsightResponse{
			Type:       insight.Type,
			BudgetID:   insight.BudgetID.String(),
			BudgetName: insight.BudgetName,
			Message:    insight.Message,
		}
	}

	return BudgetAnalyticsResponse{
		TotalBudgeted:        output.TotalBudgeted.String(),
		TotalSpent:           output.TotalSpent.String(),
		OverallProgress:      output.OverallProgress,
		OnTrackCount:         output.OnTrackCount,
		WarningCount:         output.WarningCount,
		OverBudgetCount:      output.OverBudgetCount,
		CategoryBreakdown:    toBreakdownResponse(output.CategoryBreakdown),
		AccountTypeBreakdown: toBreakdownResponse(output.AccountTypeBreakdown),
		Budgets:              budgets,
		Insights:             insights,
		ChartData:            toChartDataResponse(output.ChartData),
	}
}

func toBreakdownResponse(breakdown map[string]decimal.Decimal) map[string]string {
	response := make(map[string]string, len(breakdown))
	for name, value := range breakdown {
		response[name] = value.String()
	}
	return response
}

func toChartDataResponse(chartData budget.BudgetChartData) BudgetChartDataResponse {
	response := BudgetChartDataResponse{
		SpendingByCategory: make([]ChartPointResponse, len(chartData.SpendingByCategory)),
		SpendingByAccount:  make([]ChartPointResponse, len(chartData.SpendingByAccount)),
		BudgetProgress:     make([]BudgetProgressPointResponse, len(chartData.BudgetProgress)),
	}
	for i, point := range chartData.SpendingByCategory {
		response.SpendingByCategory[i] = ChartPointResponse{Name: point.Name, Value: point.Value.String()}
	}
	for i, point := range chartData.SpendingByAccount {
		response.SpendingByAccount[i] = ChartPointResponse{Name: point.Name, Value: point.Value.String()}
	}
	for i, point := range chartData.BudgetProgress {
		response.BudgetProgress[i] = BudgetProgressPointResponse{
			Name:      point.Name,
			Budgeted:  point.Budgeted.String(),
			Spent:     point.Spent.String(),
			Remaining: point.Remaining.String(),
		}
	}
	return response
}

// ToBudgetSuggestionsResponse converts a SuggestBudgetsOutput to its DTO.
func ToBudgetSuggestionsResponse(output *budget.SuggestBudgetsOutput) BudgetSuggestionsResponse {
	suggestions := make([]BudgetSuggestionResponse, len(output.Suggestions))
	for i, s := range output.Suggestions {
		suggestions[i] = BudgetSuggestionResponse{
			Category:        s.Category,
			LastMonthSpend:  s.LastMonthSpend.String(),
			SuggestedAmount: s.SuggestedAmount.String(),
			Period:          string(s.Period),
		}
	}
	return BudgetSuggestionsResponse{Suggestions: suggestions}
}
