package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/usecase/budget"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
	"github.com/paisatrack/backend/internal/integration/entrypoint/dto"
	"github.com/paisatrack/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase      *budget.ListBudgetsUseCase
	createUseCase    *budget.CreateBudgetUseCase
	progressUseCase  *budget.GetBudgetProgressUseCase
	updateUseCase    *budget.UpdateBudgetUseCase
	deleteUseCase    *budget.DeleteBudgetUseCase
	analyticsUseCase *budget.BudgetAnalyticsUseCase
	suggestUseCase   *budget.SuggestBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	progressUseCase *budget.GetBudgetProgressUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	analyticsUseCase *budget.BudgetAnalyticsUseCase,
	suggestUseCase *budget.SuggestBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		progressUseCase:  progressUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		analyticsUseCase: analyticsUseCase,
		suggestUseCase:   suggestUseCase,
	}
}

// scopeFromRequest converts a scope request object to the domain scope.
func scopeFromRequest(req dto.BudgetScopeRequest) (entity.BudgetScope, error) {
	scope := entity.BudgetScope{
		Categories: req.Categories,
	}
	for _, accountType := range req.AccountTypes {
		scope.AccountTypes = append(scope.AccountTypes, entity.AccountType(accountType))
	}
	for _, idStr := range req.AccountIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return entity.BudgetScope{}, err
		}
		scope.AccountIDs = append(scope.AccountIDs, id)
	}
	return scope, nil
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budget.ListBudgetsInput{
		UserID:     userID,
		ActiveOnly: ctx.Query("active_only") == "true",
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		budgetType := entity.BudgetType(typeStr)
		input.Type = &budgetType
	}
	if periodStr := ctx.Query("period"); periodStr != "" {
		period := entity.BudgetPeriod(periodStr)
		input.Period = &period
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.BudgetStatus(statusStr)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budgets",
		})
		return
	}

	budgets := make([]dto.BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = dto.ToBudgetResponse(b)
	}
	ctx.JSON(http.StatusOK, dto.BudgetListResponse{Budgets: budgets})
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ToValidationErrorResponse(err, string(domainerror.ErrCodeMissingBudgetFields)))
		return
	}

	scope, err := scopeFromRequest(req.Scope)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID in scope",
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	input := budget.CreateBudgetInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Type:        entity.BudgetType(req.Type),
		Scope:       scope,
		Amount:      decimal.NewFromFloat(req.Amount),
		Period:      entity.BudgetPeriod(req.Period),
	}

	if req.AlertThresholds != nil {
		thresholds := entity.AlertThresholds{Warning: 80, Critical: 100}
		if req.AlertThresholds.Warning != nil {
			thresholds.Warning = *req.AlertThresholds.Warning
		}
		if req.AlertThresholds.Critical != nil {
			thresholds.Critical = *req.AlertThresholds.Critical
		}
		input.AlertThresholds = &thresholds
	}

	if req.Rollover != nil {
		rollover := entity.RolloverPolicy{
			Enabled: req.Rollover.Enabled,
			Type:    entity.RolloverRemaining,
		}
		if req.Rollover.Type != "" {
			rollover.Type = entity.RolloverType(req.Rollover.Type)
		}
		input.Rollover = &rollover
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// GetProgress handles GET /budgets/:id/progress requests.
func (c *BudgetController) GetProgress(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	output, err := c.progressUseCase.Execute(ctx.Request.Context(), budget.GetBudgetProgressInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ToValidationErrorResponse(err, ""))
		return
	}

	input := budget.UpdateBudgetInput{
		UserID:      userID,
		BudgetID:    budgetID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	}

	if req.Type != nil {
		budgetType := entity.BudgetType(*req.Type)
		input.Type = &budgetType
	}

	if req.Scope != nil {
		scope, err := scopeFromRequest(*req.Scope)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid account ID in scope",
			})
			return
		}
		input.Scope = &scope
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}

	if req.AlertThresholds != nil {
		thresholds := entity.AlertThresholds{Warning: 80, Critical: 100}
		if req.AlertThresholds.Warning != nil {
			thresholds.Warning = *req.AlertThresholds.Warning
		}
		if req.AlertThresholds.Critical != nil {
			thresholds.Critical = *req.AlertThresholds.Critical
		}
		input.AlertThresholds = &thresholds
	}

	if req.Rollover != nil {
		rollover := entity.RolloverPolicy{
			Enabled: req.Rollover.Enabled,
			Type:    entity.RolloverRemaining,
		}
		if req.Rollover.Type != "" {
			rollover.Type = entity.RolloverType(req.Rollover.Type)
		}
		input.Rollover = &rollover
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	err = c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Analytics handles GET /budgets/analytics requests.
func (c *BudgetController) Analytics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), budget.BudgetAnalyticsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute budget analytics",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetAnalyticsResponse(output))
}

// Suggestions handles GET /budgets/suggestions requests.
func (c *BudgetController) Suggestions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), budget.SuggestBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute budget suggestions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetSuggestionsResponse(output))
}

// handleBudgetError handles budget errors and returns appropriate HTTP
// responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBudgetType,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeBudgetNameTooLong,
		domainerror.ErrCodeEmptyBudgetScope,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
