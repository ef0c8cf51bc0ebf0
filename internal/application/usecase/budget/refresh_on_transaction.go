package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// RefreshOnTransactionInput carries the just-written transaction whose
// budgets need their memos refreshed.
type RefreshOnTransactionInput struct {
	Transaction *entity.Transaction
}

// RefreshOnTransactionUseCase refreshes the cached progress memo of every
// budget a transaction write touches, and queues alert emails when the write
// pushes a budget across one of its thresholds.
//
// Refreshing is best-effort: the ledger write has already committed, and a
// stale memo costs nothing because reads recompute. Failures are logged and
// swallowed so they never surface to the transaction caller.
type RefreshOnTransactionUseCase struct {
	budgetRepo   adapter.BudgetRepository
	userRepo     adapter.UserRepository
	engine       *ProgressEngine
	emailService adapter.EmailService
}

// NewRefreshOnTransactionUseCase creates a new RefreshOnTransactionUseCase instance.
func NewRefreshOnTransactionUseCase(
	budgetRepo adapter.BudgetRepository,
	userRepo adapter.UserRepository,
	engine *ProgressEngine,
	emailService adapter.EmailService,
) *RefreshOnTransactionUseCase {
	return &RefreshOnTransactionUseCase{
		budgetRepo:   budgetRepo,
		userRepo:     userRepo,
		engine:       engine,
		emailService: emailService,
	}
}

// Execute refreshes the memos of all budgets the transaction affects. Only
// expense writes can move budget progress; other types return immediately.
func (uc *RefreshOnTransactionUseCase) Execute(ctx context.Context, input RefreshOnTransactionInput) {
	transaction := input.Transaction
	if transaction == nil || transaction.Type != entity.TransactionTypeExpense {
		return
	}

	budgets, err := uc.budgetRepo.FindActiveByUser(ctx, transaction.UserID)
	if err != nil {
		slog.Error("Failed to load budgets for refresh",
			"userID", transaction.UserID,
			"transactionID", transaction.ID,
			"error", err,
		)
		return
	}

	now := time.Now()
	for _, budget := range budgets {
		matches, err := uc.engine.Matches(ctx, budget, transaction)
		if err != nil {
			slog.Error("Failed to match transaction against budget scope",
				"budgetID", budget.ID,
				"transactionID", transaction.ID,
				"error", err,
			)
			continue
		}
		if !matches {
			continue
		}

		progress, err := uc.engine.Compute(ctx, budget, now)
		if err != nil {
			slog.Error("Failed to recompute budget progress",
				"budgetID", budget.ID,
				"error", err,
			)
			continue
		}

		uc.maybeQueueAlert(ctx, budget, progress)

		if err := uc.budgetRepo.UpdateCurrentPeriod(ctx, budget.ID, progress); err != nil {
			slog.Error("Failed to persist budget progress memo",
				"budgetID", budget.ID,
				"error", err,
			)
		}
	}
}

// maybeQueueAlert queues a threshold email when progress crossed the warning
// or critical threshold since the last persisted memo. Crossings are
// detected against the memo, so a threshold fires once per crossing instead
// of on every subsequent expense.
func (uc *RefreshOnTransactionUseCase) maybeQueueAlert(ctx context.Context, budget *entity.Budget, progress *entity.BudgetPeriodProgress) {
	previous := 0.0
	if budget.CurrentPeriod != nil && budget.CurrentPeriod.StartDate.Equal(progress.StartDate) {
		previous = budget.CurrentPeriod.ProgressPercentage
	}
	current := progress.ProgressPercentage

	var critical bool
	switch {
	case previous < budget.AlertThresholds.Critical && current >= budget.AlertThresholds.Critical:
		critical = true
	case previous < budget.AlertThresholds.Warning && current >= budget.AlertThresholds.Warning:
		critical = false
	default:
		return
	}

	user, err := uc.userRepo.FindByID(ctx, budget.UserID)
	if err != nil {
		slog.Error("Failed to load user for budget alert",
			"userID", budget.UserID,
			"budgetID", budget.ID,
			"error", err,
		)
		return
	}
	if !user.BudgetAlerts {
		return
	}

	err = uc.emailService.QueueBudgetAlertEmail(ctx, adapter.QueueBudgetAlertInput{
		UserID:             user.ID.String(),
		UserEmail:          user.Email,
		UserName:           user.Name,
		BudgetName:         budget.Name,
		Critical:           critical,
		SpentAmount:        progress.SpentAmount.StringFixed(2),
		BudgetAmount:       budget.Amount.StringFixed(2),
		ProgressPercentage: current,
		PeriodEnd:          progress.EndDate.Format("02 Jan 2006"),
	})
	if err != nil {
		slog.Error("Failed to queue budget alert email",
			"userID", budget.UserID,
			"budgetID", budget.ID,
			"error", err,
		)
	}
}
