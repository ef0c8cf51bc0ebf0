// Package email provides email queueing and delivery.
package email

import (
	"context"
	"fmt"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueBudgetAlertEmail queues a budget threshold alert email.
func (s *Service) QueueBudgetAlertEmail(ctx context.Context, input adapter.QueueBudgetAlertInput) error {
	templateType := entity.TemplateBudgetWarning
	subject := fmt.Sprintf("Budget alert: %s is nearing its limit - PaisaTrack", input.BudgetName)
	if input.Critical {
		templateType = entity.TemplateBudgetCritical
		subject = fmt.Sprintf("Budget exceeded: %s - PaisaTrack", input.BudgetName)
	}

	templateData := map[string]interface{}{
		"user_name":           input.UserName,
		"budget_name":         input.BudgetName,
		"spent_amount":        input.SpentAmount,
		"budget_amount":       input.BudgetAmount,
		"progress_percentage": input.ProgressPercentage,
		"period_end":          input.PeriodEnd,
		"budgets_url":         s.appBaseURL + "/budgets",
	}

	job := entity.NewEmailJob(
		templateType,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue budget alert email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
