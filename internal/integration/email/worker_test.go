package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
	"github.com/paisatrack/backend/internal/integration/email/templates"
)

// memoryQueue keeps email jobs in memory and hands out every pending job
// regardless of schedule, so retry tests don't have to wait out backoff.
type memoryQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{jobs: map[uuid.UUID]*entity.EmailJob{}}
}

func (q *memoryQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *memoryQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *memoryQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	job, ok := q.jobs[id]
	if !ok {
		return nil, domainerror.ErrEmailJobNotFound
	}
	return job, nil
}

func (q *memoryQueue) GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error) {
	var jobs []*entity.EmailJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (q *memoryQueue) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	return 0, nil
}

// recordingSender satisfies adapter.EmailSender and can be set to fail.
type recordingSender struct {
	sent    []adapter.SendEmailInput
	failErr error
}

func (s *recordingSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ResendID: "re_" + uuid.NewString()}, nil
}

func newTestWorker(t *testing.T, queue *memoryQueue, sender *recordingSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, WorkerConfig{
		PollInterval: time.Second,
		BatchSize:    10,
	})
}

func warningJob() *entity.EmailJob {
	return entity.NewEmailJob(entity.TemplateBudgetWarning, "user@example.com", "Asha",
		"Budget alert", map[string]interface{}{
			"user_name":           "Asha",
			"budget_name":         "Food & Dining",
			"spent_amount":        "4200.00",
			"budget_amount":       "5000.00",
			"progress_percentage": 84.0,
			"period_end":          "Aug 31, 2025",
			"budgets_url":         "http://localhost:3000/budgets",
		})
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a pending alert and marks it sent", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := &recordingSender{}
		worker := newTestWorker(t, queue, sender)

		job := warningJob()
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("failed to enqueue: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 delivery, got %d", len(sender.sent))
		}

		delivered := sender.sent[0]
		if delivered.To != "user@example.com" {
			t.Errorf("expected recipient user@example.com, got %s", delivered.To)
		}
		if !strings.Contains(delivered.HTML, "Food & Dining") {
			t.Error("expected rendered HTML to mention the budget name")
		}
		if !strings.Contains(delivered.Text, "Food & Dining") {
			t.Error("expected rendered text to mention the budget name")
		}

		stored, err := queue.GetByID(ctx, job.ID)
		if err != nil {
			t.Fatalf("failed to load job: %v", err)
		}
		if stored.Status != entity.EmailStatusSent {
			t.Errorf("expected status %s, got %s", entity.EmailStatusSent, stored.Status)
		}
		if stored.ResendID == "" {
			t.Error("expected provider ID to be recorded")
		}
		if stored.ProcessedAt == nil {
			t.Error("expected processed timestamp to be set")
		}
	})

	t.Run("transient failures retry until attempts run out", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := &recordingSender{failErr: errors.New("connection reset")}
		worker := newTestWorker(t, queue, sender)

		job := warningJob()
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("failed to enqueue: %v", err)
		}

		worker.ProcessNow(ctx)
		if job.Status != entity.EmailStatusPending {
			t.Fatalf("expected job back in pending after first failure, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Fatalf("expected 1 attempt, got %d", job.Attempts)
		}

		worker.ProcessNow(ctx)
		worker.ProcessNow(ctx)

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected job failed after max attempts, got %s", job.Status)
		}
		if job.Attempts != 3 {
			t.Errorf("expected 3 attempts, got %d", job.Attempts)
		}
		if job.LastError == "" {
			t.Error("expected last error to be recorded")
		}
	})

	t.Run("permanent failures do not retry", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := &recordingSender{failErr: domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure,
			"invalid recipient",
			domainerror.ErrPermanentEmailFailure,
		)}
		worker := newTestWorker(t, queue, sender)

		job := warningJob()
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("failed to enqueue: %v", err)
		}

		worker.ProcessNow(ctx)

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected permanent failure, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
	})

	t.Run("unknown template type fails permanently", func(t *testing.T) {
		queue := newMemoryQueue()
		sender := &recordingSender{}
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(entity.EmailTemplateType("welcome"), "user@example.com", "Asha", "Hi", nil)
		if err := queue.Create(ctx, job); err != nil {
			t.Fatalf("failed to enqueue: %v", err)
		}

		worker.ProcessNow(ctx)

		if len(sender.sent) != 0 {
			t.Errorf("expected no delivery, got %d", len(sender.sent))
		}
		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed status, got %s", job.Status)
		}
	})
}

func TestEmailJob_MarkFailed(t *testing.T) {
	t.Run("schedules a retry while attempts remain", func(t *testing.T) {
		job := warningJob()
		job.MarkFailed(errors.New("timeout"), false)

		if job.Status != entity.EmailStatusPending {
			t.Errorf("expected pending status, got %s", job.Status)
		}
		if !job.CanRetry() {
			t.Error("expected job to still be retryable")
		}
	})

	t.Run("gives up at max attempts", func(t *testing.T) {
		job := warningJob()
		for i := 0; i < job.MaxAttempts; i++ {
			job.MarkFailed(errors.New("timeout"), false)
		}

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed status, got %s", job.Status)
		}
		if job.CanRetry() {
			t.Error("expected job to not be retryable")
		}
	})
}
