package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/application/usecase/account"
	"github.com/paisatrack/backend/internal/application/usecase/budget"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// writeTestTransactionRepo serves one in-memory transaction and records
// soft deletes.
type writeTestTransactionRepo struct {
	transaction *entity.Transaction
	softDeletes int
}

func (r *writeTestTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *writeTestTransactionRepo) CreateTransferPair(ctx context.Context, expenseLeg, incomeLeg *entity.Transaction) error {
	return nil
}

func (r *writeTestTransactionRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	if r.transaction == nil || r.transaction.ID != id || r.transaction.UserID != userID {
		return nil, domainerror.ErrTransactionNotFound
	}
	return r.transaction, nil
}

func (r *writeTestTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	return nil, nil
}

func (r *writeTestTransactionRepo) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *writeTestTransactionRepo) GetAccountTotals(ctx context.Context, userID, accountID uuid.UUID) (*adapter.AccountTotals, error) {
	return &adapter.AccountTotals{}, nil
}

func (r *writeTestTransactionRepo) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	return nil, nil
}

func (r *writeTestTransactionRepo) GetScopedExpenseTotal(ctx context.Context, scope adapter.ExpenseScope) (*adapter.ScopedExpenseTotal, error) {
	return nil, nil
}

func (r *writeTestTransactionRepo) GetCategoryTotals(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CategoryTotal, error) {
	return nil, nil
}

func (r *writeTestTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *writeTestTransactionRepo) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	r.softDeletes++
	return nil
}

// missingAccountRepo answers every lookup with account-not-found.
type missingAccountRepo struct{}

func (r *missingAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	return nil
}

func (r *missingAccountRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error) {
	return nil, domainerror.ErrAccountNotFound
}

func (r *missingAccountRepo) FindByFilter(ctx context.Context, filter adapter.AccountFilter) ([]*entity.Account, error) {
	return nil, nil
}

func (r *missingAccountRepo) FindActiveByTypes(ctx context.Context, userID uuid.UUID, types []entity.AccountType) ([]*entity.Account, error) {
	return nil, nil
}

func (r *missingAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	return nil
}

func (r *missingAccountRepo) UpdateBalances(ctx context.Context, id, userID uuid.UUID, balance, initialBalance decimal.Decimal) error {
	return nil
}

func (r *missingAccountRepo) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("succeeds when the account was deleted after the write", func(t *testing.T) {
		// The row to delete references an account that no longer resolves.
		// The delete must still succeed: balance reconciliation is a
		// post-write consistency pass, not part of the user's operation.
		txn := entity.NewTransaction(
			userID,
			uuid.New(),
			decimal.NewFromInt(100),
			entity.TransactionTypeIncome,
			"Salary",
			"",
			"",
			"",
			time.Now(),
		)
		transactionRepo := &writeTestTransactionRepo{transaction: txn}
		reconciler := account.NewBalanceReconciler(&missingAccountRepo{}, transactionRepo)
		useCase := NewDeleteTransactionUseCase(
			transactionRepo,
			reconciler,
			budget.NewRefreshOnTransactionUseCase(nil, nil, nil, nil),
		)

		output, err := useCase.Execute(ctx, DeleteTransactionInput{
			TransactionID: txn.ID,
			UserID:        userID,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.Success {
			t.Error("expected delete to report success")
		}
		if transactionRepo.softDeletes != 1 {
			t.Errorf("expected 1 soft delete, got %d", transactionRepo.softDeletes)
		}
	})

	t.Run("unknown transaction maps to a not found error", func(t *testing.T) {
		useCase := NewDeleteTransactionUseCase(
			&writeTestTransactionRepo{},
			account.NewBalanceReconciler(&missingAccountRepo{}, &writeTestTransactionRepo{}),
			budget.NewRefreshOnTransactionUseCase(nil, nil, nil, nil),
		)

		_, err := useCase.Execute(ctx, DeleteTransactionInput{
			TransactionID: uuid.New(),
			UserID:        userID,
		})
		var transactionErr *domainerror.TransactionError
		if !errors.As(err, &transactionErr) {
			t.Fatalf("expected TransactionError, got %v", err)
		}
		if transactionErr.Code != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("Code = %s, want %s", transactionErr.Code, domainerror.ErrCodeTransactionNotFound)
		}
	})
}
