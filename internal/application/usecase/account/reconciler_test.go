package account

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// reconcilerAccountRepo satisfies adapter.AccountRepository with a single
// in-memory account and records persisted balances.
type reconcilerAccountRepo struct {
	account      *entity.Account
	savedBalance decimal.Decimal
	savedInitial decimal.Decimal
	updateCalls  int
}

func (r *reconcilerAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	return nil
}

func (r *reconcilerAccountRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error) {
	if r.account == nil || r.account.ID != id || r.account.UserID != userID {
		return nil, domainerror.ErrAccountNotFound
	}
	return r.account, nil
}

func (r *reconcilerAccountRepo) FindByFilter(ctx context.Context, filter adapter.AccountFilter) ([]*entity.Account, error) {
	return nil, nil
}

func (r *reconcilerAccountRepo) FindActiveByTypes(ctx context.Context, userID uuid.UUID, types []entity.AccountType) ([]*entity.Account, error) {
	return nil, nil
}

func (r *reconcilerAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	return nil
}

func (r *reconcilerAccountRepo) UpdateBalances(ctx context.Context, id, userID uuid.UUID, balance, initialBalance decimal.Decimal) error {
	r.updateCalls++
	r.savedBalance = balance
	r.savedInitial = initialBalance
	r.account.Balance = balance
	r.account.InitialBalance = initialBalance
	return nil
}

func (r *reconcilerAccountRepo) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

// reconcilerTransactionRepo satisfies adapter.TransactionRepository and
// serves fixed per-account totals.
type reconcilerTransactionRepo struct {
	totals adapter.AccountTotals
}

func (r *reconcilerTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *reconcilerTransactionRepo) CreateTransferPair(ctx context.Context, expenseLeg, incomeLeg *entity.Transaction) error {
	return nil
}

func (r *reconcilerTransactionRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (r *reconcilerTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	return nil, nil
}

func (r *reconcilerTransactionRepo) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *reconcilerTransactionRepo) GetAccountTotals(ctx context.Context, userID, accountID uuid.UUID) (*adapter.AccountTotals, error) {
	totals := r.totals
	return &totals, nil
}

func (r *reconcilerTransactionRepo) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	return nil, nil
}

func (r *reconcilerTransactionRepo) GetScopedExpenseTotal(ctx context.Context, scope adapter.ExpenseScope) (*adapter.ScopedExpenseTotal, error) {
	return nil, nil
}

func (r *reconcilerTransactionRepo) GetCategoryTotals(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CategoryTotal, error) {
	return nil, nil
}

func (r *reconcilerTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *reconcilerTransactionRepo) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

func TestBalanceReconciler_Reconcile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("recomputes balance from the ledger", func(t *testing.T) {
		account := entity.NewAccount(userID, "Checking", entity.AccountTypeBank, "", decimal.NewFromInt(1000), nil, nil, "")
		accountRepo := &reconcilerAccountRepo{account: account}
		transactionRepo := &reconcilerTransactionRepo{totals: adapter.AccountTotals{
			IncomeTotal:  decimal.NewFromInt(500),
			ExpenseTotal: decimal.NewFromInt(700),
		}}
		reconciler := NewBalanceReconciler(accountRepo, transactionRepo)

		balance, err := reconciler.Reconcile(ctx, userID, account.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !balance.Equal(decimal.NewFromInt(800)) {
			t.Errorf("expected balance 800, got %s", balance)
		}

		if !accountRepo.savedBalance.Equal(decimal.NewFromInt(800)) {
			t.Errorf("expected persisted balance 800, got %s", accountRepo.savedBalance)
		}

		if !accountRepo.savedInitial.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected initial balance untouched at 1000, got %s", accountRepo.savedInitial)
		}
	})

	t.Run("missing account is a no-op", func(t *testing.T) {
		accountRepo := &reconcilerAccountRepo{}
		reconciler := NewBalanceReconciler(accountRepo, &reconcilerTransactionRepo{})

		balance, err := reconciler.Reconcile(ctx, userID, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !balance.IsZero() {
			t.Errorf("expected zero balance, got %s", balance)
		}
		if accountRepo.updateCalls != 0 {
			t.Errorf("expected no balance write, got %d", accountRepo.updateCalls)
		}
	})
}

func TestBalanceReconciler_Override(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("back-solves the initial balance", func(t *testing.T) {
		// Opening 1000 with a 200 expense leaves 800; overriding the
		// balance to 500 must rewrite the initial balance to 700.
		account := entity.NewAccount(userID, "Cash", entity.AccountTypeCash, "", decimal.NewFromInt(1000), nil, nil, "")
		accountRepo := &reconcilerAccountRepo{account: account}
		transactionRepo := &reconcilerTransactionRepo{totals: adapter.AccountTotals{
			IncomeTotal:  decimal.Zero,
			ExpenseTotal: decimal.NewFromInt(200),
		}}
		reconciler := NewBalanceReconciler(accountRepo, transactionRepo)

		initial, err := reconciler.Override(ctx, userID, account.ID, decimal.NewFromInt(500))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !initial.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected initial balance 700, got %s", initial)
		}

		if !accountRepo.savedBalance.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected persisted balance 500, got %s", accountRepo.savedBalance)
		}

		// A later reconcile must reproduce exactly the override target.
		balance, err := reconciler.Reconcile(ctx, userID, account.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !balance.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected reconciled balance 500, got %s", balance)
		}
	})

	t.Run("missing account fails", func(t *testing.T) {
		reconciler := NewBalanceReconciler(&reconcilerAccountRepo{}, &reconcilerTransactionRepo{})

		if _, err := reconciler.Override(ctx, userID, uuid.New(), decimal.NewFromInt(100)); err != domainerror.ErrAccountNotFound {
			t.Errorf("expected ErrAccountNotFound, got %v", err)
		}
	})
}
