package budget

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
)

// stubTransactionRepo satisfies adapter.TransactionRepository with
// overridable behavior for the methods the engine touches.
type stubTransactionRepo struct {
	scopedTotalFn    func(scope adapter.ExpenseScope) (*adapter.ScopedExpenseTotal, error)
	categoryTotalsFn func(startDate, endDate time.Time) ([]*entity.CategoryTotal, error)
}

func (s *stubTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) CreateTransferPair(ctx context.Context, expenseLeg, incomeLeg *entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	return nil, nil
}

func (s *stubTransactionRepo) FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	return nil, nil
}

func (s *stubTransactionRepo) GetAccountTotals(ctx context.Context, userID, accountID uuid.UUID) (*adapter.AccountTotals, error) {
	return nil, nil
}

func (s *stubTransactionRepo) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*adapter.TransactionTotals, error) {
	return nil, nil
}

func (s *stubTransactionRepo) GetScopedExpenseTotal(ctx context.Context, scope adapter.ExpenseScope) (*adapter.ScopedExpenseTotal, error) {
	if s.scopedTotalFn != nil {
		return s.scopedTotalFn(scope)
	}
	return &adapter.ScopedExpenseTotal{}, nil
}

func (s *stubTransactionRepo) GetCategoryTotals(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.CategoryTotal, error) {
	if s.categoryTotalsFn != nil {
		return s.categoryTotalsFn(startDate, endDate)
	}
	return nil, nil
}

func (s *stubTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (s *stubTransactionRepo) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

// stubAccountRepo satisfies adapter.AccountRepository; only type-scope
// resolution matters to the engine.
type stubAccountRepo struct {
	activeByTypesFn func(userID uuid.UUID, types []entity.AccountType) ([]*entity.Account, error)
}

func (s *stubAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	return nil
}

func (s *stubAccountRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error) {
	return nil, nil
}

func (s *stubAccountRepo) FindByFilter(ctx context.Context, filter adapter.AccountFilter) ([]*entity.Account, error) {
	return nil, nil
}

func (s *stubAccountRepo) FindActiveByTypes(ctx context.Context, userID uuid.UUID, types []entity.AccountType) ([]*entity.Account, error) {
	if s.activeByTypesFn != nil {
		return s.activeByTypesFn(userID, types)
	}
	return nil, nil
}

func (s *stubAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	return nil
}

func (s *stubAccountRepo) UpdateBalances(ctx context.Context, id, userID uuid.UUID, balance, initialBalance decimal.Decimal) error {
	return nil
}

func (s *stubAccountRepo) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}

// stubBudgetRepo satisfies adapter.BudgetRepository for analytics tests.
type stubBudgetRepo struct {
	activeByUserFn func(userID uuid.UUID) ([]*entity.Budget, error)
}

func (s *stubBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error {
	return nil
}

func (s *stubBudgetRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}

func (s *stubBudgetRepo) FindByFilter(ctx context.Context, filter adapter.BudgetFilter) ([]*entity.Budget, error) {
	return nil, nil
}

func (s *stubBudgetRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	if s.activeByUserFn != nil {
		return s.activeByUserFn(userID)
	}
	return nil, nil
}

func (s *stubBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error {
	return nil
}

func (s *stubBudgetRepo) UpdateCurrentPeriod(ctx context.Context, id uuid.UUID, progress *entity.BudgetPeriodProgress) error {
	return nil
}

func (s *stubBudgetRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return nil
}
