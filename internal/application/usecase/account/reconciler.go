package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/paisatrack/backend/internal/application/adapter"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
)

// BalanceReconciler recomputes derived account balances from the ledger.
//
// The stored balance is never adjusted incrementally. Every mutation that can
// change it (transaction writes, balance overrides) triggers a full
// recomputation over the account's non-deleted transactions:
//
//	balance = initialBalance + sum(income) - sum(expense)
type BalanceReconciler struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewBalanceReconciler creates a new BalanceReconciler instance.
func NewBalanceReconciler(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *BalanceReconciler {
	return &BalanceReconciler{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Reconcile recomputes and persists the balance of one account. It returns
// the recomputed balance. A missing account is a no-op: the transaction
// write that triggered the recompute already succeeded, so an account that
// was deleted in the meantime only gets a warning.
func (r *BalanceReconciler) Reconcile(ctx context.Context, userID, accountID uuid.UUID) (decimal.Decimal, error) {
	account, err := r.accountRepo.FindByID(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			slog.Warn("Skipping balance reconciliation for missing account",
				"account_id", accountID,
				"user_id", userID)
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	totals, err := r.transactionRepo.GetAccountTotals(ctx, userID, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum account transactions: %w", err)
	}

	balance := account.InitialBalance.Add(totals.IncomeTotal).Sub(totals.ExpenseTotal)
	if err := r.accountRepo.UpdateBalances(ctx, accountID, userID, balance, account.InitialBalance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to persist reconciled balance: %w", err)
	}

	return balance, nil
}

// Override sets the account balance to target by back-solving the initial
// balance, so the reconciliation invariant keeps holding:
//
//	initialBalance = target - sum(income) + sum(expense)
//
// A later Reconcile reproduces exactly the target balance.
func (r *BalanceReconciler) Override(ctx context.Context, userID, accountID uuid.UUID, target decimal.Decimal) (decimal.Decimal, error) {
	if _, err := r.accountRepo.FindByID(ctx, accountID, userID); err != nil {
		return decimal.Zero, err
	}

	totals, err := r.transactionRepo.GetAccountTotals(ctx, userID, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum account transactions: %w", err)
	}

	initialBalance := target.Sub(totals.IncomeTotal).Add(totals.ExpenseTotal)
	if err := r.accountRepo.UpdateBalances(ctx, accountID, userID, target, initialBalance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to persist balance override: %w", err)
	}

	return initialBalance, nil
}
