package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestNewTransferPair(t *testing.T) {
	userID := uuid.New()
	sourceID := uuid.New()
	destID := uuid.New()
	amount := decimal.NewFromInt(300)
	date := time.Now()

	expenseLeg, incomeLeg := NewTransferPair(userID, sourceID, destID, amount, "Transfer", "", "move to savings", "", date)

	if expenseLeg.Type != TransactionTypeExpense {
		t.Errorf("expected expense leg type %s, got %s", TransactionTypeExpense, expenseLeg.Type)
	}

	if incomeLeg.Type != TransactionTypeIncome {
		t.Errorf("expected income leg type %s, got %s", TransactionTypeIncome, incomeLeg.Type)
	}

	if expenseLeg.AccountID != sourceID {
		t.Error("expected expense leg on the source account")
	}

	if incomeLeg.AccountID != destID {
		t.Error("expected income leg on the destination account")
	}

	if expenseLeg.TransferAccountID == nil || *expenseLeg.TransferAccountID != destID {
		t.Error("expected expense leg to reference the destination account")
	}

	if incomeLeg.TransferAccountID == nil || *incomeLeg.TransferAccountID != sourceID {
		t.Error("expected income leg to reference the source account")
	}

	if !expenseLeg.Amount.Equal(amount) || !incomeLeg.Amount.Equal(amount) {
		t.Error("expected both legs to carry the full amount")
	}

	if expenseLeg.ID == incomeLeg.ID {
		t.Error("expected the legs to have distinct IDs")
	}
}
