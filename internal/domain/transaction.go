package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the side of an executed trade.
type TransactionKind string

const (
	TransactionKindBuy  TransactionKind = "BUY"
	TransactionKindSell TransactionKind = "SELL"
)

// Transaction is an immutable record of one executed trade. Records are
// appended to the session log and never mutated or removed; append order
// is time order. A transaction references its symbol by name only — the
// position may be fully closed while its transactions remain in history.
type Transaction struct {
	ID        uuid.UUID
	Kind      TransactionKind
	Symbol    string
	Shares    int64
	Price     decimal.Decimal // executed price per share
	Total     decimal.Decimal // shares × price at execution
	Timestamp time.Time
}

// Validate ensures the transaction adheres to domain rules.
func (t *Transaction) Validate() error {
	if t.Kind != TransactionKindBuy && t.Kind != TransactionKindSell {
		return errors.New("transaction kind must be BUY or SELL")
	}
	if t.Symbol == "" {
		return errors.New("transaction symbol cannot be empty")
	}
	if t.Shares <= 0 {
		return errors.New("transaction shares must be positive")
	}
	if !t.Total.Equal(t.Price.Mul(decimal.NewFromInt(t.Shares))) {
		return errors.New("transaction total must equal shares times price")
	}
	return nil
}
