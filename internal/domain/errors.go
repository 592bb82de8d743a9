package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Domain errors for the ledger operations. All of them are expected
// user-input outcomes, not faults: the presentation layer decides how to
// surface them. Each carries the figures its message must report, so
// callers can render structured responses instead of parsing strings.

// UnknownSymbolError is returned when the price oracle has no price for
// a symbol — on buys, but also on sells of a held position whose symbol
// can no longer be priced (stale/delisted case).
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("stock symbol %s not found", e.Symbol)
}

// InsufficientFundsError is returned when a buy costs more than the
// available cash. Required and Available are the exact amounts the
// operation compared.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("not enough cash: need $%s but have only $%s",
		e.Required.StringFixed(2), e.Available.StringFixed(2))
}

// NoPositionError is returned when a sell targets a symbol that is not held.
type NoPositionError struct {
	Symbol string
}

func (e *NoPositionError) Error() string {
	return fmt.Sprintf("no position held in %s", e.Symbol)
}

// InsufficientSharesError is returned when a sell quantity exceeds the
// held quantity. Held is the actual holding at the time of the attempt.
type InsufficientSharesError struct {
	Symbol string
	Held   int64
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("only %d shares of %s held", e.Held, e.Symbol)
}
