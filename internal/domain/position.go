package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Position represents a held quantity of a single symbol plus its
// volume-weighted average cost per share. Positions are keyed in the
// session by upper-cased symbol; a symbol with zero shares must not
// exist in the map (the ledger removes it on the closing sell).
type Position struct {
	Symbol   string
	Shares   int64
	AvgPrice decimal.Decimal // volume-weighted average cost per share
}

// Validate ensures the position adheres to domain rules:
// a live position always has a positive share count and a positive
// average price.
func (p *Position) Validate() error {
	if p.Symbol == "" {
		return errors.New("position symbol cannot be empty")
	}
	if p.Shares <= 0 {
		return errors.New("position shares must be positive")
	}
	if p.AvgPrice.LessThanOrEqual(decimal.Zero) {
		return errors.New("position average price must be positive")
	}
	return nil
}

// MarketValue returns shares × price for the given current price.
func (p *Position) MarketValue(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(p.Shares))
}
