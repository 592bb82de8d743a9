package pricing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// StaticOracle is a price oracle backed by a fixed in-memory table.
// Prices never fluctuate; the table is normalized to upper-case keys at
// construction so lookups are case-insensitive. Lookup distinguishes a
// missing symbol from a zero price via the ok flag and never errors.
type StaticOracle struct {
	prices map[string]decimal.Decimal
}

// NewStaticOracle creates a StaticOracle from the given symbol→price table.
// Keys are upper-cased; a later duplicate key overwrites an earlier one.
func NewStaticOracle(prices map[string]decimal.Decimal) *StaticOracle {
	normalized := make(map[string]decimal.Decimal, len(prices))
	for symbol, price := range prices {
		normalized[strings.ToUpper(strings.TrimSpace(symbol))] = price
	}
	return &StaticOracle{prices: normalized}
}

// Lookup returns the fixed price for a symbol, or ok=false when the table
// has no entry for it.
func (o *StaticOracle) Lookup(_ context.Context, symbol string) (decimal.Decimal, bool, error) {
	price, ok := o.prices[strings.ToUpper(strings.TrimSpace(symbol))]
	return price, ok, nil
}
