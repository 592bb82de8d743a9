package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// PriceOracle defines the interface for current-price lookup.
// Lookup is case-insensitive on symbol and must distinguish "not found"
// from a legitimately zero price via the ok flag; the error return is for
// transport failures of implementations that poll a real market feed.
// Implementations must be side-effect free.
type PriceOracle interface {
	Lookup(ctx context.Context, symbol string) (price decimal.Decimal, ok bool, err error)
}

// Glossary defines the interface for financial-term explanations.
// Explain is case-insensitive on term; ok is false when the term is unknown.
type Glossary interface {
	Explain(term string) (explanation string, ok bool)
}

// QuestNotifier receives milestone events raised by the usecase services
// and records them on the session. Implementations must be idempotent:
// a milestone reached twice stays completed.
type QuestNotifier interface {
	Complete(session *Session, quest Quest)
}
