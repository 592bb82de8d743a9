package domain

import (
	"github.com/shopspring/decimal"
)

// Session is the aggregate owned by a single user context: cash balance,
// open positions, the append-only transaction log and the quest flags.
// It is plain mutable state; all business rules live in the usecase layer,
// which receives the session by reference and mutates it in place.
// A session must never be shared between concurrent callers.
type Session struct {
	Name       string
	Role       string
	Registered bool

	Cash         decimal.Decimal
	Positions    map[string]*Position
	Transactions []Transaction
	Quests       QuestState
}

// NewSession creates a fresh session: the given starting cash, no positions,
// an empty transaction log and every quest incomplete.
func NewSession(startingCash decimal.Decimal) *Session {
	return &Session{
		Cash:      startingCash,
		Positions: make(map[string]*Position),
	}
}

// Position returns the held position for an (already upper-cased) symbol,
// or nil when the symbol is not held.
func (s *Session) Position(symbol string) *Position {
	return s.Positions[symbol]
}
