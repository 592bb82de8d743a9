package ledger

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/investifykids/investify-backend/internal/domain"
)

// TradeConfirmation reports an executed buy or sell back to the caller.
type TradeConfirmation struct {
	Kind   domain.TransactionKind
	Symbol string
	Shares int64
	Price  decimal.Decimal
	Total  decimal.Decimal
}

// Holding is one row of the portfolio summary: the stored position plus
// its live valuation. PriceKnown is false when the oracle can no longer
// price the symbol; the holding then contributes zero to the total.
type Holding struct {
	Symbol     string
	Shares     int64
	AvgPrice   decimal.Decimal
	Price      decimal.Decimal
	PriceKnown bool
	Value      decimal.Decimal
}

// PortfolioSummary is the per-symbol breakdown plus the aggregate value of
// all positions. TotalValue does not include cash.
type PortfolioSummary struct {
	Holdings   []Holding
	TotalValue decimal.Decimal
}

// LedgerService owns the portfolio rules: solvency and position invariants,
// weighted-average cost basis and the auditable transaction history. It
// mutates the session it is handed; the caller owns the session lifecycle
// and must not share one session between concurrent callers.
type LedgerService struct {
	Oracle domain.PriceOracle
	Quests domain.QuestNotifier
}

// NewLedgerService creates a new LedgerService instance.
func NewLedgerService(oracle domain.PriceOracle, quests domain.QuestNotifier) *LedgerService {
	return &LedgerService{
		Oracle: oracle,
		Quests: quests,
	}
}

// Buy purchases shares of a symbol at the oracle's current price.
// Logic:
//  1. Normalize the symbol and validate the share count
//  2. Price the symbol; unknown symbols fail with UnknownSymbolError
//  3. Check solvency; a cost above the cash balance fails with
//     InsufficientFundsError reporting required vs available
//  4. Debit cash, fold the cost just paid into the weighted-average
//     cost basis, append the Buy transaction
//
// All checks run before any mutation, so a failed buy leaves the session
// untouched.
func (s *LedgerService) Buy(ctx context.Context, session *domain.Session, symbol string, shares int64) (*TradeConfirmation, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if shares <= 0 {
		return nil, errors.New("share count must be positive")
	}

	price, ok, err := s.Oracle.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.UnknownSymbolError{Symbol: symbol}
	}

	cost := price.Mul(decimal.NewFromInt(shares))
	if cost.GreaterThan(session.Cash) {
		return nil, &domain.InsufficientFundsError{Required: cost, Available: session.Cash}
	}

	// Point of no return: every mutation below must happen as a unit.
	session.Cash = session.Cash.Sub(cost)

	if pos := session.Position(symbol); pos != nil {
		// Weighted average over the cost actually paid, not the quoted
		// price: (old_avg×old_shares + cost) / (old_shares + shares).
		oldShares := decimal.NewFromInt(pos.Shares)
		newShares := pos.Shares + shares
		pos.AvgPrice = pos.AvgPrice.Mul(oldShares).Add(cost).Div(decimal.NewFromInt(newShares))
		pos.Shares = newShares
	} else {
		session.Positions[symbol] = &domain.Position{
			Symbol:   symbol,
			Shares:   shares,
			AvgPrice: price,
		}
	}

	s.appendTransaction(session, domain.TransactionKindBuy, symbol, shares, price, cost)
	s.Quests.Complete(session, domain.QuestFirstTrade)

	return &TradeConfirmation{
		Kind:   domain.TransactionKindBuy,
		Symbol: symbol,
		Shares: shares,
		Price:  price,
		Total:  cost,
	}, nil
}

// Sell disposes shares of a held symbol at the oracle's current price.
// Logic:
//  1. Normalize the symbol and validate the share count
//  2. The symbol must be held (NoPositionError) and the quantity must not
//     exceed the holding (InsufficientSharesError, reporting what is held)
//  3. The oracle must still price the symbol (UnknownSymbolError covers
//     the stale/delisted case even though a position exists)
//  4. Credit the revenue, reduce the position — removing it entirely when
//     it reaches zero shares — and append the Sell transaction
//
// Partial sells leave the average price unchanged (average-cost
// accounting, not lot tracking); no realized gain is computed.
func (s *LedgerService) Sell(ctx context.Context, session *domain.Session, symbol string, shares int64) (*TradeConfirmation, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if shares <= 0 {
		return nil, errors.New("share count must be positive")
	}

	pos := session.Position(symbol)
	if pos == nil {
		return nil, &domain.NoPositionError{Symbol: symbol}
	}
	if shares > pos.Shares {
		return nil, &domain.InsufficientSharesError{Symbol: symbol, Held: pos.Shares}
	}

	price, ok, err := s.Oracle.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.UnknownSymbolError{Symbol: symbol}
	}

	revenue := price.Mul(decimal.NewFromInt(shares))

	pos.Shares -= shares
	if pos.Shares == 0 {
		// The average price is discarded with the position; history keeps
		// the record of what was paid.
		delete(session.Positions, symbol)
	}
	session.Cash = session.Cash.Add(revenue)

	s.appendTransaction(session, domain.TransactionKindSell, symbol, shares, price, revenue)

	return &TradeConfirmation{
		Kind:   domain.TransactionKindSell,
		Symbol: symbol,
		Shares: shares,
		Price:  price,
		Total:  revenue,
	}, nil
}

// Summary values every held position at the oracle's current price.
// Prices are never cached on the position: each call re-reads the oracle,
// and a symbol the oracle no longer prices is reported with
// PriceKnown=false and a zero value contribution. Holdings are sorted by
// symbol so output order is deterministic. Summary does not mutate the
// session.
func (s *LedgerService) Summary(ctx context.Context, session *domain.Session) (*PortfolioSummary, error) {
	symbols := make([]string, 0, len(session.Positions))
	for symbol := range session.Positions {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	summary := &PortfolioSummary{
		Holdings:   make([]Holding, 0, len(symbols)),
		TotalValue: decimal.Zero,
	}

	for _, symbol := range symbols {
		pos := session.Positions[symbol]
		holding := Holding{
			Symbol:   symbol,
			Shares:   pos.Shares,
			AvgPrice: pos.AvgPrice,
		}

		price, ok, err := s.Oracle.Lookup(ctx, symbol)
		if err != nil {
			return nil, err
		}
		if ok {
			holding.Price = price
			holding.PriceKnown = true
			holding.Value = pos.MarketValue(price)
			summary.TotalValue = summary.TotalValue.Add(holding.Value)
		}

		summary.Holdings = append(summary.Holdings, holding)
	}

	return summary, nil
}

// History returns the most recent limit transactions, newest first.
// A non-positive limit returns the full history. The returned slice is a
// copy; the underlying log is never mutated.
func (s *LedgerService) History(session *domain.Session, limit int) []domain.Transaction {
	n := len(session.Transactions)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]domain.Transaction, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, session.Transactions[i])
	}
	return out
}

func (s *LedgerService) appendTransaction(session *domain.Session, kind domain.TransactionKind, symbol string, shares int64, price, total decimal.Decimal) {
	session.Transactions = append(session.Transactions, domain.Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Symbol:    symbol,
		Shares:    shares,
		Price:     price,
		Total:     total,
		Timestamp: time.Now(),
	})
}

// normalizeSymbol folds a user-supplied symbol to the canonical upper-case
// key once at the boundary, so lookups and the position map never disagree
// on case.
func normalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", errors.New("stock symbol cannot be empty")
	}
	return symbol, nil
}
