package education

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/investifykids/investify-backend/internal/domain"
)

// EducationService handles the learning surfaces around the ledger:
// financial-term explanations and price checks. Both complete their
// quest only on a successful lookup.
type EducationService struct {
	Oracle   domain.PriceOracle
	Glossary domain.Glossary
	Quests   domain.QuestNotifier
}

// NewEducationService creates a new EducationService instance.
func NewEducationService(oracle domain.PriceOracle, glossary domain.Glossary, quests domain.QuestNotifier) *EducationService {
	return &EducationService{
		Oracle:   oracle,
		Glossary: glossary,
		Quests:   quests,
	}
}

// ExplainTerm looks up a financial term in the glossary. A known term
// returns its explanation and completes the learn-terms quest; an unknown
// term reports found=false without touching any quest.
func (s *EducationService) ExplainTerm(session *domain.Session, term string) (explanation string, found bool, err error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", false, errors.New("term cannot be empty")
	}

	explanation, found = s.Glossary.Explain(term)
	if found {
		s.Quests.Complete(session, domain.QuestTermsLearned)
	}
	return explanation, found, nil
}

// CheckPrice resolves the current price of a symbol via the oracle.
// A priced symbol completes the check-price quest; an unknown symbol
// returns UnknownSymbolError.
func (s *EducationService) CheckPrice(ctx context.Context, session *domain.Session, symbol string) (decimal.Decimal, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return decimal.Zero, errors.New("stock symbol cannot be empty")
	}

	price, ok, err := s.Oracle.Lookup(ctx, symbol)
	if err != nil {
		return decimal.Zero, err
	}
	if !ok {
		return decimal.Zero, &domain.UnknownSymbolError{Symbol: symbol}
	}

	s.Quests.Complete(session, domain.QuestPriceChecked)
	return price, nil
}
