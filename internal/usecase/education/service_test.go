package education

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/investifykids/investify-backend/internal/domain"
)

// MockPriceOracle is a mock implementation of PriceOracle for testing
type MockPriceOracle struct {
	mock.Mock
}

func (m *MockPriceOracle) Lookup(ctx context.Context, symbol string) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

// MockGlossary is a mock implementation of Glossary for testing
type MockGlossary struct {
	mock.Mock
}

func (m *MockGlossary) Explain(term string) (string, bool) {
	args := m.Called(term)
	return args.String(0), args.Bool(1)
}

// MockQuestNotifier is a mock implementation of QuestNotifier for testing
type MockQuestNotifier struct {
	mock.Mock
}

func (m *MockQuestNotifier) Complete(session *domain.Session, quest domain.Quest) {
	m.Called(session, quest)
}

func TestExplainTerm_KnownTerm(t *testing.T) {
	mockGlossary := new(MockGlossary)
	mockQuests := new(MockQuestNotifier)
	service := NewEducationService(new(MockPriceOracle), mockGlossary, mockQuests)
	session := domain.NewSession(decimal.Zero)

	mockGlossary.On("Explain", "stock").Return("A stock is a share representing ownership in a company.", true)
	mockQuests.On("Complete", session, domain.QuestTermsLearned).Return()

	explanation, found, err := service.ExplainTerm(session, "stock")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, explanation, "ownership")
	mockQuests.AssertExpectations(t)
}

func TestExplainTerm_UnknownTerm(t *testing.T) {
	mockGlossary := new(MockGlossary)
	mockQuests := new(MockQuestNotifier)
	service := NewEducationService(new(MockPriceOracle), mockGlossary, mockQuests)
	session := domain.NewSession(decimal.Zero)

	mockGlossary.On("Explain", "blockchain").Return("", false)

	_, found, err := service.ExplainTerm(session, "blockchain")

	require.NoError(t, err)
	assert.False(t, found)
	// A miss must not complete the quest
	mockQuests.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestExplainTerm_EmptyTerm(t *testing.T) {
	mockGlossary := new(MockGlossary)
	service := NewEducationService(new(MockPriceOracle), mockGlossary, new(MockQuestNotifier))
	session := domain.NewSession(decimal.Zero)

	_, _, err := service.ExplainTerm(session, "  ")

	assert.Error(t, err)
	mockGlossary.AssertNotCalled(t, "Explain", mock.Anything)
}

func TestCheckPrice_KnownSymbol(t *testing.T) {
	ctx := context.Background()
	mockOracle := new(MockPriceOracle)
	mockQuests := new(MockQuestNotifier)
	service := NewEducationService(mockOracle, new(MockGlossary), mockQuests)
	session := domain.NewSession(decimal.Zero)

	mockOracle.On("Lookup", ctx, "AAPL").Return(decimal.RequireFromString("150.12"), true, nil)
	mockQuests.On("Complete", session, domain.QuestPriceChecked).Return()

	price, err := service.CheckPrice(ctx, session, "aapl")

	require.NoError(t, err)
	assert.True(t, price.Equal(decimal.RequireFromString("150.12")))
	mockQuests.AssertExpectations(t)
}

func TestCheckPrice_UnknownSymbol(t *testing.T) {
	ctx := context.Background()
	mockOracle := new(MockPriceOracle)
	mockQuests := new(MockQuestNotifier)
	service := NewEducationService(mockOracle, new(MockGlossary), mockQuests)
	session := domain.NewSession(decimal.Zero)

	mockOracle.On("Lookup", ctx, "NOPE").Return(decimal.Zero, false, nil)

	_, err := service.CheckPrice(ctx, session, "NOPE")

	var unknownErr *domain.UnknownSymbolError
	require.ErrorAs(t, err, &unknownErr)
	mockQuests.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}
