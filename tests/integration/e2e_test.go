//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investifykids/investify-backend/internal/adapter/glossary"
	"github.com/investifykids/investify-backend/internal/adapter/httpapi"
	"github.com/investifykids/investify-backend/internal/adapter/pricing"
	"github.com/investifykids/investify-backend/internal/config"
	"github.com/investifykids/investify-backend/internal/domain"
	"github.com/investifykids/investify-backend/internal/usecase/education"
	"github.com/investifykids/investify-backend/internal/usecase/ledger"
	"github.com/investifykids/investify-backend/internal/usecase/quest"
	"github.com/investifykids/investify-backend/internal/usecase/registration"
)

// newServer wires the whole stack from the default config, exactly like
// cmd/server does.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Default()
	startingCash, err := cfg.DecimalStartingCash()
	require.NoError(t, err)
	prices, err := cfg.DecimalPrices()
	require.NoError(t, err)

	oracle := pricing.NewStaticOracle(prices)
	terms := glossary.NewStaticGlossary(cfg.Terms)
	questTracker := quest.NewTracker()
	session := domain.NewSession(startingCash)

	server := httpapi.NewServer(
		session,
		ledger.NewLedgerService(oracle, questTracker),
		registration.NewRegistrationService(questTracker),
		education.NewEducationService(oracle, terms, questTracker),
		questTracker,
	)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	decoded := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func TestFullUserJourney(t *testing.T) {
	ts := newServer(t)

	// 1. Register
	resp, body := postJSON(t, ts.URL+"/register", map[string]any{"name": "Ana", "role": "Child"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body["message"], "Welcome, Ana")

	// 2. Learn a term
	var termBody map[string]any
	resp = getJSON(t, ts.URL+"/terms/fintech", &termBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, termBody["explanation"], "financial technology")

	// 3. Check a price
	var priceBody map[string]any
	resp = getJSON(t, ts.URL+"/prices/AAPL", &priceBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "150.12", priceBody["price"])

	// 4. Buy twice, sell everything: cash returns to the start
	resp, body = postJSON(t, ts.URL+"/portfolio/buy", map[string]any{"symbol": "AAPL", "shares": 10})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1501.20", body["total"])

	resp, _ = postJSON(t, ts.URL+"/portfolio/buy", map[string]any{"symbol": "aapl", "shares": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary map[string]any
	resp = getJSON(t, ts.URL+"/portfolio/summary", &summary)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	holdings := summary["holdings"].([]any)
	require.Len(t, holdings, 1)
	holding := holdings[0].(map[string]any)
	assert.Equal(t, float64(15), holding["shares"])
	assert.Equal(t, "150.12", holding["avg_price"])

	resp, body = postJSON(t, ts.URL+"/portfolio/sell", map[string]any{"symbol": "AAPL", "shares": 15})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2251.80", body["total"])

	var account map[string]any
	resp = getJSON(t, ts.URL+"/account", &account)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "10000.00", account["cash"])
	assert.Equal(t, "Ana", account["name"])

	// Closed position is gone from the summary
	resp = getJSON(t, ts.URL+"/portfolio/summary", &summary)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, summary["holdings"])
	assert.Equal(t, "0.00", summary["total_value"])

	// 5. History is newest first and bounded
	var history []map[string]any
	resp = getJSON(t, ts.URL+"/portfolio/history?limit=2", &history)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, history, 2)
	assert.Equal(t, "SELL", history[0]["kind"])
	assert.Equal(t, "BUY", history[1]["kind"])

	// 6. Every quest is done
	var quests []map[string]any
	resp = getJSON(t, ts.URL+"/quests", &quests)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, quests, 4)
	for _, q := range quests {
		assert.True(t, q["completed"].(bool), "quest %v should be completed", q["quest"])
	}
}

func TestFailuresLeaveStateUntouched(t *testing.T) {
	ts := newServer(t)

	// Oversized buy
	resp, body := postJSON(t, ts.URL+"/portfolio/buy", map[string]any{"symbol": "AAPL", "shares": 1000})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "not enough cash: need $150120.00 but have only $10000.00", body["error"])

	// Sell of a never-held symbol
	resp, _ = postJSON(t, ts.URL+"/portfolio/sell", map[string]any{"symbol": "XYZ", "shares": 1})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unknown symbol
	resp, _ = postJSON(t, ts.URL+"/portfolio/buy", map[string]any{"symbol": "NOPE", "shares": 1})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var account map[string]any
	resp = getJSON(t, ts.URL+"/account", &account)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "10000.00", account["cash"])

	var history []map[string]any
	resp = getJSON(t, ts.URL+"/portfolio/history", &history)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, history)
}
