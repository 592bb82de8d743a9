package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/investifykids/investify-backend/internal/domain"
)

// Request/response bodies. All money figures are rendered as strings with
// exactly two decimal places.

type registerRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type tradeRequest struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
}

type tradeResponse struct {
	Kind    string `json:"kind"`
	Symbol  string `json:"symbol"`
	Shares  int64  `json:"shares"`
	Price   string `json:"price"`
	Total   string `json:"total"`
	Message string `json:"message"`
}

type accountResponse struct {
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty"`
	Registered bool   `json:"registered"`
	Cash       string `json:"cash"`
}

type holdingResponse struct {
	Symbol   string `json:"symbol"`
	Shares   int64  `json:"shares"`
	AvgPrice string `json:"avg_price"`
	Price    string `json:"price,omitempty"` // omitted when unavailable
	Value    string `json:"value"`
}

type summaryResponse struct {
	Holdings   []holdingResponse `json:"holdings"`
	TotalValue string            `json:"total_value"`
	Cash       string            `json:"cash"`
}

type transactionResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Symbol    string `json:"symbol"`
	Shares    int64  `json:"shares"`
	Price     string `json:"price"`
	Total     string `json:"total"`
	Timestamp string `json:"timestamp"`
}

type questResponse struct {
	Quest       string `json:"quest"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// health handles GET /health.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// register handles POST /register.
func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.RegistrationService.Register(s.session, req.Name, req.Role); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Welcome, %s! You registered as a %s.", s.session.Name, s.session.Role),
	})
}

// account handles GET /account.
func (s *Server) account(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, accountResponse{
		Name:       s.session.Name,
		Role:       s.session.Role,
		Registered: s.session.Registered,
		Cash:       s.session.Cash.StringFixed(2),
	})
}

// price handles GET /prices/{symbol}.
func (s *Server) price(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	price, err := s.EducationService.CheckPrice(r.Context(), s.session, r.PathValue("symbol"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"price": price.StringFixed(2)})
}

// term handles GET /terms/{term}.
func (s *Server) term(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	explanation, found, err := s.EducationService.ExplainTerm(s.session, r.PathValue("term"))
	if err != nil {
		writeErr(w, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "Sorry, no explanation found for this term.",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"explanation": explanation})
}

// buy handles POST /portfolio/buy.
func (s *Server) buy(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conf, err := s.LedgerService.Buy(r.Context(), s.session, req.Symbol, req.Shares)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tradeResponse{
		Kind:   string(conf.Kind),
		Symbol: conf.Symbol,
		Shares: conf.Shares,
		Price:  conf.Price.StringFixed(2),
		Total:  conf.Total.StringFixed(2),
		Message: fmt.Sprintf("Bought %d shares of %s at $%s each for $%s.",
			conf.Shares, conf.Symbol, conf.Price.StringFixed(2), conf.Total.StringFixed(2)),
	})
}

// sell handles POST /portfolio/sell.
func (s *Server) sell(w http.ResponseWriter, r *http.Request) {
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conf, err := s.LedgerService.Sell(r.Context(), s.session, req.Symbol, req.Shares)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tradeResponse{
		Kind:   string(conf.Kind),
		Symbol: conf.Symbol,
		Shares: conf.Shares,
		Price:  conf.Price.StringFixed(2),
		Total:  conf.Total.StringFixed(2),
		Message: fmt.Sprintf("Sold %d shares of %s at $%s each for $%s.",
			conf.Shares, conf.Symbol, conf.Price.StringFixed(2), conf.Total.StringFixed(2)),
	})
}

// summary handles GET /portfolio/summary.
func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum, err := s.LedgerService.Summary(r.Context(), s.session)
	if err != nil {
		writeErr(w, err)
		return
	}

	resp := summaryResponse{
		Holdings:   make([]holdingResponse, 0, len(sum.Holdings)),
		TotalValue: sum.TotalValue.StringFixed(2),
		Cash:       s.session.Cash.StringFixed(2),
	}
	for _, h := range sum.Holdings {
		hr := holdingResponse{
			Symbol:   h.Symbol,
			Shares:   h.Shares,
			AvgPrice: h.AvgPrice.StringFixed(2),
			Value:    h.Value.StringFixed(2),
		}
		if h.PriceKnown {
			hr.Price = h.Price.StringFixed(2)
		}
		resp.Holdings = append(resp.Holdings, hr)
	}
	writeJSON(w, http.StatusOK, resp)
}

// history handles GET /portfolio/history?limit=N.
func (s *Server) history(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeErr(w, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	transactions := s.LedgerService.History(s.session, limit)
	resp := make([]transactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, toTransactionResponse(tx))
	}
	writeJSON(w, http.StatusOK, resp)
}

// quests handles GET /quests.
func (s *Server) quests(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	statuses := s.QuestTracker.Snapshot(s.session)
	resp := make([]questResponse, 0, len(statuses))
	for _, st := range statuses {
		resp = append(resp, questResponse{
			Quest:       string(st.Quest),
			Description: st.Description,
			Completed:   st.Completed,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func toTransactionResponse(tx domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID.String(),
		Kind:      string(tx.Kind),
		Symbol:    tx.Symbol,
		Shares:    tx.Shares,
		Price:     tx.Price.StringFixed(2),
		Total:     tx.Total.StringFixed(2),
		Timestamp: tx.Timestamp.Format(time.RFC3339Nano),
	}
}
