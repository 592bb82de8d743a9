package httpapi

import "net/http"

// Router builds the HTTP handler. Routes are registered explicitly with
// method patterns; adding middleware or an /api/v2 group later only
// touches this file.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("POST /register", s.register)
	mux.HandleFunc("GET /account", s.account)
	mux.HandleFunc("GET /prices/{symbol}", s.price)
	mux.HandleFunc("GET /terms/{term}", s.term)
	mux.HandleFunc("POST /portfolio/buy", s.buy)
	mux.HandleFunc("POST /portfolio/sell", s.sell)
	mux.HandleFunc("GET /portfolio/summary", s.summary)
	mux.HandleFunc("GET /portfolio/history", s.history)
	mux.HandleFunc("GET /quests", s.quests)

	return mux
}
