package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/investifykids/investify-backend/internal/domain"
)

// writeJSON outputs a success response with the given status code.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr outputs an error response as {"error": "..."} with the status
// code mapped from the domain error kind.
func writeErr(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps domain errors to HTTP status codes:
// unknown symbol and missing position are 404, the two "not enough"
// outcomes are 409, everything else is a 400 input problem.
func statusFor(err error) int {
	var unknownSymbol *domain.UnknownSymbolError
	var noPosition *domain.NoPositionError
	var insufficientFunds *domain.InsufficientFundsError
	var insufficientShares *domain.InsufficientSharesError

	switch {
	case errors.As(err, &unknownSymbol), errors.As(err, &noPosition):
		return http.StatusNotFound
	case errors.As(err, &insufficientFunds), errors.As(err, &insufficientShares):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
