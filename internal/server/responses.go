package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"envelope/internal/ledger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeEngineError maps an engine error to an HTTP response. Insufficient
// funds gets its own shape so clients can show the current balance.
func writeEngineError(w http.ResponseWriter, err error) {
	var ie *ledger.InsufficientError
	if errors.As(err, &ie) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":           err.Error(),
			"current_balance": ie.Balance,
		})
		return
	}
	writeError(w, mapError(err), err.Error())
}

func mapError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrDuplicateCategory):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrEmptyName),
		errors.Is(err, ledger.ErrAmountNotPositive),
		errors.Is(err, ledger.ErrUnknownType),
		errors.Is(err, ledger.ErrBadDateRange),
		errors.Is(err, ledger.ErrUnknownRange):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
