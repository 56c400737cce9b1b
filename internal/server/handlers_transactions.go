package server

import (
	"encoding/json"
	"net/http"

	"envelope/internal/ledger"
)

type createTransactionRequest struct {
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Description string  `json:"description"`
	Type        string  `json:"type" validate:"required,oneof=deposit withdraw"`
}

type transactionResponse struct {
	Transaction ledger.Transaction `json:"transaction"`
	Balance     float64            `json:"balance"`
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(req))
		return
	}

	var (
		txn     ledger.Transaction
		balance float64
		err     error
	)
	switch ledger.Type(req.Type) {
	case ledger.TypeDeposit:
		txn, balance, err = s.engine.Deposit(req.Category, req.Amount, req.Description)
	case ledger.TypeWithdraw:
		txn, balance, err = s.engine.Withdraw(req.Category, req.Amount, req.Description)
	}
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, transactionResponse{Transaction: txn, Balance: balance})
}

func validationMessage(req createTransactionRequest) string {
	switch {
	case req.Category == "":
		return "category is required"
	case req.Amount <= 0:
		return ledger.ErrAmountNotPositive.Error()
	default:
		return ledger.ErrUnknownType.Error()
	}
}

func (s *Server) listTransactions(w http.ResponseWriter, r *http.Request) {
	txns := s.engine.Transactions(r.URL.Query().Get("category"))
	if txns == nil {
		txns = []ledger.Transaction{}
	}
	writeJSON(w, http.StatusOK, txns)
}

type transferRequest struct {
	FromCategory string  `json:"from_category" validate:"required"`
	ToCategory   string  `json:"to_category" validate:"required"`
	Amount       float64 `json:"amount" validate:"gt=0"`
}

type transferResponse struct {
	FromBalance float64 `json:"from_balance"`
	ToBalance   float64 `json:"to_balance"`
}

func (s *Server) createTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		if req.Amount <= 0 && req.FromCategory != "" && req.ToCategory != "" {
			writeError(w, http.StatusBadRequest, ledger.ErrAmountNotPositive.Error())
		} else {
			writeError(w, http.StatusBadRequest, "from_category and to_category are required")
		}
		return
	}

	fromBal, toBal, err := s.engine.Transfer(req.FromCategory, req.ToCategory, req.Amount)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, transferResponse{FromBalance: fromBal, ToBalance: toBal})
}
