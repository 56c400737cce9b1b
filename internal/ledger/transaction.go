package ledger

import "time"

type Type string

const (
	TypeDeposit     Type = "deposit"
	TypeWithdraw    Type = "withdraw"
	TypeTransferOut Type = "transfer_out"
	TypeTransferIn  Type = "transfer_in"
)

// Transaction is a single immutable ledger entry. Amount is signed:
// positive for deposits and transfers in, negative for withdrawals and
// transfers out.
type Transaction struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        Type      `json:"type"`
	Category    string    `json:"category"`
}

// CategoryBalance is a category name with its derived balance.
type CategoryBalance struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// CategoryState is a category and its ledger as held in a snapshot.
type CategoryState struct {
	Name   string        `json:"name"`
	Ledger []Transaction `json:"ledger"`
}

// Snapshot is the full engine state: every category with its ledger, in
// creation order, plus the global transaction list in insertion order.
// It is both the engine's initial state and the unit of persistence.
type Snapshot struct {
	Categories   []CategoryState `json:"categories"`
	Transactions []Transaction   `json:"transactions"`
}

// Balance sums the signed amounts of a ledger. Balances are always derived
// this way; no stored balance exists that could drift from the ledger.
func Balance(entries []Transaction) float64 {
	var total float64
	for _, t := range entries {
		total += t.Amount
	}
	return total
}
