package ledger

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store persists engine snapshots.
type Store interface {
	Load() (Snapshot, error)
	Save(Snapshot) error
}

// Engine owns the category set and transaction history and enforces the
// bookkeeping rules: derived balances, funds-sufficiency checks, atomic
// double-entry transfers, unique category names.
//
// Every mutation is applied in memory and then saved through the store as
// one unit. If the save fails the mutation is rolled back and the error is
// returned; the operation is never reported as committed. A single mutex
// serializes all operations, so the engine can sit behind a multi-request
// server without further coordination.
type Engine struct {
	mu    sync.Mutex
	store Store
	now   func() time.Time

	names []string // category creation order
	cats  map[string][]Transaction
	txns  []Transaction
}

// New builds an engine from an explicit initial state. There is no implicit
// default data; pass an empty snapshot for a fresh ledger.
func New(snap Snapshot, st Store) *Engine {
	e := &Engine{
		store: st,
		now:   time.Now,
		cats:  make(map[string][]Transaction, len(snap.Categories)),
	}
	for _, c := range snap.Categories {
		e.names = append(e.names, c.Name)
		e.cats[c.Name] = slices.Clone(c.Ledger)
	}
	e.txns = slices.Clone(snap.Transactions)
	return e
}

// CreateCategory adds a new empty category. The name is trimmed and must be
// non-empty and unique.
func (e *Engine) CreateCategory(name string) (CategoryBalance, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryBalance{}, ErrEmptyName
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.cats[name]; ok {
		return CategoryBalance{}, fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
	}

	e.names = append(e.names, name)
	e.cats[name] = nil

	if err := e.persistLocked(); err != nil {
		e.names = e.names[:len(e.names)-1]
		delete(e.cats, name)
		return CategoryBalance{}, err
	}
	return CategoryBalance{Name: name, Balance: 0}, nil
}

// Deposit appends an inflow to the category's ledger and returns the new
// transaction together with the updated balance.
func (e *Engine) Deposit(category string, amount float64, description string) (Transaction, float64, error) {
	return e.addEntry(category, amount, description, TypeDeposit)
}

// Withdraw appends an outflow to the category's ledger. It fails with an
// *InsufficientError if amount exceeds the current balance, so a balance can
// never go negative.
func (e *Engine) Withdraw(category string, amount float64, description string) (Transaction, float64, error) {
	return e.addEntry(category, amount, description, TypeWithdraw)
}

func (e *Engine) addEntry(category string, amount float64, description string, typ Type) (Transaction, float64, error) {
	if typ != TypeDeposit && typ != TypeWithdraw {
		return Transaction{}, 0, fmt.Errorf("%w: %s", ErrUnknownType, typ)
	}
	if amount <= 0 {
		return Transaction{}, 0, ErrAmountNotPositive
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	entries, ok := e.cats[category]
	if !ok {
		return Transaction{}, 0, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
	}

	signed := amount
	if typ == TypeWithdraw {
		if bal := Balance(entries); amount > bal {
			return Transaction{}, 0, &InsufficientError{Balance: bal}
		}
		signed = -amount
	}

	txn := Transaction{
		ID:          newID(),
		Amount:      signed,
		Description: strings.TrimSpace(description),
		Date:        e.now(),
		Type:        typ,
		Category:    category,
	}
	e.cats[category] = append(entries, txn)
	e.txns = append(e.txns, txn)

	if err := e.persistLocked(); err != nil {
		e.cats[category] = entries
		e.txns = e.txns[:len(e.txns)-1]
		return Transaction{}, 0, err
	}
	return txn, Balance(e.cats[category]), nil
}

// Transfer moves amount from one category to another as a pair of entries:
// a transfer_out on the source and a transfer_in on the destination, with
// equal magnitude and the same timestamp. Either both entries are recorded
// or neither is. Transferring a category to itself is allowed and nets to
// zero. Returns the resulting balances of both categories.
func (e *Engine) Transfer(from, to string, amount float64) (float64, float64, error) {
	if amount <= 0 {
		return 0, 0, ErrAmountNotPositive
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	fromEntries, ok := e.cats[from]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrCategoryNotFound, from)
	}
	if _, ok := e.cats[to]; !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrCategoryNotFound, to)
	}
	if bal := Balance(fromEntries); amount > bal {
		return 0, 0, &InsufficientError{Balance: bal}
	}

	date := e.now()
	out := Transaction{
		ID:          newID(),
		Amount:      -amount,
		Description: "Transfer to " + to,
		Date:        date,
		Type:        TypeTransferOut,
		Category:    from,
	}
	in := Transaction{
		ID:          newID(),
		Amount:      amount,
		Description: "Transfer from " + from,
		Date:        date,
		Type:        TypeTransferIn,
		Category:    to,
	}

	prevFrom, prevTo := e.cats[from], e.cats[to]
	e.cats[from] = append(e.cats[from], out)
	e.cats[to] = append(e.cats[to], in)
	e.txns = append(e.txns, out, in)

	if err := e.persistLocked(); err != nil {
		e.cats[from] = prevFrom
		e.cats[to] = prevTo
		e.txns = e.txns[:len(e.txns)-2]
		return 0, 0, err
	}
	return Balance(e.cats[from]), Balance(e.cats[to]), nil
}

// DeleteCategory removes the category and purges every transaction tagged
// with its name from the global list. Irreversible; there is no soft delete.
func (e *Engine) DeleteCategory(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.cats[name]; !ok {
		return fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}

	idx := slices.Index(e.names, name)
	prevEntries := e.cats[name]
	prevTxns := e.txns

	e.names = slices.Delete(slices.Clone(e.names), idx, idx+1)
	delete(e.cats, name)
	kept := make([]Transaction, 0, len(prevTxns))
	for _, t := range prevTxns {
		if t.Category != name {
			kept = append(kept, t)
		}
	}
	e.txns = kept

	if err := e.persistLocked(); err != nil {
		e.names = slices.Insert(e.names, idx, name)
		e.cats[name] = prevEntries
		e.txns = prevTxns
		return err
	}
	return nil
}

// Balance returns the derived balance of a single category.
func (e *Engine) Balance(name string) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries, ok := e.cats[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	return Balance(entries), nil
}

// Categories lists every category with its balance, in creation order.
func (e *Engine) Categories() []CategoryBalance {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]CategoryBalance, 0, len(e.names))
	for _, name := range e.names {
		out = append(out, CategoryBalance{Name: name, Balance: Balance(e.cats[name])})
	}
	return out
}

// Transactions returns the global transaction list in insertion order,
// optionally restricted to a single category. The empty string matches all.
func (e *Engine) Transactions(category string) []Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()

	if category == "" {
		return slices.Clone(e.txns)
	}
	var out []Transaction
	for _, t := range e.txns {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Ledger returns a single category's entries in insertion order.
func (e *Engine) Ledger(name string) ([]Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries, ok := e.cats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
	}
	return slices.Clone(entries), nil
}

// Snapshot returns a copy of the full engine state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	snap := Snapshot{
		Categories:   make([]CategoryState, 0, len(e.names)),
		Transactions: slices.Clone(e.txns),
	}
	for _, name := range e.names {
		snap.Categories = append(snap.Categories, CategoryState{
			Name:   name,
			Ledger: slices.Clone(e.cats[name]),
		})
	}
	return snap
}

func (e *Engine) persistLocked() error {
	if err := e.store.Save(e.snapshotLocked()); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
