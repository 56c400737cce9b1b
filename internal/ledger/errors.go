package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName         = errors.New("category name is required")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrAmountNotPositive = errors.New("amount must be positive")
	ErrUnknownType       = errors.New("invalid transaction type")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBadDateRange      = errors.New("custom range requires both start and end dates")
	ErrUnknownRange      = errors.New("invalid report range")
	ErrSaveFailed        = errors.New("failed to save data")
	ErrCorruptState      = errors.New("stored data is corrupt")
)

// InsufficientError is returned when a withdrawal or transfer exceeds the
// category's current balance. It carries the balance at the instant of the
// check so callers can report it.
type InsufficientError struct {
	Balance float64
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("insufficient funds: current balance is %.2f", e.Balance)
}

func (e *InsufficientError) Unwrap() error { return ErrInsufficientFunds }
