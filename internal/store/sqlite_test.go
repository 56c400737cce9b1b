package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envelope/internal/ledger"
)

func openTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "budget.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openTestSQLite(t)

	want := sampleSnapshot()
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)

	require.Len(t, got.Categories, 2)
	assert.Equal(t, "Food", got.Categories[0].Name)
	assert.Equal(t, "Transport", got.Categories[1].Name)
	assert.Empty(t, got.Categories[1].Ledger)

	require.Len(t, got.Transactions, 2)
	for i, txn := range got.Transactions {
		assert.Equal(t, want.Transactions[i].ID, txn.ID)
		assert.Equal(t, want.Transactions[i].Amount, txn.Amount)
		assert.Equal(t, want.Transactions[i].Type, txn.Type)
		assert.True(t, txn.Date.Equal(want.Transactions[i].Date))
	}
	require.Len(t, got.Categories[0].Ledger, 2)
	assert.Equal(t, 70.0, ledger.Balance(got.Categories[0].Ledger))
}

func TestSQLiteEmptyDatabase(t *testing.T) {
	s := openTestSQLite(t)

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Transactions)
}

func TestSQLiteSaveRewrites(t *testing.T) {
	s := openTestSQLite(t)

	require.NoError(t, s.Save(sampleSnapshot()))
	require.NoError(t, s.Save(ledger.Snapshot{
		Categories: []ledger.CategoryState{{Name: "Rent"}},
	}))

	snap, err := s.Load()
	require.NoError(t, err)
	require.Len(t, snap.Categories, 1)
	assert.Equal(t, "Rent", snap.Categories[0].Name)
	assert.Empty(t, snap.Transactions)
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(sampleSnapshot()))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Categories, 2)
	assert.Len(t, snap.Transactions, 2)
}
