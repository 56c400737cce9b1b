package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envelope/internal/ledger"
)

func sampleSnapshot() ledger.Snapshot {
	date := time.Date(2026, 4, 2, 9, 15, 0, 0, time.Local)
	deposit := ledger.Transaction{
		ID:          "0196-test-deposit",
		Amount:      100,
		Description: "budget",
		Date:        date,
		Type:        ledger.TypeDeposit,
		Category:    "Food",
	}
	withdraw := ledger.Transaction{
		ID:          "0196-test-withdraw",
		Amount:      -30,
		Description: "lunch",
		Date:        date.Add(time.Hour),
		Type:        ledger.TypeWithdraw,
		Category:    "Food",
	}
	return ledger.Snapshot{
		Categories: []ledger.CategoryState{
			{Name: "Food", Ledger: []ledger.Transaction{deposit, withdraw}},
			{Name: "Transport", Ledger: nil},
		},
		Transactions: []ledger.Transaction{deposit, withdraw},
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.json")
	s := NewJSONFile(path)

	want := sampleSnapshot()
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got.Categories, 2)
	assert.Equal(t, "Food", got.Categories[0].Name)
	assert.Equal(t, "Transport", got.Categories[1].Name)
	require.Len(t, got.Transactions, 2)
	assert.Equal(t, want.Transactions[0].ID, got.Transactions[0].ID)
	assert.Equal(t, want.Transactions[0].Amount, got.Transactions[0].Amount)
	assert.True(t, got.Transactions[0].Date.Equal(want.Transactions[0].Date))
}

func TestJSONFileMissingFile(t *testing.T) {
	s := NewJSONFile(filepath.Join(t.TempDir(), "nope.json"))

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Categories)
	assert.Empty(t, snap.Transactions)
}

func TestJSONFileCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "budget.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewJSONFile(path)
	snap, err := s.Load()
	require.ErrorIs(t, err, ledger.ErrCorruptState)
	assert.Empty(t, snap.Categories)

	// The bad file is moved aside, not deleted.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
	quarantined, globErr := filepath.Glob(path + ".corrupt-*")
	require.NoError(t, globErr)
	assert.Len(t, quarantined, 1)

	// A save after recovery starts a fresh file.
	require.NoError(t, s.Save(ledger.Snapshot{}))
	_, err = s.Load()
	assert.NoError(t, err)
}

func TestJSONFileSaveReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.json")
	s := NewJSONFile(path)

	require.NoError(t, s.Save(sampleSnapshot()))
	require.NoError(t, s.Save(ledger.Snapshot{}))

	snap, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Categories)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestOpenBackendSelection(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		st, err := Open(BackendJSON, filepath.Join(dir, "a.json"))
		require.NoError(t, err)
		assert.IsType(t, &JSONFile{}, st)
	})

	t.Run("sqlite", func(t *testing.T) {
		st, err := Open(BackendSQLite, filepath.Join(dir, "a.db"))
		require.NoError(t, err)
		assert.IsType(t, &SQLite{}, st)
	})

	t.Run("memory", func(t *testing.T) {
		st, err := Open(BackendMemory, "")
		require.NoError(t, err)
		assert.IsType(t, &Memory{}, st)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Open("redis", "")
		assert.Error(t, err)
	})
}
