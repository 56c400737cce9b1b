package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportSnapshot(now time.Time) Snapshot {
	txn := func(daysAgo int, category string, amount float64, typ Type, desc string) Transaction {
		return Transaction{
			ID:          "txn-" + category + "-" + desc,
			Amount:      amount,
			Description: desc,
			Date:        now.AddDate(0, 0, -daysAgo),
			Type:        typ,
			Category:    category,
		}
	}

	old := txn(400, "Food", 500, TypeDeposit, "last year")
	recent := txn(2, "Food", 100, TypeDeposit, "this week")
	today := txn(0, "Food", -30, TypeWithdraw, "lunch today")
	transport := txn(10, "Transport", 40, TypeDeposit, "bus pass")

	return Snapshot{
		Categories: []CategoryState{
			{Name: "Food", Ledger: []Transaction{old, recent, today}},
			{Name: "Transport", Ledger: []Transaction{transport}},
		},
		Transactions: []Transaction{old, recent, today, transport},
	}
}

func TestBuildReport(t *testing.T) {
	// Mid-month, mid-week reference point so the relative ranges are
	// unambiguous: a Thursday.
	now := time.Date(2026, 6, 18, 15, 30, 0, 0, time.Local)
	snap := reportSnapshot(now)

	descriptions := func(r *Report) []string {
		out := make([]string, 0, len(r.Transactions))
		for _, txn := range r.Transactions {
			out = append(out, txn.Description)
		}
		return out
	}

	t.Run("all range includes everything", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeAll, Now: now})
		require.NoError(t, err)
		assert.Len(t, r.Transactions, 4)
	})

	t.Run("empty range defaults to all", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Now: now})
		require.NoError(t, err)
		assert.Len(t, r.Transactions, 4)
	})

	t.Run("today", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeToday, Now: now})
		require.NoError(t, err)
		assert.Equal(t, []string{"lunch today"}, descriptions(r))
	})

	t.Run("week starts on monday", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeWeek, Now: now})
		require.NoError(t, err)
		// Tuesday and Thursday entries are in; 10 days ago is not.
		assert.Equal(t, []string{"this week", "lunch today"}, descriptions(r))
	})

	t.Run("month", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeMonth, Now: now})
		require.NoError(t, err)
		assert.Equal(t, []string{"bus pass", "this week", "lunch today"}, descriptions(r))
	})

	t.Run("year excludes prior year", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeYear, Now: now})
		require.NoError(t, err)
		assert.Equal(t, []string{"bus pass", "this week", "lunch today"}, descriptions(r))
	})

	t.Run("custom range is inclusive of both days", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{
			Range: RangeCustom,
			Start: now.AddDate(0, 0, -10),
			End:   now,
			Now:   now,
		})
		require.NoError(t, err)
		assert.Len(t, r.Transactions, 3)
	})

	t.Run("custom range requires both dates", func(t *testing.T) {
		_, err := BuildReport(snap, ReportOptions{Range: RangeCustom, Start: now, Now: now})
		assert.ErrorIs(t, err, ErrBadDateRange)

		_, err = BuildReport(snap, ReportOptions{Range: RangeCustom, End: now, Now: now})
		assert.ErrorIs(t, err, ErrBadDateRange)
	})

	t.Run("unknown range", func(t *testing.T) {
		_, err := BuildReport(snap, ReportOptions{Range: "fortnight", Now: now})
		assert.ErrorIs(t, err, ErrUnknownRange)
	})

	t.Run("transactions ordered by date", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeAll, Now: now})
		require.NoError(t, err)
		for i := 1; i < len(r.Transactions); i++ {
			assert.False(t, r.Transactions[i].Date.Before(r.Transactions[i-1].Date))
		}
	})

	t.Run("balances cover full ledgers regardless of range", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeToday, Now: now})
		require.NoError(t, err)
		require.Len(t, r.Balances, 2)
		assert.Equal(t, CategoryBalance{Name: "Food", Balance: 570}, r.Balances[0])
		assert.Equal(t, CategoryBalance{Name: "Transport", Balance: 40}, r.Balances[1])
		assert.Equal(t, 610.0, r.Total)
	})
}

func TestReportText(t *testing.T) {
	now := time.Date(2026, 6, 18, 15, 30, 0, 0, time.Local)
	snap := reportSnapshot(now)

	t.Run("detailed", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeAll, Detailed: true, Now: now})
		require.NoError(t, err)

		out := r.Text()
		assert.Contains(t, out, "Budget Report - 2026-06-18 15:30")
		assert.Contains(t, out, "Description")
		assert.Contains(t, out, "lunch today")
		assert.Contains(t, out, "Category Balances:")
		assert.Contains(t, out, "Total Balance:")
		assert.Contains(t, out, "610.00")
	})

	t.Run("summary omits the transaction table", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeAll, Detailed: false, Now: now})
		require.NoError(t, err)

		out := r.Text()
		assert.NotContains(t, out, "lunch today")
		assert.Contains(t, out, "Category Balances:")
		assert.Contains(t, out, "610.00")
	})
}

func TestReportCSV(t *testing.T) {
	now := time.Date(2026, 6, 18, 15, 30, 0, 0, time.Local)
	snap := reportSnapshot(now)

	t.Run("detailed", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeAll, Detailed: true, Now: now})
		require.NoError(t, err)

		out, err := r.CSV()
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		assert.Equal(t, "Date,Category,Type,Amount,Description", lines[0])
		assert.Contains(t, out, "Category,Balance")
		assert.Contains(t, out, "Food,570.00")
		assert.Contains(t, out, "Transport,40.00")
		assert.Equal(t, "Total Balance,610.00", lines[len(lines)-1])
	})

	t.Run("summary", func(t *testing.T) {
		r, err := BuildReport(snap, ReportOptions{Range: RangeAll, Detailed: false, Now: now})
		require.NoError(t, err)

		out, err := r.CSV()
		require.NoError(t, err)
		assert.NotContains(t, out, "lunch today")
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		assert.Equal(t, "Category,Balance", lines[0])
	})
}

func TestBalance(t *testing.T) {
	assert.Equal(t, 0.0, Balance(nil))
	assert.Equal(t, 70.0, Balance([]Transaction{
		{Amount: 100, Type: TypeDeposit},
		{Amount: -30, Type: TypeWithdraw},
	}))
}
