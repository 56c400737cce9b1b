package ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Range string

const (
	RangeAll    Range = "all"
	RangeToday  Range = "today"
	RangeWeek   Range = "week"
	RangeMonth  Range = "month"
	RangeYear   Range = "year"
	RangeCustom Range = "custom"
)

// ValidRange reports whether r is a known report range.
func ValidRange(r Range) bool {
	switch r {
	case RangeAll, RangeToday, RangeWeek, RangeMonth, RangeYear, RangeCustom:
		return true
	}
	return false
}

// ReportOptions parameterize report aggregation. Start and End are only
// consulted for RangeCustom and are interpreted as calendar days (times of
// day are ignored). Now is the reference clock for the relative ranges; the
// zero value means time.Now.
type ReportOptions struct {
	Range    Range
	Start    time.Time
	End      time.Time
	Detailed bool
	Now      time.Time
}

// Report is the aggregation behind both export formats: the date-filtered
// transaction set sorted by date ascending, per-category balances in
// creation order, and the grand total. Text and CSV are two renderings of
// this one data set.
type Report struct {
	GeneratedAt  time.Time
	Detailed     bool
	Transactions []Transaction
	Balances     []CategoryBalance
	Total        float64
}

// BuildReport filters the snapshot's transactions to the requested date
// range, then aggregates. The date filter runs before aggregation;
// per-category balances and the total always cover the full ledgers.
func BuildReport(snap Snapshot, opts ReportOptions) (*Report, error) {
	if opts.Range == "" {
		opts.Range = RangeAll
	}
	if !ValidRange(opts.Range) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRange, opts.Range)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	txns := make([]Transaction, 0, len(snap.Transactions))
	if opts.Range == RangeAll {
		txns = append(txns, snap.Transactions...)
	} else {
		start, end, err := rangeWindow(opts, now)
		if err != nil {
			return nil, err
		}
		for _, t := range snap.Transactions {
			if !t.Date.Before(start) && t.Date.Before(end) {
				txns = append(txns, t)
			}
		}
	}

	// Stable keeps insertion order for entries sharing a date, notably the
	// two legs of a transfer.
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.Before(txns[j].Date)
	})

	r := &Report{
		GeneratedAt:  now,
		Detailed:     opts.Detailed,
		Transactions: txns,
	}
	for _, c := range snap.Categories {
		bal := Balance(c.Ledger)
		r.Balances = append(r.Balances, CategoryBalance{Name: c.Name, Balance: bal})
		r.Total += bal
	}
	return r, nil
}

// rangeWindow resolves a relative or custom range to a half-open [start, end)
// interval on calendar-day boundaries in local time.
func rangeWindow(opts ReportOptions, now time.Time) (time.Time, time.Time, error) {
	var from, to time.Time
	switch opts.Range {
	case RangeToday:
		from, to = now, now
	case RangeWeek:
		// Week starts on Monday.
		from = now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
		to = now
	case RangeMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = now
	case RangeYear:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		to = now
	case RangeCustom:
		if opts.Start.IsZero() || opts.End.IsZero() {
			return time.Time{}, time.Time{}, ErrBadDateRange
		}
		from, to = opts.Start, opts.End
	}
	return startOfDay(from), startOfDay(to).AddDate(0, 0, 1), nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Text renders the report as a fixed-width table: the transaction listing
// (omitted unless Detailed), then category balances and the total.
func (r *Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Budget Report - %s\n", r.GeneratedAt.Format("2006-01-02 15:04"))

	if r.Detailed {
		b.WriteString(strings.Repeat("=", 100) + "\n")
		fmt.Fprintf(&b, "%-20s %-15s %-12s %10s  %s\n", "Date", "Category", "Type", "Amount", "Description")
		b.WriteString(strings.Repeat("-", 100) + "\n")
		for _, t := range r.Transactions {
			fmt.Fprintf(&b, "%-20s %-15s %-12s %10.2f  %s\n",
				t.Date.Format("2006-01-02 15:04:05"), t.Category, t.Type, t.Amount, t.Description)
		}
	}

	b.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	b.WriteString("Category Balances:\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for _, c := range r.Balances {
		fmt.Fprintf(&b, "%-20s %15.2f\n", c.Name, c.Balance)
	}
	b.WriteString(strings.Repeat("-", 50) + "\n")
	fmt.Fprintf(&b, "%-20s %15.2f\n", "Total Balance:", r.Total)
	b.WriteString(strings.Repeat("=", 50) + "\n")

	return b.String()
}

// CSV renders the same aggregation as delimited rows: the transaction table
// (omitted unless Detailed), a blank row, category balances, and the total.
func (r *Report) CSV() (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if r.Detailed {
		if err := w.Write([]string{"Date", "Category", "Type", "Amount", "Description"}); err != nil {
			return "", err
		}
		for _, t := range r.Transactions {
			rec := []string{
				t.Date.Format("2006-01-02 15:04:05"),
				t.Category,
				string(t.Type),
				formatAmount(t.Amount),
				t.Description,
			}
			if err := w.Write(rec); err != nil {
				return "", err
			}
		}
		if err := w.Write([]string{""}); err != nil {
			return "", err
		}
	}

	if err := w.Write([]string{"Category", "Balance"}); err != nil {
		return "", err
	}
	for _, c := range r.Balances {
		if err := w.Write([]string{c.Name, formatAmount(c.Balance)}); err != nil {
			return "", err
		}
	}
	if err := w.Write([]string{"Total Balance", formatAmount(r.Total)}); err != nil {
		return "", err
	}

	w.Flush()
	return buf.String(), w.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
