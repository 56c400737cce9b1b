package server

import (
	"fmt"
	"net/http"
	"time"

	"envelope/internal/ledger"
)

// exportReport writes the report as a downloadable attachment. Query
// parameters: format (txt|csv), detailed (bool), range
// (all|today|week|month|year|custom), start/end (YYYY-MM-DD, custom only).
func (s *Server) exportReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = "txt"
	}
	if format != "txt" && format != "csv" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid report format %q", format))
		return
	}

	opts := ledger.ReportOptions{
		Range:    ledger.Range(q.Get("range")),
		Detailed: q.Get("detailed") == "true" || q.Get("detailed") == "1",
	}

	var err error
	if v := q.Get("start"); v != "" {
		if opts.Start, err = time.ParseInLocation("2006-01-02", v, time.Local); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid start date %q", v))
			return
		}
	}
	if v := q.Get("end"); v != "" {
		if opts.End, err = time.ParseInLocation("2006-01-02", v, time.Local); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid end date %q", v))
			return
		}
	}

	report, err := ledger.BuildReport(s.engine.Snapshot(), opts)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	var content, contentType string
	if format == "csv" {
		content, err = report.CSV()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		contentType = "text/csv"
	} else {
		content = report.Text()
		contentType = "text/plain; charset=utf-8"
	}

	filename := fmt.Sprintf("budget_report_%s.%s", report.GeneratedAt.Format("20060102"), format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, content)
}
