// Package diag defines the structured diagnostic events the projection engine
// returns alongside its results. The engine never writes mismatch reports to
// the console itself; callers forward events to their own observability
// layer.
package diag

import "fmt"

// Severity classifies a diagnostic event.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Event codes emitted by the engine.
const (
	CodeBalanceSheetImbalance = "balance_sheet_imbalance"
	CodeNegativeDebtPlug      = "negative_debt_plug"
	CodeCashReconciliation    = "cash_reconciliation_deviation"
	CodeUntrackedFinancing    = "untracked_financing_adjustment"
	CodeStatementMismatch     = "statement_field_mismatch"
	CodeLinkageBreak          = "period_linkage_break"
)

// Event is one structured diagnostic finding tied to a fiscal year.
type Event struct {
	Severity Severity
	Code     string
	Year     int
	Message  string
}

// String renders the event for logs.
func (e Event) String() string {
	return fmt.Sprintf("[%s] %s year=%d: %s", e.Severity, e.Code, e.Year, e.Message)
}

// Events is an ordered list of diagnostic findings.
type Events []Event

// Warningf appends a warning-severity event.
func (ev *Events) Warningf(code string, year int, format string, args ...interface{}) {
	*ev = append(*ev, Event{Severity: Warning, Code: code, Year: year, Message: fmt.Sprintf(format, args...)})
}

// Errorf appends an error-severity event.
func (ev *Events) Errorf(code string, year int, format string, args ...interface{}) {
	*ev = append(*ev, Event{Severity: Error, Code: code, Year: year, Message: fmt.Sprintf(format, args...)})
}

// Infof appends an info-severity event.
func (ev *Events) Infof(code string, year int, format string, args ...interface{}) {
	*ev = append(*ev, Event{Severity: Info, Code: code, Year: year, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether any event carries Error severity.
func (ev Events) HasErrors() bool {
	for _, e := range ev {
		if e.Severity == Error {
			return true
		}
	}
	return false
}

// Filter returns the events matching the given code.
func (ev Events) Filter(code string) Events {
	var out Events
	for _, e := range ev {
		if e.Code == code {
			out = append(out, e)
		}
	}
	return out
}
