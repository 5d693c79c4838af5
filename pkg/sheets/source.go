package sheets

import "errors"

// ErrSheetNotFound reports that the named tab no longer exists in the
// source spreadsheet (renamed or removed upstream). Callers treat it as
// a recoverable condition, not a fatal sync error.
var ErrSheetNotFound = errors.New("sheet not found")

// Source is the external spreadsheet provider. FetchGrid returns the
// raw cell grid of one tab, ErrSheetNotFound when the tab is gone, or
// any other error for transient upstream failures.
type Source interface {
	FetchGrid(spreadsheetID, tab string) ([][]string, error)
	Tabs(spreadsheetID string) ([]string, error)
}
