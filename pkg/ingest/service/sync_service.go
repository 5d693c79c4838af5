package service

import "errors"

// ErrNoSheetName rejects a sync call with a missing tab name before
// any store mutation happens.
var ErrNoSheetName = errors.New("sheet name required")

// ErrNotConfigured means no spreadsheet has been configured yet.
var ErrNotConfigured = errors.New("spreadsheet not configured")

// SyncResult reports one sheet's sync outcome for caller-side progress
// display. Removed marks the recoverable tab-no-longer-exists path;
// Error carries a per-sheet failure inside a multi-sheet run.
type SyncResult struct {
	Sheet           string `json:"sheet"`
	Inserted        int    `json:"inserted"`
	SnapshotCreated bool   `json:"snapshot_created"`
	Qualifiers      int    `json:"qualifiers,omitempty"`
	Universals      int    `json:"universals,omitempty"`
	Removed         bool   `json:"removed,omitempty"`
	Error           string `json:"error,omitempty"`
}

type SyncService interface {
	// SyncField fetches one field tab, parses it, upserts the raw
	// snapshot and fully replaces the field's planting partition.
	SyncField(spreadsheetID, tab string) (*SyncResult, error)
	// SyncQualifiers fetches the Qualifiers tab, upserts each crop's
	// definition by (name, location) and reconciles the universal set.
	SyncQualifiers(spreadsheetID, tab string) (*SyncResult, error)
	// SyncAll runs every configured tab; per-sheet failures are
	// reported in the results, never aborting the rest of the run.
	SyncAll() ([]SyncResult, error)
	// RemoveField purges a field's snapshot and planting partition and
	// drops the tab from the tracked sheet list.
	RemoveField(tab string) error
}
