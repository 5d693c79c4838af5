package repository

import "cropbook/entities"

// SnapshotRepository stores the verbatim grid + parsed payload for one
// (spreadsheet, range) pair.
type SnapshotRepository interface {
	// Upsert patches the snapshot with the same (SpreadsheetID, Range)
	// key in place, inserting when none exists. Reports whether the
	// call created a new snapshot.
	Upsert(snap *entities.RawSheetSnapshot) (created bool, err error)
	Find(spreadsheetID, sheetRange string) (*entities.RawSheetSnapshot, error)
	Delete(spreadsheetID, sheetRange string) error
}
