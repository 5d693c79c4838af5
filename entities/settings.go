package entities

import "time"

// SheetSettings is the single shared spreadsheet configuration row read
// by every server instance. Kept as persisted state (not in-process)
// so concurrent instances observe the same value; the write path is
// upsert-only.
type SheetSettings struct {
	ID              uint     `gorm:"primaryKey" json:"id"`
	SpreadsheetID   string   `json:"spreadsheet_id"`
	SheetNames      []string `gorm:"serializer:json" json:"sheet_names"`
	QualifiersSheet string   `json:"qualifiers_sheet"`

	UpdatedAt time.Time `json:"updated_at"`
}
