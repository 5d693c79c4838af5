package entities

import "time"

// RawSheetSnapshot is the verbatim grid plus parsed records for one
// (spreadsheet, range) pair — the ingestion audit trail. Upserted by
// that compound key on every sync.
type RawSheetSnapshot struct {
	SnapshotID    uint             `gorm:"primaryKey" json:"snapshot_id"`
	SpreadsheetID string           `gorm:"index:idx_snapshot_sheet_range" json:"spreadsheet_id"`
	Range         string           `gorm:"column:sheet_range;index:idx_snapshot_sheet_range" json:"range"`
	Grid          [][]string       `gorm:"serializer:json" json:"grid"`
	Records       []PlantingRecord `gorm:"serializer:json" json:"records"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
