package entities

import "time"

// Location classifiers derived from the field (sheet) name.
const (
	LocationHighTunnel = "high_tunnel"
	LocationGreenhouse = "greenhouse"
	LocationOpenField  = "open_field"
)

// Replanting snapshots the crop a bed previously held before it was
// replanted with the current crop. Date is empty when the source note
// does not say when the replant happened.
type Replanting struct {
	Crop    string `json:"crop"`
	Variety string `json:"variety"`
	Notes   string `json:"notes"`
	Date    string `json:"date"`
}

// PlantingRecord is one crop occupying one bed in one field sheet.
// Records for a field are replaced wholesale on every sync of that
// field's tab; they are never patched in place.
type PlantingRecord struct {
	RecordID      uint        `gorm:"primaryKey" json:"record_id"`
	Field         string      `gorm:"index" json:"field"`
	Bed           string      `json:"bed"`
	Crop          string      `gorm:"index" json:"crop"`
	Variety       string      `json:"variety"`
	TrayCount     string      `json:"tray_count"`
	RowCount      string      `json:"row_count"`
	PlantedDate   string      `json:"planted_date"`
	Notes         string      `json:"notes"`
	Location      string      `json:"location"` // high_tunnel|greenhouse|open_field
	ReplantedFrom *Replanting `gorm:"serializer:json" json:"replanted_from,omitempty"`

	CreatedAt time.Time
}
