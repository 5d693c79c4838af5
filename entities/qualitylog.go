package entities

import "time"

// Response is one answered question inside a quality log.
type Response struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// QualityLog is one completed assessment event. Crop/field/bed and the
// planting context are denormalized at creation time so the log stays
// meaningful after its source PlantingRecord is resynced or deleted.
// Logs are immutable; the only mutation is a whole-record delete.
type QualityLog struct {
	LogID            uint   `gorm:"primaryKey" json:"log_id"`
	PlantingRecordID *uint  `json:"planting_record_id,omitempty"`
	Crop             string `gorm:"index" json:"crop"`
	Variety          string `json:"variety"`
	Field            string `gorm:"index" json:"field"`
	Bed              string `json:"bed"`

	// Planting context snapshot, frozen at log creation.
	DatePlanted   string `json:"date_planted"`
	TrayCount     string `json:"tray_count"`
	RowCount      string `json:"row_count"`
	PlantingNotes string `json:"planting_notes"`

	AssessmentDate time.Time  `gorm:"index" json:"assessment_date"`
	Responses      []Response `gorm:"serializer:json" json:"responses"`
	Notes          string     `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}
