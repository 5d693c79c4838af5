package entities

import "time"

// Assessment is one question on a crop's quality-check form, with the
// answer options offered to field staff.
type Assessment struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QualifierDefinition is the assessment question set for one crop,
// optionally scoped to a location token from the Qualifiers sheet
// (e.g. "Cucumbers, HT"). (Name, Location) is the upsert key; an empty
// Location is a distinct key from any location value.
type QualifierDefinition struct {
	QualifierID uint         `gorm:"primaryKey" json:"qualifier_id"`
	Name        string       `gorm:"index:idx_qualifier_name_location" json:"name"`
	Location    string       `gorm:"index:idx_qualifier_name_location" json:"location"`
	Assessments []Assessment `gorm:"serializer:json" json:"assessments"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UniversalQualifier is a question that appeared under every crop block
// in the latest Qualifiers parse. The stored set is reconciled to
// exactly the latest pass on every sync, keyed by Question.
type UniversalQualifier struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Question     string   `gorm:"uniqueIndex" json:"question"`
	Options      []string `gorm:"serializer:json" json:"options"`
	DisplayOrder int      `json:"display_order"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
