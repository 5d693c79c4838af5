package entities

import "time"

// GuideDoc is a crop reference article ingested as raw text or from an
// allow-listed URL.
type GuideDoc struct {
	DocID     uint   `gorm:"primaryKey" json:"doc_id"`
	Title     string `json:"title"`
	Crop      string `gorm:"index" json:"crop"`
	SourceURL string `json:"source_url"`
	CreatedAt time.Time
}

// GuideChunk is one searchable slice of a guide document.
type GuideChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	DocID     uint   `gorm:"index" json:"doc_id"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	CreatedAt time.Time
}
