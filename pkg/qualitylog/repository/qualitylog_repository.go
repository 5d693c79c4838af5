package repository

import (
	"time"

	"cropbook/entities"
)

// Filter narrows a log scan. Start/End are inclusive and applied to
// AssessmentDate; Crop and Field are exact matches. All optional,
// AND-combined.
type Filter struct {
	Start *time.Time
	End   *time.Time
	Crop  string
	Field string
}

type QualityLogRepository interface {
	Create(l *entities.QualityLog) error
	ListRecent(limit int) ([]entities.QualityLog, error)
	ListByCrop(crop string) ([]entities.QualityLog, error)
	ListByField(field string) ([]entities.QualityLog, error)
	ListFiltered(f Filter) ([]entities.QualityLog, error)
	// Delete is a hard delete; gorm.ErrRecordNotFound when id is absent.
	Delete(id uint) error
}
