package repository

import "cropbook/entities"

type PlantingRepository interface {
	// ReplaceForField deletes every record in the field partition and
	// inserts recs fresh, atomically. Returns the inserted count.
	ReplaceForField(field string, recs []entities.PlantingRecord) (int, error)
	DeleteByField(field string) error
	ListByField(field string) ([]entities.PlantingRecord, error)
	Fields() ([]string, error)
	FindByID(id uint) (*entities.PlantingRecord, error)
}
