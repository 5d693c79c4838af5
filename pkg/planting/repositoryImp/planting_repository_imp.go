package repositoryImp

import (
	"gorm.io/gorm"

	"cropbook/entities"
	"cropbook/pkg/planting/repository"
)

type plantingRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantingRepository { return &plantingRepo{db} }

// ReplaceForField runs the full partition replace inside one
// transaction so a concurrent reader never observes a half-replaced
// field.
func (r *plantingRepo) ReplaceForField(field string, recs []entities.PlantingRecord) (int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("field = ?", field).Delete(&entities.PlantingRecord{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.Create(&recs).Error
	})
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

func (r *plantingRepo) DeleteByField(field string) error {
	return r.db.Where("field = ?", field).Delete(&entities.PlantingRecord{}).Error
}

func (r *plantingRepo) ListByField(field string) ([]entities.PlantingRecord, error) {
	var out []entities.PlantingRecord
	if err := r.db.Where("field = ?", field).Order("bed ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantingRepo) Fields() ([]string, error) {
	var out []string
	if err := r.db.Model(&entities.PlantingRecord{}).Distinct("field").Order("field ASC").Pluck("field", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plantingRepo) FindByID(id uint) (*entities.PlantingRecord, error) {
	var rec entities.PlantingRecord
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}
