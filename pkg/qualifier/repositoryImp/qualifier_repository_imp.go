package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"cropbook/entities"
	"cropbook/pkg/qualifier/repository"
)

type qualifierRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.QualifierRepository { return &qualifierRepo{db} }

func (r *qualifierRepo) UpsertDefinition(def *entities.QualifierDefinition) (bool, error) {
	var existing entities.QualifierDefinition
	err := r.db.Where("name = ? AND location = ?", def.Name, def.Location).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, r.db.Create(def).Error
	}
	if err != nil {
		return false, err
	}
	existing.Assessments = def.Assessments
	return false, r.db.Save(&existing).Error
}

func (r *qualifierRepo) FindByNameLocation(name, location string) (*entities.QualifierDefinition, error) {
	var def entities.QualifierDefinition
	if err := r.db.Where("name = ? AND location = ?", name, location).First(&def).Error; err != nil {
		return nil, err
	}
	return &def, nil
}

func (r *qualifierRepo) ListDefinitions() ([]entities.QualifierDefinition, error) {
	var out []entities.QualifierDefinition
	if err := r.db.Order("name ASC, location ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *qualifierRepo) ReconcileUniversals(latest []entities.UniversalQualifier) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var stored []entities.UniversalQualifier
		if err := tx.Find(&stored).Error; err != nil {
			return err
		}
		byQuestion := map[string]entities.UniversalQualifier{}
		for _, u := range stored {
			byQuestion[u.Question] = u
		}
		wanted := map[string]bool{}
		for _, u := range latest {
			wanted[u.Question] = true
			if existing, ok := byQuestion[u.Question]; ok {
				existing.Options = u.Options
				existing.DisplayOrder = u.DisplayOrder
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
				continue
			}
			rec := u
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		for _, u := range stored {
			if !wanted[u.Question] {
				if err := tx.Delete(&entities.UniversalQualifier{}, u.ID).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *qualifierRepo) ListUniversals() ([]entities.UniversalQualifier, error) {
	var out []entities.UniversalQualifier
	if err := r.db.Order("display_order ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
