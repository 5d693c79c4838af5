package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"cropbook/entities"
	"cropbook/pkg/settings/repository"
)

type settingsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SettingsRepository { return &settingsRepo{db} }

func (r *settingsRepo) Get() (*entities.SheetSettings, error) {
	var s entities.SheetSettings
	if err := r.db.Order("id ASC").First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) IsConfigured() (bool, error) {
	_, err := r.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *settingsRepo) Upsert(s *entities.SheetSettings) error {
	existing, err := r.Get()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(s).Error
	}
	if err != nil {
		return err
	}
	s.ID = existing.ID
	return r.db.Save(s).Error
}
