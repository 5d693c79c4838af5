package repository

import "cropbook/entities"

// SettingsRepository manages the single shared spreadsheet
// configuration row. Get returns gorm.ErrRecordNotFound until the
// first Upsert.
type SettingsRepository interface {
	Get() (*entities.SheetSettings, error)
	IsConfigured() (bool, error)
	Upsert(s *entities.SheetSettings) error
}
