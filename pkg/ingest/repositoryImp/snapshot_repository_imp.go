package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"cropbook/entities"
	"cropbook/pkg/ingest/repository"
)

type snapshotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SnapshotRepository { return &snapshotRepo{db} }

func (r *snapshotRepo) Upsert(snap *entities.RawSheetSnapshot) (bool, error) {
	var existing entities.RawSheetSnapshot
	err := r.db.Where("spreadsheet_id = ? AND sheet_range = ?", snap.SpreadsheetID, snap.Range).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, r.db.Create(snap).Error
	}
	if err != nil {
		return false, err
	}
	existing.Grid = snap.Grid
	existing.Records = snap.Records
	return false, r.db.Save(&existing).Error
}

func (r *snapshotRepo) Find(spreadsheetID, sheetRange string) (*entities.RawSheetSnapshot, error) {
	var snap entities.RawSheetSnapshot
	if err := r.db.Where("spreadsheet_id = ? AND sheet_range = ?", spreadsheetID, sheetRange).First(&snap).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *snapshotRepo) Delete(spreadsheetID, sheetRange string) error {
	return r.db.Where("spreadsheet_id = ? AND sheet_range = ?", spreadsheetID, sheetRange).Delete(&entities.RawSheetSnapshot{}).Error
}
