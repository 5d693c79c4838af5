package repositoryImp

import (
	"gorm.io/gorm"

	"cropbook/entities"
	"cropbook/pkg/qualitylog/repository"
)

type logRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.QualityLogRepository { return &logRepo{db} }

func (r *logRepo) Create(l *entities.QualityLog) error { return r.db.Create(l).Error }

func (r *logRepo) ListRecent(limit int) ([]entities.QualityLog, error) {
	var out []entities.QualityLog
	q := r.db.Order("assessment_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *logRepo) ListByCrop(crop string) ([]entities.QualityLog, error) {
	var out []entities.QualityLog
	if err := r.db.Where("crop = ?", crop).Order("assessment_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *logRepo) ListByField(field string) ([]entities.QualityLog, error) {
	var out []entities.QualityLog
	if err := r.db.Where("field = ?", field).Order("assessment_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *logRepo) ListFiltered(f repository.Filter) ([]entities.QualityLog, error) {
	var out []entities.QualityLog
	q := r.db.Order("assessment_date ASC")
	if f.Start != nil {
		q = q.Where("assessment_date >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("assessment_date <= ?", *f.End)
	}
	if f.Crop != "" {
		q = q.Where("crop = ?", f.Crop)
	}
	if f.Field != "" {
		q = q.Where("field = ?", f.Field)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *logRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.QualityLog{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
