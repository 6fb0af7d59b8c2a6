package imports

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Record(tunnelName, sourcePath, sourceType, outcome, detail string) (*ImportRecord, error) {
	record := &ImportRecord{
		ID:         uuid.NewString(),
		TunnelName: tunnelName,
		SourcePath: sourcePath,
		SourceType: sourceType,
		Outcome:    outcome,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}

	err := r.db.Create(record).Error

	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *Repository) Recent(limit int) ([]ImportRecord, error) {
	var records []ImportRecord

	err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}
