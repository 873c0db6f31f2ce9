package historyrepo

import (
	"context"

	"loadplanner/internal/core/domain/model/plan"

	"gorm.io/gorm"
)

// GormLoadHistoryRepository implements ports.LoadHistoryRepository using GORM.
type GormLoadHistoryRepository struct {
	db *gorm.DB
}

// NewGormLoadHistoryRepository creates a repository bound to db.
func NewGormLoadHistoryRepository(db *gorm.DB) *GormLoadHistoryRepository {
	return &GormLoadHistoryRepository{db: db}
}

// Add inserts the record.
func (r *GormLoadHistoryRepository) Add(ctx context.Context, record *plan.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}
