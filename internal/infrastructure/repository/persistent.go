package repository

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bluestock/ipoboard"
	"github.com/bluestock/ipoboard/internal/domain"
	"github.com/bluestock/ipoboard/internal/infrastructure/database/models"
)

// Persistent stores a collection in Postgres, one JSON payload per
// record. Enabled when a DSN is configured; otherwise Memory is used.
type Persistent[T ipoboard.Record] struct {
	db         *gorm.DB
	collection string
}

func NewPersistent[T ipoboard.Record](db *gorm.DB, collection string) *Persistent[T] {
	return &Persistent[T]{db: db, collection: collection}
}

func (r *Persistent[T]) List(ctx context.Context) ([]T, error) {
	var rows []models.Row
	err := r.db.WithContext(ctx).
		Where("collection = ?", r.collection).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rows")
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		var record T
		if err := json.Unmarshal([]byte(row.Value), &record); err != nil {
			return nil, errors.Wrap(err, "failed to decode row value")
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *Persistent[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	var row models.Row
	err := r.db.WithContext(ctx).
		Where("collection = ? AND id = ?", r.collection, id).
		Take(&row).Error
	if err == gorm.ErrRecordNotFound {
		return zero, domain.NotFoundError{Resource: "record"}
	}
	if err != nil {
		return zero, errors.Wrap(err, "failed to load row")
	}

	var record T
	if err := json.Unmarshal([]byte(row.Value), &record); err != nil {
		return zero, errors.Wrap(err, "failed to decode row value")
	}
	return record, nil
}

func (r *Persistent[T]) Create(ctx context.Context, record T) error {
	value, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to encode record")
	}

	row := models.Row{
		Collection: r.collection,
		ID:         record.RecordID(),
		Value:      string(value),
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		DoNothing: true,
	}).Create(&row).Error
	return errors.Wrap(err, "failed to create row")
}

func (r *Persistent[T]) Update(ctx context.Context, record T) error {
	value, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to encode record")
	}

	result := r.db.WithContext(ctx).
		Model(&models.Row{}).
		Where("collection = ? AND id = ?", r.collection, record.RecordID()).
		Update("value", string(value))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update row")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "record"}
	}
	return nil
}

func (r *Persistent[T]) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).
		Where("collection = ? AND id = ?", r.collection, id).
		Delete(&models.Row{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete row")
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "record"}
	}
	return nil
}
