// storage/kv_gorm.go
package storage

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"clinicflash-backend/models"
)

// GormKV persists records in the storage_records jsonb table.
type GormKV struct {
	db *gorm.DB
}

func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Get(key string) ([]byte, bool, error) {
	var record models.StorageRecord
	err := g.db.Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(record.Value), true, nil
}

func (g *GormKV) Set(key string, value []byte) error {
	record := models.StorageRecord{
		Key:   key,
		Value: models.JSONB(value),
	}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

func (g *GormKV) Delete(key string) error {
	return g.db.Where("key = ?", key).Delete(&models.StorageRecord{}).Error
}
