package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// StorageRecord is the namespaced key-value row backing the persistence
// adapters. Values keep the exact JSON shapes the client wrote, so the
// storage layer stays compatible with existing clinic_* keys.
type StorageRecord struct {
	Key   string `gorm:"primary_key;type:varchar(128)"`
	Value JSONB  `gorm:"type:jsonb;default:'null'"`

	gorm.Model
}

// JSONB stores arbitrary JSON in a jsonb column.
type JSONB json.RawMessage

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	*j = append((*j)[0:0], b...)
	return nil
}
