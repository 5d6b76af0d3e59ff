package db

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/emotebox/stickerdex/internal/models"
)

// GetMeta retrieves a catalog metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var meta models.CatalogMeta
	err := db.First(&meta, "key = ?", key).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return meta.Value, nil
}

// SetMeta sets a catalog metadata value.
func (db *DB) SetMeta(key, value string) error {
	meta := models.CatalogMeta{Key: key, Value: value}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&meta).Error
}

// GetAllMeta retrieves all catalog metadata.
func (db *DB) GetAllMeta() (map[string]string, error) {
	var metas []models.CatalogMeta
	if err := db.Find(&metas).Error; err != nil {
		return nil, err
	}

	result := make(map[string]string)
	for _, meta := range metas {
		result[meta.Key] = meta.Value
	}
	return result, nil
}

// DeleteMeta deletes a catalog metadata entry.
func (db *DB) DeleteMeta(key string) error {
	return db.Delete(&models.CatalogMeta{}, "key = ?", key).Error
}

// GetOrCreateTrackingID returns the persistent anonymous tracking ID,
// minting one on first use.
func (db *DB) GetOrCreateTrackingID() string {
	id, err := db.GetMeta(models.MetaTrackingID)
	if err == nil && id != "" {
		return id
	}

	id = uuid.New().String()
	_ = db.SetMeta(models.MetaTrackingID, id)
	return id
}
