package db

import (
	"gorm.io/gorm"

	"github.com/emotebox/stickerdex/internal/models"
)

// ensureTag creates the tag row if it does not exist yet.
func (db *DB) ensureTag(name string) error {
	return db.Exec("INSERT OR IGNORE INTO tags (name, count) VALUES (?, 0)", name).Error
}

// addTagToSticker writes the join row backing tag search.
func (db *DB) addTagToSticker(stickerID int, tagName string) error {
	return db.Exec("INSERT OR IGNORE INTO sticker_tags (sticker_id, tag_name) VALUES (?, ?)", stickerID, tagName).Error
}

// GetTag retrieves a tag by name.
func (db *DB) GetTag(name string) (*models.Tag, error) {
	var tag models.Tag
	err := db.First(&tag, "name = ?", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

// ListTags returns all tags, most used first.
func (db *DB) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	err := db.Order("count DESC, name ASC").Find(&tags).Error
	return tags, err
}

// GetTopTags returns the most used tags.
func (db *DB) GetTopTags(limit int) ([]models.Tag, error) {
	var tags []models.Tag
	err := db.Order("count DESC, name ASC").Limit(limit).Find(&tags).Error
	return tags, err
}

// GetTagsForSticker returns all tags indexed for a sticker.
func (db *DB) GetTagsForSticker(stickerID int) ([]models.Tag, error) {
	var tags []models.Tag
	err := db.Joins("JOIN sticker_tags st ON tags.name = st.tag_name").
		Where("st.sticker_id = ?", stickerID).
		Order("tags.name ASC").
		Find(&tags).Error
	return tags, err
}

// UpdateTagCounts recalculates tag counts from the sticker_tags rows.
func (db *DB) UpdateTagCounts() error {
	return db.Exec(`
		UPDATE tags SET count = (
			SELECT COUNT(*) FROM sticker_tags WHERE sticker_tags.tag_name = tags.name
		)
	`).Error
}
