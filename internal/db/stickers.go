package db

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/emotebox/stickerdex/internal/models"
)

// InsertSticker adds a sticker to a folder. The sticker row, its
// sticker_tags index rows, and the tag counts are written in one
// transaction. A clash on (seven_tv_id, folder_name) fails with
// ErrDuplicateSticker; the same seven_tv_id in another folder is fine.
func (db *DB) InsertSticker(sticker *models.Sticker) error {
	if sticker.SevenTVID == "" {
		return fmt.Errorf("seven_tv_id is required")
	}
	if sticker.FolderName == "" {
		return fmt.Errorf("folder_name is required")
	}
	if sticker.EmoteName == "" {
		return fmt.Errorf("emote_name is required")
	}
	if sticker.FileName == "" {
		return fmt.Errorf("file_name is required")
	}
	if sticker.URL == "" {
		return fmt.Errorf("url is required")
	}

	sticker.Tags = datatypes.NewJSONSlice(models.DedupeTags(sticker.TagList()))
	if sticker.CreatedAt.IsZero() {
		sticker.CreatedAt = time.Now()
	}

	return db.Transaction(func(tx *DB) error {
		var count int64
		if err := tx.Model(&models.Sticker{}).
			Where("seven_tv_id = ? AND folder_name = ?", sticker.SevenTVID, sticker.FolderName).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check sticker: %w", err)
		}
		if count > 0 {
			return ErrDuplicateSticker
		}

		if err := tx.Create(sticker).Error; err != nil {
			return mapUniqueViolation(err)
		}

		for _, tag := range sticker.Tags {
			if err := tx.ensureTag(tag); err != nil {
				return fmt.Errorf("ensure tag %s: %w", tag, err)
			}
			if err := tx.addTagToSticker(sticker.ID, tag); err != nil {
				return fmt.Errorf("index tag %s: %w", tag, err)
			}
			if err := tx.Model(&models.Tag{}).Where("name = ?", tag).
				Update("count", gorm.Expr("count + 1")).Error; err != nil {
				return fmt.Errorf("increment tag count: %w", err)
			}
		}

		return nil
	})
}

// GetSticker retrieves a sticker by folder and emote name.
func (db *DB) GetSticker(folder, emoteName string) (*models.Sticker, error) {
	var sticker models.Sticker
	err := db.First(&sticker, "folder_name = ? AND emote_name = ?", folder, emoteName).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sticker, nil
}

// GetStickerBySevenTVID retrieves a sticker by folder and external identity.
func (db *DB) GetStickerBySevenTVID(folder, sevenTVID string) (*models.Sticker, error) {
	var sticker models.Sticker
	err := db.First(&sticker, "folder_name = ? AND seven_tv_id = ?", folder, sevenTVID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sticker, nil
}

// ListStickersByFolder returns a folder's stickers in insertion order.
// This is the indexed folder lookup path.
func (db *DB) ListStickersByFolder(folder string) ([]models.Sticker, error) {
	var stickers []models.Sticker
	err := db.Where("folder_name = ?", folder).
		Order("created_at, id").
		Find(&stickers).Error
	return stickers, err
}

// SearchStickersByTags returns stickers carrying at least one of the given
// tags, or every one of them when matchAll is set. The query runs against
// the sticker_tags index rows; duplicate query tags are collapsed first.
func (db *DB) SearchStickersByTags(tags []string, matchAll bool) ([]models.Sticker, error) {
	tags = models.DedupeTags(tags)
	if len(tags) == 0 {
		return []models.Sticker{}, nil
	}

	var stickers []models.Sticker
	query := db.Model(&models.Sticker{}).
		Joins("JOIN sticker_tags st ON stickers.id = st.sticker_id").
		Where("st.tag_name IN ?", tags)

	if matchAll {
		query = query.Group("stickers.id").
			Having("COUNT(DISTINCT st.tag_name) = ?", len(tags))
	} else {
		query = query.Distinct("stickers.*")
	}

	err := query.Order("stickers.created_at, stickers.id").Find(&stickers).Error
	if err != nil {
		return nil, fmt.Errorf("tag search: %w", err)
	}
	return stickers, nil
}

// CountStickersByFolder returns the number of stickers in a folder.
func (db *DB) CountStickersByFolder(folder string) (int64, error) {
	var count int64
	err := db.Model(&models.Sticker{}).Where("folder_name = ?", folder).Count(&count).Error
	return count, err
}

// ListStickerFolders returns the distinct folder names present in the
// stickers table, including folders whose user row is missing.
func (db *DB) ListStickerFolders() ([]string, error) {
	var folders []string
	err := db.Model(&models.Sticker{}).
		Distinct().
		Order("folder_name ASC").
		Pluck("folder_name", &folders).Error
	return folders, err
}
