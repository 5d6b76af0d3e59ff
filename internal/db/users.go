package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/emotebox/stickerdex/internal/models"
)

// CreateUser inserts a new user, rejecting identity collisions. A clash on
// seven_tv_id fails with ErrDuplicateExternalIdentity, a clash on
// folder_name with ErrDuplicateFolder. LastSyncedAt defaults to now and
// EmoteCount to zero when unset.
func (db *DB) CreateUser(user *models.User) error {
	if user.SevenTVID == "" {
		return fmt.Errorf("seven_tv_id is required")
	}
	if user.FolderName == "" {
		return fmt.Errorf("folder_name is required")
	}
	if user.DisplayName == "" {
		return fmt.Errorf("display_name is required")
	}
	if user.LastSyncedAt.IsZero() {
		user.LastSyncedAt = time.Now()
	}

	return db.Transaction(func(tx *DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("seven_tv_id = ?", user.SevenTVID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check external identity: %w", err)
		}
		if count > 0 {
			return ErrDuplicateExternalIdentity
		}

		if err := tx.Model(&models.User{}).
			Where("folder_name = ?", user.FolderName).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check folder name: %w", err)
		}
		if count > 0 {
			return ErrDuplicateFolder
		}

		if err := tx.Create(user).Error; err != nil {
			return mapUniqueViolation(err)
		}
		return nil
	})
}

// RecordSync moves a user's last_synced_at to now and stores the reported
// emote count. Fails with ErrNotFound when no user has the given id.
func (db *DB) RecordSync(id int, emoteCount int) error {
	result := db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"last_synced_at": time.Now(),
			"emote_count":    emoteCount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordSyncBySevenTVID is RecordSync keyed by the external identity.
func (db *DB) RecordSyncBySevenTVID(sevenTVID string, emoteCount int) error {
	result := db.Model(&models.User{}).
		Where("seven_tv_id = ?", sevenTVID).
		Updates(map[string]interface{}{
			"last_synced_at": time.Now(),
			"emote_count":    emoteCount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordSyncByFolder is RecordSync keyed by the user's folder name.
func (db *DB) RecordSyncByFolder(folder string, emoteCount int) error {
	result := db.Model(&models.User{}).
		Where("folder_name = ?", folder).
		Updates(map[string]interface{}{
			"last_synced_at": time.Now(),
			"emote_count":    emoteCount,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetUser retrieves a user by id.
func (db *DB) GetUser(id int) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserBySevenTVID retrieves a user by external identity.
func (db *DB) GetUserBySevenTVID(sevenTVID string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "seven_tv_id = ?", sevenTVID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByFolder retrieves a user by folder name.
func (db *DB) GetUserByFolder(folder string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "folder_name = ?", folder).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users, most recently synced first.
func (db *DB) ListUsers() ([]models.User, error) {
	var users []models.User
	err := db.Order("last_synced_at DESC").Find(&users).Error
	return users, err
}
