// Package models defines the core data structures for Stickerdex.
package models

import "time"

// User represents an emote-service account whose stickers are collected
// into a local folder. Both the external identity and the folder name are
// unique across all users.
type User struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	SevenTVID   string `gorm:"column:seven_tv_id;size:64;uniqueIndex;not null" json:"seven_tv_id"`
	FolderName  string `gorm:"size:255;uniqueIndex;not null" json:"folder_name"`
	DisplayName string `gorm:"size:255;not null" json:"display_name"`

	// LastSyncedAt starts at row creation and moves forward on each
	// recorded sync. EmoteCount tracks the size reported by that sync.
	LastSyncedAt time.Time `json:"last_synced_at"`
	EmoteCount   int       `gorm:"default:0" json:"emote_count"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
