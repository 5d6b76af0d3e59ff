package models

import (
	"time"

	"gorm.io/datatypes"
)

// Sticker represents a single emote stored in a folder. The same external
// emote may appear in any number of folders, but only once per folder.
type Sticker struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	SevenTVID string `gorm:"column:seven_tv_id;size:64;not null;uniqueIndex:idx_sticker_folder" json:"seven_tv_id"`

	EmoteName string `gorm:"size:255;not null" json:"emote_name"`
	FileName  string `gorm:"size:255;not null" json:"file_name"`
	URL       string `gorm:"size:500;not null" json:"url"`
	OwnerName string `gorm:"size:255" json:"owner_name,omitempty"`

	// Tags keeps the sticker's labels in their original order for display.
	// Search goes through the sticker_tags join rows, not this column.
	Tags     datatypes.JSONSlice[string] `json:"tags"`
	Animated bool                        `gorm:"default:false" json:"animated"`

	// FolderName groups stickers under a user's folder by shared key.
	// Deliberately not a foreign key: a sticker may outlive or precede
	// the user row owning its folder.
	FolderName string `gorm:"size:255;not null;index;uniqueIndex:idx_sticker_folder" json:"folder_name"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Sticker) TableName() string {
	return "stickers"
}

// TagList returns the sticker's tags as a plain string slice.
func (s *Sticker) TagList() []string {
	return []string(s.Tags)
}

// HasTag reports whether the sticker carries the given tag.
func (s *Sticker) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// CatalogStats provides aggregate statistics.
type CatalogStats struct {
	TotalUsers    int64     `json:"total_users"`
	TotalStickers int64     `json:"total_stickers"`
	TotalTags     int64     `json:"total_tags"`
	AnimatedCount int64     `json:"animated_count"`
	LastUpdated   time.Time `json:"last_updated"`
	DBSizeBytes   int64     `json:"db_size_bytes"`
}
