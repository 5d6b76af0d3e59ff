package models

// Tag represents a search label attached to stickers. The name is stored
// verbatim; Count tracks how many stickers currently carry the tag.
type Tag struct {
	Name  string `gorm:"primaryKey;size:100" json:"name"`
	Count int    `gorm:"default:0" json:"count"`
}

// TableName specifies the table name for GORM.
func (Tag) TableName() string {
	return "tags"
}

// StickerTag is a join row linking a sticker to one of its tags. Tag
// containment queries run against this table instead of scanning the
// stickers.tags column.
type StickerTag struct {
	StickerID int    `gorm:"primaryKey" json:"sticker_id"`
	TagName   string `gorm:"primaryKey;size:100;index" json:"tag_name"`
}

// TableName specifies the table name for GORM.
func (StickerTag) TableName() string {
	return "sticker_tags"
}

// DedupeTags collapses duplicate tag strings, keeping first occurrences in
// order. Empty strings are dropped.
func DedupeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
