package models

import "time"

// CatalogMeta stores operational metadata as key-value pairs.
type CatalogMeta struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (CatalogMeta) TableName() string {
	return "catalog_meta"
}

// Common catalog meta keys.
const (
	MetaSchemaVersion = "schema_version"
	MetaTrackingID    = "tracking_id"
	MetaLastImportAt  = "last_import_at"
	MetaLastExportAt  = "last_export_at"
)

// MetaImportDigestPrefix prefixes the per-folder manifest digest keys used
// to skip unchanged re-imports.
const MetaImportDigestPrefix = "import_digest:"
