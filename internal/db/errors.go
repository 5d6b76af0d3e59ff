package db

import (
	"errors"
	"strings"
)

// Catalog errors. All of them originate from constraint evaluation at write
// time and are surfaced to callers unchanged; use errors.Is to branch.
var (
	// ErrDuplicateExternalIdentity is returned when a user's seven_tv_id
	// collides with an existing user.
	ErrDuplicateExternalIdentity = errors.New("external identity already registered")

	// ErrDuplicateFolder is returned when a user's folder_name collides
	// with an existing user.
	ErrDuplicateFolder = errors.New("folder name already registered")

	// ErrDuplicateSticker is returned when a (seven_tv_id, folder_name)
	// pair collides with an existing sticker.
	ErrDuplicateSticker = errors.New("sticker already exists in folder")

	// ErrNotFound is returned when a sync or update targets a row that
	// does not exist.
	ErrNotFound = errors.New("record not found")
)

// mapUniqueViolation translates a SQLite UNIQUE violation into the matching
// catalog error. The duplicate pre-checks inside the insert transactions
// normally fire first; this covers writes that bypass them.
func mapUniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return err
	}
	switch {
	case strings.Contains(msg, "users.seven_tv_id"):
		return ErrDuplicateExternalIdentity
	case strings.Contains(msg, "users.folder_name"):
		return ErrDuplicateFolder
	case strings.Contains(msg, "stickers."):
		return ErrDuplicateSticker
	}
	return err
}
