package db

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/emotebox/stickerdex/internal/models"
)

func insertTestSticker(t *testing.T, db *DB, sevenTVID, emoteName, folder string, tags ...string) *models.Sticker {
	t.Helper()

	sticker := &models.Sticker{
		SevenTVID:  sevenTVID,
		EmoteName:  emoteName,
		FileName:   emoteName + "_" + sevenTVID + ".webp",
		URL:        "https://cdn.7tv.app/emote/" + sevenTVID + "/4x.webp",
		FolderName: folder,
		Tags:       tags,
	}
	if err := db.InsertSticker(sticker); err != nil {
		t.Fatalf("InsertSticker(%s/%s) error = %v", folder, emoteName, err)
	}
	return sticker
}

func TestInsertSticker(t *testing.T) {
	db := testDB(t)

	sticker := &models.Sticker{
		SevenTVID:  "s1",
		EmoteName:  "Kappa",
		FileName:   "Kappa_s1.webp",
		URL:        "https://cdn.7tv.app/emote/s1/4x.webp",
		OwnerName:  "twitch",
		Tags:       []string{"funny", "rare"},
		FolderName: "f1",
	}
	if err := db.InsertSticker(sticker); err != nil {
		t.Fatalf("InsertSticker() error = %v", err)
	}
	if sticker.ID == 0 {
		t.Error("InsertSticker() did not assign an ID")
	}
	if sticker.CreatedAt.IsZero() {
		t.Error("CreatedAt should default to insertion time")
	}

	retrieved, err := db.GetSticker("f1", "Kappa")
	if err != nil {
		t.Fatalf("GetSticker() error = %v", err)
	}
	if retrieved == nil {
		t.Fatal("GetSticker() returned nil for existing sticker")
	}
	if retrieved.OwnerName != "twitch" {
		t.Errorf("OwnerName = %q, want %q", retrieved.OwnerName, "twitch")
	}
	if retrieved.Animated {
		t.Error("Animated should default to false")
	}

	tags := retrieved.TagList()
	if len(tags) != 2 || tags[0] != "funny" || tags[1] != "rare" {
		t.Errorf("TagList() = %v, want [funny rare]", tags)
	}
}

func TestInsertSticker_DuplicateInFolder(t *testing.T) {
	db := testDB(t)

	insertTestSticker(t, db, "s1", "Kappa", "f1", "funny")

	// Same emote in the same folder is a duplicate, regardless of other fields
	dup := &models.Sticker{
		SevenTVID:  "s1",
		EmoteName:  "KappaRenamed",
		FileName:   "other.webp",
		URL:        "https://cdn.7tv.app/emote/s1/2x.webp",
		FolderName: "f1",
	}
	err := db.InsertSticker(dup)
	if !errors.Is(err, ErrDuplicateSticker) {
		t.Errorf("InsertSticker() error = %v, want ErrDuplicateSticker", err)
	}
}

func TestInsertSticker_SameEmoteDifferentFolder(t *testing.T) {
	db := testDB(t)

	insertTestSticker(t, db, "s1", "Kappa", "f1")

	// The same emote may appear in any number of distinct folders
	second := &models.Sticker{
		SevenTVID:  "s1",
		EmoteName:  "Kappa",
		FileName:   "Kappa_s1.webp",
		URL:        "https://cdn.7tv.app/emote/s1/4x.webp",
		FolderName: "f2",
	}
	if err := db.InsertSticker(second); err != nil {
		t.Fatalf("InsertSticker() into second folder error = %v", err)
	}

	count1, err := db.CountStickersByFolder("f1")
	if err != nil {
		t.Fatalf("CountStickersByFolder() error = %v", err)
	}
	count2, err := db.CountStickersByFolder("f2")
	if err != nil {
		t.Fatalf("CountStickersByFolder() error = %v", err)
	}
	if count1 != 1 || count2 != 1 {
		t.Errorf("counts = %d/%d, want 1/1", count1, count2)
	}
}

func TestInsertSticker_Validation(t *testing.T) {
	db := testDB(t)

	valid := models.Sticker{
		SevenTVID:  "v1",
		EmoteName:  "Valid",
		FileName:   "valid.webp",
		URL:        "https://x/valid",
		FolderName: "vf",
	}

	tests := []struct {
		name   string
		mutate func(*models.Sticker)
	}{
		{"missing seven_tv_id", func(s *models.Sticker) { s.SevenTVID = "" }},
		{"missing emote_name", func(s *models.Sticker) { s.EmoteName = "" }},
		{"missing file_name", func(s *models.Sticker) { s.FileName = "" }},
		{"missing url", func(s *models.Sticker) { s.URL = "" }},
		{"missing folder_name", func(s *models.Sticker) { s.FolderName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sticker := valid
			tt.mutate(&sticker)
			if err := db.InsertSticker(&sticker); err == nil {
				t.Error("InsertSticker() succeeded, want validation error")
			}
		})
	}
}

func TestInsertSticker_OrphanFolder(t *testing.T) {
	db := testDB(t)

	// No user owns this folder; the sticker must still be accepted
	sticker := &models.Sticker{
		SevenTVID:  "orphan-1",
		EmoteName:  "Ghost",
		FileName:   "ghost.webp",
		URL:        "https://x/ghost",
		FolderName: "abandoned",
	}
	if err := db.InsertSticker(sticker); err != nil {
		t.Fatalf("InsertSticker() into orphan folder error = %v", err)
	}

	stickers, err := db.ListStickersByFolder("abandoned")
	if err != nil {
		t.Fatalf("ListStickersByFolder() error = %v", err)
	}
	if len(stickers) != 1 {
		t.Errorf("ListStickersByFolder() returned %d stickers, want 1", len(stickers))
	}
}

func TestInsertSticker_DedupesTags(t *testing.T) {
	db := testDB(t)

	sticker := &models.Sticker{
		SevenTVID:  "dup-tags",
		EmoteName:  "DupTags",
		FileName:   "dup.webp",
		URL:        "https://x/dup",
		FolderName: "f1",
		Tags:       []string{"funny", "funny", "rare", ""},
	}
	if err := db.InsertSticker(sticker); err != nil {
		t.Fatalf("InsertSticker() error = %v", err)
	}

	retrieved, err := db.GetSticker("f1", "DupTags")
	if err != nil {
		t.Fatalf("GetSticker() error = %v", err)
	}
	tags := retrieved.TagList()
	if len(tags) != 2 {
		t.Fatalf("TagList() = %v, want 2 tags", tags)
	}
	if tags[0] != "funny" || tags[1] != "rare" {
		t.Errorf("TagList() = %v, want [funny rare]", tags)
	}

	// The index carries each tag once
	funny, err := db.GetTag("funny")
	if err != nil {
		t.Fatalf("GetTag() error = %v", err)
	}
	if funny == nil || funny.Count != 1 {
		t.Errorf("tag funny count = %+v, want 1", funny)
	}
}

func TestInsertSticker_KeepsProvidedCreatedAt(t *testing.T) {
	db := testDB(t)

	createdAt := time.Date(2023, 11, 5, 8, 30, 0, 0, time.UTC)
	sticker := &models.Sticker{
		SevenTVID:  "old-sticker",
		EmoteName:  "Old",
		FileName:   "old.webp",
		URL:        "https://x/old",
		FolderName: "f1",
		CreatedAt:  createdAt,
	}
	if err := db.InsertSticker(sticker); err != nil {
		t.Fatalf("InsertSticker() error = %v", err)
	}

	retrieved, err := db.GetSticker("f1", "Old")
	if err != nil {
		t.Fatalf("GetSticker() error = %v", err)
	}
	if !retrieved.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt = %v, want %v", retrieved.CreatedAt, createdAt)
	}
}

func TestGetSticker_NotFound(t *testing.T) {
	db := testDB(t)

	sticker, err := db.GetSticker("nope", "Nothing")
	if err != nil {
		t.Fatalf("GetSticker() error = %v", err)
	}
	if sticker != nil {
		t.Error("GetSticker() should return nil for missing sticker")
	}

	byID, err := db.GetStickerBySevenTVID("nope", "s404")
	if err != nil {
		t.Fatalf("GetStickerBySevenTVID() error = %v", err)
	}
	if byID != nil {
		t.Error("GetStickerBySevenTVID() should return nil for missing sticker")
	}
}

func TestListStickersByFolder(t *testing.T) {
	db := testDB(t)

	// Interleave two folders; listing must return only the requested one,
	// in insertion order.
	insertTestSticker(t, db, "a1", "First", "alpha")
	insertTestSticker(t, db, "b1", "Other", "beta")
	insertTestSticker(t, db, "a2", "Second", "alpha")
	insertTestSticker(t, db, "a3", "Third", "alpha")

	stickers, err := db.ListStickersByFolder("alpha")
	if err != nil {
		t.Fatalf("ListStickersByFolder() error = %v", err)
	}
	if len(stickers) != 3 {
		t.Fatalf("ListStickersByFolder() returned %d stickers, want 3", len(stickers))
	}

	wantOrder := []string{"First", "Second", "Third"}
	for i, want := range wantOrder {
		if stickers[i].EmoteName != want {
			t.Errorf("stickers[%d] = %q, want %q", i, stickers[i].EmoteName, want)
		}
	}
}

func TestListStickersByFolder_Empty(t *testing.T) {
	db := testDB(t)

	stickers, err := db.ListStickersByFolder("empty")
	if err != nil {
		t.Fatalf("ListStickersByFolder() error = %v", err)
	}
	if len(stickers) != 0 {
		t.Errorf("ListStickersByFolder() returned %d stickers, want 0", len(stickers))
	}
}

func TestSearchStickersByTags_Any(t *testing.T) {
	db := testDB(t)

	insertTestSticker(t, db, "s1", "Funny", "f1", "funny")
	insertTestSticker(t, db, "s2", "Rare", "f1", "rare")
	insertTestSticker(t, db, "s3", "Both", "f1", "funny", "rare")
	insertTestSticker(t, db, "s4", "Neither", "f1", "serious")

	results, err := db.SearchStickersByTags([]string{"funny", "rare"}, false)
	if err != nil {
		t.Fatalf("SearchStickersByTags() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("SearchStickersByTags() returned %d stickers, want 3", len(results))
	}

	// A sticker matching several requested tags appears once
	seen := make(map[string]int)
	for _, s := range results {
		seen[s.EmoteName]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("sticker %q appeared %d times, want 1", name, n)
		}
	}
	if seen["Neither"] != 0 {
		t.Error("sticker without any requested tag should not match")
	}
}

func TestSearchStickersByTags_All(t *testing.T) {
	db := testDB(t)

	insertTestSticker(t, db, "s1", "Funny", "f1", "funny")
	insertTestSticker(t, db, "s2", "Rare", "f1", "rare")
	insertTestSticker(t, db, "s3", "Both", "f1", "funny", "rare")

	results, err := db.SearchStickersByTags([]string{"funny", "rare"}, true)
	if err != nil {
		t.Fatalf("SearchStickersByTags() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("SearchStickersByTags() returned %d stickers, want 1", len(results))
	}
	if results[0].EmoteName != "Both" {
		t.Errorf("result = %q, want %q", results[0].EmoteName, "Both")
	}
}

func TestSearchStickersByTags_AllWithDuplicateQuery(t *testing.T) {
	db := testDB(t)

	insertTestSticker(t, db, "s1", "Funny", "f1", "funny")

	// Repeated tags in the query collapse before matching
	results, err := db.SearchStickersByTags([]string{"funny", "funny"}, true)
	if err != nil {
		t.Fatalf("SearchStickersByTags() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("SearchStickersByTags() returned %d stickers, want 1", len(results))
	}
}

func TestSearchStickersByTags_Empty(t *testing.T) {
	db := testDB(t)

	insertTestSticker(t, db, "s1", "Funny", "f1", "funny")

	for _, matchAll := range []bool{false, true} {
		results, err := db.SearchStickersByTags(nil, matchAll)
		if err != nil {
			t.Fatalf("SearchStickersByTags(nil, %v) error = %v", matchAll, err)
		}
		if len(results) != 0 {
			t.Errorf("SearchStickersByTags(nil, %v) returned %d stickers, want 0", matchAll, len(results))
		}
	}
}

func TestSearchStickersByTags_AcrossFolders(t *testing.T) {
	db := testDB(t)

	insertTestSticker(t, db, "s1", "Kappa", "f1", "funny")
	insertTestSticker(t, db, "s1", "Kappa", "f2", "funny")

	// The same emote in two folders yields two distinct rows
	results, err := db.SearchStickersByTags([]string{"funny"}, false)
	if err != nil {
		t.Fatalf("SearchStickersByTags() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("SearchStickersByTags() returned %d stickers, want 2", len(results))
	}
}

func TestListStickerFolders(t *testing.T) {
	db := testDB(t)

	insertTestSticker(t, db, "s1", "One", "zebra")
	insertTestSticker(t, db, "s2", "Two", "apple")
	insertTestSticker(t, db, "s3", "Three", "apple")

	folders, err := db.ListStickerFolders()
	if err != nil {
		t.Fatalf("ListStickerFolders() error = %v", err)
	}
	if len(folders) != 2 {
		t.Fatalf("ListStickerFolders() returned %d folders, want 2", len(folders))
	}
	if folders[0] != "apple" || folders[1] != "zebra" {
		t.Errorf("ListStickerFolders() = %v, want [apple zebra]", folders)
	}
}

func TestCountStickersByFolder(t *testing.T) {
	db := testDB(t)

	for i := 0; i < 5; i++ {
		insertTestSticker(t, db, fmt.Sprintf("c%d", i), fmt.Sprintf("Count%d", i), "counted")
	}

	count, err := db.CountStickersByFolder("counted")
	if err != nil {
		t.Fatalf("CountStickersByFolder() error = %v", err)
	}
	if count != 5 {
		t.Errorf("CountStickersByFolder() = %d, want 5", count)
	}

	empty, err := db.CountStickersByFolder("nothing")
	if err != nil {
		t.Fatalf("CountStickersByFolder() error = %v", err)
	}
	if empty != 0 {
		t.Errorf("CountStickersByFolder() = %d, want 0", empty)
	}
}
