package packfile

import (
	"strings"
	"testing"
)

func TestParse_FullFrontmatter(t *testing.T) {
	content := `---
sevenTvId: 01F6MZGCNG0004SZ2ZC1G56J5G
emoteName: peepoHappy
url: https://cdn.7tv.app/emote/01F6MZGCNG0004SZ2ZC1G56J5G/4x.webp
ownerName: somebody
folder: alice
mimeType: image/webp
animated: true
tags:
  - happy
  - frog
---

# peepoHappy

A very happy frog.
`

	parser := NewParser()
	sticker, notes, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if sticker.SevenTVID != "01F6MZGCNG0004SZ2ZC1G56J5G" {
		t.Errorf("SevenTVID = %q", sticker.SevenTVID)
	}
	if sticker.EmoteName != "peepoHappy" {
		t.Errorf("EmoteName = %q, want peepoHappy", sticker.EmoteName)
	}
	if sticker.URL != "https://cdn.7tv.app/emote/01F6MZGCNG0004SZ2ZC1G56J5G/4x.webp" {
		t.Errorf("URL = %q", sticker.URL)
	}
	if sticker.OwnerName != "somebody" {
		t.Errorf("OwnerName = %q, want somebody", sticker.OwnerName)
	}
	if sticker.FolderName != "alice" {
		t.Errorf("FolderName = %q, want alice", sticker.FolderName)
	}
	if !sticker.Animated {
		t.Error("Animated should be true")
	}
	if sticker.FileName != "peepoHappy_01F6MZGCNG0004SZ2ZC1G56J5G.webp" {
		t.Errorf("FileName = %q", sticker.FileName)
	}

	tags := sticker.TagList()
	if len(tags) != 2 || tags[0] != "happy" || tags[1] != "frog" {
		t.Errorf("Tags = %v, want [happy frog]", tags)
	}

	if notes != "A very happy frog." {
		t.Errorf("notes = %q, want %q", notes, "A very happy frog.")
	}
}

func TestParse_MinimalFrontmatter(t *testing.T) {
	content := `---
sevenTvId: s1
url: https://cdn.7tv.app/emote/s1/4x.webp
---

# Kappa
`

	parser := NewParser()
	sticker, _, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// Emote name falls back to the heading
	if sticker.EmoteName != "Kappa" {
		t.Errorf("EmoteName = %q, want Kappa", sticker.EmoteName)
	}

	// File name is derived; unknown content type falls back to png
	if sticker.FileName != "Kappa_s1.png" {
		t.Errorf("FileName = %q, want Kappa_s1.png", sticker.FileName)
	}

	if sticker.Animated {
		t.Error("Animated should default to false")
	}
	if len(sticker.TagList()) != 0 {
		t.Errorf("Tags = %v, want none", sticker.TagList())
	}
	if sticker.FolderName != "" {
		t.Errorf("FolderName = %q, want empty", sticker.FolderName)
	}
}

func TestParse_ExplicitFileName(t *testing.T) {
	content := `---
sevenTvId: s1
emoteName: Kappa
url: https://cdn.7tv.app/emote/s1/4x.webp
fileName: custom.gif
---
`

	parser := NewParser()
	sticker, _, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if sticker.FileName != "custom.gif" {
		t.Errorf("FileName = %q, want custom.gif", sticker.FileName)
	}
}

func TestParse_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing sevenTvId",
			content: `---
emoteName: Kappa
url: https://x/s1
---
`,
			wantErr: "sevenTvId",
		},
		{
			name: "missing url",
			content: `---
sevenTvId: s1
emoteName: Kappa
---
`,
			wantErr: "url",
		},
		{
			name: "missing emote name and heading",
			content: `---
sevenTvId: s1
url: https://x/s1
---

just body text, no heading
`,
			wantErr: "emoteName",
		},
	}

	parser := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := parser.Parse(tt.content)
			if err == nil {
				t.Fatal("Parse should return error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestParse_AnimatedVariants(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"yaml bool", "true", true},
		{"yaml false", "false", false},
		{"quoted true", `"true"`, true},
		{"quoted yes", `"yes"`, true},
		{"quoted no", `"no"`, false},
	}

	parser := NewParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `---
sevenTvId: s1
emoteName: Kappa
url: https://x/s1
animated: ` + tt.value + `
---
`
			sticker, _, err := parser.Parse(content)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if sticker.Animated != tt.want {
				t.Errorf("Animated = %v, want %v", sticker.Animated, tt.want)
			}
		})
	}
}

func TestParse_TagsDropBlanks(t *testing.T) {
	content := `---
sevenTvId: s1
emoteName: Kappa
url: https://x/s1
tags:
  - funny
  - ""
  - rare
---
`

	parser := NewParser()
	sticker, _, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tags := sticker.TagList()
	if len(tags) != 2 || tags[0] != "funny" || tags[1] != "rare" {
		t.Errorf("Tags = %v, want [funny rare]", tags)
	}
}

func TestParse_SecondaryHeadingFallback(t *testing.T) {
	content := `---
sevenTvId: s1
url: https://x/s1
---

## monkaS

Tense.
`

	parser := NewParser()
	sticker, notes, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if sticker.EmoteName != "monkaS" {
		t.Errorf("EmoteName = %q, want monkaS", sticker.EmoteName)
	}
	if notes != "Tense." {
		t.Errorf("notes = %q, want %q", notes, "Tense.")
	}
}

func TestParse_LongNotesTruncated(t *testing.T) {
	long := strings.Repeat("word ", 60)
	content := `---
sevenTvId: s1
emoteName: Kappa
url: https://x/s1
---

# Kappa

` + long + `
`

	parser := NewParser()
	_, notes, err := parser.Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if len(notes) > 200 {
		t.Errorf("notes length = %d, want <= 200", len(notes))
	}
	if !strings.HasSuffix(notes, "...") {
		t.Errorf("truncated notes should end with ellipsis, got %q", notes[len(notes)-10:])
	}
}
