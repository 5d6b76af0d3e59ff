package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFolderURI(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		wantFolder string
		wantEmote  string
		wantErr    bool
	}{
		{"folder only", "stickerdex://folder/alice", "alice", "", false},
		{"folder and sticker", "stickerdex://folder/alice/stickers/Kappa", "alice", "Kappa", false},
		{"wrong scheme", "emotes://folder/alice", "", "", true},
		{"empty folder", "stickerdex://folder/", "", "", true},
		{"empty emote", "stickerdex://folder/alice/stickers/", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folder, emote, err := parseFolderURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFolder, folder)
			assert.Equal(t, tt.wantEmote, emote)
		})
	}
}

func TestFolderResource(t *testing.T) {
	server := newTestServer(t)
	seedCatalog(t, server)

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "stickerdex://folder/alice"

	contents, err := server.handleFolderResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", text.MIMEType)

	var folder FolderResponse
	require.NoError(t, json.Unmarshal([]byte(text.Text), &folder))
	assert.Equal(t, "alice", folder.Name)
	assert.Len(t, folder.Stickers, 2)
}

func TestFolderResourceNotFound(t *testing.T) {
	server := newTestServer(t)
	seedCatalog(t, server)

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "stickerdex://folder/nobody"

	_, err := server.handleFolderResource(context.Background(), req)
	assert.Error(t, err)
}

func TestStickerResource(t *testing.T) {
	server := newTestServer(t)
	seedCatalog(t, server)

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "stickerdex://folder/alice/stickers/PogChamp"

	contents, err := server.handleStickerResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)

	var sticker StickerResponse
	require.NoError(t, json.Unmarshal([]byte(text.Text), &sticker))
	assert.Equal(t, "s2", sticker.SevenTVID)
	assert.True(t, sticker.Animated)
}

func TestStickerResourceNotFound(t *testing.T) {
	server := newTestServer(t)
	seedCatalog(t, server)

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "stickerdex://folder/alice/stickers/Missing"

	_, err := server.handleStickerResource(context.Background(), req)
	assert.Error(t, err)
}
