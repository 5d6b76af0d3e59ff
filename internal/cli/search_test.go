package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestSearchCmd_Structure(t *testing.T) {
	assert.Equal(t, "search <tag> [tag...]", searchCmd.Use)
	assert.NotNil(t, searchCmd.Flags().Lookup("all"))

	validator := cobra.MinimumNArgs(1)
	assert.Error(t, validator(searchCmd, []string{}))
	assert.NoError(t, validator(searchCmd, []string{"funny"}))
	assert.NoError(t, validator(searchCmd, []string{"funny", "rare"}))
}

func TestSyncCmd_Structure(t *testing.T) {
	assert.Equal(t, "sync [folder]", syncCmd.Use)
	assert.NotNil(t, syncCmd.Flags().Lookup("emotes"))
	assert.NotNil(t, syncCmd.Flags().Lookup("id"))

	validator := cobra.MaximumNArgs(1)
	assert.NoError(t, validator(syncCmd, []string{}))
	assert.NoError(t, validator(syncCmd, []string{"alice"}))
	assert.Error(t, validator(syncCmd, []string{"alice", "bob"}))
}

func TestUsersCmd_Structure(t *testing.T) {
	assert.Equal(t, "users", usersCmd.Use)

	var addCmdFound bool
	for _, sub := range usersCmd.Commands() {
		if sub.Name() == "add" {
			addCmdFound = true
			for _, flag := range []string{"id", "folder", "name"} {
				assert.NotNil(t, sub.Flags().Lookup(flag), "missing flag --%s", flag)
			}
		}
	}
	assert.True(t, addCmdFound, "users should have an add subcommand")
}

func TestFavoritesCmd_Structure(t *testing.T) {
	subs := make(map[string]bool)
	for _, sub := range favoritesCmd.Commands() {
		subs[sub.Name()] = true
	}

	assert.True(t, subs["add"])
	assert.True(t, subs["remove"])
	assert.True(t, subs["list"])
}

func TestImportCmd_Structure(t *testing.T) {
	assert.Equal(t, "import <path>", importCmd.Use)
	assert.NotNil(t, importCmd.Flags().Lookup("update-sync"))
	assert.NotNil(t, importCmd.Flags().Lookup("folder"))
	assert.NotNil(t, importCmd.Flags().Lookup("force"))
}

func TestReportCmd_Structure(t *testing.T) {
	assert.Equal(t, "report [folder]", reportCmd.Use)
	assert.NotNil(t, reportCmd.Flags().Lookup("raw"))
}
