package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestAddCmd_Structure(t *testing.T) {
	assert.Equal(t, "add <folder>", addCmd.Use)
	assert.Contains(t, addCmd.Aliases, "a")
	assert.NotEmpty(t, addCmd.Short)
	assert.NotEmpty(t, addCmd.Long)
	assert.NotNil(t, addCmd.Args)
}

func TestAddCmd_ArgsValidation(t *testing.T) {
	validator := cobra.ExactArgs(1)

	err := validator(addCmd, []string{})
	assert.Error(t, err)

	err = validator(addCmd, []string{"alice"})
	assert.NoError(t, err)

	err = validator(addCmd, []string{"alice", "bob"})
	assert.Error(t, err)
}

func TestAddCmd_HasRequiredFlags(t *testing.T) {
	for _, name := range []string{"id", "name", "url", "file", "owner", "tags", "animated", "mime"} {
		assert.NotNil(t, addCmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

func TestParseTagsFlag(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty", "", nil},
		{"single", "funny", []string{"funny"}},
		{"multiple", "funny,rare", []string{"funny", "rare"}},
		{"whitespace trimmed", " funny , rare ", []string{"funny", "rare"}},
		{"empty entries dropped", "funny,,rare,", []string{"funny", "rare"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTagsFlag(tt.raw))
		})
	}
}
