package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOpusCmd(t *testing.T) {
	cmd := getOpusCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "opus", cmd.Use)

	tests := []struct {
		name, short, def string
	}{
		{"title", "t", ""},
		{"data-resource", "d", ""},
		{"code", "c", "botanical"},
	}
	for _, v := range tests {
		f := cmd.Flags().Lookup(v.name)
		require.NotNil(t, f, v.name)
		assert.Equal(t, v.short, f.Shorthand, v.name)
		assert.Equal(t, v.def, f.DefValue, v.name)
	}
}

func TestPrintOpuses(t *testing.T) {
	var buf bytes.Buffer
	printOpuses(&buf, []profile.Opus{
		{ID: "id-1", Title: "Flora", DataResourceID: "dr1", Code: profile.Botanical},
		{ID: "id-2", Title: "Moths", Code: profile.Zoological},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID\tTitle\tDataResourceID\tCode", lines[0])
	assert.Equal(t, "id-1\tFlora\tdr1\tbotanical", lines[1])
	assert.Equal(t, "id-2\tMoths\t\tzoological", lines[2])
}
