package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCreateCmd(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "create", cmd.Use)
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "PostgreSQL")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate")
	assert.Contains(t, cmd.Long, "collation")
	assert.NotNil(t, cmd.RunE)
}

// TestGetCreateCmd_ForceFlag verifies --force flag exists.
func TestGetCreateCmd_ForceFlag(t *testing.T) {
	cmd := getCreateCmd()

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag, "--force flag should exist")
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
	assert.Contains(t, forceFlag.Usage, "drop")
}

func TestGetCreateCmd_HelpText(t *testing.T) {
	cmd := getCreateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	helpText := buf.String()
	assert.Contains(t, helpText, "create")
	assert.Contains(t, helpText, "--force")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		res   bool
	}{
		{"yes\n", true},
		{"y\n", true},
		{"  YES  \n", true},
		{"Y", true},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"yesplease\n", false},
	}

	for _, v := range tests {
		res := confirm(strings.NewReader(v.input))
		assert.Equal(t, v.res, res, v.input)
	}
}
