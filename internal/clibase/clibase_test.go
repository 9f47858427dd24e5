package clibase

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugFlagRaisesLevel(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	var ran bool
	cmd := New("probe", "test")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		ran = true
		assert.True(t, Debug(cmd))
		return nil
	}
	cmd.SetArgs([]string{"--debug"})
	require.NoError(t, cmd.Execute())
	assert.True(t, ran)
	assert.Equal(t, log.DebugLevel, log.GetLevel())
}

func TestRejectsPositionalArgs(t *testing.T) {
	cmd := New("probe", "test")
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	cmd.SetArgs([]string{"extra"})
	require.Error(t, cmd.Execute())
}
