// Package clibase builds the root cobra command shared by the binaries.
package clibase

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const flagDebug = "debug"

// New returns a root command with a persistent --debug flag wired to the
// log level.
func New(name, description string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         description,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			if debug, _ := cmd.Flags().GetBool(flagDebug); debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().Bool(flagDebug, false, "enable debug logging")
	return cmd
}

// Debug reports whether --debug was given.
func Debug(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool(flagDebug)
	return v
}
