package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roster",
		Short:         "Event detail view with participant roster",
		Long:          `Shows an event with the users registered to it, lets viewers search the roster and cancel inscriptions. Runs as an HTTP API or as a terminal UI.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newViewCmd(), newTokenCmd())
	return root
}
