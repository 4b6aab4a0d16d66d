package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "xcglog",
		Short:         "xcglogger command line tools",
		Long:          "xcglog writes stdin lines to configured log destinations and rotates log files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newPipeCmd())
	rootCmd.AddCommand(newRotateCmd())

	return rootCmd
}
