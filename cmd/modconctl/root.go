package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var envFile string
	var jsonOut bool

	ctx := newCommandContext(&envFile, &jsonOut)

	rootCmd := &cobra.Command{
		Use:           "modconctl",
		Short:         "ModCon production tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this file")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Print JSON instead of tables")

	rootCmd.AddCommand(newSpecsCommand(ctx))
	rootCmd.AddCommand(newMatrixCommand(ctx))
	rootCmd.AddCommand(newFeedCommand(ctx))
	rootCmd.AddCommand(newExportCommand(ctx))
	rootCmd.AddCommand(newAgentKeyCommand(ctx))

	return rootCmd
}
