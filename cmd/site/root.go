package main

import (
	"github.com/spf13/cobra"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "site",
	Short: "DevCodeCare marketing site server",
	Long: `Serves the static marketing site and the contact form API.

Configuration is read from the environment and from .env when present.

Example:
  site                  # same as "site serve"
  site serve            # start the HTTP server
  site send-test        # send a sample contact notification`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "additional dotenv files to load")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sendTestCmd)
}
