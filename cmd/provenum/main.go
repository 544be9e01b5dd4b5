// Package main provides the provenum CLI for inspecting provider enum catalogs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	version = "v0.1.0-dev"
	appName = "provenum"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Inspect provider enum catalogs",
		Long: `provenum maps provider-agnostic concepts such as the RELU activation
function onto the enum constants of concrete provider libraries.

Only providers listed in the configuration are linked into the type
registry; references to other providers can be listed but not resolved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Catalog file path (YAML), overrides the config")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		listCmd(&opts),
		resolveCmd(&opts),
		findCmd(&opts),
		exportCmd(&opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
			},
		},
	)
	return cmd
}
