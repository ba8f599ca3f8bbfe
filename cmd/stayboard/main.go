// Package main is the entry point for the stayboard CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "stayboard",
		Short:   "stayboard is a scrollable booking timeline for your listings",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dataPath, _ := cmd.Flags().GetString("data")
			return runTimeline(configPath, dataPath)
		},
	}
	root.Flags().String("config", "", "path to stayboard.toml (default: search upward)")
	root.Flags().String("data", "", "override the booking data file from config")

	root.AddCommand(
		initCmd(),
		exportCmd(),
	)

	return root
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold a stayboard project (config + sample data)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return runInit(cmd, dir)
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export bookings as an iCalendar (.ics) file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dataPath, _ := cmd.Flags().GetString("data")
			out, _ := cmd.Flags().GetString("out")
			return runExport(cmd, configPath, dataPath, out)
		},
	}
	cmd.Flags().String("config", "", "path to stayboard.toml (default: search upward)")
	cmd.Flags().String("data", "", "override the booking data file from config")
	cmd.Flags().StringP("out", "o", "", "output path (default: stdout)")
	return cmd
}
