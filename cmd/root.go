package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/oculusgrp/dealdesk_backend/cmd/http"
	systemcmd "github.com/oculusgrp/dealdesk_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "dealdesk",
	Short: "DealDesk commission and payment engine for restaurant-site brokerage.",
	Long: `DealDesk tracks brokerage deals for restaurant sites from prospect to close,
generates commission payment schedules with per-broker splits, and ingests the
yearly restaurant trends feed that backs site research.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
