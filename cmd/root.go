package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/axellelanca/pokedex/internal/config"
	"github.com/spf13/cobra"
)

// Cfg holds the loaded configuration and is shared by every Cobra command.
var Cfg *config.Config

// RootCmd is the base command for the CLI application. The subcommands
// (run-server, migrate, create, seed, stats) attach themselves to it.
var RootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "A pokedex REST service",
	Long: `A pokedex application that stores pokemon records, serves them over a
filtered and paginated HTTP API, and keeps an audit trail of every change.`,
}

// Execute is the main entry point for the Cobra application, called from
// main.go.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Load configuration before any command body runs.
	cobra.OnInitialize(initConfig)

	// Subcommands register themselves through their own init() functions,
	// which keeps this package free of imports on cmd/cli and cmd/server.
}

// initConfig loads the application configuration into Cfg. A missing config
// file is not fatal; defaults cover every key.
func initConfig() {
	var err error

	Cfg, err = config.LoadConfig()
	if err != nil {
		log.Printf("Warning: Problem loading configuration: %v. Using default values.", err)
	}
}
