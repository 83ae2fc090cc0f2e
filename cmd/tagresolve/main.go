package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tagresolve",
		Short: "Metadata-tag resolution engine and tooling",
		Long: `tagresolve resolves metadata tags against a declared type model:
directly, through meta-tagging, through supertype inheritance, and through
interface declarations. It ships a query CLI and an HTTP introspection server.`,
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(declaringCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
