package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade a signature document to the current schema version",
	Long: "Reads a signature in any earlier layout (bare signature, image options fragment or versioned document), " +
		"converts retired fields such as shadowSize, fills missing fields with defaults and writes a current document. " +
		"Values are otherwise left as found.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return migrateFile(migrateInput, migrateOutput, cmd.OutOrStdout())
	},
}

var (
	migrateInput  string
	migrateOutput string
)

func init() {
	migrateCmd.Flags().StringVarP(&migrateInput, "in", "i", "", "Path to signature JSON file (required)")
	migrateCmd.Flags().StringVarP(&migrateOutput, "out", "o", "", "Path to output document JSON (default: stdout)")

	if err := migrateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(migrateCmd)
}

func migrateFile(in, out string, stdout io.Writer) error {
	doc, m, err := loadDocument(in)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintMigration(&m)
	}
	return writeDocument(out, doc, stdout)
}
