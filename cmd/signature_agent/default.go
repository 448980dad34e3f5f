package main

import (
	"io"

	"github.com/jonathan/signature-customizer/internal/signature"
	"github.com/jonathan/signature-customizer/internal/types"
	"github.com/spf13/cobra"
)

var defaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Write a default signature document",
	Long:  "Writes a new document holding the default signature: empty content, no socials, and the default options.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeDefault(defaultOutput, cmd.OutOrStdout())
	},
}

var defaultOutput string

func init() {
	defaultCmd.Flags().StringVarP(&defaultOutput, "out", "o", "", "Path to output document JSON (default: stdout)")

	rootCmd.AddCommand(defaultCmd)
}

func writeDefault(out string, stdout io.Writer) error {
	doc := signature.NewDocument(types.CreateDefault())
	if cfg.Verbose {
		printer.PrintSignature(&doc.Signature)
	}
	return writeDocument(out, doc, stdout)
}
