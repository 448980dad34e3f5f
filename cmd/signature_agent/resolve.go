package main

import (
	"fmt"
	"io"

	"github.com/jonathan/signature-customizer/internal/rendering"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a signature into renderer style values",
	Long: "Reads a signature document and writes the concrete values a renderer paints with: font stack, title weight " +
		"and color, image frame, border and shadow CSS, and classified social links. Unknown values fall back to defaults.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return resolveFile(resolveInput, resolveOutput, cmd.OutOrStdout())
	},
}

var (
	resolveInput  string
	resolveOutput string
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveInput, "in", "i", "", "Path to signature JSON file (required)")
	resolveCmd.Flags().StringVarP(&resolveOutput, "out", "o", "", "Path to output style JSON (default: stdout)")

	if err := resolveCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(resolveCmd)
}

func resolveFile(in, out string, stdout io.Writer) error {
	doc, _, err := loadDocument(in)
	if err != nil {
		return err
	}

	style := rendering.Resolve(doc.Signature)
	for _, s := range style.Substitutions {
		logger.Warn("renderer fallback",
			zap.String("field", s.Path),
			zap.String("value", s.Value),
			zap.String("fallback", s.Fallback),
		)
	}
	if cfg.Verbose {
		printer.PrintSubstitutions(&style)
	}

	return writeJSON(out, style, stdout)
}
