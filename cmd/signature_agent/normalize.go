package main

import (
	"fmt"
	"io"

	"github.com/jonathan/signature-customizer/internal/signature"
	"github.com/jonathan/signature-customizer/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize a signature document",
	Long: "Reads a signature document in any supported layout, clamps numbers into range, trims text and drops " +
		"socials without a URL, then writes it as a current document.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return normalizeFile(normalizeInput, normalizeOutput, cmd.OutOrStdout())
	},
}

var (
	normalizeInput  string
	normalizeOutput string
	normalizeStrict bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeInput, "in", "i", "", "Path to signature JSON file (required)")
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "out", "o", "", "Path to output document JSON (default: stdout)")
	normalizeCmd.Flags().BoolVar(&normalizeStrict, "strict", false, "Fail instead of writing when findings remain after normalizing")

	if err := normalizeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(normalizeCmd)
}

func normalizeFile(in, out string, stdout io.Writer) error {
	doc, _, err := loadDocument(in)
	if err != nil {
		return err
	}

	doc.Signature = signature.Normalize(doc.Signature)

	// Normalizing repairs numbers and text; closed-set values and colors can still be wrong.
	if result := validation.Validate(doc.Signature); !result.OK() {
		logger.Warn("findings remain after normalizing", zap.String("path", in), zap.Int("count", len(result.Findings)))
		if normalizeStrict || cfg.Strict {
			if cfg.Verbose {
				printer.PrintFindings(in, result.Findings)
			}
			return fmt.Errorf("normalize %s: %w", in, result.Err())
		}
	}

	if cfg.Verbose {
		printer.PrintSignature(&doc.Signature)
	}
	return writeDocument(out, doc, stdout)
}
