package main

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/jonathan/signature-customizer/internal/types"
	"github.com/jonathan/signature-customizer/internal/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate signature documents",
	Long: "Reads one or more signature documents in any supported layout and checks every field against its bounds, " +
		"closed value sets and the color grammar. Exits non-zero when any document has findings.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return validateFiles(cmd.Context(), validateInputs, validateOutput, cmd.OutOrStdout())
	},
}

var (
	validateInputs []string
	validateOutput string
)

func init() {
	validateCmd.Flags().StringSliceVarP(&validateInputs, "in", "i", nil, "Path to signature JSON file (required, repeatable)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to output findings JSON file (default: stdout)")

	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

// FileReport holds the findings for one input file
type FileReport struct {
	Path     string          `json:"path"`
	Findings []types.Finding `json:"findings"`
}

// validateFiles validates every input concurrently and writes one report per
// input, in input order. It fails if any input cannot be read or has findings.
func validateFiles(ctx context.Context, inputs []string, out string, stdout io.Writer) error {
	reports := make([]FileReport, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range inputs {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, _, err := loadDocument(path)
			if err != nil {
				return err
			}

			result := validation.Validate(doc.Signature)
			findings := result.Findings
			if findings == nil {
				findings = []types.Finding{}
			}
			reports[i] = FileReport{Path: path, Findings: findings}

			for _, f := range findings {
				logger.Debug("finding",
					zap.String("path", path),
					zap.String("field", f.Path),
					zap.String("kind", string(f.Kind)),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for _, r := range reports {
		total += len(r.Findings)
		if cfg.Verbose {
			printer.PrintFindings(r.Path, r.Findings)
		}
	}

	if err := writeJSON(out, reports, stdout); err != nil {
		return err
	}

	if total > 0 {
		logger.Warn("validation found findings", zap.Int("count", total), zap.Int("files", len(inputs)))
		// Return error to indicate findings were found (exit code 1)
		return fmt.Errorf("validation found %d finding(s)", total)
	}
	logger.Info("validation passed", zap.Int("files", len(inputs)))
	return nil
}
