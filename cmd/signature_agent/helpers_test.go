package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/signature-customizer/internal/config"
	"github.com/jonathan/signature-customizer/internal/observability"
	"github.com/jonathan/signature-customizer/internal/signature"
	"github.com/jonathan/signature-customizer/internal/types"
	"github.com/stretchr/testify/require"
)

// withConfig swaps the shared CLI config for the duration of a test
func withConfig(t *testing.T, c config.Config) {
	t.Helper()
	previousCfg, previousLogger := cfg, logger
	cfg = c
	t.Cleanup(func() { cfg, logger = previousCfg, previousLogger })
}

// withPrinter points the verbose printer at out for the duration of a test
func withPrinter(t *testing.T, out io.Writer) {
	t.Helper()
	previous := printer
	printer = observability.NewPrinter(out)
	t.Cleanup(func() { printer = previous })
}

// writeFile writes content to name under a temp dir and returns its path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readDocument decodes the document at path
func readDocument(t *testing.T, path string) signature.Document {
	t.Helper()
	doc, err := signature.Load(path)
	require.NoError(t, err)
	return doc
}

// writeSignature saves sig as a current document under dir
func writeSignature(t *testing.T, dir, name string, sig types.Signature) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, signature.Save(path, signature.NewDocument(sig)))
	return path
}
