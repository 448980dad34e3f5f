package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonathan/signature-customizer/internal/signature"
	"go.uber.org/zap"
)

// writeJSON marshals v and writes it to path, or to stdout when path is empty.
func writeJSON(path string, v any, stdout io.Writer) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	return writeOutput(path, append(jsonBytes, '\n'), stdout)
}

func writeOutput(path string, content []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(content)
		return err
	}

	path = cfg.OutputPath(path)
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("wrote output", zap.String("path", path))
	return nil
}

// writeDocument encodes doc at the current schema version to path or stdout.
func writeDocument(path string, doc signature.Document, stdout io.Writer) error {
	if path == "" {
		encoded, err := signature.Encode(doc)
		if err != nil {
			return err
		}
		return writeOutput("", append(encoded, '\n'), stdout)
	}

	path = cfg.OutputPath(path)
	if err := signature.Save(path, doc); err != nil {
		return err
	}
	logger.Info("wrote document", zap.String("path", path), zap.String("id", doc.ID.String()))
	return nil
}

// loadDocument reads any supported layout from path, logging how it was migrated.
func loadDocument(path string) (signature.Document, signature.Migration, error) {
	m, err := signature.LoadMigration(path)
	if err != nil {
		logger.Error("failed to load signature", zap.String("path", path), zap.Error(err))
		return signature.Document{}, signature.Migration{}, err
	}
	if m.FromVersion < signature.SchemaVersion {
		logger.Info("migrated legacy input",
			zap.String("path", path),
			zap.String("shape", string(m.Shape)),
			zap.Int("from_version", m.FromVersion),
			zap.String("legacy_shadow_size", m.LegacyShadowSize),
		)
	}
	return m.Document(), m, nil
}
