// Package signature normalizes, migrates and (de)serializes signature documents.
package signature

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jonathan/signature-customizer/internal/types"
	"golang.org/x/crypto/blake2b"
)

// Document is the persisted envelope around a Signature
type Document struct {
	SchemaVersion int             `json:"schemaVersion"`
	ID            uuid.UUID       `json:"id"`
	Checksum      string          `json:"checksum,omitempty"`
	Signature     types.Signature `json:"signature"`
}

// NewDocument wraps sig in a current-version document with a fresh ID
func NewDocument(sig types.Signature) Document {
	return Document{
		SchemaVersion: SchemaVersion,
		ID:            uuid.New(),
		Signature:     sig,
	}
}

// Checksum returns the hex BLAKE2b-256 digest of the compact JSON encoding of sig.
// Invalid UTF-8 is replaced first, as a decoded document would hold it.
func Checksum(sig types.Signature) (string, error) {
	encoded, err := json.Marshal(ValidUTF8(sig))
	if err != nil {
		return "", fmt.Errorf("failed to encode signature for checksum: %w", err)
	}
	sum := blake2b.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}

// Encode serializes doc as indented JSON at the current schema version.
// Every field of the signature is written, including gate flags whose
// dependent values are unused. A missing ID is filled in and invalid UTF-8 in
// text is replaced with U+FFFD.
func Encode(doc Document) ([]byte, error) {
	doc.SchemaVersion = SchemaVersion
	doc.Signature = ValidUTF8(doc.Signature)
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.Signature.Data.Socials == nil {
		doc.Signature.Data.Socials = []types.SocialLink{}
	}

	sum, err := Checksum(doc.Signature)
	if err != nil {
		return nil, err
	}
	doc.Checksum = sum

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return jsonBytes, nil
}

// Decode reads any known document or legacy signature layout through
// MigrateLegacy and returns it as a current-version document. Inputs without an
// ID are given a new one.
func Decode(content []byte) (Document, error) {
	m, err := Migrate(content)
	if err != nil {
		return Document{}, err
	}
	return m.Document(), nil
}

// Document returns the migrated signature as a current-version document,
// keeping the input's ID or assigning a new one.
func (m Migration) Document() Document {
	id := m.DocumentID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return Document{
		SchemaVersion: SchemaVersion,
		ID:            id,
		Checksum:      m.Checksum,
		Signature:     m.Signature,
	}
}

// Load reads and decodes a document from a JSON file
func Load(path string) (Document, error) {
	m, err := LoadMigration(path)
	if err != nil {
		return Document{}, err
	}
	return m.Document(), nil
}

// LoadMigration reads a JSON file in any known layout and migrates it,
// reporting how the input was read. Errors are *LoadError.
func LoadMigration(path string) (Migration, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Migration{}, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	m, err := Migrate(content)
	if err != nil {
		return Migration{}, &LoadError{
			Message: fmt.Sprintf("failed to decode %s", path),
			Cause:   err,
		}
	}
	return m, nil
}

// Save encodes doc and writes it to path, creating parent directories
func Save(path string, doc Document) error {
	jsonBytes, err := Encode(doc)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write document to %s: %w", path, err)
	}
	return nil
}
