// Package signature normalizes, migrates and (de)serializes signature documents.
package signature

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jonathan/signature-customizer/internal/schemas"
	"github.com/jonathan/signature-customizer/internal/types"
)

// SchemaVersion is the version tag written by Encode.
//
// Version history:
//
//	0  bare {"data", "options"} object, no envelope; image shadow given as shadowSize sm|md|lg
//	1  {"schemaVersion": 1, "signature": ...}; shadowSize may still appear
//	2  adds "id" and "checksum"; only numeric shadowIntensity
const SchemaVersion = 2

// Shape names the layout an input was recognized as
type Shape string

const (
	ShapeDocument     Shape = "document"
	ShapeSignature    Shape = "signature"
	ShapeImageOptions Shape = "image_options"
)

// LegacyShadowIntensity maps the retired discrete shadow sizes onto shadowIntensity.
var LegacyShadowIntensity = map[string]float64{
	"sm": 2,
	"md": 5,
	"lg": 10,
}

// imageOptionKeys are the keys a bare image-options fragment may carry
var imageOptionKeys = map[string]struct{}{
	"align": {}, "form": {}, "size": {},
	"border": {}, "borderStyle": {}, "borderColor": {}, "borderWidth": {},
	"shadow": {}, "shadowIntensity": {}, "shadowSize": {},
}

// Migration describes how an input was read
type Migration struct {
	Signature        types.Signature
	Shape            Shape
	FromVersion      int
	LegacyShadowSize string    // retired shadowSize value that was converted, if any
	DocumentID       uuid.UUID // uuid.Nil when the input carried no id
	Checksum         string    // checksum carried by the input, verified when present
}

// MigrateLegacy reads input as any known schema version and returns a fully
// populated current Signature. Fields missing from the input take the values of
// types.CreateDefault. Inputs that cannot be interpreted fail with a
// *MalformedInputError.
//
// input may be []byte, string, json.RawMessage, io.Reader, map[string]any,
// types.Signature or *types.Signature.
func MigrateLegacy(input any) (types.Signature, error) {
	m, err := Migrate(input)
	if err != nil {
		return types.Signature{}, err
	}
	return m.Signature, nil
}

// Migrate is MigrateLegacy with a report of what was recognized.
func Migrate(input any) (Migration, error) {
	obj, err := decodeObject(input)
	if err != nil {
		return Migration{}, err
	}

	var m Migration
	body, err := unwrap(obj, &m)
	if err != nil {
		return Migration{}, err
	}

	if err := schemas.ValidateValue(schemas.Signature, body); err != nil {
		return Migration{}, &MalformedInputError{Message: "unexpected signature structure", Cause: err}
	}

	if err := checkKeyCase(body, signatureType, ""); err != nil {
		return Migration{}, err
	}

	legacy, err := migrateShadowSize(body)
	if err != nil {
		return Migration{}, err
	}
	m.LegacyShadowSize = legacy

	sig, err := overlayDefaults(body)
	if err != nil {
		return Migration{}, err
	}
	m.Signature = sig

	if m.Checksum != "" {
		sum, err := Checksum(sig)
		if err != nil {
			return Migration{}, err
		}
		if sum != m.Checksum {
			return Migration{}, malformed("checksum mismatch: document says %s, content hashes to %s", m.Checksum, sum)
		}
	}

	return m, nil
}

// decodeObject turns input into a freshly decoded JSON object, so later steps
// can edit it without touching the caller's data.
func decodeObject(input any) (map[string]any, error) {
	var raw []byte
	switch v := input.(type) {
	case nil:
		return nil, malformed("input is nil")
	case []byte:
		raw = v
	case json.RawMessage:
		raw = v
	case string:
		raw = []byte(v)
	case io.Reader:
		content, err := io.ReadAll(v)
		if err != nil {
			return nil, &MalformedInputError{Message: "failed to read input", Cause: err}
		}
		raw = content
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, &MalformedInputError{Message: fmt.Sprintf("cannot encode %T", input), Cause: err}
		}
		raw = encoded
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, malformed("input is empty")
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, &MalformedInputError{Message: "input is not valid JSON", Cause: err}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, malformed("expected a JSON object, got %s", jsonKind(decoded))
	}
	return obj, nil
}

// unwrap recognizes the shape of obj and returns the bare signature object.
func unwrap(obj map[string]any, m *Migration) (map[string]any, error) {
	if _, ok := obj["schemaVersion"]; ok {
		return unwrapDocument(obj, m)
	}

	_, hasData := obj["data"]
	_, hasOptions := obj["options"]
	if hasData || hasOptions {
		m.Shape = ShapeSignature
		m.FromVersion = 0
		return obj, nil
	}

	if isImageOptions(obj) {
		m.Shape = ShapeImageOptions
		m.FromVersion = 0
		return map[string]any{
			"data":    map[string]any{},
			"options": map[string]any{"image": obj},
		}, nil
	}

	return nil, malformed("unrecognized signature shape")
}

func unwrapDocument(obj map[string]any, m *Migration) (map[string]any, error) {
	if err := schemas.ValidateValue(schemas.Document, obj); err != nil {
		return nil, &MalformedInputError{Message: "unexpected document structure", Cause: err}
	}

	// The schema guarantees an integral number >= 1. It is range-checked as a
	// float so that values beyond int never reach the conversion.
	raw := obj["schemaVersion"].(float64)
	if raw > SchemaVersion {
		return nil, malformed("unsupported schemaVersion %v (newest known is %d)", raw, SchemaVersion)
	}
	version := int(raw)

	m.Shape = ShapeDocument
	m.FromVersion = version

	if rawID, ok := obj["id"].(string); ok && rawID != "" {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return nil, &MalformedInputError{Message: "invalid document id", Cause: err}
		}
		m.DocumentID = id
	}
	if sum, ok := obj["checksum"].(string); ok {
		m.Checksum = sum
	}

	return obj["signature"].(map[string]any), nil
}

func isImageOptions(obj map[string]any) bool {
	if len(obj) == 0 {
		return false
	}
	for key := range obj {
		if _, ok := imageOptionKeys[key]; !ok {
			return false
		}
	}
	return true
}

// migrateShadowSize removes the retired shadowSize key from body and, unless
// shadowIntensity is already present, sets its numeric equivalent.
func migrateShadowSize(body map[string]any) (string, error) {
	options, _ := body["options"].(map[string]any)
	image, _ := options["image"].(map[string]any)
	raw, ok := image["shadowSize"]
	if !ok {
		return "", nil
	}
	delete(image, "shadowSize")

	size, _ := raw.(string)
	intensity, known := LegacyShadowIntensity[size]
	if !known {
		return "", malformed("unknown shadowSize %q (expected sm, md or lg)", size)
	}
	if _, explicit := image["shadowIntensity"]; !explicit {
		image["shadowIntensity"] = intensity
	}
	return size, nil
}

// overlayDefaults decodes body on top of types.CreateDefault, so fields the
// input leaves out keep their default values.
func overlayDefaults(body map[string]any) (types.Signature, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return types.Signature{}, &MalformedInputError{Message: "cannot re-encode signature", Cause: err}
	}

	sig := types.CreateDefault()
	if err := json.Unmarshal(encoded, &sig); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return types.Signature{}, &MalformedInputError{Message: fmt.Sprintf("field %s has the wrong type", typeErr.Field), Cause: err}
		}
		return types.Signature{}, &MalformedInputError{Message: "cannot decode signature", Cause: err}
	}

	if sig.Data.Socials == nil {
		sig.Data.Socials = []types.SocialLink{}
	}
	return sig, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "an array"
	case string:
		return "a string"
	case float64:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
