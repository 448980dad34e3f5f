// Package types provides type definitions for structured data used throughout the signature-customizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// FindingKind classifies a validation finding
type FindingKind string

const (
	// FindingOutOfRange marks a numeric field outside its bounds
	FindingOutOfRange FindingKind = "out_of_range"
	// FindingUnknownEnumValue marks a closed-set field holding an undeclared value
	FindingUnknownEnumValue FindingKind = "unknown_enum_value"
	// FindingInvalidColor marks a color field outside the color grammar
	FindingInvalidColor FindingKind = "invalid_color"
	// FindingTooLong marks single-line text over the length cap
	FindingTooLong FindingKind = "too_long"
	// FindingMissingValue marks a value that must be present to render, like a social URL
	FindingMissingValue FindingKind = "missing_value"
)

// Finding represents a single validation failure at a field path
type Finding struct {
	Path    string      `json:"path"` // e.g. options.font.family, data.socials[2].url
	Kind    FindingKind `json:"kind"`
	Value   any         `json:"value,omitempty"`
	Message string      `json:"message"`
}
