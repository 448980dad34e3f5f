// Package types provides type definitions for structured data used throughout the signature-customizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// The flat gate fields stay on the wire so that a disabled border or shadow
// keeps its last settings. Readers go through these accessors, which only
// hand out dependent values while the gate is on.

// BorderSpec is an enabled image border
type BorderSpec struct {
	Style BorderStyle
	Color string
	Width float64
}

// EnabledBorder returns the image border and true when the border gate is on.
func (o ImageOptions) EnabledBorder() (BorderSpec, bool) {
	if !o.Border {
		return BorderSpec{}, false
	}
	return BorderSpec{Style: o.BorderStyle, Color: o.BorderColor, Width: o.BorderWidth}, true
}

// ShadowLevel returns the shadow intensity and true when the shadow gate is on.
func (o ImageOptions) ShadowLevel() (float64, bool) {
	if !o.Shadow {
		return 0, false
	}
	return o.ShadowIntensity, true
}

// PaintedBackground returns the background color and true unless the background is transparent.
func (c ColorOptions) PaintedBackground() (string, bool) {
	if c.Transparent {
		return "", false
	}
	return c.Background, true
}

// TitleColor returns the explicit title color and true unless it is derived automatically.
func (c ColorOptions) TitleColor() (string, bool) {
	if c.AutoTitle {
		return "", false
	}
	return c.Title, true
}
