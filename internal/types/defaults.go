// Package types provides type definitions for structured data used throughout the signature-customizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Default variants substituted for unrecognized closed-set values
const (
	DefaultAlignment   = AlignCenter
	DefaultImageForm   = FormCircle
	DefaultBorderStyle = BorderSolid
	DefaultFontFamily  = FontInter
	DefaultFontWeight  = Weight600
	DefaultSocialMedia = SocialPortfolio
	DefaultBackground  = "#ffffff"
)

// CreateDefault returns a fully populated Signature as shown on first load.
// Every field is set; Socials is an empty, non-nil slice.
func CreateDefault() Signature {
	return Signature{
		Data: SignatureFormData{
			Socials: []SocialLink{},
		},
		Options: DefaultOptions(),
	}
}

// DefaultOptions returns the default presentation configuration
func DefaultOptions() SignatureOptions {
	return SignatureOptions{
		Gap: GapOptions{
			Title:           4,
			Subtitle:        4,
			Social:          8,
			Image:           16,
			SocialSection:   12,
			LegalSection:    16,
			SocialToCompany: 24,
		},
		Size: SizeOptions{
			Title:           18,
			Subtitle:        14,
			Social:          16,
			LegalCompany:    12,
			LegalDisclaimer: 10,
		},
		Color: ColorOptions{
			Title:       "#111827",
			AutoTitle:   false,
			Subtitle:    "#4b5563",
			Social:      "#2563eb",
			Legal:       "#6b7280",
			Background:  DefaultBackground,
			Transparent: false,
		},
		Image: DefaultImageOptions(),
		Font: FontOptions{
			Family:      DefaultFontFamily,
			TitleWeight: DefaultFontWeight,
		},
	}
}

// DefaultImageOptions returns the default image framing.
// Border and shadow are off but their dependent fields still carry usable values.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Align:           DefaultAlignment,
		Form:            DefaultImageForm,
		Size:            80,
		Border:          false,
		BorderStyle:     DefaultBorderStyle,
		BorderColor:     "#e5e7eb",
		BorderWidth:     1,
		Shadow:          false,
		ShadowIntensity: 5,
	}
}
