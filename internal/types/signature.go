// Package types provides type definitions for structured data used throughout the signature-customizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Signature is the root value combining user content and presentation options
type Signature struct {
	Data    SignatureFormData `json:"data"`
	Options SignatureOptions  `json:"options"`
}

// SignatureFormData is the user-authored content of a signature
type SignatureFormData struct {
	Image            string       `json:"image"` // URL or data URI, empty for no image
	FullName         string       `json:"fullName" validate:"max=120"`
	JobTitle         string       `json:"jobTitle" validate:"max=120"`
	Company          string       `json:"company" validate:"max=120"`
	Phone            string       `json:"phone" validate:"max=120"`
	LegalCompanyLine string       `json:"legalCompanyLine"`
	LegalDisclaimer  string       `json:"legalDisclaimer"`
	Socials          []SocialLink `json:"socials" validate:"dive"`
}

// SocialLink is a social entry as authored in the form; order is rendering order
type SocialLink struct {
	Title string `json:"title"`
	URL   string `json:"url" validate:"nonblank"`
}

// Social is a social link classified for UI pickers
type Social struct {
	Title string      `json:"title"`
	URL   string      `json:"url"`
	Type  SocialMedia `json:"type"`
}

// SignatureOptions is the presentation configuration of a signature
type SignatureOptions struct {
	Gap   GapOptions   `json:"gap"`
	Size  SizeOptions  `json:"size"`
	Color ColorOptions `json:"color"`
	Image ImageOptions `json:"image"`
	Font  FontOptions  `json:"font"`
}

// GapOptions holds spacing distances in pixels
type GapOptions struct {
	Title           float64 `json:"title" validate:"gte=0,lte=200"`
	Subtitle        float64 `json:"subtitle" validate:"gte=0,lte=200"`
	Social          float64 `json:"social" validate:"gte=0,lte=200"`
	Image           float64 `json:"image" validate:"gte=0,lte=200"`
	SocialSection   float64 `json:"socialSection" validate:"gte=0,lte=200"`
	LegalSection    float64 `json:"legalSection" validate:"gte=0,lte=200"`
	SocialToCompany float64 `json:"socialToCompany" validate:"gte=0,lte=200"`
}

// SizeOptions holds font and element sizes in pixels
type SizeOptions struct {
	Title           float64 `json:"title" validate:"gt=0,lte=200"`
	Subtitle        float64 `json:"subtitle" validate:"gt=0,lte=200"`
	Social          float64 `json:"social" validate:"gt=0,lte=200"`
	LegalCompany    float64 `json:"legalCompany" validate:"gt=0,lte=200"`
	LegalDisclaimer float64 `json:"legalDisclaimer" validate:"gt=0,lte=200"`
}

// ColorOptions holds text and background colors.
// When AutoTitle is set the Title color is derived at render time; when
// Transparent is set Background is kept but not painted.
type ColorOptions struct {
	Title       string `json:"title" validate:"sigcolor"`
	AutoTitle   bool   `json:"autoTitle"`
	Subtitle    string `json:"subtitle" validate:"sigcolor"`
	Social      string `json:"social" validate:"sigcolor"`
	Legal       string `json:"legal" validate:"sigcolor"`
	Background  string `json:"background" validate:"sigcolor"`
	Transparent bool   `json:"transparent"`
}

// ImageOptions controls how the signature image is framed.
// BorderStyle, BorderColor and BorderWidth only apply when Border is set;
// ShadowIntensity only applies when Shadow is set.
type ImageOptions struct {
	Align           Alignment   `json:"align" validate:"oneof=top center bottom"`
	Form            ImageForm   `json:"form" validate:"oneof=circle square rectangle"`
	Size            float64     `json:"size" validate:"gt=0,lte=512"`
	Border          bool        `json:"border"`
	BorderStyle     BorderStyle `json:"borderStyle" validate:"oneof=solid dashed dotted"`
	BorderColor     string      `json:"borderColor" validate:"sigcolor"`
	BorderWidth     float64     `json:"borderWidth" validate:"gte=0,lte=50"`
	Shadow          bool        `json:"shadow"`
	ShadowIntensity float64     `json:"shadowIntensity" validate:"gte=0,lte=20"`
}

// FontOptions holds typography settings
type FontOptions struct {
	Family      FontFamily `json:"family" validate:"oneof=inter sf roboto arial"`
	TitleWeight FontWeight `json:"titleWeight" validate:"oneof=400 500 600 700"`
}

// Bounds shared by validation and normalization. The struct tags above mirror
// these values and must be kept in sync.
const (
	MaxTextLength      = 120
	MaxGap             = 200.0
	MinSize            = 1.0
	MaxSize            = 200.0
	MinImageSize       = 1.0
	MaxImageSize       = 512.0
	MaxBorderWidth     = 50.0
	MaxShadowIntensity = 20.0
)
