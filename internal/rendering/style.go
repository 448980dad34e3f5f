// Package rendering resolves a signature into the concrete presentation values a renderer paints with.
package rendering

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jonathan/signature-customizer/internal/colors"
	"github.com/jonathan/signature-customizer/internal/signature"
	"github.com/jonathan/signature-customizer/internal/social"
	"github.com/jonathan/signature-customizer/internal/types"
)

// Title colors chosen when the title color is derived from the background
const (
	AutoTitleDark  = "#111827"
	AutoTitleLight = "#f9fafb"
)

// Style is a fully resolved signature: every closed-set value is a known
// member, every color parses, and gated values are present only when enabled.
type Style struct {
	FontFamily  types.FontFamily  `json:"fontFamily"`
	FontStack   string            `json:"fontStack"`
	TitleWeight int               `json:"titleWeight"`
	Sizes       types.SizeOptions `json:"sizes"`
	Gaps        types.GapOptions  `json:"gaps"`
	Colors      Colors            `json:"colors"`
	Image       *ImageFrame       `json:"image,omitempty"` // nil when the signature has no image
	Socials     []types.Social    `json:"socials"`

	// Substitutions lists every value that was replaced by a fallback.
	Substitutions []Substitution `json:"substitutions,omitempty"`
}

// Colors are the resolved text and background colors
type Colors struct {
	Title      string `json:"title"`
	TitleAuto  bool   `json:"titleAuto"`
	Subtitle   string `json:"subtitle"`
	Social     string `json:"social"`
	Legal      string `json:"legal"`
	Background string `json:"background"` // empty when transparent
}

// ImageFrame is the resolved framing of the signature image
type ImageFrame struct {
	URL           string          `json:"url"`
	Form          types.ImageForm `json:"form"`
	Width         float64         `json:"width"`
	Height        float64         `json:"height"`
	BorderRadius  string          `json:"borderRadius"`
	VerticalAlign string          `json:"verticalAlign"`
	Border        string          `json:"border,omitempty"`    // CSS border shorthand, empty when off
	BoxShadow     string          `json:"boxShadow,omitempty"` // CSS box-shadow, empty when off
}

// Substitution records a value the renderer could not use and what it used instead
type Substitution struct {
	Path     string `json:"path"`
	Value    string `json:"value"`
	Fallback string `json:"fallback"`
}

func (s Substitution) String() string {
	return fmt.Sprintf("%s: %q → %q", s.Path, s.Value, s.Fallback)
}

var fontStacks = map[types.FontFamily]string{
	types.FontInter:  "Inter, Helvetica, Arial, sans-serif",
	types.FontSF:     "-apple-system, BlinkMacSystemFont, 'SF Pro Text', Helvetica, Arial, sans-serif",
	types.FontRoboto: "Roboto, Helvetica, Arial, sans-serif",
	types.FontArial:  "Arial, Helvetica, sans-serif",
}

var verticalAligns = map[types.Alignment]string{
	types.AlignTop:    "top",
	types.AlignCenter: "middle",
	types.AlignBottom: "bottom",
}

// Resolve turns sig into a Style. It never fails: the signature is normalized
// first, and closed-set values or colors it cannot use are replaced by their
// defaults, each replacement listed in Style.Substitutions.
func Resolve(sig types.Signature) Style {
	sig = signature.Normalize(sig)
	r := &resolver{}
	opts := sig.Options

	family := resolveEnum(r, "options.font.family", opts.Font.Family, types.DefaultFontFamily)
	weight := resolveEnum(r, "options.font.titleWeight", opts.Font.TitleWeight, types.DefaultFontWeight)
	// Every member of the weight set is numeric.
	titleWeight, _ := strconv.Atoi(string(weight))

	style := Style{
		FontFamily:  family,
		FontStack:   fontStacks[family],
		TitleWeight: titleWeight,
		Sizes:       opts.Size,
		Gaps:        opts.Gap,
		Colors:      r.colors(opts.Color),
		Socials:     social.Classify(sig.Data.Socials),
	}

	if sig.Data.Image != "" {
		frame := r.imageFrame(opts.Image)
		frame.URL = sig.Data.Image
		style.Image = &frame
	}

	style.Substitutions = r.substitutions
	return style
}

type resolver struct {
	substitutions []Substitution
}

func (r *resolver) substitute(path, value, fallback string) {
	r.substitutions = append(r.substitutions, Substitution{Path: path, Value: value, Fallback: fallback})
}

type closedSet interface {
	~string
	Valid() bool
}

func resolveEnum[T closedSet](r *resolver, path string, value, fallback T) T {
	if value.Valid() {
		return value
	}
	r.substitute(path, string(value), string(fallback))
	return fallback
}

func (r *resolver) color(path, value, fallback string) string {
	if colors.Valid(value) {
		return value
	}
	r.substitute(path, value, fallback)
	return fallback
}

func (r *resolver) colors(c types.ColorOptions) Colors {
	defaults := types.DefaultOptions().Color
	out := Colors{
		Subtitle: r.color("options.color.subtitle", c.Subtitle, defaults.Subtitle),
		Social:   r.color("options.color.social", c.Social, defaults.Social),
		Legal:    r.color("options.color.legal", c.Legal, defaults.Legal),
	}

	if bg, painted := c.PaintedBackground(); painted {
		out.Background = r.color("options.color.background", bg, defaults.Background)
		if out.Background == colors.Transparent {
			out.Background = ""
		}
	}

	if title, explicit := c.TitleColor(); explicit {
		out.Title = r.color("options.color.title", title, defaults.Title)
	} else {
		out.TitleAuto = true
		out.Title = AutoTitleColor(out.Background)
	}
	return out
}

func (r *resolver) imageFrame(img types.ImageOptions) ImageFrame {
	form := resolveEnum(r, "options.image.form", img.Form, types.DefaultImageForm)
	align := resolveEnum(r, "options.image.align", img.Align, types.DefaultAlignment)

	frame := ImageFrame{
		Form:          form,
		Width:         img.Size,
		Height:        img.Size,
		BorderRadius:  "0",
		VerticalAlign: verticalAligns[align],
	}
	switch form {
	case types.FormCircle:
		frame.BorderRadius = "50%"
	case types.FormRectangle:
		// 4:3 landscape
		frame.Height = math.Round(img.Size * 3 / 4)
	}

	if border, on := img.EnabledBorder(); on {
		style := resolveEnum(r, "options.image.borderStyle", border.Style, types.DefaultBorderStyle)
		color := r.color("options.image.borderColor", border.Color, types.DefaultImageOptions().BorderColor)
		frame.Border = fmt.Sprintf("%spx %s %s", formatNumber(border.Width), style, color)
	}

	if intensity, on := img.ShadowLevel(); on && intensity > 0 {
		frame.BoxShadow = BoxShadow(intensity)
	}
	return frame
}

// BoxShadow returns the CSS box-shadow for a shadow intensity in [0, types.MaxShadowIntensity].
// Offset and blur grow linearly; opacity grows from 0.1 and is capped at 0.5.
func BoxShadow(intensity float64) string {
	offset := intensity / 2
	blur := intensity * 2
	alpha := math.Min(0.1+intensity*0.02, 0.5)
	alpha = math.Round(alpha*100) / 100
	return fmt.Sprintf("0 %spx %spx rgba(0, 0, 0, %s)", formatNumber(offset), formatNumber(blur), formatNumber(alpha))
}

// AutoTitleColor picks whichever of AutoTitleDark and AutoTitleLight contrasts
// more with background. An empty (transparent) or unparseable background is
// treated as white, the usual mail client canvas.
func AutoTitleColor(background string) string {
	bg, ok := colors.Parse(background)
	if !ok {
		return AutoTitleDark
	}
	dark, _ := colors.Parse(AutoTitleDark)
	light, _ := colors.Parse(AutoTitleLight)

	l := colors.Luminance(bg)
	if contrast(l, colors.Luminance(light)) > contrast(l, colors.Luminance(dark)) {
		return AutoTitleLight
	}
	return AutoTitleDark
}

func contrast(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	return (a + 0.05) / (b + 0.05)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
