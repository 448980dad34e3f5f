// Package signature normalizes, migrates and (de)serializes signature documents.
package signature

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/signature-customizer/internal/colors"
	"github.com/jonathan/signature-customizer/internal/types"
)

// Normalize returns the canonical form of sig. The input is not modified.
//
// Numbers are clamped into their bounds (sizes at or below zero are raised to
// types.MinSize), text is trimmed and single-line fields are cut to
// types.MaxTextLength runes, socials without a URL are dropped and colors are
// trimmed with hex literals lowercased. Invalid UTF-8 is replaced as in
// ValidUTF8. Closed-set fields are otherwise left as given.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(sig types.Signature) types.Signature {
	sig = ValidUTF8(sig)
	return types.Signature{
		Data:    normalizeData(sig.Data),
		Options: normalizeOptions(sig.Options),
	}
}

func normalizeData(d types.SignatureFormData) types.SignatureFormData {
	out := types.SignatureFormData{
		Image:            strings.TrimSpace(d.Image),
		FullName:         singleLine(d.FullName),
		JobTitle:         singleLine(d.JobTitle),
		Company:          singleLine(d.Company),
		Phone:            singleLine(d.Phone),
		LegalCompanyLine: multiLine(d.LegalCompanyLine),
		LegalDisclaimer:  multiLine(d.LegalDisclaimer),
		Socials:          make([]types.SocialLink, 0, len(d.Socials)),
	}

	for _, s := range d.Socials {
		link := types.SocialLink{
			Title: strings.TrimSpace(s.Title),
			URL:   strings.TrimSpace(s.URL),
		}
		if link.URL == "" {
			continue
		}
		out.Socials = append(out.Socials, link)
	}

	return out
}

func normalizeOptions(o types.SignatureOptions) types.SignatureOptions {
	o.Gap = types.GapOptions{
		Title:           clampGap(o.Gap.Title),
		Subtitle:        clampGap(o.Gap.Subtitle),
		Social:          clampGap(o.Gap.Social),
		Image:           clampGap(o.Gap.Image),
		SocialSection:   clampGap(o.Gap.SocialSection),
		LegalSection:    clampGap(o.Gap.LegalSection),
		SocialToCompany: clampGap(o.Gap.SocialToCompany),
	}
	o.Size = types.SizeOptions{
		Title:           clampSize(o.Size.Title, types.MinSize, types.MaxSize),
		Subtitle:        clampSize(o.Size.Subtitle, types.MinSize, types.MaxSize),
		Social:          clampSize(o.Size.Social, types.MinSize, types.MaxSize),
		LegalCompany:    clampSize(o.Size.LegalCompany, types.MinSize, types.MaxSize),
		LegalDisclaimer: clampSize(o.Size.LegalDisclaimer, types.MinSize, types.MaxSize),
	}

	o.Color.Title = colors.Canonical(o.Color.Title)
	o.Color.Subtitle = colors.Canonical(o.Color.Subtitle)
	o.Color.Social = colors.Canonical(o.Color.Social)
	o.Color.Legal = colors.Canonical(o.Color.Legal)
	o.Color.Background = colors.Canonical(o.Color.Background)

	o.Image.Size = clampSize(o.Image.Size, types.MinImageSize, types.MaxImageSize)
	o.Image.BorderColor = colors.Canonical(o.Image.BorderColor)
	o.Image.BorderWidth = clamp(o.Image.BorderWidth, 0, types.MaxBorderWidth)
	o.Image.ShadowIntensity = clamp(o.Image.ShadowIntensity, 0, types.MaxShadowIntensity)

	return o
}

func clampGap(v float64) float64 {
	return clamp(v, 0, types.MaxGap)
}

// clamp bounds v to [lo, hi]; NaN becomes lo.
func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}

// clampSize raises non-positive sizes to floor and caps them at hi.
// Positive values below floor are kept.
func clampSize(v, floor, hi float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return floor
	case v > hi:
		return hi
	default:
		return v
	}
}

func singleLine(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= types.MaxTextLength {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:types.MaxTextLength]))
}

func multiLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
