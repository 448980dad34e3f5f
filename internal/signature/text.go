package signature

import (
	"strings"

	"github.com/jonathan/signature-customizer/internal/types"
)

// ValidUTF8 returns a copy of sig in which every string field holds valid
// UTF-8, each run of invalid bytes replaced by U+FFFD. encoding/json makes the
// same replacement when encoding, so only sanitized values survive an encode
// and decode unchanged.
func ValidUTF8(sig types.Signature) types.Signature {
	d := &sig.Data
	d.Image = validText(d.Image)
	d.FullName = validText(d.FullName)
	d.JobTitle = validText(d.JobTitle)
	d.Company = validText(d.Company)
	d.Phone = validText(d.Phone)
	d.LegalCompanyLine = validText(d.LegalCompanyLine)
	d.LegalDisclaimer = validText(d.LegalDisclaimer)
	if d.Socials != nil {
		socials := make([]types.SocialLink, len(d.Socials))
		for i, s := range d.Socials {
			socials[i] = types.SocialLink{Title: validText(s.Title), URL: validText(s.URL)}
		}
		d.Socials = socials
	}

	c := &sig.Options.Color
	c.Title = validText(c.Title)
	c.Subtitle = validText(c.Subtitle)
	c.Social = validText(c.Social)
	c.Legal = validText(c.Legal)
	c.Background = validText(c.Background)

	img := &sig.Options.Image
	img.Align = types.Alignment(validText(string(img.Align)))
	img.Form = types.ImageForm(validText(string(img.Form)))
	img.BorderStyle = types.BorderStyle(validText(string(img.BorderStyle)))
	img.BorderColor = validText(img.BorderColor)

	f := &sig.Options.Font
	f.Family = types.FontFamily(validText(string(f.Family)))
	f.TitleWeight = types.FontWeight(validText(string(f.TitleWeight)))

	return sig
}

func validText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
