//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDefault_FullyPopulated(t *testing.T) {
	sig := CreateDefault()

	require.NotNil(t, sig.Data.Socials)
	assert.Empty(t, sig.Data.Socials)

	opts := sig.Options
	for name, v := range map[string]float64{
		"title":           opts.Gap.Title,
		"subtitle":        opts.Gap.Subtitle,
		"social":          opts.Gap.Social,
		"image":           opts.Gap.Image,
		"socialSection":   opts.Gap.SocialSection,
		"legalSection":    opts.Gap.LegalSection,
		"socialToCompany": opts.Gap.SocialToCompany,
	} {
		assert.GreaterOrEqual(t, v, 4.0, "gap.%s", name)
		assert.LessOrEqual(t, v, 24.0, "gap.%s", name)
	}
	for name, v := range map[string]float64{
		"title":           opts.Size.Title,
		"subtitle":        opts.Size.Subtitle,
		"social":          opts.Size.Social,
		"legalCompany":    opts.Size.LegalCompany,
		"legalDisclaimer": opts.Size.LegalDisclaimer,
	} {
		assert.GreaterOrEqual(t, v, 10.0, "size.%s", name)
		assert.LessOrEqual(t, v, 32.0, "size.%s", name)
	}

	assert.Equal(t, "#ffffff", opts.Color.Background)
	assert.False(t, opts.Color.Transparent)
	assert.Equal(t, FontInter, opts.Font.Family)
	assert.Equal(t, Weight600, opts.Font.TitleWeight)
	assert.Equal(t, FormCircle, opts.Image.Form)
	assert.Equal(t, AlignCenter, opts.Image.Align)
	assert.NotEmpty(t, opts.Image.BorderColor)
	assert.Equal(t, BorderSolid, opts.Image.BorderStyle)
}

func TestCreateDefault_ReturnsIndependentValues(t *testing.T) {
	a := CreateDefault()
	b := CreateDefault()

	a.Data.Socials = append(a.Data.Socials, SocialLink{Title: "GitHub", URL: "https://github.com/x"})
	a.Options.Gap.Title = 99

	assert.Empty(t, b.Data.Socials)
	assert.Equal(t, 4.0, b.Options.Gap.Title)
}

func TestSignature_JSONFieldNames(t *testing.T) {
	sig := CreateDefault()
	sig.Data.FullName = "Ada Lovelace"
	sig.Data.LegalCompanyLine = "Analytical Engines Ltd."
	sig.Data.Socials = []SocialLink{{Title: "GitHub", URL: "https://github.com/ada"}}

	jsonBytes, err := json.Marshal(sig)
	require.NoError(t, err)
	out := string(jsonBytes)

	assert.Contains(t, out, `"fullName":"Ada Lovelace"`)
	assert.Contains(t, out, `"legalCompanyLine":"Analytical Engines Ltd."`)
	assert.Contains(t, out, `"socialToCompany":24`)
	assert.Contains(t, out, `"shadowIntensity":5`)
	assert.Contains(t, out, `"autoTitle":false`)
	assert.Contains(t, out, `"titleWeight":"600"`)
	assert.Contains(t, out, `"socials":[{"title":"GitHub","url":"https://github.com/ada"}]`)
	assert.NotContains(t, out, "shadowSize")
}

func TestSignature_GateFlagsSurviveJSON(t *testing.T) {
	sig := CreateDefault()
	sig.Options.Image.Border = false
	sig.Options.Image.BorderStyle = BorderDotted
	sig.Options.Image.BorderWidth = 3
	sig.Options.Image.Shadow = false
	sig.Options.Image.ShadowIntensity = 12
	sig.Options.Color.Transparent = true
	sig.Options.Color.Background = "#000000"

	jsonBytes, err := json.Marshal(sig)
	require.NoError(t, err)

	var decoded Signature
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, sig, decoded)
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, AlignTop.Valid())
	assert.False(t, Alignment("middle").Valid())
	assert.False(t, Alignment("Top").Valid())

	assert.True(t, FormRectangle.Valid())
	assert.False(t, ImageForm("oval").Valid())

	assert.True(t, BorderDashed.Valid())
	assert.False(t, BorderStyle("double").Valid())

	assert.True(t, FontRoboto.Valid())
	assert.False(t, FontFamily("comic-sans").Valid())
	assert.False(t, FontFamily("INTER").Valid())
	assert.False(t, FontFamily("int").Valid())

	assert.True(t, Weight700.Valid())
	assert.False(t, FontWeight("800").Valid())
	assert.False(t, FontWeight("bold").Valid())

	assert.True(t, SocialLinkedIn.Valid())
	assert.False(t, SocialMedia("facebook").Valid())
	assert.False(t, SocialMedia("").Valid())
}

func TestDefaultVariants_AreMembers(t *testing.T) {
	assert.True(t, DefaultAlignment.Valid())
	assert.True(t, DefaultImageForm.Valid())
	assert.True(t, DefaultBorderStyle.Valid())
	assert.True(t, DefaultFontFamily.Valid())
	assert.True(t, DefaultFontWeight.Valid())
	assert.True(t, DefaultSocialMedia.Valid())
}
