// Package social classifies social links by the site they point at.
package social

import (
	"net/url"
	"strings"

	"github.com/jonathan/signature-customizer/internal/types"
)

// hostTypes maps registrable domains onto social media types
var hostTypes = map[string]types.SocialMedia{
	"twitter.com":   types.SocialTwitter,
	"x.com":         types.SocialTwitter,
	"instagram.com": types.SocialInstagram,
	"instagr.am":    types.SocialInstagram,
	"github.com":    types.SocialGitHub,
	"linkedin.com":  types.SocialLinkedIn,
	"lnkd.in":       types.SocialLinkedIn,
}

// InferType classifies rawURL by its host. Known networks (including their
// subdomains, e.g. www. or mobile.) map to their type; any other http(s) URL is
// a portfolio. The bool is false when rawURL cannot be read as a web URL, in
// which case the portfolio fallback is returned.
func InferType(rawURL string) (types.SocialMedia, bool) {
	host, ok := hostOf(rawURL)
	if !ok {
		return types.DefaultSocialMedia, false
	}

	for domain, media := range hostTypes {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return media, true
		}
	}
	return types.SocialPortfolio, true
}

// Classify returns links with their inferred types, in the same order.
func Classify(links []types.SocialLink) []types.Social {
	out := make([]types.Social, 0, len(links))
	for _, link := range links {
		media, _ := InferType(link.URL)
		out = append(out, types.Social{
			Title: link.Title,
			URL:   link.URL,
			Type:  media,
		})
	}
	return out
}

// hostOf returns the lowercase host of rawURL. Scheme-less input such as
// "github.com/ada" is read as https.
func hostOf(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	if u.Scheme == "" {
		if u, err = url.Parse("https://" + rawURL); err != nil {
			return "", false
		}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	if host == "" || !strings.Contains(host, ".") {
		return "", false
	}
	return host, true
}
