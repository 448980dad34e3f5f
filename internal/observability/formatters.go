// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/signature-customizer/internal/rendering"
	"github.com/jonathan/signature-customizer/internal/signature"
	"github.com/jonathan/signature-customizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintSignature outputs a human-readable summary of a signature.
func (p *Printer) PrintSignature(sig *types.Signature) {
	if sig == nil {
		return
	}

	var sb strings.Builder
	data := sig.Data
	opts := sig.Options

	sb.WriteString(fmt.Sprintf("Name:     %s\n", data.FullName))
	if data.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", data.JobTitle))
	}
	if data.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", data.Company))
	}
	sb.WriteString(fmt.Sprintf("Font:     %s %s\n", opts.Font.Family, opts.Font.TitleWeight))
	sb.WriteString(fmt.Sprintf("Image:    %s %s, %gpx\n", opts.Image.Form, opts.Image.Align, opts.Image.Size))

	// Gates
	if border, on := opts.Image.EnabledBorder(); on {
		sb.WriteString(fmt.Sprintf("Border:   %gpx %s %s\n", border.Width, border.Style, border.Color))
	} else {
		sb.WriteString("Border:   off\n")
	}
	if intensity, on := opts.Image.ShadowLevel(); on {
		sb.WriteString(fmt.Sprintf("Shadow:   %g\n", intensity))
	} else {
		sb.WriteString("Shadow:   off\n")
	}
	if bg, painted := opts.Color.PaintedBackground(); painted {
		sb.WriteString(fmt.Sprintf("Backgr.:  %s\n", bg))
	} else {
		sb.WriteString("Backgr.:  transparent\n")
	}

	if len(data.Socials) > 0 {
		sb.WriteString("\nSocials:\n")
		count := min(len(data.Socials), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", data.Socials[i].URL))
		}
		if len(data.Socials) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Socials)-maxItemsToShow))
		}
	}

	p.printBox("SIGNATURE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMigration outputs where a migrated signature came from.
func (p *Printer) PrintMigration(m *signature.Migration) {
	if m == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input shape:     %s\n", m.Shape))
	sb.WriteString(fmt.Sprintf("Schema version:  %d → %d\n", m.FromVersion, signature.SchemaVersion))
	if m.LegacyShadowSize != "" {
		sb.WriteString(fmt.Sprintf("Shadow size:     %q → intensity %g\n", m.LegacyShadowSize, m.Signature.Options.Image.ShadowIntensity))
	}
	if m.Checksum != "" {
		sb.WriteString("Checksum:        verified\n")
	}

	p.printBox("MIGRATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSubstitutions outputs the fallbacks a resolved style used.
func (p *Printer) PrintSubstitutions(style *rendering.Style) {
	if style == nil || len(style.Substitutions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Replaced %d values:\n\n", len(style.Substitutions)))
	for _, s := range style.Substitutions {
		sb.WriteString(fmt.Sprintf("↺ %s\n", s))
	}

	p.printBox("RENDERER FALLBACKS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFindings outputs any validation findings for the named source.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFindings(source string, findings []types.Finding) {
	if len(findings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate("✅ NO FINDINGS: "+source, boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d findings:\n\n", len(findings)))

	for i, f := range findings {
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", f.Path, f.Kind))
		sb.WriteString(fmt.Sprintf("  %s\n", f.Message))
		if i < len(findings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FINDINGS: "+source, sb.String())
}
