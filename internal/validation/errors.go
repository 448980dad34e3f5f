// Package validation checks signatures against the closed sets, bounds and color grammar of the data model.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/signature-customizer/internal/types"
)

// Error reports the findings of a failed validation as an error value, for
// callers such as export paths that must refuse an invalid signature.
type Error struct {
	Findings []types.Finding
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, f := range e.Findings {
		sb.WriteString(fmt.Sprintf("  %d. %s (%s): %s\n", i+1, f.Path, f.Kind, f.Message))
	}
	return sb.String()
}
