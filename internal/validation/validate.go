// Package validation checks signatures against the closed sets, bounds and color grammar of the data model.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/signature-customizer/internal/colors"
	"github.com/jonathan/signature-customizer/internal/types"
)

// Result holds the findings of a validation run. An empty result means the signature may be exported.
type Result struct {
	Findings []types.Finding `json:"findings"`
}

// OK reports whether validation produced no findings.
func (r Result) OK() bool {
	return len(r.Findings) == 0
}

// Err returns nil when the result is OK and an *Error listing every finding otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &Error{Findings: r.Findings}
}

// ByPath returns the findings reported for path.
func (r Result) ByPath(path string) []types.Finding {
	var out []types.Finding
	for _, f := range r.Findings {
		if f.Path == path {
			out = append(out, f)
		}
	}
	return out
}

// HasKind reports whether any finding is of kind.
func (r Result) HasKind(kind types.FindingKind) bool {
	for _, f := range r.Findings {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
)

// structValidator returns the shared validator. validator.Validate is safe for
// concurrent use once its custom rules are registered.
func structValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation("sigcolor", func(fl validator.FieldLevel) bool {
			return colors.Valid(fl.Field().String())
		})
		_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate = v
	})
	return validate
}

// Validate checks every field of sig and returns the findings as data.
// It never fails: malformed values are reported, not returned as errors.
func Validate(sig types.Signature) Result {
	result := Result{Findings: []types.Finding{}}

	err := structValidator().Struct(sig)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable if Signature stopped being a struct.
		result.Findings = append(result.Findings, types.Finding{
			Path:    "(root)",
			Kind:    types.FindingMissingValue,
			Message: err.Error(),
		})
		return result
	}

	for _, fe := range fieldErrs {
		result.Findings = append(result.Findings, toFinding(fe))
	}
	return result
}

func toFinding(fe validator.FieldError) types.Finding {
	f := types.Finding{
		Path:  fieldPath(fe.Namespace()),
		Value: fe.Value(),
	}

	switch fe.Tag() {
	case "oneof":
		f.Kind = types.FindingUnknownEnumValue
		f.Message = fmt.Sprintf("%q is not one of [%s]", fe.Value(), fe.Param())
	case "gt", "gte", "lt", "lte":
		f.Kind = types.FindingOutOfRange
		f.Message = fmt.Sprintf("%v must be %s %s", fe.Value(), comparison[fe.Tag()], fe.Param())
	case "sigcolor":
		f.Kind = types.FindingInvalidColor
		f.Message = fmt.Sprintf("%q is not a #RGB or #RRGGBB hex color or a CSS color name", fe.Value())
	case "max":
		f.Kind = types.FindingTooLong
		f.Message = fmt.Sprintf("must be at most %s characters", fe.Param())
	case "nonblank":
		f.Kind = types.FindingMissingValue
		f.Message = "must not be empty"
	default:
		f.Kind = types.FindingMissingValue
		f.Message = fe.Error()
	}
	return f
}

var comparison = map[string]string{
	"gt":  ">",
	"gte": ">=",
	"lt":  "<",
	"lte": "<=",
}

// fieldPath drops the root struct name from a validator namespace:
// "Signature.options.gap.title" becomes "options.gap.title".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
