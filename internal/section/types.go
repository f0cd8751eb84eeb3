package section

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultCover is used when a section does not specify its cover (mm)
const DefaultCover = 45.0

// Section represents a rectangular reinforced concrete column section with
// two reinforcement layers. Depths are measured from the compression face:
// - As2 sits at d2 = Cover (compression face layer)
// - As1 sits at d = H - Cover (tension face layer)
type Section struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Geometry (mm)
	B     float64 `json:"b" yaml:"b" validate:"finite,gt=0"`
	H     float64 `json:"h" yaml:"h" validate:"finite,gt=0"`
	Cover float64 `json:"cover" yaml:"cover" validate:"finite,gt=0"`

	// Reinforcement (mm²)
	As1 float64 `json:"as1" yaml:"as1" validate:"finite,gte=0"`
	As2 float64 `json:"as2" yaml:"as2" validate:"finite,gte=0"`

	// Materials (MPa)
	Fck float64 `json:"fck" yaml:"fck" validate:"finite,gt=0"`
	Fyk float64 `json:"fyk" yaml:"fyk" validate:"finite,gt=0"`
}

// New returns an empty section carrying the defaults of the optional
// fields. Decode into it so that only absent fields keep their default and
// an explicit zero is still rejected by Validate.
func New() Section {
	return Section{Cover: DefaultCover}
}

// sectionValidate is shared by every Validate call
var sectionValidate *validator.Validate

func init() {
	sectionValidate = validator.New()
	sectionValidate.RegisterValidation("finite", validateFinite)
	sectionValidate.RegisterStructValidation(validateCover, Section{})
}

// validateFinite rejects NaN and ±Inf, which gt/gte let through
func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateCover keeps both layers inside the section and on their own side
// of the mid-depth
func validateCover(sl validator.StructLevel) {
	s := sl.Current().Interface().(Section)
	if s.H > 0 && s.Cover >= s.H/2 {
		sl.ReportError(s.Cover, "Cover", "cover", "ltehalfh", "")
	}
}

// Validate checks if the section definition is valid. Defaults are not
// applied here; start from New when the cover is optional.
func (s *Section) Validate() error {
	err := sectionValidate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{msg: err.Error()}
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field: fe.Field(),
		msg:   describeFieldError(fe, s),
	}
}

func describeFieldError(fe validator.FieldError, s *Section) string {
	name := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "finite":
		return fmt.Sprintf("%s must be a finite number", name)
	case "gt":
		return fmt.Sprintf("%s must be positive", name)
	case "gte":
		return fmt.Sprintf("%s must not be negative", name)
	case "ltehalfh":
		return fmt.Sprintf("cover (%.1f mm) must be less than h/2 (%.1f mm)", s.Cover, s.H/2)
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}

func fieldLabel(field string) string {
	switch field {
	case "As1", "As2":
		return field
	default:
		return strings.ToLower(field)
	}
}

// ValidationError represents a section validation error
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	return e.msg
}
