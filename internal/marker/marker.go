// Package marker extracts column sections and design points from the
// interaction diagram tags embedded in assistant chat responses:
//
//	[MN_DIAGRAM b=400 h=400 As1=1257 As2=1257 fck=30 fyk=500 cover=45 NEd=1500 MEd=80]
//
// Pairs are separated by spaces and/or commas. Keys are case-sensitive.
package marker

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/section"
)

// Tag opens every marker
const Tag = "MN_DIAGRAM"

var (
	ErrNoMarker     = errors.New("no interaction diagram marker found")
	ErrUnknownKey   = errors.New("unknown key")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrBadNumber    = errors.New("value is not a finite number")
	ErrBadPair      = errors.New("malformed key=value pair")
	ErrMissingKey   = errors.New("missing required key")
	ErrPartialLoad  = errors.New("NEd and MEd must be given together")
)

var markerPattern = regexp.MustCompile(`\[` + Tag + `\s*:?\s*([^\]]*)\]`)

// requiredKeys must appear in every marker
var requiredKeys = []string{"b", "h", "fck", "fyk"}

var knownKeys = map[string]bool{
	"b": true, "h": true,
	"As": true, "As1": true, "As2": true,
	"fck": true, "fyk": true, "cover": true,
	"NEd": true, "MEd": true,
}

// Marker is one parsed and validated tag
type Marker struct {
	Raw     string             // The tag as found in the text
	Offset  int                // Byte offset of the tag in the text
	Section section.Section    // Validated; cover defaults when absent
	Design  *interaction.Point // Present when NEd and MEd were given
}

// ParseError describes why a tag was rejected
type ParseError struct {
	Raw string
	Key string
	Err error
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("marker %q: %s: %v", e.Raw, e.Key, e.Err)
	}
	return fmt.Sprintf("marker %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse returns the first marker in text. ErrNoMarker is returned when the
// text carries no tag at all.
func Parse(text string) (Marker, error) {
	loc := markerPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return Marker{}, ErrNoMarker
	}
	return parseMatch(text, loc)
}

// ParseAll returns every valid marker in text, in order of appearance,
// together with the errors for the rejected ones
func ParseAll(text string) ([]Marker, []error) {
	var markers []Marker
	var errs []error

	for _, loc := range markerPattern.FindAllStringSubmatchIndex(text, -1) {
		m, err := parseMatch(text, loc)
		if err != nil {
			slog.Debug("marker rejected", "error", err)
			errs = append(errs, err)
			continue
		}
		markers = append(markers, m)
	}
	return markers, errs
}

func parseMatch(text string, loc []int) (Marker, error) {
	raw := text[loc[0]:loc[1]]
	body := text[loc[2]:loc[3]]

	values, err := parsePairs(raw, body)
	if err != nil {
		return Marker{}, err
	}

	for _, key := range requiredKeys {
		if _, ok := values[key]; !ok {
			return Marker{}, &ParseError{Raw: raw, Key: key, Err: ErrMissingKey}
		}
	}

	sec := section.New()
	sec.B, sec.H = values["b"], values["h"]
	sec.Fck, sec.Fyk = values["fck"], values["fyk"]
	if cover, ok := values["cover"]; ok {
		sec.Cover = cover
	}

	as, hasAs := values["As"]
	as1, hasAs1 := values["As1"]
	as2, hasAs2 := values["As2"]
	switch {
	case hasAs && (hasAs1 || hasAs2):
		return Marker{}, &ParseError{Raw: raw, Key: "As", Err: fmt.Errorf("%w: As cannot be combined with As1/As2", ErrDuplicateKey)}
	case hasAs:
		sec.As1, sec.As2 = as, as
	case hasAs1 && !hasAs2:
		sec.As1, sec.As2 = as1, as1
	default:
		sec.As1, sec.As2 = as1, as2
	}

	if err := sec.Validate(); err != nil {
		return Marker{}, &ParseError{Raw: raw, Err: err}
	}

	m := Marker{Raw: raw, Offset: loc[0], Section: sec}

	nEd, hasN := values["NEd"]
	mEd, hasM := values["MEd"]
	switch {
	case hasN && hasM:
		m.Design = &interaction.Point{N: nEd, M: math.Abs(mEd)}
	case hasN || hasM:
		return Marker{}, &ParseError{Raw: raw, Err: ErrPartialLoad}
	}

	return m, nil
}

func parsePairs(raw, body string) (map[string]float64, error) {
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	values := make(map[string]float64, len(fields))
	for _, field := range fields {
		key, value, ok := strings.Cut(field, "=")
		if !ok || key == "" || value == "" {
			return nil, &ParseError{Raw: raw, Key: field, Err: ErrBadPair}
		}
		if !knownKeys[key] {
			return nil, &ParseError{Raw: raw, Key: key, Err: ErrUnknownKey}
		}
		if _, seen := values[key]; seen {
			return nil, &ParseError{Raw: raw, Key: key, Err: ErrDuplicateKey}
		}

		v, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Raw: raw, Key: key, Err: ErrBadNumber}
		}
		values[key] = v
	}
	return values, nil
}
