// Package slab designs rectangular reinforced concrete slabs per metre width
// (EN 1992-1-1). Slabs with ly/lx > 2 span one way; the others are designed
// with moment coefficients for a slab supported on four edges.
package slab

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexiusacademia/gorcc/internal/beam"
	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/ec2"
)

const (
	StripWidth     = 1000.0 // Design strip (mm)
	DefaultCover   = 25.0   // mm
	AssumedMainBar = 10.0   // Bar used to place the effective depths (mm)

	OneWayRatio      = 2.0  // ly/lx above which the slab spans one way
	SupportFactor    = 1.33 // Support to span moment of a fixed edge
	TransverseFactor = 0.2  // Distribution steel as a share of the main steel
	MinMeshSpacing   = 50   // mm
	MaxMeshOptions   = 4
)

// MeshDiameters tried for the slab reinforcement (mm)
var MeshDiameters = []int{8, 10, 12, 16, 20}

// Support describes the edge conditions of the slab
type Support string

const (
	SimplySupported   Support = "simply_supported"
	AllFixed          Support = "all_fixed"
	ThreeFixedOneFree Support = "three_fixed_one_free"
	TwoAdjacentFixed  Support = "two_adjacent_fixed"
	OneWaySupport     Support = "one_way"
)

// Supports lists the accepted edge conditions
var Supports = []Support{SimplySupported, AllFixed, ThreeFixedOneFree, TwoAdjacentFixed, OneWaySupport}

// ParseSupport looks up an edge condition; dashes are accepted for underscores
func ParseSupport(name string) (Support, error) {
	key := Support(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", "_")))
	for _, s := range Supports {
		if s == key {
			return s, nil
		}
	}
	names := make([]string, len(Supports))
	for i, s := range Supports {
		names[i] = string(s)
	}
	return "", fmt.Errorf("unknown support type %q (known: %s)", name, strings.Join(names, ", "))
}

// Slab is a rectangular slab under uniform load
type Slab struct {
	Lx        float64 // Shorter span (m)
	Ly        float64 // Longer span (m)
	Thickness float64 // h (mm)
	Cover     float64 // mm
	G         float64 // Permanent load gk (kN/m²)
	Q         float64 // Imposed load qk (kN/m²)
	Support   Support

	Concrete ec2.ConcreteGrade
	Steel    ec2.SteelGrade
}

// MeshProposal is a bar size and spacing for one metre of slab
type MeshProposal struct {
	Diameter int
	Spacing  int     // mm
	Area     float64 // mm²/m
	Ratio    float64 // Area/AsRequired
}

// Strip is the design of one reinforcement layer
type Strip struct {
	Name       string
	MEd        float64 // kNm/m, zero for distribution steel
	D          float64 // Effective depth (mm)
	AsRequired float64 // mm²/m
	Flexure    *beam.FlexureResult
	Mesh       []MeshProposal
}

// Result holds the slab design
type Result struct {
	QEd    float64 // kN/m²
	Ratio  float64 // ly/lx
	OneWay bool
	Dx, Dy float64 // mm

	AlphaX, AlphaY float64 // Span moment coefficients of two-way slabs

	Strips []Strip

	// Span/depth check of EN 1992-1-1 7.4.2
	Rho          float64
	LdLimit      float64
	LdActual     float64
	DeflectionOK bool

	IsAdequate bool
	Message    string
}

func (s *Slab) validate() error {
	if s.Lx <= 0 || s.Ly <= 0 {
		return fmt.Errorf("invalid spans: lx=%.2f m, ly=%.2f m", s.Lx, s.Ly)
	}
	if s.Lx > s.Ly {
		return fmt.Errorf("lx=%.2f m must be the shorter span (ly=%.2f m)", s.Lx, s.Ly)
	}
	if s.Thickness <= 0 || s.Cover < 0 {
		return fmt.Errorf("invalid thickness or cover: h=%.0f mm, c=%.0f mm", s.Thickness, s.Cover)
	}
	if s.G < 0 || s.Q < 0 {
		return fmt.Errorf("loads must not be negative: gk=%.2f, qk=%.2f", s.G, s.Q)
	}
	if s.Thickness-s.Cover-1.5*AssumedMainBar <= 0 {
		return fmt.Errorf("cover %.0f mm leaves no effective depth in a %.0f mm slab", s.Cover, s.Thickness)
	}
	for _, sup := range Supports {
		if sup == s.Support {
			return nil
		}
	}
	return fmt.Errorf("unknown support type %q", s.Support)
}

// Design calculates the moments, the reinforcement and the span/depth check
func (s *Slab) Design() (*Result, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	r := &Result{
		QEd:   ec2.GammaG*s.G + ec2.GammaQ*s.Q,
		Ratio: s.Ly / s.Lx,
		Dx:    s.Thickness - s.Cover - AssumedMainBar/2,
		Dy:    s.Thickness - s.Cover - 1.5*AssumedMainBar,
	}
	r.OneWay = r.Ratio > OneWayRatio || s.Support == OneWaySupport
	lx2 := s.Lx * s.Lx

	var main float64
	if r.OneWay {
		span, support := r.QEd*lx2/8, 0.0
		if s.Support == AllFixed || s.Support == TwoAdjacentFixed {
			span, support = r.QEd*lx2/16, r.QEd*lx2/12
		}
		st, err := s.strip("Span x", span, r.Dx)
		if err != nil {
			return nil, err
		}
		r.Strips = append(r.Strips, st)
		main = st.AsRequired

		if support > 0 {
			sup, err := s.strip("Support x", support, r.Dx)
			if err != nil {
				return nil, err
			}
			r.Strips = append(r.Strips, sup)
		}

		asMin := s.section(r.Dy).MinTensionSteel()
		dist := math.Max(TransverseFactor*main, asMin)
		r.Strips = append(r.Strips, Strip{
			Name:       "Transverse",
			D:          r.Dy,
			AsRequired: dist,
			Mesh:       SelectMesh(dist, s.Thickness, false),
		})
	} else {
		table := simplySupportedCoefficients
		if s.Support == AllFixed {
			table = allFixedCoefficients
		}
		r.AlphaX, r.AlphaY = interpolate(table, r.Ratio)

		mx, my := r.AlphaX*r.QEd*lx2, r.AlphaY*r.QEd*lx2
		x, err := s.strip("Span x", mx, r.Dx)
		if err != nil {
			return nil, err
		}
		y, err := s.strip("Span y", my, r.Dy)
		if err != nil {
			return nil, err
		}
		r.Strips = append(r.Strips, x, y)
		main = math.Max(x.AsRequired, y.AsRequired)

		if s.Support == AllFixed {
			xs, err := s.strip("Support x", SupportFactor*mx, r.Dx)
			if err != nil {
				return nil, err
			}
			ys, err := s.strip("Support y", SupportFactor*my, r.Dy)
			if err != nil {
				return nil, err
			}
			r.Strips = append(r.Strips, xs, ys)
		}
	}

	r.Rho = main / (StripWidth * r.Dx)
	k := 1.0
	if s.Support == AllFixed {
		k = 1.3
	}
	r.LdLimit = SpanDepthLimit(r.Rho, s.Concrete.Fck, k)
	r.LdActual = s.Lx * 1000 / r.Dx
	r.DeflectionOK = r.LdActual <= r.LdLimit

	r.IsAdequate, r.Message = r.assess()
	return r, nil
}

func (s *Slab) section(d float64) *beam.Section {
	return beam.NewSection(StripWidth, s.Thickness, d, s.Concrete, s.Steel)
}

func (s *Slab) strip(name string, mEd, d float64) (Strip, error) {
	f, err := s.section(d).Design(mEd)
	if err != nil {
		return Strip{}, fmt.Errorf("%s: %w", strings.ToLower(name), err)
	}
	return Strip{
		Name:       name,
		MEd:        mEd,
		D:          d,
		AsRequired: f.AsRequired,
		Flexure:    f,
		Mesh:       SelectMesh(f.AsRequired, s.Thickness, true),
	}, nil
}

func (r *Result) assess() (bool, string) {
	for _, st := range r.Strips {
		if f := st.Flexure; f != nil && f.RequiresCompSteel {
			return false, fmt.Sprintf("Design inadequate - %s needs compression steel (μ=%.3f > μlim); increase the thickness", st.Name, f.Mu)
		}
		if f := st.Flexure; f != nil && f.ExceedsAsMax {
			return false, fmt.Sprintf("Design inadequate - %s As=%.0f mm²/m exceeds As,max=%.0f mm²/m", st.Name, f.AsRequired, f.AsMax)
		}
		if len(st.Mesh) == 0 {
			return false, fmt.Sprintf("Design inadequate - no bar spacing provides %.0f mm²/m for %s", st.AsRequired, st.Name)
		}
	}
	if !r.DeflectionOK {
		return false, fmt.Sprintf("Deflection check fails - L/d=%.1f > %.1f; increase the thickness", r.LdActual, r.LdLimit)
	}
	if r.OneWay {
		return true, "Design OK - one-way slab"
	}
	return true, "Design OK - two-way slab"
}

// SelectMesh proposes bar sizes and spacings for asRequired (mm²/m). Main
// steel is spaced at most min(3h, 400) mm and distribution steel at most
// min(3.5h, 450) mm (9.3.1.1).
func SelectMesh(asRequired, thickness float64, main bool) []MeshProposal {
	if asRequired <= 0 {
		return nil
	}
	maxSpacing := math.Min(3*thickness, 400)
	if !main {
		maxSpacing = math.Min(3.5*thickness, 450)
	}

	var proposals []MeshProposal
	for _, dia := range MeshDiameters {
		area := column.BarArea(dia)
		s := math.Min(area*StripWidth/asRequired, maxSpacing)
		s = math.Floor(s/10) * 10
		if s < MinMeshSpacing || s < float64(dia+5) {
			continue
		}
		provided := area * StripWidth / s
		proposals = append(proposals, MeshProposal{
			Diameter: dia,
			Spacing:  int(s),
			Area:     provided,
			Ratio:    provided / asRequired,
		})
	}

	sort.SliceStable(proposals, func(i, j int) bool { return proposals[i].Ratio < proposals[j].Ratio })
	if len(proposals) > MaxMeshOptions {
		proposals = proposals[:MaxMeshOptions]
	}
	return proposals
}

// SpanDepthLimit returns the basic span/effective depth ratio of
// EN 1992-1-1 expressions (7.16a) and (7.16b) without compression steel,
// capped at 40·K
func SpanDepthLimit(rho, fck, k float64) float64 {
	rho0 := 1e-3 * math.Sqrt(fck)
	sq := math.Sqrt(fck)
	if rho <= 0 {
		return 40 * k
	}
	var ld float64
	if rho <= rho0 {
		ld = k * (11 + 1.5*sq*rho0/rho + 3.2*sq*math.Pow(rho0/rho-1, 1.5))
	} else {
		ld = k * (11 + 1.5*sq*rho0/rho)
	}
	return math.Min(ld, 40*k)
}
