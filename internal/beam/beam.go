// Package beam designs simply supported rectangular reinforced concrete
// beams to EN 1992-1-1: bending with optional compression steel, one layer
// of tension bars, and vertical shear links.
package beam

import (
	"fmt"
	"log/slog"

	"github.com/alexiusacademia/gorcc/internal/ec2"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/section"
)

// DefaultCover is the nominal cover to the links (mm)
const DefaultCover = 35.0

// Beam describes a simply supported beam under uniform load
type Beam struct {
	Span   float64 // m
	Width  float64 // b (mm)
	Height float64 // h (mm)
	Cover  float64 // Nominal cover to the links (mm)

	Concrete ec2.ConcreteGrade
	Steel    ec2.SteelGrade

	// Characteristic uniform loads (kN/m)
	G float64
	Q float64
}

// NewBeam creates a beam with the default cover
func NewBeam(span, width, height, g, q float64, concrete ec2.ConcreteGrade, steel ec2.SteelGrade) *Beam {
	return &Beam{
		Span:     span,
		Width:    width,
		Height:   height,
		Cover:    DefaultCover,
		Concrete: concrete,
		Steel:    steel,
		G:        g,
		Q:        q,
	}
}

// DesignResult holds the results of beam design
type DesignResult struct {
	// EN 1990 expression 6.10
	QEd float64 // kN/m
	MEd float64 // Midspan, qEd·L²/8 (kNm)
	VEd float64 // Support, qEd·L/2 (kN)

	D  float64 // Effective depth (mm)
	D2 float64 // Depth of the compression steel (mm)

	Flexure       *FlexureResult
	Proposals     []BarProposal // Tension bars
	CompProposals []BarProposal // Compression bars, when required

	// Check of the recommended tension bars
	Capacity *AnalysisResult
	// MRd at N = 0 from the M-N envelope of the recommended bars (kNm)
	EnvelopeMRd float64

	Shear *ShearResult

	IsAdequate bool
	Message    string
}

// Design combines the loads, designs the midspan section for bending, picks
// the bars and checks the support section for shear
func (bm *Beam) Design() (*DesignResult, error) {
	if bm.Span <= 0 {
		return nil, fmt.Errorf("invalid span: L=%.2f m", bm.Span)
	}
	if bm.G < 0 || bm.Q < 0 {
		return nil, fmt.Errorf("loads must not be negative: g=%.2f, q=%.2f kN/m", bm.G, bm.Q)
	}
	if bm.Cover <= 0 {
		bm.Cover = DefaultCover
	}

	r := &DesignResult{}
	r.QEd = ec2.GammaG*bm.G + ec2.GammaQ*bm.Q
	r.MEd = r.QEd * bm.Span * bm.Span / 8
	r.VEd = r.QEd * bm.Span / 2

	offset := bm.Cover + LinkDiameter + AssumedMainBar/2
	r.D = bm.Height - offset
	r.D2 = offset
	if r.D <= r.D2 {
		return nil, fmt.Errorf("cover %.0f mm leaves no lever arm in a %.0f mm deep beam", bm.Cover, bm.Height)
	}

	sec := NewSection(bm.Width, bm.Height, r.D, bm.Concrete, bm.Steel)
	flex, err := sec.Design(r.MEd)
	if err != nil {
		return nil, err
	}
	r.Flexure = flex

	r.Proposals = ProposeBars(flex.AsRequired, bm.Width, bm.Cover)
	if flex.RequiresCompSteel {
		r.CompProposals = ProposeBars(flex.AsComp, bm.Width, bm.Cover)
	}

	switch {
	case flex.ExceedsAsMax:
		r.Message = fmt.Sprintf("Design inadequate - As=%.0f mm² exceeds As,max=%.0f mm²; increase the section", flex.AsRequired+flex.AsComp, flex.AsMax)
		return r, nil
	case len(r.Proposals) == 0:
		r.Message = "Design inadequate - the tension bars do not fit in one layer; increase the width"
		return r, nil
	case flex.RequiresCompSteel && len(r.CompProposals) == 0:
		r.Message = "Design inadequate - the compression bars do not fit in one layer"
		return r, nil
	}

	best := r.Proposals[0]
	if !flex.RequiresCompSteel {
		r.Capacity, err = sec.Analyze(best.Area)
		if err != nil {
			return nil, err
		}
	}

	asComp := 0.0
	if flex.RequiresCompSteel {
		asComp = r.CompProposals[0].Area
	}
	r.EnvelopeMRd = envelopeCapacity(bm, r.D2, best.Area, asComp)

	r.Shear, err = (&Shear{
		Width:          bm.Width,
		EffectiveDepth: r.D,
		AsL:            best.Area,
		Concrete:       bm.Concrete,
		Steel:          bm.Steel,
		VEd:            r.VEd,
	}).Design()
	if err != nil {
		return nil, err
	}

	r.IsAdequate = r.Shear.Safe && (r.Capacity == nil || r.Capacity.MRd >= r.MEd)
	switch {
	case !r.Shear.Safe:
		r.Message = "Design inadequate - " + r.Shear.Message
	case !r.IsAdequate:
		r.Message = "Design inadequate - MRd of the proposed bars is below MEd"
	case flex.RequiresCompSteel:
		r.Message = "Design OK - doubly reinforced (μ > μlim)"
	case flex.MinGoverns:
		r.Message = "Design OK - minimum reinforcement governs"
	default:
		r.Message = "Design OK - singly reinforced"
	}

	return r, nil
}

// envelopeCapacity reads MRd at N = 0 off the strain compatibility
// envelope of the bars actually chosen. The envelope uses αcc = 0.85.
func envelopeCapacity(bm *Beam, d2, asTension, asComp float64) float64 {
	sec := section.Section{
		B:     bm.Width,
		H:     bm.Height,
		As1:   asTension,
		As2:   asComp,
		Fck:   bm.Concrete.Fck,
		Fyk:   bm.Steel.Fyk,
		Cover: d2,
	}
	if err := sec.Validate(); err != nil {
		slog.Debug("beam envelope skipped", "error", err)
		return 0
	}
	mRd, _ := interaction.MomentCapacity(interaction.Generate(sec), 0)
	return mRd
}
