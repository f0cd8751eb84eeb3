package column

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcc/internal/ec2"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/section"
)

// Detailing assumptions used to locate the bar centroids
const (
	AssumedStirrup = 8.0  // mm
	AssumedMainBar = 20.0 // mm

	// Simplified coefficients of EN 1992-1-1 5.8.3.1 when φef, ω and rm are unknown
	CoeffA = 0.7
	CoeffB = 1.1
	CoeffC = 0.7

	// c in e2 = (1/r)·l0²/c, π² rounded (5.8.8.2)
	CurvatureFactor = 10.0

	// Relative axial force at maximum moment resistance (5.8.8.3)
	NBalanced = 0.4
)

// Column describes a braced rectangular column to design
type Column struct {
	Length         float64 // Clear height L (m)
	Width          float64 // b (mm)
	Depth          float64 // h, in the plane of bending (mm)
	Cover          float64 // Nominal cover to the stirrups (mm)
	EffLengthRatio float64 // l0/L

	Concrete ec2.ConcreteGrade
	Steel    ec2.SteelGrade

	NEd float64 // kN, compression positive
	MEd float64 // First order moment (kNm)
}

// NewColumn creates a column with the usual defaults for the optional fields
func NewColumn(length, width, depth, nEd, mEd float64, concrete ec2.ConcreteGrade, steel ec2.SteelGrade) *Column {
	return &Column{
		Length:         length,
		Width:          width,
		Depth:          depth,
		Cover:          30,
		EffLengthRatio: 1.0,
		Concrete:       concrete,
		Steel:          steel,
		NEd:            nEd,
		MEd:            mEd,
	}
}

// DesignResult holds the results of column design
type DesignResult struct {
	// Design strengths (MPa)
	Fcd float64
	Fyd float64

	// Geometry (mm)
	D  float64 // Effective depth to the tension bars
	D2 float64 // Depth of the compression bars
	Ac float64 // mm²
	L0 float64 // Effective length
	I  float64 // Radius of gyration

	// Slenderness
	Lambda            float64
	LambdaLim         float64
	NRel              float64 // n = NEd/(Ac·fcd)
	SecondOrderNeeded bool

	// Eccentricities (mm)
	E1   float64
	EMin float64
	Ei   float64
	E2   float64
	ETot float64

	MEdTotal float64 // kNm

	// Reinforcement (mm²)
	AsRequired float64
	AsMin      float64
	AsMax      float64
	Proposals  []BarProposal

	// Links
	StirrupDia     int // mm
	StirrupSpacing int // mm

	// Check of the recommended bars against the M-N envelope
	Section     section.Section
	Envelope    *interaction.Envelope
	DesignPoint interaction.Point
	IsAdequate  bool
	Utilisation float64
	Message     string
}

// Design runs the slenderness check, the second order moment by nominal
// curvature and the longitudinal reinforcement sizing of EN 1992-1-1 5.8
func (c *Column) Design() (*DesignResult, error) {
	if c.Length <= 0 || c.Width <= 0 || c.Depth <= 0 {
		return nil, fmt.Errorf("invalid column dimensions: L=%.2f m, b=%.0f mm, h=%.0f mm", c.Length, c.Width, c.Depth)
	}
	if c.NEd <= 0 {
		return nil, fmt.Errorf("axial force must be compressive and positive: NEd=%.1f kN", c.NEd)
	}
	if c.Concrete.Fck <= 0 || c.Steel.Fyk <= 0 {
		return nil, fmt.Errorf("invalid material properties: fck=%.1f, fyk=%.1f", c.Concrete.Fck, c.Steel.Fyk)
	}
	if c.EffLengthRatio <= 0 {
		c.EffLengthRatio = 1.0
	}

	r := &DesignResult{}
	r.Fcd = c.Concrete.Fck / ec2.GammaC
	r.Fyd = ec2.DesignSteelStrength(c.Steel.Fyk)

	b, h := c.Width, c.Depth
	r.Ac = b * h
	r.D = h - c.Cover - AssumedStirrup - AssumedMainBar/2
	r.D2 = c.Cover + AssumedStirrup + AssumedMainBar/2
	if r.D <= r.D2 {
		return nil, fmt.Errorf("cover %.0f mm leaves no lever arm in a %.0f mm deep section", c.Cover, h)
	}

	// 1. Slenderness
	r.L0 = c.EffLengthRatio * c.Length * 1000
	r.I = h / math.Sqrt(12)
	r.Lambda = r.L0 / r.I

	r.NRel = c.NEd * 1000 / (r.Ac * r.Fcd)
	r.LambdaLim = 20 * CoeffA * CoeffB * CoeffC / math.Sqrt(r.NRel)
	r.SecondOrderNeeded = r.Lambda > r.LambdaLim

	// 2. Eccentricities
	r.EMin = math.Max(h/30, 20)
	r.E1 = math.Max(c.MEd*1e6/(c.NEd*1000), r.EMin)
	r.Ei = r.L0 / 400

	if r.SecondOrderNeeded {
		// nu with an initial ω = 0.01
		nU := 1 + (r.Fyd*0.01*r.Ac)/(r.Fcd*r.Ac)
		kR := 1.0
		if nU > NBalanced {
			kR = math.Min((nU-r.NRel)/(nU-NBalanced), 1.0)
		}
		kR = math.Max(kR, 0)

		kPhi := 1.0 // creep not considered
		epsYd := r.Fyd / c.Steel.Es
		curvature := kR * kPhi * epsYd / (0.45 * r.D)
		r.E2 = curvature * r.L0 * r.L0 / CurvatureFactor
	}

	r.ETot = r.E1 + r.Ei + r.E2
	r.MEdTotal = c.NEd * r.ETot / 1000

	// 3. Longitudinal reinforcement
	zs := r.D - r.D2
	asFromMoment := 2 * r.MEdTotal * 1e6 / (r.Fyd * zs)

	if r.ETot/h < 0.1 {
		// nearly axial compression
		asFromN := math.Max((c.NEd*1000-0.85*r.Ac*r.Fcd)/r.Fyd, 0)
		r.AsRequired = math.Max(asFromN, asFromMoment)
	} else {
		r.AsRequired = asFromMoment
	}

	r.AsMin = math.Max(0.10*c.NEd*1000/r.Fyd, 0.002*r.Ac)
	r.AsMax = 0.04 * r.Ac
	r.AsRequired = math.Min(math.Max(r.AsRequired, r.AsMin), r.AsMax)

	r.Proposals = ProposeBars(r.AsRequired, r.AsMax, b, c.Cover)

	// 4. Links
	mainDia := int(AssumedMainBar)
	if len(r.Proposals) > 0 {
		mainDia = r.Proposals[0].Diameter
	}
	r.StirrupDia, r.StirrupSpacing = Stirrups(mainDia, b, h)

	// 5. Check the recommended bars with the interaction diagram
	r.DesignPoint = interaction.Point{N: c.NEd, M: r.MEdTotal}
	if len(r.Proposals) == 0 {
		r.Message = "Design inadequate - no symmetric bar arrangement fits the section"
		return r, nil
	}

	best := r.Proposals[0]
	r.Section = section.Section{
		B:     b,
		H:     h,
		As1:   best.Area / 2,
		As2:   best.Area / 2,
		Fck:   c.Concrete.Fck,
		Fyk:   c.Steel.Fyk,
		Cover: r.D2,
	}
	if err := r.Section.Validate(); err != nil {
		return nil, fmt.Errorf("designed section: %w", err)
	}

	r.Envelope = interaction.Generate(r.Section)
	r.IsAdequate = interaction.IsInside(r.DesignPoint, r.Envelope)
	if u, ok := interaction.Utilisation(r.Envelope, r.DesignPoint); ok && !math.IsInf(u, 0) {
		r.Utilisation = u
	}

	switch {
	case r.IsAdequate && r.SecondOrderNeeded:
		r.Message = "Design OK - second order effects included"
	case r.IsAdequate:
		r.Message = "Design OK - second order effects may be ignored"
	default:
		r.Message = "Design inadequate - design point lies outside the M-N envelope; increase the section"
	}

	return r, nil
}
