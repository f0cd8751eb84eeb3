package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcc/internal/ec2"
)

// Section represents a rectangular beam section in bending. Depths are
// measured from the compression face.
type Section struct {
	// Geometry (mm)
	Width          float64 // b
	Height         float64 // h
	EffectiveDepth float64 // d - to the centroid of the tension steel
	CompDepth      float64 // d2 - to the centroid of the compression steel

	// Materials
	Concrete ec2.ConcreteGrade
	Steel    ec2.SteelGrade
}

// NewSection creates a section with the compression steel placed as far
// from the top face as the tension steel is from the bottom face
func NewSection(width, height, d float64, concrete ec2.ConcreteGrade, steel ec2.SteelGrade) *Section {
	return &Section{
		Width:          width,
		Height:         height,
		EffectiveDepth: d,
		CompDepth:      height - d,
		Concrete:       concrete,
		Steel:          steel,
	}
}

// Fcd returns fck/γc. Beams and slabs take αcc = 1.
func (s *Section) Fcd() float64 {
	return s.Concrete.Fck / ec2.GammaC
}

// Fyd returns fyk/γs
func (s *Section) Fyd() float64 {
	return ec2.DesignSteelStrength(s.Steel.Fyk)
}

// XiLimit returns the relative depth of the compression zone at which the
// tension steel just yields, and the matching μlim = ξlim(1 − ξlim/2)
func (s *Section) XiLimit() (xiLim, muLim float64) {
	epsYd := s.Fyd() / s.Steel.Es
	xiLim = ec2.EpsilonCU3 / (ec2.EpsilonCU3 + epsYd)
	return xiLim, xiLim * (1 - 0.5*xiLim)
}

// MinTensionSteel returns As,min of EN 1992-1-1 9.2.1.1(1) (mm²)
func (s *Section) MinTensionSteel() float64 {
	bd := s.Width * s.EffectiveDepth
	return math.Max(0.26*s.Concrete.Fctm/s.Steel.Fyk*bd, 0.0013*bd)
}

// MaxSteel returns As,max = 0.04·Ac of EN 1992-1-1 9.2.1.1(3) (mm²)
func (s *Section) MaxSteel() float64 {
	return 0.04 * s.Width * s.Height
}

func (s *Section) validate() error {
	if s.Width <= 0 || s.Height <= 0 || s.EffectiveDepth <= 0 || s.EffectiveDepth > s.Height {
		return fmt.Errorf("invalid beam dimensions: b=%.0f mm, h=%.0f mm, d=%.1f mm", s.Width, s.Height, s.EffectiveDepth)
	}
	if s.Concrete.Fck <= 0 || s.Steel.Fyk <= 0 || s.Steel.Es <= 0 {
		return fmt.Errorf("invalid material properties: fck=%.1f, fyk=%.1f", s.Concrete.Fck, s.Steel.Fyk)
	}
	return nil
}

// FlexureResult holds the results of bending design
type FlexureResult struct {
	// Design strengths (MPa)
	Fcd float64
	Fyd float64

	// Relative moment and compression zone
	Mu    float64 // μ = MEd/(b·d²·fcd)
	MuLim float64
	Xi    float64 // ξ = 1 − √(1 − 2μ), capped at ξlim
	XiLim float64

	// Tension reinforcement (mm²)
	AsCalc       float64 // From the moment alone
	AsMin        float64
	AsMax        float64
	AsRequired   float64 // max(AsCalc, AsMin)
	MinGoverns   bool
	ExceedsAsMax bool

	// Compression reinforcement, when μ > μlim
	RequiresCompSteel bool
	M1                float64 // Moment taken with the concrete at ξlim (kNm)
	M2                float64 // Moment taken by the steel couple (kNm)
	AsComp            float64 // mm²
	FscStress         float64 // Stress in the compression steel (MPa)
	CompYielded       bool
}

// Design calculates the reinforcement for the design moment mEd (kNm).
// Above μlim the excess moment is carried by a compression steel couple.
func (s *Section) Design(mEd float64) (*FlexureResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if mEd < 0 {
		return nil, fmt.Errorf("design moment must not be negative: MEd=%.2f kNm", mEd)
	}

	b, d := s.Width, s.EffectiveDepth
	r := &FlexureResult{
		Fcd:   s.Fcd(),
		Fyd:   s.Fyd(),
		AsMin: s.MinTensionSteel(),
		AsMax: s.MaxSteel(),
	}
	r.XiLim, r.MuLim = s.XiLimit()

	mEdNmm := mEd * 1e6
	r.Mu = mEdNmm / (b * d * d * r.Fcd)

	if r.Mu <= r.MuLim {
		r.Xi = 1 - math.Sqrt(1-2*r.Mu)
		r.AsCalc = r.Xi * b * d * r.Fcd / r.Fyd
		r.M1 = mEd
	} else {
		if s.CompDepth <= 0 || s.CompDepth >= d {
			return nil, fmt.Errorf("invalid compression steel depth: d2=%.1f mm", s.CompDepth)
		}
		r.RequiresCompSteel = true
		r.Xi = r.XiLim
		r.M1 = r.MuLim * b * d * d * r.Fcd / 1e6
		r.M2 = mEd - r.M1

		// Strain of the compression layer with the neutral axis at ξlim·d
		x := r.XiLim * d
		epsSc := ec2.EpsilonCU3 * (x - s.CompDepth) / x
		r.FscStress = math.Min(epsSc*s.Steel.Es, r.Fyd)
		r.CompYielded = r.FscStress >= r.Fyd
		if r.FscStress <= 0 {
			return nil, fmt.Errorf("compression steel at d2=%.1f mm lies in the tension zone", s.CompDepth)
		}

		r.AsComp = r.M2 * 1e6 / (r.FscStress * (d - s.CompDepth))
		r.AsCalc = r.XiLim*b*d*r.Fcd/r.Fyd + r.AsComp*r.FscStress/r.Fyd
	}

	r.AsRequired = math.Max(r.AsCalc, r.AsMin)
	r.MinGoverns = r.AsCalc < r.AsMin
	r.ExceedsAsMax = r.AsRequired+r.AsComp > r.AsMax

	return r, nil
}

// AnalysisResult holds the moment resistance of a given reinforcement
type AnalysisResult struct {
	As    float64 // mm²
	Rho   float64 // As/(b·d)
	Xi    float64 // As·fyd/(b·d·fcd)
	XiLim float64

	MRd float64 // kNm

	IsDuctile     bool // ξ ≤ ξlim, the tension steel yields
	MeetsMinReinf bool
	MeetsMaxReinf bool
	Message       string
}

// Analyze calculates the moment resistance for the tension steel area as
// (mm²) without compression steel
func (s *Section) Analyze(as float64) (*AnalysisResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if as <= 0 {
		return nil, fmt.Errorf("invalid reinforcement area: As=%.2f", as)
	}

	b, d := s.Width, s.EffectiveDepth
	fcd, fyd := s.Fcd(), s.Fyd()

	r := &AnalysisResult{As: as, Rho: as / (b * d)}
	r.XiLim, _ = s.XiLimit()
	r.Xi = as * fyd / (b * d * fcd)
	r.IsDuctile = r.Xi <= r.XiLim

	// An over-reinforced section is limited to the balanced compression zone
	xi := math.Min(r.Xi, r.XiLim)
	r.MRd = xi * (1 - xi/2) * b * d * d * fcd / 1e6

	r.MeetsMinReinf = as >= s.MinTensionSteel()
	r.MeetsMaxReinf = as <= s.MaxSteel()

	if r.IsDuctile {
		r.Message = "Tension steel yields (ξ ≤ ξlim)"
	} else {
		r.Message = "Over-reinforced (ξ > ξlim), MRd limited to the balanced section"
	}
	if !r.MeetsMinReinf {
		r.Message += " | WARNING: Below minimum reinforcement"
	}
	if !r.MeetsMaxReinf {
		r.Message += " | WARNING: Exceeds maximum reinforcement"
	}

	return r, nil
}
