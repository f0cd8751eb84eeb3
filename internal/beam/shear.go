package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/ec2"
)

// Shear design constants of EN 1992-1-1 6.2
const (
	DefaultTheta = 45.0 // Strut angle (degrees)
	MinCotTheta  = 1.0  // 6.7N
	MaxCotTheta  = 2.5

	MaxRhoL     = 0.02 // Cap on ρl in 6.2
	LinkLegs    = 2
	MinLinkStep = 50 // Smallest practical link spacing (mm)
)

// LinkDiameters tried for the shear links (mm)
var LinkDiameters = []int{8, 10, 12}

// Shear describes a beam section checked for a design shear force
type Shear struct {
	Width          float64 // b_w (mm)
	EffectiveDepth float64 // d (mm)
	AsL            float64 // Anchored tension steel (mm²)
	Theta          float64 // Strut angle (degrees), 0 for 45°

	Concrete ec2.ConcreteGrade
	Steel    ec2.SteelGrade

	VEd float64 // kN
}

// ShearResult holds the results of shear design
type ShearResult struct {
	Fcd  float64 // MPa
	Fywd float64 // MPa

	// Members without shear reinforcement (6.2.2)
	K       float64
	RhoL    float64
	VRdc    float64 // kN, not less than VRdcMin
	VRdcMin float64 // kN

	// Members with shear reinforcement (6.2.3)
	Theta      float64 // degrees
	Nu1        float64
	VRdMax     float64 // kN
	NeedsLinks bool    // VEd > VRd,c

	// Links
	AswS       float64 // Required Asw/s (mm²/mm), not less than the minimum
	AswSMin    float64 // 9.2.2(5)
	LinkDia    int     // mm
	Legs       int
	Spacing    int     // mm
	MaxSpacing float64 // 9.2.2(6), mm

	Safe    bool // VEd ≤ VRd,max and a link arrangement was found
	Message string
}

// Design checks the concrete capacity, the strut capacity and chooses the
// vertical links. Minimum links are always provided.
func (v *Shear) Design() (*ShearResult, error) {
	if v.Width <= 0 || v.EffectiveDepth <= 0 {
		return nil, fmt.Errorf("invalid shear section: b=%.0f mm, d=%.1f mm", v.Width, v.EffectiveDepth)
	}
	if v.Concrete.Fck <= 0 || v.Steel.Fyk <= 0 {
		return nil, fmt.Errorf("invalid material properties: fck=%.1f, fyk=%.1f", v.Concrete.Fck, v.Steel.Fyk)
	}
	if v.VEd < 0 || v.AsL < 0 {
		return nil, fmt.Errorf("shear force and steel area must not be negative: VEd=%.1f kN, Asl=%.0f mm²", v.VEd, v.AsL)
	}

	theta := v.Theta
	if theta == 0 {
		theta = DefaultTheta
	}
	cot := 1 / math.Tan(theta*math.Pi/180)
	// 21.8° is the rounded cot θ = 2.5 limit
	if cot < MinCotTheta-1e-3 || cot > MaxCotTheta+1e-3 {
		return nil, fmt.Errorf("strut angle %.1f° outside 1 ≤ cot θ ≤ 2.5", theta)
	}

	b, d := v.Width, v.EffectiveDepth
	fck := v.Concrete.Fck
	r := &ShearResult{
		Fcd:   fck / ec2.GammaC,
		Fywd:  ec2.DesignSteelStrength(v.Steel.Fyk),
		Theta: theta,
		Legs:  LinkLegs,
	}

	// 6.2.2(1), no axial force
	r.K = math.Min(1+math.Sqrt(200/d), 2.0)
	r.RhoL = math.Min(v.AsL/(b*d), MaxRhoL)
	cRdc := 0.18 / ec2.GammaC
	r.VRdc = cRdc * r.K * math.Cbrt(100*r.RhoL*fck) * b * d / 1000
	vMin := 0.035 * math.Pow(r.K, 1.5) * math.Sqrt(fck)
	r.VRdcMin = vMin * b * d / 1000
	r.VRdc = math.Max(r.VRdc, r.VRdcMin)
	r.NeedsLinks = v.VEd > r.VRdc

	// 6.2.3(3), αcw = 1, z = 0.9d
	z := 0.9 * d
	r.Nu1 = 0.6 * (1 - fck/250)
	r.VRdMax = b * z * r.Nu1 * r.Fcd * cot / (1 + cot*cot) / 1000

	if v.VEd > r.VRdMax {
		r.Message = fmt.Sprintf("Strut crushing - VEd=%.1f kN > VRd,max=%.1f kN; increase the section or the concrete class", v.VEd, r.VRdMax)
		return r, nil
	}

	// 9.2.2(5) and (6)
	r.AswSMin = 0.08 * math.Sqrt(fck) / v.Steel.Fyk * b
	r.MaxSpacing = math.Min(0.75*d, 600)

	r.AswS = r.AswSMin
	if r.NeedsLinks {
		r.AswS = math.Max(v.VEd*1000/(z*r.Fywd*cot), r.AswSMin)
	}

	for _, dia := range LinkDiameters {
		area := float64(r.Legs) * column.BarArea(dia)
		s := math.Min(area/r.AswS, r.MaxSpacing)
		s = math.Floor(s/10) * 10
		if s >= MinLinkStep {
			r.LinkDia, r.Spacing = dia, int(s)
			break
		}
	}
	if r.LinkDia == 0 {
		r.Message = fmt.Sprintf("No %d-leg link arrangement fits Asw/s=%.3f mm²/mm", r.Legs, r.AswS)
		return r, nil
	}

	r.Safe = true
	if r.NeedsLinks {
		r.Message = "Shear OK - design links required (VEd > VRd,c)"
	} else {
		r.Message = "Shear OK - minimum links (VEd ≤ VRd,c)"
	}
	return r, nil
}
