package interaction

import (
	"log/slog"
	"math"

	"github.com/alexiusacademia/gorcc/internal/ec2"
	"github.com/alexiusacademia/gorcc/internal/section"
)

const (
	// DefaultSteps is the number of intervals of the neutral axis sweep
	DefaultSteps = 80

	// MinSteps keeps the envelope smooth enough for the polygon test
	MinSteps = 50

	// XMin places the neutral axis outside the section on the tension side (mm)
	XMin = -50.0

	// XMaxFactor times h places it far outside on the compression side
	XMaxFactor = 2.5

	// Neutral axis depths within ±axisTolerance of the tension face use the
	// boundary strain convention instead of similar triangles
	axisTolerance = 0.001
)

// Generate builds the M-N envelope of the section with DefaultSteps.
// The section is expected to be validated by the caller.
func Generate(s section.Section) *Envelope {
	return GenerateSteps(s, DefaultSteps)
}

// GenerateSteps builds the envelope with a custom number of sweep intervals.
// Values below MinSteps are raised to MinSteps.
//
// The neutral axis depth x is swept linearly from XMin to XMaxFactor·h and,
// for each x, the concrete stress block and both reinforcement layers are
// evaluated by strain compatibility (EN 1992-1-1 3.1.7, 6.1).
func GenerateSteps(s section.Section, steps int) *Envelope {
	if steps < MinSteps {
		steps = MinSteps
	}

	lambda, eta := ec2.StressBlock(s.Fck)
	env := &Envelope{
		Fcd:    ec2.DesignConcreteStrength(s.Fck),
		Fyd:    ec2.DesignSteelStrength(s.Fyk),
		Lambda: lambda,
		Eta:    eta,
		Points: make([]Point, 0, steps+1),
		Steps:  make([]Step, 0, steps+1),
	}

	xMax := XMaxFactor * s.H
	for i := 0; i <= steps; i++ {
		x := XMin + (xMax-XMin)*float64(i)/float64(steps)
		step := env.evaluate(s, x)
		env.Steps = append(env.Steps, step)
		env.Points = append(env.Points, step.Point())
	}

	env.selectKeyPoints()

	slog.Debug("interaction envelope generated",
		"points", len(env.Points),
		"n_max", env.PureCompression.N,
		"n_min", env.PureTension.N,
		"m_max", env.Balanced.M)

	return env
}

// evaluate computes the internal forces for one neutral axis depth
func (e *Envelope) evaluate(s section.Section, x float64) Step {
	d := s.EffectiveDepth()
	d2 := s.CompressionDepth()
	half := s.H / 2

	step := Step{X: x}

	// Concrete stress block
	if x > 0 {
		step.Xeff = math.Min(e.Lambda*x, s.H)
		step.Nc = e.Eta * e.Fcd * s.B * step.Xeff / 1000
	}

	// Strains, compression positive
	switch {
	case x > axisTolerance:
		step.Es2 = ec2.EpsilonCU3 * (x - d2) / x
		step.Es1 = ec2.EpsilonCU3 * (x - d) / x
	case x < -axisTolerance:
		step.Es2 = -e.Fyd / ec2.Es
		step.Es1 = -e.Fyd / ec2.Es
	default:
		step.Es2 = -ec2.EpsilonCU3
		step.Es1 = -ec2.EpsilonCU3
	}

	step.Sigma2 = steelStress(step.Es2, e.Fyd)
	step.Sigma1 = steelStress(step.Es1, e.Fyd)

	step.Ns2 = s.As2 * step.Sigma2 / 1000
	step.Ns1 = s.As1 * step.Sigma1 / 1000

	mc := step.Nc * (half - step.Xeff/2) / 1000
	ms2 := step.Ns2 * (half - d2) / 1000
	ms1 := step.Ns1 * (half - d) / 1000
	step.MSigned = mc + ms2 + ms1

	return step
}

// steelStress applies the elastic-perfectly-plastic steel law
func steelStress(strain, fyd float64) float64 {
	stress := strain * ec2.Es
	return math.Max(-fyd, math.Min(stress, fyd))
}

// selectKeyPoints picks the reference points by linear scan.
// Ties keep the first occurrence in sweep order.
func (e *Envelope) selectKeyPoints() {
	if len(e.Points) == 0 {
		return
	}

	first := e.Points[0]
	e.PureCompression, e.PureTension, e.PureBending, e.Balanced = first, first, first, first

	for _, p := range e.Points[1:] {
		if p.N > e.PureCompression.N {
			e.PureCompression = p
		}
		if p.N < e.PureTension.N {
			e.PureTension = p
		}
		if math.Abs(p.N) < math.Abs(e.PureBending.N) {
			e.PureBending = p
		}
		if p.M > e.Balanced.M {
			e.Balanced = p
		}
	}
}
