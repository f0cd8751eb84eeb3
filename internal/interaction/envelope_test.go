package interaction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcc/internal/ec2"
	"github.com/alexiusacademia/gorcc/internal/section"
)

// column400 mirrors a marker seen in practice: 400x400, 4ø20 per face
func column400() section.Section {
	return section.Section{B: 400, H: 400, As1: 1257, As2: 1257, Fck: 30, Fyk: 500, Cover: 45}
}

func squashLoad(s section.Section) float64 {
	_, eta := ec2.StressBlock(s.Fck)
	fcd := ec2.DesignConcreteStrength(s.Fck)
	fyd := ec2.DesignSteelStrength(s.Fyk)
	return eta*fcd*s.B*s.H/1000 + (s.As1+s.As2)*fyd/1000
}

func tensionCapacity(s section.Section) float64 {
	return -(s.As1 + s.As2) * ec2.DesignSteelStrength(s.Fyk) / 1000
}

func TestGeneratePointCount(t *testing.T) {
	env := Generate(column400())
	require.Len(t, env.Points, DefaultSteps+1)
	require.Len(t, env.Steps, DefaultSteps+1)

	env = GenerateSteps(column400(), 120)
	assert.Len(t, env.Points, 121)

	env = GenerateSteps(column400(), 10)
	assert.Len(t, env.Points, MinSteps+1)
}

func TestGenerateSweepRange(t *testing.T) {
	s := column400()
	env := Generate(s)
	assert.Equal(t, XMin, env.Steps[0].X)
	assert.InDelta(t, XMaxFactor*s.H, env.Steps[len(env.Steps)-1].X, 1e-9)
}

func TestGenerateWorkedExample(t *testing.T) {
	s := column400()
	env := Generate(s)

	assert.InDelta(t, 17.0, env.Fcd, 1e-12)
	assert.InDelta(t, 434.78, env.Fyd, 0.01)

	// 2720 kN of concrete plus both layers at yield
	assert.InDelta(t, 3813.04, env.PureCompression.N, 0.01)
	assert.InDelta(t, -1093.04, env.PureTension.N, 0.01)

	assert.Greater(t, env.Balanced.M, 250.0)
	assert.Less(t, env.Balanced.M, 350.0)
	assert.Greater(t, env.Balanced.N, 0.0)

	design := Point{N: 1500, M: 80}
	assert.True(t, IsInside(design, env), "1500 kN / 80 kNm should be safe")
}

func TestGenerateMonotonicAxialForce(t *testing.T) {
	sections := []section.Section{
		column400(),
		{B: 300, H: 600, As1: 1473, As2: 402, Fck: 25, Fyk: 500, Cover: 50},
		{B: 250, H: 250, As1: 0, As2: 0, Fck: 40, Fyk: 500, Cover: 40},
		{B: 500, H: 500, As1: 2454, As2: 2454, Fck: 70, Fyk: 500, Cover: 60},
	}

	for _, s := range sections {
		env := Generate(s)
		for i := 1; i < len(env.Points); i++ {
			assert.GreaterOrEqual(t, env.Points[i].N, env.Points[i-1].N-1e-9,
				"N decreased at step %d for %+v", i, s)
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	s := column400()
	env := Generate(s)

	assert.GreaterOrEqual(t, env.PureCompression.N, squashLoad(s)-1e-6)
	assert.LessOrEqual(t, env.PureTension.N, tensionCapacity(s)+1e-6)
}

func TestGenerateMomentsNonNegative(t *testing.T) {
	env := Generate(section.Section{B: 300, H: 600, As1: 1473, As2: 402, Fck: 25, Fyk: 500, Cover: 50})
	for i, p := range env.Points {
		assert.GreaterOrEqual(t, p.M, 0.0, "point %d", i)
		assert.False(t, math.IsNaN(p.N) || math.IsNaN(p.M), "point %d", i)
	}
}

func TestGenerateIdempotent(t *testing.T) {
	s := column400()
	assert.Equal(t, Generate(s), Generate(s))
}

func TestBalancedPeaksBetweenExtremes(t *testing.T) {
	env := Generate(column400())
	assert.Greater(t, env.Balanced.M, env.PureCompression.M)
	assert.Greater(t, env.Balanced.M, env.PureTension.M)
}

func TestPureBendingNearZeroAxial(t *testing.T) {
	env := Generate(column400())
	assert.Less(t, math.Abs(env.PureBending.N), 0.05*env.PureCompression.N)

	for _, p := range env.Points {
		assert.GreaterOrEqual(t, math.Abs(p.N), math.Abs(env.PureBending.N))
	}
}

func TestPureBendingSymmetricReinforcement(t *testing.T) {
	sym := Generate(column400()).PureBending

	// Same 2514 mm² shifted towards the compression face
	for _, as := range [][2]float64{{500, 2014}, {629, 1885}, {0, 2514}} {
		s := column400()
		s.As1, s.As2 = as[0], as[1]
		asym := Generate(s).PureBending
		assert.Less(t, math.Abs(sym.N), math.Abs(asym.N), "As1=%.0f As2=%.0f", as[0], as[1])
	}

	// Shifted towards the tension face a sample can land nearer N = 0
	s := column400()
	s.As1, s.As2 = 2014, 500
	assert.Less(t, math.Abs(Generate(s).PureBending.N), math.Abs(sym.N))
}

func TestKeyPointsFirstOccurrence(t *testing.T) {
	env := Generate(column400())
	// every x < 0 gives the same fully yielded tension state
	assert.Equal(t, env.Points[0], env.PureTension)
	assert.Equal(t, env.Steps[0].Point(), env.Points[0])
}

func TestHighStrengthConcreteStressBlock(t *testing.T) {
	s := column400()
	s.Fck = 70
	env := Generate(s)
	assert.InDelta(t, 0.75, env.Lambda, 1e-12)
	assert.InDelta(t, 0.9, env.Eta, 1e-12)
	assert.GreaterOrEqual(t, env.PureCompression.N, squashLoad(s)-1e-6)
}

func TestEvaluateStrainRegimes(t *testing.T) {
	s := column400()
	env := Generate(s)
	yieldStrain := env.Fyd / ec2.Es

	tension := env.evaluate(s, -10)
	assert.Equal(t, -yieldStrain, tension.Es1)
	assert.Equal(t, -yieldStrain, tension.Es2)
	assert.Zero(t, tension.Nc)

	boundary := env.evaluate(s, 0)
	assert.Equal(t, -ec2.EpsilonCU3, boundary.Es1)
	assert.Equal(t, -ec2.EpsilonCU3, boundary.Es2)
	assert.Equal(t, -env.Fyd, boundary.Sigma1)

	compression := env.evaluate(s, 200)
	assert.InDelta(t, 0.0035*155/200, compression.Es2, 1e-12)
	assert.InDelta(t, 0.0035*(200-355)/200.0, compression.Es1, 1e-12)
	assert.InDelta(t, 160.0, compression.Xeff, 1e-12)
	assert.InDelta(t, 17*400*160/1000.0, compression.Nc, 1e-9)

	full := env.evaluate(s, 1000)
	assert.Equal(t, s.H, full.Xeff)
	assert.Equal(t, env.Fyd, full.Sigma1)
	assert.Equal(t, env.Fyd, full.Sigma2)
}

func TestEvaluateMomentSign(t *testing.T) {
	s := column400()
	s.As1 = 0
	env := Generate(s)

	// only the compression face layer is present and yields in tension, so
	// the signed moment is negative while the envelope keeps its magnitude
	st := env.evaluate(s, -10)
	assert.Less(t, st.MSigned, 0.0)
	assert.InDelta(t, -st.MSigned, st.Point().M, 1e-12)
}
