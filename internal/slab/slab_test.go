package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcc/internal/ec2"
)

func newSlab(t *testing.T, lx, ly, h, g, q float64, support Support) *Slab {
	t.Helper()
	concrete, err := ec2.ParseConcreteGrade("C30/37")
	require.NoError(t, err)
	steel, err := ec2.ParseSteelGrade("B500SP")
	require.NoError(t, err)
	return &Slab{Lx: lx, Ly: ly, Thickness: h, Cover: DefaultCover, G: g, Q: q, Support: support, Concrete: concrete, Steel: steel}
}

func TestDesignTwoWaySimplySupported(t *testing.T) {
	s := newSlab(t, 5.0, 7.0, 200, 7.5, 3.0, SimplySupported)

	r, err := s.Design()
	require.NoError(t, err)

	assert.False(t, r.OneWay)
	assert.InDelta(t, 14.625, r.QEd, 1e-9)
	assert.InDelta(t, 1.4, r.Ratio, 1e-9)
	assert.InDelta(t, 170.0, r.Dx, 1e-9)
	assert.InDelta(t, 160.0, r.Dy, 1e-9)
	assert.InDelta(t, 0.0892, r.AlphaX, 1e-9)
	assert.InDelta(t, 0.0432, r.AlphaY, 1e-9)

	require.Len(t, r.Strips, 2)
	x, y := r.Strips[0], r.Strips[1]
	assert.Equal(t, "Span x", x.Name)
	assert.InDelta(t, 32.614, x.MEd, 1e-3)
	assert.InDelta(t, 454.4, x.AsRequired, 0.1)
	assert.False(t, x.Flexure.MinGoverns)

	// Span y is governed by the minimum steel at dy
	assert.InDelta(t, 15.795, y.MEd, 1e-3)
	assert.InDelta(t, 241.28, y.AsRequired, 0.01)
	assert.True(t, y.Flexure.MinGoverns)

	require.NotEmpty(t, x.Mesh)
	assert.Equal(t, 8, x.Mesh[0].Diameter)
	assert.Equal(t, 110, x.Mesh[0].Spacing)
	assert.InDelta(t, 456.96, x.Mesh[0].Area, 0.01)

	assert.InDelta(t, 40.0, r.LdLimit, 1e-9)
	assert.InDelta(t, 29.41, r.LdActual, 0.01)
	assert.True(t, r.DeflectionOK)
	assert.True(t, r.IsAdequate)
	assert.Equal(t, "Design OK - two-way slab", r.Message)
}

func TestDesignAllFixedAddsSupportStrips(t *testing.T) {
	s := newSlab(t, 5.0, 7.0, 200, 7.5, 3.0, AllFixed)

	r, err := s.Design()
	require.NoError(t, err)

	require.Len(t, r.Strips, 4)
	assert.InDelta(t, 0.0545, r.AlphaX, 1e-9)
	assert.Equal(t, "Support x", r.Strips[2].Name)
	assert.InDelta(t, SupportFactor*r.Strips[0].MEd, r.Strips[2].MEd, 1e-9)
	assert.InDelta(t, SupportFactor*r.Strips[1].MEd, r.Strips[3].MEd, 1e-9)
}

func TestDesignOneWay(t *testing.T) {
	s := newSlab(t, 3.0, 7.0, 150, 5.0, 2.0, SimplySupported)

	r, err := s.Design()
	require.NoError(t, err)

	assert.True(t, r.OneWay)
	require.Len(t, r.Strips, 2)

	span, dist := r.Strips[0], r.Strips[1]
	assert.InDelta(t, 10.96875, span.MEd, 1e-9)
	assert.InDelta(t, 214.4, span.AsRequired, 0.1)
	assert.Equal(t, 10, span.Mesh[0].Diameter)
	assert.Equal(t, 360, span.Mesh[0].Spacing)

	// Distribution steel falls back to As,min at dy
	assert.Equal(t, "Transverse", dist.Name)
	assert.Nil(t, dist.Flexure)
	assert.InDelta(t, 165.88, dist.AsRequired, 0.01)
	assert.Equal(t, 300, dist.Mesh[0].Spacing)
	assert.Equal(t, "Design OK - one-way slab", r.Message)
}

func TestDesignOneWayFixedEnds(t *testing.T) {
	s := newSlab(t, 3.0, 3.5, 150, 5.0, 2.0, TwoAdjacentFixed)

	r, err := s.Design()
	require.NoError(t, err)
	assert.False(t, r.OneWay)

	s.Ly = 7.0
	r, err = s.Design()
	require.NoError(t, err)
	require.True(t, r.OneWay)
	require.Len(t, r.Strips, 3)
	assert.InDelta(t, 9.75*9/16, r.Strips[0].MEd, 1e-9)
	assert.Equal(t, "Support x", r.Strips[1].Name)
	assert.InDelta(t, 9.75*9/12, r.Strips[1].MEd, 1e-9)
}

func TestDesignDeflectionFails(t *testing.T) {
	s := newSlab(t, 6.0, 6.0, 150, 5.0, 3.0, SimplySupported)

	r, err := s.Design()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, r.LdActual, 1e-9)
	assert.InDelta(t, 21.90, r.LdLimit, 0.01)
	assert.False(t, r.DeflectionOK)
	assert.False(t, r.IsAdequate)
	assert.Contains(t, r.Message, "Deflection check fails")
}

func TestDesignTooThin(t *testing.T) {
	s := newSlab(t, 4.0, 8.0, 100, 30, 20, SimplySupported)

	r, err := s.Design()
	require.NoError(t, err)
	assert.True(t, r.Strips[0].Flexure.RequiresCompSteel)
	assert.False(t, r.Strips[1].Flexure.RequiresCompSteel)
	assert.False(t, r.IsAdequate)
	assert.Contains(t, r.Message, "Span x needs compression steel")
}

func TestDesignRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Slab)
	}{
		{"lx longer than ly", func(s *Slab) { s.Lx = 8 }},
		{"zero thickness", func(s *Slab) { s.Thickness = 0 }},
		{"cover fills the slab", func(s *Slab) { s.Cover = 190 }},
		{"negative load", func(s *Slab) { s.Q = -1 }},
		{"unknown support", func(s *Slab) { s.Support = "pinned" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSlab(t, 5.0, 7.0, 200, 7.5, 3.0, SimplySupported)
			tt.modify(s)
			_, err := s.Design()
			assert.Error(t, err)
		})
	}
}

func TestParseSupport(t *testing.T) {
	s, err := ParseSupport(" All-Fixed ")
	require.NoError(t, err)
	assert.Equal(t, AllFixed, s)

	_, err = ParseSupport("pinned")
	assert.ErrorContains(t, err, "simply_supported")
}

func TestInterpolate(t *testing.T) {
	ax, ay := interpolate(simplySupportedCoefficients, 1.45)
	assert.InDelta(t, 0.0920, ax, 1e-9)
	assert.InDelta(t, 0.04125, ay, 1e-9)

	ax, _ = interpolate(simplySupportedCoefficients, 0.8)
	assert.InDelta(t, 0.0625, ax, 1e-12)

	ax, ay = interpolate(allFixedCoefficients, 2.0)
	assert.InDelta(t, 0.0718, ax, 1e-12)
	assert.InDelta(t, 0.0177, ay, 1e-12)
}

func TestSelectMesh(t *testing.T) {
	assert.Nil(t, SelectMesh(0, 200, true))

	mesh := SelectMesh(230.67, 200, true)
	require.Len(t, mesh, MaxMeshOptions)
	for i, m := range mesh {
		assert.GreaterOrEqual(t, m.Area, 230.67)
		assert.LessOrEqual(t, m.Spacing, 400)
		if i > 0 {
			assert.GreaterOrEqual(t, m.Ratio, mesh[i-1].Ratio)
		}
	}

	// Distribution steel may be spaced wider than main steel
	dist := SelectMesh(100, 200, false)
	require.NotEmpty(t, dist)
	assert.Equal(t, 450, dist[len(dist)-1].Spacing)
}

func TestSpanDepthLimit(t *testing.T) {
	assert.InDelta(t, 40.0, SpanDepthLimit(0.002, 30, 1), 1e-9)
	assert.InDelta(t, 15.5, SpanDepthLimit(0.01, 30, 1), 1e-9)
	assert.InDelta(t, 52.0, SpanDepthLimit(0, 30, 1.3), 1e-9)
}
