package interaction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointInPolygonSquare(t *testing.T) {
	square := []Point{{N: 0, M: 0}, {N: 0, M: 10}, {N: 10, M: 10}, {N: 10, M: 0}}

	assert.True(t, pointInPolygon(Point{N: 5, M: 5}, square))
	assert.False(t, pointInPolygon(Point{N: 5, M: 15}, square))
	assert.False(t, pointInPolygon(Point{N: -1, M: 5}, square))
	assert.False(t, pointInPolygon(Point{N: 5, M: 5}, square[:2]))
}

func TestIsInsideWorkedExample(t *testing.T) {
	env := Generate(column400())

	tests := []struct {
		name   string
		point  Point
		inside bool
	}{
		{"moderate load", Point{N: 1500, M: 80}, true},
		{"near pure bending", Point{N: 0, M: 150}, true},
		{"small tension", Point{N: -300, M: 50}, true},
		{"moment too large", Point{N: 1500, M: 500}, false},
		{"above squash load", Point{N: 5000, M: 0}, false},
		{"beyond tension capacity", Point{N: -1500, M: 10}, false},
		{"large moment no axial", Point{N: 0, M: 400}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, IsInside(tt.point, env))
		})
	}
}

func TestIsInsideKeyPointsDoNotPanic(t *testing.T) {
	env := Generate(column400())
	for _, kp := range env.KeyPoints() {
		assert.NotPanics(t, func() { _ = IsInside(kp.Point, env) }, kp.Name)
	}
	assert.False(t, IsInside(Point{}, nil))
}

func TestArea(t *testing.T) {
	square := &Envelope{Points: []Point{{N: 0, M: 0}, {N: 0, M: 10}, {N: 10, M: 10}, {N: 10, M: 0}}}
	assert.InDelta(t, 100.0, Area(square), 1e-12)

	env := Generate(column400())
	area := Area(env)
	assert.Greater(t, area, 0.0)
	// bounded by the rectangle spanned by the extremes
	assert.Less(t, area, (env.PureCompression.N-env.PureTension.N)*env.Balanced.M)
}

func TestMomentCapacity(t *testing.T) {
	env := Generate(column400())

	mRd, ok := MomentCapacity(env, env.Balanced.N)
	require.True(t, ok)
	assert.InDelta(t, env.Balanced.M, mRd, 1e-9)

	mRd, ok = MomentCapacity(env, 1500)
	require.True(t, ok)
	assert.Greater(t, mRd, 80.0)
	assert.Less(t, mRd, env.Balanced.M)

	_, ok = MomentCapacity(env, env.PureCompression.N+1)
	assert.False(t, ok)

	_, ok = MomentCapacity(env, env.PureTension.N-1)
	assert.False(t, ok)

	_, ok = MomentCapacity(env, env.PureCompression.N)
	assert.True(t, ok)
}

func TestUtilisationAgreesWithClassifier(t *testing.T) {
	env := Generate(column400())

	for _, p := range []Point{{N: 1500, M: 80}, {N: 1500, M: 500}, {N: 200, M: 100}, {N: 3000, M: 150}} {
		u, ok := Utilisation(env, p)
		require.True(t, ok)
		assert.Equal(t, u < 1, IsInside(p, env), "point %+v utilisation %.3f", p, u)
	}

	u, ok := Utilisation(env, Point{N: 9000, M: 10})
	assert.False(t, ok)
	assert.True(t, math.IsInf(u, 1))
}

func TestResample(t *testing.T) {
	env := Generate(column400())
	ns, ms := Resample(env, 60)
	require.Len(t, ns, 60)
	require.Len(t, ms, 60)
	assert.Equal(t, env.PureTension.N, ns[0])
	assert.InDelta(t, env.PureCompression.N, ns[59], 1e-9)
	for _, m := range ms {
		assert.GreaterOrEqual(t, m, 0.0)
		assert.LessOrEqual(t, m, env.Balanced.M+1e-9)
	}

	ns, ms = Resample(env, 1)
	assert.Nil(t, ns)
	assert.Nil(t, ms)
}
