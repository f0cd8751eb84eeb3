package beam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShearNoLinksRequired(t *testing.T) {
	concrete, steel := grades(t)
	v := &Shear{Width: 300, EffectiveDepth: 547, AsL: 804.25, VEd: 60, Concrete: concrete, Steel: steel}

	r, err := v.Design()
	require.NoError(t, err)

	assert.Equal(t, DefaultTheta, r.Theta)
	assert.InDelta(t, 77.4, r.VRdc, 0.1)
	assert.InDelta(t, 63.9, r.VRdcMin, 0.1)
	assert.False(t, r.NeedsLinks)
	assert.InDelta(t, r.AswSMin, r.AswS, 1e-12)
	assert.InDelta(t, 410.25, r.MaxSpacing, 1e-9)
	assert.Equal(t, 8, r.LinkDia)
	assert.Equal(t, 380, r.Spacing)
	assert.True(t, r.Safe)
}

func TestShearMinimumConcreteCapacity(t *testing.T) {
	concrete, steel := grades(t)
	v := &Shear{Width: 300, EffectiveDepth: 547, VEd: 10, Concrete: concrete, Steel: steel}

	r, err := v.Design()
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.RhoL)
	assert.Equal(t, r.VRdcMin, r.VRdc)
}

func TestShearFlatterStrut(t *testing.T) {
	concrete, steel := grades(t)
	steep := &Shear{Width: 300, EffectiveDepth: 547, AsL: 942, VEd: 300, Concrete: concrete, Steel: steel}
	flat := *steep
	flat.Theta = 21.8

	rs, err := steep.Design()
	require.NoError(t, err)
	rf, err := flat.Design()
	require.NoError(t, err)

	// cot θ = 2.5 needs less link steel and gives a lower strut capacity
	assert.Less(t, rf.AswS, rs.AswS)
	assert.Less(t, rf.VRdMax, rs.VRdMax)
	assert.True(t, rf.Safe)
}

func TestShearStrutCrushing(t *testing.T) {
	concrete, steel := grades(t)
	v := &Shear{Width: 200, EffectiveDepth: 300, AsL: 600, VEd: 500, Concrete: concrete, Steel: steel}

	r, err := v.Design()
	require.NoError(t, err)
	assert.False(t, r.Safe)
	assert.Zero(t, r.LinkDia)
	assert.Contains(t, r.Message, "VRd,max")
}

func TestShearRejectsInvalidInput(t *testing.T) {
	concrete, steel := grades(t)

	tests := []struct {
		name string
		v    Shear
	}{
		{"zero width", Shear{EffectiveDepth: 547, VEd: 100}},
		{"negative shear", Shear{Width: 300, EffectiveDepth: 547, VEd: -1}},
		{"steep strut", Shear{Width: 300, EffectiveDepth: 547, VEd: 100, Theta: 60}},
		{"flat strut", Shear{Width: 300, EffectiveDepth: 547, VEd: 100, Theta: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.v.Concrete, tt.v.Steel = concrete, steel
			_, err := tt.v.Design()
			assert.Error(t, err)
		})
	}
}
