package ec2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombine(t *testing.T) {
	actions := Actions{
		Permanent: Action{N: 1000, M: 40},
		Imposed:   Action{N: 400, M: 20},
	}

	effect := LoadCombinations[0].Combine(actions)
	assert.InDelta(t, 1.35*1000+1.5*400, effect.NEd, 1e-9)
	assert.InDelta(t, 1.35*40+1.5*20, effect.MEd, 1e-9)
}

func TestCombineReportsMomentMagnitude(t *testing.T) {
	actions := Actions{Permanent: Action{N: 100, M: -10}}
	effect := LoadCombinations[0].Combine(actions)
	assert.InDelta(t, 13.5, effect.MEd, 1e-9)
}

func TestGoverningEffect(t *testing.T) {
	actions := Actions{
		Permanent: Action{N: 800, M: 10},
		Imposed:   Action{N: 200, M: 5},
		Wind:      Action{N: 0, M: 60},
	}

	effects := CombineAll(actions, LoadCombinations)
	require.Len(t, effects, len(LoadCombinations))

	gov, ok := GoverningEffect(effects)
	require.True(t, ok)
	// wind-leading combination gives the largest moment
	assert.Equal(t, "3", gov.Combination.ID)

	_, ok = GoverningEffect(nil)
	assert.False(t, ok)
}

func TestActionsIsZero(t *testing.T) {
	assert.True(t, Actions{}.IsZero())
	assert.False(t, Actions{Snow: Action{M: 1}}.IsZero())
}
