package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcc/internal/ec2"
)

func grades(t *testing.T) (ec2.ConcreteGrade, ec2.SteelGrade) {
	t.Helper()
	concrete, err := ec2.ParseConcreteGrade("C30/37")
	require.NoError(t, err)
	steel, err := ec2.ParseSteelGrade("B500SP")
	require.NoError(t, err)
	return concrete, steel
}

func TestDesignSlenderColumn(t *testing.T) {
	concrete, steel := grades(t)
	col := NewColumn(3.5, 400, 400, 1500, 80, concrete, steel)

	r, err := col.Design()
	require.NoError(t, err)

	assert.InDelta(t, 20.0, r.Fcd, 1e-9)
	assert.InDelta(t, 352.0, r.D, 1e-9)
	assert.InDelta(t, 48.0, r.D2, 1e-9)

	assert.InDelta(t, 3500.0, r.L0, 1e-9)
	assert.InDelta(t, 30.31, r.Lambda, 0.01)
	assert.InDelta(t, 0.46875, r.NRel, 1e-9)
	assert.InDelta(t, 15.74, r.LambdaLim, 0.01)
	assert.True(t, r.SecondOrderNeeded)

	assert.InDelta(t, 53.33, r.E1, 0.01)
	assert.InDelta(t, 8.75, r.Ei, 1e-9)
	assert.InDelta(t, 15.40, r.E2, 0.05)
	assert.InDelta(t, 77.48, r.ETot, 0.05)
	assert.InDelta(t, 116.2, r.MEdTotal, 0.1)

	assert.InDelta(t, 1758.6, r.AsRequired, 1.0)
	assert.InDelta(t, 345.0, r.AsMin, 0.1)
	assert.InDelta(t, 6400.0, r.AsMax, 1e-9)

	require.NotEmpty(t, r.Proposals)
	assert.Equal(t, 6, r.Proposals[0].Count)
	assert.Equal(t, 20, r.Proposals[0].Diameter)
	assert.LessOrEqual(t, len(r.Proposals), 4)

	assert.Equal(t, 8, r.StirrupDia)
	assert.Equal(t, 400, r.StirrupSpacing)

	require.NotNil(t, r.Envelope)
	assert.InDelta(t, r.Proposals[0].Area/2, r.Section.As1, 1e-9)
	assert.Equal(t, r.Section.As1, r.Section.As2)
	assert.True(t, r.IsAdequate)
	assert.Greater(t, r.Utilisation, 0.0)
	assert.Less(t, r.Utilisation, 1.0)
	assert.Contains(t, r.Message, "second order effects included")
}

func TestDesignStockyColumn(t *testing.T) {
	concrete, steel := grades(t)
	r, err := NewColumn(2.0, 400, 400, 500, 20, concrete, steel).Design()
	require.NoError(t, err)

	assert.False(t, r.SecondOrderNeeded)
	assert.Zero(t, r.E2)
	assert.InDelta(t, 45.0, r.ETot, 1e-9)
	assert.InDelta(t, 340.5, r.AsRequired, 0.5)
	assert.Equal(t, 16, r.Proposals[0].Diameter)
	assert.Equal(t, 4, r.Proposals[0].Count)
	assert.True(t, r.IsAdequate)
	assert.Contains(t, r.Message, "may be ignored")
}

func TestDesignRejectsInvalidInput(t *testing.T) {
	concrete, steel := grades(t)

	_, err := NewColumn(0, 400, 400, 1500, 80, concrete, steel).Design()
	assert.Error(t, err)

	_, err = NewColumn(3, 400, 400, -100, 80, concrete, steel).Design()
	assert.Error(t, err)

	col := NewColumn(3, 400, 400, 1500, 80, concrete, steel)
	col.Cover = 190
	_, err = col.Design()
	assert.Error(t, err)

	_, err = NewColumn(3, 400, 400, 1500, 80, ec2.ConcreteGrade{}, steel).Design()
	assert.Error(t, err)
}

func TestProposeBars(t *testing.T) {
	proposals := ProposeBars(5000, 6400, 250, 30)
	require.Len(t, proposals, 1)
	assert.Equal(t, 12, proposals[0].Count)
	assert.Equal(t, 25, proposals[0].Diameter)
	assert.InDelta(t, 29.8, proposals[0].Spacing, 1e-9)

	assert.Empty(t, ProposeBars(8000, 6400, 250, 30))

	proposals = ProposeBars(1758.6, 6400, 400, 30)
	require.Len(t, proposals, 4)
	for i := 1; i < len(proposals); i++ {
		assert.LessOrEqual(t, proposals[i-1].Ratio, proposals[i].Ratio)
	}
}

func TestStirrups(t *testing.T) {
	dia, spacing := Stirrups(32, 300, 600)
	assert.Equal(t, 8, dia)
	assert.Equal(t, 300, spacing)

	dia, spacing = Stirrups(16, 500, 500)
	assert.Equal(t, 8, dia)
	assert.Equal(t, 320, spacing)
}

func TestBarArea(t *testing.T) {
	assert.InDelta(t, 314.159, BarArea(20), 1e-3)
}
