package marker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcc/internal/section"
)

const response = `Dla słupa 40x40 cm z 4ø20 przy każdej krawędzi wykres interakcji:

[MN_DIAGRAM b=400 h=400 As1=1257 As2=1257 fck=30 fyk=500 cover=45 NEd=1500 MEd=80]

Punkt obliczeniowy leży wewnątrz obwiedni.`

func TestParse(t *testing.T) {
	m, err := Parse(response)
	require.NoError(t, err)

	assert.Equal(t, section.Section{B: 400, H: 400, As1: 1257, As2: 1257, Fck: 30, Fyk: 500, Cover: 45}, m.Section)
	require.NotNil(t, m.Design)
	assert.Equal(t, 1500.0, m.Design.N)
	assert.Equal(t, 80.0, m.Design.M)
	assert.Equal(t, "[MN_DIAGRAM b=400 h=400 As1=1257 As2=1257 fck=30 fyk=500 cover=45 NEd=1500 MEd=80]", m.Raw)
	assert.Equal(t, response[m.Offset:m.Offset+len(m.Raw)], m.Raw)
}

func TestParseDefaults(t *testing.T) {
	tests := []struct {
		name string
		text string
		as1  float64
		as2  float64
	}{
		{"single As sets both layers", "[MN_DIAGRAM b=300 h=500 As=942 fck=25 fyk=500]", 942, 942},
		{"As2 follows As1", "[MN_DIAGRAM b=300, h=500, As1=804, fck=25, fyk=500]", 804, 804},
		{"asymmetric", "[MN_DIAGRAM: b=300 h=500 As1=1473 As2=402 fck=25 fyk=500]", 1473, 402},
		{"plain concrete", "[MN_DIAGRAM b=300 h=500 fck=25 fyk=500]", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.as1, m.Section.As1)
			assert.Equal(t, tt.as2, m.Section.As2)
			assert.Equal(t, section.DefaultCover, m.Section.Cover)
			assert.Nil(t, m.Design)
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"no marker", "plain answer without a chart", ErrNoMarker},
		{"missing fyk", "[MN_DIAGRAM b=400 h=400 fck=30]", ErrMissingKey},
		{"unknown key", "[MN_DIAGRAM b=400 h=400 fck=30 fyk=500 d=355]", ErrUnknownKey},
		{"duplicate key", "[MN_DIAGRAM b=400 b=450 h=400 fck=30 fyk=500]", ErrDuplicateKey},
		{"As with As1", "[MN_DIAGRAM b=400 h=400 As=500 As1=500 fck=30 fyk=500]", ErrDuplicateKey},
		{"bad number", "[MN_DIAGRAM b=400 h=abc fck=30 fyk=500]", ErrBadNumber},
		{"infinite", "[MN_DIAGRAM b=400 h=Inf fck=30 fyk=500]", ErrBadNumber},
		{"bare key", "[MN_DIAGRAM b=400 h fck=30 fyk=500]", ErrBadPair},
		{"NEd alone", "[MN_DIAGRAM b=400 h=400 fck=30 fyk=500 NEd=1000]", ErrPartialLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseRejectsInvalidSection(t *testing.T) {
	_, err := Parse("[MN_DIAGRAM b=400 h=80 fck=30 fyk=500]")
	require.Error(t, err)

	var verr *section.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Equal(t, "Cover", verr.Field)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Error(), "MN_DIAGRAM")
}

func TestParseCover(t *testing.T) {
	m, err := Parse("[MN_DIAGRAM b=400 h=400 As=1257 fck=30 fyk=500]")
	require.NoError(t, err)
	assert.Equal(t, section.DefaultCover, m.Section.Cover)

	_, err = Parse("[MN_DIAGRAM b=400 h=400 As=1257 fck=30 fyk=500 cover=0]")
	require.Error(t, err)
	var verr *section.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Cover", verr.Field)
}

func TestParseNegativeMoment(t *testing.T) {
	m, err := Parse("[MN_DIAGRAM b=400 h=400 fck=30 fyk=500 NEd=900 MEd=-120]")
	require.NoError(t, err)
	require.NotNil(t, m.Design)
	assert.Equal(t, 120.0, m.Design.M)
}

func TestParseAll(t *testing.T) {
	text := `Two options:
[MN_DIAGRAM b=400 h=400 As=1257 fck=30 fyk=500 NEd=1500 MEd=80]
[MN_DIAGRAM b=400 h=400 fck=30]
[MN_DIAGRAM b=300 h=300 As=804 fck=30 fyk=500 cover=40]`

	markers, errs := ParseAll(text)
	require.Len(t, markers, 2)
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], ErrMissingKey))

	assert.Equal(t, 400.0, markers[0].Section.B)
	assert.Equal(t, 300.0, markers[1].Section.B)
	assert.Less(t, markers[0].Offset, markers[1].Offset)

	markers, errs = ParseAll("nothing here")
	assert.Empty(t, markers)
	assert.Empty(t, errs)
}
