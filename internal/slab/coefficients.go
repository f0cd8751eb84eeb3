package slab

import "math"

// Span moment coefficients (αx, αy) for ly/lx = 1.0, 1.1, ... 2.0, with
// MEd = α·qEd·lx²
var simplySupportedCoefficients = [][2]float64{
	{0.0625, 0.0625},
	{0.0698, 0.0571},
	{0.0769, 0.0520},
	{0.0833, 0.0474},
	{0.0892, 0.0432},
	{0.0948, 0.0393},
	{0.0996, 0.0360},
	{0.1040, 0.0331},
	{0.1080, 0.0305},
	{0.1112, 0.0283},
	{0.1140, 0.0264},
}

var allFixedCoefficients = [][2]float64{
	{0.0340, 0.0340},
	{0.0398, 0.0310},
	{0.0452, 0.0284},
	{0.0501, 0.0262},
	{0.0545, 0.0243},
	{0.0585, 0.0227},
	{0.0620, 0.0213},
	{0.0650, 0.0202},
	{0.0676, 0.0192},
	{0.0699, 0.0184},
	{0.0718, 0.0177},
}

// interpolate returns the coefficients for ratio, clamped to 1.0..2.0
func interpolate(table [][2]float64, ratio float64) (ax, ay float64) {
	pos := (math.Min(math.Max(ratio, 1), 2) - 1) * 10
	// Snap values such as 1.4 that land just below a table row
	if r := math.Round(pos); math.Abs(pos-r) < 1e-9 {
		pos = r
	}
	i := int(math.Floor(pos))
	if i >= len(table)-1 {
		last := table[len(table)-1]
		return last[0], last[1]
	}
	t := pos - float64(i)
	lo, hi := table[i], table[i+1]
	return lo[0] + t*(hi[0]-lo[0]), lo[1] + t*(hi[1]-lo[1])
}
