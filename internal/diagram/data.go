package diagram

import (
	"math"

	"github.com/alexiusacademia/gorcc/internal/interaction"
)

// InteractionDiagramData holds what is drawn on an M-N interaction diagram
type InteractionDiagramData struct {
	Title    string
	Envelope *interaction.Envelope

	// Optional design point (NEd, MEd)
	Design *interaction.Point
}

// Inside reports whether the design point lies within the envelope
func (d InteractionDiagramData) Inside() bool {
	if d.Design == nil {
		return false
	}
	return interaction.IsInside(*d.Design, d.Envelope)
}

// bounds returns the plotted range of the data, design point included
func (d InteractionDiagramData) bounds() (minM, maxM, minN, maxN float64) {
	minN, maxN = math.Inf(1), math.Inf(-1)
	for _, p := range d.Envelope.Points {
		maxM = math.Max(maxM, p.M)
		minN = math.Min(minN, p.N)
		maxN = math.Max(maxN, p.N)
	}
	if d.Design != nil {
		maxM = math.Max(maxM, d.Design.M)
		minN = math.Min(minN, d.Design.N)
		maxN = math.Max(maxN, d.Design.N)
	}
	return 0, maxM, minN, maxN
}

// niceStep rounds span/target up to 1, 2, 5 or 10 times a power of ten
func niceStep(span float64, target int) float64 {
	if span <= 0 || target < 1 {
		return 1
	}
	raw := span / float64(target)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / mag; {
	case f <= 1:
		return mag
	case f <= 2:
		return 2 * mag
	case f <= 5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// niceRange widens [lo, hi] outwards to whole steps and lists the ticks
func niceRange(lo, hi float64, target int) (from, to float64, ticks []float64) {
	if hi <= lo {
		hi = lo + 1
	}
	step := niceStep(hi-lo, target)
	from = math.Floor(lo/step) * step
	to = math.Ceil(hi/step) * step
	for v := from; v <= to+step/2; v += step {
		ticks = append(ticks, math.Round(v/step)*step)
	}
	return from, to, ticks
}
