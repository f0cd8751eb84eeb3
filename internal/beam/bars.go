package beam

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gorcc/internal/column"
)

// Detailing assumptions
const (
	LinkDiameter   = 8.0  // mm
	AssumedMainBar = 20.0 // mm, to locate d before the bars are chosen

	// Minimum clear distance between bars (8.2(2)), at least one diameter
	MinClearSpacing = 25.0 // mm
)

// BarDiameters tried for the tension bars, one layer (mm)
var BarDiameters = []int{12, 16, 20, 25, 32}

// BarProposal is one layer of main bars
type BarProposal struct {
	Count    int
	Diameter int     // mm
	Area     float64 // mm²
	Ratio    float64 // Area / As,required
	Spacing  float64 // Clear spacing (mm)
}

// ProposeBars finds, for each diameter, the number of bars (at least two)
// that provides asRequired in one layer within the width between the links.
// The best five by area ratio are returned.
func ProposeBars(asRequired, width, cover float64) []BarProposal {
	if asRequired <= 0 {
		return nil
	}

	available := width - 2*cover - 2*LinkDiameter
	var proposals []BarProposal
	for _, dia := range BarDiameters {
		one := column.BarArea(dia)
		n := max(int(math.Ceil(asRequired/one)), 2)

		fd := float64(dia)
		needed := float64(n)*fd + float64(n-1)*math.Max(MinClearSpacing, fd)
		if needed > available {
			continue
		}

		area := float64(n) * one
		proposals = append(proposals, BarProposal{
			Count:    n,
			Diameter: dia,
			Area:     area,
			Ratio:    area / asRequired,
			Spacing:  (available - float64(n)*fd) / float64(n-1),
		})
	}

	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].Ratio < proposals[j].Ratio
	})
	if len(proposals) > 5 {
		proposals = proposals[:5]
	}
	return proposals
}
