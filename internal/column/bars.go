package column

import (
	"math"
	"sort"
)

// Diameters tried for the main bars (mm)
var BarDiameters = []int{16, 20, 25, 32}

// BarProposal is a symmetric arrangement of main bars
type BarProposal struct {
	Count    int     // Total number of bars, half on each face
	Diameter int     // mm
	Area     float64 // mm²
	Ratio    float64 // Area / As,required
	Spacing  float64 // Clear spacing along one face (mm)
}

// BarArea returns the area of one bar (mm²)
func BarArea(dia int) float64 {
	d := float64(dia)
	return math.Pi * d * d / 4
}

// ProposeBars finds, for each diameter, the smallest even number of bars
// (4 to 14) that provides asRequired, fits the face width with a clear
// spacing of at least max(ø, 20 mm) and stays under asMax. The best four
// by area ratio are returned.
func ProposeBars(asRequired, asMax, width, cover float64) []BarProposal {
	var proposals []BarProposal

	for _, dia := range BarDiameters {
		for count := 4; count < 16; count += 2 {
			area := float64(count) * BarArea(dia)
			if area < asRequired {
				continue
			}

			perFace := count / 2
			spacing := (width - 2*cover - 2*AssumedStirrup - float64(dia)) / float64(max(perFace-1, 1))
			if spacing >= math.Max(float64(dia), 20) && area <= asMax {
				proposals = append(proposals, BarProposal{
					Count:    count,
					Diameter: dia,
					Area:     area,
					Ratio:    area / asRequired,
					Spacing:  spacing,
				})
				// one arrangement per diameter
				break
			}
		}
	}

	sort.SliceStable(proposals, func(i, j int) bool {
		return proposals[i].Ratio < proposals[j].Ratio
	})
	if len(proposals) > 4 {
		proposals = proposals[:4]
	}
	return proposals
}

// Stirrups returns the link diameter and spacing (mm) for the main bar
// diameter: ø ≥ max(6, ø/4) with 8 mm practical minimum, spacing
// ≤ min(20ø, b, h, 400) rounded down to 10 mm
func Stirrups(mainDia int, width, depth float64) (dia, spacing int) {
	dia = max(6, int(math.Ceil(float64(mainDia)/4)))
	dia = max(dia, 8)

	s := math.Min(math.Min(20*float64(mainDia), width), math.Min(depth, 400))
	spacing = int(math.Floor(s/10) * 10)
	return dia, spacing
}
