package ec2

import "math"

// Action is a pair of unfactored action effects on a column section
type Action struct {
	N float64 `json:"n" yaml:"n"` // Axial force (kN), compression positive
	M float64 `json:"m" yaml:"m"` // Bending moment (kNm)
}

// Actions holds unfactored effects from the different load types
type Actions struct {
	Permanent Action `json:"permanent" yaml:"permanent"` // G
	Imposed   Action `json:"imposed" yaml:"imposed"`     // Q
	Wind      Action `json:"wind" yaml:"wind"`           // W
	Snow      Action `json:"snow" yaml:"snow"`           // S
}

// IsZero reports whether no action was provided
func (a Actions) IsZero() bool {
	return a == Actions{}
}

// LoadCombination represents an ultimate limit state combination
// Based on EN 1990 Section 6.4.3.2 - persistent and transient design situations
type LoadCombination struct {
	ID          string
	Description string
	// Factors γ·ψ applied to each load type
	Permanent float64
	Imposed   float64
	Wind      float64
	Snow      float64
}

// Combination values ψ0 (EN 1990 Table A1.1, category A/B buildings)
const (
	Psi0Imposed = 0.7
	Psi0Wind    = 0.6
	Psi0Snow    = 0.5

	GammaG    = 1.35
	GammaQ    = 1.50
	XiReduced = 0.85 // ξ in expression 6.10b
)

// LoadCombinations per EN 1990 expressions 6.10, 6.10a and 6.10b
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.35G + 1.5Q",
		Permanent:   GammaG,
		Imposed:     GammaQ,
	},
	{
		ID:          "2",
		Description: "1.35G + 1.5Q + 0.9W + 0.75S",
		Permanent:   GammaG,
		Imposed:     GammaQ,
		Wind:        GammaQ * Psi0Wind,
		Snow:        GammaQ * Psi0Snow,
	},
	{
		ID:          "3",
		Description: "1.35G + 1.05Q + 1.5W + 0.75S",
		Permanent:   GammaG,
		Imposed:     GammaQ * Psi0Imposed,
		Wind:        GammaQ,
		Snow:        GammaQ * Psi0Snow,
	},
	{
		ID:          "4",
		Description: "1.35G + 1.05Q + 0.9W + 1.5S",
		Permanent:   GammaG,
		Imposed:     GammaQ * Psi0Imposed,
		Wind:        GammaQ * Psi0Wind,
		Snow:        GammaQ,
	},
	{
		ID:          "5",
		Description: "1.35G + 1.05Q + 0.9W + 0.75S (6.10a)",
		Permanent:   GammaG,
		Imposed:     GammaQ * Psi0Imposed,
		Wind:        GammaQ * Psi0Wind,
		Snow:        GammaQ * Psi0Snow,
	},
	{
		ID:          "6",
		Description: "1.15G + 1.5Q + 0.9W + 0.75S (6.10b)",
		Permanent:   XiReduced * GammaG,
		Imposed:     GammaQ,
		Wind:        GammaQ * Psi0Wind,
		Snow:        GammaQ * Psi0Snow,
	},
	{
		ID:          "7",
		Description: "1.0G + 1.5W",
		Permanent:   1.0,
		Wind:        GammaQ,
	},
}

// SimplifiedCombinations covers gravity-only columns
var SimplifiedCombinations = []LoadCombination{
	LoadCombinations[0],
	LoadCombinations[4],
	LoadCombinations[5],
}

// Effect is the design pair produced by one combination
type Effect struct {
	Combination LoadCombination
	NEd         float64 // kN
	MEd         float64 // kNm, absolute value
}

// Combine applies the combination factors to the unfactored actions
func (lc LoadCombination) Combine(a Actions) Effect {
	n := lc.Permanent*a.Permanent.N +
		lc.Imposed*a.Imposed.N +
		lc.Wind*a.Wind.N +
		lc.Snow*a.Snow.N
	m := lc.Permanent*a.Permanent.M +
		lc.Imposed*a.Imposed.M +
		lc.Wind*a.Wind.M +
		lc.Snow*a.Snow.M
	return Effect{Combination: lc, NEd: n, MEd: math.Abs(m)}
}

// CombineAll evaluates every combination in order
func CombineAll(a Actions, combinations []LoadCombination) []Effect {
	effects := make([]Effect, 0, len(combinations))
	for _, combo := range combinations {
		effects = append(effects, combo.Combine(a))
	}
	return effects
}

// GoverningEffect picks the combination with the largest moment, using the
// larger axial force to break ties. Without a capacity envelope this is the
// usual first guess for a column in bending.
func GoverningEffect(effects []Effect) (Effect, bool) {
	if len(effects) == 0 {
		return Effect{}, false
	}
	best := effects[0]
	for _, e := range effects[1:] {
		if e.MEd > best.MEd || (e.MEd == best.MEd && e.NEd > best.NEd) {
			best = e
		}
	}
	return best, true
}
