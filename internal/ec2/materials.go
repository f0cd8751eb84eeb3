package ec2

import (
	"fmt"
	"sort"
	"strings"
)

// EN 1992-1-1 Material Constants

const (
	// Partial factors for persistent and transient situations (Table 2.1N)
	GammaC = 1.50
	GammaS = 1.15

	// Coefficient for long term effects on compressive strength (3.1.6)
	AlphaCC = 0.85

	// Ultimate compressive strain for the rectangular stress block (Table 3.1)
	EpsilonCU3 = 0.0035

	// Modulus of elasticity for reinforcing steel (3.2.7)
	Es = 200000.0 // MPa

	// Characteristic strength above which the stress block is reduced (3.1.7)
	HighStrengthLimit = 50.0 // MPa
)

// DesignConcreteStrength returns fcd = αcc·fck/γc
func DesignConcreteStrength(fck float64) float64 {
	return AlphaCC * fck / GammaC
}

// DesignSteelStrength returns fyd = fyk/γs
func DesignSteelStrength(fyk float64) float64 {
	return fyk / GammaS
}

// YieldStrain returns the design yield strain εyd = fyd/Es
func YieldStrain(fyk float64) float64 {
	return DesignSteelStrength(fyk) / Es
}

// StressBlock returns the factors λ (effective depth of the compression zone)
// and η (effective strength) of the rectangular stress block.
// EN 1992-1-1 Section 3.1.7(3), expressions 3.19 to 3.22
func StressBlock(fck float64) (lambda, eta float64) {
	if fck <= HighStrengthLimit {
		return 0.8, 1.0
	}
	lambda = 0.8 - (fck-HighStrengthLimit)/400
	eta = 1.0 - (fck-HighStrengthLimit)/200
	return lambda, eta
}

// ConcreteGrade holds the Table 3.1 properties used by the column routines
type ConcreteGrade struct {
	Name string
	Fck  float64 // MPa
	Fctm float64 // MPa
	Ecm  float64 // MPa
}

// SteelGrade holds the properties of a reinforcing steel class
type SteelGrade struct {
	Name string
	Fyk  float64 // MPa
	Es   float64 // MPa
}

// ConcreteGrades lists the strength classes of EN 1992-1-1 Table 3.1
var ConcreteGrades = map[string]ConcreteGrade{
	"C12/15":  {"C12/15", 12, 1.57, 27000},
	"C16/20":  {"C16/20", 16, 1.90, 29000},
	"C20/25":  {"C20/25", 20, 2.21, 30000},
	"C25/30":  {"C25/30", 25, 2.56, 31000},
	"C30/37":  {"C30/37", 30, 2.90, 33000},
	"C35/45":  {"C35/45", 35, 3.21, 34000},
	"C40/50":  {"C40/50", 40, 3.51, 35000},
	"C45/55":  {"C45/55", 45, 3.80, 36000},
	"C50/60":  {"C50/60", 50, 4.07, 37000},
	"C55/67":  {"C55/67", 55, 4.21, 38000},
	"C60/75":  {"C60/75", 60, 4.35, 39000},
	"C70/85":  {"C70/85", 70, 4.61, 41000},
	"C80/95":  {"C80/95", 80, 4.84, 42000},
	"C90/105": {"C90/105", 90, 5.04, 44000},
}

// SteelGrades lists the common B500 reinforcing steels
var SteelGrades = map[string]SteelGrade{
	"B500A":  {"B500A", 500, Es},
	"B500B":  {"B500B", 500, Es},
	"B500C":  {"B500C", 500, Es},
	"B500SP": {"B500SP", 500, Es},
}

// ParseConcreteGrade looks up a concrete class. Both "C30/37" and "C30_37" are
// accepted, case-insensitively.
func ParseConcreteGrade(name string) (ConcreteGrade, error) {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "_", "/"))
	grade, ok := ConcreteGrades[key]
	if !ok {
		return ConcreteGrade{}, fmt.Errorf("unknown concrete grade %q (known: %s)", name, strings.Join(ConcreteGradeNames(), ", "))
	}
	return grade, nil
}

// ParseSteelGrade looks up a reinforcing steel class
func ParseSteelGrade(name string) (SteelGrade, error) {
	grade, ok := SteelGrades[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return SteelGrade{}, fmt.Errorf("unknown steel grade %q", name)
	}
	return grade, nil
}

// ConcreteGradeNames returns the known classes ordered by strength
func ConcreteGradeNames() []string {
	names := make([]string, 0, len(ConcreteGrades))
	for name := range ConcreteGrades {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return ConcreteGrades[names[i]].Fck < ConcreteGrades[names[j]].Fck
	})
	return names
}
