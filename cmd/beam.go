package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexiusacademia/gorcc/internal/beam"
	"github.com/alexiusacademia/gorcc/internal/ec2"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Rectangular RC beam design (EC2 bending and shear)",
	Long: `Design and analyze rectangular reinforced concrete beams based on
EN 1992-1-1.

Subcommands:
  design   - Simply supported beam: loads, bending, bars and links
  analyze  - Moment resistance for a given tension reinforcement
  shear    - Shear resistance and links for a given shear force`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}

// gradeFlags are the material class flags shared by the beam and slab commands
type gradeFlags struct {
	concrete string
	steel    string
}

func (f *gradeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.concrete, "concrete", "C30/37", "Concrete class")
	fs.StringVar(&f.steel, "steel", "B500SP", "Reinforcing steel class")
}

func (f *gradeFlags) parse() (ec2.ConcreteGrade, ec2.SteelGrade, error) {
	concrete, err := ec2.ParseConcreteGrade(f.concrete)
	if err != nil {
		return ec2.ConcreteGrade{}, ec2.SteelGrade{}, err
	}
	steel, err := ec2.ParseSteelGrade(f.steel)
	if err != nil {
		return ec2.ConcreteGrade{}, ec2.SteelGrade{}, err
	}
	return concrete, steel, nil
}

func printBeamBars(proposals []beam.BarProposal, indent string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%sBars\tAs Provided\tRatio\tClear spacing\n", indent)
	fmt.Fprintf(w, "%s────\t───────────\t─────\t─────────────\n", indent)
	for i, p := range proposals {
		mark := ""
		if i == 0 {
			mark = " ← RECOMMENDED"
		}
		fmt.Fprintf(w, "%s%d - ø%dmm\t%.0f mm²\t%.2f\t%.0f mm%s\n",
			indent, p.Count, p.Diameter, p.Area, p.Ratio, p.Spacing, mark)
	}
	w.Flush()
}

func printShear(r *beam.ShearResult, vEd float64) {
	fmt.Println("SHEAR (EN 1992-1-1 6.2):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  VEd:\t%.1f kN\n", vEd)
	fmt.Fprintf(w, "  k = 1 + √(200/d):\t%.3f\n", r.K)
	fmt.Fprintf(w, "  ρl:\t%.4f\n", r.RhoL)
	fmt.Fprintf(w, "  VRd,c:\t%.1f kN (min %.1f kN)\n", r.VRdc, r.VRdcMin)
	fmt.Fprintf(w, "  VRd,max (θ = %.1f°):\t%.1f kN\n", r.Theta, r.VRdMax)
	if r.AswS > 0 {
		fmt.Fprintf(w, "  Asw/s required:\t%.3f mm²/mm (min %.3f)\n", r.AswS, r.AswSMin)
		fmt.Fprintf(w, "  Maximum link spacing:\t%.0f mm\n", r.MaxSpacing)
	}
	if r.LinkDia > 0 {
		fmt.Fprintf(w, "  Links:\tø%d, %d legs @ %d mm\n", r.LinkDia, r.Legs, r.Spacing)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %s\n\n", r.Message)
}
