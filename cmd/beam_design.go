package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/beam"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/ec2"
)

var (
	beamSpan   float64
	beamWidth  float64
	beamHeight float64
	beamCover  float64
	beamG      float64
	beamQ      float64
	beamGrades gradeFlags
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a simply supported beam under uniform load",
	Long: `Design a simply supported rectangular beam for uniform permanent and
imposed loads.

Steps:
  1. qEd = 1.35·g + 1.5·q (EN 1990 6.10), MEd = qEd·L²/8, VEd = qEd·L/2
  2. μ = MEd/(b·d²·fcd) against μlim; compression steel above μlim
  3. As,min = max(0.26·fctm/fyk·b·d, 0.0013·b·d), As,max = 0.04·Ac
  4. One layer of tension bars and the resistance of the best proposal
  5. Shear links at the support (6.2)

Examples:
  gorcc beam design -L 6 -b 300 -H 600 --g 15 --q 10
  gorcc beam design -L 7.5 -b 350 -H 700 --g 25 --q 15 --concrete C35/45 -c 40`,
	Run: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)

	// Geometry flags
	beamDesignCmd.Flags().Float64VarP(&beamSpan, "span", "L", 0, "Span (m) [required]")
	beamDesignCmd.Flags().Float64VarP(&beamWidth, "width", "b", 0, "Beam width b (mm) [required]")
	beamDesignCmd.Flags().Float64VarP(&beamHeight, "height", "H", 0, "Beam depth h (mm) [required]")
	beamDesignCmd.Flags().Float64VarP(&beamCover, "cover", "c", beam.DefaultCover, "Nominal cover to the links (mm)")

	// Loading flags
	beamDesignCmd.Flags().Float64Var(&beamG, "g", 0, "Characteristic permanent load gk (kN/m) [required]")
	beamDesignCmd.Flags().Float64Var(&beamQ, "q", 0, "Characteristic imposed load qk (kN/m)")

	// Material flags
	beamGrades.register(beamDesignCmd.Flags())

	// Mark required flags
	beamDesignCmd.MarkFlagRequired("span")
	beamDesignCmd.MarkFlagRequired("width")
	beamDesignCmd.MarkFlagRequired("height")
	beamDesignCmd.MarkFlagRequired("g")
}

func runBeamDesign(cmd *cobra.Command, args []string) {
	concrete, steel, err := beamGrades.parse()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	bm := beam.NewBeam(beamSpan, beamWidth, beamHeight, beamG, beamQ, concrete, steel)
	bm.Cover = beamCover

	r, err := bm.Design()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	f := r.Flexure

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM DESIGN - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Span (L):\t%.2f m\n", bm.Span)
	fmt.Fprintf(w, "  Section (b × h):\t%.0f × %.0f mm\n", bm.Width, bm.Height)
	fmt.Fprintf(w, "  Cover to links:\t%.0f mm\n", bm.Cover)
	fmt.Fprintf(w, "  Effective depth (d):\t%.0f mm\n", r.D)
	fmt.Fprintf(w, "  Concrete:\t%s (fck = %.0f MPa, fcd = %.2f MPa)\n", concrete.Name, concrete.Fck, f.Fcd)
	fmt.Fprintf(w, "  Steel:\t%s (fyk = %.0f MPa, fyd = %.2f MPa)\n", steel.Name, steel.Fyk, f.Fyd)
	fmt.Fprintf(w, "  gk / qk:\t%.2f / %.2f kN/m\n", bm.G, bm.Q)
	w.Flush()
	fmt.Println()

	fmt.Println("DESIGN ACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  qEd = %.2f·gk + %.2f·qk:\t%.2f kN/m\n", ec2.GammaG, ec2.GammaQ, r.QEd)
	fmt.Fprintf(w, "  MEd = qEd·L²/8:\t%.2f kNm\n", r.MEd)
	fmt.Fprintf(w, "  VEd = qEd·L/2:\t%.2f kN\n", r.VEd)
	w.Flush()
	fmt.Println()

	fmt.Println("BENDING:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  μ = MEd/(b·d²·fcd):\t%.4f\n", f.Mu)
	fmt.Fprintf(w, "  μlim (ξlim = %.3f):\t%.4f\n", f.XiLim, f.MuLim)
	fmt.Fprintf(w, "  ξ:\t%.4f\n", f.Xi)
	if f.RequiresCompSteel {
		fmt.Fprintf(w, "  M1 (concrete at ξlim):\t%.2f kNm\n", f.M1)
		fmt.Fprintf(w, "  M2 (steel couple):\t%.2f kNm\n", f.M2)
		fmt.Fprintf(w, "  σsc:\t%.1f MPa\n", f.FscStress)
		fmt.Fprintf(w, "  As2 (compression):\t%.0f mm²\n", f.AsComp)
	}
	fmt.Fprintf(w, "  As,calc:\t%.0f mm²\n", f.AsCalc)
	fmt.Fprintf(w, "  As,min:\t%.0f mm²\n", f.AsMin)
	fmt.Fprintf(w, "  As,max:\t%.0f mm²\n", f.AsMax)
	fmt.Fprintf(w, "  As,required:\t%.0f mm²\n", f.AsRequired)
	w.Flush()
	fmt.Println()

	if len(r.Proposals) > 0 {
		fmt.Println("  Tension bars (one layer):")
		printBeamBars(r.Proposals, "    ")
		fmt.Println()
	}
	if len(r.CompProposals) > 0 {
		fmt.Println("  Compression bars:")
		printBeamBars(r.CompProposals, "    ")
		fmt.Println()
	}

	if len(r.Proposals) > 0 {
		best := r.Proposals[0]
		lines := []string{fmt.Sprintf("MEd = %.2f kNm", r.MEd)}
		if r.Capacity != nil {
			lines = append(lines, fmt.Sprintf("MRd = %.2f kNm (ξ = %.3f)", r.Capacity.MRd, r.Capacity.Xi))
		}
		if r.EnvelopeMRd > 0 {
			lines = append(lines, fmt.Sprintf("MRd at N = 0 from M-N envelope = %.2f kNm", r.EnvelopeMRd))
		}
		fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("CHECK OF %d ø%d (As = %.0f mm²)", best.Count, best.Diameter, best.Area), lines))
		fmt.Println()
	}

	if r.Shear != nil {
		printShear(r.Shear, r.VEd)
	}

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", r.Message)
	fmt.Println()
}
