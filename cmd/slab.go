package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/ec2"
	"github.com/alexiusacademia/gorcc/internal/slab"
)

var (
	slabInput   slab.Slab
	slabSupport string
	slabGrades  gradeFlags
)

var slabCmd = &cobra.Command{
	Use:   "slab",
	Short: "Design a rectangular RC slab (EC2)",
	Long: `Design the reinforcement of a rectangular slab per metre width.

Slabs with ly/lx > 2 or --support one_way span one way: MEd = qEd·lx²/8,
or qEd·lx²/16 in the span and qEd·lx²/12 at the support with fixed ends.
Other slabs use the moment coefficients αx, αy for ly/lx between 1 and 2.
The span/depth ratio is checked with EN 1992-1-1 7.4.2.

Support types:
  simply_supported, all_fixed, three_fixed_one_free, two_adjacent_fixed, one_way

Examples:
  gorcc slab --lx 5 --ly 7 -t 200 --g 7.5 --q 3
  gorcc slab --lx 3 --ly 8 -t 150 --g 5 --q 2 --support all_fixed`,
	Run: runSlab,
}

func init() {
	rootCmd.AddCommand(slabCmd)

	slabCmd.Flags().Float64Var(&slabInput.Lx, "lx", 0, "Shorter span lx (m) [required]")
	slabCmd.Flags().Float64Var(&slabInput.Ly, "ly", 0, "Longer span ly (m) [required]")
	slabCmd.Flags().Float64VarP(&slabInput.Thickness, "thickness", "t", 0, "Slab thickness h (mm) [required]")
	slabCmd.Flags().Float64VarP(&slabInput.Cover, "cover", "c", slab.DefaultCover, "Nominal cover (mm)")
	slabCmd.Flags().Float64Var(&slabInput.G, "g", 0, "Characteristic permanent load gk (kN/m²) [required]")
	slabCmd.Flags().Float64Var(&slabInput.Q, "q", 0, "Characteristic imposed load qk (kN/m²)")
	slabCmd.Flags().StringVar(&slabSupport, "support", string(slab.SimplySupported), "Edge support type")
	slabGrades.register(slabCmd.Flags())

	slabCmd.MarkFlagRequired("lx")
	slabCmd.MarkFlagRequired("ly")
	slabCmd.MarkFlagRequired("thickness")
	slabCmd.MarkFlagRequired("g")
}

func runSlab(cmd *cobra.Command, args []string) {
	concrete, steel, err := slabGrades.parse()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	support, err := slab.ParseSupport(slabSupport)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	s := slabInput
	s.Support, s.Concrete, s.Steel = support, concrete, steel

	r, err := s.Design()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	kind := "TWO-WAY"
	if r.OneWay {
		kind = "ONE-WAY"
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s SLAB DESIGN - EN 1992-1-1\n", kind)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  lx × ly:\t%.2f × %.2f m (ly/lx = %.2f)\n", s.Lx, s.Ly, r.Ratio)
	fmt.Fprintf(w, "  Thickness / cover:\t%.0f / %.0f mm\n", s.Thickness, s.Cover)
	fmt.Fprintf(w, "  dx / dy:\t%.0f / %.0f mm\n", r.Dx, r.Dy)
	fmt.Fprintf(w, "  Support:\t%s\n", s.Support)
	fmt.Fprintf(w, "  Concrete / steel:\t%s / %s\n", concrete.Name, steel.Name)
	fmt.Fprintf(w, "  gk / qk:\t%.2f / %.2f kN/m²\n", s.G, s.Q)
	fmt.Fprintf(w, "  qEd = %.2f·gk + %.2f·qk:\t%.2f kN/m²\n", ec2.GammaG, ec2.GammaQ, r.QEd)
	if !r.OneWay {
		fmt.Fprintf(w, "  αx / αy:\t%.4f / %.4f\n", r.AlphaX, r.AlphaY)
	}
	w.Flush()
	fmt.Println()

	for _, st := range r.Strips {
		fmt.Printf("%s (d = %.0f mm):\n", st.Name, st.D)
		fmt.Println("───────────────────────────────────────────────────────────────")
		if st.Flexure != nil {
			fmt.Printf("  MEd = %.2f kNm/m, μ = %.4f\n", st.MEd, st.Flexure.Mu)
		}
		fmt.Printf("  As,required = %.0f mm²/m\n", st.AsRequired)
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for i, m := range st.Mesh {
			mark := ""
			if i == 0 {
				mark = " ← RECOMMENDED"
			}
			fmt.Fprintf(w, "    ø%d @ %d mm\t%.0f mm²/m\t+%.1f%%%s\n", m.Diameter, m.Spacing, m.Area, (m.Ratio-1)*100, mark)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("DEFLECTION (EN 1992-1-1 7.4.2):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	verdict := "≤"
	if !r.DeflectionOK {
		verdict = ">"
	}
	fmt.Printf("  ρ = %.4f, L/d = %.1f %s %.1f\n\n", r.Rho, r.LdActual, verdict, r.LdLimit)

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", r.Message)
	fmt.Println()
}
