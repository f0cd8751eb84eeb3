package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/beam"
	"github.com/alexiusacademia/gorcc/internal/diagram"
)

var (
	analyzeWidth  float64
	analyzeHeight float64
	analyzeDepth  float64
	analyzeAs     float64
	analyzeMEd    float64
	analyzeGrades gradeFlags
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Calculate the moment resistance of a singly reinforced section",
	Long: `Calculate the moment resistance MRd of a rectangular section for a
given area of tension reinforcement, with the rectangular stress block
ξ = As·fyd/(b·d·fcd) and MRd = ξ(1 − ξ/2)·b·d²·fcd.

Examples:
  gorcc beam analyze -b 300 -H 600 -d 547 --as 804
  gorcc beam analyze -b 300 -H 600 -d 547 --as 804 --med 158.6`,
	Run: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	beamAnalyzeCmd.Flags().Float64VarP(&analyzeWidth, "width", "b", 0, "Beam width b (mm) [required]")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeHeight, "height", "H", 0, "Beam depth h (mm) [required]")
	beamAnalyzeCmd.Flags().Float64VarP(&analyzeDepth, "depth", "d", 0, "Effective depth d (mm) [required]")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeAs, "as", 0, "Tension reinforcement As (mm²) [required]")
	beamAnalyzeCmd.Flags().Float64Var(&analyzeMEd, "med", 0, "Design moment MEd to check (kNm)")
	analyzeGrades.register(beamAnalyzeCmd.Flags())

	beamAnalyzeCmd.MarkFlagRequired("width")
	beamAnalyzeCmd.MarkFlagRequired("height")
	beamAnalyzeCmd.MarkFlagRequired("depth")
	beamAnalyzeCmd.MarkFlagRequired("as")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) {
	concrete, steel, err := analyzeGrades.parse()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sec := beam.NewSection(analyzeWidth, analyzeHeight, analyzeDepth, concrete, steel)
	r, err := sec.Analyze(analyzeAs)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM SECTION ANALYSIS - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  b × h:\t%.0f × %.0f mm\n", sec.Width, sec.Height)
	fmt.Fprintf(w, "  d:\t%.0f mm\n", sec.EffectiveDepth)
	fmt.Fprintf(w, "  As:\t%.0f mm² (ρ = %.2f%%)\n", r.As, r.Rho*100)
	fmt.Fprintf(w, "  As,min / As,max:\t%.0f / %.0f mm²\n", sec.MinTensionSteel(), sec.MaxSteel())
	fmt.Fprintf(w, "  fcd / fyd:\t%.2f / %.2f MPa\n", sec.Fcd(), sec.Fyd())
	fmt.Fprintf(w, "  ξ (ξlim):\t%.4f (%.4f)\n", r.Xi, r.XiLim)
	w.Flush()
	fmt.Println()

	lines := []string{fmt.Sprintf("MRd = %.2f kNm", r.MRd), r.Message}
	if cmd.Flags().Changed("med") {
		verdict := "MEd ≤ MRd ✓"
		if analyzeMEd > r.MRd {
			verdict = "MEd > MRd ✗"
		}
		lines = append(lines, fmt.Sprintf("MEd = %.2f kNm, %s", analyzeMEd, verdict))
	}
	fmt.Print(diagram.DrawSummaryBox("MOMENT RESISTANCE", lines))
	fmt.Println()
}
