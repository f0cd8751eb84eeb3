package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/interaction"
)

var (
	envelopeSection     sectionFlags
	envelopeNEd         float64
	envelopeMEd         float64
	envelopeShowPoints  bool
	envelopeShowDiagram bool
	envelopeExportFile  string
)

var columnEnvelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Generate the M-N interaction envelope of a section",
	Long: `Generate the M-N capacity envelope of a rectangular column section by
sweeping the neutral axis depth from -50 mm to 2.5h. Each position gives one
(N, M) pair by strain compatibility with εcu3 = 0.0035.

The four key points are reported: pure compression, balanced (max M), pure
bending (N closest to zero) and pure tension.

Examples:
  # 400x400 section with 4ø20 on each face
  gorcc column envelope -b 400 -H 400 --as1 1257 --fck 30 --fyk 500

  # From a file, with a design point and the ASCII diagram
  gorcc column envelope -f column.yaml --ned 1500 --med 80 --diagram

  # Export the diagram
  gorcc column envelope -f column.json -o mn.png`,
	Run: runColumnEnvelope,
}

func init() {
	columnCmd.AddCommand(columnEnvelopeCmd)

	envelopeSection.register(columnEnvelopeCmd.Flags())

	// Optional design point
	columnEnvelopeCmd.Flags().Float64Var(&envelopeNEd, "ned", 0, "Design axial force NEd (kN), compression positive")
	columnEnvelopeCmd.Flags().Float64Var(&envelopeMEd, "med", 0, "Design moment MEd (kNm)")
	columnEnvelopeCmd.MarkFlagsRequiredTogether("ned", "med")

	// Output options
	columnEnvelopeCmd.Flags().BoolVar(&envelopeShowPoints, "points", false, "Print every sweep step")
	columnEnvelopeCmd.Flags().BoolVar(&envelopeShowDiagram, "diagram", false, "Show ASCII interaction diagram")
	columnEnvelopeCmd.Flags().StringVarP(&envelopeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runColumnEnvelope(cmd *cobra.Command, args []string) {
	sec, err := envelopeSection.load(cmd.Flags())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	env := interaction.GenerateSteps(sec, envelopeSection.steps)

	var design *interaction.Point
	if cmd.Flags().Changed("ned") {
		design = &interaction.Point{N: envelopeNEd, M: abs(envelopeMEd)}
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     M-N INTERACTION ENVELOPE - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printSectionInfo(sec, env)
	printKeyPoints(env)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Envelope points:\t%d\n", len(env.Points))
	fmt.Fprintf(w, "  Enclosed area:\t%.0f kN·kNm\n", interaction.Area(env))
	w.Flush()
	fmt.Println()

	if envelopeShowPoints {
		printSweep(env)
	}

	if design != nil {
		printCheck(env, *design)
	}

	data := diagram.InteractionDiagramData{
		Title:    sectionTitle(sec.B, sec.H, sec.Fck, sec.Fyk),
		Envelope: env,
		Design:   design,
	}

	if envelopeShowDiagram {
		fmt.Print(diagram.DrawASCIIInteractionDiagram(data))
		fmt.Println()
	}

	if envelopeExportFile != "" {
		if err := diagram.ExportInteractionDiagram(data, envelopeExportFile); err != nil {
			fmt.Printf("  Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  ✓ Diagram exported to: %s\n", envelopeExportFile)
		}
		fmt.Println()
	}
}

func printSweep(env *interaction.Envelope) {
	fmt.Println("STRAIN COMPATIBILITY SWEEP:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  #\tx (mm)\tεs2\tεs1\tσs2 (MPa)\tσs1 (MPa)\tN (kN)\tM (kNm)\t\n")
	fmt.Fprintf(w, "  ─\t──────\t───\t───\t─────────\t─────────\t──────\t───────\t\n")
	for i, s := range env.Steps {
		p := s.Point()
		fmt.Fprintf(w, "  %d\t%.1f\t%.5f\t%.5f\t%.1f\t%.1f\t%.1f\t%.1f\t\n",
			i, s.X, s.Es2, s.Es1, s.Sigma2, s.Sigma1, p.N, p.M)
	}
	w.Flush()
	fmt.Println()
}

func sectionTitle(b, h, fck, fyk float64) string {
	return fmt.Sprintf("%.0fx%.0f mm, fck=%.0f, fyk=%.0f", b, h, fck, fyk)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
