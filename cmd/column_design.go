package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/column"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/ec2"
)

var (
	// Column design inputs
	designLength   float64
	designWidth    float64
	designDepth    float64
	designCover    float64
	designK        float64
	designConcrete string
	designSteel    string
	designNEd      float64
	designMEd      float64

	designShowDiagram bool
	designExportFile  string
)

var columnDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a braced rectangular column (EC2 5.8)",
	Long: `Design the longitudinal reinforcement of a braced rectangular column for
a compressive axial force and a first order moment.

Steps:
  1. Slenderness λ = l0/i against λlim = 20·A·B·C/√n (A=0.7, B=1.1, C=0.7)
  2. Eccentricities e1, ei = l0/400 and, for slender columns, e2 by the
     nominal curvature method (Kφ = 1, creep not considered)
  3. Required symmetric reinforcement between As,min and As,max
  4. Bar and link proposals
  5. Check of the best proposal against the M-N envelope

Examples:
  gorcc column design -L 3.5 -b 400 -H 400 --ned 1500 --med 80
  gorcc column design -L 6 -b 300 -H 450 --ned 900 --med 120 --concrete C35/45 --k 0.85`,
	Run: runColumnDesign,
}

func init() {
	columnCmd.AddCommand(columnDesignCmd)

	// Geometry flags
	columnDesignCmd.Flags().Float64VarP(&designLength, "length", "L", 0, "Clear height of the column (m) [required]")
	columnDesignCmd.Flags().Float64VarP(&designWidth, "width", "b", 0, "Section width b (mm) [required]")
	columnDesignCmd.Flags().Float64VarP(&designDepth, "height", "H", 0, "Section depth h in the plane of bending (mm) [required]")
	columnDesignCmd.Flags().Float64VarP(&designCover, "cover", "c", 30, "Nominal cover to the links (mm)")
	columnDesignCmd.Flags().Float64Var(&designK, "k", 1.0, "Effective length factor l0/L")

	// Material flags
	columnDesignCmd.Flags().StringVar(&designConcrete, "concrete", "C30/37", "Concrete class")
	columnDesignCmd.Flags().StringVar(&designSteel, "steel", "B500SP", "Reinforcing steel class")

	// Loading flags
	columnDesignCmd.Flags().Float64Var(&designNEd, "ned", 0, "Design axial force NEd (kN) [required]")
	columnDesignCmd.Flags().Float64Var(&designMEd, "med", 0, "First order design moment MEd (kNm)")

	// Diagram options
	columnDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII interaction diagram of the proposed section")
	columnDesignCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")

	// Mark required flags
	columnDesignCmd.MarkFlagRequired("length")
	columnDesignCmd.MarkFlagRequired("width")
	columnDesignCmd.MarkFlagRequired("height")
	columnDesignCmd.MarkFlagRequired("ned")
}

func runColumnDesign(cmd *cobra.Command, args []string) {
	concrete, err := ec2.ParseConcreteGrade(designConcrete)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	steel, err := ec2.ParseSteelGrade(designSteel)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	col := column.NewColumn(designLength, designWidth, designDepth, designNEd, abs(designMEd), concrete, steel)
	col.Cover = designCover
	col.EffLengthRatio = designK

	result, err := col.Design()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN DESIGN - EN 1992-1-1 SECTION 5.8")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT PARAMETERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column height (L):\t%.2f m\n", col.Length)
	fmt.Fprintf(w, "  Section (b × h):\t%.0f × %.0f mm\n", col.Width, col.Depth)
	fmt.Fprintf(w, "  Cover to links:\t%.0f mm\n", col.Cover)
	fmt.Fprintf(w, "  Concrete:\t%s (fck = %.0f MPa, fcd = %.2f MPa)\n", concrete.Name, concrete.Fck, result.Fcd)
	fmt.Fprintf(w, "  Steel:\t%s (fyk = %.0f MPa, fyd = %.2f MPa)\n", steel.Name, steel.Fyk, result.Fyd)
	fmt.Fprintf(w, "  NEd:\t%.1f kN\n", col.NEd)
	fmt.Fprintf(w, "  MEd (first order):\t%.1f kNm\n", col.MEd)
	w.Flush()
	fmt.Println()

	fmt.Println("SLENDERNESS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Effective length (l0):\t%.0f mm\n", result.L0)
	fmt.Fprintf(w, "  Radius of gyration (i):\t%.1f mm\n", result.I)
	fmt.Fprintf(w, "  Slenderness (λ):\t%.1f\n", result.Lambda)
	fmt.Fprintf(w, "  Relative axial force (n):\t%.3f\n", result.NRel)
	fmt.Fprintf(w, "  Limit slenderness (λlim):\t%.1f\n", result.LambdaLim)
	if result.SecondOrderNeeded {
		fmt.Fprintf(w, "  Second order effects:\trequired (λ > λlim)\n")
	} else {
		fmt.Fprintf(w, "  Second order effects:\tmay be ignored (λ ≤ λlim)\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("ECCENTRICITIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  e0 minimum:\t%.1f mm\n", result.EMin)
	fmt.Fprintf(w, "  e1 (first order):\t%.1f mm\n", result.E1)
	fmt.Fprintf(w, "  ei (imperfection):\t%.1f mm\n", result.Ei)
	if result.SecondOrderNeeded {
		fmt.Fprintf(w, "  e2 (second order):\t%.1f mm\n", result.E2)
	}
	fmt.Fprintf(w, "  etot:\t%.1f mm\n", result.ETot)
	fmt.Fprintf(w, "  MEd,tot = NEd·etot:\t%.1f kNm\n", result.MEdTotal)
	w.Flush()
	fmt.Println()

	fmt.Println("LONGITUDINAL REINFORCEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  d / d2:\t%.0f / %.0f mm\n", result.D, result.D2)
	fmt.Fprintf(w, "  As,min:\t%.0f mm²\n", result.AsMin)
	fmt.Fprintf(w, "  As,max:\t%.0f mm²\n", result.AsMax)
	fmt.Fprintf(w, "  As,required (total):\t%.0f mm²\n", result.AsRequired)
	w.Flush()
	fmt.Println()

	if len(result.Proposals) > 0 {
		fmt.Println("  Suggested symmetric arrangements:")
		printBarProposals(result.Proposals, "    ")
		fmt.Println()

		fmt.Println("LINKS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  ø%d @ %d mm\n", result.StirrupDia, result.StirrupSpacing)
		fmt.Println()
	}

	if result.Envelope != nil {
		best := result.Proposals[0]
		fmt.Printf("  Check of %d ø%d (As1 = As2 = %.0f mm², d2 = %.0f mm):\n\n",
			best.Count, best.Diameter, result.Section.As1, result.Section.Cover)
		printKeyPoints(result.Envelope)
		printCheck(result.Envelope, result.DesignPoint)

		data := diagram.InteractionDiagramData{
			Title:    fmt.Sprintf("%.0fx%.0f mm, %d ø%d", col.Width, col.Depth, best.Count, best.Diameter),
			Envelope: result.Envelope,
			Design:   &result.DesignPoint,
		}
		if designShowDiagram {
			fmt.Print(diagram.DrawASCIIInteractionDiagram(data))
			fmt.Println()
		}
		if designExportFile != "" {
			if err := diagram.ExportInteractionDiagram(data, designExportFile); err != nil {
				fmt.Printf("  Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("  ✓ Diagram exported to: %s\n", designExportFile)
			}
			fmt.Println()
		}
	}

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  %s\n", result.Message)
	fmt.Println()
}

func printBarProposals(proposals []column.BarProposal, indent string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%sBars\tPer face\tAs Provided\tRatio\tClear spacing\n", indent)
	fmt.Fprintf(w, "%s────\t────────\t───────────\t─────\t─────────────\n", indent)
	for i, p := range proposals {
		mark := ""
		if i == 0 {
			mark = " ← RECOMMENDED"
		}
		fmt.Fprintf(w, "%s%d - ø%dmm\t%d\t%.0f mm²\t%.2f\t%.0f mm%s\n",
			indent, p.Count, p.Diameter, p.Count/2, p.Area, p.Ratio, p.Spacing, mark)
	}
	w.Flush()
}
