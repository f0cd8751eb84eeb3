package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/marker"
)

var (
	markerOutputDir   string
	markerShowDiagram bool
)

var markerCmd = &cobra.Command{
	Use:   "marker [file]",
	Short: "Evaluate [MN_DIAGRAM ...] markers found in a chat response",
	Long: `Extract every interaction diagram marker from a text (a file, or stdin
when no file or "-" is given), generate the envelope of each section and
check its design point.

Marker syntax:
  [MN_DIAGRAM b=400 h=400 As1=1257 As2=1257 fck=30 fyk=500 cover=45 NEd=1500 MEd=80]

Required keys are b, h, fck and fyk. As sets both layers; As2 defaults to
As1; cover defaults to 45 mm. NEd and MEd must be given together.

Examples:
  gorcc marker response.md
  cat response.md | gorcc marker -o diagrams/`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMarker,
}

func init() {
	rootCmd.AddCommand(markerCmd)

	markerCmd.Flags().StringVarP(&markerOutputDir, "output", "o", "", "Directory for one SVG diagram per marker")
	markerCmd.Flags().BoolVar(&markerShowDiagram, "diagram", false, "Show ASCII interaction diagram for each marker")
}

func runMarker(cmd *cobra.Command, args []string) {
	var (
		text []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		text, err = io.ReadAll(cmd.InOrStdin())
	} else {
		text, err = os.ReadFile(args[0])
	}
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		return
	}

	markers, errs := marker.ParseAll(string(text))

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     INTERACTION DIAGRAM MARKERS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if len(markers) == 0 && len(errs) == 0 {
		fmt.Printf("  %v\n\n", marker.ErrNoMarker)
		return
	}

	if markerOutputDir != "" {
		if err := os.MkdirAll(markerOutputDir, 0755); err != nil {
			fmt.Printf("Error creating %s: %v\n", markerOutputDir, err)
			return
		}
	}

	for i, m := range markers {
		env := interaction.Generate(m.Section)

		fmt.Printf("MARKER %d (offset %d):\n", i+1, m.Offset)
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  %s\n\n", m.Raw)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Section:\t%.0f × %.0f mm, cover %.0f mm\n", m.Section.B, m.Section.H, m.Section.Cover)
		fmt.Fprintf(w, "  Reinforcement:\tAs1 = %.0f mm², As2 = %.0f mm²\n", m.Section.As1, m.Section.As2)
		fmt.Fprintf(w, "  Materials:\tfck = %.0f MPa, fyk = %.0f MPa\n", m.Section.Fck, m.Section.Fyk)
		w.Flush()
		fmt.Println()

		printKeyPoints(env)
		if m.Design != nil {
			printCheck(env, *m.Design)
		}

		data := diagram.InteractionDiagramData{
			Title:    sectionTitle(m.Section.B, m.Section.H, m.Section.Fck, m.Section.Fyk),
			Envelope: env,
			Design:   m.Design,
		}
		if markerShowDiagram {
			fmt.Print(diagram.DrawASCIIInteractionDiagram(data))
			fmt.Println()
		}
		if markerOutputDir != "" {
			path := filepath.Join(markerOutputDir, fmt.Sprintf("marker-%d.svg", i+1))
			if err := writeSVGFile(path, data); err != nil {
				fmt.Printf("  Error exporting diagram: %v\n", err)
			} else {
				fmt.Printf("  ✓ Diagram exported to: %s\n", path)
			}
			fmt.Println()
		}
	}

	if len(errs) > 0 {
		fmt.Println("REJECTED MARKERS (cannot render diagram):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, err := range errs {
			fmt.Printf("  ✗ %v\n", err)
		}
		fmt.Println()
	}
}

func writeSVGFile(path string, data diagram.InteractionDiagramData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := diagram.WriteSVG(f, data, diagram.DefaultSVGOptions()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
