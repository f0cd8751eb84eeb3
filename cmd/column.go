package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/ec2"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/section"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "M-N interaction of rectangular RC column sections",
	Long: `Commands for rectangular reinforced concrete column sections with two
reinforcement layers, based on EN 1992-1-1.

Available subcommands:
  envelope - Generate the M-N capacity envelope
  check    - Check a design point (NEd, MEd) against the envelope
  design   - Design a slender column (EC2 5.8, nominal curvature)`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}

// sectionFlags are shared by the commands that take a section
type sectionFlags struct {
	file string

	b, h, cover float64
	as1, as2    float64
	fck, fyk    float64

	concrete string
	steel    string
	steps    int
}

func (f *sectionFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "file", "f", "", "Section file (.json, .yaml)")

	// Geometry flags
	fs.Float64VarP(&f.b, "width", "b", 0, "Section width b (mm)")
	fs.Float64VarP(&f.h, "height", "H", 0, "Section depth h in the plane of bending (mm)")
	fs.Float64VarP(&f.cover, "cover", "c", section.DefaultCover, "Distance from each face to the bar centroid (mm)")

	// Reinforcement flags
	fs.Float64Var(&f.as1, "as1", 0, "Steel area at the tension face As1 (mm²)")
	fs.Float64Var(&f.as2, "as2", 0, "Steel area at the compression face As2 (mm²), defaults to As1")

	// Material flags
	fs.Float64Var(&f.fck, "fck", 30, "Concrete characteristic strength fck (MPa)")
	fs.Float64Var(&f.fyk, "fyk", 500, "Steel characteristic yield strength fyk (MPa)")
	fs.StringVar(&f.concrete, "concrete", "", "Concrete class, e.g. C30/37 (sets fck)")
	fs.StringVar(&f.steel, "steel", "", "Steel class, e.g. B500B (sets fyk)")

	fs.IntVar(&f.steps, "steps", interaction.DefaultSteps, "Neutral axis sweep steps")
}

// load builds the section from the file and/or flags. Flags given
// explicitly override the file.
func (f *sectionFlags) load(fs *pflag.FlagSet) (section.Section, error) {
	var sec section.Section
	if f.file != "" {
		loaded, err := section.LoadFromFile(f.file)
		if err != nil {
			return section.Section{}, err
		}
		sec = *loaded
	} else {
		if !fs.Changed("width") || !fs.Changed("height") {
			return section.Section{}, errors.New("either --file or both --width and --height are required")
		}
		sec = section.Section{Cover: f.cover, Fck: f.fck, Fyk: f.fyk}
	}

	override := func(name string, dst *float64, v float64) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	override("width", &sec.B, f.b)
	override("height", &sec.H, f.h)
	override("cover", &sec.Cover, f.cover)
	override("as1", &sec.As1, f.as1)
	override("as2", &sec.As2, f.as2)
	override("fck", &sec.Fck, f.fck)
	override("fyk", &sec.Fyk, f.fyk)
	if fs.Changed("as1") && !fs.Changed("as2") && f.file == "" {
		sec.As2 = sec.As1
	}

	if f.concrete != "" {
		if fs.Changed("fck") {
			return section.Section{}, errors.New("use either --concrete or --fck, not both")
		}
		grade, err := ec2.ParseConcreteGrade(f.concrete)
		if err != nil {
			return section.Section{}, err
		}
		sec.Fck = grade.Fck
	}
	if f.steel != "" {
		if fs.Changed("fyk") {
			return section.Section{}, errors.New("use either --steel or --fyk, not both")
		}
		grade, err := ec2.ParseSteelGrade(f.steel)
		if err != nil {
			return section.Section{}, err
		}
		sec.Fyk = grade.Fyk
	}

	if err := sec.Validate(); err != nil {
		return section.Section{}, err
	}
	return sec, nil
}

func printSectionInfo(sec section.Section, env *interaction.Envelope) {
	props := sec.CalculateProperties()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	if sec.Name != "" || sec.Description != "" {
		fmt.Println()
	}

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (b):\t%.0f mm\n", sec.B)
	fmt.Fprintf(w, "  Depth (h):\t%.0f mm\n", sec.H)
	fmt.Fprintf(w, "  Cover to bar centroid:\t%.0f mm\n", sec.Cover)
	fmt.Fprintf(w, "  Effective depth (d):\t%.0f mm\n", props.D)
	fmt.Fprintf(w, "  Compression layer depth (d2):\t%.0f mm\n", props.D2)
	fmt.Fprintf(w, "  Gross area (Ac):\t%.0f mm²\n", props.GrossArea)
	w.Flush()
	fmt.Println()

	fmt.Println("REINFORCEMENT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  As1 (tension face):\t%.0f mm²\n", sec.As1)
	fmt.Fprintf(w, "  As2 (compression face):\t%.0f mm²\n", sec.As2)
	fmt.Fprintf(w, "  Total steel:\t%.0f mm² (ρ = %.2f%%)\n", props.TotalSteel, props.SteelRatio*100)
	if sec.IsSymmetric() {
		fmt.Fprintf(w, "  Arrangement:\tsymmetric\n")
	}
	w.Flush()
	fmt.Println()

	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  fck:\t%.1f MPa\tfcd = %.2f MPa\n", sec.Fck, env.Fcd)
	fmt.Fprintf(w, "  fyk:\t%.1f MPa\tfyd = %.2f MPa\n", sec.Fyk, env.Fyd)
	fmt.Fprintf(w, "  Stress block:\tλ = %.3f\tη = %.3f\n", env.Lambda, env.Eta)
	fmt.Fprintf(w, "  εcu3:\t%.4f\tεyd = %.5f\n", ec2.EpsilonCU3, ec2.YieldStrain(sec.Fyk))
	w.Flush()
	fmt.Println()
}

func printKeyPoints(env *interaction.Envelope) {
	fmt.Println("KEY POINTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawKeyPointTable(env))
	fmt.Println()
}

// printCheck prints the verdict for a design point and returns it
func printCheck(env *interaction.Envelope, p interaction.Point) bool {
	inside := interaction.IsInside(p, env)
	mRd, ok := interaction.MomentCapacity(env, p.N)
	u, uok := interaction.Utilisation(env, p)

	fmt.Println("DESIGN POINT CHECK:")
	fmt.Println("───────────────────────────────────────────────────────────────")

	lines := []string{
		fmt.Sprintf("NEd = %.1f kN", p.N),
		fmt.Sprintf("MEd = %.1f kNm", p.M),
	}
	if ok {
		lines = append(lines, fmt.Sprintf("MRd at NEd = %.1f kNm", mRd))
	} else {
		lines = append(lines, fmt.Sprintf("MRd at NEd: none (NEd outside %.0f … %.0f kN)", env.PureTension.N, env.PureCompression.N))
	}
	if uok && u < 1e6 {
		lines = append(lines, fmt.Sprintf("Utilisation MEd/MRd = %.3f", u))
	}

	title := "✓ DESIGN POINT INSIDE THE M-N ENVELOPE"
	if !inside {
		title = "✗ DESIGN POINT OUTSIDE THE M-N ENVELOPE"
	}
	fmt.Print(diagram.DrawSummaryBox(title, lines))
	fmt.Println()
	return inside
}
