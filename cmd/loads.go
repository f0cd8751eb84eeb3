package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/ec2"
	"github.com/alexiusacademia/gorcc/internal/interaction"
)

var (
	// Unfactored actions (kN, kNm)
	loadsActions ec2.Actions

	// Options
	loadsSimplified bool
	loadsSection    sectionFlags
)

var loadsCmd = &cobra.Command{
	Use:   "loads",
	Short: "Combine column actions using EN 1990 load combinations",
	Long: `Calculate the design axial force NEd and moment MEd of a column for the
EN 1990 persistent combinations (expressions 6.10, 6.10a and 6.10b).

Load Types:
  G - Permanent
  Q - Imposed (leading or accompanying, ψ0 = 0.7)
  W - Wind (ψ0 = 0.6)
  S - Snow (ψ0 = 0.5)

When a section is given (-f or -b/-H), every combination is also checked
against its M-N envelope.

Examples:
  # Gravity loads
  gorcc loads --ng 900 --mg 40 --nq 400 --mq 25

  # With wind, checked against a section
  gorcc loads --ng 900 --mg 40 --nq 400 --mq 25 --mw 60 -b 400 -H 400 --as1 1257`,
	Run: runLoads,
}

func init() {
	rootCmd.AddCommand(loadsCmd)

	// Action flags
	loadsCmd.Flags().Float64Var(&loadsActions.Permanent.N, "ng", 0, "Axial force due to permanent load (kN)")
	loadsCmd.Flags().Float64Var(&loadsActions.Permanent.M, "mg", 0, "Moment due to permanent load (kNm)")
	loadsCmd.Flags().Float64Var(&loadsActions.Imposed.N, "nq", 0, "Axial force due to imposed load (kN)")
	loadsCmd.Flags().Float64Var(&loadsActions.Imposed.M, "mq", 0, "Moment due to imposed load (kNm)")
	loadsCmd.Flags().Float64Var(&loadsActions.Wind.N, "nw", 0, "Axial force due to wind (kN)")
	loadsCmd.Flags().Float64Var(&loadsActions.Wind.M, "mw", 0, "Moment due to wind (kNm)")
	loadsCmd.Flags().Float64Var(&loadsActions.Snow.N, "ns", 0, "Axial force due to snow (kN)")
	loadsCmd.Flags().Float64Var(&loadsActions.Snow.M, "ms", 0, "Moment due to snow (kNm)")

	// Options
	loadsCmd.Flags().BoolVarP(&loadsSimplified, "simplified", "s", false, "Use gravity-only combinations (6.10, 6.10a, 6.10b with G and Q)")
	loadsSection.register(loadsCmd.Flags())
}

func runLoads(cmd *cobra.Command, args []string) {
	if loadsActions.IsZero() {
		fmt.Println("Error: Please provide at least one unfactored action.")
		fmt.Println("Use 'gorcc loads --help' for usage information.")
		return
	}

	var env *interaction.Envelope
	if loadsSection.file != "" || cmd.Flags().Changed("width") {
		sec, err := loadsSection.load(cmd.Flags())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		env = interaction.GenerateSteps(sec, loadsSection.steps)
	}

	combinations := ec2.LoadCombinations
	if loadsSimplified {
		combinations = ec2.SimplifiedCombinations
	}
	effects := ec2.CombineAll(loadsActions, combinations)
	governing, _ := ec2.GoverningEffect(effects)

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          EN 1990 DESIGN ACTIONS FOR COLUMNS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED ACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load\tN (kN)\tM (kNm)\n")
	fmt.Fprintf(w, "  ────\t──────\t───────\n")
	for _, row := range []struct {
		name string
		a    ec2.Action
	}{
		{"Permanent (G)", loadsActions.Permanent},
		{"Imposed (Q)", loadsActions.Imposed},
		{"Wind (W)", loadsActions.Wind},
		{"Snow (S)", loadsActions.Snow},
	} {
		if row.a != (ec2.Action{}) {
			fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", row.name, row.a.N, row.a.M)
		}
	}
	w.Flush()
	fmt.Println()

	fmt.Println("LOAD COMBINATIONS (EN 1990 6.4.3.2):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if env != nil {
		fmt.Fprintf(w, "  #\tCombination\tNEd (kN)\tMEd (kNm)\tMRd (kNm)\tVerdict\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\t─────────\t─────────\t───────\n")
	} else {
		fmt.Fprintf(w, "  #\tCombination\tNEd (kN)\tMEd (kNm)\n")
		fmt.Fprintf(w, "  ─\t───────────\t────────\t─────────\n")
	}

	failing := 0
	for _, e := range effects {
		mark := ""
		if e.Combination.ID == governing.Combination.ID {
			mark = " ← GOVERNS"
		}
		if env == nil {
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f%s\n", e.Combination.ID, e.Combination.Description, e.NEd, e.MEd, mark)
			continue
		}

		p := interaction.Point{N: e.NEd, M: e.MEd}
		mRd := "—"
		if m, ok := interaction.MomentCapacity(env, p.N); ok {
			mRd = fmt.Sprintf("%.2f", m)
		}
		verdict := "✓ inside"
		if !interaction.IsInside(p, env) {
			verdict = "✗ outside"
			failing++
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%s\t%s%s\n", e.Combination.ID, e.Combination.Description, e.NEd, e.MEd, mRd, verdict, mark)
	}
	w.Flush()
	fmt.Println()

	// Print result
	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("GOVERNING: "+governing.Combination.Description, []string{
		fmt.Sprintf("NEd = %.2f kN", governing.NEd),
		fmt.Sprintf("MEd = %.2f kNm", governing.MEd),
	}))
	fmt.Println()

	if env != nil {
		if failing == 0 {
			fmt.Println("  ✓ All combinations lie inside the M-N envelope")
		} else {
			fmt.Printf("  ✗ %d of %d combinations lie outside the M-N envelope\n", failing, len(effects))
		}
		fmt.Println()
	}
}
