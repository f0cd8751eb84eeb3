package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/interaction"
)

var (
	checkSection sectionFlags
	checkNEd     float64
	checkMEd     float64
)

var columnCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a design point against the M-N envelope",
	Long: `Check whether the design point (NEd, MEd) lies inside the M-N capacity
envelope of the section. The moment resistance MRd at NEd and the utilisation
MEd/MRd are reported as well.

The command exits with status 2 when the point lies outside the envelope.

Examples:
  gorcc column check -b 400 -H 400 --as1 1257 --ned 1500 --med 80
  gorcc column check -f column.yaml --concrete C35/45 --ned 2200 --med 150`,
	Run: runColumnCheck,
}

func init() {
	columnCmd.AddCommand(columnCheckCmd)

	checkSection.register(columnCheckCmd.Flags())

	columnCheckCmd.Flags().Float64Var(&checkNEd, "ned", 0, "Design axial force NEd (kN), compression positive [required]")
	columnCheckCmd.Flags().Float64Var(&checkMEd, "med", 0, "Design moment MEd (kNm) [required]")
	columnCheckCmd.MarkFlagRequired("ned")
	columnCheckCmd.MarkFlagRequired("med")
}

func runColumnCheck(cmd *cobra.Command, args []string) {
	sec, err := checkSection.load(cmd.Flags())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	env := interaction.GenerateSteps(sec, checkSection.steps)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     COLUMN SECTION CHECK - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	printSectionInfo(sec, env)
	printKeyPoints(env)

	if !printCheck(env, interaction.Point{N: checkNEd, M: abs(checkMEd)}) {
		os.Exit(2)
	}
}
