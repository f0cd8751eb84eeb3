package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/beam"
)

var (
	shearInput  beam.Shear
	shearGrades gradeFlags
)

var beamShearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Check shear and choose links (EC2 6.2)",
	Long: `Calculate the shear resistance without shear reinforcement VRd,c, the
strut capacity VRd,max and the vertical links for a design shear force.
Minimum links (9.2.2) are always provided.

Examples:
  gorcc beam shear -b 300 -d 547 --ved 180 --asl 942
  gorcc beam shear -b 300 -d 547 --ved 400 --theta 30 --concrete C35/45`,
	Run: runBeamShear,
}

func init() {
	beamCmd.AddCommand(beamShearCmd)

	beamShearCmd.Flags().Float64VarP(&shearInput.Width, "width", "b", 0, "Web width bw (mm) [required]")
	beamShearCmd.Flags().Float64VarP(&shearInput.EffectiveDepth, "depth", "d", 0, "Effective depth d (mm) [required]")
	beamShearCmd.Flags().Float64Var(&shearInput.VEd, "ved", 0, "Design shear force VEd (kN) [required]")
	beamShearCmd.Flags().Float64Var(&shearInput.AsL, "asl", 0, "Anchored tension reinforcement Asl (mm²)")
	beamShearCmd.Flags().Float64Var(&shearInput.Theta, "theta", beam.DefaultTheta, "Strut angle θ (degrees, 21.8 to 45)")
	shearGrades.register(beamShearCmd.Flags())

	beamShearCmd.MarkFlagRequired("width")
	beamShearCmd.MarkFlagRequired("depth")
	beamShearCmd.MarkFlagRequired("ved")
}

func runBeamShear(cmd *cobra.Command, args []string) {
	concrete, steel, err := shearGrades.parse()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	shearInput.Concrete, shearInput.Steel = concrete, steel

	r, err := shearInput.Design()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     BEAM SHEAR - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  bw = %.0f mm, d = %.0f mm, %s, %s\n\n", shearInput.Width, shearInput.EffectiveDepth, concrete.Name, steel.Name)

	printShear(r, shearInput.VEd)
}
