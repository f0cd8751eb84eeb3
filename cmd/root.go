package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcc/internal/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gorcc",
	Short: "Reinforced Concrete Column Interaction Tool",
	Long: `gorcc - Go Reinforced Concrete Column checker

A CLI tool for the M-N interaction diagrams of rectangular reinforced
concrete column sections based on EN 1992-1-1 (Eurocode 2).

This tool helps structural engineers:
  - Generate the M-N capacity envelope of a section
  - Check design points (NEd, MEd) against the envelope
  - Design slender columns with second order effects (nominal curvature)
  - Combine actions per EN 1990
  - Design beams (bending, shear) and slabs per metre width
  - Render diagrams tagged in chat responses
  - Serve all of the above over HTTP`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   %-56s║\n", version.Short())
		fmt.Println("  ║   Go Reinforced Concrete Column Checker                   ║")
		fmt.Printf("  ║   %-56s║\n", fmt.Sprintf("%s ©  %s", version.Author, version.Year))
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  M-N interaction diagrams for rectangular RC columns")
		fmt.Println("  based on EN 1992-1-1 (Eurocode 2).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Capacity envelope by strain compatibility sweep")
		fmt.Println("    • Design point check with MRd and utilisation")
		fmt.Println("    • Slender column design (EC2 5.8, nominal curvature)")
		fmt.Println("    • EN 1990 load combinations")
		fmt.Println("    • Beam bending and shear, one- and two-way slabs")
		fmt.Println("    • [MN_DIAGRAM] markers from chat responses")
		fmt.Println("    • HTTP API with Prometheus metrics")
		fmt.Println()
		fmt.Println("  Use 'gorcc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}
