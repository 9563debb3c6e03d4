// Package cmd - analyze command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mechkit/adapters/assembly"
	"mechkit/internal/logging"
	"mechkit/units"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mech.hcl>",
	Short: "Resolve and analyze an assembly definition",
	Long: `Parse an assembly definition file, resolve every component against the
bundled reference tables and report the derived engineering values.

Examples:
  mechkit analyze gearbox.mech.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}

	logging.Info("Analyzing assembly", zap.String("file", path))

	asm, err := assembly.NewParser().ParseFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("Assembly %s: %d components\n", asm.SourceFile, asm.ComponentCount())

	for _, screw := range asm.Screws {
		fmt.Printf("\nscrew %q: %d x %s\n", screw.Name, screw.Quantity, screw.Screw)
		proof, _ := screw.Screw.ProofLoad.In(units.Kilonewton)
		ultimate, _ := screw.Screw.TensileCapacity.In(units.Kilonewton)
		fmt.Printf("  proof load        %.2f kN\n", proof)
		fmt.Printf("  tensile capacity  %.2f kN\n", ultimate)
	}

	for _, pair := range asm.GearPairs {
		fmt.Printf("\ngear_pair %q: %s driving %s\n", pair.Name, pair.Pair.Driving, pair.Pair.Driven)
		fmt.Printf("  ratio             %.4f\n", pair.Pair.Ratio())
		center, _ := pair.Pair.CenterDistance().In(units.Inch)
		fmt.Printf("  center distance   %.3f in\n", center)
		if !pair.Speed.IsZero() {
			driven, err := pair.Pair.DrivenSpeed(pair.Speed)
			if err != nil {
				return err
			}
			rpm, _ := driven.In(units.RPM)
			fmt.Printf("  driven speed      %.3f rpm\n", rpm)
		}
	}

	for _, spring := range asm.Springs {
		fmt.Printf("\nspring %q: %d pieces\n", spring.Name, spring.Quantity)
		rate, _ := spring.Spring.Rate.In(units.NewtonPerMm)
		fmt.Printf("  rate              %.3f N/mm\n", rate)
		fmt.Printf("  index             %.2f\n", spring.Spring.Index)
		fmt.Printf("  Wahl factor       %.4f\n", spring.Spring.WahlFactor)
		solid, _ := spring.Spring.SolidLength.In(units.Millimeter)
		fmt.Printf("  solid length      %.1f mm\n", solid)
	}

	for _, shaft := range asm.Shafts {
		fmt.Printf("\nshaft %q: %s\n", shaft.Name, shaft.Material)
		mass, _ := shaft.Mass.In(units.Kilogram)
		fmt.Printf("  mass              %.3f kg\n", mass)
	}

	return nil
}
