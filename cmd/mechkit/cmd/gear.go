// Package cmd - gear command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mechkit/core/gears"
	"mechkit/internal/config"
	"mechkit/units"
)

var (
	gearPinionTeeth int
	gearGearTeeth   int
	gearPinionDia   string
	gearSpeed       string
	gearShaved      bool
)

// gearCmd represents the gear command
var gearCmd = &cobra.Command{
	Use:   "gear",
	Short: "Analyze a spur gear pair",
	Long: `Build a meshed spur gear pair from tooth counts and the pinion pitch
diameter, and report the derived geometry and kinematics.

Examples:
  mechkit gear --pinion-teeth 100 --gear-teeth 300 --pinion-dia "10 in"
  mechkit gear --pinion-teeth 100 --gear-teeth 300 --pinion-dia "10 in" --speed "100 rpm"`,
	RunE: runGear,
}

func init() {
	gearCmd.Flags().IntVar(&gearPinionTeeth, "pinion-teeth", 0, "driving gear tooth count")
	gearCmd.Flags().IntVar(&gearGearTeeth, "gear-teeth", 0, "driven gear tooth count")
	gearCmd.Flags().StringVar(&gearPinionDia, "pinion-dia", "", `pinion pitch diameter, e.g. "10 in"`)
	gearCmd.Flags().StringVar(&gearSpeed, "speed", "", `driving speed, e.g. "100 rpm"`)
	gearCmd.Flags().BoolVar(&gearShaved, "shaved", false, "use shaved/ground tooth proportions")
	gearCmd.MarkFlagRequired("pinion-teeth")
	gearCmd.MarkFlagRequired("gear-teeth")
	gearCmd.MarkFlagRequired("pinion-dia")
}

func runGear(cmd *cobra.Command, args []string) error {
	pinionDia, err := units.Parse(gearPinionDia)
	if err != nil {
		return err
	}

	finish := gears.FinishStandard
	if gearShaved {
		finish = gears.FinishShaved
	}

	pinion, err := gears.NewSpurGearFinish(gearPinionTeeth, pinionDia, finish)
	if err != nil {
		return err
	}
	gear, err := gears.NewSpurGearDP(gearGearTeeth, pinion.DiametralPitch, finish)
	if err != nil {
		return err
	}
	pair, err := gears.NewGearPair(pinion, gear)
	if err != nil {
		return err
	}

	fmt.Printf("Pinion: %s\n", pinion)
	fmt.Printf("Gear:   %s\n\n", gear)

	printGearQuantity("Pinion pitch dia", pinion.PitchDiameter)
	printGearQuantity("Gear pitch dia", gear.PitchDiameter)
	if config.Get().Output.ShowDerived {
		printGearQuantity("Circular pitch", pinion.CircularPitch)
		printGearQuantity("Addendum", pinion.Addendum)
		printGearQuantity("Dedendum", pinion.Dedendum)
		printGearQuantity("Whole depth", pinion.WholeDepth)
	}
	printGearQuantity("Center distance", pair.CenterDistance())
	fmt.Printf("%-22s %.4f\n", "Ratio", pair.Ratio())

	if gearSpeed != "" {
		speed, err := units.Parse(gearSpeed)
		if err != nil {
			return err
		}
		driven, err := pair.DrivenSpeed(speed)
		if err != nil {
			return err
		}
		rpm, err := driven.In(units.RPM)
		if err != nil {
			return err
		}
		fmt.Printf("%-22s %.3f rpm\n", "Driven speed", rpm)
	}
	return nil
}

func printGearQuantity(label string, q units.Quantity) {
	v, err := q.In(units.Inch)
	if err != nil {
		fmt.Printf("%-22s %s\n", label, q)
		return
	}
	fmt.Printf("%-22s %.4f in\n", label, v)
}
