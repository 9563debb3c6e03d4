// Package cmd - grade command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mechkit/core/fasteners"
)

// gradeCmd represents the grade command
var gradeCmd = &cobra.Command{
	Use:   "grade <designation>",
	Short: "Look up a metric screw property class",
	Long: `Look up a metric property class per ISO 898-1.

Examples:
  mechkit grade 8.8
  mechkit grade list`,
	Args: cobra.ExactArgs(1),
	RunE: runGrade,
}

func runGrade(cmd *cobra.Command, args []string) error {
	reg := fasteners.NewScrewGradeRegistry()

	if args[0] == "list" {
		for _, grade := range reg.List() {
			fmt.Println(grade)
		}
		return nil
	}

	grade, err := reg.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", grade)
	fmt.Printf("%-22s %s\n", "Proof load", grade.ProofLoad)
	fmt.Printf("%-22s %s\n", "Tensile strength", grade.TensileStrength)
	fmt.Printf("%-22s %s\n", "Yield strength", grade.YieldStrength)
	fmt.Printf("%-22s %.1f%%\n", "Elongation", grade.Elongation)
	fmt.Printf("%-22s %s-%s HRC\n", "Hardness", grade.HardnessMin, grade.HardnessMax)
	return nil
}
