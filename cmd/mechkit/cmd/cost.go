// Package cmd - cost command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mechkit/adapters/assembly"
	"mechkit/core/costing"
	"mechkit/internal/config"
)

// costCmd represents the cost command
var costCmd = &cobra.Command{
	Use:   "cost <file.mech.hcl>",
	Short: "Build a bill of materials for an assembly definition",
	Long: `Parse an assembly definition file and aggregate the priced components
into a bill of materials with exact decimal totals.

Examples:
  mechkit cost gearbox.mech.hcl`,
	Args: cobra.ExactArgs(1),
	RunE: runCost,
}

func runCost(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", path)
	}

	asm, err := assembly.NewParser().ParseFile(path)
	if err != nil {
		return err
	}

	bom := costing.NewBillOfMaterials(config.Get().Costing.Currency)
	for _, screw := range asm.Screws {
		if screw.UnitCost.IsZero() {
			continue
		}
		if err := bom.AddPart(screw.Screw.String(), screw.Quantity, screw.UnitCost); err != nil {
			return err
		}
	}
	for _, spring := range asm.Springs {
		if spring.UnitCost.IsZero() {
			continue
		}
		if err := bom.AddPart("spring "+spring.Name, spring.Quantity, spring.UnitCost); err != nil {
			return err
		}
	}

	if bom.Len() == 0 {
		fmt.Println("No priced components in the assembly.")
		return nil
	}

	fmt.Print(bom)
	return nil
}
