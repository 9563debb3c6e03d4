// Package cmd - material command
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mechkit/adapters/assembly"
	"mechkit/core/materials"
	"mechkit/internal/config"
	"mechkit/internal/logging"
	"mechkit/units"
)

var (
	materialCondition string
	materialBase      string
	materialConvert   []string
)

// materialCmd represents the material command
var materialCmd = &cobra.Command{
	Use:   "material <designation>",
	Short: "Look up material properties",
	Long: `Look up a material by designation in the bundled property tables.

Examples:
  mechkit material 1050 --condition Annealed
  mechkit material 304 --base stainless
  mechkit material 1050 --condition Annealed --convert yield_strength:ksi
  mechkit material list --base carbon`,
	Args: cobra.ExactArgs(1),
	RunE: runMaterial,
}

func init() {
	materialCmd.Flags().StringVarP(&materialCondition, "condition", "c", "", "treatment condition, e.g. Annealed")
	materialCmd.Flags().StringVarP(&materialBase, "base", "b", "carbon", "material family (carbon, stainless, cast-iron, polymer)")
	materialCmd.Flags().StringArrayVar(&materialConvert, "convert", nil, "extra property conversions, e.g. yield_strength:ksi")
}

func runMaterial(cmd *cobra.Command, args []string) error {
	designation := args[0]
	if designation == "list" {
		return listMaterials()
	}

	logging.Debug("Looking up material",
		zap.String("designation", designation),
		zap.String("base", materialBase))

	// Custom material definitions shadow the bundled tables.
	if custom, ok := customMaterial(designation); ok {
		return printMetal(custom)
	}

	switch materialBase {
	case "carbon", "stainless":
		reg := materials.NewCarbonSteelRegistry()
		if materialBase == "stainless" {
			reg = materials.NewStainlessSteelRegistry()
		}
		metal, err := reg.Get(designation, materialCondition)
		if err != nil {
			return err
		}
		return printMetal(metal)
	case "cast-iron":
		iron, err := materials.NewCastIronRegistry().Get(designation, materialCondition)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n\n", iron)
		printQuantity("Density", iron.Density)
		printQuantity("Modulus E", iron.ModulusElasticity)
		fmt.Printf("%-22s %.2f\n", "Poisson ratio", iron.PoissonRatio)
		printQuantity("Tensile strength", iron.TensileStrength)
		printQuantity("Compressive strength", iron.CompressiveStrength)
		fmt.Printf("%-22s %.0f HB\n", "Hardness", iron.HardnessBrinell)
		return nil
	case "polymer":
		polymer, err := materials.NewPolymerRegistry().Get(designation)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n\n", polymer)
		printQuantity("Density", polymer.Density)
		printQuantity("Tensile strength", polymer.TensileStrength)
		printQuantity("Modulus E", polymer.ModulusElasticity)
		fmt.Printf("%-22s %.1f%%\n", "Elongation", polymer.Elongation)
		printQuantity("Max service temp", polymer.MaxServiceTemp)
		return nil
	default:
		return fmt.Errorf("unknown material base %q (carbon, stainless, cast-iron, polymer)", materialBase)
	}
}

// customMaterial resolves a designation against the user's custom
// material file, when one is configured.
func customMaterial(designation string) (*materials.Metal, bool) {
	path := config.Get().Materials.CustomFile
	if path == "" {
		return nil, false
	}
	asm, err := assembly.NewParser().ParseFile(path)
	if err != nil {
		logging.Warn("Skipping custom material file",
			zap.String("path", path), zap.Error(err))
		return nil, false
	}
	metal, ok := asm.Materials[designation]
	return metal, ok
}

func printMetal(metal *materials.Metal) error {
	fmt.Printf("%s [%s]\n\n", metal, metal.Base)
	printQuantity("Density", metal.Density)
	printQuantity("Modulus E", metal.ModulusElasticity)
	printQuantity("Shear modulus G", metal.ShearModulus)
	fmt.Printf("%-22s %.2f\n", "Poisson ratio", metal.PoissonRatio)
	printQuantity("Yield strength", metal.YieldStrength)
	printQuantity("Tensile strength", metal.TensileStrength)
	fmt.Printf("%-22s %.1f%%\n", "Elongation", metal.Elongation)
	fmt.Printf("%-22s %.0f HB\n", "Hardness", metal.HardnessBrinell)

	for _, spec := range materialConvert {
		name, symbol, ok := strings.Cut(spec, ":")
		if !ok {
			return fmt.Errorf("bad --convert %q, want property:unit", spec)
		}
		q, err := metalProperty(metal, name)
		if err != nil {
			return err
		}
		unit, err := units.LookupUnit(symbol)
		if err != nil {
			return err
		}
		v, err := q.In(unit)
		if err != nil {
			return err
		}
		fmt.Printf("\n%-22s %.4f %s\n", name, v, unit)
	}
	return nil
}

func metalProperty(metal *materials.Metal, name string) (units.Quantity, error) {
	switch name {
	case "density":
		return metal.Density, nil
	case "modulus_elasticity":
		return metal.ModulusElasticity, nil
	case "shear_modulus":
		return metal.ShearModulus, nil
	case "yield_strength":
		return metal.YieldStrength, nil
	case "tensile_strength":
		return metal.TensileStrength, nil
	default:
		return units.Quantity{}, fmt.Errorf("unknown property %q", name)
	}
}

func printQuantity(label string, q units.Quantity) {
	fmt.Printf("%-22s %s\n", label, q)
}

func listMaterials() error {
	switch materialBase {
	case "carbon", "stainless":
		reg := materials.NewCarbonSteelRegistry()
		if materialBase == "stainless" {
			reg = materials.NewStainlessSteelRegistry()
		}
		for _, metal := range reg.List() {
			fmt.Println(metal)
		}
	case "cast-iron":
		for _, iron := range materials.NewCastIronRegistry().List() {
			fmt.Println(iron)
		}
	case "polymer":
		for _, polymer := range materials.NewPolymerRegistry().List() {
			fmt.Println(polymer)
		}
	default:
		return fmt.Errorf("unknown material base %q", materialBase)
	}
	return nil
}
