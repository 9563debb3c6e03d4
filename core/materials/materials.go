// Package materials provides engineering material entities and registries.
// Entities are immutable attribute bundles populated from bundled reference
// tables at construction time; every physical property carries units.
package materials

import (
	"mechkit/internal/errors"
	"mechkit/units"
)

// Base identifies a material family.
type Base string

const (
	BaseCarbonSteel    Base = "Carbon Steel"
	BaseStainlessSteel Base = "Stainless Steel"
	BaseGrayCastIron   Base = "Gray Cast Iron"
	BasePolymer        Base = "Polymer"
	BaseCustom         Base = "Custom"
)

// Metal is a metallic material grade in a specific condition.
type Metal struct {
	// Designation is the grade code, e.g. "1050" or "304"
	Designation string

	// Condition is the treatment state, e.g. "Annealed"
	Condition string

	// Base is the material family
	Base Base

	// Density is the mass density
	Density units.Quantity

	// ModulusElasticity is Young's modulus E
	ModulusElasticity units.Quantity

	// ShearModulus is G, derived as E / (2 * (1 + nu))
	ShearModulus units.Quantity

	// PoissonRatio is nu, dimensionless
	PoissonRatio float64

	// YieldStrength is the 0.2% offset yield strength
	YieldStrength units.Quantity

	// TensileStrength is the ultimate tensile strength
	TensileStrength units.Quantity

	// Elongation is percent elongation at break
	Elongation float64

	// HardnessBrinell is the Brinell hardness number
	HardnessBrinell float64
}

// String returns "1050 (Annealed)" style identification.
func (m *Metal) String() string {
	return m.Designation + " (" + m.Condition + ")"
}

// GrayCastIron is a gray iron class. Gray iron has no meaningful yield
// point in tension, so it carries tensile and compressive strengths instead.
type GrayCastIron struct {
	// Designation is the ASTM A48 class, e.g. "Class 30"
	Designation string

	// Condition is the treatment state
	Condition string

	// Density is the mass density
	Density units.Quantity

	// ModulusElasticity is Young's modulus E
	ModulusElasticity units.Quantity

	// PoissonRatio is nu, dimensionless
	PoissonRatio float64

	// TensileStrength is the ultimate tensile strength
	TensileStrength units.Quantity

	// CompressiveStrength is the ultimate compressive strength
	CompressiveStrength units.Quantity

	// HardnessBrinell is the Brinell hardness number
	HardnessBrinell float64
}

// String returns "Class 30 (As Cast)" style identification.
func (g *GrayCastIron) String() string {
	return g.Designation + " (" + g.Condition + ")"
}

// Polymer is an unfilled engineering polymer.
type Polymer struct {
	// Designation is the common polymer name, e.g. "Nylon 6/6"
	Designation string

	// Density is the mass density
	Density units.Quantity

	// TensileStrength is the ultimate tensile strength
	TensileStrength units.Quantity

	// ModulusElasticity is the tensile modulus
	ModulusElasticity units.Quantity

	// Elongation is percent elongation at break
	Elongation float64

	// MaxServiceTemp is the maximum continuous service temperature
	MaxServiceTemp units.Quantity
}

// String returns the polymer designation.
func (p *Polymer) String() string {
	return p.Designation
}

// NewCustomMetal constructs a metal from user-supplied properties.
// All quantities are dimension-checked; a UNITS error identifies the
// offending property.
func NewCustomMetal(designation, condition string, density, modulus, yieldStrength, tensileStrength units.Quantity, poissonRatio float64) (*Metal, error) {
	checks := []struct {
		q    units.Quantity
		dim  units.Dimension
		name string
	}{
		{density, units.DimDensity, "density"},
		{modulus, units.DimPressure, "modulus_elasticity"},
		{yieldStrength, units.DimPressure, "yield_strength"},
		{tensileStrength, units.DimPressure, "tensile_strength"},
	}
	for _, c := range checks {
		if err := units.CheckDimension(c.q, c.dim, c.name); err != nil {
			return nil, err
		}
	}
	if designation == "" {
		return nil, errors.Input("custom metal requires a designation")
	}
	if poissonRatio <= 0 || poissonRatio >= 0.5 {
		return nil, errors.Newf(errors.TypeInput, "poisson ratio %v outside (0, 0.5)", poissonRatio)
	}

	return &Metal{
		Designation:       designation,
		Condition:         condition,
		Base:              BaseCustom,
		Density:           density,
		ModulusElasticity: modulus,
		ShearModulus:      shearModulus(modulus, poissonRatio),
		PoissonRatio:      poissonRatio,
		YieldStrength:     yieldStrength,
		TensileStrength:   tensileStrength,
	}, nil
}

func shearModulus(modulus units.Quantity, poissonRatio float64) units.Quantity {
	return modulus.MulScalar(1 / (2 * (1 + poissonRatio)))
}
