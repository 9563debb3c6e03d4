// Package springs provides linear spring elements and round-wire
// helical compression spring design relations.
package springs

import (
	"math"

	"mechkit/internal/errors"
	"mechkit/units"
)

// SpringElement is an ideal linear spring characterized by a single
// stiffness value.
type SpringElement struct {
	// Stiffness is the spring rate k
	Stiffness units.Quantity
}

// NewSpringElement builds a spring element from its stiffness.
func NewSpringElement(stiffness units.Quantity) (*SpringElement, error) {
	if err := units.CheckDimension(stiffness, units.DimStiffness, "stiffness"); err != nil {
		return nil, err
	}
	if stiffness.Value() <= 0 {
		return nil, errors.Newf(errors.TypeInput, "spring stiffness must be positive, got %s", stiffness)
	}
	return &SpringElement{Stiffness: stiffness}, nil
}

// ApplyDeflection returns the restoring force F = -k x for a given
// deflection. A positive extension produces a negative (restoring)
// force.
func (s *SpringElement) ApplyDeflection(deflection units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(deflection, units.DimLength, "deflection"); err != nil {
		return units.Quantity{}, err
	}
	return s.Stiffness.Mul(deflection).Neg().Convert(units.Newton)
}

// ApplyLoad returns the deflection x = -F / k for a given load.
func (s *SpringElement) ApplyLoad(load units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(load, units.DimForce, "load"); err != nil {
		return units.Quantity{}, err
	}
	deflection, err := load.Div(s.Stiffness)
	if err != nil {
		return units.Quantity{}, err
	}
	return deflection.Neg().Convert(units.Meter)
}

// CoilSpring is a round-wire helical compression spring. Derived
// attributes follow the standard close-coiled relations.
type CoilSpring struct {
	// WireDiameter is the wire diameter d
	WireDiameter units.Quantity

	// CoilDiameter is the mean coil diameter D
	CoilDiameter units.Quantity

	// ActiveCoils is the number of active coils Na
	ActiveCoils float64

	// ShearModulus is the wire material shear modulus G
	ShearModulus units.Quantity

	// Rate is the spring rate k = G d^4 / (8 D^3 Na)
	Rate units.Quantity

	// Index is the spring index C = D / d
	Index float64

	// WahlFactor is the shear stress correction factor
	WahlFactor float64

	// SolidLength is the squared-and-ground solid height d (Na + 2)
	SolidLength units.Quantity
}

// NewCoilSpring builds a helical spring from its wire geometry and
// material shear modulus.
func NewCoilSpring(wireDia, coilDia units.Quantity, activeCoils float64, shearModulus units.Quantity) (*CoilSpring, error) {
	if err := units.CheckDimension(wireDia, units.DimLength, "wire diameter"); err != nil {
		return nil, err
	}
	if err := units.CheckDimension(coilDia, units.DimLength, "coil diameter"); err != nil {
		return nil, err
	}
	if err := units.CheckDimension(shearModulus, units.DimPressure, "shear modulus"); err != nil {
		return nil, err
	}
	if wireDia.Value() <= 0 || coilDia.Value() <= 0 {
		return nil, errors.Input("spring diameters must be positive")
	}
	if activeCoils <= 0 {
		return nil, errors.Newf(errors.TypeInput, "active coil count must be positive, got %v", activeCoils)
	}

	d, _ := wireDia.In(units.Meter)
	dm, _ := coilDia.In(units.Meter)
	if d >= dm {
		return nil, errors.Newf(errors.TypeInput,
			"wire diameter %s must be smaller than coil diameter %s", wireDia, coilDia)
	}

	g := shearModulus.SI()
	index := dm / d
	rate := g * d * d * d * d / (8 * dm * dm * dm * activeCoils)
	wahl := (4*index-1)/(4*index-4) + 0.615/index

	return &CoilSpring{
		WireDiameter: wireDia,
		CoilDiameter: coilDia,
		ActiveCoils:  activeCoils,
		ShearModulus: shearModulus,
		Rate:         units.New(rate, units.NewtonPerMeter),
		Index:        index,
		WahlFactor:   wahl,
		SolidLength:  wireDia.MulScalar(activeCoils + 2),
	}, nil
}

// Element returns the equivalent ideal spring element.
func (c *CoilSpring) Element() *SpringElement {
	return &SpringElement{Stiffness: c.Rate}
}

// ShearStress returns the Wahl-corrected wire shear stress under an
// axial load: tau = K 8 F D / (pi d^3).
func (c *CoilSpring) ShearStress(load units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(load, units.DimForce, "load"); err != nil {
		return units.Quantity{}, err
	}
	f := load.SI()
	d, _ := c.WireDiameter.In(units.Meter)
	dm, _ := c.CoilDiameter.In(units.Meter)
	tau := c.WahlFactor * 8 * f * dm / (math.Pi * d * d * d)
	return units.New(tau, units.Pascal), nil
}
