// Package solids provides mass and mass moment of inertia formulas for
// primitive solids about their centroidal axes. The x axis runs along
// each solid's axis of symmetry.
package solids

import (
	"math"

	"mechkit/internal/errors"
	"mechkit/units"
)

func checkLength(q units.Quantity, name string) error {
	if err := units.CheckDimension(q, units.DimLength, name); err != nil {
		return err
	}
	if q.Value() < 0 {
		return errors.Newf(errors.TypeInput, "%s must not be negative, got %s", name, q)
	}
	return nil
}

func checkDensity(q units.Quantity) error {
	if err := units.CheckDimension(q, units.DimDensity, "density"); err != nil {
		return err
	}
	if q.Value() <= 0 {
		return errors.Newf(errors.TypeInput, "density must be positive, got %s", q)
	}
	return nil
}

// MassRod returns the mass of a solid rod of circular cross-section.
func MassRod(diameter, length, density units.Quantity) (units.Quantity, error) {
	return MassCylinder(diameter, units.New(0, units.Meter), length, density)
}

// RodITransverse returns the mass moment of inertia of a slender rod
// about a transverse centroidal axis: m L^2 / 12.
func RodITransverse(mass, length units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(mass, units.DimMass, "mass"); err != nil {
		return units.Quantity{}, err
	}
	if err := checkLength(length, "length"); err != nil {
		return units.Quantity{}, err
	}
	return mass.Mul(length.Pow(2)).MulScalar(1.0 / 12.0).Convert(units.KilogramSqMeter)
}

// MassDisk returns the mass of a solid disk.
func MassDisk(diameter, thickness, density units.Quantity) (units.Quantity, error) {
	return MassCylinder(diameter, units.New(0, units.Meter), thickness, density)
}

// DiskIAxial returns the mass moment of inertia of a disk about its
// axis of symmetry: m d^2 / 8.
func DiskIAxial(mass, diameter units.Quantity) (units.Quantity, error) {
	return diskMoment(mass, diameter, 1.0/8.0)
}

// DiskITransverse returns the mass moment of inertia of a thin disk
// about a diameter: m d^2 / 16.
func DiskITransverse(mass, diameter units.Quantity) (units.Quantity, error) {
	return diskMoment(mass, diameter, 1.0/16.0)
}

func diskMoment(mass, diameter units.Quantity, factor float64) (units.Quantity, error) {
	if err := units.CheckDimension(mass, units.DimMass, "mass"); err != nil {
		return units.Quantity{}, err
	}
	if err := checkLength(diameter, "diameter"); err != nil {
		return units.Quantity{}, err
	}
	return mass.Mul(diameter.Pow(2)).MulScalar(factor).Convert(units.KilogramSqMeter)
}

// MassRectPrism returns the mass of a rectangular prism.
func MassRectPrism(length, width, height, density units.Quantity) (units.Quantity, error) {
	for _, d := range []struct {
		name string
		q    units.Quantity
	}{{"length", length}, {"width", width}, {"height", height}} {
		if err := checkLength(d.q, d.name); err != nil {
			return units.Quantity{}, err
		}
	}
	if err := checkDensity(density); err != nil {
		return units.Quantity{}, err
	}
	return length.Mul(width).Mul(height).Mul(density).Convert(units.Kilogram)
}

// RectPrismI returns the mass moment of inertia of a rectangular prism
// about a centroidal axis: (m/12) (a^2 + b^2), where a and b are the
// two edge lengths perpendicular to that axis.
func RectPrismI(mass, a, b units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(mass, units.DimMass, "mass"); err != nil {
		return units.Quantity{}, err
	}
	if err := checkLength(a, "edge"); err != nil {
		return units.Quantity{}, err
	}
	if err := checkLength(b, "edge"); err != nil {
		return units.Quantity{}, err
	}
	sum, err := a.Pow(2).Add(b.Pow(2))
	if err != nil {
		return units.Quantity{}, err
	}
	return mass.Mul(sum).MulScalar(1.0 / 12.0).Convert(units.KilogramSqMeter)
}

// MassCylinder returns the mass of a hollow (or solid, with zero inner
// diameter) circular cylinder.
func MassCylinder(outerDia, innerDia, length, density units.Quantity) (units.Quantity, error) {
	if err := checkLength(outerDia, "outer diameter"); err != nil {
		return units.Quantity{}, err
	}
	if err := checkLength(innerDia, "inner diameter"); err != nil {
		return units.Quantity{}, err
	}
	if err := checkLength(length, "length"); err != nil {
		return units.Quantity{}, err
	}
	if err := checkDensity(density); err != nil {
		return units.Quantity{}, err
	}

	do, _ := outerDia.In(units.Meter)
	di, _ := innerDia.In(units.Meter)
	if di >= do {
		return units.Quantity{}, errors.Newf(errors.TypeInput,
			"inner diameter %s must be smaller than outer diameter %s", innerDia, outerDia)
	}

	l, _ := length.In(units.Meter)
	rho := density.SI()
	volume := math.Pi / 4 * (do*do - di*di) * l
	return units.New(volume*rho, units.Kilogram), nil
}

// CylinderIAxial returns the mass moment of inertia of a hollow
// cylinder about its axis: (m/8) (do^2 + di^2).
func CylinderIAxial(mass, outerDia, innerDia units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(mass, units.DimMass, "mass"); err != nil {
		return units.Quantity{}, err
	}
	if err := checkLength(outerDia, "outer diameter"); err != nil {
		return units.Quantity{}, err
	}
	if err := checkLength(innerDia, "inner diameter"); err != nil {
		return units.Quantity{}, err
	}
	sum, err := outerDia.Pow(2).Add(innerDia.Pow(2))
	if err != nil {
		return units.Quantity{}, err
	}
	return mass.Mul(sum).MulScalar(1.0 / 8.0).Convert(units.KilogramSqMeter)
}

// CylinderITransverse returns the mass moment of inertia of a hollow
// cylinder about a transverse centroidal axis:
// (m/48) (3 do^2 + 3 di^2 + 4 L^2).
func CylinderITransverse(mass, outerDia, innerDia, length units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(mass, units.DimMass, "mass"); err != nil {
		return units.Quantity{}, err
	}
	for _, d := range []struct {
		name string
		q    units.Quantity
	}{{"outer diameter", outerDia}, {"inner diameter", innerDia}, {"length", length}} {
		if err := checkLength(d.q, d.name); err != nil {
			return units.Quantity{}, err
		}
	}

	m := mass.SI()
	do, _ := outerDia.In(units.Meter)
	di, _ := innerDia.In(units.Meter)
	l, _ := length.In(units.Meter)
	moment := m / 48 * (3*do*do + 3*di*di + 4*l*l)
	return units.New(moment, units.KilogramSqMeter), nil
}
