// Package statics provides uniaxial stress and strain relations,
// empirical strength correlations and a plane stress tensor.
package statics

import (
	"math"

	"mechkit/internal/errors"
	"mechkit/units"
)

// EngineeringStress returns load over initial cross-sectional area.
func EngineeringStress(load, area units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(load, units.DimForce, "load"); err != nil {
		return units.Quantity{}, err
	}
	if err := units.CheckDimension(area, units.DimArea, "area"); err != nil {
		return units.Quantity{}, err
	}
	return load.Div(area)
}

// EngineeringStrain returns elongation over original length as a
// dimensionless quantity.
func EngineeringStrain(elongation, length units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(elongation, units.DimLength, "elongation"); err != nil {
		return units.Quantity{}, err
	}
	if err := units.CheckDimension(length, units.DimLength, "length"); err != nil {
		return units.Quantity{}, err
	}
	return elongation.Div(length)
}

// TrueStress corrects engineering stress for area reduction:
// sigma_true = (P/A) * (1 + strain).
func TrueStress(load, actualArea units.Quantity, strain float64) (units.Quantity, error) {
	stress, err := EngineeringStress(load, actualArea)
	if err != nil {
		return units.Quantity{}, err
	}
	return stress.MulScalar(1 + strain), nil
}

// UTSFromBrinell estimates ultimate tensile strength from Brinell
// hardness. The 500 multiplier applies to steels categorically.
func UTSFromBrinell(hardness units.Quantity, multiplier float64) (units.Quantity, error) {
	if err := units.CheckDimension(hardness, units.DimPressure, "hardness"); err != nil {
		return units.Quantity{}, err
	}
	if multiplier <= 0 {
		return units.Quantity{}, errors.Input("hardness multiplier must be positive")
	}
	return hardness.MulScalar(multiplier), nil
}

// DefaultBrinellMultiplier converts Brinell hardness to UTS for steels.
const DefaultBrinellMultiplier = 500

// YSFromUTS estimates yield strength from ultimate tensile strength
// using the psi-domain correlation ys = 1.05*uts - 30000 psi.
func YSFromUTS(uts units.Quantity) (units.Quantity, error) {
	psi, err := uts.In(units.PSI)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.New(1.05*psi-30000, units.PSI), nil
}

// ShearModulus returns G = E / (2 (1 + nu)) for an isotropic material.
func ShearModulus(modulusElasticity units.Quantity, poissonRatio float64) (units.Quantity, error) {
	if err := units.CheckDimension(modulusElasticity, units.DimPressure, "modulus of elasticity"); err != nil {
		return units.Quantity{}, err
	}
	if poissonRatio <= -1 {
		return units.Quantity{}, errors.Input("poisson ratio must exceed -1")
	}
	return modulusElasticity.MulScalar(1 / (2 * (1 + poissonRatio))), nil
}

// StressTensor is a 2D plane stress state. Components share one stress
// unit fixed at construction; derived stresses come back in that unit.
type StressTensor struct {
	// SigmaX and SigmaY are the normal stress components
	SigmaX units.Quantity
	SigmaY units.Quantity

	// TauXY is the in-plane shear component
	TauXY units.Quantity
}

// NewStressTensor builds a plane stress state from its components.
func NewStressTensor(sigmaX, sigmaY, tauXY units.Quantity) (*StressTensor, error) {
	for _, c := range []struct {
		name string
		q    units.Quantity
	}{{"sigma_x", sigmaX}, {"sigma_y", sigmaY}, {"tau_xy", tauXY}} {
		if err := units.CheckDimension(c.q, units.DimPressure, c.name); err != nil {
			return nil, err
		}
	}
	return &StressTensor{SigmaX: sigmaX, SigmaY: sigmaY, TauXY: tauXY}, nil
}

// components returns the stress state in the unit of SigmaX.
func (t *StressTensor) components() (sx, sy, txy float64, unit units.Unit) {
	unit = t.SigmaX.Unit()
	sx = t.SigmaX.Value()
	sy, _ = t.SigmaY.In(unit)
	txy, _ = t.TauXY.In(unit)
	return sx, sy, txy, unit
}

// Principal returns the two principal stresses, sigma1 >= sigma2.
func (t *StressTensor) Principal() (units.Quantity, units.Quantity) {
	sx, sy, txy, unit := t.components()
	center := (sx + sy) / 2
	radius := math.Sqrt(math.Pow((sx-sy)/2, 2) + txy*txy)
	return units.New(center+radius, unit), units.New(center-radius, unit)
}

// MaxShear returns the maximum in-plane shear stress, the Mohr's
// circle radius.
func (t *StressTensor) MaxShear() units.Quantity {
	s1, s2 := t.Principal()
	diff, _ := s1.Sub(s2)
	return diff.MulScalar(0.5)
}

// NormalOn returns the normal stress on a plane rotated theta radians
// from the x axis.
func (t *StressTensor) NormalOn(theta float64) units.Quantity {
	sx, sy, txy, unit := t.components()
	sn := 0.5*(sx+sy) + 0.5*(sx-sy)*math.Cos(2*theta) + txy*math.Sin(2*theta)
	return units.New(sn, unit)
}

// ShearOn returns the shear stress on a plane rotated theta radians
// from the x axis.
func (t *StressTensor) ShearOn(theta float64) units.Quantity {
	sx, sy, txy, unit := t.components()
	tn := -0.5*(sx-sy)*math.Sin(2*theta) + txy*math.Cos(2*theta)
	return units.New(tn, unit)
}
