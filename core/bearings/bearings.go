// Package bearings provides basic rating life and equivalent load
// relations for rolling-element bearings.
package bearings

import (
	"math"

	"mechkit/internal/errors"
	"mechkit/units"
)

// Kind selects the life exponent for the bearing geometry.
type Kind string

const (
	// KindBall uses the point-contact exponent p = 3.
	KindBall Kind = "ball"

	// KindRoller uses the line-contact exponent p = 10/3.
	KindRoller Kind = "roller"
)

func lifeExponent(kind Kind) (float64, error) {
	switch kind {
	case KindBall:
		return 3, nil
	case KindRoller:
		return 10.0 / 3.0, nil
	default:
		return 0, errors.NotSupported("bearing kind " + string(kind))
	}
}

// RatingLife returns the basic L10 life in millions of revolutions:
// L10 = (C/P)^p, where C is the dynamic load rating and P the
// equivalent load.
func RatingLife(kind Kind, rating, load units.Quantity) (float64, error) {
	p, err := lifeExponent(kind)
	if err != nil {
		return 0, err
	}
	if err := units.CheckDimension(rating, units.DimForce, "dynamic load rating"); err != nil {
		return 0, err
	}
	if err := units.CheckDimension(load, units.DimForce, "equivalent load"); err != nil {
		return 0, err
	}
	if rating.Value() <= 0 {
		return 0, errors.Input("dynamic load rating must be positive")
	}
	if load.Value() <= 0 {
		return 0, errors.Input("equivalent load must be positive")
	}

	ratio, err := rating.Div(load)
	if err != nil {
		return 0, err
	}
	return math.Pow(ratio.SI(), p), nil
}

// RatingLifeHours returns the L10 life in operating hours at a
// constant speed.
func RatingLifeHours(kind Kind, rating, load, speed units.Quantity) (units.Quantity, error) {
	revs, err := RatingLife(kind, rating, load)
	if err != nil {
		return units.Quantity{}, err
	}
	if err := units.CheckDimension(speed, units.DimRotation, "speed"); err != nil {
		return units.Quantity{}, err
	}
	rpm, err := speed.In(units.RPM)
	if err != nil {
		return units.Quantity{}, err
	}
	if rpm <= 0 {
		return units.Quantity{}, errors.Input("speed must be positive")
	}

	// revs is in millions of revolutions.
	hours := revs * 1e6 / (rpm * 60)
	return units.New(hours, units.Hour), nil
}

// EquivalentLoad returns the dynamic equivalent radial load
// P = X Fr + Y Fa for combined radial and axial loading.
func EquivalentLoad(radialFactor float64, radial units.Quantity, axialFactor float64, axial units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(radial, units.DimForce, "radial load"); err != nil {
		return units.Quantity{}, err
	}
	if err := units.CheckDimension(axial, units.DimForce, "axial load"); err != nil {
		return units.Quantity{}, err
	}
	if radialFactor < 0 || axialFactor < 0 {
		return units.Quantity{}, errors.Input("load factors must not be negative")
	}
	return radial.MulScalar(radialFactor).Add(axial.MulScalar(axialFactor))
}
