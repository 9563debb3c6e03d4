// Package sections provides cross-section properties for common
// structural shapes plus a catalog of rolled wide-flange shapes.
package sections

import (
	"math"

	"mechkit/internal/errors"
	"mechkit/units"
)

// Rectangle is a solid rectangular cross-section with derived bending
// properties about the strong (horizontal centroidal) axis.
type Rectangle struct {
	// Width is the section width b
	Width units.Quantity

	// Height is the section height h
	Height units.Quantity

	// Area is the cross-sectional area
	Area units.Quantity

	// MomentOfInertia is the second moment of area about the centroid
	MomentOfInertia units.Quantity

	// SectionModulus is the elastic section modulus
	SectionModulus units.Quantity

	// RadiusOfGyration is sqrt(I/A)
	RadiusOfGyration units.Quantity

	// ExtremeFiber is the centroid-to-extreme-fiber distance
	ExtremeFiber units.Quantity
}

// NewRectangle builds a rectangular section from its width and height.
func NewRectangle(width, height units.Quantity) (*Rectangle, error) {
	if err := units.CheckDimension(width, units.DimLength, "width"); err != nil {
		return nil, err
	}
	if err := units.CheckDimension(height, units.DimLength, "height"); err != nil {
		return nil, err
	}
	if width.Value() <= 0 || height.Value() <= 0 {
		return nil, errors.Input("section dimensions must be positive")
	}

	return &Rectangle{
		Width:            width,
		Height:           height,
		Area:             width.Mul(height),
		MomentOfInertia:  width.Mul(height.Pow(3)).MulScalar(1.0 / 12.0),
		SectionModulus:   width.Mul(height.Pow(2)).MulScalar(1.0 / 6.0),
		RadiusOfGyration: height.MulScalar(1.0 / math.Sqrt(12)),
		ExtremeFiber:     height.MulScalar(0.5),
	}, nil
}

// Circle is a solid circular cross-section. Bending properties are
// identical about any centroidal axis.
type Circle struct {
	// Diameter is the section diameter d
	Diameter units.Quantity

	// Area is the cross-sectional area
	Area units.Quantity

	// MomentOfInertia is the second moment of area about the centroid
	MomentOfInertia units.Quantity

	// SectionModulus is the elastic section modulus
	SectionModulus units.Quantity

	// PolarMoment is the polar second moment of area for torsion
	PolarMoment units.Quantity

	// RadiusOfGyration is sqrt(I/A), d/4 for a solid circle
	RadiusOfGyration units.Quantity

	// ExtremeFiber is the centroid-to-extreme-fiber distance
	ExtremeFiber units.Quantity
}

// NewCircle builds a circular section from its diameter.
func NewCircle(diameter units.Quantity) (*Circle, error) {
	if err := units.CheckDimension(diameter, units.DimLength, "diameter"); err != nil {
		return nil, err
	}
	if diameter.Value() <= 0 {
		return nil, errors.Input("section diameter must be positive")
	}

	return &Circle{
		Diameter:         diameter,
		Area:             diameter.Pow(2).MulScalar(math.Pi / 4),
		MomentOfInertia:  diameter.Pow(4).MulScalar(math.Pi / 64),
		SectionModulus:   diameter.Pow(3).MulScalar(math.Pi / 32),
		PolarMoment:      diameter.Pow(4).MulScalar(math.Pi / 32),
		RadiusOfGyration: diameter.MulScalar(0.25),
		ExtremeFiber:     diameter.MulScalar(0.5),
	}, nil
}
