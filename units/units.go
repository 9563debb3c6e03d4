// Package units provides unit-attached quantities with dimensional analysis.
// Every physical attribute in the toolkit is a Quantity: a magnitude paired
// with a Unit. Conversions between incompatible dimensions fail with a
// typed UNITS error rather than silently coercing.
package units

import (
	"fmt"
	"strings"
)

// Dimension is an exponent vector over the seven SI base dimensions.
type Dimension struct {
	Length      int `json:"length,omitempty"`
	Mass        int `json:"mass,omitempty"`
	Time        int `json:"time,omitempty"`
	Current     int `json:"current,omitempty"`
	Temperature int `json:"temperature,omitempty"`
	Amount      int `json:"amount,omitempty"`
	Luminosity  int `json:"luminosity,omitempty"`
}

// Mul returns the dimension of a product of two quantities.
func (d Dimension) Mul(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length + o.Length,
		Mass:        d.Mass + o.Mass,
		Time:        d.Time + o.Time,
		Current:     d.Current + o.Current,
		Temperature: d.Temperature + o.Temperature,
		Amount:      d.Amount + o.Amount,
		Luminosity:  d.Luminosity + o.Luminosity,
	}
}

// Div returns the dimension of a quotient of two quantities.
func (d Dimension) Div(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length - o.Length,
		Mass:        d.Mass - o.Mass,
		Time:        d.Time - o.Time,
		Current:     d.Current - o.Current,
		Temperature: d.Temperature - o.Temperature,
		Amount:      d.Amount - o.Amount,
		Luminosity:  d.Luminosity - o.Luminosity,
	}
}

// Pow returns the dimension raised to an integer power.
func (d Dimension) Pow(n int) Dimension {
	return Dimension{
		Length:      d.Length * n,
		Mass:        d.Mass * n,
		Time:        d.Time * n,
		Current:     d.Current * n,
		Temperature: d.Temperature * n,
		Amount:      d.Amount * n,
		Luminosity:  d.Luminosity * n,
	}
}

// Equal reports whether two dimensions match exactly.
func (d Dimension) Equal(o Dimension) bool {
	return d == o
}

// IsZero reports whether the dimension is dimensionless.
func (d Dimension) IsZero() bool {
	return d == Dimension{}
}

// String renders the dimension in bracket notation, e.g. "[length]^2 [time]^-1".
func (d Dimension) String() string {
	if d.IsZero() {
		return "[dimensionless]"
	}
	parts := make([]string, 0, 7)
	appendDim := func(name string, exp int) {
		if exp == 0 {
			return
		}
		if exp == 1 {
			parts = append(parts, "["+name+"]")
			return
		}
		parts = append(parts, fmt.Sprintf("[%s]^%d", name, exp))
	}
	appendDim("length", d.Length)
	appendDim("mass", d.Mass)
	appendDim("time", d.Time)
	appendDim("current", d.Current)
	appendDim("temperature", d.Temperature)
	appendDim("amount", d.Amount)
	appendDim("luminosity", d.Luminosity)
	return strings.Join(parts, " ")
}

// Common dimension vectors.
var (
	Dimensionless = Dimension{}
	DimLength     = Dimension{Length: 1}
	DimMass       = Dimension{Mass: 1}
	DimTime       = Dimension{Time: 1}
	DimArea       = Dimension{Length: 2}
	DimVolume     = Dimension{Length: 3}
	DimForce      = Dimension{Mass: 1, Length: 1, Time: -2}
	DimPressure   = Dimension{Mass: 1, Length: -1, Time: -2}
	DimEnergy     = Dimension{Mass: 1, Length: 2, Time: -2}
	DimDensity    = Dimension{Mass: 1, Length: -3}
	DimSpeed      = Dimension{Length: 1, Time: -1}
	DimRotation   = Dimension{Time: -1}
	DimStiffness  = Dimension{Mass: 1, Time: -2}
	DimInertia    = Dimension{Mass: 1, Length: 2}
	DimTemp       = Dimension{Temperature: 1}

	// DimAreaMoment is the second moment of area, length to the fourth.
	DimAreaMoment = Dimension{Length: 4}

	// DimLinearDensity is mass per unit length.
	DimLinearDensity = Dimension{Mass: 1, Length: -1}
)

// Unit is a named scale (and optional offset) against coherent SI.
type Unit struct {
	// Symbol is the display symbol, e.g. "MPa"
	Symbol string

	// Dim is the physical dimension
	Dim Dimension

	// Scale converts a magnitude in this unit to coherent SI
	Scale float64

	// Offset is the additive SI offset (temperature scales only)
	Offset float64
}

// String returns the unit symbol.
func (u Unit) String() string {
	return u.Symbol
}

// Compatible reports whether a value in u can be converted to o.
func (u Unit) Compatible(o Unit) bool {
	return u.Dim.Equal(o.Dim)
}

// Derived builds an ad hoc unit from a symbol, scale and dimension.
func Derived(symbol string, scale float64, dim Dimension) Unit {
	return Unit{Symbol: symbol, Dim: dim, Scale: scale}
}

// Distance units
var (
	Millimeter = Unit{Symbol: "mm", Dim: DimLength, Scale: 1e-3}
	Centimeter = Unit{Symbol: "cm", Dim: DimLength, Scale: 1e-2}
	Meter      = Unit{Symbol: "m", Dim: DimLength, Scale: 1}
	Kilometer  = Unit{Symbol: "km", Dim: DimLength, Scale: 1e3}
	Inch       = Unit{Symbol: "in", Dim: DimLength, Scale: 0.0254}
	Foot       = Unit{Symbol: "ft", Dim: DimLength, Scale: 0.3048}
	Yard       = Unit{Symbol: "yd", Dim: DimLength, Scale: 0.9144}
	Mile       = Unit{Symbol: "mi", Dim: DimLength, Scale: 1609.344}
)

// Time units
var (
	Second = Unit{Symbol: "s", Dim: DimTime, Scale: 1}
	Minute = Unit{Symbol: "min", Dim: DimTime, Scale: 60}
	Hour   = Unit{Symbol: "h", Dim: DimTime, Scale: 3600}
	Day    = Unit{Symbol: "day", Dim: DimTime, Scale: 86400}
)

// Mass units
var (
	Gram     = Unit{Symbol: "g", Dim: DimMass, Scale: 1e-3}
	Kilogram = Unit{Symbol: "kg", Dim: DimMass, Scale: 1}
	Tonne    = Unit{Symbol: "t", Dim: DimMass, Scale: 1e3}
	Pound    = Unit{Symbol: "lb", Dim: DimMass, Scale: 0.45359237}
	Slug     = Unit{Symbol: "slug", Dim: DimMass, Scale: 14.593902937206364}
)

// Force units
var (
	Newton      = Unit{Symbol: "N", Dim: DimForce, Scale: 1}
	Kilonewton  = Unit{Symbol: "kN", Dim: DimForce, Scale: 1e3}
	PoundForce  = Unit{Symbol: "lbf", Dim: DimForce, Scale: 4.4482216152605}
	KipForce    = Unit{Symbol: "kip", Dim: DimForce, Scale: 4448.2216152605}
)

// Rotational speed units. Coherent SI is rad/s; revolution-based units carry
// the 2*pi factor in their scale.
var (
	RadPerSec = Unit{Symbol: "rad/s", Dim: DimRotation, Scale: 1}
	Hertz     = Unit{Symbol: "Hz", Dim: DimRotation, Scale: 6.283185307179586}
	RPM       = Unit{Symbol: "rpm", Dim: DimRotation, Scale: 0.10471975511965977}
)

// Pressure and stress units
var (
	Pascal      = Unit{Symbol: "Pa", Dim: DimPressure, Scale: 1}
	Kilopascal  = Unit{Symbol: "kPa", Dim: DimPressure, Scale: 1e3}
	Megapascal  = Unit{Symbol: "MPa", Dim: DimPressure, Scale: 1e6}
	Gigapascal  = Unit{Symbol: "GPa", Dim: DimPressure, Scale: 1e9}
	PSI         = Unit{Symbol: "psi", Dim: DimPressure, Scale: 6894.757293168361}
	KSI         = Unit{Symbol: "ksi", Dim: DimPressure, Scale: 6.894757293168361e6}
	PSF         = Unit{Symbol: "psf", Dim: DimPressure, Scale: 47.88025898033584}
)

// Area units
var (
	SqMillimeter = Unit{Symbol: "mm2", Dim: DimArea, Scale: 1e-6}
	SqCentimeter = Unit{Symbol: "cm2", Dim: DimArea, Scale: 1e-4}
	SqMeter      = Unit{Symbol: "m2", Dim: DimArea, Scale: 1}
	SqInch       = Unit{Symbol: "in2", Dim: DimArea, Scale: 6.4516e-4}
	SqFoot       = Unit{Symbol: "ft2", Dim: DimArea, Scale: 0.09290304}
)

// Volume units
var (
	CuMillimeter = Unit{Symbol: "mm3", Dim: DimVolume, Scale: 1e-9}
	CuCentimeter = Unit{Symbol: "cm3", Dim: DimVolume, Scale: 1e-6}
	CuMeter      = Unit{Symbol: "m3", Dim: DimVolume, Scale: 1}
	CuInch       = Unit{Symbol: "in3", Dim: DimVolume, Scale: 1.6387064e-5}
	CuFoot       = Unit{Symbol: "ft3", Dim: DimVolume, Scale: 0.028316846592}
)

// Second moment of area units
var (
	QuarticMillimeter = Unit{Symbol: "mm4", Dim: DimAreaMoment, Scale: 1e-12}
	QuarticMeter      = Unit{Symbol: "m4", Dim: DimAreaMoment, Scale: 1}
	QuarticInch       = Unit{Symbol: "in4", Dim: DimAreaMoment, Scale: 4.162314256e-7}
)

// Energy and torque units
var (
	Joule     = Unit{Symbol: "J", Dim: DimEnergy, Scale: 1}
	Kilojoule = Unit{Symbol: "kJ", Dim: DimEnergy, Scale: 1e3}
	BTU       = Unit{Symbol: "BTU", Dim: DimEnergy, Scale: 1055.05585262}
	FootPound = Unit{Symbol: "ft·lbf", Dim: DimEnergy, Scale: 1.3558179483314004}
	InchPound = Unit{Symbol: "in·lbf", Dim: DimEnergy, Scale: 0.1129848290276167}
)

// Density units
var (
	KgPerCuMeter  = Unit{Symbol: "kg/m3", Dim: DimDensity, Scale: 1}
	GramPerCuCm   = Unit{Symbol: "g/cm3", Dim: DimDensity, Scale: 1e3}
	PoundPerCuIn  = Unit{Symbol: "lb/in3", Dim: DimDensity, Scale: 27679.904710203125}
	PoundPerCuFt  = Unit{Symbol: "lb/ft3", Dim: DimDensity, Scale: 16.018463373960142}
)

// Linear density units
var (
	KgPerMeter   = Unit{Symbol: "kg/m", Dim: DimLinearDensity, Scale: 1}
	PoundPerFoot = Unit{Symbol: "lb/ft", Dim: DimLinearDensity, Scale: 1.4881639438785258}
)

// Stiffness units
var (
	NewtonPerMeter = Unit{Symbol: "N/m", Dim: DimStiffness, Scale: 1}
	NewtonPerMm    = Unit{Symbol: "N/mm", Dim: DimStiffness, Scale: 1e3}
	PoundPerInch   = Unit{Symbol: "lbf/in", Dim: DimStiffness, Scale: 175.12683524647637}
)

// Mass moment of inertia unit
var KilogramSqMeter = Unit{Symbol: "kg·m2", Dim: DimInertia, Scale: 1}

// Temperature units
var (
	Kelvin     = Unit{Symbol: "K", Dim: DimTemp, Scale: 1}
	Celsius    = Unit{Symbol: "degC", Dim: DimTemp, Scale: 1, Offset: 273.15}
	Fahrenheit = Unit{Symbol: "degF", Dim: DimTemp, Scale: 5.0 / 9.0, Offset: 255.3722222222222}
)

// Dimensionless unit
var Scalar = Unit{Symbol: "", Dim: Dimensionless, Scale: 1}
