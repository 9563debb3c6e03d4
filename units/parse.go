package units

import (
	"strconv"
	"strings"

	"mechkit/internal/errors"
)

// symbolTable maps unit labels to units for parsing. Includes the display
// symbols plus common aliases seen in data files and assembly definitions.
var symbolTable = map[string]Unit{
	// length
	"mm": Millimeter, "millimeter": Millimeter,
	"cm": Centimeter, "centimeter": Centimeter,
	"m": Meter, "meter": Meter,
	"km": Kilometer, "kilometer": Kilometer,
	"in": Inch, "inch": Inch,
	"ft": Foot, "foot": Foot,
	"yd": Yard, "yard": Yard,
	"mi": Mile, "mile": Mile,

	// time
	"s": Second, "sec": Second, "second": Second,
	"min": Minute, "minute": Minute,
	"h": Hour, "hr": Hour, "hour": Hour,
	"day": Day,

	// mass
	"g": Gram, "gram": Gram,
	"kg": Kilogram, "kilogram": Kilogram,
	"t": Tonne, "tonne": Tonne,
	"lb": Pound, "lbs": Pound, "pound": Pound,
	"slug": Slug,

	// force
	"N": Newton, "newton": Newton,
	"kN": Kilonewton, "kilonewton": Kilonewton,
	"lbf": PoundForce,
	"kip": KipForce,

	// rotational speed
	"rad/s": RadPerSec,
	"Hz":    Hertz, "hz": Hertz, "hertz": Hertz,
	"rpm": RPM,

	// pressure
	"Pa": Pascal, "pascal": Pascal,
	"kPa": Kilopascal,
	"MPa": Megapascal,
	"GPa": Gigapascal,
	"psi": PSI,
	"ksi": KSI,
	"psf": PSF,

	// area
	"mm2": SqMillimeter, "mm^2": SqMillimeter,
	"cm2": SqCentimeter, "cm^2": SqCentimeter,
	"m2": SqMeter, "m^2": SqMeter,
	"in2": SqInch, "in^2": SqInch, "sq_in": SqInch,
	"ft2": SqFoot, "ft^2": SqFoot, "sq_ft": SqFoot,

	// volume
	"mm3": CuMillimeter, "mm^3": CuMillimeter,
	"cm3": CuCentimeter, "cm^3": CuCentimeter,
	"m3": CuMeter, "m^3": CuMeter,
	"in3": CuInch, "in^3": CuInch, "cu_in": CuInch,
	"ft3": CuFoot, "ft^3": CuFoot, "cu_ft": CuFoot,

	// second moment of area
	"mm4": QuarticMillimeter, "mm^4": QuarticMillimeter,
	"m4": QuarticMeter, "m^4": QuarticMeter,
	"in4": QuarticInch, "in^4": QuarticInch,

	// energy and torque
	"J": Joule, "joule": Joule,
	"kJ": Kilojoule,
	"BTU": BTU, "btu": BTU,
	"ft·lbf": FootPound, "ft-lbf": FootPound, "ftlb": FootPound,
	"in·lbf": InchPound, "in-lbf": InchPound, "inlb": InchPound,

	// density
	"kg/m3": KgPerCuMeter, "kg/m^3": KgPerCuMeter,
	"g/cm3": GramPerCuCm, "g/cm^3": GramPerCuCm,
	"lb/in3": PoundPerCuIn, "lb/in^3": PoundPerCuIn,
	"lb/ft3": PoundPerCuFt, "lb/ft^3": PoundPerCuFt,

	// linear density
	"kg/m":  KgPerMeter,
	"lb/ft": PoundPerFoot,

	// stiffness
	"N/m":    NewtonPerMeter,
	"N/mm":   NewtonPerMm,
	"lbf/in": PoundPerInch,

	// temperature
	"K": Kelvin, "degK": Kelvin,
	"degC": Celsius, "C": Celsius,
	"degF": Fahrenheit, "F": Fahrenheit,
}

// LookupUnit resolves a unit label to a Unit.
func LookupUnit(label string) (Unit, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Scalar, nil
	}
	if unit, ok := symbolTable[label]; ok {
		return unit, nil
	}
	return Unit{}, errors.NotFound("unit", label)
}

// Parse reads a quantity string of the form "<magnitude> <unit>", e.g.
// "8 mm", "365.4 MPa", "100rpm". A bare number parses as dimensionless.
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quantity{}, errors.Input("empty quantity string")
	}

	// Split the leading numeric token from the unit label.
	split := len(s)
	for i, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			continue
		}
		if r == 'e' || r == 'E' {
			// Exponent only counts as numeric when followed by a digit or sign.
			if i+1 < len(s) {
				next := s[i+1]
				if (next >= '0' && next <= '9') || next == '-' || next == '+' {
					continue
				}
			}
		}
		split = i
		break
	}

	magnitude, err := strconv.ParseFloat(strings.TrimSpace(s[:split]), 64)
	if err != nil {
		return Quantity{}, errors.Parsing("invalid quantity magnitude in "+strconv.Quote(s), err)
	}

	unit, err := LookupUnit(s[split:])
	if err != nil {
		return Quantity{}, errors.Wrapf(errors.TypeParsing, err, "unknown unit in %q", s)
	}

	return New(magnitude, unit), nil
}
