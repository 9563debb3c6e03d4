package units

import (
	"fmt"
	"math"
	"strconv"

	"mechkit/internal/errors"
)

// Quantity is a magnitude paired with a Unit.
// Quantities are immutable value objects; all operations return new values.
type Quantity struct {
	value float64
	unit  Unit
}

// New creates a quantity from a magnitude and unit.
func New(value float64, unit Unit) Quantity {
	return Quantity{value: value, unit: unit}
}

// NewScalar wraps a dimensionless magnitude.
func NewScalar(value float64) Quantity {
	return Quantity{value: value, unit: Scalar}
}

// Value returns the magnitude in the quantity's own unit.
func (q Quantity) Value() float64 {
	return q.value
}

// Unit returns the quantity's unit.
func (q Quantity) Unit() Unit {
	return q.unit
}

// Dimension returns the quantity's physical dimension.
func (q Quantity) Dimension() Dimension {
	return q.unit.Dim
}

// IsZero reports whether the magnitude is exactly zero.
func (q Quantity) IsZero() bool {
	return q.value == 0
}

// SI returns the magnitude expressed in coherent SI units.
func (q Quantity) SI() float64 {
	return q.value*q.unit.Scale + q.unit.Offset
}

// Convert expresses the quantity in another compatible unit.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	if !q.unit.Compatible(to) {
		return Quantity{}, errors.Units(
			fmt.Sprintf("cannot convert %s (%s) to %s (%s)",
				q.unit.Symbol, q.unit.Dim, to.Symbol, to.Dim))
	}
	value := (q.SI() - to.Offset) / to.Scale
	return Quantity{value: value, unit: to}, nil
}

// MustConvert is Convert that panics on dimension mismatch. Intended for
// conversions between units known compatible at compile time.
func (q Quantity) MustConvert(to Unit) Quantity {
	converted, err := q.Convert(to)
	if err != nil {
		panic(err)
	}
	return converted
}

// In returns the magnitude expressed in the given unit.
func (q Quantity) In(to Unit) (float64, error) {
	converted, err := q.Convert(to)
	if err != nil {
		return 0, err
	}
	return converted.value, nil
}

// Add returns the sum, expressed in q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	converted, err := o.Convert(q.unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value + converted.value, unit: q.unit}, nil
}

// Sub returns the difference, expressed in q's unit.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	converted, err := o.Convert(q.unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: q.value - converted.value, unit: q.unit}, nil
}

// normalized strips temperature-style offsets so products are well defined.
func (q Quantity) normalized() Quantity {
	if q.unit.Offset == 0 {
		return q
	}
	si := Unit{Symbol: q.unit.Symbol + "(abs)", Dim: q.unit.Dim, Scale: 1}
	return Quantity{value: q.SI(), unit: si}
}

// Mul returns the product with composed dimensions.
func (q Quantity) Mul(o Quantity) Quantity {
	a, b := q.normalized(), o.normalized()
	unit := Unit{
		Symbol: composeSymbol(a.unit.Symbol, b.unit.Symbol, "·"),
		Dim:    a.unit.Dim.Mul(b.unit.Dim),
		Scale:  a.unit.Scale * b.unit.Scale,
	}
	return Quantity{value: a.value * b.value, unit: unit}
}

// Div returns the quotient with composed dimensions.
// Division by a zero magnitude is an INPUT error.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	if o.value == 0 {
		return Quantity{}, errors.Input("division by zero quantity")
	}
	a, b := q.normalized(), o.normalized()
	unit := Unit{
		Symbol: composeSymbol(a.unit.Symbol, b.unit.Symbol, "/"),
		Dim:    a.unit.Dim.Div(b.unit.Dim),
		Scale:  a.unit.Scale / b.unit.Scale,
	}
	return Quantity{value: a.value / b.value, unit: unit}, nil
}

// MulScalar scales the magnitude, preserving the unit.
func (q Quantity) MulScalar(k float64) Quantity {
	return Quantity{value: q.value * k, unit: q.unit}
}

// Pow raises the quantity to an integer power.
func (q Quantity) Pow(n int) Quantity {
	unit := Unit{
		Symbol: fmt.Sprintf("%s^%d", q.unit.Symbol, n),
		Dim:    q.unit.Dim.Pow(n),
		Scale:  math.Pow(q.unit.Scale, float64(n)),
	}
	return Quantity{value: math.Pow(q.value, float64(n)), unit: unit}
}

// Neg returns the quantity with the magnitude negated.
func (q Quantity) Neg() Quantity {
	return Quantity{value: -q.value, unit: q.unit}
}

// EqualWithin reports whether two quantities agree within a relative
// tolerance, after conversion to a common unit. Incompatible dimensions
// never compare equal.
func (q Quantity) EqualWithin(o Quantity, tolerance float64) bool {
	converted, err := o.Convert(q.unit)
	if err != nil {
		return false
	}
	diff := math.Abs(q.value - converted.value)
	scale := math.Max(math.Abs(q.value), math.Abs(converted.value))
	if scale == 0 {
		return diff == 0
	}
	return diff/scale <= tolerance
}

// String renders "365.4 MPa" style output.
func (q Quantity) String() string {
	mag := strconv.FormatFloat(q.value, 'g', 10, 64)
	if q.unit.Symbol == "" {
		return mag
	}
	return mag + " " + q.unit.Symbol
}

// CheckDimension validates that a quantity carries the expected dimension.
// The name is used in the error message, e.g. "diameter".
func CheckDimension(q Quantity, dim Dimension, name string) error {
	if !q.unit.Dim.Equal(dim) {
		return errors.Units(
			fmt.Sprintf("%s must have dimension %s, got %s (%s)",
				name, dim, q.unit.Dim, q.unit.Symbol))
	}
	return nil
}

func composeSymbol(a, b, op string) string {
	switch {
	case a == "" && b == "":
		return ""
	case a == "":
		if op == "/" {
			return "1/" + b
		}
		return b
	case b == "":
		return a
	default:
		return a + op + b
	}
}
