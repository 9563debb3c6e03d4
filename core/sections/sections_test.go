package sections

import (
	"math"
	"testing"

	"mechkit/internal/errors"
	"mechkit/units"
)

func TestRectangleProperties(t *testing.T) {
	rect, err := NewRectangle(units.New(2, units.Inch), units.New(6, units.Inch))
	if err != nil {
		t.Fatalf("NewRectangle failed: %v", err)
	}

	if got, _ := rect.Area.In(units.SqInch); math.Abs(got-12) > 1e-9 {
		t.Errorf("Expected area 12 in2, got %v", got)
	}
	// I = b h^3 / 12 = 2 * 216 / 12 = 36 in4.
	if got, _ := rect.MomentOfInertia.In(units.QuarticInch); math.Abs(got-36) > 1e-9 {
		t.Errorf("Expected inertia 36 in4, got %v", got)
	}
	// S = b h^2 / 6 = 12 in3.
	if got, _ := rect.SectionModulus.In(units.CuInch); math.Abs(got-12) > 1e-9 {
		t.Errorf("Expected section modulus 12 in3, got %v", got)
	}
	// r = h / sqrt(12) = 0.289 h.
	if got, _ := rect.RadiusOfGyration.In(units.Inch); math.Abs(got-6/math.Sqrt(12)) > 1e-9 {
		t.Errorf("Expected radius of gyration %v in, got %v", 6/math.Sqrt(12), got)
	}
	if got, _ := rect.ExtremeFiber.In(units.Inch); math.Abs(got-3) > 1e-9 {
		t.Errorf("Expected extreme fiber 3 in, got %v", got)
	}
}

func TestRectangleValidation(t *testing.T) {
	if _, err := NewRectangle(units.New(2, units.Newton), units.New(6, units.Inch)); !errors.IsType(err, errors.TypeUnits) {
		t.Errorf("Expected UNITS_ERROR, got %v", err)
	}
	if _, err := NewRectangle(units.New(0, units.Inch), units.New(6, units.Inch)); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("Expected INPUT_ERROR, got %v", err)
	}
}

func TestCircleProperties(t *testing.T) {
	circle, err := NewCircle(units.New(4, units.Inch))
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}

	if got, _ := circle.Area.In(units.SqInch); math.Abs(got-math.Pi*4) > 1e-9 {
		t.Errorf("Expected area %v in2, got %v", math.Pi*4, got)
	}
	// I = pi d^4 / 64 = 4 pi.
	if got, _ := circle.MomentOfInertia.In(units.QuarticInch); math.Abs(got-math.Pi*4) > 1e-9 {
		t.Errorf("Expected inertia %v in4, got %v", math.Pi*4, got)
	}
	// S = pi d^3 / 32 = 2 pi.
	if got, _ := circle.SectionModulus.In(units.CuInch); math.Abs(got-math.Pi*2) > 1e-9 {
		t.Errorf("Expected section modulus %v in3, got %v", math.Pi*2, got)
	}
	// J = 2 I for a solid circle.
	if got, _ := circle.PolarMoment.In(units.QuarticInch); math.Abs(got-math.Pi*8) > 1e-9 {
		t.Errorf("Expected polar moment %v in4, got %v", math.Pi*8, got)
	}
	if got, _ := circle.RadiusOfGyration.In(units.Inch); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected radius of gyration 1 in, got %v", got)
	}
}

func TestCircleMetricUnits(t *testing.T) {
	circle, err := NewCircle(units.New(40, units.Millimeter))
	if err != nil {
		t.Fatalf("NewCircle failed: %v", err)
	}
	want := math.Pi / 4 * 40 * 40
	if got, _ := circle.Area.In(units.SqMillimeter); math.Abs(got-want) > 1e-6 {
		t.Errorf("Expected area %v mm2, got %v", want, got)
	}
}

func TestRolledSectionRegistry(t *testing.T) {
	reg := NewRolledSectionRegistry()

	if reg.Count() != 25 {
		t.Errorf("Expected 25 pre-configured W-shapes, got %d", reg.Count())
	}

	section, err := reg.Get("W4X13")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got, _ := section.Area.In(units.SqInch); math.Abs(got-3.83) > 1e-9 {
		t.Errorf("Expected area 3.83 in2, got %v", got)
	}
	if got, _ := section.Ix.In(units.QuarticInch); math.Abs(got-11.3) > 1e-9 {
		t.Errorf("Expected Ix 11.3 in4, got %v", got)
	}
	if got, _ := section.Weight.In(units.PoundPerFoot); math.Abs(got-13) > 1e-9 {
		t.Errorf("Expected weight 13 lb/ft, got %v", got)
	}

	// Lookup normalizes case and spacing.
	if _, err := reg.Get("w4 x 13"); err != nil {
		t.Errorf("Case-insensitive lookup failed: %v", err)
	}

	_, err = reg.Get("W99X999")
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}
