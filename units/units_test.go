package units

import (
	"math"
	"testing"

	"mechkit/internal/errors"
)

func TestConvertPressure(t *testing.T) {
	// Documented reference point: 365.4 MPa is about 52.9968 ksi.
	yield := New(365.4, Megapascal)

	ksi, err := yield.In(KSI)
	if err != nil {
		t.Fatalf("Convert to ksi failed: %v", err)
	}
	if math.Abs(ksi-52.9968) > 0.0001 {
		t.Errorf("Expected 52.9968 ksi, got %.6f", ksi)
	}

	// Round trip back to MPa.
	back := New(ksi, KSI).MustConvert(Megapascal)
	if math.Abs(back.Value()-365.4) > 1e-9 {
		t.Errorf("Round trip lost precision: %.12f", back.Value())
	}
}

func TestConvertLength(t *testing.T) {
	tests := []struct {
		value float64
		from  Unit
		to    Unit
		want  float64
	}{
		{25.4, Millimeter, Inch, 1.0},
		{1.0, Foot, Inch, 12.0},
		{1.0, Meter, Millimeter, 1000.0},
		{1.0, Mile, Foot, 5280.0},
	}
	for _, tt := range tests {
		got, err := New(tt.value, tt.from).In(tt.to)
		if err != nil {
			t.Fatalf("%v %s -> %s: %v", tt.value, tt.from, tt.to, err)
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v %s -> %s: expected %v, got %v", tt.value, tt.from, tt.to, tt.want, got)
		}
	}
}

func TestConvertDensity(t *testing.T) {
	density := New(7.7, GramPerCuCm)
	kgm3, err := density.In(KgPerCuMeter)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if math.Abs(kgm3-7700) > 1e-9 {
		t.Errorf("Expected 7700 kg/m3, got %v", kgm3)
	}
}

func TestConvertTemperature(t *testing.T) {
	boiling := New(100, Celsius)

	f, err := boiling.In(Fahrenheit)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if math.Abs(f-212) > 1e-9 {
		t.Errorf("Expected 212 degF, got %v", f)
	}

	k, err := boiling.In(Kelvin)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if math.Abs(k-373.15) > 1e-9 {
		t.Errorf("Expected 373.15 K, got %v", k)
	}
}

func TestConvertIncompatibleDimensions(t *testing.T) {
	length := New(8, Millimeter)

	_, err := length.Convert(Megapascal)
	if err == nil {
		t.Fatal("Expected error converting length to pressure")
	}
	if !errors.IsType(err, errors.TypeUnits) {
		t.Errorf("Expected UNITS_ERROR, got %v", err)
	}
}

func TestDimensionComposition(t *testing.T) {
	force := New(1000, Newton)
	area := New(100, SqMillimeter)

	stress, err := force.Div(area)
	if err != nil {
		t.Fatalf("Div failed: %v", err)
	}
	if !stress.Dimension().Equal(DimPressure) {
		t.Errorf("Force/area should be pressure, got %s", stress.Dimension())
	}

	mpa, err := stress.In(Megapascal)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if math.Abs(mpa-10) > 1e-9 {
		t.Errorf("1000 N / 100 mm2 should be 10 MPa, got %v", mpa)
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := New(1, Meter).Div(NewScalar(0))
	if err == nil {
		t.Fatal("Expected error dividing by zero quantity")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("Expected INPUT_ERROR, got %v", err)
	}
}

func TestAddSub(t *testing.T) {
	sum, err := New(1, Meter).Add(New(500, Millimeter))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if math.Abs(sum.Value()-1.5) > 1e-9 {
		t.Errorf("1 m + 500 mm should be 1.5 m, got %v", sum.Value())
	}
	if sum.Unit() != Meter {
		t.Errorf("Sum should keep the receiver's unit, got %s", sum.Unit())
	}

	_, err = New(1, Meter).Add(New(1, Kilogram))
	if !errors.IsType(err, errors.TypeUnits) {
		t.Errorf("Adding mass to length should be a UNITS_ERROR, got %v", err)
	}
}

func TestPow(t *testing.T) {
	area := New(2, Meter).Pow(2)
	if !area.Dimension().Equal(DimArea) {
		t.Errorf("Length^2 should be area, got %s", area.Dimension())
	}
	if math.Abs(area.SI()-4) > 1e-9 {
		t.Errorf("Expected 4 m2, got %v", area.SI())
	}
}

func TestEqualWithin(t *testing.T) {
	a := New(365.4, Megapascal)
	b := New(52.9968, KSI)
	if !a.EqualWithin(b, 1e-4) {
		t.Error("365.4 MPa should match 52.9968 ksi within tolerance")
	}
	if a.EqualWithin(New(1, Meter), 1) {
		t.Error("Incompatible dimensions must never compare equal")
	}
}

func TestCheckDimension(t *testing.T) {
	if err := CheckDimension(New(3, Millimeter), DimLength, "diameter"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	err := CheckDimension(New(3, Kilogram), DimLength, "diameter")
	if !errors.IsType(err, errors.TypeUnits) {
		t.Errorf("Expected UNITS_ERROR, got %v", err)
	}
}

func TestQuantityString(t *testing.T) {
	if got := New(365.4, Megapascal).String(); got != "365.4 MPa" {
		t.Errorf("Expected '365.4 MPa', got %q", got)
	}
	if got := NewScalar(1.25).String(); got != "1.25" {
		t.Errorf("Expected '1.25', got %q", got)
	}
}
