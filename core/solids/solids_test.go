package solids

import (
	"math"
	"testing"

	"mechkit/internal/errors"
	"mechkit/units"
)

func TestMassRod(t *testing.T) {
	mass, err := MassRod(
		units.New(20, units.Millimeter),
		units.New(1, units.Meter),
		units.New(7.85, units.GramPerCuCm))
	if err != nil {
		t.Fatalf("MassRod failed: %v", err)
	}

	want := math.Pi / 4 * 0.02 * 0.02 * 1.0 * 7850
	if got, _ := mass.In(units.Kilogram); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected mass %.6f kg, got %v", want, got)
	}
}

func TestMassRodValidation(t *testing.T) {
	length := units.New(1, units.Meter)
	density := units.New(7.85, units.GramPerCuCm)

	if _, err := MassRod(units.New(20, units.Newton), length, density); !errors.IsType(err, errors.TypeUnits) {
		t.Errorf("Expected UNITS_ERROR for force-valued diameter, got %v", err)
	}
	if _, err := MassRod(units.New(20, units.Millimeter), length, units.New(0, units.GramPerCuCm)); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("Expected INPUT_ERROR for zero density, got %v", err)
	}
}

func TestRodITransverse(t *testing.T) {
	moment, err := RodITransverse(units.New(12, units.Kilogram), units.New(1, units.Meter))
	if err != nil {
		t.Fatalf("RodITransverse failed: %v", err)
	}
	if got, _ := moment.In(units.KilogramSqMeter); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected 1 kg*m2, got %v", got)
	}
}

func TestDiskMoments(t *testing.T) {
	mass := units.New(8, units.Kilogram)
	dia := units.New(1, units.Meter)

	axial, err := DiskIAxial(mass, dia)
	if err != nil {
		t.Fatalf("DiskIAxial failed: %v", err)
	}
	if got, _ := axial.In(units.KilogramSqMeter); math.Abs(got-1) > 1e-12 {
		t.Errorf("Expected axial moment 1 kg*m2, got %v", got)
	}

	transverse, err := DiskITransverse(mass, dia)
	if err != nil {
		t.Fatalf("DiskITransverse failed: %v", err)
	}
	if got, _ := transverse.In(units.KilogramSqMeter); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Expected transverse moment 0.5 kg*m2, got %v", got)
	}
}

func TestMassRectPrism(t *testing.T) {
	mass, err := MassRectPrism(
		units.New(2, units.Meter),
		units.New(0.5, units.Meter),
		units.New(0.25, units.Meter),
		units.New(1000, units.KgPerCuMeter))
	if err != nil {
		t.Fatalf("MassRectPrism failed: %v", err)
	}
	if got, _ := mass.In(units.Kilogram); math.Abs(got-250) > 1e-9 {
		t.Errorf("Expected 250 kg, got %v", got)
	}
}

func TestRectPrismI(t *testing.T) {
	// (m/12)(a^2 + b^2) = (12/12)(4 + 1) = 5.
	moment, err := RectPrismI(units.New(12, units.Kilogram), units.New(2, units.Meter), units.New(1, units.Meter))
	if err != nil {
		t.Fatalf("RectPrismI failed: %v", err)
	}
	if got, _ := moment.In(units.KilogramSqMeter); math.Abs(got-5) > 1e-12 {
		t.Errorf("Expected 5 kg*m2, got %v", got)
	}
}

func TestMassCylinderHollow(t *testing.T) {
	mass, err := MassCylinder(
		units.New(100, units.Millimeter),
		units.New(60, units.Millimeter),
		units.New(1, units.Meter),
		units.New(7.85, units.GramPerCuCm))
	if err != nil {
		t.Fatalf("MassCylinder failed: %v", err)
	}

	want := math.Pi / 4 * (0.1*0.1 - 0.06*0.06) * 1.0 * 7850
	if got, _ := mass.In(units.Kilogram); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected mass %.6f kg, got %v", want, got)
	}

	// Inner diameter at or above outer diameter is rejected.
	_, err = MassCylinder(
		units.New(60, units.Millimeter),
		units.New(100, units.Millimeter),
		units.New(1, units.Meter),
		units.New(7.85, units.GramPerCuCm))
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("Expected INPUT_ERROR, got %v", err)
	}
}

func TestCylinderMoments(t *testing.T) {
	mass := units.New(8, units.Kilogram)
	outer := units.New(1, units.Meter)
	inner := units.New(0.5, units.Meter)

	axial, err := CylinderIAxial(mass, outer, inner)
	if err != nil {
		t.Fatalf("CylinderIAxial failed: %v", err)
	}
	// (8/8)(1 + 0.25) = 1.25.
	if got, _ := axial.In(units.KilogramSqMeter); math.Abs(got-1.25) > 1e-12 {
		t.Errorf("Expected 1.25 kg*m2, got %v", got)
	}

	transverse, err := CylinderITransverse(mass, outer, inner, units.New(3, units.Meter))
	if err != nil {
		t.Fatalf("CylinderITransverse failed: %v", err)
	}
	// (8/48)(3 + 0.75 + 36) = 6.625.
	if got, _ := transverse.In(units.KilogramSqMeter); math.Abs(got-6.625) > 1e-12 {
		t.Errorf("Expected 6.625 kg*m2, got %v", got)
	}
}
