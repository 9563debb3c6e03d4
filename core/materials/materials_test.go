package materials

import (
	"math"
	"testing"

	"mechkit/internal/errors"
	"mechkit/units"
)

func TestCarbonSteel1050Annealed(t *testing.T) {
	reg := NewCarbonSteelRegistry()

	steel, err := reg.Get("1050", "Annealed")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got := steel.Density.Value(); math.Abs(got-7.7) > 1e-9 {
		t.Errorf("Expected density 7.7 g/cm3, got %v", got)
	}
	kgm3, err := steel.Density.In(units.KgPerCuMeter)
	if err != nil {
		t.Fatalf("Density conversion failed: %v", err)
	}
	if math.Abs(kgm3-7700) > 1e-9 {
		t.Errorf("Expected density 7700 kg/m3, got %v", kgm3)
	}

	gpa, err := steel.ModulusElasticity.In(units.Gigapascal)
	if err != nil {
		t.Fatalf("Modulus conversion failed: %v", err)
	}
	if math.Abs(gpa-207) > 1e-9 {
		t.Errorf("Expected modulus 207 GPa, got %v", gpa)
	}

	mpa, err := steel.YieldStrength.In(units.Megapascal)
	if err != nil {
		t.Fatalf("Yield conversion failed: %v", err)
	}
	if math.Abs(mpa-365.4) > 1e-9 {
		t.Errorf("Expected yield 365.4 MPa, got %v", mpa)
	}

	// Documented reference conversion.
	ksi, err := steel.YieldStrength.In(units.KSI)
	if err != nil {
		t.Fatalf("Yield ksi conversion failed: %v", err)
	}
	if math.Abs(ksi-52.9968) > 0.0001 {
		t.Errorf("Expected yield 52.9968 ksi, got %.6f", ksi)
	}
}

func TestCarbonSteelLookupCaseInsensitive(t *testing.T) {
	reg := NewCarbonSteelRegistry()
	if _, err := reg.Get("1050", "annealed"); err != nil {
		t.Errorf("Condition lookup should be case-insensitive: %v", err)
	}
}

func TestUnknownDesignationNotFound(t *testing.T) {
	reg := NewCarbonSteelRegistry()

	_, err := reg.Get("9999", "Annealed")
	if err == nil {
		t.Fatal("Expected error for unknown designation")
	}
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func TestShearModulusDerived(t *testing.T) {
	reg := NewCarbonSteelRegistry()
	steel, err := reg.Get("1050", "Annealed")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	// G = E / (2 * (1 + nu)) = 207 / (2 * 1.29) GPa
	want := 207.0 / (2 * 1.29)
	gpa, err := steel.ShearModulus.In(units.Gigapascal)
	if err != nil {
		t.Fatalf("Shear modulus conversion failed: %v", err)
	}
	if math.Abs(gpa-want) > 1e-9 {
		t.Errorf("Expected shear modulus %.4f GPa, got %.4f", want, gpa)
	}
}

func TestStainlessRegistry(t *testing.T) {
	reg := NewStainlessSteelRegistry()

	if reg.Count() == 0 {
		t.Fatal("Stainless registry is empty")
	}

	ss, err := reg.Get("304", "Annealed")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ss.Base != BaseStainlessSteel {
		t.Errorf("Expected stainless base, got %q", ss.Base)
	}
	mpa, _ := ss.YieldStrength.In(units.Megapascal)
	if math.Abs(mpa-215) > 1e-9 {
		t.Errorf("Expected 304 yield 215 MPa, got %v", mpa)
	}
}

func TestCastIronRegistry(t *testing.T) {
	reg := NewCastIronRegistry()

	iron, err := reg.Get("Class 30", "As Cast")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	mpa, _ := iron.TensileStrength.In(units.Megapascal)
	if math.Abs(mpa-214) > 1e-9 {
		t.Errorf("Expected Class 30 tensile 214 MPa, got %v", mpa)
	}
	if iron.CompressiveStrength.Value() <= iron.TensileStrength.Value() {
		t.Error("Gray iron compressive strength should exceed tensile strength")
	}

	_, err = reg.Get("Class 99", "As Cast")
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func TestPolymerRegistry(t *testing.T) {
	reg := NewPolymerRegistry()

	nylon, err := reg.Get("Nylon 6/6")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if nylon.Density.Value() != 1.14 {
		t.Errorf("Expected nylon density 1.14 g/cm3, got %v", nylon.Density.Value())
	}
}

func TestRegistryListDeterministic(t *testing.T) {
	a := NewCarbonSteelRegistry().List()
	b := NewCarbonSteelRegistry().List()
	if len(a) != len(b) {
		t.Fatalf("List lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Designation != b[i].Designation || a[i].Condition != b[i].Condition {
			t.Fatalf("List order not deterministic at index %d", i)
		}
	}
}

func TestNewCustomMetal(t *testing.T) {
	m, err := NewCustomMetal("Maraging 300", "Aged",
		units.New(8.0, units.GramPerCuCm),
		units.New(190, units.Gigapascal),
		units.New(1900, units.Megapascal),
		units.New(2000, units.Megapascal),
		0.3)
	if err != nil {
		t.Fatalf("NewCustomMetal failed: %v", err)
	}
	if m.Base != BaseCustom {
		t.Errorf("Expected custom base, got %q", m.Base)
	}

	// Density passed with a pressure unit must be rejected.
	_, err = NewCustomMetal("Bad", "X",
		units.New(8.0, units.Megapascal),
		units.New(190, units.Gigapascal),
		units.New(1900, units.Megapascal),
		units.New(2000, units.Megapascal),
		0.3)
	if !errors.IsType(err, errors.TypeUnits) {
		t.Errorf("Expected UNITS_ERROR, got %v", err)
	}
}
