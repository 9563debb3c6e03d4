package assembly

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"mechkit/internal/errors"
	"mechkit/units"
)

const sampleAssembly = `
material "hardened_4140" {
  condition          = "Q&T"
  density            = "7.85 g/cm3"
  modulus_elasticity = "205 GPa"
  poisson_ratio      = 0.29
  yield_strength     = "655 MPa"
  tensile_strength   = "1020 MPa"
}

screw "cover_bolts" {
  thread    = "M8 X 1.25"
  grade     = "8.8"
  length    = "30 mm"
  quantity  = 8
  unit_cost = "0.35"
}

screw "inch_bolt" {
  thread = "1/4-20 UNC, Class 3A"
  grade  = "10.9"
  length = "25 mm"
}

gear_pair "drive" {
  pinion_teeth = 100
  gear_teeth   = 300
  pinion_dia   = "10 in"
  thickness    = "2 in"
  speed        = "100 rpm"
}

spring "return_spring" {
  wire_dia      = "5 mm"
  coil_dia      = "40 mm"
  active_coils  = 10
  shear_modulus = "79.3 GPa"
  quantity      = 2
  unit_cost     = 4.10
}

shaft "main_shaft" {
  diameter = "20 mm"
  length   = "1 m"
  material = "1050 Annealed"
}

shaft "custom_shaft" {
  diameter = "20 mm"
  length   = "0.5 m"
  material = "hardened_4140"
}
`

func TestParseSampleAssembly(t *testing.T) {
	asm, err := NewParser().Parse([]byte(sampleAssembly), "sample.mech.hcl")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if asm.ComponentCount() != 6 {
		t.Errorf("Expected 6 components, got %d", asm.ComponentCount())
	}
	if len(asm.Materials) != 1 {
		t.Fatalf("Expected 1 custom material, got %d", len(asm.Materials))
	}

	if len(asm.Screws) != 2 {
		t.Fatalf("Expected 2 screws, got %d", len(asm.Screws))
	}
	bolts := asm.Screws[0]
	if bolts.Name != "cover_bolts" || bolts.Quantity != 8 {
		t.Errorf("Unexpected screw component %+v", bolts)
	}
	if !bolts.UnitCost.Equal(decimal.NewFromFloat(0.35)) {
		t.Errorf("Expected unit cost 0.35, got %s", bolts.UnitCost)
	}
	if bolts.Screw.Thread.Label() != "M8 X 1.25" {
		t.Errorf("Unexpected thread %q", bolts.Screw.Thread.Label())
	}
	if asm.Screws[1].Screw.Thread.Label() != "1/4-20 UNC, Class 3A" {
		t.Errorf("Unexpected unified thread %q", asm.Screws[1].Screw.Thread.Label())
	}
	if asm.Screws[1].Quantity != 1 {
		t.Errorf("Expected default quantity 1, got %d", asm.Screws[1].Quantity)
	}

	if len(asm.GearPairs) != 1 {
		t.Fatalf("Expected 1 gear pair, got %d", len(asm.GearPairs))
	}
	drive := asm.GearPairs[0]
	speed, err := drive.Pair.DrivenSpeed(drive.Speed)
	if err != nil {
		t.Fatalf("DrivenSpeed failed: %v", err)
	}
	if got, _ := speed.In(units.RPM); math.Abs(got-100.0/3) > 1e-9 {
		t.Errorf("Expected driven speed 33.33 rpm, got %v", got)
	}
	if got, _ := drive.Pair.Driving.FaceWidth.In(units.Inch); math.Abs(got-2) > 1e-9 {
		t.Errorf("Expected 2 in face width on the pinion, got %v", got)
	}

	if len(asm.Springs) != 1 {
		t.Fatalf("Expected 1 spring, got %d", len(asm.Springs))
	}
	if asm.Springs[0].Spring.Index != 8 {
		t.Errorf("Expected spring index 8, got %v", asm.Springs[0].Spring.Index)
	}

	if len(asm.Shafts) != 2 {
		t.Fatalf("Expected 2 shafts, got %d", len(asm.Shafts))
	}
	main := asm.Shafts[0]
	wantMass := math.Pi / 4 * 0.02 * 0.02 * 1.0 * 7700
	if got, _ := main.Mass.In(units.Kilogram); math.Abs(got-wantMass) > 1e-9 {
		t.Errorf("Expected shaft mass %.4f kg, got %v", wantMass, got)
	}

	// The second shaft resolves the file-local custom metal.
	if asm.Shafts[1].Material.Designation != "hardened_4140" {
		t.Errorf("Expected custom material, got %q", asm.Shafts[1].Material.Designation)
	}
}

func TestParseUnknownDesignation(t *testing.T) {
	src := `
screw "bad" {
  thread = "1/4-99 UNC"
  grade  = "8.8"
  length = "25 mm"
}
`
	_, err := NewParser().Parse([]byte(src), "bad.mech.hcl")
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func TestParseMissingAttribute(t *testing.T) {
	src := `
shaft "bad" {
  diameter = "20 mm"
  material = "1050 Annealed"
}
`
	_, err := NewParser().Parse([]byte(src), "bad.mech.hcl")
	if !errors.IsType(err, errors.TypeParsing) {
		t.Fatalf("Expected PARSING_ERROR, got %v", err)
	}
	if !strings.Contains(err.Error(), "length") {
		t.Errorf("Expected the missing attribute name in %q", err.Error())
	}
}

func TestParseBadQuantityString(t *testing.T) {
	src := `
shaft "bad" {
  diameter = "20 bananas"
  length   = "1 m"
  material = "1050 Annealed"
}
`
	_, err := NewParser().Parse([]byte(src), "bad.mech.hcl")
	if err == nil {
		t.Fatal("Expected an error for an unknown unit")
	}
}

func TestParseMalformedHCL(t *testing.T) {
	_, err := NewParser().Parse([]byte(`screw "x" {`), "broken.mech.hcl")
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("Expected PARSING_ERROR, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken.mech.hcl") {
		t.Errorf("Expected filename in diagnostics, got %q", err.Error())
	}
}

func TestParseUnknownMaterial(t *testing.T) {
	src := `
shaft "bad" {
  diameter = "20 mm"
  length   = "1 m"
  material = "unobtainium Annealed"
}
`
	_, err := NewParser().Parse([]byte(src), "bad.mech.hcl")
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}
