package fasteners

import (
	"math"
	"testing"

	"mechkit/internal/errors"
	"mechkit/units"
)

func TestMetricThreadM8(t *testing.T) {
	thread, err := NewMetricThread("M8 X 1.25")
	if err != nil {
		t.Fatalf("NewMetricThread failed: %v", err)
	}

	if got, _ := thread.MajorDiameter.In(units.Millimeter); math.Abs(got-8.0) > 1e-9 {
		t.Errorf("Expected major diameter 8.0 mm, got %v", got)
	}
	if got, _ := thread.MinorDiameter.In(units.Millimeter); math.Abs(got-6.47) > 0.005 {
		t.Errorf("Expected minor diameter 6.47 mm, got %v", got)
	}
	if thread.Pitch != 1.25 {
		t.Errorf("Expected pitch 1.25, got %v", thread.Pitch)
	}
	if got, _ := thread.StressArea.In(units.SqMillimeter); math.Abs(got-36.6) > 0.05 {
		t.Errorf("Expected stress area 36.6 mm2, got %v", got)
	}
	if thread.Series != "coarse" {
		t.Errorf("M8 X 1.25 should be the coarse series, got %q", thread.Series)
	}
}

func TestMetricThreadParsing(t *testing.T) {
	// Size strings normalize regardless of spacing and case.
	for _, size := range []string{"M8 X 1.25", "m8x1.25", "M8X1.25", " m8 x 1.25 "} {
		thread, err := NewMetricThread(size)
		if err != nil {
			t.Errorf("NewMetricThread(%q) failed: %v", size, err)
			continue
		}
		if thread.Designation != "M8 X 1.25" {
			t.Errorf("NewMetricThread(%q): expected designation \"M8 X 1.25\", got %q", size, thread.Designation)
		}
	}
}

func TestMetricThreadInvalidSize(t *testing.T) {
	for _, size := range []string{"", "8 X 1.25", "M8", "1/4-20 UNC"} {
		_, err := NewMetricThread(size)
		if !errors.IsType(err, errors.TypeParsing) {
			t.Errorf("NewMetricThread(%q): expected PARSING_ERROR, got %v", size, err)
		}
	}

	_, err := NewMetricThread("M8 X 9")
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("Pitch larger than diameter should be an INPUT_ERROR, got %v", err)
	}
}

func TestMetricThreadRegistry(t *testing.T) {
	reg := NewMetricThreadRegistry()

	if reg.Count() == 0 {
		t.Fatal("Metric thread registry is empty")
	}

	thread, err := reg.Get("m8 x 1.25")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if thread.Designation != "M8 X 1.25" {
		t.Errorf("Expected M8 X 1.25, got %q", thread.Designation)
	}

	// Standard-looking but unlisted size.
	_, err = reg.Get("M8 X 0.75")
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("Expected NOT_FOUND, got %v", err)
	}
}

func TestMetricFineSeries(t *testing.T) {
	reg := NewMetricThreadRegistry()
	thread, err := reg.Get("M10 X 1.25")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if thread.Series != "fine" {
		t.Errorf("M10 X 1.25 should be the fine series, got %q", thread.Series)
	}
}
