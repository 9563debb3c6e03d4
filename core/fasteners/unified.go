package fasteners

import (
	"strings"

	"mechkit/internal/errors"
	"mechkit/units"
)

// UnifiedThread contains dimensional attributes for an external unified
// (inch) screw thread in a given fit class. Immutable once constructed.
type UnifiedThread struct {
	// Designation is the full size string, e.g. "1/4-20 UNC"
	Designation string

	// Size is the fractional or numbered size, e.g. "1/4" or "#8"
	Size string

	// ThreadsPerInch is the thread count per inch
	ThreadsPerInch float64

	// Series is the thread series: UNC, UNF, UNEF or UN
	Series string

	// FitClass is the external fit class: 1A, 2A or 3A
	FitClass string

	// Allowance is the fundamental deviation from basic size
	Allowance units.Quantity

	// MajorDiameter is the basic major diameter
	MajorDiameter units.Quantity

	// MajorDiameterMax and MajorDiameterMin bound the as-made major diameter
	MajorDiameterMax units.Quantity
	MajorDiameterMin units.Quantity

	// PitchDiameterMax and PitchDiameterMin bound the pitch diameter
	PitchDiameterMax units.Quantity
	PitchDiameterMin units.Quantity

	// MinorDiameter is the external thread minor diameter
	MinorDiameter units.Quantity

	// StressArea is the tensile stress area
	StressArea units.Quantity
}

// Label returns the designation with fit class, e.g. "1/4-20 UNC, Class 2A".
func (t *UnifiedThread) Label() string {
	return t.Designation + ", Class " + t.FitClass
}

// Nominal returns the basic major diameter.
func (t *UnifiedThread) Nominal() units.Quantity {
	return t.MajorDiameter
}

// Area returns the tensile stress area.
func (t *UnifiedThread) Area() units.Quantity {
	return t.StressArea
}

// String returns the labeled designation.
func (t *UnifiedThread) String() string {
	return t.Label()
}

// DefaultFitClass is the most common external fit class.
const DefaultFitClass = "2A"

func unifiedKey(designation, fitClass string) string {
	return strings.ToLower(strings.Join(strings.Fields(designation), " ")) + "|" + strings.ToUpper(fitClass)
}

// UnifiedThreadRegistry wraps the bundled unified screw thread table.
type UnifiedThreadRegistry struct {
	entries map[string]*UnifiedThread
	order   []*UnifiedThread
}

// NewUnifiedThreadRegistry loads the bundled unified thread table.
func NewUnifiedThreadRegistry() *UnifiedThreadRegistry {
	const table = "unified_screw_threads.csv"
	r := &UnifiedThreadRegistry{entries: make(map[string]*UnifiedThread)}
	for _, row := range readTable(table) {
		designation := row["size"]
		thread := &UnifiedThread{
			Designation:      designation,
			Size:             strings.SplitN(designation, "-", 2)[0],
			ThreadsPerInch:   tableFloat(row, "tpi", table),
			Series:           row["series"],
			FitClass:         row["fit_class"],
			Allowance:        units.New(tableFloat(row, "allowance", table), units.Inch),
			MajorDiameter:    units.New(tableFloat(row, "basic_major_dia", table), units.Inch),
			MajorDiameterMax: units.New(tableFloat(row, "max_major_dia", table), units.Inch),
			MajorDiameterMin: units.New(tableFloat(row, "min_major_dia", table), units.Inch),
			PitchDiameterMax: units.New(tableFloat(row, "max_pitch_dia", table), units.Inch),
			PitchDiameterMin: units.New(tableFloat(row, "min_pitch_dia", table), units.Inch),
			MinorDiameter:    units.New(tableFloat(row, "minor_dia", table), units.Inch),
			StressArea:       units.New(tableFloat(row, "stress_area", table), units.SqInch),
		}
		r.entries[unifiedKey(thread.Designation, thread.FitClass)] = thread
		r.order = append(r.order, thread)
	}
	return r
}

// Count returns the number of pre-configured entries.
func (r *UnifiedThreadRegistry) Count() int {
	return len(r.order)
}

// Get looks up a thread by designation and fit class, e.g.
// Get("1/4-20 UNC", "2A"). An empty fit class means the default, 2A.
func (r *UnifiedThreadRegistry) Get(designation, fitClass string) (*UnifiedThread, error) {
	if fitClass == "" {
		fitClass = DefaultFitClass
	}
	if thread, ok := r.entries[unifiedKey(designation, fitClass)]; ok {
		return thread, nil
	}
	return nil, errors.NotFound("unified thread", designation+" class "+fitClass).
		WithContext("designation", designation).
		WithContext("fit_class", fitClass)
}

// List returns all entries in table order.
func (r *UnifiedThreadRegistry) List() []*UnifiedThread {
	out := make([]*UnifiedThread, len(r.order))
	copy(out, r.order)
	return out
}

// ListSeries returns all entries of one series, in table order.
func (r *UnifiedThreadRegistry) ListSeries(series string) []*UnifiedThread {
	var out []*UnifiedThread
	for _, thread := range r.order {
		if strings.EqualFold(thread.Series, series) {
			out = append(out, thread)
		}
	}
	return out
}
