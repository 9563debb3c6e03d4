// Package fasteners provides screw thread and screw grade entities and
// registries. Thread dimensions derive from the standard thread geometry
// identities; grades come from the bundled property table.
package fasteners

import (
	"regexp"
	"strconv"
	"strings"

	"mechkit/internal/errors"
	"mechkit/units"
)

// Metric external thread geometry constants (ISO 68-1 basic profile):
// minor diameter d3 = d - 1.226869*P, pitch diameter d2 = d - 0.649519*P,
// tensile stress area As = 0.7854*(d - 0.9382*P)^2.
const (
	metricMinorFactor  = 1.226869
	metricPitchFactor  = 0.649519
	metricStressFactor = 0.9382
)

// MetricThread contains dimensional attributes for an external metric thread.
// Immutable once constructed.
type MetricThread struct {
	// Designation is the normalized size string, e.g. "M8 X 1.25"
	Designation string

	// Series is "coarse" or "fine" for standard sizes, "custom" otherwise
	Series string

	// MajorDiameter is the nominal (major) diameter
	MajorDiameter units.Quantity

	// Pitch is the thread pitch in millimeters, as a plain numeric
	Pitch float64

	// MinorDiameter is the external thread minor diameter
	MinorDiameter units.Quantity

	// PitchDiameter is the basic pitch diameter
	PitchDiameter units.Quantity

	// StressArea is the tensile stress area
	StressArea units.Quantity
}

var metricSizeRe = regexp.MustCompile(`(?i)^M\s*([0-9]+(?:\.[0-9]+)?)\s*X\s*([0-9]+(?:\.[0-9]+)?)$`)

// NewMetricThread derives a metric thread from a size string such as
// "M8 X 1.25" (case-insensitive, spaces optional).
func NewMetricThread(size string) (*MetricThread, error) {
	match := metricSizeRe.FindStringSubmatch(strings.TrimSpace(size))
	if match == nil {
		return nil, errors.Newf(errors.TypeParsing,
			"invalid metric thread size %q, expected e.g. \"M8 X 1.25\"", size)
	}

	dia, _ := strconv.ParseFloat(match[1], 64)
	pitch, _ := strconv.ParseFloat(match[2], 64)
	if dia <= 0 || pitch <= 0 {
		return nil, errors.Newf(errors.TypeInput,
			"metric thread %q requires positive diameter and pitch", size)
	}
	if pitch >= dia {
		return nil, errors.Newf(errors.TypeInput,
			"metric thread %q pitch %v exceeds diameter %v", size, pitch, dia)
	}

	thread := newMetricThread(dia, pitch)
	thread.Series = metricSeries(thread.Designation)
	return thread, nil
}

func newMetricThread(dia, pitch float64) *MetricThread {
	stressDia := dia - metricStressFactor*pitch
	return &MetricThread{
		Designation:   metricDesignation(dia, pitch),
		MajorDiameter: units.New(dia, units.Millimeter),
		Pitch:         pitch,
		MinorDiameter: units.New(dia-metricMinorFactor*pitch, units.Millimeter),
		PitchDiameter: units.New(dia-metricPitchFactor*pitch, units.Millimeter),
		StressArea:    units.New(0.7854*stressDia*stressDia, units.SqMillimeter),
	}
}

func metricDesignation(dia, pitch float64) string {
	return "M" + strconv.FormatFloat(dia, 'f', -1, 64) +
		" X " + strconv.FormatFloat(pitch, 'f', -1, 64)
}

// Label returns the thread designation.
func (t *MetricThread) Label() string {
	return t.Designation
}

// Nominal returns the nominal (major) diameter.
func (t *MetricThread) Nominal() units.Quantity {
	return t.MajorDiameter
}

// Area returns the tensile stress area.
func (t *MetricThread) Area() units.Quantity {
	return t.StressArea
}

// String returns the thread designation.
func (t *MetricThread) String() string {
	return t.Designation
}

// MetricThreadRegistry wraps the bundled table of standard metric sizes.
type MetricThreadRegistry struct {
	entries map[string]*MetricThread
	order   []*MetricThread
}

// standardMetricSeries maps normalized designations to their series, loaded
// once for both registry construction and series tagging of parsed threads.
var standardMetricSeries = func() map[string]string {
	const table = "metric_threads.csv"
	series := make(map[string]string)
	for _, row := range readTable(table) {
		dia := tableFloat(row, "nominal_dia_mm", table)
		pitch := tableFloat(row, "pitch_mm", table)
		series[metricDesignation(dia, pitch)] = row["series"]
	}
	return series
}()

func metricSeries(designation string) string {
	if s, ok := standardMetricSeries[designation]; ok {
		return s
	}
	return "custom"
}

// NewMetricThreadRegistry loads the bundled metric thread table.
func NewMetricThreadRegistry() *MetricThreadRegistry {
	const table = "metric_threads.csv"
	r := &MetricThreadRegistry{entries: make(map[string]*MetricThread)}
	for _, row := range readTable(table) {
		thread := newMetricThread(
			tableFloat(row, "nominal_dia_mm", table),
			tableFloat(row, "pitch_mm", table))
		thread.Series = row["series"]
		r.entries[strings.ToLower(thread.Designation)] = thread
		r.order = append(r.order, thread)
	}
	return r
}

// Count returns the number of pre-configured entries.
func (r *MetricThreadRegistry) Count() int {
	return len(r.order)
}

// Get looks up a standard size by designation, e.g. "M8 X 1.25".
func (r *MetricThreadRegistry) Get(size string) (*MetricThread, error) {
	parsed, err := NewMetricThread(size)
	if err != nil {
		return nil, err
	}
	if thread, ok := r.entries[strings.ToLower(parsed.Designation)]; ok {
		return thread, nil
	}
	return nil, errors.NotFound("metric thread", size)
}

// List returns all entries in table order.
func (r *MetricThreadRegistry) List() []*MetricThread {
	out := make([]*MetricThread, len(r.order))
	copy(out, r.order)
	return out
}
