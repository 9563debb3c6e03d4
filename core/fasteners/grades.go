package fasteners

import (
	"strconv"

	"mechkit/internal/errors"
	"mechkit/units"
)

// ScrewGrade contains mechanical properties for a metric property class
// per ISO 898-1. Immutable once constructed.
type ScrewGrade struct {
	// Designation is the property class string, e.g. "8.8"
	Designation string

	// ProofLoad is the proof load stress
	ProofLoad units.Quantity

	// TensileStrength is the minimum ultimate tensile strength
	TensileStrength units.Quantity

	// YieldStrength is the minimum yield strength
	YieldStrength units.Quantity

	// Elongation is minimum percent elongation after fracture
	Elongation float64

	// HardnessMin and HardnessMax bound the Rockwell hardness range
	HardnessMin string
	HardnessMax string
}

// String returns "Grade 8.8" style identification.
func (g *ScrewGrade) String() string {
	return "Grade " + g.Designation
}

// ScrewGradeRegistry wraps the bundled property class table.
type ScrewGradeRegistry struct {
	entries map[string]*ScrewGrade
	order   []*ScrewGrade
}

// NewScrewGradeRegistry loads the bundled screw grade table.
func NewScrewGradeRegistry() *ScrewGradeRegistry {
	const table = "screw_grades.csv"
	r := &ScrewGradeRegistry{entries: make(map[string]*ScrewGrade)}
	for _, row := range readTable(table) {
		grade := &ScrewGrade{
			Designation:     row["grade"],
			ProofLoad:       units.New(tableFloat(row, "proof_load_mpa", table), units.Megapascal),
			TensileStrength: units.New(tableFloat(row, "tensile_strength_mpa", table), units.Megapascal),
			YieldStrength:   units.New(tableFloat(row, "yield_strength_mpa", table), units.Megapascal),
			Elongation:      tableFloat(row, "elongation_pct", table),
			HardnessMin:     row["hardness_min"],
			HardnessMax:     row["hardness_max"],
		}
		r.entries[grade.Designation] = grade
		r.order = append(r.order, grade)
	}
	return r
}

// Count returns the number of pre-configured entries.
func (r *ScrewGradeRegistry) Count() int {
	return len(r.order)
}

// Get looks up a grade by designation string, e.g. "8.8".
func (r *ScrewGradeRegistry) Get(designation string) (*ScrewGrade, error) {
	if grade, ok := r.entries[designation]; ok {
		return grade, nil
	}
	return nil, errors.NotFound("screw grade", designation)
}

// GetNumeric looks up a grade by its numeric designation, e.g. 8.8.
func (r *ScrewGradeRegistry) GetNumeric(designation float64) (*ScrewGrade, error) {
	return r.Get(strconv.FormatFloat(designation, 'f', -1, 64))
}

// List returns all entries in table order.
func (r *ScrewGradeRegistry) List() []*ScrewGrade {
	out := make([]*ScrewGrade, len(r.order))
	copy(out, r.order)
	return out
}
