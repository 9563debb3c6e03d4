package sections

import (
	"strings"

	"mechkit/internal/errors"
	"mechkit/units"
)

// RolledSection contains catalog properties for a rolled wide-flange
// (W) shape. Values come from the bundled AISC-style table.
type RolledSection struct {
	// Designation is the shape label, e.g. "W12X26"
	Designation string

	// Weight is the nominal weight per unit length
	Weight units.Quantity

	// Area is the cross-sectional area
	Area units.Quantity

	// Depth is the overall section depth
	Depth units.Quantity

	// FlangeWidth and FlangeThickness size the flanges
	FlangeWidth     units.Quantity
	FlangeThickness units.Quantity

	// WebThickness is the web thickness
	WebThickness units.Quantity

	// Ix and Sx are the strong-axis inertia and section modulus
	Ix units.Quantity
	Sx units.Quantity

	// Iy and Sy are the weak-axis inertia and section modulus
	Iy units.Quantity
	Sy units.Quantity
}

// String returns the shape designation.
func (s *RolledSection) String() string {
	return s.Designation
}

// RolledSectionRegistry wraps the bundled W-shape table.
type RolledSectionRegistry struct {
	entries map[string]*RolledSection
	order   []*RolledSection
}

// NewRolledSectionRegistry loads the bundled W-shape table.
func NewRolledSectionRegistry() *RolledSectionRegistry {
	const table = "w_shapes.csv"
	r := &RolledSectionRegistry{entries: make(map[string]*RolledSection)}
	for _, row := range readTable(table) {
		section := &RolledSection{
			Designation:     row["designation"],
			Weight:          units.New(tableFloat(row, "weight_lb_ft", table), units.PoundPerFoot),
			Area:            units.New(tableFloat(row, "area_in2", table), units.SqInch),
			Depth:           units.New(tableFloat(row, "depth_in", table), units.Inch),
			FlangeWidth:     units.New(tableFloat(row, "flange_width_in", table), units.Inch),
			FlangeThickness: units.New(tableFloat(row, "flange_thickness_in", table), units.Inch),
			WebThickness:    units.New(tableFloat(row, "web_thickness_in", table), units.Inch),
			Ix:              units.New(tableFloat(row, "ix_in4", table), units.QuarticInch),
			Sx:              units.New(tableFloat(row, "sx_in3", table), units.CuInch),
			Iy:              units.New(tableFloat(row, "iy_in4", table), units.QuarticInch),
			Sy:              units.New(tableFloat(row, "sy_in3", table), units.CuInch),
		}
		r.entries[rolledKey(section.Designation)] = section
		r.order = append(r.order, section)
	}
	return r
}

func rolledKey(designation string) string {
	return strings.ToUpper(strings.Join(strings.Fields(designation), ""))
}

// Count returns the number of pre-configured entries.
func (r *RolledSectionRegistry) Count() int {
	return len(r.order)
}

// Get looks up a shape by designation, e.g. "W12X26". Lookup ignores
// case and embedded spaces.
func (r *RolledSectionRegistry) Get(designation string) (*RolledSection, error) {
	if section, ok := r.entries[rolledKey(designation)]; ok {
		return section, nil
	}
	return nil, errors.NotFound("rolled section", designation)
}

// List returns all entries in table order.
func (r *RolledSectionRegistry) List() []*RolledSection {
	out := make([]*RolledSection, len(r.order))
	copy(out, r.order)
	return out
}
