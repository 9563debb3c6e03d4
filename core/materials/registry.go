package materials

import (
	"strings"

	"mechkit/internal/errors"
	"mechkit/units"
)

// metalKey builds the case-insensitive lookup key for (designation, condition).
func metalKey(designation, condition string) string {
	return strings.ToLower(designation) + "|" + strings.ToLower(condition)
}

// MetalRegistry wraps a bundled table of metal grades, supporting lookup by
// (designation, condition) and a size query. The table order is preserved
// for deterministic listing.
type MetalRegistry struct {
	base    Base
	entries map[string]*Metal
	order   []*Metal
}

func newMetalRegistry(base Base, table string) *MetalRegistry {
	r := &MetalRegistry{
		base:    base,
		entries: make(map[string]*Metal),
	}
	for _, row := range readTable(table) {
		poisson := tableFloat(row, "poisson_ratio", table)
		modulus := units.New(tableFloat(row, "modulus_gpa", table), units.Gigapascal)
		m := &Metal{
			Designation:       row["designation"],
			Condition:         row["condition"],
			Base:              base,
			Density:           units.New(tableFloat(row, "density_g_cm3", table), units.GramPerCuCm),
			ModulusElasticity: modulus,
			ShearModulus:      shearModulus(modulus, poisson),
			PoissonRatio:      poisson,
			YieldStrength:     units.New(tableFloat(row, "yield_mpa", table), units.Megapascal),
			TensileStrength:   units.New(tableFloat(row, "tensile_mpa", table), units.Megapascal),
			Elongation:        tableFloat(row, "elongation_pct", table),
			HardnessBrinell:   tableFloat(row, "hardness_hb", table),
		}
		r.entries[metalKey(m.Designation, m.Condition)] = m
		r.order = append(r.order, m)
	}
	return r
}

// Count returns the number of pre-configured entries.
func (r *MetalRegistry) Count() int {
	return len(r.order)
}

// Get looks up a grade by designation and condition.
func (r *MetalRegistry) Get(designation, condition string) (*Metal, error) {
	if m, ok := r.entries[metalKey(designation, condition)]; ok {
		return m, nil
	}
	return nil, errors.NotFound(string(r.base), designation+" ("+condition+")").
		WithContext("designation", designation).
		WithContext("condition", condition)
}

// List returns all entries in table order.
func (r *MetalRegistry) List() []*Metal {
	out := make([]*Metal, len(r.order))
	copy(out, r.order)
	return out
}

// NewCarbonSteelRegistry loads the bundled carbon and alloy steel table.
func NewCarbonSteelRegistry() *MetalRegistry {
	return newMetalRegistry(BaseCarbonSteel, "carbon_steel.csv")
}

// NewStainlessSteelRegistry loads the bundled stainless steel table.
func NewStainlessSteelRegistry() *MetalRegistry {
	return newMetalRegistry(BaseStainlessSteel, "stainless_steel.csv")
}

// CastIronRegistry wraps the bundled gray iron class table.
type CastIronRegistry struct {
	entries map[string]*GrayCastIron
	order   []*GrayCastIron
}

// NewCastIronRegistry loads the bundled gray iron table.
func NewCastIronRegistry() *CastIronRegistry {
	const table = "cast_iron.csv"
	r := &CastIronRegistry{entries: make(map[string]*GrayCastIron)}
	for _, row := range readTable(table) {
		g := &GrayCastIron{
			Designation:         row["designation"],
			Condition:           row["condition"],
			Density:             units.New(tableFloat(row, "density_g_cm3", table), units.GramPerCuCm),
			ModulusElasticity:   units.New(tableFloat(row, "modulus_gpa", table), units.Gigapascal),
			PoissonRatio:        tableFloat(row, "poisson_ratio", table),
			TensileStrength:     units.New(tableFloat(row, "tensile_mpa", table), units.Megapascal),
			CompressiveStrength: units.New(tableFloat(row, "compressive_mpa", table), units.Megapascal),
			HardnessBrinell:     tableFloat(row, "hardness_hb", table),
		}
		r.entries[metalKey(g.Designation, g.Condition)] = g
		r.order = append(r.order, g)
	}
	return r
}

// Count returns the number of pre-configured entries.
func (r *CastIronRegistry) Count() int {
	return len(r.order)
}

// Get looks up a gray iron class by designation and condition.
func (r *CastIronRegistry) Get(designation, condition string) (*GrayCastIron, error) {
	if g, ok := r.entries[metalKey(designation, condition)]; ok {
		return g, nil
	}
	return nil, errors.NotFound(string(BaseGrayCastIron), designation+" ("+condition+")")
}

// List returns all entries in table order.
func (r *CastIronRegistry) List() []*GrayCastIron {
	out := make([]*GrayCastIron, len(r.order))
	copy(out, r.order)
	return out
}

// PolymerRegistry wraps the bundled polymer table, keyed by designation only.
type PolymerRegistry struct {
	entries map[string]*Polymer
	order   []*Polymer
}

// NewPolymerRegistry loads the bundled polymer table.
func NewPolymerRegistry() *PolymerRegistry {
	const table = "polymers.csv"
	r := &PolymerRegistry{entries: make(map[string]*Polymer)}
	for _, row := range readTable(table) {
		p := &Polymer{
			Designation:       row["designation"],
			Density:           units.New(tableFloat(row, "density_g_cm3", table), units.GramPerCuCm),
			TensileStrength:   units.New(tableFloat(row, "tensile_mpa", table), units.Megapascal),
			ModulusElasticity: units.New(tableFloat(row, "modulus_gpa", table), units.Gigapascal),
			Elongation:        tableFloat(row, "elongation_pct", table),
			MaxServiceTemp:    units.New(tableFloat(row, "max_service_temp_c", table), units.Celsius),
		}
		r.entries[strings.ToLower(p.Designation)] = p
		r.order = append(r.order, p)
	}
	return r
}

// Count returns the number of pre-configured entries.
func (r *PolymerRegistry) Count() int {
	return len(r.order)
}

// Get looks up a polymer by designation.
func (r *PolymerRegistry) Get(designation string) (*Polymer, error) {
	if p, ok := r.entries[strings.ToLower(designation)]; ok {
		return p, nil
	}
	return nil, errors.NotFound(string(BasePolymer), designation)
}

// List returns all entries in table order.
func (r *PolymerRegistry) List() []*Polymer {
	out := make([]*Polymer, len(r.order))
	copy(out, r.order)
	return out
}
