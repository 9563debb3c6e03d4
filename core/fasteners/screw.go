package fasteners

import (
	"math"

	"mechkit/core/materials"
	"mechkit/internal/errors"
	"mechkit/units"
)

// ThreadSpec is the dimensional contract shared by metric and unified
// threads: a designation, a nominal diameter and a tensile stress area.
type ThreadSpec interface {
	Label() string
	Nominal() units.Quantity
	Area() units.Quantity
}

// Screw is a concrete fastener instance: a thread specification, a property
// grade and a length. Derived capacities come from the grade stresses acting
// over the thread's tensile stress area.
type Screw struct {
	// Thread is the thread specification
	Thread ThreadSpec

	// Grade is the property class
	Grade *ScrewGrade

	// Length is the nominal fastener length
	Length units.Quantity

	// ProofLoad is the axial force at proof stress
	ProofLoad units.Quantity

	// TensileCapacity is the axial force at minimum ultimate strength
	TensileCapacity units.Quantity
}

// NewScrew composes a screw from a thread, grade and length.
func NewScrew(thread ThreadSpec, grade *ScrewGrade, length units.Quantity) (*Screw, error) {
	if thread == nil {
		return nil, errors.Input("screw requires a thread specification")
	}
	if grade == nil {
		return nil, errors.Input("screw requires a grade")
	}
	if err := units.CheckDimension(length, units.DimLength, "length"); err != nil {
		return nil, err
	}
	if length.Value() <= 0 {
		return nil, errors.Newf(errors.TypeInput, "screw length must be positive, got %s", length)
	}

	return &Screw{
		Thread:          thread,
		Grade:           grade,
		Length:          length,
		ProofLoad:       grade.ProofLoad.Mul(thread.Area()).MustConvert(units.Newton),
		TensileCapacity: grade.TensileStrength.Mul(thread.Area()).MustConvert(units.Newton),
	}, nil
}

// String returns "M8 X 1.25 Grade 8.8 x 30 mm" style identification.
func (s *Screw) String() string {
	return s.Thread.Label() + " " + s.Grade.String() + " x " + s.Length.String()
}

// Mass estimates the fastener mass from the given material, approximating
// the body as a solid cylinder at the nominal diameter.
func (s *Screw) Mass(material *materials.Metal) (units.Quantity, error) {
	if material == nil {
		return units.Quantity{}, errors.Input("mass estimate requires a material")
	}
	dia := s.Thread.Nominal()
	volume := dia.Pow(2).Mul(s.Length).MulScalar(math.Pi / 4)
	return volume.Mul(material.Density).Convert(units.Kilogram)
}
