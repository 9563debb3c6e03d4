// Package gears provides involute spur gear geometry and gear pair
// kinematics. Tooth proportions follow the standard full-depth system
// for coarse-pitch involute gears.
package gears

import (
	"fmt"
	"math"

	"mechkit/internal/errors"
	"mechkit/units"
)

// Finish selects the tooth proportion set used for dedendum and
// clearance. Shaved or ground teeth carry extra clearance at the root.
type Finish string

const (
	FinishStandard Finish = "standard"
	FinishShaved   Finish = "shaved"
)

// SpurGear contains the derived geometry of a standard involute spur
// gear. All length attributes derive from the tooth count and diametral
// pitch at construction. Immutable once constructed.
type SpurGear struct {
	// Teeth is the tooth count
	Teeth int

	// Finish selects standard or shaved/ground tooth proportions
	Finish Finish

	// DiametralPitch is teeth per inch of pitch diameter
	DiametralPitch float64

	// PitchDiameter is the pitch circle diameter
	PitchDiameter units.Quantity

	// CircularPitch is the arc distance between adjacent teeth
	CircularPitch units.Quantity

	// Addendum is the radial tooth height above the pitch circle
	Addendum units.Quantity

	// Dedendum is the radial tooth depth below the pitch circle
	Dedendum units.Quantity

	// Clearance is the radial gap beyond the mating addendum
	Clearance units.Quantity

	// WorkingDepth is the engaged depth of mating teeth
	WorkingDepth units.Quantity

	// WholeDepth is the full radial tooth height
	WholeDepth units.Quantity

	// OutsideDiameter is the addendum circle diameter
	OutsideDiameter units.Quantity

	// RootDiameter is the dedendum circle diameter
	RootDiameter units.Quantity

	// CircularThickness is the tooth thickness at the pitch circle
	CircularThickness units.Quantity

	// FaceWidth is the axial tooth width, zero-valued when not set
	FaceWidth units.Quantity
}

// NewSpurGear builds a gear from its tooth count and pitch diameter.
func NewSpurGear(teeth int, pitchDiameter units.Quantity) (*SpurGear, error) {
	return NewSpurGearFinish(teeth, pitchDiameter, FinishStandard)
}

// NewSpurGearFinish builds a gear from its tooth count, pitch diameter
// and tooth finish.
func NewSpurGearFinish(teeth int, pitchDiameter units.Quantity, finish Finish) (*SpurGear, error) {
	if teeth <= 0 {
		return nil, errors.Newf(errors.TypeInput, "gear tooth count must be positive, got %d", teeth)
	}
	if err := units.CheckDimension(pitchDiameter, units.DimLength, "pitch diameter"); err != nil {
		return nil, err
	}
	dia, err := pitchDiameter.In(units.Inch)
	if err != nil {
		return nil, err
	}
	if dia <= 0 {
		return nil, errors.Newf(errors.TypeInput, "pitch diameter must be positive, got %s", pitchDiameter)
	}
	return newSpurGear(teeth, float64(teeth)/dia, finish)
}

// NewSpurGearDP builds a gear from its tooth count and diametral pitch
// in teeth per inch.
func NewSpurGearDP(teeth int, diametralPitch float64, finish Finish) (*SpurGear, error) {
	if teeth <= 0 {
		return nil, errors.Newf(errors.TypeInput, "gear tooth count must be positive, got %d", teeth)
	}
	if diametralPitch <= 0 {
		return nil, errors.Newf(errors.TypeInput, "diametral pitch must be positive, got %v", diametralPitch)
	}
	return newSpurGear(teeth, diametralPitch, finish)
}

func newSpurGear(teeth int, pd float64, finish Finish) (*SpurGear, error) {
	var dedendum, wholeDepth, clearance float64
	switch finish {
	case FinishStandard, "":
		finish = FinishStandard
		dedendum, wholeDepth, clearance = 1.25, 2.25, 0.25
	case FinishShaved:
		dedendum, wholeDepth, clearance = 1.35, 2.35, 0.35
	default:
		return nil, errors.NotSupported("gear finish " + string(finish))
	}

	n := float64(teeth)
	inches := func(v float64) units.Quantity { return units.New(v, units.Inch) }
	return &SpurGear{
		Teeth:             teeth,
		Finish:            finish,
		DiametralPitch:    pd,
		PitchDiameter:     inches(n / pd),
		CircularPitch:     inches(math.Pi / pd),
		Addendum:          inches(1.0 / pd),
		Dedendum:          inches(dedendum / pd),
		Clearance:         inches(clearance / pd),
		WorkingDepth:      inches(2.0 / pd),
		WholeDepth:        inches(wholeDepth / pd),
		OutsideDiameter:   inches((n + 2) / pd),
		RootDiameter:      inches((n - 2*dedendum) / pd),
		CircularThickness: inches(1.5708 / pd),
	}, nil
}

// WithFaceWidth returns a copy of the gear carrying the given axial
// face width.
func (g *SpurGear) WithFaceWidth(width units.Quantity) (*SpurGear, error) {
	if err := units.CheckDimension(width, units.DimLength, "face width"); err != nil {
		return nil, err
	}
	if width.Value() <= 0 {
		return nil, errors.Newf(errors.TypeInput, "face width must be positive, got %s", width)
	}
	out := *g
	out.FaceWidth = width
	return &out, nil
}

// Mass estimates the gear blank mass as a solid disk at the outside
// diameter. The face width must be set.
func (g *SpurGear) Mass(density units.Quantity) (units.Quantity, error) {
	if g.FaceWidth.IsZero() {
		return units.Quantity{}, errors.Input("gear mass requires a face width")
	}
	if err := units.CheckDimension(density, units.DimDensity, "density"); err != nil {
		return units.Quantity{}, err
	}
	volume := g.OutsideDiameter.Pow(2).Mul(g.FaceWidth).MulScalar(math.Pi / 4)
	return volume.Mul(density).Convert(units.Kilogram)
}

// String returns "100T spur gear, 10 DP" style identification.
func (g *SpurGear) String() string {
	return fmt.Sprintf("%dT spur gear, %g DP", g.Teeth, g.DiametralPitch)
}

// GearPair is a meshed driving/driven spur gear pair.
type GearPair struct {
	Driving *SpurGear
	Driven  *SpurGear
}

// NewGearPair meshes two gears. They must share a diametral pitch.
func NewGearPair(driving, driven *SpurGear) (*GearPair, error) {
	if driving == nil || driven == nil {
		return nil, errors.Input("gear pair requires two gears")
	}
	if driving.DiametralPitch != driven.DiametralPitch {
		return nil, errors.Newf(errors.TypeInput,
			"meshed gears must share a diametral pitch: %g vs %g",
			driving.DiametralPitch, driven.DiametralPitch)
	}
	return &GearPair{Driving: driving, Driven: driven}, nil
}

// Ratio returns the speed reduction ratio, driven teeth over driving
// teeth. A ratio above 1 means the driven gear turns slower.
func (p *GearPair) Ratio() float64 {
	return float64(p.Driven.Teeth) / float64(p.Driving.Teeth)
}

// DrivenSpeed returns the driven gear speed for a given driving speed.
func (p *GearPair) DrivenSpeed(drivingSpeed units.Quantity) (units.Quantity, error) {
	if err := units.CheckDimension(drivingSpeed, units.DimRotation, "driving speed"); err != nil {
		return units.Quantity{}, err
	}
	return drivingSpeed.MulScalar(float64(p.Driving.Teeth) / float64(p.Driven.Teeth)), nil
}

// CenterDistance returns the distance between the two gear axes.
func (p *GearPair) CenterDistance() units.Quantity {
	sum, _ := p.Driving.PitchDiameter.Add(p.Driven.PitchDiameter)
	return sum.MulScalar(0.5)
}
