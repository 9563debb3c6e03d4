// Package assembly parses *.mech.hcl assembly definition files into
// resolved mechanical components.
package assembly

import (
	"github.com/shopspring/decimal"

	"mechkit/core/fasteners"
	"mechkit/core/gears"
	"mechkit/core/materials"
	"mechkit/core/springs"
	"mechkit/units"
)

// ScrewComponent is a resolved screw line with purchasing attributes.
type ScrewComponent struct {
	// Name is the block label
	Name string

	// Screw is the resolved fastener
	Screw *fasteners.Screw

	// Quantity is the part count
	Quantity int

	// UnitCost is the per-part cost
	UnitCost decimal.Decimal

	// SourceLine locates the block in the definition file
	SourceLine int
}

// GearPairComponent is a resolved meshed gear pair.
type GearPairComponent struct {
	// Name is the block label
	Name string

	// Pair is the resolved gear pair
	Pair *gears.GearPair

	// Speed is the driving gear speed, zero-valued when not given
	Speed units.Quantity

	// SourceLine locates the block in the definition file
	SourceLine int
}

// SpringComponent is a resolved helical spring with purchasing
// attributes.
type SpringComponent struct {
	// Name is the block label
	Name string

	// Spring is the resolved coil spring
	Spring *springs.CoilSpring

	// Quantity is the part count
	Quantity int

	// UnitCost is the per-part cost
	UnitCost decimal.Decimal

	// SourceLine locates the block in the definition file
	SourceLine int
}

// ShaftComponent is a solid round shaft with its resolved material.
type ShaftComponent struct {
	// Name is the block label
	Name string

	// Diameter and Length size the shaft
	Diameter units.Quantity
	Length   units.Quantity

	// Material is the resolved metal
	Material *materials.Metal

	// Mass is the computed shaft mass
	Mass units.Quantity

	// SourceLine locates the block in the definition file
	SourceLine int
}

// Assembly is the resolved content of one definition file.
type Assembly struct {
	// SourceFile is the definition file path
	SourceFile string

	// Materials holds file-local custom metals by block label
	Materials map[string]*materials.Metal

	Screws    []*ScrewComponent
	GearPairs []*GearPairComponent
	Springs   []*SpringComponent
	Shafts    []*ShaftComponent
}

// ComponentCount returns the number of resolved components, custom
// materials excluded.
func (a *Assembly) ComponentCount() int {
	return len(a.Screws) + len(a.GearPairs) + len(a.Springs) + len(a.Shafts)
}
