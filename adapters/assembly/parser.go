package assembly

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"mechkit/core/fasteners"
	"mechkit/core/gears"
	"mechkit/core/materials"
	"mechkit/core/solids"
	"mechkit/core/springs"
	"mechkit/internal/errors"
	"mechkit/units"
)

// Parser resolves assembly definition files against the bundled
// material, thread and grade registries.
type Parser struct {
	parser *hclparse.Parser

	carbonSteels    *materials.MetalRegistry
	stainlessSteels *materials.MetalRegistry
	unifiedThreads  *fasteners.UnifiedThreadRegistry
	grades          *fasteners.ScrewGradeRegistry
}

// NewParser creates a parser backed by the bundled registries.
func NewParser() *Parser {
	return &Parser{
		parser:          hclparse.NewParser(),
		carbonSteels:    materials.NewCarbonSteelRegistry(),
		stainlessSteels: materials.NewStainlessSteelRegistry(),
		unifiedThreads:  fasteners.NewUnifiedThreadRegistry(),
		grades:          fasteners.NewScrewGradeRegistry(),
	}
}

// ParseFile reads and resolves one *.mech.hcl definition file.
func (p *Parser) ParseFile(path string) (*Assembly, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "failed to read assembly file %s", path)
	}
	return p.Parse(src, path)
}

// Parse resolves assembly definition source. The filename labels
// diagnostics only.
func (p *Parser) Parse(src []byte, filename string) (*Assembly, error) {
	file, diags := p.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags, filename)
	}

	content, _, moreDiags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "material", LabelNames: []string{"name"}},
			{Type: "screw", LabelNames: []string{"name"}},
			{Type: "gear_pair", LabelNames: []string{"name"}},
			{Type: "spring", LabelNames: []string{"name"}},
			{Type: "shaft", LabelNames: []string{"name"}},
		},
	})
	if moreDiags.HasErrors() {
		return nil, diagError(moreDiags, filename)
	}

	asm := &Assembly{
		SourceFile: filename,
		Materials:  make(map[string]*materials.Metal),
	}

	// Materials first so later blocks can reference them by label.
	for _, block := range content.Blocks {
		if block.Type != "material" {
			continue
		}
		if err := p.parseMaterial(block, asm); err != nil {
			return nil, err
		}
	}

	for _, block := range content.Blocks {
		var err error
		switch block.Type {
		case "material":
		case "screw":
			err = p.parseScrew(block, asm)
		case "gear_pair":
			err = p.parseGearPair(block, asm)
		case "spring":
			err = p.parseSpring(block, asm)
		case "shaft":
			err = p.parseShaft(block, asm)
		}
		if err != nil {
			return nil, err
		}
	}

	return asm, nil
}

func (p *Parser) parseMaterial(block *hcl.Block, asm *Assembly) error {
	attrs, err := blockAttributes(block)
	if err != nil {
		return err
	}
	name := block.Labels[0]

	density, err := attrs.quantity("density", true)
	if err != nil {
		return err
	}
	modulus, err := attrs.quantity("modulus_elasticity", true)
	if err != nil {
		return err
	}
	yield, err := attrs.quantity("yield_strength", true)
	if err != nil {
		return err
	}
	tensile, err := attrs.quantity("tensile_strength", true)
	if err != nil {
		return err
	}
	poisson, err := attrs.number("poisson_ratio", true)
	if err != nil {
		return err
	}
	condition, err := attrs.str("condition", false)
	if err != nil {
		return err
	}

	metal, err := materials.NewCustomMetal(name, condition, density, modulus, yield, tensile, poisson)
	if err != nil {
		return attrs.wrap(err)
	}
	asm.Materials[name] = metal
	return nil
}

func (p *Parser) parseScrew(block *hcl.Block, asm *Assembly) error {
	attrs, err := blockAttributes(block)
	if err != nil {
		return err
	}

	threadSpec, err := attrs.str("thread", true)
	if err != nil {
		return err
	}
	thread, err := p.resolveThread(threadSpec)
	if err != nil {
		return attrs.wrap(err)
	}

	gradeSpec, err := attrs.str("grade", true)
	if err != nil {
		return err
	}
	grade, err := p.grades.Get(gradeSpec)
	if err != nil {
		return attrs.wrap(err)
	}

	length, err := attrs.quantity("length", true)
	if err != nil {
		return err
	}
	screw, err := fasteners.NewScrew(thread, grade, length)
	if err != nil {
		return attrs.wrap(err)
	}

	quantity, err := attrs.count("quantity")
	if err != nil {
		return err
	}
	unitCost, err := attrs.money("unit_cost")
	if err != nil {
		return err
	}

	asm.Screws = append(asm.Screws, &ScrewComponent{
		Name:       block.Labels[0],
		Screw:      screw,
		Quantity:   quantity,
		UnitCost:   unitCost,
		SourceLine: block.DefRange.Start.Line,
	})
	return nil
}

func (p *Parser) parseGearPair(block *hcl.Block, asm *Assembly) error {
	attrs, err := blockAttributes(block)
	if err != nil {
		return err
	}

	pinionTeeth, err := attrs.integer("pinion_teeth", true)
	if err != nil {
		return err
	}
	gearTeeth, err := attrs.integer("gear_teeth", true)
	if err != nil {
		return err
	}
	pinionDia, err := attrs.quantity("pinion_dia", true)
	if err != nil {
		return err
	}

	pinion, err := gears.NewSpurGear(pinionTeeth, pinionDia)
	if err != nil {
		return attrs.wrap(err)
	}

	// The gear diameter follows from the shared diametral pitch when
	// not given explicitly.
	gearDia, err := attrs.quantity("gear_dia", false)
	if err != nil {
		return err
	}
	var gear *gears.SpurGear
	if gearDia.IsZero() {
		gear, err = gears.NewSpurGearDP(gearTeeth, pinion.DiametralPitch, pinion.Finish)
	} else {
		gear, err = gears.NewSpurGear(gearTeeth, gearDia)
	}
	if err != nil {
		return attrs.wrap(err)
	}

	thickness, err := attrs.quantity("thickness", false)
	if err != nil {
		return err
	}
	if !thickness.IsZero() {
		if pinion, err = pinion.WithFaceWidth(thickness); err != nil {
			return attrs.wrap(err)
		}
		if gear, err = gear.WithFaceWidth(thickness); err != nil {
			return attrs.wrap(err)
		}
	}

	pair, err := gears.NewGearPair(pinion, gear)
	if err != nil {
		return attrs.wrap(err)
	}

	speed, err := attrs.quantity("speed", false)
	if err != nil {
		return err
	}
	if !speed.IsZero() {
		if err := units.CheckDimension(speed, units.DimRotation, "speed"); err != nil {
			return attrs.wrap(err)
		}
	}

	asm.GearPairs = append(asm.GearPairs, &GearPairComponent{
		Name:       block.Labels[0],
		Pair:       pair,
		Speed:      speed,
		SourceLine: block.DefRange.Start.Line,
	})
	return nil
}

func (p *Parser) parseSpring(block *hcl.Block, asm *Assembly) error {
	attrs, err := blockAttributes(block)
	if err != nil {
		return err
	}

	wireDia, err := attrs.quantity("wire_dia", true)
	if err != nil {
		return err
	}
	coilDia, err := attrs.quantity("coil_dia", true)
	if err != nil {
		return err
	}
	activeCoils, err := attrs.number("active_coils", true)
	if err != nil {
		return err
	}

	// The shear modulus comes from a referenced material or directly.
	shearModulus, err := attrs.quantity("shear_modulus", false)
	if err != nil {
		return err
	}
	if shearModulus.IsZero() {
		materialSpec, err := attrs.str("material", true)
		if err != nil {
			return err
		}
		metal, err := p.resolveMaterial(materialSpec, asm)
		if err != nil {
			return attrs.wrap(err)
		}
		shearModulus = metal.ShearModulus
	}

	spring, err := springs.NewCoilSpring(wireDia, coilDia, activeCoils, shearModulus)
	if err != nil {
		return attrs.wrap(err)
	}

	quantity, err := attrs.count("quantity")
	if err != nil {
		return err
	}
	unitCost, err := attrs.money("unit_cost")
	if err != nil {
		return err
	}

	asm.Springs = append(asm.Springs, &SpringComponent{
		Name:       block.Labels[0],
		Spring:     spring,
		Quantity:   quantity,
		UnitCost:   unitCost,
		SourceLine: block.DefRange.Start.Line,
	})
	return nil
}

func (p *Parser) parseShaft(block *hcl.Block, asm *Assembly) error {
	attrs, err := blockAttributes(block)
	if err != nil {
		return err
	}

	diameter, err := attrs.quantity("diameter", true)
	if err != nil {
		return err
	}
	length, err := attrs.quantity("length", true)
	if err != nil {
		return err
	}
	materialSpec, err := attrs.str("material", true)
	if err != nil {
		return err
	}
	metal, err := p.resolveMaterial(materialSpec, asm)
	if err != nil {
		return attrs.wrap(err)
	}

	mass, err := solids.MassRod(diameter, length, metal.Density)
	if err != nil {
		return attrs.wrap(err)
	}

	asm.Shafts = append(asm.Shafts, &ShaftComponent{
		Name:       block.Labels[0],
		Diameter:   diameter,
		Length:     length,
		Material:   metal,
		Mass:       mass,
		SourceLine: block.DefRange.Start.Line,
	})
	return nil
}

// resolveThread picks the metric or unified registry from the size
// string shape. "M8 X 1.25" is metric; "1/4-20 UNC" is unified, with
// an optional ", Class 3A" suffix.
func (p *Parser) resolveThread(spec string) (fasteners.ThreadSpec, error) {
	trimmed := strings.TrimSpace(spec)
	if len(trimmed) > 1 && (trimmed[0] == 'M' || trimmed[0] == 'm') && trimmed[1] >= '0' && trimmed[1] <= '9' {
		return fasteners.NewMetricThread(trimmed)
	}

	fitClass := ""
	if i := strings.LastIndex(strings.ToLower(trimmed), ", class "); i >= 0 {
		fitClass = strings.TrimSpace(trimmed[i+len(", class "):])
		trimmed = strings.TrimSpace(trimmed[:i])
	}
	return p.unifiedThreads.Get(trimmed, fitClass)
}

// resolveMaterial looks up file-local custom metals first, then the
// bundled steel registries by "designation condition" string.
func (p *Parser) resolveMaterial(spec string, asm *Assembly) (*materials.Metal, error) {
	if metal, ok := asm.Materials[spec]; ok {
		return metal, nil
	}

	fields := strings.Fields(spec)
	if len(fields) >= 2 {
		designation := fields[0]
		condition := strings.Join(fields[1:], " ")
		if metal, err := p.carbonSteels.Get(designation, condition); err == nil {
			return metal, nil
		}
		if metal, err := p.stainlessSteels.Get(designation, condition); err == nil {
			return metal, nil
		}
	}
	return nil, errors.NotFound("material", spec)
}

// blockAttrs wraps a block's attributes with typed accessors that
// carry file:line context on failure.
type blockAttrs struct {
	attrs hcl.Attributes
	block *hcl.Block
}

func blockAttributes(block *hcl.Block) (*blockAttrs, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diagError(diags, block.DefRange.Filename)
	}
	return &blockAttrs{attrs: attrs, block: block}, nil
}

func (b *blockAttrs) location() string {
	return fmt.Sprintf("%s:%d", b.block.DefRange.Filename, b.block.DefRange.Start.Line)
}

// wrap attaches block location context to a resolution error.
func (b *blockAttrs) wrap(err error) error {
	var typed *errors.Error
	if e, ok := err.(*errors.Error); ok {
		typed = e
	} else {
		typed = errors.Wrap(errors.TypeParsing, "failed to resolve block", err)
	}
	return typed.WithContext("block", b.block.Type+" "+b.block.Labels[0]).
		WithContext("location", b.location())
}

func (b *blockAttrs) value(name string, required bool) (cty.Value, bool, error) {
	attr, ok := b.attrs[name]
	if !ok {
		if required {
			return cty.NilVal, false, errors.Newf(errors.TypeParsing,
				"%s block %q at %s is missing required attribute %q",
				b.block.Type, b.block.Labels[0], b.location(), name)
		}
		return cty.NilVal, false, nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, false, diagError(diags, b.block.DefRange.Filename)
	}
	return val, true, nil
}

func (b *blockAttrs) str(name string, required bool) (string, error) {
	val, ok, err := b.value(name, required)
	if err != nil || !ok {
		return "", err
	}
	if val.Type() != cty.String {
		return "", errors.Newf(errors.TypeParsing,
			"attribute %q at %s must be a string", name, b.location())
	}
	return val.AsString(), nil
}

// quantity reads a "365.4 MPa" style string attribute. A missing
// optional attribute yields a zero Quantity.
func (b *blockAttrs) quantity(name string, required bool) (units.Quantity, error) {
	s, err := b.str(name, required)
	if err != nil || s == "" {
		return units.Quantity{}, err
	}
	q, err := units.Parse(s)
	if err != nil {
		return units.Quantity{}, b.wrap(err)
	}
	return q, nil
}

func (b *blockAttrs) number(name string, required bool) (float64, error) {
	val, ok, err := b.value(name, required)
	if err != nil || !ok {
		return 0, err
	}
	if val.Type() != cty.Number {
		return 0, errors.Newf(errors.TypeParsing,
			"attribute %q at %s must be a number", name, b.location())
	}
	f, _ := val.AsBigFloat().Float64()
	return f, nil
}

func (b *blockAttrs) integer(name string, required bool) (int, error) {
	f, err := b.number(name, required)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errors.Newf(errors.TypeParsing,
			"attribute %q at %s must be a whole number, got %v", name, b.location(), f)
	}
	return int(f), nil
}

// count reads an optional part count, defaulting to 1.
func (b *blockAttrs) count(name string) (int, error) {
	if _, ok := b.attrs[name]; !ok {
		return 1, nil
	}
	n, err := b.integer(name, true)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.Newf(errors.TypeParsing,
			"attribute %q at %s must be positive, got %d", name, b.location(), n)
	}
	return n, nil
}

// money reads an optional cost attribute given as a string or number.
func (b *blockAttrs) money(name string) (decimal.Decimal, error) {
	val, ok, err := b.value(name, false)
	if err != nil || !ok {
		return decimal.Zero, err
	}
	switch val.Type() {
	case cty.String:
		d, err := decimal.NewFromString(val.AsString())
		if err != nil {
			return decimal.Zero, errors.Wrapf(errors.TypeParsing, err,
				"attribute %q at %s is not a valid amount", name, b.location())
		}
		return d, nil
	case cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return decimal.NewFromFloat(f), nil
	default:
		return decimal.Zero, errors.Newf(errors.TypeParsing,
			"attribute %q at %s must be a string or number", name, b.location())
	}
}

func diagError(diags hcl.Diagnostics, filename string) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		return errors.Newf(errors.TypeParsing, "%s:%d: %s: %s",
			filename, line, diag.Summary, diag.Detail)
	}
	return errors.New(errors.TypeParsing, "failed to parse "+filename)
}
