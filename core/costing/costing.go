// Package costing builds bills of materials with exact decimal money
// math.
package costing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"mechkit/internal/errors"
)

// LineItem is one priced component line in a bill of materials.
type LineItem struct {
	// Component identifies the priced part, e.g. "M8 X 1.25 Grade 8.8"
	Component string

	// Quantity is the part count
	Quantity decimal.Decimal

	// UnitCost is the per-part cost
	UnitCost decimal.Decimal

	// Extended is Quantity * UnitCost
	Extended decimal.Decimal
}

// NewLineItem builds a priced line from a part count and unit cost.
func NewLineItem(component string, quantity int, unitCost decimal.Decimal) (LineItem, error) {
	if strings.TrimSpace(component) == "" {
		return LineItem{}, errors.Input("line item requires a component name")
	}
	if quantity <= 0 {
		return LineItem{}, errors.Newf(errors.TypeInput, "line item quantity must be positive, got %d", quantity)
	}
	if unitCost.IsNegative() {
		return LineItem{}, errors.Newf(errors.TypeInput, "unit cost must not be negative, got %s", unitCost)
	}

	qty := decimal.NewFromInt(int64(quantity))
	return LineItem{
		Component: component,
		Quantity:  qty,
		UnitCost:  unitCost,
		Extended:  qty.Mul(unitCost),
	}, nil
}

// BillOfMaterials aggregates line items into a priced total. Items for
// the same component merge into one line.
type BillOfMaterials struct {
	// Currency labels the money amounts, e.g. "USD"
	Currency string

	items map[string]LineItem
}

// NewBillOfMaterials starts an empty bill in the given currency.
func NewBillOfMaterials(currency string) *BillOfMaterials {
	if currency == "" {
		currency = "USD"
	}
	return &BillOfMaterials{
		Currency: currency,
		items:    make(map[string]LineItem),
	}
}

// Add merges a line item into the bill. Repeated components accumulate
// quantity and extended cost; the unit cost must agree.
func (b *BillOfMaterials) Add(item LineItem) error {
	existing, ok := b.items[item.Component]
	if !ok {
		b.items[item.Component] = item
		return nil
	}
	if !existing.UnitCost.Equal(item.UnitCost) {
		return errors.Newf(errors.TypeInput,
			"conflicting unit costs for %q: %s vs %s",
			item.Component, existing.UnitCost, item.UnitCost)
	}
	existing.Quantity = existing.Quantity.Add(item.Quantity)
	existing.Extended = existing.Extended.Add(item.Extended)
	b.items[item.Component] = existing
	return nil
}

// AddPart is shorthand for building and merging a line item.
func (b *BillOfMaterials) AddPart(component string, quantity int, unitCost decimal.Decimal) error {
	item, err := NewLineItem(component, quantity, unitCost)
	if err != nil {
		return err
	}
	return b.Add(item)
}

// Items returns the bill's lines sorted by component name.
func (b *BillOfMaterials) Items() []LineItem {
	out := make([]LineItem, 0, len(b.items))
	for _, item := range b.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Component < out[j].Component })
	return out
}

// Len returns the number of distinct component lines.
func (b *BillOfMaterials) Len() int {
	return len(b.items)
}

// Total returns the sum of all extended costs.
func (b *BillOfMaterials) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.Items() {
		total = total.Add(item.Extended)
	}
	return total
}

// String renders a fixed-width BOM table with a total line.
func (b *BillOfMaterials) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-40s %8s %12s %14s\n", "COMPONENT", "QTY", "UNIT COST", "EXTENDED")
	for _, item := range b.Items() {
		fmt.Fprintf(&sb, "%-40s %8s %12s %14s\n",
			item.Component,
			item.Quantity.String(),
			item.UnitCost.StringFixed(2),
			item.Extended.StringFixed(2))
	}
	fmt.Fprintf(&sb, "%-40s %8s %12s %14s %s\n", "TOTAL", "", "", b.Total().StringFixed(2), b.Currency)
	return sb.String()
}
