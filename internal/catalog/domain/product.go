// Package domain defines the product catalog and the commission plan
// (point valuation and tier schedule) injected into the commission and
// network engines.
package domain

import "strings"

// Product is a canonical product identifier. Raw identifiers coming from
// the outside are normalized exactly once through Canonicalize before any
// lookup; engines only ever see canonical values.
type Product string

const (
	ProductFreeboxUltra     Product = "freebox ultra"
	ProductFreeboxEssentiel Product = "freebox essentiel"
	ProductFreeboxPop       Product = "freebox pop"
	ProductForfait5G        Product = "forfait 5g"
)

// aliases maps normalized spellings seen in the field to their canonical
// product. "5g" is the short form used on older sale records.
var aliases = map[string]Product{
	"5g": ProductForfait5G,
}

// Canonicalize trims, lowercases and collapses inner whitespace, then
// resolves known aliases. Unknown products pass through normalized; they
// are not an error (see PointValuation and TierSchedule defaults).
func Canonicalize(raw string) Product {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.Join(strings.Fields(normalized), " ")
	if canonical, ok := aliases[normalized]; ok {
		return canonical
	}
	return Product(normalized)
}

// Known reports whether the product belongs to the closed catalog set.
func (p Product) Known() bool {
	switch p {
	case ProductFreeboxUltra, ProductFreeboxEssentiel, ProductFreeboxPop, ProductForfait5G:
		return true
	default:
		return false
	}
}
