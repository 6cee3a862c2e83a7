package service

import (
	"sort"

	catalogdomain "github.com/teleforce-labs/teleforce/internal/catalog/domain"
	commissiondomain "github.com/teleforce-labs/teleforce/internal/commission/domain"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
)

// palierStep is the point interval between commission thresholds.
const palierStep = 5

// runEngine walks the sales in installation order, accumulates points and
// pays a commission for every crossed palier. The commission of a crossed
// palier is looked up with the tier at that palier's point level and the
// product of the triggering sale; a sale worth enough points to cross
// several paliers at once repeats its product for each of them. Palier 1
// is floored at the plan's starter amount.
func runEngine(plan catalogdomain.CommissionPlan, sales []*saledomain.SaleRecord) (int64, int, []commissiondomain.LedgerEntry) {
	ordered := make([]*saledomain.SaleRecord, len(sales))
	copy(ordered, sales)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.InstalledAt.Equal(*b.InstalledAt) {
			return a.ID < b.ID
		}
		return a.InstalledAt.Before(*b.InstalledAt)
	})

	var (
		cumulativePoints int
		totalCents       int64
		ledger           []commissiondomain.LedgerEntry
	)

	for _, sale := range ordered {
		product := sale.CanonicalProduct()
		pointsBefore := cumulativePoints
		cumulativePoints += plan.Points.PointsFor(product)

		palierBefore := pointsBefore / palierStep
		palierAfter := cumulativePoints / palierStep

		for palier := palierBefore + 1; palier <= palierAfter; palier++ {
			palierPoints := palier * palierStep
			tier := catalogdomain.TierFor(palierPoints)
			amount := plan.Schedule.CommissionFor(tier, product)
			if palier == 1 && amount < plan.StarterFloorCents {
				amount = plan.StarterFloorCents
			}

			totalCents += amount
			ledger = append(ledger, commissiondomain.LedgerEntry{
				Palier:           palier,
				PalierPoints:     palierPoints,
				CumulativePoints: cumulativePoints,
				Tier:             tier,
				Product:          product,
				AmountCents:      amount,
				SaleID:           sale.ID,
			})
		}
	}

	return totalCents, cumulativePoints, ledger
}
