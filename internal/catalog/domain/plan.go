package domain

// PointValuation maps a product to its point value. Unknown products are
// worth 1 point so an unrecognized but real sale is never silently dropped
// from commission eligibility.
type PointValuation map[Product]int

const unknownProductPoints = 1

func (pv PointValuation) PointsFor(p Product) int {
	if points, ok := pv[p]; ok {
		return points
	}
	return unknownProductPoints
}

// TierSchedule maps (tier, product) to a commission amount in cents.
// Unknown products pay 0 at every tier: paying out for an unrecognized
// product is a financial risk the 1-point valuation default does not
// carry, so the two defaults are deliberately asymmetric.
type TierSchedule struct {
	Rates map[int]map[Product]int64
}

// Tier boundaries are fixed cumulative-point breakpoints.
const (
	tier1MaxPoints = 25
	tier2MaxPoints = 50
	tier3MaxPoints = 100
)

// TierFor returns the commission tier (1..4) for a cumulative point total.
func TierFor(cumulativePoints int) int {
	switch {
	case cumulativePoints <= tier1MaxPoints:
		return 1
	case cumulativePoints <= tier2MaxPoints:
		return 2
	case cumulativePoints <= tier3MaxPoints:
		return 3
	default:
		return 4
	}
}

func (ts TierSchedule) CommissionFor(tier int, p Product) int64 {
	rates, ok := ts.Rates[tier]
	if !ok {
		return 0
	}
	return rates[p]
}

// CommissionPlan bundles the point valuation and the tier schedule. It is
// passed explicitly into every engine; nothing reads it from ambient state.
type CommissionPlan struct {
	Points   PointValuation
	Schedule TierSchedule

	// StarterFloorCents is the guaranteed minimum paid for the very first
	// palier (crossing 5 points), regardless of the schedule.
	StarterFloorCents int64
}

// DefaultPlan returns the built-in plan used when no plan file is
// configured.
func DefaultPlan() CommissionPlan {
	return CommissionPlan{
		Points: PointValuation{
			ProductFreeboxUltra:     6,
			ProductFreeboxEssentiel: 5,
			ProductFreeboxPop:       4,
			ProductForfait5G:        1,
		},
		Schedule: TierSchedule{
			Rates: map[int]map[Product]int64{
				1: {
					ProductFreeboxUltra:     5000,
					ProductFreeboxEssentiel: 4500,
					ProductFreeboxPop:       4000,
					ProductForfait5G:        1000,
				},
				2: {
					ProductFreeboxUltra:     6500,
					ProductFreeboxEssentiel: 5500,
					ProductFreeboxPop:       5000,
					ProductForfait5G:        1000,
				},
				3: {
					ProductFreeboxUltra:     7500,
					ProductFreeboxEssentiel: 6500,
					ProductFreeboxPop:       5500,
					ProductForfait5G:        1500,
				},
				4: {
					ProductFreeboxUltra:     9000,
					ProductFreeboxEssentiel: 8000,
					ProductFreeboxPop:       7000,
					ProductForfait5G:        1500,
				},
			},
		},
		StarterFloorCents: 6000,
	}
}
