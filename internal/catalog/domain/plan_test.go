package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/teleforce-labs/teleforce/internal/catalog/domain"
)

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, domain.ProductFreeboxUltra, domain.Canonicalize("  Freebox Ultra "))
	assert.Equal(t, domain.ProductFreeboxPop, domain.Canonicalize("FREEBOX   POP"))
	assert.Equal(t, domain.ProductForfait5G, domain.Canonicalize("5G"))
	assert.Equal(t, domain.ProductForfait5G, domain.Canonicalize("Forfait 5G"))
	assert.Equal(t, domain.Product("fibre pro"), domain.Canonicalize("Fibre Pro"))
	assert.False(t, domain.Canonicalize("Fibre Pro").Known())
}

func TestPointsForDefaultsUnknownToOne(t *testing.T) {
	plan := domain.DefaultPlan()
	assert.Equal(t, 4, plan.Points.PointsFor(domain.ProductFreeboxPop))
	assert.Equal(t, 6, plan.Points.PointsFor(domain.ProductFreeboxUltra))
	assert.Equal(t, 1, plan.Points.PointsFor(domain.Product("mystery box")))
}

func TestCommissionForDefaultsUnknownToZero(t *testing.T) {
	plan := domain.DefaultPlan()
	assert.Equal(t, int64(4000), plan.Schedule.CommissionFor(1, domain.ProductFreeboxPop))
	assert.Equal(t, int64(0), plan.Schedule.CommissionFor(1, domain.Product("mystery box")))
	assert.Equal(t, int64(0), plan.Schedule.CommissionFor(7, domain.ProductFreeboxPop))
}

func TestTierBreakpoints(t *testing.T) {
	assert.Equal(t, 1, domain.TierFor(0))
	assert.Equal(t, 1, domain.TierFor(25))
	assert.Equal(t, 2, domain.TierFor(26))
	assert.Equal(t, 2, domain.TierFor(50))
	assert.Equal(t, 3, domain.TierFor(51))
	assert.Equal(t, 3, domain.TierFor(100))
	assert.Equal(t, 4, domain.TierFor(101))
	assert.Equal(t, 4, domain.TierFor(100000))
}
