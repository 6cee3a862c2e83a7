package service

import (
	"context"
	"strings"
	"time"

	"github.com/teleforce-labs/teleforce/internal/catalog"
	catalogdomain "github.com/teleforce-labs/teleforce/internal/catalog/domain"
	commissiondomain "github.com/teleforce-labs/teleforce/internal/commission/domain"
	"github.com/teleforce-labs/teleforce/internal/observability"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Plans      *catalog.Provider
	SaleRepo   saledomain.Repository
	SellerRepo sellerdomain.Repository
	Metrics    *observability.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	plans      *catalog.Provider
	saleRepo   saledomain.Repository
	sellerRepo sellerdomain.Repository
	metrics    *observability.Metrics
}

func New(p Params) commissiondomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("commission.service"),
		plans:      p.Plans,
		saleRepo:   p.SaleRepo,
		sellerRepo: p.SellerRepo,
		metrics:    p.Metrics,
	}
}

func (s *Service) CalculateMonth(ctx context.Context, sellerCode, month string) (*commissiondomain.Result, error) {
	start, end, err := parseMonth(month)
	if err != nil {
		return nil, err
	}

	seller, err := s.sellerRepo.FindByCode(ctx, s.db, sellerCode)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, sellerdomain.ErrSellerNotFound
	}

	sales, err := s.saleRepo.ListInstalledInRange(ctx, s.db, seller.SellerCode, start, end)
	if err != nil {
		return nil, err
	}

	plan := s.plans.Plan()
	totalCents, totalPoints, ledger := runEngine(plan, sales)

	result := &commissiondomain.Result{
		SellerCode:           seller.SellerCode,
		Month:                month,
		TotalCommissionCents: totalCents,
		TotalPoints:          totalPoints,
		FinalTier:            catalogdomain.TierFor(totalPoints),
		Ledger:               ledger,
		Installations:        buildInstallations(plan, sales),
	}

	if s.metrics != nil {
		s.metrics.CommissionRuns.Inc()
		s.metrics.CommissionAmountCents.Add(float64(totalCents))
	}
	s.log.Info("cvd computed",
		zap.String("seller_code", seller.SellerCode),
		zap.String("month", month),
		zap.Int("total_points", totalPoints),
		zap.Int64("total_commission_cents", totalCents))
	return result, nil
}

func buildInstallations(plan catalogdomain.CommissionPlan, sales []*saledomain.SaleRecord) []commissiondomain.Installation {
	installations := make([]commissiondomain.Installation, 0, len(sales))
	for _, sale := range sales {
		installations = append(installations, commissiondomain.Installation{
			ID:           sale.ID,
			CustomerName: sale.CustomerName,
			Product:      sale.Product,
			Points:       plan.Points.PointsFor(sale.CanonicalProduct()),
			InstalledAt:  *sale.InstalledAt,
		})
	}
	return installations
}

// parseMonth returns the [start, end) window of a "YYYY-MM" month in UTC.
func parseMonth(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", strings.TrimSpace(month))
	if err != nil {
		return time.Time{}, time.Time{}, commissiondomain.ErrInvalidMonth
	}
	start = start.UTC()
	return start, start.AddDate(0, 1, 0), nil
}
