package service

import (
	"context"

	"github.com/teleforce-labs/teleforce/internal/clock"
	networkdomain "github.com/teleforce-labs/teleforce/internal/network/domain"
	"github.com/teleforce-labs/teleforce/internal/observability"
	qualificationdomain "github.com/teleforce-labs/teleforce/internal/qualification/domain"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Clock      clock.Clock
	Network    networkdomain.Service
	SellerRepo sellerdomain.Repository
	Metrics    *observability.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	clock      clock.Clock
	network    networkdomain.Service
	sellerRepo sellerdomain.Repository
	metrics    *observability.Metrics
}

func New(p Params) qualificationdomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("qualification.service"),
		clock:      p.Clock,
		network:    p.Network,
		sellerRepo: p.SellerRepo,
		metrics:    p.Metrics,
	}
}

// BuildPlan aggregates the seller's network and derives the gap
// analysis. Everything is recomputed on each call; nothing is cached
// as authoritative.
func (s *Service) BuildPlan(ctx context.Context, sellerCode string) (*qualificationdomain.ActionPlan, error) {
	seller, err := s.sellerRepo.FindByCode(ctx, s.db, sellerCode)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, sellerdomain.ErrSellerNotFound
	}

	summary, err := s.network.Aggregate(ctx, seller.SellerCode, networkdomain.RollupDirect)
	if err != nil {
		return nil, err
	}

	daysSinceStart := int(s.clock.Now(ctx).Sub(seller.JoinedAt).Hours() / 24)
	if daysSinceStart < 0 {
		daysSinceStart = 0
	}

	plan := BuildActionPlan(PlanInput{
		SellerCode:     seller.SellerCode,
		PersonalPoints: summary.PersonalPoints,
		GroupPoints:    summary.GroupPoints,
		Teams:          summary.Teams,
		DaysSinceStart: daysSinceStart,
		RecruitsCount:  summary.RecruitsCount,
	})

	if s.metrics != nil {
		s.metrics.ActionPlanRuns.Inc()
	}
	s.log.Info("action plan built",
		zap.String("seller_code", seller.SellerCode),
		zap.String("position", string(plan.Position)),
		zap.Bool("rc_qualified", plan.Qualification.Qualified),
		zap.Int("objectives", len(plan.Objectives)))
	return plan, nil
}
