// Package scheduler runs the periodic maintenance jobs: purging
// soft-deleted sale records past their retention window and logging a
// monthly commission snapshot for every seller. Snapshots are
// observability output only; commission results are always recomputed
// from sale records and never read back from a snapshot.
package scheduler

import (
	"context"
	"time"

	"github.com/teleforce-labs/teleforce/internal/clock"
	commissiondomain "github.com/teleforce-labs/teleforce/internal/commission/domain"
	"github.com/teleforce-labs/teleforce/internal/config"
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
	Config     config.Config
	Clock      clock.Clock
	SaleRepo   saledomain.Repository
	SellerRepo sellerdomain.Repository
	Commission commissiondomain.Service
}

type Scheduler struct {
	db         *gorm.DB
	log        *zap.Logger
	cfg        config.SchedulerConfig
	clock      clock.Clock
	saleRepo   saledomain.Repository
	sellerRepo sellerdomain.Repository
	commission commissiondomain.Service

	lastSnapshotMonth string
}

func New(p Params) *Scheduler {
	return &Scheduler{
		db:         p.DB,
		log:        p.Log.Named("scheduler"),
		cfg:        p.Config.Scheduler,
		clock:      p.Clock,
		saleRepo:   p.SaleRepo,
		sellerRepo: p.SellerRepo,
		commission: p.Commission,
	}
}

// RunForever ticks at the configured interval until ctx is cancelled.
func (s *Scheduler) RunForever(ctx context.Context) {
	interval := time.Duration(s.cfg.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	s.log.Info("scheduler started", zap.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs every due job once. Job failures are logged, never fatal.
func (s *Scheduler) Tick(ctx context.Context) {
	if err := s.PurgeDeletedSalesJob(ctx); err != nil {
		s.log.Error("sale purge job failed", zap.Error(err))
	}
	if err := s.CommissionSnapshotJob(ctx); err != nil {
		s.log.Error("commission snapshot job failed", zap.Error(err))
	}
}
