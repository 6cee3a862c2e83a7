package scheduler

import (
	"context"

	"go.uber.org/zap"
)

// PurgeDeletedSalesJob hard-deletes soft-deleted sale records older
// than the retention window. Soft-deleted rows are already excluded
// from every computation; this only reclaims storage.
func (s *Scheduler) PurgeDeletedSalesJob(ctx context.Context) error {
	retentionDays := s.cfg.SaleRetentionDays
	if retentionDays <= 0 {
		return nil
	}

	cutoff := s.clock.Now(ctx).AddDate(0, 0, -retentionDays)
	purged, err := s.saleRepo.PurgeSoftDeleted(ctx, s.db, cutoff)
	if err != nil {
		return err
	}
	if purged > 0 {
		s.log.Info("purged soft-deleted sales",
			zap.Int64("purged", purged),
			zap.Time("cutoff", cutoff))
	}
	return nil
}

// CommissionSnapshotJob logs last month's commission result for every
// seller, once per month on or after the configured day.
func (s *Scheduler) CommissionSnapshotJob(ctx context.Context) error {
	now := s.clock.Now(ctx)
	if now.Day() < s.cfg.SnapshotDayOfMonth {
		return nil
	}

	month := now.AddDate(0, -1, 0).Format("2006-01")
	if month == s.lastSnapshotMonth {
		return nil
	}

	sellers, err := s.sellerRepo.ListAll(ctx, s.db)
	if err != nil {
		return err
	}

	for _, seller := range sellers {
		result, err := s.commission.CalculateMonth(ctx, seller.SellerCode, month)
		if err != nil {
			s.log.Error("snapshot calculation failed",
				zap.String("seller_code", seller.SellerCode),
				zap.String("month", month),
				zap.Error(err))
			continue
		}
		s.log.Info("commission snapshot",
			zap.String("seller_code", seller.SellerCode),
			zap.String("month", month),
			zap.Int("total_points", result.TotalPoints),
			zap.Int("palier", result.FinalTier),
			zap.Int64("total_commission_cents", result.TotalCommissionCents))
	}

	s.lastSnapshotMonth = month
	s.log.Info("commission snapshot completed",
		zap.String("month", month),
		zap.Int("sellers", len(sellers)))
	return nil
}
