package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/teleforce-labs/teleforce/internal/catalog"
	commissionservice "github.com/teleforce-labs/teleforce/internal/commission/service"
	"github.com/teleforce-labs/teleforce/internal/config"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
	salerepository "github.com/teleforce-labs/teleforce/internal/sale/repository"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	sellerrepository "github.com/teleforce-labs/teleforce/internal/seller/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixedClock struct{ at time.Time }

func (c *fixedClock) Now(context.Context) time.Time { return c.at }

func newScheduler(t *testing.T, cfg config.SchedulerConfig, at time.Time) (*Scheduler, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&sellerdomain.Seller{}, &saledomain.SaleRecord{}))

	node, err := snowflake.NewNode(9)
	require.NoError(t, err)

	log := zap.NewNop()
	saleRepo := salerepository.Provide()
	sellerRepo := sellerrepository.Provide()
	commissionSvc := commissionservice.New(commissionservice.Params{
		DB:         db,
		Log:        log,
		Plans:      catalog.NewProvider(log),
		SaleRepo:   saleRepo,
		SellerRepo: sellerRepo,
	})

	return &Scheduler{
		db:         db,
		log:        log,
		cfg:        cfg,
		clock:      &fixedClock{at: at},
		saleRepo:   saleRepo,
		sellerRepo: sellerRepo,
		commission: commissionSvc,
	}, db, node
}

func TestPurgeDeletedSalesJob(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	s, db, node := newScheduler(t, config.SchedulerConfig{SaleRetentionDays: 30}, now)

	oldDelete := now.AddDate(0, 0, -60)
	recentDelete := now.AddDate(0, 0, -5)
	for i, deletedAt := range []*time.Time{&oldDelete, &recentDelete, nil} {
		require.NoError(t, db.Create(&saledomain.SaleRecord{
			ID:         node.Generate(),
			SellerCode: "seller",
			Product:    "freebox pop",
			DeletedAt:  deletedAt,
			CreatedAt:  now.AddDate(0, 0, -90+i),
			UpdatedAt:  now,
		}).Error)
	}

	require.NoError(t, s.PurgeDeletedSalesJob(context.Background()))

	var remaining int64
	require.NoError(t, db.Model(&saledomain.SaleRecord{}).Count(&remaining).Error)
	require.Equal(t, int64(2), remaining, "only the stale soft-deleted row is purged")
}

func TestPurgeDisabledWithoutRetention(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	s, db, node := newScheduler(t, config.SchedulerConfig{SaleRetentionDays: 0}, now)

	deletedAt := now.AddDate(0, 0, -400)
	require.NoError(t, db.Create(&saledomain.SaleRecord{
		ID:         node.Generate(),
		SellerCode: "seller",
		Product:    "freebox pop",
		DeletedAt:  &deletedAt,
		CreatedAt:  now.AddDate(0, 0, -400),
		UpdatedAt:  now,
	}).Error)

	require.NoError(t, s.PurgeDeletedSalesJob(context.Background()))

	var remaining int64
	require.NoError(t, db.Model(&saledomain.SaleRecord{}).Count(&remaining).Error)
	require.Equal(t, int64(1), remaining)
}

func TestCommissionSnapshotRunsOncePerMonth(t *testing.T) {
	now := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	s, db, node := newScheduler(t, config.SchedulerConfig{SnapshotDayOfMonth: 1}, now)

	require.NoError(t, db.Create(&sellerdomain.Seller{
		ID:         node.Generate(),
		SellerCode: "marie-durand",
		FirstName:  "Marie",
		LastName:   "Durand",
		Active:     true,
		JoinedAt:   now.AddDate(-1, 0, 0),
		CreatedAt:  now,
		UpdatedAt:  now,
	}).Error)

	require.NoError(t, s.CommissionSnapshotJob(context.Background()))
	require.Equal(t, "2026-07", s.lastSnapshotMonth)

	// Second tick in the same month is a no-op.
	require.NoError(t, s.CommissionSnapshotJob(context.Background()))
	require.Equal(t, "2026-07", s.lastSnapshotMonth)
}

func TestCommissionSnapshotWaitsForConfiguredDay(t *testing.T) {
	now := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	s, _, _ := newScheduler(t, config.SchedulerConfig{SnapshotDayOfMonth: 5}, now)

	require.NoError(t, s.CommissionSnapshotJob(context.Background()))
	require.Empty(t, s.lastSnapshotMonth)
}
