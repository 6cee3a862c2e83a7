package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
	"github.com/teleforce-labs/teleforce/internal/sale/repository"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	sellerrepository "github.com/teleforce-labs/teleforce/internal/seller/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (saledomain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&sellerdomain.Seller{}, &saledomain.SaleRecord{}))

	node, err := snowflake.NewNode(4)
	require.NoError(t, err)

	svc := New(Params{
		DB:         db,
		Log:        zap.NewNop(),
		GenID:      node,
		Repo:       repository.Provide(),
		SellerRepo: sellerrepository.Provide(),
	})
	return svc, db
}

func seedSeller(t *testing.T, db *gorm.DB, code string) {
	t.Helper()
	now := time.Now().UTC()
	require.NoError(t, db.Create(&sellerdomain.Seller{
		ID:         snowflake.ID(now.UnixNano()),
		SellerCode: code,
		FirstName:  "Test",
		LastName:   code,
		Active:     true,
		JoinedAt:   now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}).Error)
}

func TestCreateCanonicalizesProduct(t *testing.T) {
	svc, db := newTestService(t)
	seedSeller(t, db, "marie-durand")

	sale, err := svc.Create(context.Background(), saledomain.CreateRequest{
		SellerCode: "marie-durand",
		Product:    "  Freebox   ULTRA ",
	})
	require.NoError(t, err)
	require.Equal(t, "freebox ultra", sale.Product)
	require.Nil(t, sale.InstalledAt)
}

func TestCreateAliasAndUnknownProducts(t *testing.T) {
	svc, db := newTestService(t)
	seedSeller(t, db, "marie-durand")
	ctx := context.Background()

	aliased, err := svc.Create(ctx, saledomain.CreateRequest{
		SellerCode: "marie-durand",
		Product:    "5G",
	})
	require.NoError(t, err)
	require.Equal(t, "forfait 5g", aliased.Product)

	// Unknown products are stored as-is (normalized); the engines apply
	// their own defaults, creation never rejects them.
	unknown, err := svc.Create(ctx, saledomain.CreateRequest{
		SellerCode: "marie-durand",
		Product:    "Box Pro",
	})
	require.NoError(t, err)
	require.Equal(t, "box pro", unknown.Product)
}

func TestCreateRequiresExistingSeller(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), saledomain.CreateRequest{
		SellerCode: "ghost",
		Product:    "freebox pop",
	})
	require.ErrorIs(t, err, sellerdomain.ErrSellerNotFound)
}

func TestInstallIsSingleShot(t *testing.T) {
	svc, db := newTestService(t)
	seedSeller(t, db, "marie-durand")
	ctx := context.Background()

	sale, err := svc.Create(ctx, saledomain.CreateRequest{
		SellerCode: "marie-durand",
		Product:    "freebox pop",
	})
	require.NoError(t, err)

	installed, err := svc.Install(ctx, sale.ID.String())
	require.NoError(t, err)
	require.NotNil(t, installed.InstalledAt)

	_, err = svc.Install(ctx, sale.ID.String())
	require.ErrorIs(t, err, saledomain.ErrAlreadyInstalled)
}

func TestDeleteIsSoftAndHidesRecord(t *testing.T) {
	svc, db := newTestService(t)
	seedSeller(t, db, "marie-durand")
	ctx := context.Background()

	sale, err := svc.Create(ctx, saledomain.CreateRequest{
		SellerCode: "marie-durand",
		Product:    "freebox pop",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, sale.ID.String()))

	// Hidden from the API surface.
	err = svc.Delete(ctx, sale.ID.String())
	require.ErrorIs(t, err, saledomain.ErrSaleNotFound)

	resp, err := svc.List(ctx, saledomain.ListOptions{SellerCode: "marie-durand"})
	require.NoError(t, err)
	require.Empty(t, resp.Sales)

	// Still present in storage until the retention purge.
	var count int64
	require.NoError(t, db.Model(&saledomain.SaleRecord{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestInstallUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Install(context.Background(), "not-a-number")
	require.ErrorIs(t, err, saledomain.ErrSaleNotFound)
}
