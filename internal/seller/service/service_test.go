package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	"github.com/teleforce-labs/teleforce/internal/seller/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) sellerdomain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&sellerdomain.Seller{}))

	node, err := snowflake.NewNode(3)
	require.NoError(t, err)

	return New(Params{DB: db, Log: zap.NewNop(), GenID: node, Repo: repository.Provide()})
}

func TestCreateGeneratesUniqueSlugCodes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, sellerdomain.CreateRequest{FirstName: "Marie", LastName: "Durand"})
	require.NoError(t, err)
	require.Equal(t, "marie-durand", first.SellerCode)

	second, err := svc.Create(ctx, sellerdomain.CreateRequest{FirstName: "Marie", LastName: "Durand"})
	require.NoError(t, err)
	require.Equal(t, "marie-durand-2", second.SellerCode)

	third, err := svc.Create(ctx, sellerdomain.CreateRequest{FirstName: "Marie", LastName: "Durand"})
	require.NoError(t, err)
	require.Equal(t, "marie-durand-3", third.SellerCode)
}

func TestCreateValidatesNameAndSponsor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, sellerdomain.CreateRequest{FirstName: " ", LastName: "Durand"})
	require.ErrorIs(t, err, sellerdomain.ErrInvalidName)

	_, err = svc.Create(ctx, sellerdomain.CreateRequest{
		FirstName:   "Paul",
		LastName:    "Martin",
		SponsorCode: "nobody",
	})
	require.ErrorIs(t, err, sellerdomain.ErrUnknownSponsor)
}

func TestCreateResolvesSponsor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	root, err := svc.Create(ctx, sellerdomain.CreateRequest{FirstName: "Marie", LastName: "Durand"})
	require.NoError(t, err)

	recruit, err := svc.Create(ctx, sellerdomain.CreateRequest{
		FirstName:   "Paul",
		LastName:    "Martin",
		SponsorCode: root.SellerCode,
	})
	require.NoError(t, err)
	require.NotNil(t, recruit.SponsorCode)
	require.Equal(t, root.SellerCode, *recruit.SponsorCode)

	recruits, err := svc.ListRecruits(ctx, root.SellerCode)
	require.NoError(t, err)
	require.Len(t, recruits, 1)
	require.Equal(t, recruit.SellerCode, recruits[0].SellerCode)
}

func TestGetByCodeNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByCode(context.Background(), "ghost")
	require.ErrorIs(t, err, sellerdomain.ErrSellerNotFound)
}

func TestListPaginates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	names := []string{"Alice", "Bruno", "Chloe", "David", "Elise"}
	for _, name := range names {
		_, err := svc.Create(ctx, sellerdomain.CreateRequest{FirstName: name, LastName: "Test"})
		require.NoError(t, err)
	}

	page1, err := svc.List(ctx, sellerdomain.ListOptions{PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page1.Sellers, 2)
	require.True(t, page1.PageInfo.HasMore)
	require.NotEmpty(t, page1.PageInfo.NextPageToken)

	page2, err := svc.List(ctx, sellerdomain.ListOptions{
		PageSize:  10,
		PageToken: page1.PageInfo.NextPageToken,
	})
	require.NoError(t, err)
	require.Len(t, page2.Sellers, 3)
	require.False(t, page2.PageInfo.HasMore)

	seen := map[string]bool{}
	for _, s := range append(page1.Sellers, page2.Sellers...) {
		seen[s.SellerCode] = true
	}
	require.Len(t, seen, 5, "pages never overlap or skip")
}
