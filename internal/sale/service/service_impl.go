package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/teleforce-labs/teleforce/internal/catalog/domain"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	"github.com/teleforce-labs/teleforce/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       saledomain.Repository
	SellerRepo sellerdomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	genID      *snowflake.Node
	repo       saledomain.Repository
	sellerRepo sellerdomain.Repository
}

func New(p Params) saledomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("sale.service"),
		genID:      p.GenID,
		repo:       p.Repo,
		sellerRepo: p.SellerRepo,
	}
}

func (s *Service) Create(ctx context.Context, req saledomain.CreateRequest) (*saledomain.SaleRecord, error) {
	product := strings.TrimSpace(req.Product)
	if product == "" {
		return nil, saledomain.ErrInvalidProduct
	}

	seller, err := s.sellerRepo.FindByCode(ctx, s.db, req.SellerCode)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, sellerdomain.ErrSellerNotFound
	}

	now := time.Now().UTC()
	entity := &saledomain.SaleRecord{
		ID:           s.genID.Generate(),
		SellerCode:   seller.SellerCode,
		Product:      string(catalogdomain.Canonicalize(product)),
		CustomerName: strings.TrimSpace(req.CustomerName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if req.InstalledAt != nil {
		installedAt := req.InstalledAt.UTC()
		entity.InstalledAt = &installedAt
	}
	if req.Metadata != nil {
		entity.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	s.log.Info("sale recorded",
		zap.String("seller_code", entity.SellerCode),
		zap.String("product", entity.Product),
		zap.Bool("installed", entity.InstalledAt != nil))
	return entity, nil
}

func (s *Service) Install(ctx context.Context, id string) (*saledomain.SaleRecord, error) {
	saleID, err := parseID(id)
	if err != nil {
		return nil, saledomain.ErrSaleNotFound
	}

	sale, err := s.repo.FindByID(ctx, s.db, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, saledomain.ErrSaleNotFound
	}
	if sale.InstalledAt != nil {
		return nil, saledomain.ErrAlreadyInstalled
	}

	now := time.Now().UTC()
	if err := s.repo.MarkInstalled(ctx, s.db, saleID, now); err != nil {
		return nil, err
	}
	sale.InstalledAt = &now
	sale.UpdatedAt = now
	return sale, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	saleID, err := parseID(id)
	if err != nil {
		return saledomain.ErrSaleNotFound
	}

	sale, err := s.repo.FindByID(ctx, s.db, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return saledomain.ErrSaleNotFound
	}

	return s.repo.SoftDelete(ctx, s.db, saleID, time.Now().UTC())
}

func (s *Service) List(ctx context.Context, opts saledomain.ListOptions) (saledomain.ListResponse, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	sales, err := s.repo.List(ctx, s.db, opts, pagination.Pagination{
		PageToken: opts.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return saledomain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(sales, pageSize, func(item *saledomain.SaleRecord) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        item.ID.String(),
			CreatedAt: item.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(sales) > pageSize {
		sales = sales[:pageSize]
	}

	resp := saledomain.ListResponse{Sales: sales}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}
