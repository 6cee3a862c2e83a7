package service

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/teleforce-labs/teleforce/internal/clock"
	commissiondomain "github.com/teleforce-labs/teleforce/internal/commission/domain"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	statementdomain "github.com/teleforce-labs/teleforce/internal/statement/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Clock      clock.Clock
	Commission commissiondomain.Service
	SellerRepo sellerdomain.Repository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	clock      clock.Clock
	commission commissiondomain.Service
	sellerRepo sellerdomain.Repository
}

func New(p Params) statementdomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("statement.service"),
		clock:      p.Clock,
		commission: p.Commission,
		sellerRepo: p.SellerRepo,
	}
}

func (s *Service) Render(ctx context.Context, sellerCode, month string) (*statementdomain.Statement, error) {
	seller, err := s.sellerRepo.FindByCode(ctx, s.db, sellerCode)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, sellerdomain.ErrSellerNotFound
	}

	result, err := s.commission.CalculateMonth(ctx, seller.SellerCode, month)
	if err != nil {
		return nil, err
	}

	generatedAt := s.clock.Now(ctx)
	id := ulid.Make().String()
	name := strings.TrimSpace(seller.FirstName + " " + seller.LastName)

	pdf, err := renderPDF(result, name, id, generatedAt)
	if err != nil {
		return nil, err
	}

	s.log.Info("statement rendered",
		zap.String("seller_code", seller.SellerCode),
		zap.String("month", month),
		zap.String("document_id", id),
		zap.Int("bytes", len(pdf)))
	return &statementdomain.Statement{
		ID:          id,
		SellerCode:  seller.SellerCode,
		Month:       month,
		GeneratedAt: generatedAt,
		PDF:         pdf,
	}, nil
}
