package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	"github.com/teleforce-labs/teleforce/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  sellerdomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  sellerdomain.Repository
}

func New(p Params) sellerdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("seller.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req sellerdomain.CreateRequest) (*sellerdomain.Seller, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, sellerdomain.ErrInvalidName
	}

	var sponsorCode *string
	if code := strings.TrimSpace(req.SponsorCode); code != "" {
		sponsor, err := s.repo.FindByCode(ctx, s.db, code)
		if err != nil {
			return nil, err
		}
		if sponsor == nil {
			return nil, sellerdomain.ErrUnknownSponsor
		}
		sponsorCode = &sponsor.SellerCode
	}

	code, err := s.generateCode(ctx, firstName, lastName)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	joinedAt := now
	if req.JoinedAt != nil {
		joinedAt = req.JoinedAt.UTC()
	}

	entity := &sellerdomain.Seller{
		ID:          s.genID.Generate(),
		SellerCode:  code,
		SponsorCode: sponsorCode,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       strings.TrimSpace(req.Email),
		Active:      true,
		JoinedAt:    joinedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Metadata != nil {
		entity.Metadata = datatypes.JSONMap(req.Metadata)
	}

	if err := s.repo.Insert(ctx, s.db, entity); err != nil {
		return nil, err
	}

	s.log.Info("seller created",
		zap.String("seller_code", entity.SellerCode),
		zap.Bool("has_sponsor", sponsorCode != nil))
	return entity, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*sellerdomain.Seller, error) {
	seller, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, sellerdomain.ErrSellerNotFound
	}
	return seller, nil
}

func (s *Service) List(ctx context.Context, opts sellerdomain.ListOptions) (sellerdomain.ListResponse, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	sellers, err := s.repo.List(ctx, s.db, opts, pagination.Pagination{
		PageToken: opts.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return sellerdomain.ListResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(sellers, pageSize, func(item *sellerdomain.Seller) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        item.ID.String(),
			CreatedAt: item.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(sellers) > pageSize {
		sellers = sellers[:pageSize]
	}

	resp := sellerdomain.ListResponse{Sellers: sellers}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) ListRecruits(ctx context.Context, sponsorCode string) ([]*sellerdomain.Seller, error) {
	sponsor, err := s.repo.FindByCode(ctx, s.db, sponsorCode)
	if err != nil {
		return nil, err
	}
	if sponsor == nil {
		return nil, sellerdomain.ErrSellerNotFound
	}
	return s.repo.ListBySponsorCode(ctx, s.db, sponsor.SellerCode)
}

// generateCode derives a unique seller code from the seller's name,
// appending a numeric suffix on collision.
func (s *Service) generateCode(ctx context.Context, firstName, lastName string) (string, error) {
	base := slug.Make(firstName + " " + lastName)
	code := base
	for attempt := 2; ; attempt++ {
		exists, err := s.repo.CodeExists(ctx, s.db, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		code = fmt.Sprintf("%s-%d", base, attempt)
	}
}
