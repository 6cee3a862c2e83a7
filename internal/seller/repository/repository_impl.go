package repository

import (
	"context"
	"strings"
	"time"

	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	"github.com/teleforce-labs/teleforce/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() sellerdomain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, seller *sellerdomain.Seller) error {
	return db.WithContext(ctx).Create(seller).Error
}

func (r *repository) FindByCode(ctx context.Context, db *gorm.DB, code string) (*sellerdomain.Seller, error) {
	var seller sellerdomain.Seller
	err := db.WithContext(ctx).
		Where("seller_code = ?", strings.TrimSpace(code)).
		First(&seller).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &seller, nil
}

func (r *repository) ListBySponsorCode(ctx context.Context, db *gorm.DB, sponsorCode string) ([]*sellerdomain.Seller, error) {
	var sellers []*sellerdomain.Seller
	err := db.WithContext(ctx).
		Where("sponsor_code = ?", sponsorCode).
		Order("created_at ASC, id ASC").
		Find(&sellers).Error
	return sellers, err
}

func (r *repository) ListAll(ctx context.Context, db *gorm.DB) ([]*sellerdomain.Seller, error) {
	var sellers []*sellerdomain.Seller
	err := db.WithContext(ctx).Order("id ASC").Find(&sellers).Error
	return sellers, err
}

func (r *repository) List(ctx context.Context, db *gorm.DB, filter sellerdomain.ListOptions, page pagination.Pagination) ([]*sellerdomain.Seller, error) {
	query := db.WithContext(ctx).Model(&sellerdomain.Seller{})

	if code := strings.TrimSpace(filter.SponsorCode); code != "" {
		query = query.Where("sponsor_code = ?", code)
	}

	if token := strings.TrimSpace(page.PageToken); token != "" {
		cursor, err := pagination.DecodeCursor(token)
		if err == nil {
			if createdAt, parseErr := time.Parse(time.RFC3339Nano, cursor.CreatedAt); parseErr == nil {
				query = query.Where("(created_at, id) > (?, ?)", createdAt, cursor.ID)
			}
		}
	}

	if page.PageSize > 0 {
		query = query.Limit(page.PageSize + 1)
	}

	var sellers []*sellerdomain.Seller
	err := query.Order("created_at ASC, id ASC").Find(&sellers).Error
	return sellers, err
}

func (r *repository) CodeExists(ctx context.Context, db *gorm.DB, code string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&sellerdomain.Seller{}).
		Where("seller_code = ?", code).
		Count(&count).Error
	return count > 0, err
}
