package repository

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
	"github.com/teleforce-labs/teleforce/pkg/db/pagination"
	"gorm.io/gorm"
)

type repository struct{}

func Provide() saledomain.Repository {
	return &repository{}
}

func (r *repository) Insert(ctx context.Context, db *gorm.DB, sale *saledomain.SaleRecord) error {
	return db.WithContext(ctx).Create(sale).Error
}

func (r *repository) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*saledomain.SaleRecord, error) {
	var sale saledomain.SaleRecord
	err := db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		First(&sale).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

func (r *repository) MarkInstalled(ctx context.Context, db *gorm.DB, id snowflake.ID, at time.Time) error {
	return db.WithContext(ctx).Model(&saledomain.SaleRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{"installed_at": at, "updated_at": at}).Error
}

func (r *repository) SoftDelete(ctx context.Context, db *gorm.DB, id snowflake.ID, at time.Time) error {
	return db.WithContext(ctx).Model(&saledomain.SaleRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{"deleted_at": at, "updated_at": at}).Error
}

func (r *repository) List(ctx context.Context, db *gorm.DB, filter saledomain.ListOptions, page pagination.Pagination) ([]*saledomain.SaleRecord, error) {
	query := db.WithContext(ctx).Model(&saledomain.SaleRecord{}).
		Where("deleted_at IS NULL")

	if code := strings.TrimSpace(filter.SellerCode); code != "" {
		query = query.Where("seller_code = ?", code)
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

	var sales []*saledomain.SaleRecord
	err := query.Order("created_at ASC, id ASC").Find(&sales).Error
	return sales, err
}

func (r *repository) ListInstalled(ctx context.Context, db *gorm.DB, sellerCode string) ([]*saledomain.SaleRecord, error) {
	var sales []*saledomain.SaleRecord
	err := db.WithContext(ctx).
		Where("seller_code = ? AND installed_at IS NOT NULL AND deleted_at IS NULL", sellerCode).
		Order("installed_at ASC, id ASC").
		Find(&sales).Error
	return sales, err
}

func (r *repository) ListInstalledInRange(ctx context.Context, db *gorm.DB, sellerCode string, start, end time.Time) ([]*saledomain.SaleRecord, error) {
	var sales []*saledomain.SaleRecord
	err := db.WithContext(ctx).
		Where("seller_code = ? AND deleted_at IS NULL", sellerCode).
		Where("installed_at >= ? AND installed_at < ?", start, end).
		Order("installed_at ASC, id ASC").
		Find(&sales).Error
	return sales, err
}

func (r *repository) PurgeSoftDeleted(ctx context.Context, db *gorm.DB, before time.Time) (int64, error) {
	result := db.WithContext(ctx).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Delete(&saledomain.SaleRecord{})
	return result.RowsAffected, result.Error
}
