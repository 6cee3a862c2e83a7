package domain

import (
	"context"

	"github.com/teleforce-labs/teleforce/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, seller *Seller) error
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Seller, error)
	ListBySponsorCode(ctx context.Context, db *gorm.DB, sponsorCode string) ([]*Seller, error)
	ListAll(ctx context.Context, db *gorm.DB) ([]*Seller, error)
	List(ctx context.Context, db *gorm.DB, filter ListOptions, page pagination.Pagination) ([]*Seller, error)
	CodeExists(ctx context.Context, db *gorm.DB, code string) (bool, error)
}
