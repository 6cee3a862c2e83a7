package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/teleforce-labs/teleforce/pkg/db/pagination"
	"gorm.io/gorm"
)

// Repository is the read/write boundary for sale records. The two
// ListInstalled accessors are the only feeds the commission engines
// consume: rows are installed, not soft-deleted, and ordered by
// installation date then ID so commission attribution is deterministic.
type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, sale *SaleRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*SaleRecord, error)
	MarkInstalled(ctx context.Context, db *gorm.DB, id snowflake.ID, at time.Time) error
	SoftDelete(ctx context.Context, db *gorm.DB, id snowflake.ID, at time.Time) error
	List(ctx context.Context, db *gorm.DB, filter ListOptions, page pagination.Pagination) ([]*SaleRecord, error)
	ListInstalled(ctx context.Context, db *gorm.DB, sellerCode string) ([]*SaleRecord, error)
	ListInstalledInRange(ctx context.Context, db *gorm.DB, sellerCode string, start, end time.Time) ([]*SaleRecord, error)
	PurgeSoftDeleted(ctx context.Context, db *gorm.DB, before time.Time) (int64, error)
}
