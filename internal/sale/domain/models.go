// Package domain contains sale record models. A sale contributes to
// commission and point totals only once it is installed, not soft-deleted,
// and (for the monthly path) installed inside the queried month.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/teleforce-labs/teleforce/internal/catalog/domain"
	"gorm.io/datatypes"
)

// SaleRecord is one sold unit. InstalledAt is the event that makes the
// sale count; a nil InstalledAt means the sale is pending and excluded
// from every computation. Point totals are never cached on the record:
// engines always recompute from the source rows.
type SaleRecord struct {
	ID           snowflake.ID      `gorm:"primaryKey" json:"id"`
	SellerCode   string            `gorm:"type:text;not null;index" json:"seller_code"`
	Product      string            `gorm:"type:text;not null" json:"product"`
	CustomerName string            `gorm:"type:text" json:"customer_name,omitempty"`
	InstalledAt  *time.Time        `gorm:"index" json:"installed_at,omitempty"`
	DeletedAt    *time.Time        `json:"deleted_at,omitempty"`
	Metadata     datatypes.JSONMap `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt    time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updated_at"`
}

func (SaleRecord) TableName() string { return "sale_records" }

// CanonicalProduct returns the normalized product identifier.
func (s SaleRecord) CanonicalProduct() catalogdomain.Product {
	return catalogdomain.Canonicalize(s.Product)
}

type CreateRequest struct {
	SellerCode   string         `json:"seller_code" binding:"required"`
	Product      string         `json:"product" binding:"required"`
	CustomerName string         `json:"customer_name"`
	InstalledAt  *time.Time     `json:"installed_at"`
	Metadata     map[string]any `json:"metadata"`
}

type ListOptions struct {
	SellerCode string `form:"seller_code"`
	PageToken  string `form:"page_token"`
	PageSize   int    `form:"page_size"`
}
