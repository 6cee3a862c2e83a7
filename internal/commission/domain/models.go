// Package domain defines the CVD (direct-sales commission) result types.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/teleforce-labs/teleforce/internal/catalog/domain"
)

var ErrInvalidMonth = errors.New("month must be formatted as YYYY-MM")

// LedgerEntry records one crossed palier (multiple of 5 cumulative
// points). The product is the one of the sale that pushed the total over
// the threshold; when a single sale crosses several paliers the same
// product, and therefore the same amount, repeats for each of them.
type LedgerEntry struct {
	Palier           int                   `json:"palier"`
	PalierPoints     int                   `json:"palier_points"`
	CumulativePoints int                   `json:"cumulative_points"`
	Tier             int                   `json:"tier"`
	Product          catalogdomain.Product `json:"product"`
	AmountCents      int64                 `json:"amount_cents"`
	SaleID           snowflake.ID          `json:"sale_id"`
}

// Installation is one counted sale in the result, in route-layer shape.
type Installation struct {
	ID           snowflake.ID `json:"id"`
	CustomerName string       `json:"customer_name,omitempty"`
	Product      string       `json:"product"`
	Points       int          `json:"points"`
	InstalledAt  time.Time    `json:"installed_at"`
}

// Result is the full monthly CVD output. It is recomputed from sale
// records on every call and never persisted, so it cannot drift from the
// underlying data. A month without sales is a zero-valued Result, not an
// error.
type Result struct {
	SellerCode           string         `json:"seller_code"`
	Month                string         `json:"month"`
	TotalCommissionCents int64          `json:"total_commission_cents"`
	TotalPoints          int            `json:"total_points"`
	FinalTier            int            `json:"palier"`
	Ledger               []LedgerEntry  `json:"ledger"`
	Installations        []Installation `json:"installations"`
}

type Service interface {
	// CalculateMonth computes the CVD result for one seller over one
	// calendar month. month is "YYYY-MM".
	CalculateMonth(ctx context.Context, sellerCode, month string) (*Result, error)
}
