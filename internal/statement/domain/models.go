// Package domain defines the monthly commission statement document.
package domain

import (
	"context"
	"time"
)

// Statement is a rendered commission statement. The PDF is produced on
// demand from the commission result and never stored; the ULID only
// identifies the rendered document instance.
type Statement struct {
	ID          string    `json:"id"`
	SellerCode  string    `json:"seller_code"`
	Month       string    `json:"month"`
	GeneratedAt time.Time `json:"generated_at"`
	PDF         []byte    `json:"-"`
}

type Service interface {
	Render(ctx context.Context, sellerCode, month string) (*Statement, error)
}
