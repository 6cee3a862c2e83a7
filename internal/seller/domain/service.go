package domain

import (
	"context"
	"errors"

	"github.com/teleforce-labs/teleforce/pkg/db/pagination"
)

var (
	ErrSellerNotFound = errors.New("seller not found")
	ErrInvalidName    = errors.New("seller first and last name are required")
	ErrUnknownSponsor = errors.New("sponsor code does not reference an existing seller")
)

type ListResponse struct {
	Sellers  []*Seller           `json:"sellers"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Seller, error)
	GetByCode(ctx context.Context, code string) (*Seller, error)
	List(ctx context.Context, opts ListOptions) (ListResponse, error)
	ListRecruits(ctx context.Context, sponsorCode string) ([]*Seller, error)
}
