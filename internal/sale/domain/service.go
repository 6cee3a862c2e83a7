package domain

import (
	"context"
	"errors"

	"github.com/teleforce-labs/teleforce/pkg/db/pagination"
)

var (
	ErrSaleNotFound     = errors.New("sale record not found")
	ErrInvalidProduct   = errors.New("sale product is required")
	ErrAlreadyInstalled = errors.New("sale record is already installed")
)

type ListResponse struct {
	Sales    []*SaleRecord       `json:"sales"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*SaleRecord, error)
	Install(ctx context.Context, id string) (*SaleRecord, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) (ListResponse, error)
}
