// Package domain contains the seller hierarchy models.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Seller is a person in the distribution hierarchy. SponsorCode references
// another seller's SellerCode; a seller without a sponsor is a root of the
// tree. The sponsor graph is expected to be acyclic; the network aggregator
// verifies this before walking it.
type Seller struct {
	ID          snowflake.ID      `gorm:"primaryKey" json:"id"`
	SellerCode  string            `gorm:"type:text;not null;uniqueIndex" json:"seller_code"`
	SponsorCode *string           `gorm:"type:text;index" json:"sponsor_code,omitempty"`
	FirstName   string            `gorm:"type:text;not null" json:"first_name"`
	LastName    string            `gorm:"type:text;not null" json:"last_name"`
	Email       string            `gorm:"type:text" json:"email,omitempty"`
	Active      bool              `gorm:"not null;default:true" json:"active"`
	JoinedAt    time.Time         `gorm:"not null" json:"joined_at"`
	Metadata    datatypes.JSONMap `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt   time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"not null" json:"updated_at"`
}

func (Seller) TableName() string { return "sellers" }

type CreateRequest struct {
	FirstName   string         `json:"first_name" binding:"required"`
	LastName    string         `json:"last_name" binding:"required"`
	Email       string         `json:"email"`
	SponsorCode string         `json:"sponsor_code"`
	JoinedAt    *time.Time     `json:"joined_at"`
	Metadata    map[string]any `json:"metadata"`
}

type ListOptions struct {
	SponsorCode string `form:"sponsor_code"`
	PageToken   string `form:"page_token"`
	PageSize    int    `form:"page_size"`
}
