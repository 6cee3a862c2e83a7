// Package seed bootstraps a demo distribution network for local runs:
// one root seller, a handful of recruits, and enough installed sales to
// exercise the commission and qualification paths.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	"gorm.io/gorm"
)

type demoSeller struct {
	firstName string
	lastName  string
	sponsor   string // seller code, empty for the root
	joinedAgo int    // days before now
	sales     []demoSale
}

type demoSale struct {
	product      string
	customerName string
	installedAgo int // days before now; negative means not installed
	count        int
}

var demoNetwork = []demoSeller{
	{
		firstName: "Marie", lastName: "Durand", joinedAgo: 200,
		sales: []demoSale{
			{product: "freebox ultra", customerName: "Cabinet Leroy", installedAgo: 40, count: 3},
			{product: "forfait 5g", customerName: "Boulangerie Petit", installedAgo: 20, count: 4},
		},
	},
	{
		firstName: "Paul", lastName: "Martin", sponsor: "marie-durand", joinedAgo: 160,
		sales: []demoSale{
			{product: "freebox essentiel", customerName: "Garage Bernard", installedAgo: 30, count: 5},
			{product: "freebox pop", customerName: "Pharmacie Morel", installedAgo: 15, count: 4},
		},
	},
	{
		firstName: "Sophie", lastName: "Lefevre", sponsor: "marie-durand", joinedAgo: 150,
		sales: []demoSale{
			{product: "freebox ultra", customerName: "Restaurant Chez Nous", installedAgo: 25, count: 6},
		},
	},
	{
		firstName: "Lucas", lastName: "Moreau", sponsor: "marie-durand", joinedAgo: 90,
		sales: []demoSale{
			{product: "freebox pop", customerName: "Fleuriste Rose", installedAgo: 10, count: 2},
			{product: "forfait 5g", customerName: "Kiosque Gare", installedAgo: -1, count: 1},
		},
	},
	{
		firstName: "Emma", lastName: "Roux", sponsor: "paul-martin", joinedAgo: 60,
		sales: []demoSale{
			{product: "freebox essentiel", customerName: "Atelier Bois", installedAgo: 5, count: 2},
		},
	},
}

// EnsureDemoNetwork inserts the demo sellers and sales once. A database
// that already has sellers is left untouched.
func EnsureDemoNetwork(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&sellerdomain.Seller{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()
		for _, ds := range demoNetwork {
			code := slug.Make(ds.firstName + " " + ds.lastName)
			seller := &sellerdomain.Seller{
				ID:         node.Generate(),
				SellerCode: code,
				FirstName:  ds.firstName,
				LastName:   ds.lastName,
				Active:     true,
				JoinedAt:   now.AddDate(0, 0, -ds.joinedAgo),
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			if ds.sponsor != "" {
				sponsor := ds.sponsor
				seller.SponsorCode = &sponsor
			}
			if err := tx.Create(seller).Error; err != nil {
				return err
			}

			for _, sale := range ds.sales {
				for i := 0; i < sale.count; i++ {
					record := &saledomain.SaleRecord{
						ID:           node.Generate(),
						SellerCode:   code,
						Product:      sale.product,
						CustomerName: sale.customerName,
						CreatedAt:    now,
						UpdatedAt:    now,
					}
					if sale.installedAgo >= 0 {
						installedAt := now.AddDate(0, 0, -sale.installedAgo-i)
						record.InstalledAt = &installedAt
					}
					if err := tx.Create(record).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}
