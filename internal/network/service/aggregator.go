package service

import (
	"context"
	"strings"

	"github.com/teleforce-labs/teleforce/internal/catalog"
	catalogdomain "github.com/teleforce-labs/teleforce/internal/catalog/domain"
	networkdomain "github.com/teleforce-labs/teleforce/internal/network/domain"
	"github.com/teleforce-labs/teleforce/internal/observability"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	Plans      *catalog.Provider
	SaleRepo   saledomain.Repository
	SellerRepo sellerdomain.Repository
	Metrics    *observability.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	plans      *catalog.Provider
	saleRepo   saledomain.Repository
	sellerRepo sellerdomain.Repository
	metrics    *observability.Metrics
}

func New(p Params) networkdomain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("network.service"),
		plans:      p.Plans,
		saleRepo:   p.SaleRepo,
		sellerRepo: p.SellerRepo,
		metrics:    p.Metrics,
	}
}

// Aggregate computes the lifetime point summary for a seller and their
// direct recruits. The whole hierarchy is cycle-checked before any points
// are summed; an invalid hierarchy fails fast instead of recursing.
func (s *Service) Aggregate(ctx context.Context, sellerCode string, depth networkdomain.RollupDepth) (*networkdomain.Summary, error) {
	if depth != networkdomain.RollupDirect {
		return nil, networkdomain.ErrUnsupportedRollup
	}

	root, err := s.sellerRepo.FindByCode(ctx, s.db, sellerCode)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, sellerdomain.ErrSellerNotFound
	}

	all, err := s.sellerRepo.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if err := checkHierarchy(all); err != nil {
		if s.metrics != nil {
			s.metrics.HierarchyCycleFailures.Inc()
		}
		s.log.Error("sponsor hierarchy rejected", zap.String("seller_code", root.SellerCode), zap.Error(err))
		return nil, err
	}

	plan := s.plans.Plan()

	personalPoints, err := s.lifetimePoints(ctx, plan, root.SellerCode)
	if err != nil {
		return nil, err
	}

	recruits := directRecruits(all, root.SellerCode)
	summary := &networkdomain.Summary{
		SellerCode:     root.SellerCode,
		PersonalPoints: personalPoints,
		Teams:          make([]networkdomain.TeamPoints, 0, len(recruits)),
		RecruitsCount:  len(recruits),
	}

	// One query per recruit. Latency-bound, not correctness-bound; fine
	// for the network sizes in play.
	for _, recruit := range recruits {
		points, err := s.lifetimePoints(ctx, plan, recruit.SellerCode)
		if err != nil {
			return nil, err
		}
		summary.Teams = append(summary.Teams, networkdomain.TeamPoints{
			SellerCode: recruit.SellerCode,
			Name:       strings.TrimSpace(recruit.FirstName + " " + recruit.LastName),
			RawPoints:  points,
		})
		summary.GroupPoints += points
	}

	return summary, nil
}

func (s *Service) lifetimePoints(ctx context.Context, plan catalogdomain.CommissionPlan, sellerCode string) (int, error) {
	sales, err := s.saleRepo.ListInstalled(ctx, s.db, sellerCode)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, sale := range sales {
		total += plan.Points.PointsFor(sale.CanonicalProduct())
	}
	return total, nil
}

func directRecruits(all []*sellerdomain.Seller, rootCode string) []*sellerdomain.Seller {
	var recruits []*sellerdomain.Seller
	for _, seller := range all {
		if seller.SponsorCode != nil && *seller.SponsorCode == rootCode {
			recruits = append(recruits, seller)
		}
	}
	return recruits
}

// checkHierarchy builds an arena of nodes indexed by position with parent
// pointers and walks every chain once. Walk states: 0 unvisited, 2 known
// acyclic; an in-progress mark per walk catches cycles without recursion.
func checkHierarchy(all []*sellerdomain.Seller) error {
	index := make(map[string]int, len(all))
	for i, seller := range all {
		index[seller.SellerCode] = i
	}

	parent := make([]int, len(all))
	for i, seller := range all {
		parent[i] = -1
		if seller.SponsorCode != nil {
			// A sponsor code pointing outside the known set is treated as
			// a root, not an error; the aggregation does not depend on it.
			if j, ok := index[*seller.SponsorCode]; ok {
				parent[i] = j
			}
		}
	}

	const (
		unvisited = 0
		done      = 2
	)
	state := make([]int, len(all))
	for i := range all {
		if state[i] != unvisited {
			continue
		}
		walk := i + 3 // unique per-walk mark, disjoint from unvisited/done
		node := i
		for node != -1 && state[node] == unvisited {
			state[node] = walk
			node = parent[node]
		}
		if node != -1 && state[node] == walk {
			return networkdomain.ErrHierarchyCycle
		}
		node = i
		for node != -1 && state[node] == walk {
			state[node] = done
			node = parent[node]
		}
	}
	return nil
}
