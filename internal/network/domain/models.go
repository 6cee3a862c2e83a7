// Package domain defines the sales-tree aggregation output consumed by
// the qualification engine.
package domain

import (
	"context"
	"errors"
)

// RollupDepth names how far team points roll up the tree. Only the
// direct depth is implemented: a recruit's team points are the recruit's
// own lifetime points, never the recursive sum over their sub-tree.
// Recursive rollups would double-count against the per-team capping
// rules of the Regional Coordinator qualification, so the full-subtree
// depth is rejected, not silently reinterpreted.
type RollupDepth string

const (
	RollupDirect      RollupDepth = "direct"
	RollupFullSubtree RollupDepth = "full-subtree"
)

var (
	ErrHierarchyCycle    = errors.New("seller hierarchy contains a sponsor-code cycle")
	ErrUnsupportedRollup = errors.New("only direct rollup depth is supported")
)

// TeamPoints is one direct recruit's lifetime point total.
type TeamPoints struct {
	SellerCode string `json:"seller_code"`
	Name       string `json:"name"`
	RawPoints  int    `json:"raw_points"`
}

// Summary is the lifetime aggregation for one seller: their own points
// plus one entry per direct recruit. Recomputed on demand, never stored.
type Summary struct {
	SellerCode     string       `json:"seller_code"`
	PersonalPoints int          `json:"personal_points"`
	Teams          []TeamPoints `json:"teams"`
	GroupPoints    int          `json:"group_points"`
	RecruitsCount  int          `json:"recruits_count"`
}

// TeamPointsByCode returns the teams as a map keyed by recruit code.
func (s *Summary) TeamPointsByCode() map[string]int {
	points := make(map[string]int, len(s.Teams))
	for _, team := range s.Teams {
		points[team.SellerCode] = team.RawPoints
	}
	return points
}

type Service interface {
	Aggregate(ctx context.Context, sellerCode string, depth RollupDepth) (*Summary, error)
}
