// Package domain defines the Regional Coordinator qualification rules
// and the action-plan output built on top of the sales-tree summary.
package domain

import "context"

// Qualification thresholds. The per-team cap and the dual gate
// (team count AND effective total) are both mandatory for RC.
const (
	TeamQualifyPoints   = 4000
	RCRequiredTeams     = 4
	RCRequiredEffective = 16000

	// QualifyWindowDays is the hard window for reaching RC, counted
	// from the seller's join date.
	QualifyWindowDays = 360

	// PersonalTargetPoints is the personal-production objective every
	// action plan carries, completed or not.
	PersonalTargetPoints = 100
)

// TeamBreakdown is one team's contribution to an RC evaluation.
// EffectivePoints is capped at TeamQualifyPoints for qualified teams
// and zero for unqualified ones; partial credit is disallowed.
type TeamBreakdown struct {
	SellerCode      string `json:"seller_code"`
	Name            string `json:"name"`
	RawPoints       int    `json:"raw_points"`
	EffectivePoints int    `json:"effective_points"`
	Qualified       bool   `json:"qualified"`
}

// RCEvaluation is the outcome of the capping engine over a set of teams.
type RCEvaluation struct {
	Qualified      bool            `json:"qualified"`
	QualifiedTeams int             `json:"qualified_teams"`
	TotalEffective int             `json:"total_effective"`
	Teams          []TeamBreakdown `json:"teams"`
	Explanation    string          `json:"explanation"`
}

// Gaps holds the distance to each RC criterion.
type Gaps struct {
	PersonalDelta    int            `json:"personal_delta"`
	DeltaToEffective int            `json:"delta_to_effective"`
	MissingTeams     int            `json:"missing_teams"`
	TeamDeltas       map[string]int `json:"team_deltas"`
}

// ActionObjective is one ranked entry of the plan. Priority is the
// final sequential rank, 1 being the most urgent.
type ActionObjective struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	TargetValue      int      `json:"target_value"`
	CurrentValue     int      `json:"current_value"`
	Delta            int      `json:"delta"`
	Priority         int      `json:"priority"`
	Completed        bool     `json:"completed"`
	SuggestedActions []string `json:"suggested_actions"`
	MetricKey        string   `json:"metric_key"`
	Link             string   `json:"link,omitempty"`
}

// ActionPlan is the full gap analysis for one seller.
type ActionPlan struct {
	SellerCode       string            `json:"seller_code"`
	Position         Level             `json:"position_actuelle"`
	DaysSinceStart   int               `json:"days_since_start"`
	DaysRemaining    int               `json:"days_remaining"`
	Qualification    *RCEvaluation     `json:"qualification"`
	Gaps             Gaps              `json:"gaps"`
	Objectives       []ActionObjective `json:"objectives"`
	GlobalPriorities []string          `json:"global_priorities"`
}

type Service interface {
	BuildPlan(ctx context.Context, sellerCode string) (*ActionPlan, error)
}
