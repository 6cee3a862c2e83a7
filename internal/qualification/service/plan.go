package service

import (
	"fmt"
	"sort"

	networkdomain "github.com/teleforce-labs/teleforce/internal/network/domain"
	"github.com/teleforce-labs/teleforce/internal/qualification/domain"
)

// Relative ordering hints. Only the order matters: objectives are
// renumbered sequentially after sorting so these values never reach
// the caller.
const (
	hintPushTeam          = 1
	hintRecruit           = 2
	hintPersonal          = 3
	hintFinalPush         = 4
	hintStrengthen        = 5
	hintLeadership        = 6
	hintPersonalCompleted = 9
)

const urgencyThresholdDays = 180

// PlanInput is the aggregated state the generator works from, one
// value per seller.
type PlanInput struct {
	SellerCode     string
	PersonalPoints int
	GroupPoints    int
	Teams          []networkdomain.TeamPoints
	DaysSinceStart int
	RecruitsCount  int
}

// BuildActionPlan derives the ranked objective list for one seller.
// Pure: same input, same plan.
func BuildActionPlan(in PlanInput) *domain.ActionPlan {
	rc := EvaluateRC(in.Teams)

	daysRemaining := domain.QualifyWindowDays - in.DaysSinceStart
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	gaps := domain.Gaps{
		PersonalDelta:    maxInt(0, domain.PersonalTargetPoints-in.PersonalPoints),
		DeltaToEffective: maxInt(0, domain.RCRequiredEffective-rc.TotalEffective),
		MissingTeams:     maxInt(0, domain.RCRequiredTeams-rc.QualifiedTeams),
		TeamDeltas:       make(map[string]int, len(in.Teams)),
	}
	for _, team := range in.Teams {
		gaps.TeamDeltas[team.SellerCode] = maxInt(0, domain.TeamQualifyPoints-team.RawPoints)
	}

	objectives := buildObjectives(in, rc, gaps)
	sort.SliceStable(objectives, func(i, j int) bool {
		return objectives[i].Priority < objectives[j].Priority
	})
	for i := range objectives {
		objectives[i].Priority = i + 1
	}

	position := domain.CurrentLevel(in.PersonalPoints, in.RecruitsCount, rc)

	return &domain.ActionPlan{
		SellerCode:       in.SellerCode,
		Position:         position,
		DaysSinceStart:   in.DaysSinceStart,
		DaysRemaining:    daysRemaining,
		Qualification:    rc,
		Gaps:             gaps,
		Objectives:       objectives,
		GlobalPriorities: buildGlobalPriorities(in, rc, gaps, position, daysRemaining),
	}
}

func buildObjectives(in PlanInput, rc *domain.RCEvaluation, gaps domain.Gaps) []domain.ActionObjective {
	var objectives []domain.ActionObjective

	// The personal-production objective is always present. Once met it
	// stays in the plan with a lowered priority for positive feedback.
	personal := domain.ActionObjective{
		ID:           "personal-production",
		Title:        fmt.Sprintf("Reach %d personal points", domain.PersonalTargetPoints),
		Description:  "Maintain your own sales production alongside team development.",
		TargetValue:  domain.PersonalTargetPoints,
		CurrentValue: in.PersonalPoints,
		Delta:        gaps.PersonalDelta,
		Priority:     hintPersonal,
		MetricKey:    "personal_points",
		SuggestedActions: []string{
			"Book installation follow-ups for pending sales",
			"Prospect at least two new customers this week",
		},
	}
	if gaps.PersonalDelta == 0 {
		personal.Completed = true
		personal.Priority = hintPersonalCompleted
		personal.Description = "Personal production target met. Keep the pace while developing teams."
	}
	objectives = append(objectives, personal)

	for _, team := range in.Teams {
		switch {
		case team.RawPoints >= 2000 && team.RawPoints < domain.TeamQualifyPoints:
			objectives = append(objectives, domain.ActionObjective{
				ID:           "team-qualify-" + team.SellerCode,
				Title:        fmt.Sprintf("Push %s to qualification", team.Name),
				Description:  fmt.Sprintf("%s is within reach of the %d-point team threshold.", team.Name, domain.TeamQualifyPoints),
				TargetValue:  domain.TeamQualifyPoints,
				CurrentValue: team.RawPoints,
				Delta:        domain.TeamQualifyPoints - team.RawPoints,
				Priority:     hintPushTeam,
				MetricKey:    "team_points",
				Link:         "/api/sellers/" + team.SellerCode + "/network",
				SuggestedActions: []string{
					"Run joint field sessions with " + team.Name,
					"Review their pipeline for stalled installations",
				},
			})
		case team.RawPoints >= 1000 && team.RawPoints < 2000:
			objectives = append(objectives, domain.ActionObjective{
				ID:           "team-strengthen-" + team.SellerCode,
				Title:        fmt.Sprintf("Strengthen %s", team.Name),
				Description:  fmt.Sprintf("%s has a base to build on but remains far from qualification.", team.Name),
				TargetValue:  domain.TeamQualifyPoints,
				CurrentValue: team.RawPoints,
				Delta:        domain.TeamQualifyPoints - team.RawPoints,
				Priority:     hintStrengthen,
				MetricKey:    "team_points",
				Link:         "/api/sellers/" + team.SellerCode + "/network",
				SuggestedActions: []string{
					"Schedule a monthly coaching session with " + team.Name,
					"Set an intermediate 2000-point milestone",
				},
			})
		}
	}

	if gaps.MissingTeams > 0 {
		recruit := domain.ActionObjective{
			ID:           "recruit-or-develop",
			TargetValue:  domain.RCRequiredTeams,
			CurrentValue: rc.QualifiedTeams,
			Delta:        gaps.MissingTeams,
			Priority:     hintRecruit,
			MetricKey:    "qualified_teams",
		}
		// Wording depends on whether the gap comes from having too few
		// recruits at all or from existing teams that do not qualify.
		if in.RecruitsCount < domain.RCRequiredTeams {
			recruit.Title = fmt.Sprintf("Recruit %d more team leader(s)", domain.RCRequiredTeams-in.RecruitsCount)
			recruit.Description = fmt.Sprintf("You have %d direct recruit(s); RC requires %d qualified teams.", in.RecruitsCount, domain.RCRequiredTeams)
			recruit.SuggestedActions = []string{
				"Identify recruitment candidates among your best customers",
				"Present the career plan to two prospects this month",
			}
		} else {
			recruit.Title = fmt.Sprintf("Develop %d existing team(s) to qualification", gaps.MissingTeams)
			recruit.Description = fmt.Sprintf("You have enough recruits but only %d team(s) at %d+ points.", rc.QualifiedTeams, domain.TeamQualifyPoints)
			recruit.SuggestedActions = []string{
				"Focus coaching on the teams closest to the threshold",
				"Re-engage inactive recruits before recruiting new ones",
			}
		}
		objectives = append(objectives, recruit)
	}

	if rc.QualifiedTeams >= 3 || gaps.DeltaToEffective < domain.TeamQualifyPoints {
		objectives = append(objectives, domain.ActionObjective{
			ID:           "leadership-readiness",
			Title:        "Prepare for the RC role",
			Description:  "Qualification is close. Start operating as a coordinator now.",
			TargetValue:  domain.RCRequiredTeams,
			CurrentValue: rc.QualifiedTeams,
			Delta:        gaps.MissingTeams,
			Priority:     hintLeadership,
			MetricKey:    "qualified_teams",
			SuggestedActions: []string{
				"Delegate one team review to your strongest recruit",
				"Hold a monthly network meeting",
			},
		})
	}

	if gaps.DeltaToEffective > 0 && gaps.DeltaToEffective < 8000 {
		objectives = append(objectives, domain.ActionObjective{
			ID:           "final-push",
			Title:        fmt.Sprintf("Close the last %d effective points", gaps.DeltaToEffective),
			Description:  fmt.Sprintf("The network is at %d of %d effective points.", rc.TotalEffective, domain.RCRequiredEffective),
			TargetValue:  domain.RCRequiredEffective,
			CurrentValue: rc.TotalEffective,
			Delta:        gaps.DeltaToEffective,
			Priority:     hintFinalPush,
			MetricKey:    "total_effective",
			SuggestedActions: []string{
				"Concentrate support on almost-qualified teams",
				"Audit pending installations across the whole network",
			},
		})
	}

	return objectives
}

func buildGlobalPriorities(in PlanInput, rc *domain.RCEvaluation, gaps domain.Gaps, position domain.Level, daysRemaining int) []string {
	var priorities []string

	if daysRemaining < urgencyThresholdDays {
		priorities = append(priorities, fmt.Sprintf(
			"Only %d days left in the %d-day qualification window.", daysRemaining, domain.QualifyWindowDays))
	}

	if closest, delta, ok := closestTeam(in.Teams); ok {
		priorities = append(priorities, fmt.Sprintf(
			"%s is the closest team to qualification: %d points to go.", closest, delta))
	}

	if gaps.MissingTeams > 0 {
		priorities = append(priorities, fmt.Sprintf(
			"%d more qualified team(s) needed for RC.", gaps.MissingTeams))
	}

	if gaps.PersonalDelta > 0 {
		priorities = append(priorities, fmt.Sprintf(
			"%d personal points missing out of %d.", gaps.PersonalDelta, domain.PersonalTargetPoints))
	}

	if position.AtLeast(domain.LevelManager) {
		priorities = append(priorities, "Already at "+string(position)+": shift focus from personal sales to team coordination.")
	}

	return priorities
}

// closestTeam returns the not-yet-qualified team with the smallest
// remaining gap, preferring the earliest on ties.
func closestTeam(teams []networkdomain.TeamPoints) (name string, delta int, ok bool) {
	for _, team := range teams {
		if team.RawPoints >= domain.TeamQualifyPoints {
			continue
		}
		d := domain.TeamQualifyPoints - team.RawPoints
		if !ok || d < delta {
			name, delta, ok = team.Name, d, true
		}
	}
	return name, delta, ok
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
