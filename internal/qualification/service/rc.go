package service

import (
	"fmt"

	networkdomain "github.com/teleforce-labs/teleforce/internal/network/domain"
	"github.com/teleforce-labs/teleforce/internal/qualification/domain"
)

// EvaluateRC runs the Regional Coordinator capping rules over a set of
// team point totals. Each team qualifies on raw points alone; qualified
// teams contribute at most domain.TeamQualifyPoints to the effective
// total and unqualified teams contribute nothing. The final decision
// needs both gates: enough qualified teams AND enough effective points.
// Two teams of 8000 raw cap to 8000 effective and still fail the count
// gate, so the gates are never collapsed into a single points check.
func EvaluateRC(teams []networkdomain.TeamPoints) *domain.RCEvaluation {
	eval := &domain.RCEvaluation{
		Teams: make([]domain.TeamBreakdown, 0, len(teams)),
	}

	for _, team := range teams {
		qualified := team.RawPoints >= domain.TeamQualifyPoints
		effective := 0
		if qualified {
			effective = team.RawPoints
			if effective > domain.TeamQualifyPoints {
				effective = domain.TeamQualifyPoints
			}
			eval.QualifiedTeams++
		}
		eval.TotalEffective += effective
		eval.Teams = append(eval.Teams, domain.TeamBreakdown{
			SellerCode:      team.SellerCode,
			Name:            team.Name,
			RawPoints:       team.RawPoints,
			EffectivePoints: effective,
			Qualified:       qualified,
		})
	}

	eval.Qualified = eval.QualifiedTeams >= domain.RCRequiredTeams &&
		eval.TotalEffective >= domain.RCRequiredEffective
	eval.Explanation = explainRC(eval)
	return eval
}

func explainRC(eval *domain.RCEvaluation) string {
	if eval.Qualified {
		return fmt.Sprintf(
			"RC qualified: %d teams at %d+ points, %d effective points (cap %d per team).",
			eval.QualifiedTeams, domain.TeamQualifyPoints, eval.TotalEffective, domain.TeamQualifyPoints)
	}
	if eval.QualifiedTeams < domain.RCRequiredTeams {
		return fmt.Sprintf(
			"Not RC qualified: %d of %d required teams at %d+ points (%d effective of %d required).",
			eval.QualifiedTeams, domain.RCRequiredTeams, domain.TeamQualifyPoints,
			eval.TotalEffective, domain.RCRequiredEffective)
	}
	return fmt.Sprintf(
		"Not RC qualified: team count met but only %d effective points of %d required.",
		eval.TotalEffective, domain.RCRequiredEffective)
}
