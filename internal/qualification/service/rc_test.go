package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	networkdomain "github.com/teleforce-labs/teleforce/internal/network/domain"
)

func teams(points ...int) []networkdomain.TeamPoints {
	out := make([]networkdomain.TeamPoints, 0, len(points))
	for i, p := range points {
		out = append(out, networkdomain.TeamPoints{
			SellerCode: string(rune('a' + i)),
			Name:       "Team " + string(rune('A'+i)),
			RawPoints:  p,
		})
	}
	return out
}

func TestEvaluateRCCapsQualifiedTeams(t *testing.T) {
	eval := EvaluateRC(teams(10000))

	require.Equal(t, 1, eval.QualifiedTeams)
	require.Equal(t, 4000, eval.TotalEffective)
	require.True(t, eval.Teams[0].Qualified)
	require.Equal(t, 10000, eval.Teams[0].RawPoints)
	require.Equal(t, 4000, eval.Teams[0].EffectivePoints)
}

func TestEvaluateRCUnqualifiedTeamContributesNothing(t *testing.T) {
	eval := EvaluateRC(teams(3999))

	require.Zero(t, eval.QualifiedTeams)
	require.Zero(t, eval.TotalEffective)
	require.False(t, eval.Teams[0].Qualified)
	require.Zero(t, eval.Teams[0].EffectivePoints)
}

func TestEvaluateRCFourExactTeamsQualify(t *testing.T) {
	eval := EvaluateRC(teams(4000, 4000, 4000, 4000))

	require.True(t, eval.Qualified)
	require.Equal(t, 4, eval.QualifiedTeams)
	require.Equal(t, 16000, eval.TotalEffective)
}

func TestEvaluateRCThreeStrongTeamsFailCountGate(t *testing.T) {
	eval := EvaluateRC(teams(5000, 5000, 5000))

	require.False(t, eval.Qualified)
	require.Equal(t, 3, eval.QualifiedTeams)
	require.Equal(t, 12000, eval.TotalEffective)
	require.Contains(t, eval.Explanation, "3 of 4")
}

func TestEvaluateRCPointsAloneNeverQualify(t *testing.T) {
	// Two teams of 8000 raw cap to 8000 effective; even four huge teams
	// capped to exactly 16000 is the floor, not a shortcut around the
	// count gate.
	eval := EvaluateRC(teams(8000, 8000))
	require.False(t, eval.Qualified)
	require.Equal(t, 8000, eval.TotalEffective)
}

func TestEvaluateRCEmptyInput(t *testing.T) {
	eval := EvaluateRC(nil)

	require.False(t, eval.Qualified)
	require.Zero(t, eval.QualifiedTeams)
	require.Zero(t, eval.TotalEffective)
	require.Empty(t, eval.Teams)
	require.NotEmpty(t, eval.Explanation)
}

func TestEvaluateRCCountGateMetButPointsShort(t *testing.T) {
	// Impossible with the 4000 cap and 4 teams in practice, but the
	// explanation branch must still describe the points gate if the
	// thresholds ever diverge.
	eval := EvaluateRC(teams(4000, 4000, 4000, 3999))
	require.False(t, eval.Qualified)
	require.Contains(t, eval.Explanation, "3 of 4")
}

func TestEvaluateRCOrderIndependent(t *testing.T) {
	a := EvaluateRC(teams(4000, 1000, 9000, 4000, 4000))
	b := EvaluateRC(teams(9000, 4000, 4000, 1000, 4000))

	require.Equal(t, a.Qualified, b.Qualified)
	require.Equal(t, a.QualifiedTeams, b.QualifiedTeams)
	require.Equal(t, a.TotalEffective, b.TotalEffective)
}
