package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/teleforce-labs/teleforce/internal/qualification/domain"
)

func objectiveByID(t *testing.T, plan *domain.ActionPlan, id string) domain.ActionObjective {
	t.Helper()
	for _, obj := range plan.Objectives {
		if obj.ID == id {
			return obj
		}
	}
	t.Fatalf("objective %q not in plan", id)
	return domain.ActionObjective{}
}

func hasObjective(plan *domain.ActionPlan, id string) bool {
	for _, obj := range plan.Objectives {
		if obj.ID == id {
			return true
		}
	}
	return false
}

func TestBuildActionPlanPrioritiesAreSequential(t *testing.T) {
	plan := BuildActionPlan(PlanInput{
		SellerCode:     "abc",
		PersonalPoints: 40,
		Teams:          teams(3000, 1500, 4500, 500),
		DaysSinceStart: 100,
		RecruitsCount:  4,
	})

	require.NotEmpty(t, plan.Objectives)
	for i, obj := range plan.Objectives {
		require.Equal(t, i+1, obj.Priority, "objective %s", obj.ID)
	}
}

func TestBuildActionPlanPersonalObjectiveAlwaysPresent(t *testing.T) {
	incomplete := BuildActionPlan(PlanInput{
		SellerCode:     "a",
		PersonalPoints: 40,
		Teams:          teams(3000, 1500),
		RecruitsCount:  2,
	})
	obj := objectiveByID(t, incomplete, "personal-production")
	require.False(t, obj.Completed)
	require.Equal(t, 60, obj.Delta)
	require.Less(t, obj.Priority, len(incomplete.Objectives), "incomplete personal objective outranks the strengthen band")

	complete := BuildActionPlan(PlanInput{SellerCode: "a", PersonalPoints: 150})
	obj = objectiveByID(t, complete, "personal-production")
	require.True(t, obj.Completed)
	require.Zero(t, obj.Delta)
	require.Equal(t, len(complete.Objectives), obj.Priority, "completed objective sinks to the bottom, never removed")
}

func TestBuildActionPlanTeamBandObjectives(t *testing.T) {
	plan := BuildActionPlan(PlanInput{
		SellerCode:     "a",
		PersonalPoints: 120,
		Teams:          teams(3000, 1500, 900, 4200),
		RecruitsCount:  4,
	})

	push := objectiveByID(t, plan, "team-qualify-a")
	require.Equal(t, 1000, push.Delta)
	require.Equal(t, 1, push.Priority, "push-to-qualification is the top objective")

	strengthen := objectiveByID(t, plan, "team-strengthen-b")
	require.Equal(t, 2500, strengthen.Delta)
	require.Greater(t, strengthen.Priority, push.Priority)

	require.False(t, hasObjective(plan, "team-qualify-c"), "900 points is below the push band")
	require.False(t, hasObjective(plan, "team-strengthen-c"), "900 points is below the strengthen band")
	require.False(t, hasObjective(plan, "team-qualify-d"), "already qualified teams get no push objective")
}

func TestBuildActionPlanRecruitWordingBranches(t *testing.T) {
	tooFew := BuildActionPlan(PlanInput{
		SellerCode:     "a",
		PersonalPoints: 120,
		Teams:          teams(4500, 4500),
		RecruitsCount:  2,
	})
	obj := objectiveByID(t, tooFew, "recruit-or-develop")
	require.Contains(t, obj.Title, "Recruit")

	unqualified := BuildActionPlan(PlanInput{
		SellerCode:     "a",
		PersonalPoints: 120,
		Teams:          teams(4500, 4500, 1500, 800, 300),
		RecruitsCount:  5,
	})
	obj = objectiveByID(t, unqualified, "recruit-or-develop")
	require.Contains(t, obj.Title, "Develop")
}

func TestBuildActionPlanNoRecruitObjectiveWhenQualified(t *testing.T) {
	plan := BuildActionPlan(PlanInput{
		SellerCode:     "a",
		PersonalPoints: 120,
		Teams:          teams(4000, 4000, 4000, 4000),
		RecruitsCount:  4,
	})

	require.True(t, plan.Qualification.Qualified)
	require.False(t, hasObjective(plan, "recruit-or-develop"))
	require.Zero(t, plan.Gaps.MissingTeams)
	require.Zero(t, plan.Gaps.DeltaToEffective)
}

func TestBuildActionPlanLeadershipAndFinalPush(t *testing.T) {
	plan := BuildActionPlan(PlanInput{
		SellerCode:     "a",
		PersonalPoints: 120,
		Teams:          teams(4000, 4000, 4000, 3000),
		RecruitsCount:  4,
	})

	require.True(t, hasObjective(plan, "leadership-readiness"), "three qualified teams trigger readiness")

	finalPush := objectiveByID(t, plan, "final-push")
	require.Equal(t, 4000, finalPush.Delta)
	require.Equal(t, 12000, finalPush.CurrentValue)
}

func TestBuildActionPlanDaysRemaining(t *testing.T) {
	early := BuildActionPlan(PlanInput{SellerCode: "a", DaysSinceStart: 100})
	require.Equal(t, 260, early.DaysRemaining)

	expired := BuildActionPlan(PlanInput{SellerCode: "a", DaysSinceStart: 500})
	require.Zero(t, expired.DaysRemaining)

	urgent := BuildActionPlan(PlanInput{SellerCode: "a", DaysSinceStart: 200})
	require.Equal(t, 160, urgent.DaysRemaining)
	require.Contains(t, urgent.GlobalPriorities[0], "160 days left")
}

func TestBuildActionPlanClosestTeamCallout(t *testing.T) {
	plan := BuildActionPlan(PlanInput{
		SellerCode:     "a",
		PersonalPoints: 120,
		Teams:          teams(3600, 2000, 5000),
		RecruitsCount:  3,
	})

	var found bool
	for _, p := range plan.GlobalPriorities {
		if p == "Team A is the closest team to qualification: 400 points to go." {
			found = true
		}
	}
	require.True(t, found, "priorities were %v", plan.GlobalPriorities)
}

func TestBuildActionPlanPosition(t *testing.T) {
	nouveau := BuildActionPlan(PlanInput{SellerCode: "a", PersonalPoints: 20})
	require.Equal(t, domain.LevelNouveau, nouveau.Position)

	cq := BuildActionPlan(PlanInput{SellerCode: "a", PersonalPoints: 120})
	require.Equal(t, domain.LevelCQ, cq.Position)

	rc := BuildActionPlan(PlanInput{
		SellerCode:     "a",
		PersonalPoints: 120,
		Teams:          teams(4000, 4000, 4000, 4000),
		RecruitsCount:  4,
	})
	require.Equal(t, domain.LevelRC, rc.Position)
}

func TestCurrentLevelRCUsesCappingNotRecruitCount(t *testing.T) {
	// Plenty of recruits and personal points, but no qualified teams:
	// the plain-comparison levels apply, never RC.
	plan := BuildActionPlan(PlanInput{
		SellerCode:     "a",
		PersonalPoints: 600,
		Teams:          teams(3000, 3000, 3000, 3000, 3000),
		RecruitsCount:  5,
	})
	require.Equal(t, domain.LevelManager, plan.Position)

	var leadership bool
	for _, p := range plan.GlobalPriorities {
		if p == "Already at Manager: shift focus from personal sales to team coordination." {
			leadership = true
		}
	}
	require.True(t, leadership)
}
