package domain

// Level is a rung of the qualification ladder. The names follow the
// field titles used by the distribution network.
type Level string

const (
	LevelNouveau Level = "Nouveau"
	LevelCQ      Level = "CQ"
	LevelETT     Level = "ETT"
	LevelETL     Level = "ETL"
	LevelManager Level = "Manager"
	LevelRC      Level = "RC"
	LevelRVP     Level = "RVP"
	LevelSVP     Level = "SVP"
)

// levelCriteria are the plain-comparison thresholds used by every level
// except RC. RC alone is decided through the capping engine; levels
// above RC require RC plus a larger qualified-team count.
type levelCriteria struct {
	level             Level
	minPersonalPoints int
	minRecruits       int
	requiresRC        bool
	minQualifiedTeams int
}

// ladder is ordered from highest to lowest so the first match wins.
var ladder = []levelCriteria{
	{level: LevelSVP, requiresRC: true, minQualifiedTeams: 8},
	{level: LevelRVP, requiresRC: true, minQualifiedTeams: 6},
	{level: LevelRC, requiresRC: true, minQualifiedTeams: RCRequiredTeams},
	{level: LevelManager, minPersonalPoints: 500, minRecruits: 4},
	{level: LevelETL, minPersonalPoints: 300, minRecruits: 3},
	{level: LevelETT, minPersonalPoints: 200, minRecruits: 2},
	{level: LevelCQ, minPersonalPoints: PersonalTargetPoints},
	{level: LevelNouveau},
}

// CurrentLevel walks the ladder top-down and returns the highest level
// whose criteria are met. rc may be nil when no teams exist yet.
func CurrentLevel(personalPoints, recruitsCount int, rc *RCEvaluation) Level {
	for _, c := range ladder {
		if c.requiresRC {
			if rc != nil && rc.Qualified && rc.QualifiedTeams >= c.minQualifiedTeams {
				return c.level
			}
			continue
		}
		if personalPoints >= c.minPersonalPoints && recruitsCount >= c.minRecruits {
			return c.level
		}
	}
	return LevelNouveau
}

// AtLeast reports whether l ranks at or above other on the ladder.
func (l Level) AtLeast(other Level) bool {
	return levelRank(l) >= levelRank(other)
}

func levelRank(l Level) int {
	for i := len(ladder) - 1; i >= 0; i-- {
		if ladder[i].level == l {
			return len(ladder) - 1 - i
		}
	}
	return 0
}
