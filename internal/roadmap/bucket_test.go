package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pushkarjay/career-advisor/internal/types"
)

func gap(name string, score, importance float64) types.SkillGap {
	return types.SkillGap{
		SkillName:       name,
		GapScore:        score,
		ImportanceLevel: importance,
	}
}

func TestBuild_PriorityBuckets(t *testing.T) {
	roadmap := Build([]types.SkillGap{
		gap("critical", 6.0, 9.0),
		gap("moderate", 4.0, 6.0),
		gap("minor", 1.0, 9.0),
	})

	assert.Equal(t, []string{"critical"}, roadmap.Phase1Immediate.Skills)
	assert.Equal(t, []string{"moderate"}, roadmap.Phase2Foundation.Skills)
	assert.Equal(t, []string{"minor"}, roadmap.Phase3Advanced.Skills)
}

func TestBuild_HighPriorityNeedsBothThresholds(t *testing.T) {
	// Large gap but low importance does not reach phase 1
	roadmap := Build([]types.SkillGap{gap("niche", 6.0, 6.0)})

	assert.Empty(t, roadmap.Phase1Immediate.Skills)
	assert.Equal(t, []string{"niche"}, roadmap.Phase2Foundation.Skills)
}

func TestBuild_HighPriorityOverflowMovesToPhaseTwo(t *testing.T) {
	roadmap := Build([]types.SkillGap{
		gap("a", 6.0, 9.5),
		gap("b", 6.0, 9.0),
		gap("c", 6.0, 8.5),
		gap("d", 6.0, 8.0),
	})

	assert.Equal(t, []string{"a", "b", "c"}, roadmap.Phase1Immediate.Skills)
	assert.Equal(t, []string{"d"}, roadmap.Phase2Foundation.Skills)
}

func TestBuild_SortsByImportanceWithinBucket(t *testing.T) {
	roadmap := Build([]types.SkillGap{
		gap("lower", 6.0, 8.0),
		gap("higher", 6.0, 9.0),
	})

	assert.Equal(t, []string{"higher", "lower"}, roadmap.Phase1Immediate.Skills)
}

func TestBuild_PhaseDurationsAndDescriptions(t *testing.T) {
	roadmap := Build(nil)

	assert.Equal(t, 8, roadmap.Phase1Immediate.DurationWeeks)
	assert.Equal(t, 12, roadmap.Phase2Foundation.DurationWeeks)
	assert.Equal(t, 16, roadmap.Phase3Advanced.DurationWeeks)
	assert.Equal(t, "Critical skills needed for career entry", roadmap.Phase1Immediate.Description)
	assert.True(t, roadmap.IsEmpty())
}

func withResource(g types.SkillGap, skillType types.SkillType) types.SkillGap {
	g.LearningResources = []types.LearningResource{{SkillType: skillType}}
	return g
}

func TestEstimateTime_TechnicalMultiplier(t *testing.T) {
	est := EstimateTime([]types.SkillGap{
		withResource(gap("python", 5.0, 9.0), types.SkillTypeTechnical),
	})

	// 5.0 * 10 * 1.2 = 60 hours, 6 weeks
	assert.Equal(t, 60, est.SkillBreakdown["python"].Hours)
	assert.Equal(t, 6, est.SkillBreakdown["python"].Weeks)
	assert.Equal(t, 60, est.TotalHours)
	assert.Equal(t, 6, est.TotalWeeks)
}

func TestEstimateTime_NoResourceDefaultsToNeutralMultiplier(t *testing.T) {
	est := EstimateTime([]types.SkillGap{gap("finance", 4.0, 6.0)})

	assert.Equal(t, 40, est.SkillBreakdown["finance"].Hours)
	assert.Equal(t, 4, est.SkillBreakdown["finance"].Weeks)
}

func TestEstimateTime_MinimumOneWeek(t *testing.T) {
	est := EstimateTime([]types.SkillGap{
		withResource(gap("sql", 0.5, 9.0), types.SkillTypeTechnical),
	})

	assert.Equal(t, 1, est.SkillBreakdown["sql"].Weeks)
}

func TestEstimateTime_IntensiveAndPartTimePaces(t *testing.T) {
	est := EstimateTime([]types.SkillGap{
		withResource(gap("a", 5.0, 9.0), types.SkillTypeDomain),
		withResource(gap("b", 5.0, 9.0), types.SkillTypeDomain),
	})

	assert.Equal(t, 10, est.TotalWeeks)
	assert.Equal(t, 7, est.IntensiveWeeks)
	assert.Equal(t, 15, est.PartTimeWeeks)
}

func TestEstimateTime_Empty(t *testing.T) {
	est := EstimateTime(nil)

	assert.Equal(t, 0, est.TotalWeeks)
	assert.Equal(t, 0, est.TotalHours)
	assert.Empty(t, est.SkillBreakdown)
}
