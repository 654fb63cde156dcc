package gaps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushkarjay/career-advisor/internal/types"
)

func requirement(name string, importance, target float64) types.RoleRequirement {
	return types.RoleRequirement{
		Name:                name,
		ImportanceLevel:     importance,
		RequiredProficiency: target,
		SkillType:           types.SkillTypeTechnical,
	}
}

func TestGap_KnownSkill(t *testing.T) {
	req := requirement("python", 9.0, 7.0)

	gap := Gap(req, map[string]float64{"python": 2.0})

	assert.Equal(t, "python", gap.SkillName)
	assert.Equal(t, 2.0, gap.CurrentProficiency)
	assert.Equal(t, 5.0, gap.GapScore)
}

func TestGap_MissingSkillScoresFullGap(t *testing.T) {
	gap := Gap(requirement("rust", 9.0, 7.0), nil)

	assert.Equal(t, 0.0, gap.CurrentProficiency)
	assert.Equal(t, 7.0, gap.GapScore)
}

func TestGap_ProficiencyAboveTargetClampsToZero(t *testing.T) {
	gap := Gap(requirement("python", 9.0, 7.0), map[string]float64{"python": 9.5})

	assert.Equal(t, 0.0, gap.GapScore)
}

func TestGap_StubResource(t *testing.T) {
	gap := Gap(requirement("machine learning", 9.0, 7.0), map[string]float64{"machine learning": 2.0})

	require.Len(t, gap.LearningResources, 1)
	stub := gap.LearningResources[0]
	assert.Equal(t, "Learn Machine Learning", stub.Title)
	assert.Equal(t, "Online Platform", stub.Provider)
	assert.Equal(t, "course", stub.Type)
	assert.Equal(t, "beginner", stub.DifficultyLevel)
	assert.Equal(t, types.SkillTypeTechnical, stub.SkillType)
}

func TestGap_StubResourceIntermediateAboveThree(t *testing.T) {
	gap := Gap(requirement("python", 9.0, 7.0), map[string]float64{"python": 4.0})

	require.Len(t, gap.LearningResources, 1)
	assert.Equal(t, "intermediate", gap.LearningResources[0].DifficultyLevel)
}

func TestAnalyze_PreservesRequirementOrder(t *testing.T) {
	reqs := []types.RoleRequirement{
		requirement("python", 9.0, 7.0),
		requirement("sql", 9.0, 7.0),
		requirement("docker", 6.0, 5.0),
	}

	result := Analyze(reqs, map[string]float64{"sql": 7.0})

	require.Len(t, result, 3)
	assert.Equal(t, "python", result[0].SkillName)
	assert.Equal(t, "sql", result[1].SkillName)
	assert.Equal(t, "docker", result[2].SkillName)
}

func TestReadiness_SingleSkill(t *testing.T) {
	skillGaps := []types.SkillGap{{
		ImportanceLevel:     9.0,
		CurrentProficiency:  2.0,
		RequiredProficiency: 7.0,
	}}

	// 2/7 * 100 rounded to one decimal
	assert.Equal(t, 28.6, Readiness(skillGaps))
}

func TestReadiness_ImportanceWeighted(t *testing.T) {
	skillGaps := []types.SkillGap{
		{ImportanceLevel: 9.0, CurrentProficiency: 7.0, RequiredProficiency: 7.0},
		{ImportanceLevel: 6.0, CurrentProficiency: 0.0, RequiredProficiency: 5.0},
	}

	// (100*9 + 0*6) / 15
	assert.Equal(t, 60.0, Readiness(skillGaps))
}

func TestReadiness_ProficiencyAboveTargetCapsAtHundred(t *testing.T) {
	skillGaps := []types.SkillGap{{
		ImportanceLevel:     9.0,
		CurrentProficiency:  9.0,
		RequiredProficiency: 7.0,
	}}

	assert.Equal(t, 100.0, Readiness(skillGaps))
}

func TestReadiness_Empty(t *testing.T) {
	assert.Equal(t, 100.0, Readiness(nil))
}

func TestPrioritySkills_OrderedByWeightedGap(t *testing.T) {
	skillGaps := []types.SkillGap{
		{SkillName: "docker", GapScore: 5.0, ImportanceLevel: 6.0},
		{SkillName: "python", GapScore: 5.0, ImportanceLevel: 9.0},
		{SkillName: "sql", GapScore: 1.0, ImportanceLevel: 9.0},
	}

	assert.Equal(t, []string{"python", "docker", "sql"}, PrioritySkills(skillGaps))
}

func TestPrioritySkills_CapsAtFive(t *testing.T) {
	skillGaps := make([]types.SkillGap, 0, 7)
	for i := 0; i < 7; i++ {
		skillGaps = append(skillGaps, types.SkillGap{
			SkillName:       string(rune('a' + i)),
			GapScore:        float64(7 - i),
			ImportanceLevel: 9.0,
		})
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, PrioritySkills(skillGaps))
}

func TestPrioritySkills_StableForEqualPriority(t *testing.T) {
	skillGaps := []types.SkillGap{
		{SkillName: "first", GapScore: 3.0, ImportanceLevel: 9.0},
		{SkillName: "second", GapScore: 3.0, ImportanceLevel: 9.0},
	}

	assert.Equal(t, []string{"first", "second"}, PrioritySkills(skillGaps))
}

func TestConfidence_EmptyAnalysisFloor(t *testing.T) {
	assert.Equal(t, 0.3, Confidence(nil, types.Roadmap{}, false))
}

func TestConfidence_FullSignals(t *testing.T) {
	skillGaps := make([]types.SkillGap, 10)
	roadmap := types.Roadmap{
		Phase1Immediate: types.RoadmapPhase{Skills: []string{"python"}},
	}

	// 1.0*0.4 + 1.0*0.3 + 1.0*0.3
	assert.Equal(t, 1.0, Confidence(skillGaps, roadmap, true))
}

func TestConfidence_PartialSignals(t *testing.T) {
	skillGaps := make([]types.SkillGap, 5)

	// 0.5*0.4 + 0.5*0.3 + 0.7*0.3
	assert.InDelta(t, 0.56, Confidence(skillGaps, types.Roadmap{}, false), 0.001)
}
