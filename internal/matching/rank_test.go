package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushkarjay/career-advisor/internal/types"
)

func testProfile() types.UserProfile {
	return types.UserProfile{
		Skills:              []string{"python", "sql", "javascript"},
		Interests:           []string{"software development", "data"},
		PreferredIndustries: []string{"technology"},
		EducationLevel:      "bachelor",
		ExperienceYears:     1,
	}
}

func testCareer(id, title string) types.Career {
	return types.Career{
		ID:                    id,
		Title:                 title,
		Industry:              "technology",
		Description:           "Develop software applications with modern tools.",
		RequiredSkills:        []string{"python", "sql"},
		PreferredSkills:       []string{"javascript"},
		EducationRequirements: []string{"bachelor"},
		ExperienceLevel:       "entry",
		GrowthPotential:       8.0,
	}
}

func TestScore_Deterministic(t *testing.T) {
	profile := testProfile()
	career := testCareer("sw-1", "Software Developer")

	first := Score(profile, career)
	second := Score(profile, career)

	assert.Equal(t, first, second)
}

func TestScore_WeightedTotal(t *testing.T) {
	profile := testProfile()
	career := testCareer("sw-1", "Software Developer")

	match := Score(profile, career)

	expected := round2(match.Components.Skills*skillsWeight +
		match.Components.Interests*interestsWeight +
		match.Components.Industry*industryWeight +
		match.Components.Education*educationWeight +
		match.Components.Experience*experienceWeight)
	assert.Equal(t, expected, match.MatchScore)
	assert.LessOrEqual(t, match.MatchScore, 100.0)
	assert.GreaterOrEqual(t, match.MatchScore, 0.0)
}

func TestScore_ReasonMentionsGrowthPotential(t *testing.T) {
	profile := testProfile()
	career := testCareer("sw-1", "Software Developer")
	career.GrowthPotential = 8.5

	match := Score(profile, career)

	assert.Contains(t, match.RecommendationReason, "High growth potential in the market.")
}

func TestScore_ReasonCapsAtThreeComponents(t *testing.T) {
	profile := testProfile()
	match := Score(profile, testCareer("sw-1", "Software Developer"))

	// Full match on every component still yields at most three reasons
	assert.Contains(t, match.RecommendationReason, "This career ")
	assert.NotContains(t, match.RecommendationReason, "experience level is appropriate")
}

func TestRank_FiltersBelowThreshold(t *testing.T) {
	profile := types.UserProfile{
		Skills:         []string{"cooking"},
		EducationLevel: "high school",
	}
	weak := types.Career{
		ID:                    "niche-1",
		Title:                 "Quantum Cryptographer",
		Industry:              "research",
		RequiredSkills:        []string{"quantum mechanics", "cryptography"},
		EducationRequirements: []string{"phd"},
		ExperienceLevel:       "senior",
	}

	matches, err := Rank(context.Background(), profile, []types.Career{weak}, 10)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRank_SortsByScoreDescending(t *testing.T) {
	profile := testProfile()
	strong := testCareer("strong", "Software Developer")
	weaker := testCareer("weaker", "Accountant")
	weaker.RequiredSkills = []string{"accounting", "excel"}
	weaker.PreferredSkills = nil

	matches, err := Rank(context.Background(), profile, []types.Career{weaker, strong}, 10)

	require.NoError(t, err)
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
	}
	assert.Equal(t, "strong", matches[0].Career.ID)
}

func TestRank_AppliesLimit(t *testing.T) {
	profile := testProfile()
	careers := make([]types.Career, 0, 15)
	for i := 0; i < 15; i++ {
		careers = append(careers, testCareer("sw", "Software Developer"))
	}

	matches, err := Rank(context.Background(), profile, careers, 0)

	require.NoError(t, err)
	assert.Len(t, matches, DefaultLimit)
}

func TestRank_EmptyCatalog(t *testing.T) {
	matches, err := Rank(context.Background(), testProfile(), nil, 10)

	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestRank_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Rank(ctx, testProfile(), []types.Career{testCareer("sw-1", "Dev")}, 10)

	assert.Error(t, err)
}

func TestConfidence_EmptyMatches(t *testing.T) {
	confidence := Confidence(nil)

	assert.Equal(t, types.MatchConfidence{}, confidence)
}

func TestConfidence_FewMatchesLowerDataQuality(t *testing.T) {
	matches := []types.CareerMatch{
		{MatchScore: 80, Career: types.Career{Industry: "technology"}},
		{MatchScore: 60, Career: types.Career{Industry: "finance"}},
	}

	confidence := Confidence(matches)

	// avg 0.7*0.5 + 0.6*0.3 + (2/5)*0.2
	assert.InDelta(t, 0.61, confidence.Overall, 0.001)
	assert.Equal(t, 0.6, confidence.DataQuality)
	assert.Equal(t, 0.4, confidence.MatchDiversity)
	assert.Equal(t, 80.0, confidence.TopMatchScore)
}

func TestConfidence_ManyMatchesFullDataQuality(t *testing.T) {
	matches := make([]types.CareerMatch, 0, 6)
	industries := []string{"a", "b", "c", "d", "e", "f"}
	for _, industry := range industries {
		matches = append(matches, types.CareerMatch{
			MatchScore: 50,
			Career:     types.Career{Industry: industry},
		})
	}

	confidence := Confidence(matches)

	assert.Equal(t, 0.8, confidence.DataQuality)
	assert.Equal(t, 1.0, confidence.MatchDiversity)
	// 0.5*0.5 + 0.8*0.3 + 1.0*0.2
	assert.InDelta(t, 0.69, confidence.Overall, 0.001)
}
