package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Careers scoring below this total are not worth surfacing.
const minimumMatchScore = 30.0

// DefaultLimit is the number of matches returned when the caller does not
// ask for a specific count.
const DefaultLimit = 10

// maxConcurrentScores bounds the scoring fan-out per request.
const maxConcurrentScores = 8

// Methodology describes the scoring scheme for inclusion in match reports.
const Methodology = "Multi-factor analysis including skills (40%), interests (25%), industry preference (15%), education (10%), and experience (10%)"

// Score computes the full weighted match between one profile and one career.
// The result is deterministic: the same profile and career always produce
// the same match, byte for byte.
func Score(profile types.UserProfile, career types.Career) types.CareerMatch {
	userSkills := lowerSet(profile.Skills)

	skillScore, matching, missing := computeSkillsScore(userSkills, career)

	components := types.ComponentScores{
		Skills:     skillScore,
		Interests:  computeInterestsScore(profile.Interests, career),
		Industry:   computeIndustryScore(profile.PreferredIndustries, career),
		Education:  computeEducationScore(profile.EducationLevel, career),
		Experience: computeExperienceScore(profile.ExperienceYears, career),
	}

	total := components.Skills*skillsWeight +
		components.Interests*interestsWeight +
		components.Industry*industryWeight +
		components.Education*educationWeight +
		components.Experience*experienceWeight

	return types.CareerMatch{
		Career:               career,
		MatchScore:           round2(total),
		SkillMatchPercentage: round2(skillScore),
		MatchingSkills:       matching,
		MissingSkills:        missing,
		RecommendationReason: buildReason(components, career),
		Components:           components,
	}
}

// Rank scores every candidate career concurrently, drops those at or below
// the minimum score, and returns the top matches ordered by score descending.
// A panic while scoring one career skips that career without failing the
// batch; other scoring never returns an error, so the only error out of Rank
// is context cancellation.
func Rank(ctx context.Context, profile types.UserProfile, careers []types.Career, limit int) ([]types.CareerMatch, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]*types.CareerMatch, len(careers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, career := range careers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			match, ok := scoreCandidate(profile, career)
			if ok {
				results[i] = &match
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := make([]types.CareerMatch, 0, len(careers))
	for _, match := range results {
		if match != nil && match.MatchScore > minimumMatchScore {
			matches = append(matches, *match)
		}
	}

	// Stable sort keeps equal-score careers in catalog order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// scoreCandidate isolates a single scoring call so a malformed catalog row
// cannot take down the whole batch.
func scoreCandidate(profile types.UserProfile, career types.Career) (match types.CareerMatch, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return Score(profile, career), true
}

// buildReason composes the human-readable recommendation text from the
// component scores, leading with skill fit and appending up to two other
// strong components.
func buildReason(components types.ComponentScores, career types.Career) string {
	var reasons []string

	switch {
	case components.Skills > 70:
		reasons = append(reasons, "Strong skill alignment")
	case components.Skills > 40:
		reasons = append(reasons, "Good skill foundation with room to grow")
	default:
		reasons = append(reasons, "Developing skills required")
	}

	if components.Interests > 60 {
		reasons = append(reasons, "aligns with your interests")
	}
	if components.Industry > 80 {
		reasons = append(reasons, "matches your preferred industry")
	}
	if components.Education > 80 {
		reasons = append(reasons, "education requirements are met")
	}
	if components.Experience > 80 {
		reasons = append(reasons, "experience level is appropriate")
	}

	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	text := fmt.Sprintf("This career %s.", strings.Join(reasons, ", "))

	if career.GrowthPotential > 7 {
		text += " High growth potential in the market."
	}
	return text
}

// Confidence summarizes the quality of a ranked match list: average strength
// of the top five matches (weight 0.5), catalog coverage (0.3, full credit at
// five or more matches), and industry diversity across the list (0.2, full
// credit at five distinct industries). An empty list reports zero confidence.
func Confidence(matches []types.CareerMatch) types.MatchConfidence {
	if len(matches) == 0 {
		return types.MatchConfidence{}
	}

	top := matches
	if len(top) > 5 {
		top = top[:5]
	}
	sum := 0.0
	for _, match := range top {
		sum += match.MatchScore
	}
	avgTopScore := sum / float64(len(top)) / 100

	dataQuality := 0.6
	if len(matches) >= 5 {
		dataQuality = 0.8
	}

	industries := make(map[string]bool, len(matches))
	for _, match := range matches {
		industries[match.Career.Industry] = true
	}
	diversity := math.Min(float64(len(industries))/5.0, 1.0)

	overall := avgTopScore*0.5 + dataQuality*0.3 + diversity*0.2

	return types.MatchConfidence{
		Overall:        round3(overall),
		DataQuality:    round3(dataQuality),
		MatchDiversity: round3(diversity),
		TopMatchScore:  matches[0].MatchScore,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
