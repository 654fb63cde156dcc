// Package proficiency estimates how well a user is presumed to know each of
// their listed skills, on a 0-10 scale derived from education and experience
// signals rather than self-reported depth.
package proficiency

import (
	"math"
	"strings"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Experience contributes 0.5 points per year, capped at 3.0.
const (
	experiencePerYear = 0.5
	experienceCap     = 3.0
	maxProficiency    = 10.0
)

// educationBase maps education levels to baseline proficiency. Unrecognized
// levels fall back to the bachelor baseline rather than erroring.
var educationBase = map[string]float64{
	"high school": 2.0,
	"diploma":     3.0,
	"bachelor":    4.0,
	"master":      5.0,
	"phd":         6.0,
}

const defaultBase = 4.0

// Keyword groups for the per-skill modifier.
var (
	technicalKeywords = []string{"python", "java", "javascript", "coding", "programming"}
	softKeywords      = []string{"communication", "leadership", "teamwork"}
	emergingKeywords  = []string{"ai", "machine learning", "blockchain"}
)

// Estimate returns a proficiency score per lower-cased skill name:
// min(base(education) + min(years*0.5, 3.0) + modifier(skill), 10.0),
// rounded to one decimal. It never fails; unknown education levels default
// to the bachelor baseline.
func Estimate(p types.UserProfile) map[string]float64 {
	base := BaseFor(p.EducationLevel)
	boost := math.Min(float64(p.ExperienceYears)*experiencePerYear, experienceCap)

	scores := make(map[string]float64, len(p.Skills))
	for _, skill := range p.Skills {
		score := math.Min(base+boost+Modifier(skill), maxProficiency)
		scores[strings.ToLower(skill)] = round1(score)
	}
	return scores
}

// BaseFor returns the baseline proficiency for an education level. Hyphenated
// spellings ("high-school") are accepted alongside spaced ones.
func BaseFor(educationLevel string) float64 {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(educationLevel)), "-", " ")
	if base, ok := educationBase[key]; ok {
		return base
	}
	return defaultBase
}

// Modifier adjusts the estimate for the kind of skill: recognized technical
// keywords +1.0, soft skills +0.5, emerging tech -0.5, everything else 0.
func Modifier(skill string) float64 {
	lower := strings.ToLower(skill)

	switch {
	case containsAny(lower, technicalKeywords):
		return 1.0
	case containsAny(lower, softKeywords):
		return 0.5
	case containsAny(lower, emergingKeywords):
		return -0.5
	default:
		return 0.0
	}
}

// Classify buckets a skill into a SkillType for requirement normalization
// and study-time estimation.
func Classify(skill string) types.SkillType {
	lower := strings.ToLower(skill)

	switch {
	case containsAny(lower, []string{"python", "java", "javascript", "sql", "programming"}):
		return types.SkillTypeTechnical
	case containsAny(lower, []string{"communication", "leadership", "management"}):
		return types.SkillTypeSoft
	case containsAny(lower, []string{"english", "hindi", "spanish"}):
		return types.SkillTypeLanguage
	default:
		return types.SkillTypeDomain
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
