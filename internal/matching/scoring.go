// Package matching computes weighted multi-factor match scores between user
// profiles and candidate careers, and ranks the results.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Weights for the five scoring components. They sum to 1.0.
const (
	skillsWeight     = 0.40
	interestsWeight  = 0.25
	industryWeight   = 0.15
	educationWeight  = 0.10
	experienceWeight = 0.10
)

// Interest matching considers the role title plus the first 20 words of the
// description.
const descriptionKeywordLimit = 20

// educationRanks orders education levels for the education component.
// Unrecognized levels rank as bachelor.
var educationRanks = map[string]int{
	"high school": 1,
	"diploma":     2,
	"bachelor":    3,
	"master":      4,
	"phd":         5,
}

const defaultEducationRank = 3

// experienceRanges maps a career's experience level to an inclusive
// (min,max) range of years. Unrecognized levels use the entry range.
var experienceRanges = map[string][2]int{
	"entry":     {0, 2},
	"mid":       {2, 8},
	"senior":    {8, 15},
	"executive": {15, 50},
}

// computeSkillsScore scores skill overlap in [0,100]: coverage of the
// combined required+preferred set contributes 70 points, coverage of the
// required set alone 30. Returns the score plus the sorted matching and
// missing skill lists. An empty requirement set scores 0.
func computeSkillsScore(userSkills map[string]bool, career types.Career) (float64, []string, []string) {
	required := lowerSet(career.RequiredSkills)
	all := lowerSet(career.PreferredSkills)
	for skill := range required {
		all[skill] = true
	}

	if len(all) == 0 {
		return 0.0, nil, nil
	}

	matching := make([]string, 0, len(all))
	requiredMatching := 0
	for skill := range all {
		if userSkills[skill] {
			matching = append(matching, skill)
			if required[skill] {
				requiredMatching++
			}
		}
	}

	missing := make([]string, 0, len(required))
	for skill := range required {
		if !userSkills[skill] {
			missing = append(missing, skill)
		}
	}

	// Sorted output keeps results bit-identical across runs.
	sort.Strings(matching)
	sort.Strings(missing)

	requiredDenominator := len(required)
	if requiredDenominator == 0 {
		requiredDenominator = 1
	}

	score := float64(len(matching))/float64(len(all))*70 +
		float64(requiredMatching)/float64(requiredDenominator)*30

	return score, matching, missing
}

// computeInterestsScore scores interest alignment in [0,100]. The role title
// and the first 20 description words form a keyword set; an interest counts
// as matched when any keyword occurs as a substring of it. No interests
// supplied scores 0.
func computeInterestsScore(interests []string, career types.Career) float64 {
	if len(interests) == 0 {
		return 0.0
	}

	keywords := strings.Fields(strings.ToLower(career.Title))
	descWords := strings.Fields(strings.ToLower(career.Description))
	if len(descWords) > descriptionKeywordLimit {
		descWords = descWords[:descriptionKeywordLimit]
	}
	keywords = append(keywords, descWords...)

	matches := 0
	for _, interest := range interests {
		interestLower := strings.ToLower(interest)
		for _, keyword := range keywords {
			if strings.Contains(interestLower, keyword) {
				matches++
				break
			}
		}
	}

	return math.Min(float64(matches)/float64(len(interests))*100, 100)
}

// computeIndustryScore scores industry preference: a preferred industry
// scores 100, a non-preferred one 50 (exploring new industries is not
// heavily penalized), and users with no stated preference score 80.
func computeIndustryScore(industries []string, career types.Career) float64 {
	if len(industries) == 0 {
		return 80.0
	}

	careerIndustry := strings.ToLower(career.Industry)
	for _, industry := range industries {
		if strings.ToLower(industry) == careerIndustry {
			return 100.0
		}
	}
	return 50.0
}

// computeEducationScore scores education fit against the career's first
// education requirement (defaulting to bachelor): meeting or exceeding the
// requirement scores 100, exactly one rank below 70, anything lower 40.
// The partial-credit policy is deliberately two-tier.
func computeEducationScore(educationLevel string, career types.Career) float64 {
	userRank := educationRank(educationLevel)

	required := "bachelor"
	if len(career.EducationRequirements) > 0 {
		required = career.EducationRequirements[0]
	}
	requiredRank := educationRank(required)

	switch {
	case userRank >= requiredRank:
		return 100.0
	case userRank == requiredRank-1:
		return 70.0
	default:
		return 40.0
	}
}

// computeExperienceScore scores experience fit against the career level's
// year range: inside the range scores 100; below it decays from 60 by 10 per
// missing year (floor 20); above it decays from 80 by 5 per extra year
// (floor 50).
func computeExperienceScore(experienceYears int, career types.Career) float64 {
	bounds, ok := experienceRanges[strings.ToLower(career.ExperienceLevel)]
	if !ok {
		bounds = experienceRanges["entry"]
	}

	switch {
	case experienceYears >= bounds[0] && experienceYears <= bounds[1]:
		return 100.0
	case experienceYears < bounds[0]:
		return math.Max(60-float64(bounds[0]-experienceYears)*10, 20)
	default:
		return math.Max(80-float64(experienceYears-bounds[1])*5, 50)
	}
}

func educationRank(level string) int {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(level)), "-", " ")
	if rank, ok := educationRanks[key]; ok {
		return rank
	}
	return defaultEducationRank
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		trimmed := strings.ToLower(strings.TrimSpace(item))
		if trimmed != "" {
			set[trimmed] = true
		}
	}
	return set
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
