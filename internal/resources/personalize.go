// Package resources selects, ranks and sequences learning resources for a
// set of skill gaps, personalized by the user's profile.
package resources

import (
	"fmt"
	"strings"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// DefaultLocation is assumed when a profile carries no location.
const DefaultLocation = "India"

// Cities where a medium budget is assumed.
var metroCities = []string{"mumbai", "delhi", "bangalore", "pune"}

// BudgetPreference infers a budget tier from the profile. Postgraduates and
// users in metro cities get "medium", everyone else "low".
func BudgetPreference(profile types.UserProfile) string {
	education := strings.ToLower(profile.EducationLevel)
	if strings.Contains(education, "phd") || strings.Contains(education, "master") {
		return "medium"
	}

	location := strings.ToLower(profile.Location)
	for _, city := range metroCities {
		if strings.Contains(location, city) {
			return "medium"
		}
	}
	return "low"
}

// TimeAvailability infers how much study time the user has. Final-year
// students and anyone with work experience are assumed part-time.
func TimeAvailability(profile types.UserProfile) string {
	if profile.CurrentYear >= 3 || profile.ExperienceYears > 0 {
		return "part-time"
	}
	return "full-time"
}

// LearningStyle is fixed until the intake form collects a preference.
func LearningStyle(types.UserProfile) string {
	return "mixed"
}

// LevelFor maps a numeric proficiency in [0,10] to a difficulty level.
func LevelFor(proficiency float64) string {
	switch {
	case proficiency < 3:
		return "beginner"
	case proficiency < 7:
		return "intermediate"
	default:
		return "advanced"
	}
}

// PersonalizationFactors lists the inferred preferences included in a
// resource report so clients can show why results differ per user.
func PersonalizationFactors(profile types.UserProfile) []string {
	location := profile.Location
	if location == "" {
		location = DefaultLocation
	}
	return []string{
		fmt.Sprintf("Location: %s", location),
		fmt.Sprintf("Budget: %s", BudgetPreference(profile)),
		fmt.Sprintf("Learning style: %s", LearningStyle(profile)),
		fmt.Sprintf("Time availability: %s", TimeAvailability(profile)),
	}
}
