// Package profile normalizes raw user profile input into the canonical form
// expected by the scoring packages.
package profile

import (
	"strings"

	"github.com/pushkarjay/career-advisor/internal/types"
)

const maxListItems = 20

// Clamp bounds for advisory numeric signals. Out-of-range values are clamped
// rather than rejected; they influence scoring but are not integrity-critical.
const (
	maxExperienceYears = 50
	minCurrentYear     = 1
	maxCurrentYear     = 6
)

// Normalize converts client-submitted profile input into a UserProfile
// suitable for scoring: list fields are trimmed, case-insensitively deduped
// and capped, and numeric signals are clamped into their valid ranges.
// Normalize never fails; malformed values degrade to defaults.
func Normalize(in types.ProfileInput) types.UserProfile {
	return types.UserProfile{
		Skills:              CleanList(in.Skills),
		Interests:           CleanList(in.Interests),
		PreferredIndustries: CleanList(in.PreferredIndustries),
		EducationLevel:      strings.ToLower(strings.TrimSpace(in.EducationLevel)),
		FieldOfStudy:        strings.TrimSpace(in.FieldOfStudy),
		ExperienceYears:     clampInt(in.ExperienceYears, 0, maxExperienceYears),
		CurrentYear:         clampInt(in.CurrentYear, minCurrentYear, maxCurrentYear),
		Location:            strings.TrimSpace(in.Location),
		CareerGoals:         strings.TrimSpace(in.CareerGoals),
	}
}

// CleanList trims entries, drops empties, collapses case-insensitive
// duplicates keeping the first spelling, and caps the result at 20 items.
func CleanList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))

	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, trimmed)
		if len(cleaned) == maxListItems {
			break
		}
	}

	return cleaned
}

// ExperienceLevelFor derives the catalog experience level from working years
// and study year. Students in their first two years with no experience are
// treated as entry level regardless of study progress.
func ExperienceLevelFor(p types.UserProfile) types.ExperienceLevel {
	switch {
	case p.ExperienceYears == 0 && p.CurrentYear <= 2:
		return types.ExperienceEntry
	case p.ExperienceYears <= 2:
		return types.ExperienceEntry
	case p.ExperienceYears <= 7:
		return types.ExperienceMid
	case p.ExperienceYears <= 15:
		return types.ExperienceSenior
	default:
		return types.ExperienceExecutive
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
