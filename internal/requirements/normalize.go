// Package requirements converts a career's required/preferred skill lists
// into weighted requirement records for gap analysis.
package requirements

import (
	"strings"

	"github.com/pushkarjay/career-advisor/internal/proficiency"
	"github.com/pushkarjay/career-advisor/internal/types"
)

// Weights assigned to required vs. preferred skills.
const (
	requiredImportance  = 9.0
	requiredProficiency = 7.0
	preferredImportance = 6.0
	preferredTarget     = 5.0
)

// Normalize is a pure function producing the ordered requirement list for a
// career: required skills first (importance 9.0, target proficiency 7.0),
// then preferred skills not already present (importance 6.0, target 5.0).
// Skill names are lower-cased and deduped case-insensitively; a skill listed
// as both required and preferred is recorded once, as required.
func Normalize(career types.Career) []types.RoleRequirement {
	reqs := make([]types.RoleRequirement, 0, len(career.RequiredSkills)+len(career.PreferredSkills))
	seen := make(map[string]bool)

	for _, skill := range career.RequiredSkills {
		name := strings.ToLower(strings.TrimSpace(skill))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		reqs = append(reqs, types.RoleRequirement{
			Name:                name,
			ImportanceLevel:     requiredImportance,
			RequiredProficiency: requiredProficiency,
			SkillType:           proficiency.Classify(skill),
			IsRequired:          true,
		})
	}

	for _, skill := range career.PreferredSkills {
		name := strings.ToLower(strings.TrimSpace(skill))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		reqs = append(reqs, types.RoleRequirement{
			Name:                name,
			ImportanceLevel:     preferredImportance,
			RequiredProficiency: preferredTarget,
			SkillType:           proficiency.Classify(skill),
			IsRequired:          false,
		})
	}

	return reqs
}
