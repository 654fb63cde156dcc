// Package gaps measures the distance between a user's estimated proficiency
// and a role's requirements, and aggregates it into an overall readiness.
package gaps

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Gap computes the skill gap for one requirement. Skills missing from the
// proficiency map score a full gap (current proficiency 0). A stub learning
// resource carrying the requirement's skill type is attached so downstream
// time estimation can pick the right multiplier.
func Gap(req types.RoleRequirement, prof map[string]float64) types.SkillGap {
	current := prof[req.Name]
	gapScore := math.Max(req.RequiredProficiency-current, 0.0)

	return types.SkillGap{
		SkillName:           req.Name,
		ImportanceLevel:     req.ImportanceLevel,
		CurrentProficiency:  current,
		RequiredProficiency: req.RequiredProficiency,
		GapScore:            gapScore,
		LearningResources:   []types.LearningResource{stubResource(req, current)},
	}
}

// Analyze runs Gap over every requirement, preserving requirement order.
func Analyze(reqs []types.RoleRequirement, prof map[string]float64) []types.SkillGap {
	result := make([]types.SkillGap, 0, len(reqs))
	for _, req := range reqs {
		result = append(result, Gap(req, prof))
	}
	return result
}

// Readiness aggregates gaps into one importance-weighted percentage in
// [0,100]: each skill contributes min(current/required*100, 100), weighted by
// importance. An empty gap list (nothing required) is full readiness.
// Rounded to one decimal.
func Readiness(skillGaps []types.SkillGap) float64 {
	if len(skillGaps) == 0 {
		return 100.0
	}

	totalWeighted := 0.0
	totalWeight := 0.0
	for _, gap := range skillGaps {
		readiness := 100.0
		if gap.RequiredProficiency > 0 {
			readiness = math.Min(gap.CurrentProficiency/gap.RequiredProficiency*100, 100)
		}
		totalWeighted += readiness * gap.ImportanceLevel
		totalWeight += gap.ImportanceLevel
	}

	if totalWeight == 0 {
		return 100.0
	}
	return round1(totalWeighted / totalWeight)
}

// PrioritySkills returns up to five skill names ordered by gap_score *
// importance_level descending. The sort is stable so equal-priority skills
// keep their requirement order.
func PrioritySkills(skillGaps []types.SkillGap) []string {
	ranked := make([]types.SkillGap, len(skillGaps))
	copy(ranked, skillGaps)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].GapScore*ranked[i].ImportanceLevel > ranked[j].GapScore*ranked[j].ImportanceLevel
	})

	limit := 5
	if len(ranked) < limit {
		limit = len(ranked)
	}

	names := make([]string, 0, limit)
	for _, gap := range ranked[:limit] {
		names = append(names, gap.SkillName)
	}
	return names
}

// stubResource builds the placeholder resource attached to each gap before
// the resource catalog is consulted.
func stubResource(req types.RoleRequirement, current float64) types.LearningResource {
	difficulty := "intermediate"
	if current < 3 {
		difficulty = "beginner"
	}

	return types.LearningResource{
		Title:           fmt.Sprintf("Learn %s", titleCase(req.Name)),
		Provider:        "Online Platform",
		Type:            "course",
		Duration:        "4-6 weeks",
		DifficultyLevel: difficulty,
		SkillType:       req.SkillType,
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
