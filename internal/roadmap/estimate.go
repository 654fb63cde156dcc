package roadmap

import (
	"math"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Study time assumptions: 10 hours of study per gap point, 10 hours/week
// baseline pace.
const (
	hoursPerGapPoint = 10.0
	hoursPerWeek     = 10.0
)

// skillTypeMultipliers scale study hours by skill kind. Language skills take
// longest, soft skills least.
var skillTypeMultipliers = map[types.SkillType]float64{
	types.SkillTypeTechnical: 1.2,
	types.SkillTypeSoft:      0.8,
	types.SkillTypeDomain:    1.0,
	types.SkillTypeLanguage:  1.5,
}

// EstimateTime computes per-skill and aggregate study-time estimates. The
// skill-type multiplier is read from each gap's first learning resource,
// defaulting to 1.0 when none is attached. Each skill takes at least one
// week regardless of gap size.
func EstimateTime(skillGaps []types.SkillGap) types.TimeEstimates {
	breakdown := make(map[string]types.SkillTimeEstimate, len(skillGaps))
	totalWeeks := 0.0
	totalHours := 0

	for _, gap := range skillGaps {
		multiplier := 1.0
		if len(gap.LearningResources) > 0 {
			if m, ok := skillTypeMultipliers[gap.LearningResources[0].SkillType]; ok {
				multiplier = m
			}
		}

		hours := gap.GapScore * hoursPerGapPoint * multiplier
		weeks := math.Max(hours/hoursPerWeek, 1)

		est := types.SkillTimeEstimate{
			Hours: int(math.Round(hours)),
			Weeks: int(math.Round(weeks)),
		}
		breakdown[gap.SkillName] = est

		totalWeeks += weeks
		totalHours += est.Hours
	}

	return types.TimeEstimates{
		TotalWeeks:     int(math.Round(totalWeeks)),
		TotalHours:     totalHours,
		SkillBreakdown: breakdown,
		IntensiveWeeks: int(math.Round(totalWeeks * 0.7)),
		PartTimeWeeks:  int(math.Round(totalWeeks * 1.5)),
	}
}
