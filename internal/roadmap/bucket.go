// Package roadmap groups skill gaps into ordered learning phases and
// estimates the study time needed to close them.
package roadmap

import (
	"sort"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Priority thresholds. High priority needs both a large gap and high
// importance; medium needs moderate values of both.
const (
	highGapThreshold     = 5.0
	highImportance       = 7.0
	mediumGapThreshold   = 3.0
	mediumImportance     = 5.0
	phase1DurationWeeks  = 8
	phase2DurationWeeks  = 12
	phase3DurationWeeks  = 16
	phaseHeadCount       = 3
)

// Build groups skill gaps into the fixed three-phase roadmap:
// phase 1 takes the top three high-priority skills, phase 2 the remaining
// high-priority plus the top three medium, phase 3 everything left. Within a
// priority bucket skills are ordered by importance descending; the sort is
// stable so ties keep their input order.
func Build(skillGaps []types.SkillGap) types.Roadmap {
	var high, medium, low []types.SkillGap

	for _, gap := range skillGaps {
		switch {
		case gap.GapScore > highGapThreshold && gap.ImportanceLevel > highImportance:
			high = append(high, gap)
		case gap.GapScore > mediumGapThreshold && gap.ImportanceLevel > mediumImportance:
			medium = append(medium, gap)
		default:
			low = append(low, gap)
		}
	}

	sortByImportance(high)
	sortByImportance(medium)
	sortByImportance(low)

	highHead, highTail := split(high, phaseHeadCount)
	mediumHead, mediumTail := split(medium, phaseHeadCount)

	return types.Roadmap{
		Phase1Immediate: types.RoadmapPhase{
			Skills:        skillNames(highHead),
			DurationWeeks: phase1DurationWeeks,
			Description:   "Critical skills needed for career entry",
		},
		Phase2Foundation: types.RoadmapPhase{
			Skills:        skillNames(append(append([]types.SkillGap{}, highTail...), mediumHead...)),
			DurationWeeks: phase2DurationWeeks,
			Description:   "Core competency development",
		},
		Phase3Advanced: types.RoadmapPhase{
			Skills:        skillNames(append(append([]types.SkillGap{}, mediumTail...), low...)),
			DurationWeeks: phase3DurationWeeks,
			Description:   "Advanced skills for career growth",
		},
	}
}

func sortByImportance(gaps []types.SkillGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].ImportanceLevel > gaps[j].ImportanceLevel
	})
}

func split(gaps []types.SkillGap, n int) (head, tail []types.SkillGap) {
	if len(gaps) <= n {
		return gaps, nil
	}
	return gaps[:n], gaps[n:]
}

func skillNames(gaps []types.SkillGap) []string {
	names := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		names = append(names, gap.SkillName)
	}
	return names
}
