package resources

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// partTimeStretch extends phase timelines for part-time learners.
const partTimeStretch = 1.5

// BuildRoadmap sequences ranked courses and certifications into the fixed
// four-phase plan: the first two beginner courses start immediately, the
// first two intermediate courses plus remaining beginner ones form the
// development phase, the first two certifications the validation phase, and
// advanced courses plus remaining certifications the mastery phase.
// Part-time learners get each phase's end month stretched by 50%.
func BuildRoadmap(courses, certs []types.LearningResource, partTime bool) types.ResourceRoadmap {
	var beginner, intermediate, advanced []types.LearningResource
	for _, course := range courses {
		switch course.DifficultyLevel {
		case "beginner":
			beginner = append(beginner, course)
		case "advanced":
			advanced = append(advanced, course)
		default:
			intermediate = append(intermediate, course)
		}
	}

	beginnerHead, beginnerTail := headTail(beginner, 2)
	intermediateHead, _ := headTail(intermediate, 2)
	certsHead, certsTail := headTail(certs, 2)

	roadmap := types.ResourceRoadmap{
		ImmediateStart: types.ResourcePhase{
			Resources:   beginnerHead,
			Timeline:    "0-2 months",
			Description: "Foundation building",
		},
		SkillDevelopment: types.ResourcePhase{
			Resources:   concat(intermediateHead, beginnerTail),
			Timeline:    "2-6 months",
			Description: "Core skill development",
		},
		CertificationPhase: types.ResourcePhase{
			Resources:   certsHead,
			Timeline:    "6-9 months",
			Description: "Skill validation and credentials",
		},
		AdvancedMastery: types.ResourcePhase{
			Resources:   concat(advanced, certsTail),
			Timeline:    "9+ months",
			Description: "Advanced skills and specialization",
		},
	}

	if partTime {
		roadmap.ImmediateStart.Timeline = stretchTimeline(roadmap.ImmediateStart.Timeline)
		roadmap.SkillDevelopment.Timeline = stretchTimeline(roadmap.SkillDevelopment.Timeline)
		roadmap.CertificationPhase.Timeline = stretchTimeline(roadmap.CertificationPhase.Timeline)
		roadmap.AdvancedMastery.Timeline = stretchTimeline(roadmap.AdvancedMastery.Timeline)
	}

	return roadmap
}

// stretchTimeline multiplies the end month of an "a-b months" timeline by
// the part-time factor. Open-ended timelines ("9+ months") pass through
// unchanged.
func stretchTimeline(timeline string) string {
	start, end, ok := strings.Cut(timeline, "-")
	if !ok {
		return timeline
	}

	months, err := strconv.Atoi(strings.TrimSuffix(end, " months"))
	if err != nil {
		return timeline
	}

	stretched := strconv.FormatFloat(float64(months)*partTimeStretch, 'f', -1, 64)
	return fmt.Sprintf("%s-%s months", start, stretched)
}

func headTail(items []types.LearningResource, n int) (head, tail []types.LearningResource) {
	if len(items) <= n {
		return items, nil
	}
	return items[:n], items[n:]
}

func concat(a, b []types.LearningResource) []types.LearningResource {
	out := make([]types.LearningResource, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
