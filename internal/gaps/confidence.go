package gaps

import (
	"math"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Confidence rates the quality of a gap analysis in [0,1]:
// data quality (gap count, ideal 10+) weighted 0.4, roadmap presence 0.3,
// narrative presence 0.3. An empty analysis returns the 0.3 floor rather
// than erroring.
func Confidence(skillGaps []types.SkillGap, roadmap types.Roadmap, hasNarrative bool) float64 {
	if len(skillGaps) == 0 {
		return 0.3
	}

	dataQuality := math.Min(float64(len(skillGaps))/10.0, 1.0)

	roadmapQuality := 0.5
	if !roadmap.IsEmpty() {
		roadmapQuality = 1.0
	}

	narrativeQuality := 0.7
	if hasNarrative {
		narrativeQuality = 1.0
	}

	overall := dataQuality*0.4 + roadmapQuality*0.3 + narrativeQuality*0.3
	return math.Round(overall*1000) / 1000
}
