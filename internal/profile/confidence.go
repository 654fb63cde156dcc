package profile

import (
	"math"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Confidence summarizes how complete and trustworthy a normalized profile is.
// Values are advisory, in [0,1].
type Confidence struct {
	Overall          float64 `json:"overall"`
	DataCompleteness float64 `json:"data_completeness"`
	FormQuality      float64 `json:"form_data_quality"`
	ResumeQuality    float64 `json:"resume_parsing_quality"`
}

// Score rates a profile on completeness of the fields the scorers depend on,
// weighted with the quality of each intake source. hasForm and hasResume
// report which intake paths contributed data.
func Score(p types.UserProfile, hasForm, hasResume bool) Confidence {
	completed := 0
	if p.EducationLevel != "" {
		completed++
	}
	if p.FieldOfStudy != "" {
		completed++
	}
	if len(p.Skills) > 0 {
		completed++
	}
	if len(p.Interests) > 0 {
		completed++
	}

	c := Confidence{
		DataCompleteness: float64(completed) / 4.0,
	}
	if hasForm {
		c.FormQuality = 0.9
	}
	if hasResume {
		c.ResumeQuality = 0.8
	}

	c.Overall = round3(c.DataCompleteness*0.4 + c.FormQuality*0.3 + c.ResumeQuality*0.3)
	return c
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
