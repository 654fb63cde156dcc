package types

import (
	"time"

	"github.com/google/uuid"
)

// Career describes one candidate role from the career catalog.
type Career struct {
	ID                    string   `json:"id"`
	Title                 string   `json:"title"`
	Industry              string   `json:"industry"`
	Description           string   `json:"description"`
	RequiredSkills        []string `json:"required_skills"`
	PreferredSkills       []string `json:"preferred_skills"`
	EducationRequirements []string `json:"education_requirements"`
	ExperienceLevel       string   `json:"experience_level"`
	SalaryRangeMin        int      `json:"salary_range_min,omitempty"`
	SalaryRangeMax        int      `json:"salary_range_max,omitempty"`
	GrowthPotential       float64  `json:"growth_potential"`
	DemandScore           float64  `json:"demand_score"`
}

// ComponentScores holds the five weighted match components, each in [0,100].
type ComponentScores struct {
	Skills     float64 `json:"skills"`
	Interests  float64 `json:"interests"`
	Industry   float64 `json:"industry"`
	Education  float64 `json:"education"`
	Experience float64 `json:"experience"`
}

// CareerMatch is one scored (profile, career) pair. MatchScore is a
// deterministic function of its inputs; identical inputs always produce an
// identical match.
type CareerMatch struct {
	Career               Career          `json:"career"`
	MatchScore           float64         `json:"match_score"`
	SkillMatchPercentage float64         `json:"skill_match_percentage"`
	MatchingSkills       []string        `json:"matching_skills"`
	MissingSkills        []string        `json:"missing_skills"`
	RecommendationReason string          `json:"recommendation_reason"`
	Components           ComponentScores `json:"component_scores"`
}

// MatchConfidence summarizes result quality for a batch of career matches.
type MatchConfidence struct {
	Overall        float64 `json:"overall"`
	DataQuality    float64 `json:"data_quality"`
	MatchDiversity float64 `json:"match_diversity"`
	TopMatchScore  float64 `json:"top_match_score"`
}

// MarketInsights holds the optional LLM-generated narrative attached to a
// match report. Absent when the text-generation provider is unavailable.
type MarketInsights struct {
	MarketAnalysis  string   `json:"market_analysis,omitempty"`
	SalaryInsights  string   `json:"salary_insights,omitempty"`
	GrowthTrends    string   `json:"growth_trends,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// MatchReport is the response of the career-match operation.
type MatchReport struct {
	ReportID       uuid.UUID       `json:"report_id"`
	Matches        []CareerMatch   `json:"career_matches"`
	Methodology    string          `json:"matching_methodology"`
	Confidence     MatchConfidence `json:"confidence_scores"`
	MarketInsights *MarketInsights `json:"market_insights,omitempty"`
	Degraded       bool            `json:"degraded,omitempty"`
	ProcessingTime float64         `json:"processing_time_seconds"`
	GeneratedAt    time.Time       `json:"generated_at"`
}
