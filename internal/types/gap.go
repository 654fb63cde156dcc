package types

import (
	"time"

	"github.com/google/uuid"
)

// SkillType categorizes a skill for proficiency and time estimation.
type SkillType string

// Skill type constants.
const (
	SkillTypeTechnical SkillType = "technical"
	SkillTypeSoft      SkillType = "soft"
	SkillTypeLanguage  SkillType = "language"
	SkillTypeDomain    SkillType = "domain"
)

// RoleRequirement is one weighted skill requirement derived from a career's
// required/preferred skill lists. Name is stored lower-cased.
type RoleRequirement struct {
	Name                string    `json:"name"`
	ImportanceLevel     float64   `json:"importance_level"`
	RequiredProficiency float64   `json:"required_proficiency"`
	SkillType           SkillType `json:"skill_type"`
	IsRequired          bool      `json:"is_required"`
}

// SkillGap measures the deficit for a single requirement.
// GapScore is max(required - current, 0) and always lies in [0,10].
type SkillGap struct {
	SkillName           string             `json:"skill_name"`
	ImportanceLevel     float64            `json:"importance_level"`
	CurrentProficiency  float64            `json:"current_proficiency"`
	RequiredProficiency float64            `json:"required_proficiency"`
	GapScore            float64            `json:"gap_score"`
	LearningResources   []LearningResource `json:"learning_resources,omitempty"`
}

// RoadmapPhase is one ordered bucket of a learning roadmap.
type RoadmapPhase struct {
	Skills        []string `json:"skills"`
	DurationWeeks int      `json:"duration_weeks"`
	Description   string   `json:"description"`
}

// Roadmap is the fixed three-phase learning plan built from skill gaps.
type Roadmap struct {
	Phase1Immediate  RoadmapPhase `json:"phase_1_immediate"`
	Phase2Foundation RoadmapPhase `json:"phase_2_foundation"`
	Phase3Advanced   RoadmapPhase `json:"phase_3_advanced"`
}

// IsEmpty reports whether no phase contains any skill.
func (r Roadmap) IsEmpty() bool {
	return len(r.Phase1Immediate.Skills) == 0 &&
		len(r.Phase2Foundation.Skills) == 0 &&
		len(r.Phase3Advanced.Skills) == 0
}

// SkillTimeEstimate is the study time to close one skill gap.
type SkillTimeEstimate struct {
	Hours int `json:"hours"`
	Weeks int `json:"weeks"`
}

// TimeEstimates aggregates study time across all skill gaps, assuming a
// 10 hours/week baseline pace.
type TimeEstimates struct {
	TotalWeeks     int                          `json:"total_weeks"`
	TotalHours     int                          `json:"total_hours"`
	SkillBreakdown map[string]SkillTimeEstimate `json:"skill_breakdown"`
	IntensiveWeeks int                          `json:"intensive_weeks"`
	PartTimeWeeks  int                          `json:"part_time_weeks"`
}

// SkillRecommendations holds the optional LLM-generated study guidance for a
// gap report. Absent when the text-generation provider is unavailable.
type SkillRecommendations struct {
	LearningStrategy string   `json:"learning_strategy,omitempty"`
	SkillOrder       []string `json:"skill_order,omitempty"`
	LearningTips     []string `json:"learning_tips,omitempty"`
	PortfolioAdvice  string   `json:"portfolio_advice,omitempty"`
	Pitfalls         []string `json:"pitfalls,omitempty"`
}

// GapReport is the response of the skill-gap analysis operation.
type GapReport struct {
	ReportID         uuid.UUID             `json:"report_id"`
	CareerID         string                `json:"career_id"`
	SkillGaps        []SkillGap            `json:"skill_gaps"`
	OverallReadiness float64               `json:"overall_readiness"`
	Roadmap          Roadmap               `json:"learning_roadmap"`
	PrioritySkills   []string              `json:"priority_skills"`
	TimeEstimates    TimeEstimates         `json:"time_estimates"`
	Confidence       float64               `json:"confidence_score"`
	Recommendations  *SkillRecommendations `json:"ai_recommendations,omitempty"`
	Degraded         bool                  `json:"degraded,omitempty"`
	ProcessingTime   float64               `json:"processing_time_seconds"`
	GeneratedAt      time.Time             `json:"generated_at"`
}
