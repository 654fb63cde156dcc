package types

import (
	"time"

	"github.com/google/uuid"
)

// LearningResource is one course, certification or similar learning item.
// Resources are constructed per request from a catalog lookup and never
// mutated afterwards; ranking produces new filtered lists.
type LearningResource struct {
	Title           string    `json:"title"`
	Provider        string    `json:"provider"`
	URL             string    `json:"url,omitempty"`
	Type            string    `json:"type"`
	Duration        string    `json:"duration,omitempty"`
	Cost            string    `json:"cost,omitempty"`
	Rating          *float64  `json:"rating,omitempty"`
	DifficultyLevel string    `json:"difficulty_level"`
	SkillsCovered   []string  `json:"skills_covered,omitempty"`
	SkillType       SkillType `json:"skill_type,omitempty"`
}

// RatingOrZero returns the rating, treating an unrated resource as 0.
func (r LearningResource) RatingOrZero() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

// ResourcePhase is one ordered bucket of the resource roadmap.
type ResourcePhase struct {
	Resources   []LearningResource `json:"resources"`
	Timeline    string             `json:"timeline"`
	Description string             `json:"description"`
}

// ResourceRoadmap sequences recommended resources into four fixed phases.
type ResourceRoadmap struct {
	ImmediateStart     ResourcePhase `json:"immediate_start"`
	SkillDevelopment   ResourcePhase `json:"skill_development"`
	CertificationPhase ResourcePhase `json:"certification_phase"`
	AdvancedMastery    ResourcePhase `json:"advanced_mastery"`
}

// Internship is one internship opportunity attached to a resource report.
type Internship struct {
	Title               string   `json:"title"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	Duration            string   `json:"duration"`
	Requirements        []string `json:"requirements"`
	ApplicationDeadline string   `json:"application_deadline"`
	Stipend             string   `json:"stipend"`
	Type                string   `json:"type"`
}

// ProjectIdea is a suggested portfolio or open-source project.
type ProjectIdea struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	SkillsDemonstrated []string `json:"skills_demonstrated"`
	EstimatedTime      string   `json:"estimated_time"`
	Difficulty         string   `json:"difficulty"`
	Type               string   `json:"type"`
}

// LearningSuggestions holds the optional LLM-generated guidance for a
// resource report.
type LearningSuggestions struct {
	Platforms         []string `json:"platforms,omitempty"`
	AffordableOptions []string `json:"affordable_options,omitempty"`
	LocalResources    []string `json:"local_resources,omitempty"`
	PracticalTips     []string `json:"practical_tips,omitempty"`
	Networking        []string `json:"networking,omitempty"`
	TimelineTips      []string `json:"timeline_tips,omitempty"`
}

// ResourceReport is the response of the resource-recommendation operation.
type ResourceReport struct {
	ReportID               uuid.UUID            `json:"report_id"`
	Courses                []LearningResource   `json:"course_recommendations"`
	Certifications         []LearningResource   `json:"certification_recommendations"`
	Internships            []Internship         `json:"internship_opportunities"`
	ProjectIdeas           []ProjectIdea        `json:"project_ideas"`
	Roadmap                ResourceRoadmap      `json:"resource_roadmap"`
	PersonalizationFactors []string             `json:"personalization_factors"`
	Confidence             float64              `json:"confidence_score"`
	Suggestions            *LearningSuggestions `json:"ai_suggestions,omitempty"`
	Degraded               bool                 `json:"degraded,omitempty"`
	ProcessingTime         float64              `json:"processing_time_seconds"`
	GeneratedAt            time.Time            `json:"generated_at"`
}
