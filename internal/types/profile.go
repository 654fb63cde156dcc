// Package types provides type definitions for structured data used throughout the career-advisor system.
package types

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ExperienceLevel buckets a user's working history for catalog queries.
type ExperienceLevel string

// Experience level constants, ordered from least to most experienced.
const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// UserProfile is the scoring input describing one user. Skills, interests and
// industries are matched case-insensitively; callers should run raw input
// through profile.Normalize before scoring.
type UserProfile struct {
	Skills              []string `json:"skills"`
	Interests           []string `json:"interests"`
	PreferredIndustries []string `json:"preferred_industries"`
	EducationLevel      string   `json:"education_level"`
	FieldOfStudy        string   `json:"field_of_study,omitempty"`
	ExperienceYears     int      `json:"experience_years"`
	CurrentYear         int      `json:"current_year"`
	Location            string   `json:"location,omitempty"`
	CareerGoals         string   `json:"career_goals,omitempty"`
}

// StringList accepts either a JSON array of strings or a single delimited
// string ("go, sql; docker") and normalizes both to a slice.
type StringList []string

var listSeparators = regexp.MustCompile(`[,;\n]+`)

// UnmarshalJSON implements json.Unmarshaler for StringList.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = trimNonEmpty(items)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = trimNonEmpty(listSeparators.Split(raw, -1))
	return nil
}

func trimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ProfileInput is the wire form of a user profile as submitted by clients.
// List fields tolerate both arrays and delimited strings; numeric fields are
// clamped (not rejected) by profile.Normalize.
type ProfileInput struct {
	Skills              StringList `json:"skills"`
	Interests           StringList `json:"interests"`
	PreferredIndustries StringList `json:"preferred_industries"`
	EducationLevel      string     `json:"education_level"`
	FieldOfStudy        string     `json:"field_of_study,omitempty"`
	ExperienceYears     int        `json:"experience_years"`
	CurrentYear         int        `json:"current_year"`
	Location            string     `json:"location,omitempty"`
	CareerGoals         string     `json:"career_goals,omitempty"`
}

// MatchRequest asks for ranked career matches for a profile.
type MatchRequest struct {
	Profile ProfileInput `json:"profile" validate:"required"`
	Limit   int          `json:"limit,omitempty" validate:"omitempty,min=1,max=50"`
}

// GapRequest asks for a skill-gap analysis against a target role. Exactly one
// of CareerID or TargetRole must be supplied; the handler rejects requests
// with neither.
type GapRequest struct {
	Profile    ProfileInput `json:"profile" validate:"required"`
	CareerID   string       `json:"career_id,omitempty"`
	TargetRole *Career      `json:"target_role,omitempty"`
}

// ResourceRequest asks for learning-resource recommendations for a set of
// previously computed skill gaps.
type ResourceRequest struct {
	Profile        ProfileInput `json:"profile" validate:"required"`
	SkillGaps      []SkillGap   `json:"skill_gaps" validate:"required,min=1"`
	TargetCareerID string       `json:"target_career_id,omitempty"`
}

// IngestRequest asks the server to scrape a job posting into a role record.
type IngestRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Industry string `json:"industry,omitempty"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GapRequest using the validator.
func (r *GapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ResourceRequest using the validator.
func (r *ResourceRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the IngestRequest using the validator.
func (r *IngestRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
