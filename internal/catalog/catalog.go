// Package catalog provides access to career and learning-resource data.
// Two implementations exist: an in-memory catalog seeded with curated rows
// (optionally extended from validated JSON seed files) and a PostgreSQL
// catalog for deployments with a managed dataset.
package catalog

import (
	"context"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// CareerQuery narrows a career lookup. Zero-valued fields are ignored.
type CareerQuery struct {
	Industry        string
	ExperienceLevel string
	Limit           int
}

// ResourceQuery narrows a learning-resource lookup. Skill is required;
// Level filters courses by difficulty (an "intermediate" query passes all
// levels through so learners in the middle see the full range).
type ResourceQuery struct {
	Skill    string
	Level    string
	Location string
	Budget   string
}

// CareerCatalog serves candidate roles for matching and gap analysis.
type CareerCatalog interface {
	// QueryCareers returns careers matching the query, ordered by demand
	// score then growth potential, both descending.
	QueryCareers(ctx context.Context, query CareerQuery) ([]types.Career, error)
	// GetCareer returns the career with the given ID, or nil when absent.
	GetCareer(ctx context.Context, id string) (*types.Career, error)
	// AddCareer stores a new career, replacing any existing row with the
	// same ID.
	AddCareer(ctx context.Context, career types.Career) error
}

// ResourceCatalog serves learning resources for skill gaps.
type ResourceCatalog interface {
	// QueryResources returns courses and certifications for a skill.
	QueryResources(ctx context.Context, query ResourceQuery) ([]types.LearningResource, error)
}
