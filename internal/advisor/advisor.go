// Package advisor orchestrates the scoring, gap-analysis and
// resource-recommendation pipelines. It owns the degrade policy: failures of
// optional collaborators (catalog lookups, narrative generation) mark the
// report degraded and never abort the numeric result.
package advisor

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/pushkarjay/career-advisor/internal/catalog"
	"github.com/pushkarjay/career-advisor/internal/gaps"
	"github.com/pushkarjay/career-advisor/internal/insights"
	"github.com/pushkarjay/career-advisor/internal/matching"
	"github.com/pushkarjay/career-advisor/internal/proficiency"
	"github.com/pushkarjay/career-advisor/internal/profile"
	"github.com/pushkarjay/career-advisor/internal/requirements"
	"github.com/pushkarjay/career-advisor/internal/resources"
	"github.com/pushkarjay/career-advisor/internal/roadmap"
	"github.com/pushkarjay/career-advisor/internal/scraper"
	"github.com/pushkarjay/career-advisor/internal/types"
)

// ErrMissingTargetRole is returned when a gap analysis names neither a
// career ID nor an inline target role. There is nothing to analyze against,
// so this is fatal rather than degraded.
var ErrMissingTargetRole = errors.New("either career_id or target_role must be provided")

// ErrCareerNotFound is returned when a referenced career ID is not in the
// catalog.
var ErrCareerNotFound = errors.New("career not found")

// candidateLimit caps how many catalog rows one match request scores.
const candidateLimit = 50

// significantGap is the threshold above which a gap gets catalog resources.
const significantGap = 2.0

// Per-skill resource caps before batch-level ranking.
const (
	maxCoursesPerSkill = 5
	maxCertsPerSkill   = 3
)

// Advisor wires the pipeline stages together. All collaborators are
// injected; Insights may be nil, which disables narrative sections.
type Advisor struct {
	careers   catalog.CareerCatalog
	resources catalog.ResourceCatalog
	insights  *insights.Generator
	logger    *log.Logger
}

// New constructs an Advisor. careerCat is required; resourceCat and gen may
// be nil, degrading the corresponding report sections.
func New(careerCat catalog.CareerCatalog, resourceCat catalog.ResourceCatalog, gen *insights.Generator, logger *log.Logger) *Advisor {
	if logger == nil {
		logger = log.Default()
	}
	return &Advisor{
		careers:   careerCat,
		resources: resourceCat,
		insights:  gen,
		logger:    logger,
	}
}

// ScoreCareerMatches ranks catalog careers against a profile. Catalog and
// narrative failures are logged and surface as a degraded report; the only
// hard failure is context cancellation.
func (a *Advisor) ScoreCareerMatches(ctx context.Context, input types.ProfileInput, limit int) (*types.MatchReport, error) {
	start := time.Now()
	p := profile.Normalize(input)

	degraded := false
	candidates, err := a.queryCandidates(ctx, p)
	if err != nil {
		a.logger.Printf("career catalog query failed, continuing with no candidates: %v", err)
		degraded = true
	}

	matches, err := matching.Rank(ctx, p, candidates, limit)
	if err != nil {
		return nil, err
	}

	report := &types.MatchReport{
		ReportID:    uuid.New(),
		Matches:     matches,
		Methodology: matching.Methodology,
		Confidence:  matching.Confidence(matches),
		Degraded:    degraded,
		GeneratedAt: time.Now().UTC(),
	}

	if a.insights != nil && len(matches) > 0 {
		top := matches
		if len(top) > 5 {
			top = top[:5]
		}
		marketInsights, err := a.insights.MarketInsights(ctx, p, top)
		if err != nil {
			a.logger.Printf("market insights unavailable: %v", err)
			report.Degraded = true
		} else {
			report.MarketInsights = marketInsights
		}
	}

	report.ProcessingTime = time.Since(start).Seconds()
	return report, nil
}

// queryCandidates fetches candidate careers, preferring rows at the user's
// experience level and widening to the full catalog when that returns
// nothing.
func (a *Advisor) queryCandidates(ctx context.Context, p types.UserProfile) ([]types.Career, error) {
	level := string(profile.ExperienceLevelFor(p))
	candidates, err := a.careers.QueryCareers(ctx, catalog.CareerQuery{
		ExperienceLevel: level,
		Limit:           candidateLimit,
	})
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 {
		return candidates, nil
	}
	return a.careers.QueryCareers(ctx, catalog.CareerQuery{Limit: candidateLimit})
}

// AnalyzeSkillGaps measures a profile against a target role. The role comes
// either from the catalog by ID or inline from the request; having neither
// is fatal.
func (a *Advisor) AnalyzeSkillGaps(ctx context.Context, input types.ProfileInput, careerID string, target *types.Career) (*types.GapReport, error) {
	start := time.Now()
	p := profile.Normalize(input)

	role, err := a.resolveTarget(ctx, careerID, target)
	if err != nil {
		return nil, err
	}

	prof := proficiency.Estimate(p)
	reqs := requirements.Normalize(*role)
	skillGaps := gaps.Analyze(reqs, prof)
	plan := roadmap.Build(skillGaps)

	report := &types.GapReport{
		ReportID:         uuid.New(),
		CareerID:         role.ID,
		SkillGaps:        skillGaps,
		OverallReadiness: gaps.Readiness(skillGaps),
		Roadmap:          plan,
		PrioritySkills:   gaps.PrioritySkills(skillGaps),
		TimeEstimates:    roadmap.EstimateTime(skillGaps),
		GeneratedAt:      time.Now().UTC(),
	}

	if a.insights != nil {
		recs, err := a.insights.SkillRecommendations(ctx, p, *role, skillGaps)
		if err != nil {
			a.logger.Printf("skill recommendations unavailable: %v", err)
			report.Degraded = true
		} else {
			report.Recommendations = recs
		}
	}

	report.Confidence = gaps.Confidence(skillGaps, plan, report.Recommendations != nil)
	report.ProcessingTime = time.Since(start).Seconds()
	return report, nil
}

func (a *Advisor) resolveTarget(ctx context.Context, careerID string, target *types.Career) (*types.Career, error) {
	if target != nil {
		return target, nil
	}
	if careerID == "" {
		return nil, ErrMissingTargetRole
	}

	role, err := a.careers.GetCareer(ctx, careerID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrCareerNotFound
	}
	return role, nil
}

// RecommendResources suggests courses, certifications and opportunities for
// a set of skill gaps. Only gaps above the significance threshold get
// catalog lookups; per-skill failures are logged and skipped.
func (a *Advisor) RecommendResources(ctx context.Context, input types.ProfileInput, skillGaps []types.SkillGap, target *types.Career) (*types.ResourceReport, error) {
	start := time.Now()
	p := profile.Normalize(input)

	budget := resources.BudgetPreference(p)
	location := p.Location
	if location == "" {
		location = resources.DefaultLocation
	}

	report := &types.ResourceReport{
		ReportID:               uuid.New(),
		PersonalizationFactors: resources.PersonalizationFactors(p),
		GeneratedAt:            time.Now().UTC(),
	}

	var courses, certs []types.LearningResource
	for _, gap := range skillGaps {
		if gap.GapScore <= significantGap {
			continue
		}
		if a.resources == nil {
			report.Degraded = true
			break
		}

		found, err := a.resources.QueryResources(ctx, catalog.ResourceQuery{
			Skill:    gap.SkillName,
			Level:    resources.LevelFor(gap.CurrentProficiency),
			Location: location,
			Budget:   budget,
		})
		if err != nil {
			a.logger.Printf("resource lookup for %q failed: %v", gap.SkillName, err)
			report.Degraded = true
			continue
		}

		skillCourses, skillCerts := splitResources(found)
		courses = append(courses, capResources(skillCourses, maxCoursesPerSkill)...)
		certs = append(certs, capResources(skillCerts, maxCertsPerSkill)...)
	}

	if target != nil {
		report.Internships, report.ProjectIdeas = resources.Opportunities(*target, location)
	}

	// The roadmap sequences the raw per-skill picks; ranking trims the flat
	// recommendation lists afterwards.
	partTime := resources.TimeAvailability(p) == "part-time"
	report.Roadmap = resources.BuildRoadmap(courses, certs, partTime)

	if a.insights != nil {
		suggestions, err := a.insights.LearningSuggestions(ctx, p, skillGaps, target)
		if err != nil {
			a.logger.Printf("learning suggestions unavailable: %v", err)
			report.Degraded = true
		} else {
			report.Suggestions = suggestions
		}
	}

	report.Courses = resources.RankCourses(courses)
	report.Certifications = resources.RankCertifications(certs)
	report.Confidence = resources.Confidence(report.Courses, report.Certifications,
		len(report.Internships) > 0, report.Suggestions != nil)
	report.ProcessingTime = time.Since(start).Seconds()
	return report, nil
}

// IngestCareer scrapes a job posting and stores it in the career catalog.
func (a *Advisor) IngestCareer(ctx context.Context, postingURL, industry string) (*types.Career, error) {
	career, err := scraper.Scrape(ctx, postingURL, industry, nil)
	if err != nil {
		return nil, err
	}

	if err := a.careers.AddCareer(ctx, *career); err != nil {
		return nil, err
	}
	return career, nil
}

// ListCareers returns catalog careers for browsing.
func (a *Advisor) ListCareers(ctx context.Context, industry string, limit int) ([]types.Career, error) {
	return a.careers.QueryCareers(ctx, catalog.CareerQuery{Industry: industry, Limit: limit})
}

// GetCareer returns one career by ID.
func (a *Advisor) GetCareer(ctx context.Context, id string) (*types.Career, error) {
	role, err := a.careers.GetCareer(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrCareerNotFound
	}
	return role, nil
}

func splitResources(items []types.LearningResource) (courses, certs []types.LearningResource) {
	for _, item := range items {
		switch item.Type {
		case "certification", "certificate":
			certs = append(certs, item)
		default:
			courses = append(courses, item)
		}
	}
	return courses, certs
}

func capResources(items []types.LearningResource, n int) []types.LearningResource {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
