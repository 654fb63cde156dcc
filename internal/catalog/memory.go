package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pushkarjay/career-advisor/internal/schemas"
	"github.com/pushkarjay/career-advisor/internal/types"
)

// Memory is an in-memory catalog seeded with curated careers and learning
// resources. It is the default backend when no database is configured and
// the fixture backend in tests. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	careers []types.Career
}

// NewMemory returns a catalog pre-populated with the curated career set.
func NewMemory() *Memory {
	return &Memory{careers: seedCareers()}
}

// LoadCareersFile validates a JSON seed file against the career schema and
// merges its rows into the catalog. Rows with an existing ID replace the
// stored row.
func (m *Memory) LoadCareersFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read careers file: %w", err)
	}

	if err := schemas.ValidateCareers(string(data)); err != nil {
		return fmt.Errorf("careers file %s: %w", path, err)
	}

	var careers []types.Career
	if err := json.Unmarshal(data, &careers); err != nil {
		return fmt.Errorf("failed to parse careers file: %w", err)
	}

	for _, career := range careers {
		if err := m.AddCareer(context.Background(), career); err != nil {
			return err
		}
	}
	return nil
}

// QueryCareers implements CareerCatalog.
func (m *Memory) QueryCareers(_ context.Context, query CareerQuery) ([]types.Career, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]types.Career, 0, len(m.careers))
	for _, career := range m.careers {
		if query.Industry != "" && !strings.EqualFold(career.Industry, query.Industry) {
			continue
		}
		if query.ExperienceLevel != "" && !strings.EqualFold(career.ExperienceLevel, query.ExperienceLevel) {
			continue
		}
		matched = append(matched, career)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].DemandScore != matched[j].DemandScore {
			return matched[i].DemandScore > matched[j].DemandScore
		}
		return matched[i].GrowthPotential > matched[j].GrowthPotential
	})

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

// GetCareer implements CareerCatalog.
func (m *Memory) GetCareer(_ context.Context, id string) (*types.Career, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, career := range m.careers {
		if career.ID == id {
			c := career
			return &c, nil
		}
	}
	return nil, nil
}

// AddCareer implements CareerCatalog.
func (m *Memory) AddCareer(_ context.Context, career types.Career) error {
	if career.ID == "" {
		return fmt.Errorf("career is missing an id")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.careers {
		if existing.ID == career.ID {
			m.careers[i] = career
			return nil
		}
	}
	m.careers = append(m.careers, career)
	return nil
}

// QueryResources implements ResourceCatalog. Known skills return their
// curated courses and certifications; every skill additionally gets one
// generic catalog course at the requested level. Courses are filtered by the
// requested difficulty unless the level is intermediate.
func (m *Memory) QueryResources(_ context.Context, query ResourceQuery) ([]types.LearningResource, error) {
	skill := strings.ToLower(strings.TrimSpace(query.Skill))
	if skill == "" {
		return nil, fmt.Errorf("resource query is missing a skill")
	}

	var out []types.LearningResource
	for _, course := range curatedCourses[skill] {
		if query.Level == "" || query.Level == "intermediate" || course.DifficultyLevel == query.Level {
			out = append(out, course)
		}
	}
	out = append(out, curatedCertifications[skill]...)
	out = append(out, genericCourse(skill, query.Level))
	return out, nil
}

// genericCourse is the fallback row returned for skills with no curated
// entries.
func genericCourse(skill, level string) types.LearningResource {
	if level == "" {
		level = "beginner"
	}
	return types.LearningResource{
		Title:           fmt.Sprintf("Learn %s - %s Course", titleCase(skill), titleCase(level)),
		Provider:        "Online Learning Platform",
		URL:             fmt.Sprintf("https://example.com/%s-%s", strings.ReplaceAll(skill, " ", "-"), level),
		Type:            "course",
		Duration:        "8 weeks",
		Cost:            "₹2,999",
		Rating:          rating(4.5),
		DifficultyLevel: level,
		SkillsCovered:   []string{skill},
	}
}

// curatedCourses holds hand-picked courses for popular skills.
var curatedCourses = map[string][]types.LearningResource{
	"python": {
		{
			Title:           "Python for Everybody Specialization",
			Provider:        "Coursera (University of Michigan)",
			URL:             "https://coursera.org/specializations/python",
			Type:            "course",
			Duration:        "8 months",
			Cost:            "Free (Audit) / ₹3,000/month",
			Rating:          rating(4.8),
			DifficultyLevel: "beginner",
			SkillsCovered:   []string{"python", "programming", "data structures"},
		},
		{
			Title:           "Complete Python Bootcamp",
			Provider:        "Udemy",
			URL:             "https://udemy.com/course/complete-python-bootcamp",
			Type:            "course",
			Duration:        "22 hours",
			Cost:            "₹3,000-8,000",
			Rating:          rating(4.6),
			DifficultyLevel: "beginner",
			SkillsCovered:   []string{"python", "programming", "projects"},
		},
	},
	"machine learning": {
		{
			Title:           "Machine Learning Specialization",
			Provider:        "Coursera (Stanford)",
			URL:             "https://coursera.org/specializations/machine-learning-introduction",
			Type:            "course",
			Duration:        "3 months",
			Cost:            "₹3,000/month",
			Rating:          rating(4.9),
			DifficultyLevel: "intermediate",
			SkillsCovered:   []string{"machine learning", "python", "algorithms"},
		},
	},
	"javascript": {
		{
			Title:           "The Complete JavaScript Course",
			Provider:        "Udemy",
			URL:             "https://udemy.com/course/the-complete-javascript-course",
			Type:            "course",
			Duration:        "69 hours",
			Cost:            "₹3,000-8,000",
			Rating:          rating(4.7),
			DifficultyLevel: "beginner",
			SkillsCovered:   []string{"javascript", "web development", "programming"},
		},
	},
}

// curatedCertifications holds hand-picked certifications for popular skills.
var curatedCertifications = map[string][]types.LearningResource{
	"aws": {
		{
			Title:           "AWS Certified Solutions Architect",
			Provider:        "Amazon Web Services",
			URL:             "https://aws.amazon.com/certification/certified-solutions-architect-associate/",
			Type:            "certification",
			Duration:        "3-6 months prep",
			Cost:            "$150 USD",
			Rating:          rating(4.5),
			DifficultyLevel: "intermediate",
			SkillsCovered:   []string{"aws", "cloud", "architecture"},
		},
	},
	"python": {
		{
			Title:           "Python Institute PCAP Certification",
			Provider:        "Python Institute",
			URL:             "https://pythoninstitute.org/pcap",
			Type:            "certification",
			Duration:        "2-3 months prep",
			Cost:            "$295 USD",
			Rating:          rating(4.3),
			DifficultyLevel: "intermediate",
			SkillsCovered:   []string{"python", "programming", "oop"},
		},
	},
}

// seedCareers returns the built-in career rows used when no seed file or
// database is configured.
func seedCareers() []types.Career {
	return []types.Career{
		{
			ID:                    "sw-dev-001",
			Title:                 "Software Developer",
			Industry:              "technology",
			Description:           "Develop and maintain software applications using modern technologies.",
			RequiredSkills:        []string{"python", "javascript", "sql"},
			PreferredSkills:       []string{"react", "node.js", "aws"},
			EducationRequirements: []string{"bachelor in computer science"},
			ExperienceLevel:       "entry",
			SalaryRangeMin:        400000,
			SalaryRangeMax:        800000,
			GrowthPotential:       8.5,
			DemandScore:           9.2,
		},
		{
			ID:                    "da-analyst-001",
			Title:                 "Data Analyst",
			Industry:              "technology",
			Description:           "Analyze data to derive business insights and support decision-making.",
			RequiredSkills:        []string{"python", "sql", "excel"},
			PreferredSkills:       []string{"tableau", "r", "statistics"},
			EducationRequirements: []string{"bachelor in any field"},
			ExperienceLevel:       "entry",
			SalaryRangeMin:        350000,
			SalaryRangeMax:        700000,
			GrowthPotential:       7.8,
			DemandScore:           8.5,
		},
		{
			ID:                    "product-mgr-001",
			Title:                 "Product Manager",
			Industry:              "technology",
			Description:           "Manage product development lifecycle and strategy.",
			RequiredSkills:        []string{"product management", "analytics", "communication"},
			PreferredSkills:       []string{"agile", "user research", "sql"},
			EducationRequirements: []string{"bachelor in any field"},
			ExperienceLevel:       "mid",
			SalaryRangeMin:        800000,
			SalaryRangeMax:        1500000,
			GrowthPotential:       9.0,
			DemandScore:           8.8,
		},
		{
			ID:                    "devops-eng-001",
			Title:                 "DevOps Engineer",
			Industry:              "technology",
			Description:           "Build and operate cloud infrastructure and deployment pipelines.",
			RequiredSkills:        []string{"linux", "docker", "aws"},
			PreferredSkills:       []string{"kubernetes", "terraform", "python"},
			EducationRequirements: []string{"bachelor in computer science"},
			ExperienceLevel:       "mid",
			SalaryRangeMin:        700000,
			SalaryRangeMax:        1400000,
			GrowthPotential:       8.8,
			DemandScore:           9.0,
		},
		{
			ID:                    "ml-eng-001",
			Title:                 "Machine Learning Engineer",
			Industry:              "technology",
			Description:           "Design and deploy machine learning models for production systems.",
			RequiredSkills:        []string{"python", "machine learning", "sql"},
			PreferredSkills:       []string{"tensorflow", "statistics", "aws"},
			EducationRequirements: []string{"master in computer science"},
			ExperienceLevel:       "mid",
			SalaryRangeMin:        900000,
			SalaryRangeMax:        1800000,
			GrowthPotential:       9.3,
			DemandScore:           9.1,
		},
	}
}

func rating(v float64) *float64 {
	return &v
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
