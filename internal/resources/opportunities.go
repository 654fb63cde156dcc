package resources

import (
	"fmt"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Opportunities builds internship and project suggestions for a target
// career. Entries are templated from the career's skill lists; a resource
// catalog backed by live job-board data can replace this later.
func Opportunities(career types.Career, location string) ([]types.Internship, []types.ProjectIdea) {
	if location == "" {
		location = DefaultLocation
	}

	internships := []types.Internship{
		{
			Title:               fmt.Sprintf("%s Intern", career.Title),
			Company:             "Tech Company India",
			Location:            location,
			Duration:            "3-6 months",
			Requirements:        firstN(career.RequiredSkills, 3),
			ApplicationDeadline: "Open",
			Stipend:             "₹15,000-25,000/month",
			Type:                "internship",
		},
		{
			Title:               fmt.Sprintf("Junior %s", career.Title),
			Company:             "Startup Hub",
			Location:            location,
			Duration:            "6 months",
			Requirements:        firstN(career.RequiredSkills, 2),
			ApplicationDeadline: "Rolling",
			Stipend:             "₹20,000-30,000/month",
			Type:                "internship",
		},
	}

	projects := []types.ProjectIdea{
		{
			Title:              fmt.Sprintf("Build a %s Portfolio Project", career.Title),
			Description:        fmt.Sprintf("Create a comprehensive project demonstrating %s skills", career.Title),
			SkillsDemonstrated: firstN(career.RequiredSkills, 4),
			EstimatedTime:      "4-6 weeks",
			Difficulty:         "intermediate",
			Type:               "portfolio",
		},
		{
			Title:              fmt.Sprintf("Open Source %s Contribution", career.Industry),
			Description:        fmt.Sprintf("Contribute to open source projects in the %s domain", career.Industry),
			SkillsDemonstrated: firstN(career.PreferredSkills, 3),
			EstimatedTime:      "2-3 weeks",
			Difficulty:         "beginner",
			Type:               "open_source",
		},
	}

	return internships, projects
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
