package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postingHTML = `<html>
<head><title>Jobs Portal</title></head>
<body>
<nav>Home | Jobs | About</nav>
<h1 class="job-title">Backend Developer</h1>
<div class="job-description">
We are looking for a backend developer with strong Python and SQL skills.
Experience with Docker and AWS is a plus. Clear communication required.
</div>
<footer>Copyright</footer>
</body>
</html>`

func TestExtractCareer_FullPosting(t *testing.T) {
	career, err := ExtractCareer(postingHTML, "https://jobs.example.com/backend-123", "technology")

	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", career.Title)
	assert.Equal(t, "technology", career.Industry)
	// Skill tokens split in list order: first three required, rest preferred
	assert.Equal(t, []string{"python", "sql", "aws"}, career.RequiredSkills)
	assert.Equal(t, []string{"docker", "communication"}, career.PreferredSkills)
	assert.Equal(t, []string{"bachelor"}, career.EducationRequirements)
	assert.Equal(t, "entry", career.ExperienceLevel)
	assert.Equal(t, 5.0, career.GrowthPotential)
	assert.Equal(t, 5.0, career.DemandScore)
}

func TestExtractCareer_CareerIDFromHostAndTitle(t *testing.T) {
	career, err := ExtractCareer(postingHTML, "https://jobs.example.com/backend-123", "")

	require.NoError(t, err)
	assert.Equal(t, "jobs.example.com_backend_developer", career.ID)
}

func TestExtractCareer_DefaultIndustry(t *testing.T) {
	career, err := ExtractCareer(postingHTML, "https://jobs.example.com/x", "")

	require.NoError(t, err)
	assert.Equal(t, "technology", career.Industry)
}

func TestExtractCareer_TitleFallsBackToHeading(t *testing.T) {
	html := `<html><body><h1>Data Analyst</h1><main>Excel and SQL and statistics daily.</main></body></html>`

	career, err := ExtractCareer(html, "https://example.com/j", "technology")

	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", career.Title)
}

func TestExtractCareer_NavigationNoiseRemoved(t *testing.T) {
	html := `<html><body>
<nav>python java javascript sql</nav>
<h1>Office Assistant</h1>
<main>Strong excel skills needed.</main>
</body></html>`

	career, err := ExtractCareer(html, "https://example.com/j", "technology")

	require.NoError(t, err)
	// Skills inside stripped navigation must not leak into the posting body
	assert.Equal(t, []string{"excel"}, career.RequiredSkills)
}

func TestExtractCareer_NoTitle(t *testing.T) {
	html := `<html><body><main>python sql</main></body></html>`

	_, err := ExtractCareer(html, "https://example.com/j", "")

	require.Error(t, err)
	var scrapeErr *Error
	require.ErrorAs(t, err, &scrapeErr)
	assert.Contains(t, scrapeErr.Message, "no job title")
}

func TestExtractCareer_NoRecognizableSkills(t *testing.T) {
	html := `<html><body><h1>Chef</h1><main>Cook delicious meals every day.</main></body></html>`

	_, err := ExtractCareer(html, "https://example.com/j", "")

	require.Error(t, err)
	var scrapeErr *Error
	require.ErrorAs(t, err, &scrapeErr)
	assert.Equal(t, "https://example.com/j", scrapeErr.URL)
}

func TestExtractCareer_DescriptionTruncated(t *testing.T) {
	var words []string
	for i := 0; i < 100; i++ {
		words = append(words, "word")
	}
	html := `<html><body><h1>Dev</h1><main>python sql excel ` + joinWords(words) + `</main></body></html>`

	career, err := ExtractCareer(html, "https://example.com/j", "")

	require.NoError(t, err)
	assert.LessOrEqual(t, wordCount(career.Description), 60)
}

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}

func wordCount(s string) int {
	count := 0
	inWord := false
	for _, r := range s {
		if r == ' ' || r == '\n' {
			inWord = false
			continue
		}
		if !inWord {
			count++
			inWord = true
		}
	}
	return count
}
