package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Description text kept on an ingested career. Scoring only reads the first
// 20 words; the rest is display context.
const maxDescriptionWords = 60

// postingSelectors are tried in order to locate the posting body. The later
// entries are generic fallbacks for pages without job-board markup.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// knownSkills are the skill tokens recognized in posting text. Tokens listed
// earlier become required skills when found, later ones preferred.
var knownSkills = []string{
	"python", "java", "javascript", "sql", "c++", "go",
	"react", "node.js", "html", "css", "excel",
	"machine learning", "data analysis", "statistics",
	"aws", "azure", "docker", "kubernetes", "linux", "git",
	"communication", "leadership", "teamwork", "project management", "agile",
}

// requiredSkillCount splits extracted skills into required and preferred.
const requiredSkillCount = 3

// Scrape fetches a job posting and converts it into a career record. The
// page must render its content in static HTML; script-driven boards are not
// supported.
func Scrape(ctx context.Context, postingURL, industry string, opts *Options) (*types.Career, error) {
	html, err := fetchHTML(ctx, postingURL, opts)
	if err != nil {
		return nil, err
	}

	career, err := ExtractCareer(html, postingURL, industry)
	if err != nil {
		return nil, err
	}
	return career, nil
}

// ExtractCareer parses posting HTML into a career record. The career ID is
// derived from the host and title so re-ingesting the same posting replaces
// the earlier row.
func ExtractCareer(html, postingURL, industry string) (*types.Career, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{
			URL:     postingURL,
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	// Remove common unwanted elements (nav, footer, scripts, ads, etc.)
	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	title := extractTitle(doc)
	if title == "" {
		return nil, &Error{
			URL:     postingURL,
			Message: "no job title found in page",
		}
	}

	body := extractBody(doc)
	required, preferred := extractSkills(body)
	if len(required) == 0 {
		return nil, &Error{
			URL:     postingURL,
			Message: "no recognizable skills found in posting",
		}
	}

	if industry == "" {
		industry = "technology"
	}

	return &types.Career{
		ID:                    careerID(postingURL, title),
		Title:                 title,
		Industry:              strings.ToLower(industry),
		Description:           truncateWords(body, maxDescriptionWords),
		RequiredSkills:        required,
		PreferredSkills:       preferred,
		EducationRequirements: []string{"bachelor"},
		ExperienceLevel:       "entry",
		GrowthPotential:       5.0,
		DemandScore:           5.0,
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	for _, selector := range []string{".job-title", "[data-testid='job-title']", "h1", "title"} {
		if selection := doc.Find(selector); selection.Length() > 0 {
			if title := strings.TrimSpace(selection.First().Text()); title != "" {
				return title
			}
		}
	}
	return ""
}

func extractBody(doc *goquery.Document) string {
	var content *goquery.Selection
	for _, selector := range postingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}
	return cleanWhitespace(content.Text())
}

// extractSkills scans posting text for known skill tokens. The first few
// found become required skills, the rest preferred.
func extractSkills(text string) (required, preferred []string) {
	lower := strings.ToLower(text)

	var found []string
	for _, skill := range knownSkills {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}

	if len(found) <= requiredSkillCount {
		return found, nil
	}
	return found[:requiredSkillCount], found[requiredSkillCount:]
}

func careerID(postingURL, title string) string {
	host := "unknown"
	if parsed, err := url.Parse(postingURL); err == nil && parsed.Host != "" {
		host = parsed.Host
	}
	slug := strings.ToLower(fmt.Sprintf("%s_%s", host, title))
	slug = strings.ReplaceAll(slug, " ", "_")
	return slug
}

func truncateWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) <= n {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:n], " ")
}

// cleanWhitespace normalizes whitespace in text.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
