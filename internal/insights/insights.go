// Package insights generates the optional narrative sections of advisor
// reports via the configured text-generation client. Every function returns
// an error rather than a fallback; callers mark the report degraded and
// continue without the narrative.
package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pushkarjay/career-advisor/internal/llm"
	"github.com/pushkarjay/career-advisor/internal/types"
)

// Generator builds prompts and parses the structured JSON the model returns.
type Generator struct {
	client llm.Client
}

// NewGenerator wraps an LLM client. A nil client is allowed; all calls then
// fail with ErrNoClient.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// ErrNoClient is returned when insight generation is requested without a
// configured text-generation client.
var ErrNoClient = fmt.Errorf("no text-generation client configured")

// MarketInsights generates the market narrative for a set of top matches.
func (g *Generator) MarketInsights(ctx context.Context, profile types.UserProfile, matches []types.CareerMatch) (*types.MarketInsights, error) {
	if g.client == nil {
		return nil, ErrNoClient
	}

	titles := make([]string, 0, len(matches))
	for _, match := range matches {
		titles = append(titles, match.Career.Title)
	}
	location := profile.Location
	if location == "" {
		location = "India"
	}

	prompt := fmt.Sprintf(`Analyze the career market for a student with the following profile:
- Skills: %s
- Location: %s
- Top career matches: %s

Provide insights on:
1. Market demand for these careers in India
2. Salary expectations
3. Growth trends
4. Geographic opportunities
5. Key recommendations

Keep response concise and actionable. Respond with a JSON object with keys
"market_analysis", "salary_insights", "growth_trends" (strings) and
"recommendations" (array of strings).`,
		strings.Join(profile.Skills, ", "), location, strings.Join(titles, ", "))

	var out types.MarketInsights
	if err := g.generate(ctx, prompt, llm.TierStandard, &out); err != nil {
		return nil, fmt.Errorf("failed to generate market insights: %w", err)
	}
	return &out, nil
}

// SkillRecommendations generates study guidance for a gap analysis.
func (g *Generator) SkillRecommendations(ctx context.Context, profile types.UserProfile, career types.Career, skillGaps []types.SkillGap) (*types.SkillRecommendations, error) {
	if g.client == nil {
		return nil, ErrNoClient
	}

	var majorGaps []string
	for _, gap := range skillGaps {
		if gap.GapScore > 4.0 {
			majorGaps = append(majorGaps, gap.SkillName)
		}
	}

	prompt := fmt.Sprintf(`Create personalized skill development recommendations for:

Background: %s student
Current Skills: %s
Target Career: %s
Major Skill Gaps: %s

Provide:
1. Learning strategy tailored to their background
2. Recommended order for skill development
3. Tips for accelerated learning
4. How to practice and build portfolio
5. Common pitfalls to avoid

Keep recommendations practical and actionable for Indian students. Respond
with a JSON object with keys "learning_strategy" (string), "skill_order"
(array), "learning_tips" (array), "portfolio_advice" (string) and
"pitfalls" (array).`,
		profile.EducationLevel, strings.Join(profile.Skills, ", "),
		career.Title, strings.Join(majorGaps, ", "))

	var out types.SkillRecommendations
	if err := g.generate(ctx, prompt, llm.TierStandard, &out); err != nil {
		return nil, fmt.Errorf("failed to generate skill recommendations: %w", err)
	}
	return &out, nil
}

// LearningSuggestions generates platform and strategy suggestions for a
// resource recommendation.
func (g *Generator) LearningSuggestions(ctx context.Context, profile types.UserProfile, skillGaps []types.SkillGap, target *types.Career) (*types.LearningSuggestions, error) {
	if g.client == nil {
		return nil, ErrNoClient
	}

	skillsNeeded := make([]string, 0, len(skillGaps))
	for _, gap := range skillGaps {
		skillsNeeded = append(skillsNeeded, gap.SkillName)
	}
	if len(skillsNeeded) > 5 {
		skillsNeeded = skillsNeeded[:5]
	}
	location := profile.Location
	if location == "" {
		location = "India"
	}
	careerGoal := ""
	if target != nil {
		careerGoal = target.Title
	}

	prompt := fmt.Sprintf(`Provide personalized learning recommendations for an Indian student:

Background: %s student in %s
Skills to develop: %s
Career goal: %s

Suggest:
1. Best learning platforms for Indian students
2. Free/affordable alternatives
3. Local institutions or bootcamps
4. Practical application strategies
5. Networking and community resources
6. Timeline optimization tips

Focus on resources accessible in India with good ROI. Respond with a JSON
object with array keys "platforms", "affordable_options", "local_resources",
"practical_tips", "networking" and "timeline_tips".`,
		profile.EducationLevel, location, strings.Join(skillsNeeded, ", "), careerGoal)

	var out types.LearningSuggestions
	if err := g.generate(ctx, prompt, llm.TierLite, &out); err != nil {
		return nil, fmt.Errorf("failed to generate learning suggestions: %w", err)
	}
	return &out, nil
}

func (g *Generator) generate(ctx context.Context, prompt string, tier llm.ModelTier, out any) error {
	raw, err := g.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to parse model response: %w", err)
	}
	return nil
}
