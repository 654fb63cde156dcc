package resources

import (
	"math"
	"sort"
	"strings"

	"github.com/pushkarjay/career-advisor/internal/types"
)

// Result caps after deduplication and ranking.
const (
	maxCourses        = 10
	maxCertifications = 5
)

// RankCourses deduplicates and ranks course recommendations, keeping the
// top 10.
func RankCourses(courses []types.LearningResource) []types.LearningResource {
	return rankDedup(courses, maxCourses)
}

// RankCertifications deduplicates and ranks certification recommendations,
// keeping the top 5.
func RankCertifications(certs []types.LearningResource) []types.LearningResource {
	return rankDedup(certs, maxCertifications)
}

// rankDedup removes duplicates by (title, provider) case-insensitively,
// keeping the first occurrence of each pair, then sorts by rating descending
// with title descending as tiebreaker. Dedup happens before the sort, so
// which duplicate survives depends on input order.
func rankDedup(items []types.LearningResource, limit int) []types.LearningResource {
	type key struct{ title, provider string }

	seen := make(map[key]bool, len(items))
	unique := make([]types.LearningResource, 0, len(items))
	for _, item := range items {
		k := key{strings.ToLower(item.Title), strings.ToLower(item.Provider)}
		if !seen[k] {
			seen[k] = true
			unique = append(unique, item)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		ri, rj := unique[i].RatingOrZero(), unique[j].RatingOrZero()
		if ri != rj {
			return ri > rj
		}
		return unique[i].Title > unique[j].Title
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// Confidence rates a resource recommendation batch in [0,1]: course quality
// (average rating out of 5) weighted 0.4, certification quality 0.3, a flat
// 0.3 when internship opportunities are present, plus a 0.2 bonus for
// AI-generated suggestions. Capped at 1.0 and rounded to three decimals.
// An empty batch scores 0.
func Confidence(courses, certs []types.LearningResource, hasInternships, hasSuggestions bool) float64 {
	quality := 0.0

	if len(courses) > 0 {
		quality += avgRating(courses) / 5.0 * 0.4
	}
	if len(certs) > 0 {
		quality += avgRating(certs) / 5.0 * 0.3
	}
	if hasInternships {
		quality += 0.3
	}
	if hasSuggestions {
		quality += 0.2
	}

	return math.Round(math.Min(quality, 1.0)*1000) / 1000
}

func avgRating(items []types.LearningResource) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.RatingOrZero()
	}
	return sum / float64(len(items))
}
