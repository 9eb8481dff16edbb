package domain

import (
	"math"
	"sort"
	"strings"
)

// CourseDescriptor is the scoring input for one course. Only the name is
// required; missing code, field or credits simply zero the matching
// sub-score. Descriptors are never persisted by this engine.
type CourseDescriptor struct {
	Name    string
	Code    string
	Field   string
	Credits *float64
}

// Sub-score weights. They sum to 100, so the total never needs clamping.
const (
	nameWeight    = 40.0
	creditsWeight = 30
	fieldWeight   = 20.0
	codeWeight    = 10.0
)

// MatchBreakdown carries the weighted sub-scores behind a total. Name, field
// and code contributions are fractional; the credit band is integral.
type MatchBreakdown struct {
	NameScore    float64
	CreditsScore int
	FieldScore   float64
	CodeScore    float64
	Total        int
}

// ScoreCourses rates how interchangeable a host-institution course and a
// home-institution course are, on a 0..100 scale. The text similarity is a
// deliberately shallow token-overlap heuristic, not semantic matching; swap
// this function out if a stronger text measure is ever needed.
func ScoreCourses(host, home CourseDescriptor) MatchBreakdown {
	breakdown := MatchBreakdown{
		NameScore:    tokenSimilarity(host.Name, home.Name) * nameWeight,
		CreditsScore: creditBandPoints(host.Credits, home.Credits),
	}
	if host.Field != "" && home.Field != "" {
		breakdown.FieldScore = tokenSimilarity(host.Field, home.Field) * fieldWeight
	}
	if host.Code != "" && home.Code != "" {
		breakdown.CodeScore = tokenSimilarity(host.Code, home.Code) * codeWeight
	}
	breakdown.Total = int(math.Round(breakdown.NameScore + float64(breakdown.CreditsScore) + breakdown.FieldScore + breakdown.CodeScore))
	return breakdown
}

// CourseMatch pairs a candidate home course with its score against the host.
type CourseMatch struct {
	Course CourseDescriptor
	Score  MatchBreakdown
}

// RankMatches scores every candidate against the host course and returns
// them ordered by descending total. Equal totals keep input order; callers
// wanting a different secondary order must sort again themselves.
func RankMatches(host CourseDescriptor, candidates []CourseDescriptor) []CourseMatch {
	matches := make([]CourseMatch, 0, len(candidates))
	for _, candidate := range candidates {
		matches = append(matches, CourseMatch{
			Course: candidate,
			Score:  ScoreCourses(host, candidate),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score.Total > matches[j].Score.Total
	})
	return matches
}

// tokenSimilarity counts host tokens that substring-match some home token
// (either direction) and divides by the larger token count. Empty input on
// either side scores 0.
func tokenSimilarity(a, b string) float64 {
	aTokens := strings.Fields(strings.ToLower(a))
	bTokens := strings.Fields(strings.ToLower(b))
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}

	matches := 0
	for _, at := range aTokens {
		for _, bt := range bTokens {
			if strings.Contains(at, bt) || strings.Contains(bt, at) {
				matches++
				break
			}
		}
	}

	larger := len(aTokens)
	if len(bTokens) > larger {
		larger = len(bTokens)
	}
	return float64(matches) / float64(larger)
}

// creditBandPoints awards the credit-equivalency sub-score: full points when
// the host/home ratio stays within 10%, partial points for small absolute
// differences, nothing when either side is missing.
func creditBandPoints(host, home *float64) int {
	if host == nil || home == nil || *host <= 0 || *home <= 0 {
		return 0
	}
	ratio := *host / *home
	if ratio >= 0.9 && ratio <= 1.1 {
		return creditsWeight
	}
	diff := math.Abs(*host - *home)
	if diff <= 2 {
		return 20
	}
	if diff <= 5 {
		return 10
	}
	return 0
}
