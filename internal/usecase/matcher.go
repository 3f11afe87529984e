package usecase

import (
	"strings"

	"github.com/HoussemHfasa/afcon-2025-predictor/internal/domain/match"
)

// FixtureMatcher locates the internal match a provider fixture refers to
// among same-day candidates. It is an injectable strategy because provider
// naming is noisy and the heuristic will evolve (edit distance, cached
// external IDs) without touching the state machine.
type FixtureMatcher interface {
	Match(fixture ExternalFixture, candidates []match.Match) (match.Match, bool)
}

// TeamNameMatcher matches on fuzzy team names: a case-insensitive substring
// check against the internal name plus a short-code comparison against the
// provider name's three-letter prefix. Both sides of the fixture must match
// in the provider's home/away orientation.
type TeamNameMatcher struct{}

func NewTeamNameMatcher() TeamNameMatcher {
	return TeamNameMatcher{}
}

func (TeamNameMatcher) Match(fixture ExternalFixture, candidates []match.Match) (match.Match, bool) {
	for _, candidate := range candidates {
		if teamMatches(fixture.HomeTeamName, candidate.TeamAName, candidate.TeamAShort) &&
			teamMatches(fixture.AwayTeamName, candidate.TeamBName, candidate.TeamBShort) {
			return candidate, true
		}
	}
	return match.Match{}, false
}

func teamMatches(providerName, internalName, internalShort string) bool {
	provider := strings.ToLower(strings.TrimSpace(providerName))
	internal := strings.ToLower(strings.TrimSpace(internalName))
	if provider == "" || internal == "" {
		return false
	}

	// "FC Example" should still hit the internal "Example": test the
	// provider's first word against the internal name and the internal name
	// against the whole provider string.
	firstWord := provider
	if idx := strings.IndexByte(provider, ' '); idx > 0 {
		firstWord = provider[:idx]
	}
	if strings.Contains(internal, firstWord) || strings.Contains(provider, internal) {
		return true
	}

	if internalShort != "" && len(provider) >= 3 &&
		strings.EqualFold(provider[:3], internalShort) {
		return true
	}

	return false
}
