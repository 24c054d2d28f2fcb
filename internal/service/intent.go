package service

import (
	"regexp"
	"strconv"
	"strings"

	"rentassist/internal/model"
)

// GazetteerEntry maps the lowercase form matched against the utterance to
// the canonical display form used in filters and deep links.
type GazetteerEntry struct {
	Match     string
	Canonical string
}

// Gazetteer is the ordered table of recognized location names. The first
// entry whose match form is a substring of the lowercased utterance wins,
// so priority is the declaration order: multi-word names are listed before
// any shorter name they contain.
var Gazetteer = []GazetteerEntry{
	{"klcc", "KLCC"},
	{"bukit bintang", "Bukit Bintang"},
	{"mont kiara", "Mont Kiara"},
	{"bangsar", "Bangsar"},
	{"petaling jaya", "Petaling Jaya"},
	{"shah alam", "Shah Alam"},
	{"subang jaya", "Subang Jaya"},
	{"puchong", "Puchong"},
	{"cyberjaya", "Cyberjaya"},
	{"putrajaya", "Putrajaya"},
	{"klang", "Klang"},
	{"kajang", "Kajang"},
	{"bukit jalil", "Bukit Jalil"},
	{"cheras", "Cheras"},
	{"ampang", "Ampang"},
}

var bedroomPattern = regexp.MustCompile(`(\d+)\s*(?:bedrooms?|bilik tidur|bilik|rooms?)`)

// pricePatterns are tried in order; the first match wins. A bare number
// anywhere in the utterance can be captured by the last pattern even when
// it has nothing to do with price. That is a known limitation of the
// heuristic, kept on purpose.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:rm|ringgit|myr)\s*(\d+)`),
	regexp.MustCompile(`(?:under|below|budget|bajet|bawah|max(?:imum)?)\s*(?:rm|ringgit|myr)?\s*(\d+)`),
	regexp.MustCompile(`(\d+)`),
}

// furnishingRule maps a set of keywords to a furnishing level
type furnishingRule struct {
	keywords []string
	value    model.Furnishing
}

// furnishingRules are evaluated in order. Partial variants come first
// because every one of them contains a full-furnishing keyword.
var furnishingRules = []furnishingRule{
	{
		keywords: []string{"partially furnished", "partly furnished", "semi furnished", "semi-furnished", "separa perabot", "separa berperabot"},
		value:    model.FurnishingPartial,
	},
	{
		keywords: []string{"fully furnished", "furnished", "berperabot", "perabot"},
		value:    model.FurnishingFull,
	},
}

// ExtractIntent scans an utterance for a location, a bedroom count, a
// price ceiling and a furnishing level. It is total over all inputs: a
// missing pattern leaves the corresponding field at its zero value.
func ExtractIntent(utterance string) model.Intent {
	normalized := strings.ToLower(strings.TrimSpace(utterance))

	intent := model.Intent{}

	for _, entry := range Gazetteer {
		if strings.Contains(normalized, entry.Match) {
			intent.Location = entry.Canonical
			break
		}
	}

	if m := bedroomPattern.FindStringSubmatch(normalized); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			intent.Bedrooms = n
		}
	}

	for _, pattern := range pricePatterns {
		if m := pattern.FindStringSubmatch(normalized); m != nil {
			if p, err := strconv.ParseFloat(m[1], 64); err == nil {
				intent.MaxPrice = p
			}
			break
		}
	}

	for _, rule := range furnishingRules {
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				intent.Furnished = rule.value
				break
			}
		}
		if intent.Furnished != model.FurnishingUnspecified {
			break
		}
	}

	return intent
}
