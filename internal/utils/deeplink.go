package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// SearchParam is one query parameter of a search deep link
type SearchParam struct {
	Key   string
	Value string
}

// BuildSearchURL builds a /search deep link from the given parameters,
// preserving their order. Values are percent-encoded; parameters with an
// empty value are dropped rather than emitted empty. An empty parameter
// list yields no link at all.
func BuildSearchURL(params []SearchParam) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		// QueryEscape uses "+" for spaces; the search page expects %20
		encoded := strings.ReplaceAll(url.QueryEscape(p.Value), "+", "%20")
		parts = append(parts, fmt.Sprintf("%s=%s", p.Key, encoded))
	}
	if len(parts) == 0 {
		return ""
	}
	return "/search?" + strings.Join(parts, "&")
}
