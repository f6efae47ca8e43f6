package catalog

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var htmlTags = regexp.MustCompile(`<[^>]*>`)

// StripHTML drops markup so rich-text fields can be searched and rendered
// as plain text.
func StripHTML(s string) string {
	s = htmlTags.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return strings.Join(strings.Fields(s), " ")
}

// MatchesSearch reports whether any of the fields contains the query,
// case-insensitively, with markup ignored. An empty query matches everything.
func MatchesSearch(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	return lo.SomeBy(fields, func(field string) bool {
		return strings.Contains(strings.ToLower(StripHTML(field)), query)
	})
}

// MatchesExact reports whether value equals the wanted filter value. An empty
// filter matches everything.
func MatchesExact(want, value string) bool {
	return want == "" || strings.EqualFold(want, value)
}

// Truncate shortens s to max runes for card-style output.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max]), " ") + "..."
}
