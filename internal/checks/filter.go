package checks

import (
	"path/filepath"
	"strings"
)

// Filter selects checks by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the checks whose name or title matches pattern, in their
// original order. Supports wildcards like "*http*" and plain substrings
// (case-insensitive). Comma separated patterns are alternatives.
func (f *Filter) FilterByName(checks []Check, pattern string) []Check {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return checks
	}

	var patterns []string
	for _, p := range strings.Split(pattern, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			patterns = append(patterns, p)
		}
	}

	var filtered []Check
	for _, c := range checks {
		for _, p := range patterns {
			if matches(p, strings.ToLower(c.Name())) || matches(p, strings.ToLower(c.Title())) {
				filtered = append(filtered, c)
				break
			}
		}
	}
	return filtered
}

func matches(pattern, name string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// For patterns like "*data*base*" fall back to ordered substring parts
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "?") {
			return false
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
		found = true
	}
	return found
}
