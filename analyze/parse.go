package analyze

import (
	"regexp"
	"strings"

	"github.com/fwojciec/skeptic"
)

var numberedRE = regexp.MustCompile(`^\d+\.\s*`)

// ParseBulletPoints extracts bullet list items from a completion. Lines
// starting with "-", "•", or "*" become items; when no bullet markers are
// present the whole trimmed text is returned as a single item.
func ParseBulletPoints(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*") {
			if item := strings.TrimSpace(strings.TrimLeft(line, "-•* ")); item != "" {
				items = append(items, item)
			}
		}
	}

	if len(items) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}
	return items
}

// ParseNumberedList extracts "1. ..." items from a completion. When no
// numbered items are present the whole trimmed text is returned as a
// single item.
func ParseNumberedList(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if numberedRE.MatchString(line) {
			if item := numberedRE.ReplaceAllString(line, ""); item != "" {
				items = append(items, item)
			}
		}
	}

	if len(items) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []string{trimmed}
		}
		return nil
	}
	return items
}

// ParseEntityReport extracts the PEOPLE/ORGANIZATIONS/LOCATIONS sections
// from a completion. Bullet items under each heading are collected;
// unrecognized lines are ignored.
func ParseEntityReport(text string) skeptic.EntityReport {
	var report skeptic.EntityReport
	var current *[]string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)

		switch {
		case strings.Contains(upper, "PEOPLE:"):
			current = &report.People
		case strings.Contains(upper, "ORGANIZATIONS:"):
			current = &report.Organizations
		case strings.Contains(upper, "LOCATIONS"):
			// Headings come back as "LOCATIONS:" or "LOCATIONS (if relevant):".
			if strings.Contains(upper, ":") {
				current = &report.Locations
			}
		case current != nil && (strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*")):
			if item := strings.TrimSpace(strings.TrimLeft(line, "-•* ")); item != "" {
				*current = append(*current, item)
			}
		}
	}

	return report
}

// NoRedFlags reports whether the completion declared the article clean.
func NoRedFlags(text string) bool {
	return strings.Contains(strings.ToLower(text), "no significant red flags detected")
}
