// Package placeholder handles the [BRACKETED] variable slots embedded in
// generated documents: extraction, substitution, per-field validation rules
// and best-effort role classification parsing.
package placeholder

import (
	"regexp"
	"strings"
)

var bracketPattern = regexp.MustCompile(`\[([^\[\]]+)\]`)

// Extract returns the placeholder names found in text, in order of first
// appearance, without duplicates. Names are returned without brackets.
func Extract(text string) []string {
	matches := bracketPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Substitute replaces every [name] occurrence with its value from values.
// Names absent from the map keep their bracketed literal, so substitution
// with a partial map is idempotent.
func Substitute(text string, values map[string]string) string {
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		text = strings.ReplaceAll(text, "["+name+"]", value)
	}
	return text
}
