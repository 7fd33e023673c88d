package templates

import (
	"regexp"
	"strings"
)

// placeholderPattern matches ${identifier} placeholders inside a message skeleton.
var placeholderPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ExtractPlaceholders returns the distinct placeholder names in skeleton, in order of first
// appearance. A skeleton without placeholders yields an empty slice.
func ExtractPlaceholders(skeleton string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(skeleton, -1)
	names := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Bind substitutes every placeholder in skeleton with its value. Placeholders without a
// non-blank value render as the visible marker [name] so unfilled variables stay obvious to
// the operator. Any ${name} left in the output, whether supplied inside a value or spliced
// together from a value and the surrounding text, is rendered as a marker as well.
func Bind(skeleton string, values map[string]string) string {
	out := placeholderPattern.ReplaceAllStringFunc(skeleton, func(token string) string {
		name := token[2 : len(token)-1]
		value, ok := values[name]
		if !ok || strings.TrimSpace(value) == "" {
			return marker(name)
		}
		return value
	})
	// each pass removes at least one "${", so this terminates
	for HasPlaceholders(out) {
		out = placeholderPattern.ReplaceAllString(out, "[$1]")
	}
	return out
}

// Unbound lists the placeholders of skeleton that Bind would render as markers.
func Unbound(skeleton string, values map[string]string) []string {
	var missing []string
	for _, name := range ExtractPlaceholders(skeleton) {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// HasPlaceholders reports whether text still contains a ${name} placeholder.
func HasPlaceholders(text string) bool {
	return placeholderPattern.MatchString(text)
}

func marker(name string) string {
	return "[" + name + "]"
}
