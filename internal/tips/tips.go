// Package tips holds the static preventive-health knowledge table.
package tips

import (
	"fmt"
	"strings"
)

// table maps a normalized condition name to its preventive tips, in the
// order they should be presented. Populated once at init, read-only after.
var table = map[string][]string{
	"stress": {
		"Take deep breathing breaks",
		"Walk 15 minutes outdoors",
		"Sleep 7–9 hours",
	},
	"diabetes": {
		"Reduce refined carbs",
		"Increase fiber in each meal",
		"Walk after meals",
	},
	"hypertension": {
		"Lower sodium intake",
		"Do 150 min aerobic activity weekly",
		"Increase potassium-rich foods",
	},
}

// Lookup returns the tips for a condition. The condition is matched
// case-insensitively with surrounding whitespace ignored. Unknown or empty
// conditions return nil; there is no error case.
func Lookup(condition string) []string {
	return table[normalize(condition)]
}

// Conditions returns the condition names present in the table.
func Conditions() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	return names
}

// Format renders the tips for a condition as a bullet list, or a
// "No tips found" line when the condition is unknown.
func Format(condition string) string {
	found := Lookup(condition)
	if len(found) == 0 {
		return fmt.Sprintf("No tips found for: %s", normalize(condition))
	}

	var b strings.Builder
	for i, t := range found {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(t)
	}
	return b.String()
}

func normalize(condition string) string {
	return strings.ToLower(strings.TrimSpace(condition))
}
