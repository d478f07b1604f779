package parser

import "strings"

// ParseExcludes splits a comma-separated exclude list, trimming whitespace
// and dropping empty entries. Order is preserved.
func ParseExcludes(raw string) []string {
	var entries []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

// JoinExcludes normalizes raw and joins it back into a single comma-separated
// value. It returns "" when no entries remain.
func JoinExcludes(raw string) string {
	return strings.Join(ParseExcludes(raw), ",")
}
