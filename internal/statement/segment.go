// Package statement splits an activity statement export into its category
// tables and builds the typed reports the registry knows about.
package statement

import "strings"

// Section is the raw lines of one category, in file order, with the
// category prefix removed. The first line is the table header.
type Section struct {
	Token string
	Lines []string
}

// Segment groups the non-blank lines of raw by the text before their first
// comma. Sections are returned in order of first appearance. A line without
// a comma belongs to the "" category with the whole line as content.
// A leading byte order mark is ignored.
func Segment(raw string) []Section {
	var sections []Section
	index := make(map[string]int)

	raw = strings.TrimPrefix(raw, "\ufeff")
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		token, rest, found := strings.Cut(line, ",")
		if !found {
			token, rest = "", line
		}
		token = strings.TrimSpace(token)

		i, ok := index[token]
		if !ok {
			i = len(sections)
			index[token] = i
			sections = append(sections, Section{Token: token})
		}
		sections[i].Lines = append(sections[i].Lines, rest)
	}

	return sections
}

// Text joins the section lines back into one CSV block.
func (s Section) Text() string {
	return strings.Join(s.Lines, "\n")
}
