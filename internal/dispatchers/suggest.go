package dispatchers

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	defaultSuggestionsCount = 3
	maxSuggestionDistance   = 2
)

type suggestion struct {
	name     string
	distance int
}

// FindSimilarCommands returns up to maxResults tokens of p (handlers and
// child processors) within a small edit distance of input, closest first.
func FindSimilarCommands(input string, p *Processor, maxResults int) []string {
	if p == nil || input == "" {
		return nil
	}

	var suggestions []suggestion
	for _, name := range p.tokens() {
		dist := fuzzy.LevenshteinDistance(strings.ToLower(input), strings.ToLower(name))
		if dist > 0 && withinReach(input, name, dist) {
			suggestions = append(suggestions, suggestion{name: name, distance: dist})
		}
	}

	// Sort by distance (ascending), then alphabetically for stability
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})

	if len(suggestions) > maxResults {
		suggestions = suggestions[:maxResults]
	}

	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}

// withinReach accepts one edit anywhere, and two edits only when the first
// letter agrees, so short unrelated words are not offered.
func withinReach(input, name string, dist int) bool {
	if dist <= 1 {
		return true
	}
	if dist > maxSuggestionDistance || name == "" {
		return false
	}
	return strings.EqualFold(input[:1], name[:1])
}

func (p *Processor) tokens() []string {
	names := make([]string, 0, len(p.handlers)+len(p.children))
	for _, h := range p.handlers {
		names = append(names, h.Token)
	}
	for _, c := range p.children {
		names = append(names, c.Token)
	}
	return names
}

// CollectAllCommands recursively collects every command path below p,
// e.g. "trades list".
func CollectAllCommands(p *Processor, prefix string) []string {
	if p == nil {
		return nil
	}

	join := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + " " + name
	}

	var commands []string
	for _, h := range p.handlers {
		commands = append(commands, join(h.Token))
	}
	for _, c := range p.children {
		commands = append(commands, CollectAllCommands(c, join(c.Token))...)
	}
	return commands
}

// suggestFor walks the resolved prefix of line and proposes alternatives
// for the first token that failed to match.
func (p *Processor) suggestFor(line string) []string {
	current := p
	info := ParseCommandInfo(line)
	for info.HasCommand {
		var next *Processor
		for _, c := range current.children {
			if c.Token == info.Command {
				next = c
				break
			}
		}
		if next == nil {
			return FindSimilarCommands(info.Command, current, defaultSuggestionsCount)
		}
		current = next
		info = ParseCommandInfo(info.ArgsString)
	}
	return nil
}
