package reports

import "strings"

// Match finds the report a console argument refers to. Category tokens
// contain spaces, which the argument grammar cannot carry, so the comparison
// ignores case and treats '_' and '-' as spaces. An exact match wins;
// otherwise a unique prefix match is accepted.
func Match(list []Report, name string) (Report, bool) {
	want := normalizeToken(name)
	if want == "" {
		return nil, false
	}

	var prefixed []Report
	for _, r := range list {
		got := normalizeToken(r.Token())
		if got == want {
			return r, true
		}
		if strings.HasPrefix(got, want) {
			prefixed = append(prefixed, r)
		}
	}

	if len(prefixed) == 1 {
		return prefixed[0], true
	}
	return nil, false
}

// Find returns the first report of list with exactly the given token.
func Find(list []Report, token string) (Report, bool) {
	for _, r := range list {
		if r.Token() == token {
			return r, true
		}
	}
	return nil, false
}

// Tokens returns the tokens of list in list order.
func Tokens(list []Report) []string {
	out := make([]string, len(list))
	for i, r := range list {
		out[i] = r.Token()
	}
	return out
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' {
			return ' '
		}
		return r
	}, s)
}
