// Package xregexp provides helpers to compose and process regexp expressions.
package xregexp

import "regexp"

// NamedCaptures applies re to s and returns the values of all named capture
// groups. Groups that did not participate in the match are present with an
// empty value. The second return is false when s does not match at all.
func NamedCaptures(re *regexp.Regexp, s string) (map[string]string, bool) {
	matches := re.FindStringSubmatch(s)
	if matches == nil {
		return nil, false
	}
	captures := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		captures[name] = matches[i]
	}
	return captures, true
}
