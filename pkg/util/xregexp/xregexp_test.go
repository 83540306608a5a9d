package xregexp_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hpcmod/hpcmod/pkg/util/xregexp"
)

func TestNamedCaptures(t *testing.T) {
	testcases := map[string]struct {
		re     *regexp.Regexp
		target string
		expect map[string]string
		match  bool
	}{
		"happy test date format": {
			re:     regexp.MustCompile(`(?P<Year>\d{4})-(?P<Month>\d{2})-(?P<Day>\d{2})`),
			target: "2021-08-02",
			expect: map[string]string{
				"Year":  "2021",
				"Month": "08",
				"Day":   "02",
			},
			match: true,
		},
		"optional group left empty": {
			re:     regexp.MustCompile(`(?P<Head>\w+)(?:/(?P<Tail>\w+))?`),
			target: "alone",
			expect: map[string]string{
				"Head": "alone",
				"Tail": "",
			},
			match: true,
		},
		"no match": {
			re:     regexp.MustCompile(`^(?P<Digit>\d+)$`),
			target: "letters",
			expect: nil,
			match:  false,
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			captures, ok := xregexp.NamedCaptures(tc.re, tc.target)
			assert.Equal(t, tc.match, ok)
			assert.Equal(t, tc.expect, captures)
		})
	}
}

func TestOperators(t *testing.T) {
	expr := xregexp.Anchored(
		xregexp.Optional(xregexp.Named("prefix", `[a-z]+`), xregexp.Literal(`.`)),
		xregexp.Named("word", xregexp.Repeated(`[a-z]`)),
	)
	re := regexp.MustCompile(expr)

	captures, ok := xregexp.NamedCaptures(re, "pre.fix")
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"prefix": "pre", "word": "fix"}, captures)

	captures, ok = xregexp.NamedCaptures(re, "fix")
	assert.True(t, ok)
	assert.Equal(t, map[string]string{"prefix": "", "word": "fix"}, captures)

	_, ok = xregexp.NamedCaptures(re, "NOPE")
	assert.False(t, ok)
}
