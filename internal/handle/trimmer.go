package handle

import (
	"regexp"
	"strings"
)

// tailMatcher is one alternative of the tail-trimming rule. Matchers are
// tried in order; the first that matches wins. Each pattern is anchored at
// both ends with a non-greedy prefix group, so the tail claims the earliest
// possible start and the retained prefix is as short as the rule allows.
type tailMatcher struct {
	name string
	re   *regexp.Regexp
}

// tailMatchers lists the tail alternatives in priority order:
//
//  1. an 8-digit date-like run (20YY prefix, optional -._ group separators),
//  2. a 9+ digit run (platform post/media IDs),
//  3. a 1-4 digit suffix directly preceded by '_' (sequence numbers),
//  4. a 5+ digit run (generic long IDs).
//
// Every alternative allows an optional separator before it and absorbs any
// residual word/punctuation fragment after it (timestamps like _HH_MM_SS,
// a stray _n, and similar leftovers).
var tailMatchers = []tailMatcher{
	{"date", regexp.MustCompile(`^(.*?)(?:[\s\-._]?20\d{2}[-._]?\d{2}[-._]?\d{2}.*)$`)},
	{"post-id", regexp.MustCompile(`^(.*?)(?:[\s\-._]?\d{9,}.*)$`)},
	{"sequence", regexp.MustCompile(`^(.*?)(?:[\s\-._]?_\d{1,4}.*)$`)},
	{"long-id", regexp.MustCompile(`^(.*?)(?:[\s\-._]?\d{5,}.*)$`)},
}

// trimTail removes a trailing numeric/date/ID tail from a candidate token.
//
// After trimming, dangling separator characters are stripped from the
// trailing end only; leading underscores and dots are part of the handle and
// must survive. If trimming would erase the token entirely the pre-trim
// token is returned instead; this stage never maps a non-empty token to "".
func trimTail(token string) string {
	for _, m := range tailMatchers {
		groups := m.re.FindStringSubmatch(token)
		if groups == nil {
			continue
		}
		trimmed := strings.TrimRight(groups[1], "_.- ")
		if trimmed == "" {
			return token
		}
		return trimmed
	}
	return token
}
