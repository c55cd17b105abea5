package handle

import (
	"strings"
	"unicode"
)

// Hard separators terminate the leading candidate. Anything from the first
// occurrence onward is bracket/tag noise, never part of a handle.
const hardSeparators = "([#"

// allowedStart reports whether r can begin a candidate token.
// Everything before the first such rune is decorative junk (emoji, dashes,
// stray punctuation) and is skipped.
func allowedStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '@' || r == '_' || r == '.'
}

// leadingCandidate isolates the raw candidate substring from the start of a
// stem. It skips leading decoration, drops a single leading '@', and cuts at
// the first hard separator. Leading underscores and dots are retained; they
// are part of the handle. Internal spaces survive this stage so multi-word
// display names remain possible.
//
// Returns "" when nothing remains, which the orchestrator treats as failure.
func leadingCandidate(stem string) string {
	start := strings.IndexFunc(stem, allowedStart)
	if start < 0 {
		return ""
	}
	rest := stem[start:]

	// '@handle' and bare 'handle' are the same thing. Only one '@' is
	// dropped; a second one is ordinary text.
	rest = strings.TrimPrefix(rest, "@")

	if cut := strings.IndexAny(rest, hardSeparators); cut >= 0 {
		rest = rest[:cut]
	}

	return strings.TrimSpace(rest)
}
