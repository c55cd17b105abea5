package handle

import (
	"fmt"
	"regexp"
)

// Fallback resolvers scan the whole stem once the primary pipeline has
// yielded nothing. Both validate with the has-letter and camera-prefix
// checks only: the hash/ID-likeness check is intentionally skipped here.
// That asymmetry is inherited behavior, not an oversight; tightening it
// would change which files group.

// atAnywhereRe builds the "@handle anywhere in the stem" pattern: an '@'
// followed by a bounded run of word characters, dots and underscores.
func atAnywhereRe(rules Rules) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`@([\p{L}\p{N}_.]{%d,%d})`,
		rules.FallbackMinLen, rules.FallbackMaxLen))
}

// trailingTailRe builds the pattern locating a numeric or date-like tail at
// the end of the stem, reachable through separator/bracket noise.
func trailingTailRe() *regexp.Regexp {
	return regexp.MustCompile(`[\s\-._()\[\]#]*(?:\d{6,}|\d{4}[-._]?\d{2}[-._]?\d{2})$`)
}

// trailingTokenRe builds the pattern for the word run sitting directly
// before that tail. The run must end on a letter or digit so a dangling
// separator never becomes part of the handle.
func trailingTokenRe(rules Rules) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`([\p{L}\p{N}_.]{%d,%d}[\p{L}\p{N}])$`,
		rules.FallbackMinLen-1, rules.FallbackMaxLen-1))
}

// fallbackValid applies the reduced validation shared by both fallbacks.
func (in *Inferrer) fallbackValid(candidate string) bool {
	return hasLetter(candidate) && !in.validator.cameraPrefix(candidate)
}

// atAnywhere resolves an '@handle' occurring anywhere in the stem.
// Only the first occurrence is considered; if it fails validation no
// further occurrences are tried.
func (in *Inferrer) atAnywhere(stem string) (string, bool) {
	groups := in.atAnyRe.FindStringSubmatch(stem)
	if groups == nil {
		return "", false
	}
	if !in.fallbackValid(groups[1]) {
		return "", false
	}
	return groups[1], true
}

// trailingToken resolves a handle appearing just before a numeric or
// date-like tail at the end of the stem. The tail is located first and cut
// off, then the token is taken from what remains; this keeps a greedy token
// match from swallowing the leading digits of the tail itself.
func (in *Inferrer) trailingToken(stem string) (string, bool) {
	loc := in.trailTailRe.FindStringIndex(stem)
	if loc == nil {
		return "", false
	}
	groups := in.trailTokRe.FindStringSubmatch(stem[:loc[0]])
	if groups == nil {
		return "", false
	}
	if !in.fallbackValid(groups[1]) {
		return "", false
	}
	return groups[1], true
}
