package handle

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validator applies the acceptance rules from a [Rules] table.
type Validator struct {
	rules Rules
}

// NewValidator creates a Validator for the given rule table.
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// Accept reports whether token is a valid handle. The token is never
// modified; accepted handles keep their original case and punctuation.
func (v *Validator) Accept(token string) bool {
	n := utf8.RuneCountInString(token)
	if n < v.rules.MinLen || n > v.rules.MaxLen {
		return false
	}
	if !hasLetter(token) {
		return false
	}
	if v.cameraPrefix(token) {
		return false
	}
	return !v.idLike(token)
}

// hasLetter reports whether s contains at least one Unicode letter.
// A token that is purely digits or punctuation is never a handle.
func hasLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}

// cameraPrefix reports whether token is a known device/app-generated
// filename prefix. The comparison is case-insensitive and ignores leading
// underscores and dots; a prefix counts either as the exact token or when
// immediately followed by '_', '-', '.' or space.
func (v *Validator) cameraPrefix(token string) bool {
	t := strings.ToLower(strings.TrimLeft(token, "_."))
	for _, p := range v.rules.CameraPrefixes {
		if t == p {
			return true
		}
		if strings.HasPrefix(t, p) {
			switch t[len(p)] {
			case '_', '-', '.', ' ':
				return true
			}
		}
	}
	return false
}

// idLike reports whether token looks like a content hash or platform ID
// rather than a handle: either a long all-hexadecimal run, or a token
// dominated by digits with only incidental letters.
func (v *Validator) idLike(token string) bool {
	n := utf8.RuneCountInString(token)

	if n >= v.rules.HexIDMinLen && isHex(token) {
		return true
	}

	letters, digits := 0, 0
	for _, r := range token {
		switch {
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	return letters >= 1 && digits >= v.rules.DigitRatio*letters && n > v.rules.DigitNoiseMinLen
}

// isHex reports whether every character of s is a hexadecimal digit.
func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
