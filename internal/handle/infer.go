package handle

import "regexp"

// Inferrer runs the handle-inference pipeline. It is immutable after
// construction and safe for concurrent use; each call to [Inferrer.Infer]
// is an independent, pure computation.
type Inferrer struct {
	rules     Rules
	opts      Options
	validator *Validator

	atAnyRe     *regexp.Regexp
	trailTailRe *regexp.Regexp
	trailTokRe  *regexp.Regexp
}

// NewInferrer builds an Inferrer from a rule table and mode options.
func NewInferrer(rules Rules, opts Options) *Inferrer {
	return &Inferrer{
		rules:       rules,
		opts:        opts,
		validator:   NewValidator(rules),
		atAnyRe:     atAnywhereRe(rules),
		trailTailRe: trailingTailRe(),
		trailTokRe:  trailingTokenRe(rules),
	}
}

// Infer extracts an owner handle from a filename stem.
//
// The primary pipeline runs first: isolate the leading candidate, trim its
// numeric/date/ID tail, validate. Tokens dominated by numeric noise are
// screened out before trimming as well, so a long ID with a short
// incidental prefix never survives on the strength of its prefix alone.
//
// If the primary pipeline yields nothing and strict-start mode is off, the
// fallbacks run in fixed order: @-anywhere, then (when enabled) the
// trailing token. The first validated result wins.
//
// Infer is total: every input maps to either a handle or ok == false.
// It never modifies the accepted text.
func (in *Inferrer) Infer(stem string) (string, bool) {
	if candidate := leadingCandidate(stem); candidate != "" && !in.validator.idLike(candidate) {
		token := trimTail(candidate)
		if in.validator.Accept(token) {
			return token, true
		}
	}

	if in.opts.StrictStart {
		return "", false
	}

	if h, ok := in.atAnywhere(stem); ok {
		return h, true
	}
	if in.opts.AllowTrailing {
		if h, ok := in.trailingToken(stem); ok {
			return h, true
		}
	}

	return "", false
}

// Infer is a convenience wrapper running a one-off inference with the
// default rule table.
func Infer(stem string, opts Options) (string, bool) {
	return NewInferrer(DefaultRules(), opts).Infer(stem)
}
