package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/handlesort/internal/errors"
	"github.com/thoreinstein/handlesort/internal/handle"
	"github.com/thoreinstein/handlesort/pkg/fileutil"
)

// rulesFile mirrors the TOML rules override file. Every field is optional;
// absent fields keep their default value.
type rulesFile struct {
	CameraPrefixes []string `toml:"camera_prefixes"`
	MinLen         *int     `toml:"min_len"`
	MaxLen         *int     `toml:"max_len"`
	FallbackMinLen *int     `toml:"fallback_min_len"`
	FallbackMaxLen *int     `toml:"fallback_max_len"`
	HexIDMinLen    *int     `toml:"hex_id_min_len"`
	DigitRatio     *int     `toml:"digit_ratio"`
	DigitNoiseMin  *int     `toml:"digit_noise_min_len"`
}

// LoadRules reads a TOML rules file and overlays it onto the default
// heuristic rule table. An empty path returns the defaults untouched.
//
// Example file:
//
//	camera_prefixes = ["img", "dsc", "screenshot", "mycam"]
//	max_len = 30
//	digit_ratio = 2
func LoadRules(path string) (handle.Rules, error) {
	rules := handle.DefaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return rules, errors.Wrap(err, "reading rules file")
	}

	var rf rulesFile
	if err := toml.Unmarshal(data, &rf); err != nil {
		return rules, errors.Wrap(err, "parsing rules file")
	}

	if rf.CameraPrefixes != nil {
		rules.CameraPrefixes = rf.CameraPrefixes
	}
	if rf.MinLen != nil {
		rules.MinLen = *rf.MinLen
	}
	if rf.MaxLen != nil {
		rules.MaxLen = *rf.MaxLen
	}
	if rf.FallbackMinLen != nil {
		rules.FallbackMinLen = *rf.FallbackMinLen
	}
	if rf.FallbackMaxLen != nil {
		rules.FallbackMaxLen = *rf.FallbackMaxLen
	}
	if rf.HexIDMinLen != nil {
		rules.HexIDMinLen = *rf.HexIDMinLen
	}
	if rf.DigitRatio != nil {
		rules.DigitRatio = *rf.DigitRatio
	}
	if rf.DigitNoiseMin != nil {
		rules.DigitNoiseMinLen = *rf.DigitNoiseMin
	}

	if err := validateRules(rules); err != nil {
		return handle.DefaultRules(), err
	}

	return rules, nil
}

// validateRules rejects rule tables that would make inference degenerate.
func validateRules(r handle.Rules) error {
	switch {
	case r.MinLen < 1:
		return errors.Wrap(errors.ErrInvalidRules, "min_len must be >= 1")
	case r.MaxLen < r.MinLen:
		return errors.Wrap(errors.ErrInvalidRules, "max_len must be >= min_len")
	case r.FallbackMinLen < 2:
		return errors.Wrap(errors.ErrInvalidRules, "fallback_min_len must be >= 2")
	case r.FallbackMaxLen < r.FallbackMinLen:
		return errors.Wrap(errors.ErrInvalidRules, "fallback_max_len must be >= fallback_min_len")
	case r.HexIDMinLen < 1:
		return errors.Wrap(errors.ErrInvalidRules, "hex_id_min_len must be >= 1")
	case r.DigitRatio < 1:
		return errors.Wrap(errors.ErrInvalidRules, "digit_ratio must be >= 1")
	case r.DigitNoiseMinLen < 0:
		return errors.Wrap(errors.ErrInvalidRules, "digit_noise_min_len must be >= 0")
	}
	return nil
}
