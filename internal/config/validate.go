package config

import (
	"errors"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrMinCountTooLow indicates min_count is below 1.
	ErrMinCountTooLow = errors.New("min_count must be >= 1")

	// ErrNoExtensions indicates the extension allowlist is empty.
	ErrNoExtensions = errors.New("extensions must not be empty")

	// ErrInvalidExtension indicates an extension entry is malformed.
	ErrInvalidExtension = errors.New("invalid extension")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}
	if cfg.MinCount < 1 {
		errs = append(errs, ErrMinCountTooLow)
	}
	if len(cfg.Extensions) == 0 {
		errs = append(errs, ErrNoExtensions)
	}
	for _, ext := range cfg.Extensions {
		if err := validateExtension(ext); err != nil {
			errs = append(errs, &ExtensionError{Extension: ext, Err: err})
		}
	}

	return errs
}

// validateExtension checks that an extension entry is usable: non-empty
// after trimming a leading dot, no path separators, no whitespace.
func validateExtension(ext string) error {
	e := strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if e == "" {
		return ErrInvalidExtension
	}
	if strings.ContainsAny(e, "/\\ \t") {
		return ErrInvalidExtension
	}
	return nil
}

// ExtensionError represents an error for a specific extension entry.
type ExtensionError struct {
	Extension string
	Err       error
}

func (e *ExtensionError) Error() string {
	return e.Err.Error() + ": " + e.Extension
}

func (e *ExtensionError) Unwrap() error {
	return e.Err
}
