// Package config provides configuration management for the handlesort CLI.
//
// This package handles loading and validating the tool's own configuration
// file, plus the optional TOML rules file that overrides the heuristic
// tables used by handle inference.
//
// # Configuration File
//
// The default configuration file location is ~/.config/handlesort/config.yaml,
// with the current directory searched first. Environment variables prefixed
// HANDLESORT_ override file values. The file uses YAML:
//
//	version: 1
//	min_count: 3
//	include_singletons: false
//	extensions: [jpg, jpeg, png, webp, heic]
//	strict_start: false
//	allow_trailing: true
//	rules_file: ~/.config/handlesort/rules.toml  # optional
//
// # Rules File
//
// The rules file is TOML and every key is optional; see [LoadRules]:
//
//	camera_prefixes = ["img", "dsc", "screenshot", "mycam"]
//	max_len = 30
//	digit_ratio = 2
//
// # Validation
//
// Loaded configurations are validated automatically; [Validate] can also be
// called directly. [Default] returns the built-in defaults without touching
// the filesystem.
package config
