// Package handle infers an owner handle (an Instagram-like username) from
// an image filename stem.
//
// Inference is a pure function of the stem plus two mode flags. The primary
// pipeline extracts a candidate token from the start of the stem, trims any
// trailing numeric/date/ID tail, and validates the result against the
// heuristic rule table. When the primary pipeline yields nothing and strict
// start mode is off, two fallback resolvers are tried in fixed order: an
// "@handle anywhere" scan, then a trailing-token scan.
//
// # Rule Tables
//
// All heuristic tables (camera prefixes, length bounds, hash-likeness
// thresholds) live in [Rules] and are passed into the pipeline explicitly.
// [DefaultRules] returns the stock table:
//
//	inf := handle.NewInferrer(handle.DefaultRules(), handle.Options{})
//	h, ok := inf.Infer("johnsmith_20230815_123456789")
//	// h == "johnsmith", ok == true
//
// # Handle Form
//
// Accepted handles preserve the exact text found in the filename: original
// casing, leading underscores and dots, and internal punctuation are kept.
// Distinct handles are distinguished by exact (case- and diacritic-sensitive)
// equality.
package handle
