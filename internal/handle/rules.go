package handle

// Default length bounds for handles.
const (
	// DefaultMinLen is the minimum accepted handle length in runes.
	DefaultMinLen = 1

	// DefaultMaxLen is the maximum accepted handle length in runes.
	DefaultMaxLen = 40
)

// Default bounds for the fallback token window.
const (
	DefaultFallbackMinLen = 3
	DefaultFallbackMaxLen = 30
)

// Default hash/ID-likeness thresholds.
const (
	// DefaultHexIDMinLen is the minimum length at which an all-hexadecimal
	// token is rejected as a content hash.
	DefaultHexIDMinLen = 32

	// DefaultDigitRatio is the digit-to-letter ratio at which a token is
	// rejected as numeric noise.
	DefaultDigitRatio = 3

	// DefaultDigitNoiseMinLen is the length a token must exceed before the
	// digit-ratio rejection applies.
	DefaultDigitNoiseMinLen = 10
)

// defaultCameraPrefixes lists known device- and app-generated filename
// prefixes that must never be treated as handles.
var defaultCameraPrefixes = []string{
	"img", "dsc", "pxl", "vid", "photo", "screenshot", "whatsapp", "signal",
	"snapchat", "instagram", "insta", "fb", "telegram",
}

// Rules is the heuristic rule table driving handle inference.
//
// The zero value is not usable; start from [DefaultRules] and override
// individual fields as needed. Rules are treated as immutable once an
// [Inferrer] has been built from them.
type Rules struct {
	// CameraPrefixes are rejected as handles, case-insensitively, either as
	// an exact token or as a prefix followed by '_', '-', '.' or space.
	// Leading underscores and dots on the token are ignored for this check.
	CameraPrefixes []string

	// MinLen and MaxLen bound accepted handle length, counted in runes.
	MinLen int
	MaxLen int

	// FallbackMinLen and FallbackMaxLen bound the token window used by the
	// fallback resolvers.
	FallbackMinLen int
	FallbackMaxLen int

	// HexIDMinLen is the length at or above which an all-hexadecimal token
	// is rejected as a content hash.
	HexIDMinLen int

	// DigitRatio and DigitNoiseMinLen drive the numeric-noise rejection:
	// a token containing at least one letter is rejected when its digit
	// count is at least DigitRatio times its letter count and its total
	// length exceeds DigitNoiseMinLen.
	DigitRatio       int
	DigitNoiseMinLen int
}

// DefaultRules returns the stock heuristic rule table.
// The returned value is a fresh copy; callers may modify it freely.
func DefaultRules() Rules {
	prefixes := make([]string, len(defaultCameraPrefixes))
	copy(prefixes, defaultCameraPrefixes)

	return Rules{
		CameraPrefixes:   prefixes,
		MinLen:           DefaultMinLen,
		MaxLen:           DefaultMaxLen,
		FallbackMinLen:   DefaultFallbackMinLen,
		FallbackMaxLen:   DefaultFallbackMaxLen,
		HexIDMinLen:      DefaultHexIDMinLen,
		DigitRatio:       DefaultDigitRatio,
		DigitNoiseMinLen: DefaultDigitNoiseMinLen,
	}
}

// Options selects the inference mode.
type Options struct {
	// StrictStart restricts acceptance to handles found at the very start of
	// the stem, disabling both fallback resolvers.
	StrictStart bool

	// AllowTrailing enables the trailing-token fallback resolver.
	// It has no effect when StrictStart is set.
	AllowTrailing bool
}
