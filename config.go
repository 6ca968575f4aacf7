package passcheck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EntropyMode selects which entropy estimation strategy CheckWithConfig
// uses.
type EntropyMode string

const (
	// EntropyModeSimple uses the basic character-pool x length formula.
	EntropyModeSimple EntropyMode = "simple"

	// EntropyModeAdvanced reduces entropy for detected patterns.
	EntropyModeAdvanced EntropyMode = "advanced"

	// EntropyModePatternAware includes pattern analysis plus Markov-chain
	// analysis.
	EntropyModePatternAware EntropyMode = "pattern-aware"

	// EntropyModeDecomposition runs the zxcore decomposition engine
	// (dictionary/spatial/sequence/repeat/date/year matchers, backed by
	// an exhaustive non-overlapping cover search) and uses its
	// Result.TotalEntropy. This is the recommended mode: unlike the
	// other three, it accounts for multi-character structure (a
	// recognized dictionary word, a keyboard walk) rather than only the
	// character classes present.
	EntropyModeDecomposition EntropyMode = "decomposition"
)

// PenaltyWeights holds penalty multipliers and an entropy weight for
// customizing the scoring formula. A zero field is treated as its
// default of 1.0 (see internal/scoring.Weights).
type PenaltyWeights struct {
	RuleViolation   float64
	PatternMatch    float64
	DictionaryMatch float64
	ContextMatch    float64
	HIBPBreach      float64
	EntropyWeight   float64
}

// HIBPCheckResult is a pre-computed Have I Been Pwned lookup result,
// usable in place of a live Config.HIBPChecker call (e.g. when the
// caller already queried HIBP as part of a broader breach check).
type HIBPCheckResult struct {
	Breached bool
	Count    int
}

// Config holds configuration options for password strength checking.
//
// Use [DefaultConfig] to obtain a Config with recommended defaults, then
// override individual fields:
//
//	cfg := passcheck.DefaultConfig()
//	cfg.MinLength = 8
//	cfg.RequireSymbol = false
//	result, err := passcheck.CheckWithConfig("mypassword", cfg)
type Config struct {
	// MinLength is the minimum number of runes required (default: 12).
	MinLength int `yaml:"min_length"`

	// RequireUpper requires at least one uppercase letter (default: true).
	RequireUpper bool `yaml:"require_upper"`

	// RequireLower requires at least one lowercase letter (default: true).
	RequireLower bool `yaml:"require_lower"`

	// RequireDigit requires at least one numeric digit (default: true).
	RequireDigit bool `yaml:"require_digit"`

	// RequireSymbol requires at least one symbol character (default: true).
	RequireSymbol bool `yaml:"require_symbol"`

	// MaxRepeats is the maximum number of consecutive identical characters
	// allowed before an issue is reported (default: 3).
	MaxRepeats int `yaml:"max_repeats"`

	// PatternMinLength is the minimum length for keyboard and sequence
	// pattern detection (default: 4).
	PatternMinLength int `yaml:"pattern_min_length"`

	// MaxIssues is the maximum number of issues returned in the result.
	// Set to 0 for no limit (default: 5).
	MaxIssues int `yaml:"max_issues"`

	// CustomPasswords is an optional list of additional passwords to check
	// against during dictionary checks. Entries are matched case-insensitively.
	// Nil or empty means use only the built-in list (~1 000 common passwords).
	CustomPasswords []string `yaml:"custom_passwords,omitempty"`

	// CustomWords is an optional list of additional words to detect as
	// substrings during dictionary checks. Entries are matched
	// case-insensitively. Words shorter than 4 characters are ignored.
	// Nil or empty means use only the built-in list (~350 common words).
	CustomWords []string `yaml:"custom_words,omitempty"`

	// ContextWords is an optional list of user-specific terms to detect
	// in passwords (e.g., username, email, company name). Entries are
	// matched case-insensitively and checked for exact matches, substrings,
	// and leetspeak variants. Words shorter than 3 characters are ignored.
	// Email addresses are automatically parsed to extract individual components.
	// Nil or empty means no context-aware checking is performed.
	ContextWords []string `yaml:"context_words,omitempty"`

	// DisableLeet disables leetspeak normalization during dictionary
	// checks. When true, substitutions like @ -> a, 0 -> o, $ -> s are
	// not applied, and only the plain password is checked against
	// dictionaries. Default: false (leet normalization enabled).
	DisableLeet bool `yaml:"disable_leet"`

	// EntropyMode selects the entropy estimation strategy (default:
	// EntropyModeDecomposition). Ignored when PassphraseMode applies.
	EntropyMode EntropyMode `yaml:"entropy_mode"`

	// PassphraseMode, when true, detects multi-word passphrases and uses
	// diceware-style word-count entropy instead of EntropyMode's
	// strategy. Default: false.
	PassphraseMode bool `yaml:"passphrase_mode"`

	// MinWords is the minimum distinct word count for PassphraseMode to
	// classify the input as a passphrase (default: 4).
	MinWords int `yaml:"min_words"`

	// WordDictSize is the assumed dictionary size for passphrase entropy
	// (default: passphrase.DefaultWordDictSize, 7776).
	WordDictSize int `yaml:"word_dict_size"`

	// HIBPChecker, if set, checks the password against a breach database
	// (e.g. the hibp package's client). Checker errors are treated as
	// "not breached" so an API outage never blocks analysis. Not
	// serializable, so it is excluded from YAML config files; wire it up
	// in code after loading.
	HIBPChecker interface {
		Check(password string) (breached bool, count int, err error)
	} `yaml:"-"`

	// HIBPMinOccurrences is the minimum breach count required before an
	// issue is reported (default: 1).
	HIBPMinOccurrences int `yaml:"hibp_min_occurrences"`

	// HIBPResult, if set, is used instead of calling HIBPChecker — for
	// callers that already have a breach-check result from elsewhere in
	// their request pipeline.
	HIBPResult *HIBPCheckResult `yaml:"-"`

	// PenaltyWeights, if set, overrides the default 1.0 multipliers
	// applied to each penalty category and to the entropy base score.
	PenaltyWeights *PenaltyWeights `yaml:"penalty_weights,omitempty"`

	// ConstantTimeMode enables constant-time string comparisons in
	// dictionary/context lookups and, combined with
	// MinExecutionTimeMs, pads total execution time so that responses
	// do not leak information through timing. Default: false.
	ConstantTimeMode bool `yaml:"constant_time_mode"`

	// MinExecutionTimeMs, when ConstantTimeMode is enabled and greater
	// than 0, pads CheckWithConfig's execution time up to this many
	// milliseconds. Default: 0 (no padding).
	MinExecutionTimeMs int
}

// DefaultConfig returns the recommended configuration with sensible
// defaults for general-purpose password validation.
func DefaultConfig() Config {
	return Config{
		MinLength:          12,
		RequireUpper:       true,
		RequireLower:       true,
		RequireDigit:       true,
		RequireSymbol:      true,
		MaxRepeats:         3,
		PatternMinLength:   4,
		MaxIssues:          5,
		EntropyMode:        EntropyModeDecomposition,
		HIBPMinOccurrences: 1,
	}
}

// Validate checks the configuration for invalid values and returns
// an error describing the first problem found.
func (c Config) Validate() error {
	if c.MinLength < 1 {
		return fmt.Errorf("zxcheck: MinLength must be >= 1, got %d", c.MinLength)
	}
	if c.MaxRepeats < 2 {
		return fmt.Errorf("zxcheck: MaxRepeats must be >= 2, got %d", c.MaxRepeats)
	}
	if c.PatternMinLength < 3 {
		return fmt.Errorf("zxcheck: PatternMinLength must be >= 3, got %d", c.PatternMinLength)
	}
	if c.MaxIssues < 0 {
		return fmt.Errorf("zxcheck: MaxIssues must be >= 0, got %d", c.MaxIssues)
	}
	if c.MinExecutionTimeMs < 0 {
		return fmt.Errorf("zxcheck: MinExecutionTimeMs must be >= 0, got %d", c.MinExecutionTimeMs)
	}
	return nil
}

// LoadConfigYAML reads a Config from a YAML file at path. The file is
// decoded on top of DefaultConfig, so fields not present in the file keep
// their default values and a file only needs the fields a deployment
// wants to pin down in source control:
//
//	cfg, err := passcheck.LoadConfigYAML("zxcheck.yaml")
//
// If path does not exist, LoadConfigYAML returns DefaultConfig() and a
// nil error, so a missing config file is never fatal. HIBPChecker and
// HIBPResult are never populated from YAML and must be wired in by the
// caller afterward.
func LoadConfigYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("zxcheck: reading config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("zxcheck: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveYAML writes c to path as YAML, creating or truncating the file.
// HIBPChecker and HIBPResult are silently omitted, since neither is
// serializable.
func (c Config) SaveYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("zxcheck: marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("zxcheck: writing config %s: %w", path, err)
	}
	return nil
}
