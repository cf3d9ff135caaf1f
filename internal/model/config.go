package model

import "strings"

// Config is the per-call extraction configuration (spec.md §6).
type Config struct {
	MentionThreshold         int
	AllowStrongNERSingleton  bool
	AllowIntroductionPattern bool
	Whitelist                map[string]EntityType // keys stored lower-cased by callers; lookups lower-case the name
	Debug                    bool
	DocID                    string

	// TypeOracleOverride lets a caller break the GPE->PLACE default (spec.md
	// §9 "ambiguities deliberately left to the implementer"). Called with
	// the candidate surface and the oracle's tentative type; returning a
	// non-nil EntityType overrides the oracle's decision.
	TypeOracleOverride func(surface string, tentative EntityType) *EntityType
}

// DefaultConfig returns the "default" configuration of spec.md §4.5:
// mention_threshold=2, singletons allowed, introduction pattern allowed.
func DefaultConfig() Config {
	return Config{
		MentionThreshold:         2,
		AllowStrongNERSingleton:  true,
		AllowIntroductionPattern: true,
		Whitelist:                map[string]EntityType{},
	}
}

// StrictConfig returns the "strict" configuration: threshold 3, no
// strong-NER singleton promotion.
func StrictConfig() Config {
	c := DefaultConfig()
	c.MentionThreshold = 3
	c.AllowStrongNERSingleton = false
	return c
}

// PermissiveConfig returns the "permissive" configuration: threshold 1, all
// exceptions enabled.
func PermissiveConfig() Config {
	c := DefaultConfig()
	c.MentionThreshold = 1
	c.AllowStrongNERSingleton = true
	c.AllowIntroductionPattern = true
	return c
}

// WhitelistType looks up name (case-insensitively) in the whitelist.
func (c Config) WhitelistType(name string) (EntityType, bool) {
	t, ok := c.Whitelist[strings.ToLower(name)]
	return t, ok
}

// InWhitelist reports whether name, lower-cased, is a key of the whitelist;
// the mapped types are not consulted. Used by the promotion gate's
// "canonical or alias is in the user whitelist" rule.
func (c Config) InWhitelist(name string) bool {
	_, ok := c.Whitelist[strings.ToLower(name)]
	return ok
}
