package model

import "strings"

// Features summarises cheap, already-computed signals about a candidate
// surface, passed to a Validator so it need not re-walk tokens.
type Features struct {
	MultiWord        bool
	AllCapsAcronym   bool
	HasPossessiveDep bool
	NERHint          string
}

// Validator checks whether a normalised surface plausibly belongs to an
// EntityType. EntityType is a closed sum type (spec.md §9 design note
// "dynamic dispatch on entity type"); adding a type means adding an entry to
// validatorTable, a data change rather than new control flow.
type Validator func(tokens []Token, normalised string, features Features) bool

var validatorTable = map[EntityType]Validator{
	TypePerson: func(tokens []Token, normalised string, f Features) bool {
		return !f.AllCapsAcronym
	},
	TypeOrg: func(tokens []Token, normalised string, f Features) bool {
		return true
	},
	TypePlace: func(tokens []Token, normalised string, f Features) bool {
		return true
	},
	TypeEvent: func(tokens []Token, normalised string, f Features) bool {
		return strings.Contains(strings.ToLower(normalised), "of") || f.MultiWord
	},
	TypeHouse: func(tokens []Token, normalised string, f Features) bool {
		return true
	},
}

// Validate runs t's validator against the given evidence, defaulting to
// true when no type-specific validator is registered (most of the closed
// vocabulary has no extra structural constraint beyond what the type
// oracle already enforced).
func Validate(t EntityType, tokens []Token, normalised string, f Features) bool {
	if v, ok := validatorTable[t]; ok {
		return v(tokens, normalised, f)
	}
	return true
}
