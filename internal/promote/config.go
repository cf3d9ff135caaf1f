// Package promote implements the promotion gate of spec.md §4.5: deciding
// which clusters become entities, and why.
package promote

import "github.com/nucleus/entity-extractor/internal/model"

// Strict, Default, and Permissive are the three named configurations of
// spec.md §4.5.
var (
	Strict     = model.StrictConfig()
	Default    = model.DefaultConfig()
	Permissive = model.PermissiveConfig()
)
