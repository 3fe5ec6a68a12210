// Package reconcile mutates a tag.Registry to match a declarative
// Configuration. This package holds only the structural record tree and
// the in-memory Apply that walks it; deserializing that tree from YAML,
// JSON, or any other text format is left entirely to the caller.
//
// Configuration and TagConfig carry yaml and json struct tags purely as
// an interoperability convenience for callers who plug in their own
// unmarshaler (encoding/json, gopkg.in/yaml.v3, spf13/viper, ...); this
// package never imports any of them.
package reconcile

// Configuration is the top-level declarative record: the role names
// that should exist after reconciliation, and the per-tag configuration
// records that should exist after it.
type Configuration struct {
	Roles []string    `yaml:"roles" json:"roles"`
	Tags  []TagConfig `yaml:"tags" json:"tags"`
}

// TagConfig is a single tag's declarative configuration. Omitted optional
// fields (nil slices) are semantically equivalent to empty sequences.
type TagConfig struct {
	// Name is the tag's name. Required, non-empty.
	Name string `yaml:"name" json:"name"`

	// Groups lists the groups this tag belongs to. A name not yet
	// registered is implicitly created as a group — the only
	// implicit-creation path in the reconciler.
	Groups []string `yaml:"groups,omitempty" json:"groups,omitempty"`

	// Roles lists the role names gating this tag's addition/removal.
	Roles []string `yaml:"roles,omitempty" json:"roles,omitempty"`

	// Requires lists tags or groups that must be co-present with this
	// tag.
	Requires []string `yaml:"requires,omitempty" json:"requires,omitempty"`

	// ConflictsWith lists tags or groups forbidden to co-occur with
	// this tag.
	ConflictsWith []string `yaml:"conflicts_with,omitempty" json:"conflicts_with,omitempty"`
}
