// Package tag defines the core data types of the tag enforcement engine:
// Tag and Role identifiers, the TagSpec rule record attached to each
// registered tag, and the Registry that owns all tags, groups, roles, and
// specs.
//
// The package has no knowledge of what a tagset is attached to, how it is
// persisted, or how a configuration document is deserialized — it only
// models the rule graph and the primitives (CountTag, CheckTag) needed to
// resolve group membership. The decision procedure that walks this graph
// for a proposed tagset lives in package validator.
package tag
