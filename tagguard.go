// Package tagguard re-exports the tag, validator, and reconcile packages
// under a single import, for callers who want one import path instead
// of wiring the subpackages themselves.
//
// Importing github.com/tagguard/tagguard-go alone is enough to build a
// registry, check tagsets against it, and reconcile it against a
// declarative configuration. Callers who only need one of these concerns
// may import the relevant subpackage directly instead.
package tagguard

import (
	"github.com/tagguard/tagguard-go/reconcile"
	"github.com/tagguard/tagguard-go/tag"
	"github.com/tagguard/tagguard-go/validator"
)

// Re-exported identifier types.
type (
	Tag   = tag.Tag
	Role  = tag.Role
	Error = tag.Error
	Kind  = tag.Kind
)

// Re-exported error kind constants.
const (
	KindRequiresTags     = tag.KindRequiresTags
	KindIncompatibleTags = tag.KindIncompatibleTags
	KindMissingTag       = tag.KindMissingTag
	KindNoSuchTag        = tag.KindNoSuchTag
	KindMissingRole      = tag.KindMissingRole
	KindMissingRoles     = tag.KindMissingRoles
	KindNoSuchRole       = tag.KindNoSuchRole
	KindOther            = tag.KindOther
)

// Re-exported registry types and constructors.
type (
	Registry        = tag.Registry
	TemplateTagSpec = tag.TemplateTagSpec
	TagSpec         = tag.TagSpec
)

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return tag.New()
}

// NewTag creates a Tag with the given name. It panics if name is empty.
func NewTag(name string) Tag {
	return tag.New(name)
}

// NewRole creates a Role with the given name. It panics if name is empty.
func NewRole(name string) Role {
	return tag.NewRole(name)
}

// CheckTags reports whether tags satisfies every rule in reg.
func CheckTags(reg *Registry, tags []Tag) error {
	return validator.CheckTags(reg, tags)
}

// CheckTagChanges reports whether the proposed change is permitted. See
// validator.CheckTagChanges for the full algorithm.
func CheckTagChanges(reg *Registry, tags, added, removed []Tag, roles []Role) error {
	return validator.CheckTagChanges(reg, tags, added, removed, roles)
}

// Re-exported reconciliation types.
type (
	Configuration = reconcile.Configuration
	TagConfig     = reconcile.TagConfig
	Report        = reconcile.Report
	Observer      = reconcile.Observer
)

// Reconcile mutates reg to match cfg. See reconcile.Apply for the full
// three-pass procedure.
func Reconcile(reg *Registry, cfg Configuration, observe Observer) (*Report, error) {
	return reconcile.Apply(reg, cfg, observe)
}
