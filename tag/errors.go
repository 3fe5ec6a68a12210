package tag

import (
	"fmt"
	"strings"
)

// Kind identifies the category of a validation or lookup failure. Kind
// values are comparable and exported so callers can branch on the kind of
// failure without type-asserting the whole Error.
type Kind int

const (
	// KindRequiresTags means a tag's requirements were not satisfied.
	KindRequiresTags Kind = iota

	// KindIncompatibleTags means two tags conflict.
	KindIncompatibleTags

	// KindMissingTag means a name passed in for evaluation is not a
	// registered proper tag.
	KindMissingTag

	// KindNoSuchTag means a lookup by name string found no tag.
	KindNoSuchTag

	// KindMissingRole means a role passed as part of the actor's held
	// roles is not registered.
	KindMissingRole

	// KindMissingRoles means the actor holds none of a changed tag's
	// needed roles.
	KindMissingRoles

	// KindNoSuchRole means a lookup by name string found no role.
	KindNoSuchRole

	// KindOther is the catch-all for structural misuse.
	KindOther
)

// String returns the human-readable description used as the Display
// prefix, mirroring error.rs's StdError::description match arms.
func (k Kind) String() string {
	switch k {
	case KindRequiresTags:
		return "tag missing requirements"
	case KindIncompatibleTags:
		return "tags conflict"
	case KindMissingTag:
		return "tag not found in registry"
	case KindNoSuchTag:
		return "no tag with that name"
	case KindMissingRole:
		return "role not found in registry"
	case KindMissingRoles:
		return "cannot apply tags without roles"
	case KindNoSuchRole:
		return "no role with that name"
	case KindOther:
		return "tag guard error"
	default:
		return fmt.Sprintf("unknown error kind(%d)", int(k))
	}
}

// Error is the single error type returned by this module's public
// operations. It carries a Kind plus whichever payload fields are
// relevant to that kind; unused fields are left at their zero value.
//
// Error is one struct rather than one type per kind: Go has no
// tagged-union sugar, and a single struct keeps errors.As trivial for
// callers while Equal gives full structural equality for tests.
type Error struct {
	Kind Kind

	// Tag is the tag under evaluation (RequiresTags, IncompatibleTags,
	// MissingTag) or looked up (NoSuchTag carries the raw name in
	// Name instead, since no Tag could be interned).
	Tag Tag

	// Other is the second tag in an IncompatibleTags conflict.
	Other Tag

	// Tags is the declared required-tags list for a RequiresTags
	// failure, reported verbatim in the order the spec declared it.
	Tags []Tag

	// Role is the role under evaluation for MissingRole.
	Role Role

	// Roles is the declared needed-roles list for a MissingRoles
	// failure, reported verbatim in the order the spec declared it.
	Roles []Role

	// Name is the raw lookup string for NoSuchTag / NoSuchRole.
	Name string

	// Message is the static description for KindOther.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")

	switch e.Kind {
	case KindRequiresTags:
		fmt.Fprintf(&b, "%s needs ", e.Tag)
		writeTags(&b, e.Tags)
	case KindMissingRoles:
		b.WriteString("at least one of ")
		writeRoles(&b, e.Roles)
	case KindIncompatibleTags:
		fmt.Fprintf(&b, "%s and %s", e.Tag, e.Other)
	case KindMissingTag:
		b.WriteString(e.Tag.String())
	case KindMissingRole:
		b.WriteString(e.Role.String())
	case KindNoSuchTag, KindNoSuchRole:
		b.WriteString(e.Name)
	case KindOther:
		b.WriteString(e.Message)
	}

	return b.String()
}

// Is supports errors.Is(err, target) for sentinel-style comparisons
// against an Error constructed with only its Kind set, e.g.
// errors.Is(err, &tag.Error{Kind: tag.KindMissingRole}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Equal reports whether e and other represent the same error, comparing
// every payload field. errors.Is only compares Kind; Equal gives tests
// full structural equality.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind ||
		e.Tag != other.Tag ||
		e.Other != other.Other ||
		e.Role != other.Role ||
		e.Name != other.Name ||
		e.Message != other.Message {
		return false
	}
	if !tagsEqual(e.Tags, other.Tags) {
		return false
	}
	return rolesEqual(e.Roles, other.Roles)
}

func tagsEqual(a, b []Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func rolesEqual(a, b []Role) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func writeTags(b *strings.Builder, tags []Tag) {
	for i, t := range tags {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
}

func writeRoles(b *strings.Builder, roles []Role) {
	for i, r := range roles {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
}

// RequiresTags builds the error for a tag whose requirements are unmet.
func RequiresTags(t Tag, required []Tag) *Error {
	return &Error{Kind: KindRequiresTags, Tag: t, Tags: required}
}

// IncompatibleTags builds the error for a tag that conflicts with other.
func IncompatibleTags(t, other Tag) *Error {
	return &Error{Kind: KindIncompatibleTags, Tag: t, Other: other}
}

// MissingTag builds the error for a name that is not a registered proper
// tag.
func MissingTag(t Tag) *Error {
	return &Error{Kind: KindMissingTag, Tag: t}
}

// NoSuchTag builds the error for a failed lookup by name.
func NoSuchTag(name string) *Error {
	return &Error{Kind: KindNoSuchTag, Name: name}
}

// MissingRole builds the error for an unregistered role.
func MissingRole(r Role) *Error {
	return &Error{Kind: KindMissingRole, Role: r}
}

// MissingRoles builds the error for an actor lacking any of needed.
func MissingRoles(needed []Role) *Error {
	return &Error{Kind: KindMissingRoles, Roles: needed}
}

// NoSuchRole builds the error for a failed role lookup by name.
func NoSuchRole(name string) *Error {
	return &Error{Kind: KindNoSuchRole, Name: name}
}

// Other builds the catch-all structural-misuse error.
func Other(message string) *Error {
	return &Error{Kind: KindOther, Message: message}
}
