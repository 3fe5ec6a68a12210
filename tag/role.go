package tag

import "fmt"

// Role is a case-sensitive, non-empty name identifying an actor
// capability required to add or remove certain tags. Role values are
// immutable and cheap to duplicate; equality and hashing are by the
// contained name. See Tag for the analogous identifier type.
type Role struct {
	name string
}

// NewRole creates a Role with the given name. It panics if name is empty.
func NewRole(name string) Role {
	if name == "" {
		panic("tag: empty role names are not permitted")
	}
	return Role{name: name}
}

// Name returns the bare name of the role.
func (r Role) Name() string {
	return r.name
}

// String implements fmt.Stringer, printing the bare name.
func (r Role) String() string {
	return r.name
}

// GoString implements fmt.GoStringer, printing a debug representation.
func (r Role) GoString() string {
	return fmt.Sprintf("Role(%q)", r.name)
}

// IsZero reports whether r is the zero value (no name set).
func (r Role) IsZero() bool {
	return r.name == ""
}
