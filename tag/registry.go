package tag

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Registry is the aggregate root owning all tags, groups, roles, and the
// TagSpec attached to each proper tag. It has no knowledge of how the
// registered names are used; that decision procedure lives in package
// validator.
//
// A Registry is not safe for concurrent use without external
// synchronization: queries never mutate it, but registration and
// deletion require exclusive access.
type Registry struct {
	specs map[Tag]*TagSpec
	tags  map[Tag]struct{}
	roles map[Role]struct{}
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		specs: make(map[Tag]*TagSpec),
		tags:  make(map[Tag]struct{}),
		roles: make(map[Role]struct{}),
	}
}

// AddTag interns name as a proper tag and installs a fresh spec resolved
// from tmpl. Re-adding an already-registered name overwrites its spec and
// leaves the tag registered.
func (r *Registry) AddTag(name string, tmpl TemplateTagSpec) Tag {
	t := New(name)
	r.tags[t] = struct{}{}
	r.specs[t] = newTagSpec(t, tmpl)
	return t
}

// DeleteTag removes t from the registry and its spec, then prunes t from
// every surviving spec's RequiredTags and ConflictingTags so no spec is
// left referencing a tag that no longer exists. It is a no-op if t is
// not registered.
func (r *Registry) DeleteTag(t Tag) {
	if _, ok := r.tags[t]; !ok {
		return
	}
	delete(r.tags, t)
	delete(r.specs, t)
	for _, spec := range r.specs {
		spec.removeTag(t)
	}
}

// AddGroup interns name as a group. If a proper tag of that name already
// exists, its spec is left untouched; the entry remains a proper tag.
func (r *Registry) AddGroup(name string) Tag {
	g := New(name)
	r.tags[g] = struct{}{}
	return g
}

// DeleteGroup removes group from the registry and prunes it from every
// spec's Groups. It is a no-op if group is not registered or is in fact
// a proper tag (has a spec) rather than a group — a proper tag is never
// removed by DeleteGroup.
func (r *Registry) DeleteGroup(group Tag) {
	if _, ok := r.tags[group]; !ok {
		return
	}
	if _, isProperTag := r.specs[group]; isProperTag {
		return
	}
	delete(r.tags, group)
	for _, spec := range r.specs {
		spec.removeGroup(group)
	}
}

// AddRole interns name as a role.
func (r *Registry) AddRole(name string) Role {
	role := NewRole(name)
	r.roles[role] = struct{}{}
	return role
}

// DeleteRole removes role from the registry and prunes it from every
// spec's NeededRoles. It is a no-op if role is not registered.
func (r *Registry) DeleteRole(role Role) {
	if _, ok := r.roles[role]; !ok {
		return
	}
	delete(r.roles, role)
	for _, spec := range r.specs {
		spec.removeRole(role)
	}
}

// GetSpec returns a copy of the spec for t. It returns a MissingTag error
// if t is not a registered proper tag.
func (r *Registry) GetSpec(t Tag) (TagSpec, error) {
	spec, ok := r.specs[t]
	if !ok {
		return TagSpec{}, MissingTag(t)
	}
	return *spec, nil
}

// GetSpecMut returns an exclusive-borrow pointer to t's spec so the
// caller may edit its rule fields in place. It returns a MissingTag error
// if t is not a registered proper tag.
func (r *Registry) GetSpecMut(t Tag) (*TagSpec, error) {
	spec, ok := r.specs[t]
	if !ok {
		return nil, MissingTag(t)
	}
	return spec, nil
}

// GetTag resolves name to its interned Tag. It returns a NoSuchTag error
// if name is not registered (as either a proper tag or a group).
func (r *Registry) GetTag(name string) (Tag, error) {
	t := New(name)
	if _, ok := r.tags[t]; !ok {
		return Tag{}, NoSuchTag(name)
	}
	return t, nil
}

// GetRole resolves name to its interned Role. It returns a NoSuchRole
// error if name is not registered.
func (r *Registry) GetRole(name string) (Role, error) {
	role := NewRole(name)
	if _, ok := r.roles[role]; !ok {
		return Role{}, NoSuchRole(name)
	}
	return role, nil
}

// HasTag reports whether t is registered, as either a proper tag or a
// group.
func (r *Registry) HasTag(t Tag) bool {
	_, ok := r.tags[t]
	return ok
}

// HasRole reports whether role is registered.
func (r *Registry) HasRole(role Role) bool {
	_, ok := r.roles[role]
	return ok
}

// IsGroup reports whether t is registered and has no spec of its own.
func (r *Registry) IsGroup(t Tag) bool {
	if _, ok := r.tags[t]; !ok {
		return false
	}
	_, hasSpec := r.specs[t]
	return !hasSpec
}

// validateList returns a MissingTag error for the first entry of list
// that is not a registered proper tag. CountTag and CheckTag require
// every entry of list to be an actual tag, since list is meant to
// represent a tagset, not a mix of tags and groups.
func (r *Registry) validateList(list []Tag) error {
	for _, t := range list {
		if _, ok := r.specs[t]; !ok {
			return MissingTag(t)
		}
	}
	return nil
}

// CountTag counts how many members of list match check: a name matches
// itself directly (contributing 1 if present), and additionally
// contributes 1 whenever a listed name's spec declares check among its
// Groups. Duplicates in list are counted with multiplicity. It returns a
// MissingTag error if any name in list is not a registered proper tag.
func (r *Registry) CountTag(check Tag, list []Tag) (int, error) {
	if err := r.validateList(list); err != nil {
		return 0, err
	}
	count := 0
	for _, name := range list {
		if name == check {
			count++
		}
		if spec := r.specs[name]; containsTag(spec.Groups, check) {
			count++
		}
	}
	return count, nil
}

// CheckTag reports whether check is effectively present in list: when
// check is a group this is CountTag(check, list) > 0, and plain
// membership of check in list otherwise. It returns the same errors as
// CountTag.
func (r *Registry) CheckTag(check Tag, list []Tag) (bool, error) {
	if err := r.validateList(list); err != nil {
		return false, err
	}
	if r.IsGroup(check) {
		count, err := r.CountTag(check, list)
		if err != nil {
			return false, err
		}
		return count > 0, nil
	}
	return containsTag(list, check), nil
}

func containsTag(list []Tag, t Tag) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}

// Roles returns every registered Role, in unspecified order. Used by
// package reconcile to diff the registry's role set against a
// declarative configuration without a name round-trip.
func (r *Registry) Roles() []Role {
	roles := make([]Role, 0, len(r.roles))
	for role := range r.roles {
		roles = append(roles, role)
	}
	return roles
}

// ProperTags returns every registered proper tag (a tag with a spec of
// its own), in unspecified order.
func (r *Registry) ProperTags() []Tag {
	tags := make([]Tag, 0, len(r.specs))
	for t := range r.specs {
		tags = append(tags, t)
	}
	return tags
}

// Groups returns every registered group (a tag with no spec of its own),
// in unspecified order.
func (r *Registry) Groups() []Tag {
	groups := make([]Tag, 0, len(r.tags))
	for t := range r.tags {
		if _, hasSpec := r.specs[t]; !hasSpec {
			groups = append(groups, t)
		}
	}
	return groups
}

// collator is shared across the listing accessors below; collate.New is
// not safe to call from multiple goroutines concurrently building
// Collators, but a single package-level Collator's SortStrings is safe
// for the single-threaded, synchronous use this module guarantees.
var collator = collate.New(language.Und)

// TagNames returns the names of every registered tag and group, sorted
// by Unicode collation order rather than a plain byte-wise
// sort.Strings.
func (r *Registry) TagNames() []string {
	names := make([]string, 0, len(r.tags))
	for t := range r.tags {
		names = append(names, t.name)
	}
	collator.SortStrings(names)
	return names
}

// GroupNames returns the names of every registered group (tags with no
// spec of their own), sorted as TagNames is.
func (r *Registry) GroupNames() []string {
	names := make([]string, 0, len(r.tags))
	for t := range r.tags {
		if _, hasSpec := r.specs[t]; !hasSpec {
			names = append(names, t.name)
		}
	}
	collator.SortStrings(names)
	return names
}

// RoleNames returns the names of every registered role, sorted as
// TagNames is.
func (r *Registry) RoleNames() []string {
	names := make([]string, 0, len(r.roles))
	for role := range r.roles {
		names = append(names, role.name)
	}
	collator.SortStrings(names)
	return names
}
