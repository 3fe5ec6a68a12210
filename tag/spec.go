package tag

// TemplateTagSpec is the unresolved input form of a tag's rules, supplied
// at registration time via Registry.AddTag. All four sequences default to
// nil (treated as empty); names listed here may reference tags, groups,
// or roles that are not yet registered — forward references are resolved
// lazily at query time by the validator, never at construction time.
//
// Ordering within each sequence is preserved when the TemplateTagSpec is
// resolved into a TagSpec, since the RequiresTags and MissingRoles errors
// report the declared list verbatim.
type TemplateTagSpec struct {
	// RequiredTags lists tags (or groups) that must be effectively
	// present whenever the owning tag is effectively present.
	RequiredTags []Tag

	// ConflictingTags lists tags (or groups) that must not be
	// effectively present whenever the owning tag is effectively
	// present, subject to the group self-tolerance rule.
	ConflictingTags []Tag

	// NeededRoles lists roles, at least one of which the actor must
	// hold to add or remove the owning tag. An empty list means the
	// tag is freely changeable.
	NeededRoles []Role

	// Groups lists the groups the owning tag declares membership in.
	Groups []Tag
}

// TagSpec is the resolved rule record attached to one registered proper
// tag. It is the same four rule sequences as TemplateTagSpec plus the
// owning Tag, constructed by the Registry from a (Tag, TemplateTagSpec)
// pair by a structural move — no validation against the registry is
// performed at construction time.
type TagSpec struct {
	tag Tag

	// RequiredTags, ConflictingTags, NeededRoles, and Groups carry the
	// same meaning as the corresponding TemplateTagSpec fields.
	RequiredTags    []Tag
	ConflictingTags []Tag
	NeededRoles     []Role
	Groups          []Tag
}

// newTagSpec builds the resolved spec for tag from a template. The slices
// are copied so that later mutation of the caller's template (or of the
// spec returned from a prior registration) cannot alias another spec's
// storage.
func newTagSpec(t Tag, tmpl TemplateTagSpec) *TagSpec {
	return &TagSpec{
		tag:             t,
		RequiredTags:    append([]Tag(nil), tmpl.RequiredTags...),
		ConflictingTags: append([]Tag(nil), tmpl.ConflictingTags...),
		NeededRoles:     append([]Role(nil), tmpl.NeededRoles...),
		Groups:          append([]Tag(nil), tmpl.Groups...),
	}
}

// Tag returns the tag this spec is attached to.
func (s *TagSpec) Tag() Tag {
	return s.tag
}

// removeTag strips t from RequiredTags and ConflictingTags, so that
// deleting t from the owning registry leaves no dangling reference to
// it in this spec.
func (s *TagSpec) removeTag(t Tag) {
	s.RequiredTags = removeAll(s.RequiredTags, t)
	s.ConflictingTags = removeAll(s.ConflictingTags, t)
}

// removeGroup strips g from Groups when a group is deleted.
func (s *TagSpec) removeGroup(g Tag) {
	s.Groups = removeAll(s.Groups, g)
}

// removeRole strips r from NeededRoles when a role is deleted.
func (s *TagSpec) removeRole(r Role) {
	s.NeededRoles = removeAllRoles(s.NeededRoles, r)
}

func removeAll(list []Tag, t Tag) []Tag {
	out := list[:0]
	for _, x := range list {
		if x != t {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func removeAllRoles(list []Role, r Role) []Role {
	out := list[:0]
	for _, x := range list {
		if x != r {
			out = append(out, x)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
