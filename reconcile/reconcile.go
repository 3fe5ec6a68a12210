package reconcile

import (
	"github.com/tagguard/tagguard-go/tag"
)

// Report records what Apply changed: callers of a one-way mutating
// operation get a diff back instead of having to re-diff the registry
// themselves afterward.
type Report struct {
	RolesAdded   []string
	RolesRemoved []string
	TagsAdded    []string
	TagsRemoved  []string
	TagsUpdated  []string
}

// Observer, if non-nil, is called once per tag after its spec has been
// overwritten during the spec update pass — a caller-supplied hook
// rather than this package logging on its own behalf.
type Observer func(tagName string)

// Apply reconciles reg to match cfg:
//
//  1. Roles: delete every registered role absent from cfg, add every
//     role in cfg not already registered.
//  2. Tags: delete every registered proper tag absent from cfg, add
//     every configured tag not yet registered with an empty spec.
//  3. Spec update pass: for each configured tag, in input order,
//     overwrite its spec fields, resolving required/conflicting tags
//     and needed roles against already-registered names and implicitly
//     registering any unresolved group name.
//
// Apply is not atomic: a failure partway through the spec update pass
// leaves reg partially mutated but with every registry invariant still
// intact. Callers should treat a failed Apply as an invitation to
// reconcile again, not a transaction to roll back.
func Apply(reg *tag.Registry, cfg Configuration, observe Observer) (*Report, error) {
	report := &Report{}

	reconcileRoles(reg, cfg.Roles, report)
	reconcileTagSet(reg, cfg.Tags, report)

	for _, tc := range cfg.Tags {
		if err := applyTagConfig(reg, tc); err != nil {
			return report, err
		}
		report.TagsUpdated = append(report.TagsUpdated, tc.Name)
		if observe != nil {
			observe(tc.Name)
		}
	}

	return report, nil
}

func reconcileRoles(reg *tag.Registry, wanted []string, report *Report) {
	want := make(map[string]bool, len(wanted))
	for _, name := range wanted {
		want[name] = true
	}

	for _, role := range reg.Roles() {
		if !want[role.Name()] {
			reg.DeleteRole(role)
			report.RolesRemoved = append(report.RolesRemoved, role.Name())
		}
	}

	for _, name := range wanted {
		if !reg.HasRole(tag.NewRole(name)) {
			reg.AddRole(name)
			report.RolesAdded = append(report.RolesAdded, name)
		}
	}
}

func reconcileTagSet(reg *tag.Registry, wanted []TagConfig, report *Report) {
	want := make(map[string]bool, len(wanted))
	for _, tc := range wanted {
		want[tc.Name] = true
	}

	for _, t := range reg.ProperTags() {
		if !want[t.Name()] {
			reg.DeleteTag(t)
			report.TagsRemoved = append(report.TagsRemoved, t.Name())
		}
	}

	for _, tc := range wanted {
		if !reg.HasTag(tag.New(tc.Name)) {
			reg.AddTag(tc.Name, tag.TemplateTagSpec{})
			report.TagsAdded = append(report.TagsAdded, tc.Name)
		}
	}
}

// applyTagConfig resolves tc's fields against reg and overwrites the
// spec of the already-registered tag named tc.Name.
func applyTagConfig(reg *tag.Registry, tc TagConfig) error {
	spec, err := reg.GetSpecMut(tag.New(tc.Name))
	if err != nil {
		return err
	}

	// Groups are resolved first, with implicit creation, so that a tag
	// which requires or conflicts with its own group (a common shape:
	// see the "primary" group in the canonical fixture) doesn't fail to
	// resolve a group name that this very call is about to introduce.
	groups := resolveOrCreateGroups(reg, tc.Groups)

	required, err := resolveTags(reg, tc.Requires)
	if err != nil {
		return err
	}

	conflicting, err := resolveTags(reg, tc.ConflictsWith)
	if err != nil {
		return err
	}

	roles, err := resolveRoles(reg, tc.Roles)
	if err != nil {
		return err
	}

	spec.RequiredTags = required
	spec.ConflictingTags = conflicting
	spec.Groups = groups
	spec.NeededRoles = roles
	return nil
}

func resolveTags(reg *tag.Registry, names []string) ([]tag.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}
	tags := make([]tag.Tag, 0, len(names))
	for _, name := range names {
		t, err := reg.GetTag(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func resolveOrCreateGroups(reg *tag.Registry, names []string) []tag.Tag {
	if len(names) == 0 {
		return nil
	}
	groups := make([]tag.Tag, 0, len(names))
	for _, name := range names {
		g, err := reg.GetTag(name)
		if err != nil {
			g = reg.AddGroup(name)
		}
		groups = append(groups, g)
	}
	return groups
}

func resolveRoles(reg *tag.Registry, names []string) ([]tag.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	roles := make([]tag.Role, 0, len(names))
	for _, name := range names {
		role, err := reg.GetRole(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}
