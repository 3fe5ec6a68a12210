// Package validator implements the decision procedure that checks a
// tagset, or a proposed transition on a tagset, against the rules
// declared in a tag.Registry.
//
// This is kept as a package distinct from tag: the Registry owns the
// rule graph, this package walks it. See CheckTagChanges for the
// algorithm and CheckTags for the degenerate state-only case.
package validator

import (
	"github.com/tagguard/tagguard-go/tag"
)

// CheckTags reports whether tags, taken as a standalone state with no
// proposed change, satisfies every rule in reg. It is shorthand for
// CheckTagChanges(reg, tags, nil, nil, nil).
func CheckTags(reg *tag.Registry, tags []tag.Tag) error {
	return CheckTagChanges(reg, tags, nil, nil, nil)
}

// CheckTagChanges checks whether applying added and removed to the
// current tagset tags, performed by an actor holding roles, is permitted
// and leaves the resulting tagset satisfying every rule in reg.
//
// Evaluation is fail-fast: the first rule violation encountered stops the
// check. The preflight (unknown roles, then added/removed overlap) runs
// before any per-tag evaluation. Per-tag evaluation then walks every tag
// that is either currently present or being added or removed — not only
// tags, the literal current tagset — because a tag that only appears in
// added (never having been part of tags) still needs its own role gate
// and requirements checked before the addition can be permitted: adding
// a role-gated tag that was never in the current set must still fail
// with a missing-roles error if the actor lacks the gate. The
// evaluation order is tags in the given order, then any new names
// introduced by added in its given order, then any new names
// introduced by removed in its given order; duplicates are visited
// once.
//
// A tag being removed has its own requirements and conflicts skipped
// (but not its role gate): since it will not be part of the resulting
// tagset, its own rules no longer apply to it, only to whatever it
// contributes — or rather no longer contributes — to other tags'
// requirement and conflict counts.
func CheckTagChanges(reg *tag.Registry, tags, added, removed []tag.Tag, roles []tag.Role) error {
	for _, h := range roles {
		if !reg.HasRole(h) {
			return tag.MissingRole(h)
		}
	}
	if tagsOverlap(added, removed) {
		return tag.Other("Tag present in both added_tags and removed_tags")
	}

	// surviving is the current tagset with every removed member excluded,
	// so a removed tag's group membership stops contributing to any
	// other tag's requirement or conflict count, not just to its own.
	surviving := subtractTags(tags, removed)

	// count is the effective presence count: zero for anything being
	// removed, otherwise the registry's group-aware count over the
	// surviving current tagset plus the additions.
	count := func(x tag.Tag) (int, error) {
		if containsTag(removed, x) {
			return 0, nil
		}
		fromCurrent, err := reg.CountTag(x, surviving)
		if err != nil {
			return 0, err
		}
		fromAdded, err := reg.CountTag(x, added)
		if err != nil {
			return 0, err
		}
		return fromCurrent + fromAdded, nil
	}

	evaluate := func(t tag.Tag) error {
		spec, err := reg.GetSpec(t)
		if err != nil {
			return err
		}

		inAdded := containsTag(added, t)
		inRemoved := containsTag(removed, t)

		if inAdded || inRemoved {
			if err := checkRoleGate(spec.NeededRoles, roles); err != nil {
				return err
			}
		}

		// A tag leaving the set no longer needs to satisfy its own
		// requirements or conflicts.
		if inRemoved {
			return nil
		}

		for _, required := range spec.RequiredTags {
			n, err := count(required)
			if err != nil {
				return err
			}
			if n == 0 {
				return tag.RequiresTags(t, spec.RequiredTags)
			}
		}

		for _, conflicting := range spec.ConflictingTags {
			limit := 0
			if reg.IsGroup(conflicting) {
				selfInCurrent, err := reg.CheckTag(t, tags)
				if err != nil {
					return err
				}
				selfInAdded, err := reg.CheckTag(t, added)
				if err != nil {
					return err
				}
				if selfInCurrent || selfInAdded {
					limit = 1
				}
			}
			n, err := count(conflicting)
			if err != nil {
				return err
			}
			if n > limit {
				return tag.IncompatibleTags(t, conflicting)
			}
		}

		return nil
	}

	visited := make(map[tag.Tag]bool, len(tags)+len(added)+len(removed))
	for _, group := range [][]tag.Tag{tags, added, removed} {
		for _, t := range group {
			if visited[t] {
				continue
			}
			visited[t] = true
			if err := evaluate(t); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkRoleGate enforces that, when needed is non-empty, held contains
// at least one of its roles.
func checkRoleGate(needed []tag.Role, held []tag.Role) error {
	if len(needed) == 0 {
		return nil
	}
	for _, want := range needed {
		if containsRole(held, want) {
			return nil
		}
	}
	return tag.MissingRoles(needed)
}

func tagsOverlap(a, b []tag.Tag) bool {
	for _, x := range a {
		if containsTag(b, x) {
			return true
		}
	}
	return false
}

func containsTag(list []tag.Tag, t tag.Tag) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}

// subtractTags returns the members of list that are not present in
// exclude, preserving order and multiplicity of the survivors.
func subtractTags(list, exclude []tag.Tag) []tag.Tag {
	if len(exclude) == 0 {
		return list
	}
	out := make([]tag.Tag, 0, len(list))
	for _, x := range list {
		if !containsTag(exclude, x) {
			out = append(out, x)
		}
	}
	return out
}

func containsRole(list []tag.Role, r tag.Role) bool {
	for _, x := range list {
		if x == r {
			return true
		}
	}
	return false
}
