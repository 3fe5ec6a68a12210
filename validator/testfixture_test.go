package validator_test

import "github.com/tagguard/tagguard-go/tag"

// newFixtureRegistry builds a trimmed copy of the worked-example registry
// used by package tag's own tests: proper tags scp/tale/hub conflict with and
// belong to group primary; safe/euclid/keter require scp and belong to
// group object-class; amorphous/humanoid/ontokinetic require primary and
// belong to group attribute; _image and _cc conflict with each other,
// with _cc additionally role-gated; admin requires primary and is
// role-gated; doomsday2018/cliche2019 conflict via group contests and are
// role-gated. object-class is named in Groups but not registered here.
func newFixtureRegistry() *tag.Registry {
	reg := tag.New()

	reg.AddTag("scp", tag.TemplateTagSpec{
		ConflictingTags: []tag.Tag{tag.New("primary")},
		Groups:          []tag.Tag{tag.New("primary")},
	})
	reg.AddTag("tale", tag.TemplateTagSpec{
		ConflictingTags: []tag.Tag{tag.New("primary")},
		Groups:          []tag.Tag{tag.New("primary")},
	})
	reg.AddTag("hub", tag.TemplateTagSpec{
		ConflictingTags: []tag.Tag{tag.New("primary")},
		Groups:          []tag.Tag{tag.New("primary")},
	})

	reg.AddTag("safe", tag.TemplateTagSpec{
		Groups:       []tag.Tag{tag.New("object-class")},
		RequiredTags: []tag.Tag{tag.New("scp")},
	})
	reg.AddTag("euclid", tag.TemplateTagSpec{
		Groups:       []tag.Tag{tag.New("object-class")},
		RequiredTags: []tag.Tag{tag.New("scp")},
	})
	reg.AddTag("keter", tag.TemplateTagSpec{
		Groups:       []tag.Tag{tag.New("object-class")},
		RequiredTags: []tag.Tag{tag.New("scp")},
	})

	reg.AddTag("amorphous", tag.TemplateTagSpec{
		RequiredTags: []tag.Tag{tag.New("primary")},
		Groups:       []tag.Tag{tag.New("attribute")},
	})
	reg.AddTag("humanoid", tag.TemplateTagSpec{
		RequiredTags: []tag.Tag{tag.New("primary")},
		Groups:       []tag.Tag{tag.New("attribute")},
	})
	reg.AddTag("ontokinetic", tag.TemplateTagSpec{
		RequiredTags: []tag.Tag{tag.New("primary")},
		Groups:       []tag.Tag{tag.New("attribute")},
	})

	reg.AddTag("_image", tag.TemplateTagSpec{
		ConflictingTags: []tag.Tag{tag.New("_cc")},
		Groups:          []tag.Tag{tag.New("licensing")},
	})
	reg.AddTag("_cc", tag.TemplateTagSpec{
		ConflictingTags: []tag.Tag{tag.New("_image")},
		Groups:          []tag.Tag{tag.New("licensing")},
		NeededRoles:     []tag.Role{tag.NewRole("licensing")},
	})

	reg.AddTag("admin", tag.TemplateTagSpec{
		RequiredTags: []tag.Tag{tag.New("primary")},
		NeededRoles:  []tag.Role{tag.NewRole("admin")},
	})

	reg.AddTag("doomsday2018", tag.TemplateTagSpec{
		ConflictingTags: []tag.Tag{tag.New("contests")},
		NeededRoles:     []tag.Role{tag.NewRole("locked")},
		Groups:          []tag.Tag{tag.New("contests")},
	})
	reg.AddTag("cliche2019", tag.TemplateTagSpec{
		ConflictingTags: []tag.Tag{tag.New("contests")},
		NeededRoles:     []tag.Role{tag.NewRole("locked")},
		Groups:          []tag.Tag{tag.New("contests")},
	})

	reg.AddGroup("primary")
	reg.AddGroup("attribute")
	reg.AddGroup("licensing")
	reg.AddGroup("contests")

	reg.AddRole("admin")
	reg.AddRole("moderator")
	reg.AddRole("licensing")
	reg.AddRole("member")
	reg.AddRole("locked")

	return reg
}
