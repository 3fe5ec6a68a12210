package tag_test

import "github.com/tagguard/tagguard-go/tag"

// newFixtureRegistry builds the worked-example registry used throughout
// this package's tests: a wiki-style tag taxonomy of object
// classes, licensing tags, and role-gated administrative tags.
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
	reg.AddTag("creepypasta", tag.TemplateTagSpec{
		RequiredTags: []tag.Tag{tag.New("tale")},
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
	reg.AddTag("thaumiel", tag.TemplateTagSpec{
		Groups:       []tag.Tag{tag.New("object-class")},
		RequiredTags: []tag.Tag{tag.New("scp")},
	})
	reg.AddTag("esoteric-class", tag.TemplateTagSpec{
		Groups:       []tag.Tag{tag.New("object-class")},
		RequiredTags: []tag.Tag{tag.New("scp")},
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

	reg.AddTag("amorphous", tag.TemplateTagSpec{
		RequiredTags: []tag.Tag{tag.New("primary")},
		Groups:       []tag.Tag{tag.New("attribute")},
	})
	reg.AddTag("antimemetic", tag.TemplateTagSpec{
		RequiredTags: []tag.Tag{tag.New("primary")},
		Groups:       []tag.Tag{tag.New("attribute")},
	})
	reg.AddTag("electronic", tag.TemplateTagSpec{
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

	reg.AddTag("global-occult-coalition", tag.TemplateTagSpec{
		Groups: []tag.Tag{tag.New("goi")},
	})
	reg.AddTag("marshall-carter-and-dark", tag.TemplateTagSpec{
		Groups: []tag.Tag{tag.New("goi")},
	})
	reg.AddTag("serpents-hand", tag.TemplateTagSpec{
		Groups: []tag.Tag{tag.New("goi")},
	})

	reg.AddTag("co-authored", tag.TemplateTagSpec{})

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

	reg.AddGroup("attribute")
	reg.AddGroup("contests")
	reg.AddGroup("licensing")
	reg.AddGroup("primary")
	reg.AddGroup("object-class")
	reg.AddGroup("goi")

	reg.AddRole("admin")
	reg.AddRole("moderator")
	reg.AddRole("licensing")
	reg.AddRole("member")
	reg.AddRole("locked")

	return reg
}
