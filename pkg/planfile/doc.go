// Package planfile reads garden plans and writes their placements.
//
// A plan lists beds, each with a shape, a mode, optional region boundaries
// and its plant groups. Plans may be written in TOML, YAML or JSON; the format
// is chosen by file extension:
//
//	name = "Back garden"
//
//	[[beds]]
//	name = "Salad"
//	shape = "rectangle"
//	width = 96
//	height = 48
//	boundaries = [0.4]
//
//	  [[beds.groups]]
//	  name = "Lettuce"
//	  spacing = 12
//	  quantity = 10
//
//	  [[beds.groups]]
//	  name = "Radish"
//	  spacing = 4
//	  fill = "percentage"
//	  fill_value = 50
//
// Every document is decoded into a generic map first and validated against an
// embedded JSON schema, so the three formats share one set of rules and every
// invalid field is reported at once as an [errors.FieldError].
//
// Beds and groups without an id are given a random UUID. Missing boundaries
// default to an even split.
//
// [Write] emits the placed plan as indented JSON with every group's positions.
package planfile
