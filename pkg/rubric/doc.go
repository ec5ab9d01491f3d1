// Package rubric holds the fixed rule tables of the logframe engine as data.
//
// A Rubric is an ordered list of sections, each with a weight and the field
// names a design snapshot must fill in for that section to count as complete.
// QualityRules carries the marker vocabularies, penalty and severities used by
// the design quality analyzer. Adding a rubric entry or a marker requires no
// change to the scoring logic.
//
// Basic usage:
//
//	r := rubric.Default()
//	for _, s := range r.Sections {
//	    fmt.Println(s.Name, s.Weight, s.RequiredFields)
//	}
//
// A rubric can be overridden from YAML, once per process:
//
//	sections:
//	  - name: organization_profile
//	    weight: 10
//	    required_fields: [organization_id, theme, geography, scale]
//
//	r, err := rubric.Load("rubric.yaml")
//
// Load validates the table (weights summing to 100, unique names, at least
// one required field per section) and falls back to Default when the file
// does not exist.
package rubric
