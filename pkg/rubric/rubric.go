package rubric

import (
	"fmt"
	"os"

	"github.com/aretw0/logframe/pkg/domain"
	"gopkg.in/yaml.v3"
)

// TotalWeight is the sum every valid rubric must reach.
const TotalWeight = 100

// Section is one weighted entry of the completeness rubric.
type Section struct {
	Name           string   `yaml:"name" json:"name"`
	Weight         float64  `yaml:"weight" json:"weight"`
	RequiredFields []string `yaml:"required_fields" json:"required_fields"`
}

// Rubric is the ordered completeness table. Order drives the section breakdown.
type Rubric struct {
	Sections []Section `yaml:"sections" json:"sections"`
}

var defaultSections = []Section{
	{Name: domain.SectionOrganizationProfile, Weight: 10, RequiredFields: []string{"organization_id", "theme", "geography", "scale"}},
	{Name: domain.SectionProblemDefinition, Weight: 15, RequiredFields: []string{"core_problem", "affected_group"}},
	{Name: domain.SectionProblemTree, Weight: 15, RequiredFields: []string{"root_causes", "core_problem", "effects"}},
	{Name: domain.SectionOutcomes, Weight: 20, RequiredFields: []string{"smart_outcomes"}},
	{Name: domain.SectionMethodology, Weight: 15, RequiredFields: []string{"interventions"}},
	{Name: domain.SectionTheoryOfChange, Weight: 15, RequiredFields: []string{"activities", "outputs", "outcomes", "impact"}},
	{Name: domain.SectionMeasurement, Weight: 10, RequiredFields: []string{"indicators", "targets"}},
}

// Default returns a fresh copy of the built-in rubric.
func Default() Rubric {
	sections := make([]Section, len(defaultSections))
	for i, s := range defaultSections {
		fields := make([]string, len(s.RequiredFields))
		copy(fields, s.RequiredFields)
		sections[i] = Section{Name: s.Name, Weight: s.Weight, RequiredFields: fields}
	}
	return Rubric{Sections: sections}
}

// Load reads a rubric from a YAML (or JSON) file.
// A missing file yields the Default rubric.
func Load(path string) (Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Rubric{}, fmt.Errorf("failed to read rubric: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a rubric document.
func Parse(data []byte) (Rubric, error) {
	var r Rubric
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rubric{}, fmt.Errorf("failed to parse rubric: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rubric{}, err
	}
	return r, nil
}

// Validate checks the structural rules of the table.
func (r Rubric) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(r.Sections))
	var total float64

	if len(r.Sections) == 0 {
		errs = append(errs, &ValidationError{Section: "", Reason: "rubric has no sections"})
	}

	for _, s := range r.Sections {
		if s.Name == "" {
			errs = append(errs, &ValidationError{Section: s.Name, Reason: "name is required"})
			continue
		}
		if seen[s.Name] {
			errs = append(errs, &ValidationError{Section: s.Name, Reason: "duplicate section"})
		}
		seen[s.Name] = true
		if s.Weight <= 0 {
			errs = append(errs, &ValidationError{Section: s.Name, Reason: "weight must be positive"})
		}
		if len(s.RequiredFields) == 0 {
			errs = append(errs, &ValidationError{Section: s.Name, Reason: "at least one required field"})
		}
		total += s.Weight
	}

	if len(r.Sections) > 0 && total != TotalWeight {
		errs = append(errs, &ValidationError{Reason: fmt.Sprintf("weights sum to %g, want %d", total, TotalWeight)})
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Section returns the rubric entry named name.
func (r Rubric) Section(name string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

// Names returns the section names in rubric order.
func (r Rubric) Names() []string {
	names := make([]string, len(r.Sections))
	for i, s := range r.Sections {
		names[i] = s.Name
	}
	return names
}
