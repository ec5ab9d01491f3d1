package dto

import "github.com/aretw0/logframe/pkg/domain"

// Design is the typed view of a snapshot read by the quality analyzer.
// Malformed pieces decode to empty values; malformed list entries are dropped.
type Design struct {
	Outcomes      []string
	Stakeholders  []any
	Indicators    []string
	CoreProblem   string
	Interventions []string

	// TheoryOfChange is the raw chain map; an absent or malformed section is an empty map.
	TheoryOfChange map[string]any
}

type outcomesSection struct {
	SmartOutcomes any `mapstructure:"smart_outcomes"`
}

type measurementSection struct {
	Indicators any `mapstructure:"indicators"`
}

type problemSection struct {
	CoreProblem any `mapstructure:"core_problem"`
}

type methodologySection struct {
	Interventions any `mapstructure:"interventions"`
}

// DecodeDesign extracts the fields the quality checks consume.
func DecodeDesign(snapshot domain.Snapshot) Design {
	var d Design

	if s, ok := Section(snapshot, domain.SectionOutcomes); ok {
		d.Outcomes = decodeEach[string](decode[outcomesSection](s).SmartOutcomes)
	}
	if s, ok := Section(snapshot, domain.SectionMeasurement); ok {
		d.Indicators = decodeEach[string](decode[measurementSection](s).Indicators)
	}
	if s, ok := Section(snapshot, domain.SectionProblemDefinition); ok {
		d.CoreProblem = decode[string](decode[problemSection](s).CoreProblem)
	}
	if s, ok := Section(snapshot, domain.SectionMethodology); ok {
		d.Interventions = decodeEach[string](decode[methodologySection](s).Interventions)
	}
	d.Stakeholders = decode[[]any](snapshot[domain.KeyStakeholders])

	d.TheoryOfChange, _ = Section(snapshot, domain.SectionTheoryOfChange)
	if d.TheoryOfChange == nil {
		d.TheoryOfChange = map[string]any{}
	}
	return d
}
