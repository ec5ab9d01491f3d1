package domain

// Snapshot maps a rubric section name to its content as submitted by the caller.
// Content is expected to be record-shaped (map[string]any); anything else is
// treated as a missing section by the scorers.
type Snapshot map[string]any

// Rubric section names.
const (
	SectionOrganizationProfile = "organization_profile"
	SectionProblemDefinition   = "problem_definition"
	SectionProblemTree         = "problem_tree"
	SectionOutcomes            = "outcomes"
	SectionMethodology         = "methodology"
	SectionTheoryOfChange      = "theory_of_change"
	SectionMeasurement         = "measurement"

	// KeyStakeholders is a top-level list outside the rubric, read by the quality analyzer.
	KeyStakeholders = "stakeholders"
)

// SectionStatus is the completeness verdict for one section.
type SectionStatus string

const (
	StatusMissing  SectionStatus = "missing"
	StatusPartial  SectionStatus = "partial"
	StatusComplete SectionStatus = "complete"
)

// SectionResult is the derived completeness record of one rubric section.
type SectionResult struct {
	Section       string        `json:"section"`
	Status        SectionStatus `json:"status"`
	Score         float64       `json:"score"`
	Weight        float64       `json:"weight"`
	MissingFields []string      `json:"missing_fields,omitempty"`
}

// CompletenessReport is the output of the completeness scorer.
type CompletenessReport struct {
	CompletionPercentage float64         `json:"completion_percentage"`
	SectionBreakdown     []SectionResult `json:"section_breakdown"`
	MissingSections      []string        `json:"missing_sections"`
}
