package domain

import "strings"

// EcosystemPattern is the reference problem pattern commonly seen for a theme.
type EcosystemPattern struct {
	Theme              string   `json:"theme" yaml:"theme" mapstructure:"theme"`
	CoreProblemPattern string   `json:"core_problem_pattern" yaml:"core_problem_pattern" mapstructure:"core_problem_pattern"`
	CommonEffects      []string `json:"common_effects" yaml:"common_effects" mapstructure:"common_effects"`
}

// PathwayPattern lists the outputs and outcomes successful programs of a theme usually carry.
type PathwayPattern struct {
	Theme    string   `json:"theme" yaml:"theme" mapstructure:"theme"`
	Outputs  []string `json:"outputs" yaml:"outputs" mapstructure:"outputs"`
	Outcomes []string `json:"outcomes" yaml:"outcomes" mapstructure:"outcomes"`
}

// Challenge is a known education challenge of a state, with the reason it matters.
type Challenge struct {
	Challenge string `json:"challenge" yaml:"challenge" mapstructure:"challenge"`
	Reason    string `json:"reason" yaml:"reason" mapstructure:"reason"`
}

// IndicatorScope selects which family of indicator templates a lookup targets.
type IndicatorScope string

const (
	ScopeStudentOutcome IndicatorScope = "student_outcome"
	ScopePracticeChange IndicatorScope = "practice_change"
)

// IndicatorKey addresses a set of indicator templates.
// StakeholderID is only meaningful for practice_change templates.
type IndicatorKey struct {
	Scope         IndicatorScope `json:"type" yaml:"type" mapstructure:"type"`
	Theme         string         `json:"theme" yaml:"theme" mapstructure:"theme"`
	StakeholderID string         `json:"stakeholder_id,omitempty" yaml:"stakeholder_id,omitempty" mapstructure:"stakeholder_id"`
}

// ReferenceData is a complete, serialisable set of lookup tables.
// File, loam and redis adapters all hydrate or seed from it.
type ReferenceData struct {
	EcosystemPatterns  []EcosystemPattern    `json:"ecosystem_patterns" yaml:"ecosystem_patterns"`
	PathwayPatterns    []PathwayPattern      `json:"toc_patterns" yaml:"toc_patterns"`
	StateChallenges    []StateChallenges     `json:"state_challenges" yaml:"state_challenges"`
	DistrictChallenges []DistrictChallenges  `json:"district_challenges" yaml:"district_challenges"`
	IndicatorTemplates []IndicatorTemplates  `json:"indicator_templates" yaml:"indicator_templates"`
	Methodologies      []Methodology         `json:"methodology_library" yaml:"methodology_library"`
	Stakeholders       []Stakeholder         `json:"stakeholder_master" yaml:"stakeholder_master"`
	PracticeTemplates  []PracticeTemplate    `json:"practice_master" yaml:"practice_master"`
	Competencies       []CompetencyFramework `json:"competency_frameworks" yaml:"competency_frameworks"`
	PolicyReferences   []string              `json:"policy_references" yaml:"policy_references"`
}

// StateChallenges groups the challenges recorded for one state.
type StateChallenges struct {
	State      string      `json:"state" yaml:"state" mapstructure:"state"`
	Challenges []Challenge `json:"education_challenges" yaml:"education_challenges" mapstructure:"education_challenges"`
}

// DistrictChallenges groups the challenges recorded for one district of a state.
type DistrictChallenges struct {
	State      string   `json:"state" yaml:"state" mapstructure:"state"`
	District   string   `json:"district" yaml:"district" mapstructure:"district"`
	Challenges []string `json:"challenges" yaml:"challenges" mapstructure:"challenges"`
}

// IndicatorTemplates binds a key to its template strings.
type IndicatorTemplates struct {
	IndicatorKey `yaml:",inline" mapstructure:",squash"`
	Templates    []string `json:"indicator_templates" yaml:"indicator_templates" mapstructure:"indicator_templates"`
}

// Methodology is a delivery model from the methodology library.
// Geographies hold region keys; "all" matches every state.
type Methodology struct {
	ID               string     `json:"methodology_id" yaml:"methodology_id" mapstructure:"methodology_id"`
	Name             string     `json:"name" yaml:"name" mapstructure:"name"`
	Theme            string     `json:"theme" yaml:"theme" mapstructure:"theme"`
	Geographies      []string   `json:"geographies" yaml:"geographies" mapstructure:"geographies"`
	BudgetRangeLakhs [2]float64 `json:"budget_range_lakhs" yaml:"budget_range_lakhs" mapstructure:"budget_range_lakhs"`
	Components       []string   `json:"components" yaml:"components" mapstructure:"components"`
}

// AllGeographies marks a methodology usable in any state.
const AllGeographies = "all"

// ComponentUsage names a program component and the methodologies that use it.
type ComponentUsage struct {
	Component string   `json:"component"`
	UsedIn    []string `json:"used_in"`
}

// Stakeholder is a stakeholder group from the stakeholder master.
type Stakeholder struct {
	ID     string   `json:"stakeholder_id" yaml:"stakeholder_id" mapstructure:"stakeholder_id"`
	Name   string   `json:"name" yaml:"name" mapstructure:"name"`
	Themes []string `json:"themes" yaml:"themes" mapstructure:"themes"`
}

// PracticeTemplate holds the typical current and desired practices of a stakeholder for a theme.
type PracticeTemplate struct {
	StakeholderID    string   `json:"stakeholder_id" yaml:"stakeholder_id" mapstructure:"stakeholder_id"`
	Theme            string   `json:"theme" yaml:"theme" mapstructure:"theme"`
	CurrentPractices []string `json:"current_practices" yaml:"current_practices" mapstructure:"current_practices"`
	DesiredPractices []string `json:"desired_practices" yaml:"desired_practices" mapstructure:"desired_practices"`
}

// PracticeSuggestions is what a practice template offers a stakeholder.
type PracticeSuggestions struct {
	SuggestedCurrent []string `json:"suggested_current"`
	SuggestedDesired []string `json:"suggested_desired"`
}

// CompetencyFramework lists the competencies a theme targets for a grade range.
type CompetencyFramework struct {
	Theme        string   `json:"theme" yaml:"theme" mapstructure:"theme"`
	GradeRange   string   `json:"grade_range" yaml:"grade_range" mapstructure:"grade_range"`
	Competencies []string `json:"competencies" yaml:"competencies" mapstructure:"competencies"`
}

// RegionKey normalizes a state or district name for lookups.
// Themes are matched verbatim.
func RegionKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
