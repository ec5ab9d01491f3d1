package loam

import "github.com/aretw0/logframe/pkg/domain"

// Entry kinds of a pattern library document.
const (
	KindEcosystemPattern   = "ecosystem_pattern"
	KindPathwayPattern     = "toc_pattern"
	KindStateChallenges    = "state_challenges"
	KindDistrictChallenges = "district_challenges"
	KindIndicatorTemplates = "indicator_templates"
	KindMethodology        = "methodology"
	KindStakeholder        = "stakeholder"
	KindPracticeTemplate   = "practice_template"
	KindCompetencies       = "competency_framework"
	KindPolicyReference    = "policy_reference"
)

// EntryMetadata is the frontmatter of one pattern library document.
// Which fields apply depends on Kind.
type EntryMetadata struct {
	Kind  string `json:"kind" mapstructure:"kind"`
	Theme string `json:"theme" mapstructure:"theme"`

	// ecosystem_pattern
	CoreProblemPattern string   `json:"core_problem_pattern" mapstructure:"core_problem_pattern"`
	CommonEffects      []string `json:"common_effects" mapstructure:"common_effects"`

	// toc_pattern
	Outputs  []string `json:"outputs" mapstructure:"outputs"`
	Outcomes []string `json:"outcomes" mapstructure:"outcomes"`

	// state_challenges and district_challenges
	State               string             `json:"state" mapstructure:"state"`
	District            string             `json:"district" mapstructure:"district"`
	EducationChallenges []domain.Challenge `json:"education_challenges" mapstructure:"education_challenges"`
	Challenges          []string           `json:"challenges" mapstructure:"challenges"`

	// indicator_templates
	Scope         string   `json:"type" mapstructure:"type"`
	StakeholderID string   `json:"stakeholder_id" mapstructure:"stakeholder_id"`
	Templates     []string `json:"indicator_templates" mapstructure:"indicator_templates"`

	// methodology and stakeholder
	Name             string    `json:"name" mapstructure:"name"`
	MethodologyID    string    `json:"methodology_id" mapstructure:"methodology_id"`
	Geographies      []string  `json:"geographies" mapstructure:"geographies"`
	BudgetRangeLakhs []float64 `json:"budget_range_lakhs" mapstructure:"budget_range_lakhs"`
	Components       []string  `json:"components" mapstructure:"components"`
	Themes           []string  `json:"themes" mapstructure:"themes"`

	// practice_template
	CurrentPractices []string `json:"current_practices" mapstructure:"current_practices"`
	DesiredPractices []string `json:"desired_practices" mapstructure:"desired_practices"`

	// competency_framework
	GradeRange   string   `json:"grade_range" mapstructure:"grade_range"`
	Competencies []string `json:"competencies" mapstructure:"competencies"`

	// policy_reference
	Reference string `json:"reference" mapstructure:"reference"`
}
