package domain

// Geography locates an organization.
type Geography struct {
	State    string `json:"state" yaml:"state" mapstructure:"state"`
	District string `json:"district,omitempty" yaml:"district,omitempty" mapstructure:"district"`
	Block    string `json:"block,omitempty" yaml:"block,omitempty" mapstructure:"block"`
}

// OrganizationProfile is the subset of an organization's profile the context advisor reads.
type OrganizationProfile struct {
	Name          string    `json:"organization_name" yaml:"organization_name" mapstructure:"organization_name"`
	Geography     Geography `json:"geography" yaml:"geography" mapstructure:"geography"`
	ThematicFocus []string  `json:"thematic_focus" yaml:"thematic_focus" mapstructure:"thematic_focus"`
	MaturityLevel string    `json:"maturity_level" yaml:"maturity_level" mapstructure:"maturity_level"`
}

// TemplateRecommendation names the LFA template best suited to a profile.
type TemplateRecommendation struct {
	TemplateKey string `json:"template_key"`
	Rationale   string `json:"rationale"`
}

// ProgramPattern is a delivery pattern that worked for similar programs.
type ProgramPattern struct {
	Name   string `json:"pattern_name"`
	Reason string `json:"relevance_reason"`
}

// ContextAnalysis is the output of the context advisor.
type ContextAnalysis struct {
	Recommendation TemplateRecommendation `json:"lfa_recommendation"`
	Patterns       []ProgramPattern       `json:"similar_program_patterns"`
	Challenges     []Challenge            `json:"potential_challenges"`
}
