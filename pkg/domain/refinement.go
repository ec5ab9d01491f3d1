package domain

// Problem statement issue types.
const (
	IssueVagueLanguage       = "vague_language"
	IssueSolutionBias        = "solution_bias"
	IssueMissingOutcomeFocus = "missing_outcome_focus"
	IssueUnclearSystemLevel  = "unclear_system_level"
)

// ProblemIssue is a weakness found in a problem statement.
type ProblemIssue struct {
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
}

// Refinement is the analysis of a raw problem statement.
type Refinement struct {
	ClarityScore     int            `json:"clarity_score"` // 1..5
	Issues           []ProblemIssue `json:"identified_issues"`
	RefinedStatement string         `json:"refined_problem_statement"`
	RootCauses       []RootCause    `json:"suggested_root_causes"`
}
