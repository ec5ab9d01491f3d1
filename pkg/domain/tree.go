package domain

// CoreProblemID is the fixed ID of the problem tree hub.
const CoreProblemID = "P1"

// SystemicEffectLabel is appended as the last effect of every problem tree.
const SystemicEffectLabel = "Limited long-term systemic impact"

// TreeNode is a labelled leaf or hub of a problem tree.
type TreeNode struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// ProblemTree is the fixed three-tier causes -> core problem -> effects structure.
// IDs are positional and only stable within one build call.
type ProblemTree struct {
	Causes      []TreeNode `json:"causes" yaml:"causes"`
	CoreProblem TreeNode   `json:"core_problem" yaml:"core_problem"`
	Effects     []TreeNode `json:"effects" yaml:"effects"`
}

// RootCause is a suggested cause of the core problem.
type RootCause struct {
	Cause     string `json:"cause" yaml:"cause" mapstructure:"cause"`
	Rationale string `json:"rationale,omitempty" yaml:"rationale,omitempty" mapstructure:"rationale"`
}
