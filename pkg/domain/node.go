package domain

// Node represents a logical unit in a design graph.
// Identity is the ID; labels may repeat.
type Node struct {
	ID    string `json:"id" yaml:"id" mapstructure:"id"`
	Kind  Kind   `json:"type" yaml:"type" mapstructure:"type"` // activity | output | outcome | impact
	Label string `json:"label" yaml:"label" mapstructure:"label"`
}

// Edge is a directed link between two nodes. There is no implicit reverse.
// Self-loops and duplicate edges are accepted as-is.
type Edge struct {
	Source string `json:"source" yaml:"source" mapstructure:"source"`
	Target string `json:"target" yaml:"target" mapstructure:"target"`
}
