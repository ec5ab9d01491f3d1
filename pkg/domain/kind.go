package domain

// Kind names the layer a node belongs to.
// Change-pathway nodes use the four ordered kinds below; problem-tree
// nodes may carry any free-form label.
type Kind string

// Pathway kinds, in causal order.
const (
	KindActivity Kind = "activity"
	KindOutput   Kind = "output"
	KindOutcome  Kind = "outcome"
	KindImpact   Kind = "impact"
)

// PathwayKinds lists the required layers of a theory of change in rank order.
var PathwayKinds = []Kind{KindActivity, KindOutput, KindOutcome, KindImpact}

// Rank returns the position of k in the activity -> impact chain.
// ok is false for kinds outside the chain.
func (k Kind) Rank() (rank int, ok bool) {
	for i, pk := range PathwayKinds {
		if pk == k {
			return i, true
		}
	}
	return -1, false
}

// IsPathway reports whether k is one of the four change-pathway kinds.
func (k Kind) IsPathway() bool {
	_, ok := k.Rank()
	return ok
}
