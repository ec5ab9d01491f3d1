package domain_test

import (
	"testing"

	"github.com/aretw0/logframe/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph(t *testing.T) {
	nodes := []domain.Node{
		{ID: "a1", Kind: domain.KindActivity, Label: "Coach teachers"},
		{ID: "o1", Kind: domain.KindOutput, Label: "Teachers coached"},
		{ID: "o2", Kind: domain.KindOutput, Label: "Teachers coached"},
	}

	t.Run("Indexes Nodes And Groups Edges By Source", func(t *testing.T) {
		g, err := domain.NewGraph(nodes, []domain.Edge{
			{Source: "a1", Target: "o1"},
			{Source: "a1", Target: "o2"},
			{Source: "a1", Target: "o1"},
		})
		require.NoError(t, err)

		n, ok := g.Node("o2")
		assert.True(t, ok)
		assert.Equal(t, "Teachers coached", n.Label)

		out := g.Outgoing("a1")
		assert.Len(t, out, 3, "duplicate edges are kept")
		assert.Equal(t, "o2", out[1].Target)
		assert.Empty(t, g.Outgoing("o1"))
	})

	t.Run("Self Loops Are Accepted", func(t *testing.T) {
		_, err := domain.NewGraph(nodes, []domain.Edge{{Source: "a1", Target: "a1"}})
		assert.NoError(t, err)
	})

	t.Run("Unknown Target Fails", func(t *testing.T) {
		_, err := domain.NewGraph(nodes, []domain.Edge{{Source: "a1", Target: "ghost"}})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownReference)

		var refErr *domain.ReferenceError
		require.ErrorAs(t, err, &refErr)
		assert.Equal(t, "ghost", refErr.NodeID)
		assert.Equal(t, "a1", refErr.Edge.Source)
	})

	t.Run("Unknown Source Fails", func(t *testing.T) {
		_, err := domain.NewGraph(nodes, []domain.Edge{{Source: "ghost", Target: "a1"}})
		assert.ErrorIs(t, err, domain.ErrUnknownReference)
	})

	t.Run("Duplicate IDs Fail", func(t *testing.T) {
		dup := append([]domain.Node{}, nodes...)
		dup = append(dup, domain.Node{ID: "a1", Kind: domain.KindImpact})
		_, err := domain.NewGraph(dup, nil)
		assert.ErrorIs(t, err, domain.ErrDuplicateNode)
	})

	t.Run("Accessors Return Copies", func(t *testing.T) {
		g, err := domain.NewGraph(nodes, nil)
		require.NoError(t, err)

		got := g.Nodes()
		got[0].Label = "mutated"
		n, _ := g.Node("a1")
		assert.Equal(t, "Coach teachers", n.Label)
		assert.Equal(t, []string{"Coach teachers", "Teachers coached", "Teachers coached"}, g.Labels())
	})
}

func TestKind_Rank(t *testing.T) {
	tests := []struct {
		kind   domain.Kind
		rank   int
		inPath bool
	}{
		{domain.KindActivity, 0, true},
		{domain.KindOutput, 1, true},
		{domain.KindOutcome, 2, true},
		{domain.KindImpact, 3, true},
		{"cause", -1, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			rank, ok := tt.kind.Rank()
			assert.Equal(t, tt.rank, rank)
			assert.Equal(t, tt.inPath, ok)
			assert.Equal(t, tt.inPath, tt.kind.IsPathway())
		})
	}
}

func TestRegionKey(t *testing.T) {
	assert.Equal(t, "uttar pradesh", domain.RegionKey("  Uttar Pradesh "))
}
