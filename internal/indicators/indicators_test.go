package indicators_test

import (
	"testing"

	"github.com/aretw0/logframe/internal/indicators"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestForOutcomes(t *testing.T) {
	t.Run("Templates rotate", func(t *testing.T) {
		got := indicators.ForOutcomes([]string{"a", "b", "c"}, []string{"T1", "T2"})
		assert.Equal(t, []domain.IndicatorSuggestion{
			{Subject: "a", Indicator: "T1"},
			{Subject: "b", Indicator: "T2"},
			{Subject: "c", Indicator: "T1"},
		}, got)
	})

	t.Run("Fallback without templates", func(t *testing.T) {
		got := indicators.ForOutcomes([]string{"Read at grade level"}, nil)
		assert.Equal(t, "% of students achieving 'Read at grade level'", got[0].Indicator)
	})

	t.Run("Duplicate outcomes keep their positions", func(t *testing.T) {
		got := indicators.ForOutcomes([]string{"x", "x"}, []string{"T1", "T2"})
		assert.Len(t, got, 2)
		assert.Equal(t, "T2", got[1].Indicator)
	})
}

func TestForPractices(t *testing.T) {
	got := indicators.ForPractices("TCH", []string{"Use leveled readers"}, nil)
	assert.Equal(t, "TCH", got.StakeholderID)
	assert.Equal(t, "% adoption of practice: 'Use leveled readers'", got.Indicators[0].Indicator)

	assert.Empty(t, indicators.ForPractices("TCH", nil, []string{"T"}).Indicators)
}
