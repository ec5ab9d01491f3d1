package stakeholder_test

import (
	"testing"

	"github.com/aretw0/logframe/internal/stakeholder"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	all := []domain.Stakeholder{
		{ID: "TCH", Themes: []string{"FLN"}},
		{ID: "HM", Themes: []string{"FLN", "Career Readiness"}},
		{ID: "EMP", Themes: []string{"Career Readiness"}},
	}

	assert.Equal(t, []string{"TCH", "HM"}, stakeholder.Recommend(all, "FLN"))
	assert.Equal(t, []string{"HM", "EMP"}, stakeholder.Recommend(all, "Career Readiness"))

	t.Run("Themes match verbatim", func(t *testing.T) {
		got := stakeholder.Recommend(all, "fln")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestSuggest(t *testing.T) {
	got := stakeholder.Suggest(&domain.PracticeTemplate{
		CurrentPractices: []string{"Rote reading"},
		DesiredPractices: []string{"Phonics lessons"},
	})
	assert.Equal(t, []string{"Rote reading"}, got.SuggestedCurrent)
	assert.Equal(t, []string{"Phonics lessons"}, got.SuggestedDesired)

	t.Run("No template suggests empty lists", func(t *testing.T) {
		got := stakeholder.Suggest(nil)
		assert.Equal(t, domain.PracticeSuggestions{SuggestedCurrent: []string{}, SuggestedDesired: []string{}}, got)
	})
}
