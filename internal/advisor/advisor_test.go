package advisor_test

import (
	"testing"

	"github.com/aretw0/logframe/internal/advisor"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Run("FLN startup gets both patterns", func(t *testing.T) {
		profile := domain.OrganizationProfile{
			Name:          "Read India",
			Geography:     domain.Geography{State: "Bihar"},
			ThematicFocus: []string{"FLN", "Career Readiness"},
			MaturityLevel: "Startup",
		}
		challenges := []domain.Challenge{{Challenge: "Teacher vacancies", Reason: "High PTR"}}

		a := advisor.Analyze(profile, challenges)

		assert.Equal(t, advisor.TemplateFLN, a.Recommendation.TemplateKey)
		require.Len(t, a.Patterns, 2)
		assert.Equal(t, "Teacher Coaching + Classroom Observation", a.Patterns[0].Name)
		assert.Equal(t, "Pilot → Iterate → Scale", a.Patterns[1].Name)
		assert.Equal(t, challenges, a.Challenges)
	})

	t.Run("Generic template and no lookups", func(t *testing.T) {
		a := advisor.Analyze(domain.OrganizationProfile{ThematicFocus: []string{"Health"}, MaturityLevel: "scaling"}, nil)

		assert.Equal(t, advisor.TemplateGeneric, a.Recommendation.TemplateKey)
		assert.Empty(t, a.Patterns)
		assert.NotNil(t, a.Challenges)
		assert.Empty(t, a.Challenges)
	})
}

func TestRecommend(t *testing.T) {
	assert.Equal(t, advisor.TemplateCareer, advisor.Recommend([]string{"career readiness"}).TemplateKey)
	assert.Equal(t, advisor.TemplateGeneric, advisor.Recommend([]string{"fln literacy"}).TemplateKey, "themes match whole entries")
}
