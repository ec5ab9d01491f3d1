package tests

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/logframe/pkg/domain"
	"github.com/aretw0/logframe/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CatalogContractTest verifies that a catalog seeded with Fixture complies with ports.ReferenceCatalog.
func CatalogContractTest(t *testing.T, catalog ports.ReferenceCatalog) {
	t.Helper()
	ctx := context.Background()

	t.Run("EcosystemPattern", func(t *testing.T) {
		p, err := catalog.EcosystemPattern(ctx, "FLN")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "foundational literacy", p.CoreProblemPattern)
		assert.Equal(t, []string{"Learning loss compounds", "Early dropout"}, p.CommonEffects)

		missing, err := catalog.EcosystemPattern(ctx, "Career Readiness")
		require.NoError(t, err, "absent reference data is not an error")
		assert.Nil(t, missing)
	})

	t.Run("PathwayPattern", func(t *testing.T) {
		p, err := catalog.PathwayPattern(ctx, "FLN")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, []string{"Teachers trained"}, p.Outputs)
		assert.Equal(t, []string{"Improved reading fluency"}, p.Outcomes)

		missing, err := catalog.PathwayPattern(ctx, "fln")
		require.NoError(t, err)
		assert.Nil(t, missing, "themes match verbatim")
	})

	t.Run("StateChallenges", func(t *testing.T) {
		c, err := catalog.StateChallenges(ctx, "BIHAR")
		require.NoError(t, err)
		assert.Equal(t, []domain.Challenge{{Challenge: "Teacher vacancies", Reason: "High pupil-teacher ratio"}}, c)

		none, err := catalog.StateChallenges(ctx, "Goa")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("DistrictChallenges", func(t *testing.T) {
		c, err := catalog.DistrictChallenges(ctx, "bihar", " gaya")
		require.NoError(t, err)
		assert.Equal(t, []string{"Seasonal migration"}, c)

		none, err := catalog.DistrictChallenges(ctx, "Bihar", "Patna")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("IndicatorTemplates", func(t *testing.T) {
		out, err := catalog.IndicatorTemplates(ctx, domain.IndicatorKey{Scope: domain.ScopeStudentOutcome, Theme: "FLN"})
		require.NoError(t, err)
		assert.Equal(t, []string{"% of students reading at grade level", "Average ORF (wpm)"}, out)

		practice, err := catalog.IndicatorTemplates(ctx, domain.IndicatorKey{Scope: domain.ScopePracticeChange, Theme: "FLN", StakeholderID: "TCH"})
		require.NoError(t, err)
		assert.Equal(t, []string{"% of teachers using structured pedagogy"}, practice)

		none, err := catalog.IndicatorTemplates(ctx, domain.IndicatorKey{Scope: domain.ScopePracticeChange, Theme: "FLN", StakeholderID: "HM"})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Methodologies", func(t *testing.T) {
		out, err := catalog.Methodologies(ctx, "FLN")
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "M1", out[0].ID)
		assert.Equal(t, "Teacher Coaching", out[0].Name)
		assert.Equal(t, []string{"bihar", "uttar pradesh"}, out[0].Geographies)
		assert.Equal(t, [2]float64{10, 50}, out[0].BudgetRangeLakhs)
		assert.Equal(t, []string{"Classroom observation", "Coaching cycles"}, out[0].Components)
		assert.Equal(t, "M2", out[1].ID)

		none, err := catalog.Methodologies(ctx, "WASH")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Stakeholders", func(t *testing.T) {
		out, err := catalog.Stakeholders(ctx)
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, []string{"TCH", "HM", "EMP"}, []string{out[0].ID, out[1].ID, out[2].ID})
		assert.Equal(t, []string{"FLN", "Career Readiness"}, out[1].Themes)
	})

	t.Run("PracticeTemplate", func(t *testing.T) {
		p, err := catalog.PracticeTemplate(ctx, "TCH", "FLN")
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, []string{"Lecture-based teaching"}, p.CurrentPractices)
		assert.Equal(t, []string{"Structured pedagogy with level-based groups"}, p.DesiredPractices)

		missing, err := catalog.PracticeTemplate(ctx, "HM", "FLN")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Competencies", func(t *testing.T) {
		out, err := catalog.Competencies(ctx, "FLN", "1-3")
		require.NoError(t, err)
		assert.Equal(t, []string{"Reads grade-level text with comprehension", "Solves two-digit addition"}, out)

		none, err := catalog.Competencies(ctx, "FLN", "6-8")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("PolicyReferences", func(t *testing.T) {
		out, err := catalog.PolicyReferences(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"NEP 2020", "NIPUN Bharat Mission Guidelines"}, out)
	})
}

// RecordStoreContractTest verifies that an empty store complies with ports.RecordStore.
func RecordStoreContractTest(t *testing.T, store ports.RecordStore) {
	t.Helper()
	ctx := context.Background()
	org := "contract-org-" + time.Now().Format("20060102150405")
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Record and read back in order", func(t *testing.T) {
		require.NoError(t, store.Record(ctx, domain.Record{
			Operation:      domain.OpScoreCompleteness,
			OrganizationID: org,
			Result:         map[string]any{"completion_percentage": 42.5},
			EvaluatedAt:    base,
		}))
		require.NoError(t, store.Record(ctx, domain.Record{
			Operation:      domain.OpScoreQuality,
			OrganizationID: org,
			Theme:          "FLN",
			Result:         map[string]any{"quality_score": 92},
			EvaluatedAt:    base.Add(time.Minute),
		}))

		recs, err := store.Records(ctx, org)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, domain.OpScoreCompleteness, recs[0].Operation)
		assert.Equal(t, domain.OpScoreQuality, recs[1].Operation)
		assert.Equal(t, "FLN", recs[1].Theme)
		assert.True(t, recs[0].EvaluatedAt.Equal(base))
		assert.NotNil(t, recs[0].Result)
	})

	t.Run("Other organizations are isolated", func(t *testing.T) {
		recs, err := store.Records(ctx, "other-"+org)
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}
