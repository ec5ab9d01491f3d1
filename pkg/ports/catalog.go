package ports

import (
	"context"

	"github.com/aretw0/logframe/pkg/domain"
)

// ReferenceCatalog provides the reference lookups the engine enriches its results with.
// State and district arguments are compared after domain.RegionKey; themes verbatim.
type ReferenceCatalog interface {
	// EcosystemPattern returns the problem pattern of a theme, or nil.
	EcosystemPattern(ctx context.Context, theme string) (*domain.EcosystemPattern, error)

	// PathwayPattern returns the expected outputs and outcomes of a theme, or nil.
	PathwayPattern(ctx context.Context, theme string) (*domain.PathwayPattern, error)

	// StateChallenges returns the known education challenges of a state.
	StateChallenges(ctx context.Context, state string) ([]domain.Challenge, error)

	// DistrictChallenges returns the known challenges of one district.
	DistrictChallenges(ctx context.Context, state, district string) ([]string, error)

	// IndicatorTemplates returns the templates registered for key.
	IndicatorTemplates(ctx context.Context, key domain.IndicatorKey) ([]string, error)

	// Methodologies returns the library entries of a theme in library order.
	Methodologies(ctx context.Context, theme string) ([]domain.Methodology, error)

	// Stakeholders returns the whole stakeholder master in order.
	Stakeholders(ctx context.Context) ([]domain.Stakeholder, error)

	// PracticeTemplate returns the practices of a stakeholder for a theme, or nil.
	PracticeTemplate(ctx context.Context, stakeholderID, theme string) (*domain.PracticeTemplate, error)

	// Competencies returns the competencies of a theme for a grade range.
	Competencies(ctx context.Context, theme, gradeRange string) ([]string, error)

	// PolicyReferences returns every policy reference in order.
	PolicyReferences(ctx context.Context) ([]string, error)
}
