// Package loam reads reference data from a directory of Markdown (or JSON/YAML)
// documents managed by Loam. Each document describes one catalog entry in its
// frontmatter; the body is free-form notes for authors.
//
//	---
//	kind: ecosystem_pattern
//	theme: FLN
//	core_problem_pattern: foundational literacy
//	common_effects: [Learning loss compounds]
//	---
//	Notes from the 2024 program review.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/aretw0/logframe/pkg/adapters/memory"
	"github.com/aretw0/logframe/pkg/domain"
)

// Library adapts a Loam repository into reference data.
type Library struct {
	Repo *loam.TypedRepository[EntryMetadata]
}

// New wraps an existing repository.
func New(repo core.Repository) *Library {
	return &Library{Repo: loam.NewTypedRepository[EntryMetadata](repo)}
}

// Open initializes a strict, read-only Loam repository at dir.
func Open(dir string) (*Library, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(repo), nil
}

// Load collects every document into ReferenceData in document ID order.
// Documents without a theme take it from their file name. An unknown kind is
// an error naming the document.
func (l *Library) Load(ctx context.Context) (domain.ReferenceData, error) {
	var data domain.ReferenceData

	docs, err := l.Repo.List(ctx)
	if err != nil {
		return data, fmt.Errorf("loam list failed: %w", err)
	}
	slices.SortFunc(docs, func(a, b *loam.DocumentModel[EntryMetadata]) int {
		return strings.Compare(a.ID, b.ID)
	})

	for _, doc := range docs {
		meta := doc.Data
		theme := meta.Theme
		if theme == "" {
			theme = trimExtension(filepath.Base(doc.ID))
		}

		switch meta.Kind {
		case KindEcosystemPattern:
			data.EcosystemPatterns = append(data.EcosystemPatterns, domain.EcosystemPattern{
				Theme:              theme,
				CoreProblemPattern: meta.CoreProblemPattern,
				CommonEffects:      meta.CommonEffects,
			})
		case KindPathwayPattern:
			data.PathwayPatterns = append(data.PathwayPatterns, domain.PathwayPattern{
				Theme:    theme,
				Outputs:  meta.Outputs,
				Outcomes: meta.Outcomes,
			})
		case KindStateChallenges:
			data.StateChallenges = append(data.StateChallenges, domain.StateChallenges{
				State:      meta.State,
				Challenges: meta.EducationChallenges,
			})
		case KindDistrictChallenges:
			data.DistrictChallenges = append(data.DistrictChallenges, domain.DistrictChallenges{
				State:      meta.State,
				District:   meta.District,
				Challenges: meta.Challenges,
			})
		case KindIndicatorTemplates:
			data.IndicatorTemplates = append(data.IndicatorTemplates, domain.IndicatorTemplates{
				IndicatorKey: domain.IndicatorKey{
					Scope:         domain.IndicatorScope(meta.Scope),
					Theme:         theme,
					StakeholderID: meta.StakeholderID,
				},
				Templates: meta.Templates,
			})
		case KindMethodology:
			if len(meta.BudgetRangeLakhs) != 2 {
				return data, fmt.Errorf("document '%s' needs a [min, max] budget_range_lakhs", doc.ID)
			}
			data.Methodologies = append(data.Methodologies, domain.Methodology{
				ID:               meta.MethodologyID,
				Name:             meta.Name,
				Theme:            theme,
				Geographies:      meta.Geographies,
				BudgetRangeLakhs: [2]float64{meta.BudgetRangeLakhs[0], meta.BudgetRangeLakhs[1]},
				Components:       meta.Components,
			})
		case KindStakeholder:
			data.Stakeholders = append(data.Stakeholders, domain.Stakeholder{
				ID:     meta.StakeholderID,
				Name:   meta.Name,
				Themes: meta.Themes,
			})
		case KindPracticeTemplate:
			data.PracticeTemplates = append(data.PracticeTemplates, domain.PracticeTemplate{
				StakeholderID:    meta.StakeholderID,
				Theme:            theme,
				CurrentPractices: meta.CurrentPractices,
				DesiredPractices: meta.DesiredPractices,
			})
		case KindCompetencies:
			data.Competencies = append(data.Competencies, domain.CompetencyFramework{
				Theme:        theme,
				GradeRange:   meta.GradeRange,
				Competencies: meta.Competencies,
			})
		case KindPolicyReference:
			data.PolicyReferences = append(data.PolicyReferences, meta.Reference)
		default:
			return data, fmt.Errorf("document '%s' has unknown kind %q", doc.ID, meta.Kind)
		}
	}

	return data, nil
}

// NewCatalog opens dir and indexes it into an in-memory catalog.
func NewCatalog(ctx context.Context, dir string) (*memory.Catalog, error) {
	lib, err := Open(dir)
	if err != nil {
		return nil, err
	}
	data, err := lib.Load(ctx)
	if err != nil {
		return nil, err
	}
	return memory.NewCatalog(data), nil
}

func trimExtension(id string) string {
	if ext := filepath.Ext(id); ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
