package logframe

import (
	"fmt"

	"github.com/aretw0/logframe/pkg/domain"
)

// Catalog lookups that degrade to "not found" on collaborator failure.

func (ev *evaluation) ecosystemPattern(theme string) *domain.EcosystemPattern {
	p, err := ev.e.catalog.EcosystemPattern(ev.ctx, theme)
	if err != nil {
		ev.lookupFailed("ecosystem:"+theme, err)
		return nil
	}
	return p
}

func (ev *evaluation) pathwayPattern(theme string) *domain.PathwayPattern {
	p, err := ev.e.catalog.PathwayPattern(ev.ctx, theme)
	if err != nil {
		ev.lookupFailed("toc:"+theme, err)
		return nil
	}
	return p
}

func (ev *evaluation) stateChallenges(state string) []domain.Challenge {
	c, err := ev.e.catalog.StateChallenges(ev.ctx, state)
	if err != nil {
		ev.lookupFailed("state:"+state, err)
		return nil
	}
	return c
}

func (ev *evaluation) districtChallenges(state, district string) []string {
	c, err := ev.e.catalog.DistrictChallenges(ev.ctx, state, district)
	if err != nil {
		ev.lookupFailed(fmt.Sprintf("district:%s/%s", state, district), err)
		return []string{}
	}
	if c == nil {
		return []string{}
	}
	return c
}

func (ev *evaluation) indicatorTemplates(key domain.IndicatorKey) []string {
	t, err := ev.e.catalog.IndicatorTemplates(ev.ctx, key)
	if err != nil {
		ev.lookupFailed(fmt.Sprintf("indicators:%s/%s/%s", key.Scope, key.Theme, key.StakeholderID), err)
		return nil
	}
	return t
}

func (ev *evaluation) methodologies(theme string) []domain.Methodology {
	m, err := ev.e.catalog.Methodologies(ev.ctx, theme)
	if err != nil {
		ev.lookupFailed("methodologies:"+theme, err)
		return nil
	}
	return m
}

func (ev *evaluation) stakeholders() []domain.Stakeholder {
	s, err := ev.e.catalog.Stakeholders(ev.ctx)
	if err != nil {
		ev.lookupFailed("stakeholders", err)
		return nil
	}
	return s
}

func (ev *evaluation) practiceTemplate(stakeholderID, theme string) *domain.PracticeTemplate {
	p, err := ev.e.catalog.PracticeTemplate(ev.ctx, stakeholderID, theme)
	if err != nil {
		ev.lookupFailed(fmt.Sprintf("practices:%s/%s", stakeholderID, theme), err)
		return nil
	}
	return p
}

func (ev *evaluation) competencies(theme, gradeRange string) []string {
	c, err := ev.e.catalog.Competencies(ev.ctx, theme, gradeRange)
	if err != nil {
		ev.lookupFailed(fmt.Sprintf("competencies:%s/%s", theme, gradeRange), err)
		return []string{}
	}
	if c == nil {
		return []string{}
	}
	return c
}

func (ev *evaluation) policyReferences() []string {
	p, err := ev.e.catalog.PolicyReferences(ev.ctx)
	if err != nil {
		ev.lookupFailed("policies", err)
		return []string{}
	}
	if p == nil {
		return []string{}
	}
	return p
}
