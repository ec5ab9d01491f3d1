package memory

import (
	"context"
	"slices"

	"github.com/aretw0/logframe/pkg/domain"
)

// Catalog implements ports.ReferenceCatalog over in-memory tables.
// It is read-only after construction and safe for concurrent use.
type Catalog struct {
	ecosystem  map[string]domain.EcosystemPattern
	pathways   map[string]domain.PathwayPattern
	states     map[string][]domain.Challenge
	districts  map[[2]string][]string
	indicators map[domain.IndicatorKey][]string
	methods    map[string][]domain.Methodology
	people     []domain.Stakeholder
	practices  map[[2]string]domain.PracticeTemplate
	competency map[[2]string][]string
	policies   []string
}

// NewCatalog indexes data. Later entries win on duplicate keys.
func NewCatalog(data domain.ReferenceData) *Catalog {
	c := &Catalog{
		ecosystem:  make(map[string]domain.EcosystemPattern),
		pathways:   make(map[string]domain.PathwayPattern),
		states:     make(map[string][]domain.Challenge),
		districts:  make(map[[2]string][]string),
		indicators: make(map[domain.IndicatorKey][]string),
		methods:    make(map[string][]domain.Methodology),
		practices:  make(map[[2]string]domain.PracticeTemplate),
		competency: make(map[[2]string][]string),
		people:     slices.Clone(data.Stakeholders),
		policies:   slices.Clone(data.PolicyReferences),
	}
	for _, p := range data.EcosystemPatterns {
		c.ecosystem[p.Theme] = p
	}
	for _, p := range data.PathwayPatterns {
		c.pathways[p.Theme] = p
	}
	for _, s := range data.StateChallenges {
		c.states[domain.RegionKey(s.State)] = s.Challenges
	}
	for _, d := range data.DistrictChallenges {
		c.districts[districtKey(d.State, d.District)] = d.Challenges
	}
	for _, it := range data.IndicatorTemplates {
		c.indicators[it.IndicatorKey] = it.Templates
	}
	for _, m := range data.Methodologies {
		c.methods[m.Theme] = append(c.methods[m.Theme], m)
	}
	for _, p := range data.PracticeTemplates {
		c.practices[[2]string{p.StakeholderID, p.Theme}] = p
	}
	for _, f := range data.Competencies {
		c.competency[[2]string{f.Theme, f.GradeRange}] = f.Competencies
	}
	return c
}

func districtKey(state, district string) [2]string {
	return [2]string{domain.RegionKey(state), domain.RegionKey(district)}
}

// EcosystemPattern returns a copy of the pattern for theme, or nil.
func (c *Catalog) EcosystemPattern(_ context.Context, theme string) (*domain.EcosystemPattern, error) {
	p, ok := c.ecosystem[theme]
	if !ok {
		return nil, nil
	}
	p.CommonEffects = slices.Clone(p.CommonEffects)
	return &p, nil
}

// PathwayPattern returns a copy of the pattern for theme, or nil.
func (c *Catalog) PathwayPattern(_ context.Context, theme string) (*domain.PathwayPattern, error) {
	p, ok := c.pathways[theme]
	if !ok {
		return nil, nil
	}
	p.Outputs = slices.Clone(p.Outputs)
	p.Outcomes = slices.Clone(p.Outcomes)
	return &p, nil
}

func (c *Catalog) StateChallenges(_ context.Context, state string) ([]domain.Challenge, error) {
	return slices.Clone(c.states[domain.RegionKey(state)]), nil
}

func (c *Catalog) DistrictChallenges(_ context.Context, state, district string) ([]string, error) {
	return slices.Clone(c.districts[districtKey(state, district)]), nil
}

func (c *Catalog) IndicatorTemplates(_ context.Context, key domain.IndicatorKey) ([]string, error) {
	return slices.Clone(c.indicators[key]), nil
}

// Methodologies returns copies of the library entries of theme.
func (c *Catalog) Methodologies(_ context.Context, theme string) ([]domain.Methodology, error) {
	src := c.methods[theme]
	if len(src) == 0 {
		return nil, nil
	}
	out := make([]domain.Methodology, len(src))
	for i, m := range src {
		m.Geographies = slices.Clone(m.Geographies)
		m.Components = slices.Clone(m.Components)
		out[i] = m
	}
	return out, nil
}

func (c *Catalog) Stakeholders(_ context.Context) ([]domain.Stakeholder, error) {
	if len(c.people) == 0 {
		return nil, nil
	}
	out := make([]domain.Stakeholder, len(c.people))
	for i, p := range c.people {
		p.Themes = slices.Clone(p.Themes)
		out[i] = p
	}
	return out, nil
}

// PracticeTemplate returns a copy of the template for the pair, or nil.
func (c *Catalog) PracticeTemplate(_ context.Context, stakeholderID, theme string) (*domain.PracticeTemplate, error) {
	p, ok := c.practices[[2]string{stakeholderID, theme}]
	if !ok {
		return nil, nil
	}
	p.CurrentPractices = slices.Clone(p.CurrentPractices)
	p.DesiredPractices = slices.Clone(p.DesiredPractices)
	return &p, nil
}

func (c *Catalog) Competencies(_ context.Context, theme, gradeRange string) ([]string, error) {
	return slices.Clone(c.competency[[2]string{theme, gradeRange}]), nil
}

func (c *Catalog) PolicyReferences(_ context.Context) ([]string, error) {
	return slices.Clone(c.policies), nil
}
