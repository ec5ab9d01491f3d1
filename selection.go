package logframe

import (
	"context"

	"github.com/aretw0/logframe/internal/methodology"
	"github.com/aretw0/logframe/internal/stakeholder"
	"github.com/aretw0/logframe/pkg/domain"
)

// MethodologyRequest describes where an organization works and what it can spend.
type MethodologyRequest struct {
	OrganizationID string  `json:"organization_id,omitempty" yaml:"organization_id"`
	Theme          string  `json:"theme" yaml:"theme"`
	State          string  `json:"state" yaml:"state"`
	BudgetLakhs    float64 `json:"budget_lakhs" yaml:"budget_lakhs"`
}

// MethodologySelection is the shortlist of methodologies with the components they draw on.
type MethodologySelection struct {
	Methodologies []domain.Methodology    `json:"methodologies"`
	Components    []domain.ComponentUsage `json:"component_library"`
}

// SelectMethodologies shortlists the theme's methodologies that run in the
// request's state within its budget.
func (e *Engine) SelectMethodologies(ctx context.Context, req MethodologyRequest) (*MethodologySelection, error) {
	ev := e.begin(ctx, domain.OpSelectMethodologies, req.OrganizationID, req.Theme)
	shortlist := methodology.Filter(ev.methodologies(req.Theme), req.State, req.BudgetLakhs)
	sel := &MethodologySelection{
		Methodologies: shortlist,
		Components:    methodology.ComponentLibrary(shortlist),
	}
	ev.done(sel, 0, nil)
	return sel, nil
}

// StakeholderSelection lists every stakeholder group and those recommended for a theme.
type StakeholderSelection struct {
	Available   []domain.Stakeholder `json:"available_stakeholders"`
	Recommended []string             `json:"recommended_stakeholders"`
}

// RecommendStakeholders returns the stakeholder master with the IDs of the
// groups that work on theme.
func (e *Engine) RecommendStakeholders(ctx context.Context, orgID, theme string) (*StakeholderSelection, error) {
	ev := e.begin(ctx, domain.OpSelectStakeholders, orgID, theme)
	all := ev.stakeholders()
	if all == nil {
		all = []domain.Stakeholder{}
	}
	sel := &StakeholderSelection{
		Available:   all,
		Recommended: stakeholder.Recommend(all, theme),
	}
	ev.done(sel, 0, nil)
	return sel, nil
}
