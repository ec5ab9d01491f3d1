// Package stakeholder recommends stakeholder groups for a theme and the
// practices they typically start from and move to.
package stakeholder

import (
	"slices"

	"github.com/aretw0/logframe/pkg/domain"
)

// Recommend returns the IDs of the stakeholders that work on theme, in master order.
func Recommend(all []domain.Stakeholder, theme string) []string {
	out := []string{}
	for _, s := range all {
		if slices.Contains(s.Themes, theme) {
			out = append(out, s.ID)
		}
	}
	return out
}

// Suggest turns a practice template into suggestions. A nil template
// suggests nothing.
func Suggest(tpl *domain.PracticeTemplate) domain.PracticeSuggestions {
	s := domain.PracticeSuggestions{SuggestedCurrent: []string{}, SuggestedDesired: []string{}}
	if tpl == nil {
		return s
	}
	s.SuggestedCurrent = append(s.SuggestedCurrent, tpl.CurrentPractices...)
	s.SuggestedDesired = append(s.SuggestedDesired, tpl.DesiredPractices...)
	return s
}
