// Package methodology narrows the methodology library to what an
// organization can run and collects the components those entries share.
package methodology

import (
	"slices"

	"github.com/aretw0/logframe/pkg/domain"
)

// Filter keeps the methodologies available in state whose budget range
// contains budgetLakhs. Both range bounds are inclusive. Library order is kept.
func Filter(methods []domain.Methodology, state string, budgetLakhs float64) []domain.Methodology {
	out := make([]domain.Methodology, 0, len(methods))
	for _, m := range methods {
		if availableIn(m, state) && withinBudget(m, budgetLakhs) {
			out = append(out, m)
		}
	}
	return out
}

func availableIn(m domain.Methodology, state string) bool {
	key := domain.RegionKey(state)
	for _, g := range m.Geographies {
		g = domain.RegionKey(g)
		if g == domain.AllGeographies || (key != "" && g == key) {
			return true
		}
	}
	return false
}

func withinBudget(m domain.Methodology, budget float64) bool {
	return m.BudgetRangeLakhs[0] <= budget && budget <= m.BudgetRangeLakhs[1]
}

// ComponentLibrary lists every component of methods in first-seen order,
// each with the names of the methodologies that use it.
func ComponentLibrary(methods []domain.Methodology) []domain.ComponentUsage {
	index := make(map[string]int)
	out := []domain.ComponentUsage{}
	for _, m := range methods {
		for _, c := range m.Components {
			i, ok := index[c]
			if !ok {
				i = len(out)
				index[c] = i
				out = append(out, domain.ComponentUsage{Component: c})
			}
			if !slices.Contains(out[i].UsedIn, m.Name) {
				out[i].UsedIn = append(out[i].UsedIn, m.Name)
			}
		}
	}
	return out
}
