// Package indicators proposes measurement indicators for outcomes and
// practice changes from reference templates.
package indicators

import (
	"fmt"

	"github.com/aretw0/logframe/pkg/domain"
)

// ForOutcomes assigns templates round-robin to outcomes. Without templates
// each outcome gets a percentage-achieving indicator.
func ForOutcomes(outcomes, templates []string) []domain.IndicatorSuggestion {
	return assign(outcomes, templates, "%% of students achieving '%s'")
}

// ForPractices does the same for the desired practices of one stakeholder.
func ForPractices(stakeholderID string, practices, templates []string) domain.PracticeIndicators {
	return domain.PracticeIndicators{
		StakeholderID: stakeholderID,
		Indicators:    assign(practices, templates, "%% adoption of practice: '%s'"),
	}
}

func assign(subjects, templates []string, fallback string) []domain.IndicatorSuggestion {
	out := make([]domain.IndicatorSuggestion, len(subjects))
	for i, s := range subjects {
		indicator := fmt.Sprintf(fallback, s)
		if len(templates) > 0 {
			indicator = templates[i%len(templates)]
		}
		out[i] = domain.IndicatorSuggestion{Subject: s, Indicator: indicator}
	}
	return out
}
