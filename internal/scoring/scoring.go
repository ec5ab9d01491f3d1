// Package scoring evaluates design snapshots against a weighted rubric.
package scoring

import (
	"math"

	"github.com/aretw0/logframe/internal/dto"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/aretw0/logframe/pkg/rubric"
)

// Score computes the completeness report of snapshot.
// Sections are reported in rubric order; absent, empty or non-record
// sections count as missing.
func Score(snapshot domain.Snapshot, r rubric.Rubric) domain.CompletenessReport {
	report := domain.CompletenessReport{
		SectionBreakdown: make([]domain.SectionResult, 0, len(r.Sections)),
		MissingSections:  []string{},
	}

	var total float64
	for _, section := range r.Sections {
		result := scoreSection(snapshot, section)
		if result.Status == domain.StatusMissing {
			report.MissingSections = append(report.MissingSections, section.Name)
		}
		total += result.Score
		report.SectionBreakdown = append(report.SectionBreakdown, result)
	}

	report.CompletionPercentage = round2(total)
	return report
}

func scoreSection(snapshot domain.Snapshot, section rubric.Section) domain.SectionResult {
	result := domain.SectionResult{
		Section: section.Name,
		Status:  domain.StatusMissing,
		Weight:  section.Weight,
	}

	content, ok := dto.Section(snapshot, section.Name)
	if !ok || len(content) == 0 || len(section.RequiredFields) == 0 {
		return result
	}

	present := 0
	missing := []string{}
	for _, field := range section.RequiredFields {
		if dto.IsEmpty(content[field]) {
			missing = append(missing, field)
			continue
		}
		present++
	}

	ratio := float64(present) / float64(len(section.RequiredFields))
	result.Score = round2(section.Weight * ratio)
	result.MissingFields = missing
	if present == len(section.RequiredFields) {
		result.Status = domain.StatusComplete
	} else {
		result.Status = domain.StatusPartial
	}
	return result
}

// round2 rounds half to even at two decimals.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
