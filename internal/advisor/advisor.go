// Package advisor recommends an LFA template and delivery patterns for an
// organization profile.
package advisor

import (
	"slices"
	"strings"

	"github.com/aretw0/logframe/pkg/domain"
)

// Template keys.
const (
	TemplateFLN     = "FLN_System_Strengthening"
	TemplateCareer  = "Youth_Career_Pathways"
	TemplateGeneric = "Education_Improvement_Generic"
)

const (
	themeFLN      = "fln"
	themeCareer   = "career readiness"
	maturityStart = "startup"
)

var (
	coachingPattern = domain.ProgramPattern{
		Name:   "Teacher Coaching + Classroom Observation",
		Reason: "Improves instructional quality and student literacy outcomes",
	}
	pilotPattern = domain.ProgramPattern{
		Name:   "Pilot → Iterate → Scale",
		Reason: "Minimizes risk and improves learning before expansion",
	}
)

// Analyze builds the context analysis of profile. challenges are the state
// challenges already looked up by the caller; nil means none were found.
func Analyze(profile domain.OrganizationProfile, challenges []domain.Challenge) domain.ContextAnalysis {
	themes := make([]string, len(profile.ThematicFocus))
	for i, t := range profile.ThematicFocus {
		themes[i] = strings.ToLower(t)
	}

	analysis := domain.ContextAnalysis{
		Recommendation: Recommend(themes),
		Patterns:       []domain.ProgramPattern{},
		Challenges:     []domain.Challenge{},
	}

	if slices.Contains(themes, themeFLN) {
		analysis.Patterns = append(analysis.Patterns, coachingPattern)
	}
	if strings.ToLower(profile.MaturityLevel) == maturityStart {
		analysis.Patterns = append(analysis.Patterns, pilotPattern)
	}
	analysis.Challenges = append(analysis.Challenges, challenges...)

	return analysis
}

// Recommend picks the template for lower-cased themes. FLN wins over career readiness.
func Recommend(themes []string) domain.TemplateRecommendation {
	switch {
	case slices.Contains(themes, themeFLN):
		return domain.TemplateRecommendation{
			TemplateKey: TemplateFLN,
			Rationale:   "FLN requires system-wide literacy improvement across grades and teachers",
		}
	case slices.Contains(themes, themeCareer):
		return domain.TemplateRecommendation{
			TemplateKey: TemplateCareer,
			Rationale:   "Career readiness needs multi-actor coordination and long-term outcomes",
		}
	default:
		return domain.TemplateRecommendation{
			TemplateKey: TemplateGeneric,
			Rationale:   "Suitable for multi-theme education interventions",
		}
	}
}
