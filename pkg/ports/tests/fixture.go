package tests

import "github.com/aretw0/logframe/pkg/domain"

// Fixture returns the reference data every catalog contract run is seeded with.
// Region names are deliberately mixed-case.
func Fixture() domain.ReferenceData {
	return domain.ReferenceData{
		EcosystemPatterns: []domain.EcosystemPattern{{
			Theme:              "FLN",
			CoreProblemPattern: "foundational literacy",
			CommonEffects:      []string{"Learning loss compounds", "Early dropout"},
		}},
		PathwayPatterns: []domain.PathwayPattern{{
			Theme:    "FLN",
			Outputs:  []string{"Teachers trained"},
			Outcomes: []string{"Improved reading fluency"},
		}},
		StateChallenges: []domain.StateChallenges{{
			State:      "Bihar",
			Challenges: []domain.Challenge{{Challenge: "Teacher vacancies", Reason: "High pupil-teacher ratio"}},
		}},
		DistrictChallenges: []domain.DistrictChallenges{{
			State:      "Bihar",
			District:   "Gaya",
			Challenges: []string{"Seasonal migration"},
		}},
		IndicatorTemplates: []domain.IndicatorTemplates{
			{
				IndicatorKey: domain.IndicatorKey{Scope: domain.ScopeStudentOutcome, Theme: "FLN"},
				Templates:    []string{"% of students reading at grade level", "Average ORF (wpm)"},
			},
			{
				IndicatorKey: domain.IndicatorKey{Scope: domain.ScopePracticeChange, Theme: "FLN", StakeholderID: "TCH"},
				Templates:    []string{"% of teachers using structured pedagogy"},
			},
		},
		Methodologies: []domain.Methodology{
			{
				ID:               "M1",
				Name:             "Teacher Coaching",
				Theme:            "FLN",
				Geographies:      []string{"bihar", "uttar pradesh"},
				BudgetRangeLakhs: [2]float64{10, 50},
				Components:       []string{"Classroom observation", "Coaching cycles"},
			},
			{
				ID:               "M2",
				Name:             "Remedial Camps",
				Theme:            "FLN",
				Geographies:      []string{domain.AllGeographies},
				BudgetRangeLakhs: [2]float64{5, 20},
				Components:       []string{"Learning camps", "Classroom observation"},
			},
			{
				ID:               "M3",
				Name:             "Career Labs",
				Theme:            "Career Readiness",
				Geographies:      []string{domain.AllGeographies},
				BudgetRangeLakhs: [2]float64{20, 80},
				Components:       []string{"Mentoring"},
			},
		},
		Stakeholders: []domain.Stakeholder{
			{ID: "TCH", Name: "Teachers", Themes: []string{"FLN"}},
			{ID: "HM", Name: "Head Masters", Themes: []string{"FLN", "Career Readiness"}},
			{ID: "EMP", Name: "Employers", Themes: []string{"Career Readiness"}},
		},
		PracticeTemplates: []domain.PracticeTemplate{{
			StakeholderID:    "TCH",
			Theme:            "FLN",
			CurrentPractices: []string{"Lecture-based teaching"},
			DesiredPractices: []string{"Structured pedagogy with level-based groups"},
		}},
		Competencies: []domain.CompetencyFramework{{
			Theme:        "FLN",
			GradeRange:   "1-3",
			Competencies: []string{"Reads grade-level text with comprehension", "Solves two-digit addition"},
		}},
		PolicyReferences: []string{"NEP 2020", "NIPUN Bharat Mission Guidelines"},
	}
}
