// Package refine scores the clarity of a raw problem statement, rewrites
// vague wording neutrally and infers layered root causes.
package refine

import (
	"fmt"
	"strings"

	"github.com/aretw0/logframe/pkg/domain"
)

const maxClarity = 5

type term struct {
	word string
	hint string
}

var vagueTerms = []term{
	{"lack of", "Specify what is lacking and to what extent"},
	{"poor", "Quantify or describe the quality gap"},
	{"low", "Clarify baseline or benchmark"},
	{"inadequate", "State what standards are not being met"},
	{"insufficient", "Mention compared to what requirement"},
}

var solutionTerms = []term{
	{"train", "Avoid prescribing solutions in the problem statement"},
	{"provide", "Focus on the problem, not the intervention"},
	{"implement", "Problem statements should be solution-neutral"},
	{"introduce", "Describe the gap, not the action"},
	{"conduct", "Actions belong in intervention design"},
}

// replacements share the order of vagueTerms.
var replacements = []term{
	{"lack of", "limited availability of"},
	{"poor", "suboptimal"},
	{"low", "below expected levels of"},
	{"inadequate", "not aligned with required standards"},
	{"insufficient", "not meeting the required threshold"},
}

var (
	outcomeTerms = []string{"learning outcomes", "achievement", "literacy", "numeracy"}
	systemTerms  = []string{"system", "policy", "governance", "administration"}
)

type causeRule struct {
	triggers []string
	causes   []domain.RootCause
}

var causeRules = []causeRule{
	{
		triggers: []string{"students", "children"},
		causes: []domain.RootCause{
			{Cause: "Foundational skill gaps from earlier grades", Rationale: "Learning deficits often accumulate due to weak early-grade instruction"},
			{Cause: "Limited opportunities for practice and reinforcement", Rationale: "Students require repeated exposure and feedback to master skills"},
		},
	},
	{
		triggers: []string{"teachers", "teaching"},
		causes: []domain.RootCause{
			{Cause: "Inconsistent instructional practices", Rationale: "Variation in pedagogy leads to uneven learning outcomes"},
			{Cause: "Limited ongoing academic support for teachers", Rationale: "Teachers often lack continuous coaching and feedback mechanisms"},
		},
	},
	{
		triggers: []string{"school", "headmaster", "leadership"},
		causes: []domain.RootCause{
			{Cause: "Weak instructional leadership at school level", Rationale: "School leaders play a critical role in setting academic priorities"},
		},
	},
	{
		triggers: systemTerms,
		causes: []domain.RootCause{
			{Cause: "Fragmented implementation across system layers", Rationale: "Misalignment between policy, administration, and classrooms reduces effectiveness"},
			{Cause: "Monitoring focused on compliance rather than learning", Rationale: "Systems often track inputs instead of learning quality and outcomes"},
		},
	},
}

var fallbackCause = domain.RootCause{
	Cause:     "Multi-level coordination gaps",
	Rationale: "Education challenges often arise from weak alignment across stakeholders",
}

// Refine analyses text. Term matching is case-insensitive substring search;
// the rewrite only replaces lower-case occurrences.
func Refine(text string) domain.Refinement {
	lower := strings.ToLower(text)
	score := maxClarity
	issues := []domain.ProblemIssue{}

	for _, t := range vagueTerms {
		if strings.Contains(lower, t.word) {
			issues = append(issues, domain.ProblemIssue{
				IssueType:   domain.IssueVagueLanguage,
				Description: fmt.Sprintf("Uses vague term '%s'. %s.", t.word, t.hint),
			})
			score--
		}
	}

	for _, t := range solutionTerms {
		if strings.Contains(lower, t.word) {
			issues = append(issues, domain.ProblemIssue{
				IssueType:   domain.IssueSolutionBias,
				Description: fmt.Sprintf("Contains solution-oriented term '%s'. %s.", t.word, t.hint),
			})
			score--
		}
	}

	if !containsAny(lower, outcomeTerms) {
		issues = append(issues, domain.ProblemIssue{
			IssueType:   domain.IssueMissingOutcomeFocus,
			Description: "Problem does not clearly describe the student-level outcome being affected",
		})
		score--
	}

	if !containsAny(lower, systemTerms) && !strings.Contains(lower, "students") {
		issues = append(issues, domain.ProblemIssue{
			IssueType:   domain.IssueUnclearSystemLevel,
			Description: "Problem does not specify whether the issue is at classroom, school, or system level",
		})
		score--
	}

	return domain.Refinement{
		ClarityScore:     max(1, score),
		Issues:           issues,
		RefinedStatement: rewrite(text),
		RootCauses:       inferCauses(lower),
	}
}

func rewrite(text string) string {
	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.word, r.hint)
	}
	return text
}

func inferCauses(lower string) []domain.RootCause {
	var causes []domain.RootCause
	for _, rule := range causeRules {
		if containsAny(lower, rule.triggers) {
			causes = append(causes, rule.causes...)
		}
	}
	if len(causes) == 0 {
		causes = append(causes, fallbackCause)
	}
	return causes
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
