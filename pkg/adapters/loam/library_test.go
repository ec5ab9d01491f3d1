package loam_test

import (
	"context"
	"testing"

	"github.com/aretw0/logframe/internal/testutils"
	logframeloam "github.com/aretw0/logframe/pkg/adapters/loam"
	"github.com/aretw0/logframe/pkg/adapters/memory"
	contract "github.com/aretw0/logframe/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureDocs = map[string]string{
	"ecosystem/fln.md": `---
kind: ecosystem_pattern
theme: FLN
core_problem_pattern: foundational literacy
common_effects:
  - Learning loss compounds
  - Early dropout
---
Common framing across state FLN missions.`,
	"toc/fln.md": `---
kind: toc_pattern
theme: FLN
outputs: [Teachers trained]
outcomes: [Improved reading fluency]
---`,
	"states/bihar.md": `---
kind: state_challenges
state: Bihar
education_challenges:
  - challenge: Teacher vacancies
    reason: High pupil-teacher ratio
---`,
	"districts/bihar-gaya.md": `---
kind: district_challenges
state: Bihar
district: Gaya
challenges: [Seasonal migration]
---`,
	"indicators/fln-students.md": `---
kind: indicator_templates
type: student_outcome
theme: FLN
indicator_templates:
  - "% of students reading at grade level"
  - Average ORF (wpm)
---`,
	"indicators/fln-teachers.md": `---
kind: indicator_templates
type: practice_change
theme: FLN
stakeholder_id: TCH
indicator_templates:
  - "% of teachers using structured pedagogy"
---`,
	"library/fln-1-coaching.md": `---
kind: methodology
methodology_id: M1
name: Teacher Coaching
theme: FLN
geographies: [bihar, uttar pradesh]
budget_range_lakhs: [10, 50]
components: [Classroom observation, Coaching cycles]
---`,
	"library/fln-2-camps.md": `---
kind: methodology
methodology_id: M2
name: Remedial Camps
theme: FLN
geographies: [all]
budget_range_lakhs: [5, 20]
components: [Learning camps, Classroom observation]
---`,
	"library/career-labs.md": `---
kind: methodology
methodology_id: M3
name: Career Labs
theme: Career Readiness
geographies: [all]
budget_range_lakhs: [20, 80]
components: [Mentoring]
---`,
	"stakeholders/1-tch.md": `---
kind: stakeholder
stakeholder_id: TCH
name: Teachers
themes: [FLN]
---`,
	"stakeholders/2-hm.md": `---
kind: stakeholder
stakeholder_id: HM
name: Head Masters
themes: [FLN, Career Readiness]
---`,
	"stakeholders/3-emp.md": `---
kind: stakeholder
stakeholder_id: EMP
name: Employers
themes: [Career Readiness]
---`,
	"practices/tch-fln.md": `---
kind: practice_template
stakeholder_id: TCH
theme: FLN
current_practices: [Lecture-based teaching]
desired_practices: [Structured pedagogy with level-based groups]
---`,
	"competencies/fln-1-3.md": `---
kind: competency_framework
theme: FLN
grade_range: "1-3"
competencies:
  - Reads grade-level text with comprehension
  - Solves two-digit addition
---`,
	"policies/1-nep.md": `---
kind: policy_reference
reference: NEP 2020
---`,
	"policies/2-nipun.md": `---
kind: policy_reference
reference: NIPUN Bharat Mission Guidelines
---`,
}

func TestLibrary_Contract(t *testing.T) {
	_, repo := testutils.SetupTestRepo(t)
	testutils.SeedDocs(t, repo, fixtureDocs)

	data, err := logframeloam.New(repo).Load(context.Background())
	require.NoError(t, err)

	contract.CatalogContractTest(t, memory.NewCatalog(data))
}

func TestLibrary_ThemeFromFileName(t *testing.T) {
	_, repo := testutils.SetupTestRepo(t)
	testutils.SeedDocs(t, repo, map[string]string{
		"career-readiness.md": "---\nkind: toc_pattern\noutputs: [Mentors matched]\n---\n",
	})

	data, err := logframeloam.New(repo).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, data.PathwayPatterns, 1)
	assert.Equal(t, "career-readiness", data.PathwayPatterns[0].Theme)
}

func TestLibrary_UnknownKind(t *testing.T) {
	_, repo := testutils.SetupTestRepo(t)
	testutils.SeedDocs(t, repo, map[string]string{
		"odd.md": "---\nkind: budget\n---\n",
	})

	_, err := logframeloam.New(repo).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestNewCatalog_ReadsDirectory(t *testing.T) {
	dir, repo := testutils.SetupTestRepo(t)
	testutils.SeedDocs(t, repo, fixtureDocs)

	c, err := logframeloam.NewCatalog(context.Background(), dir)
	require.NoError(t, err)

	p, err := c.PathwayPattern(context.Background(), "FLN")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, []string{"Teachers trained"}, p.Outputs)
}

func TestLibrary_MethodologyNeedsBudgetRange(t *testing.T) {
	_, repo := testutils.SetupTestRepo(t)
	testutils.SeedDocs(t, repo, map[string]string{
		"library/open.md": "---\nkind: methodology\ntheme: FLN\nbudget_range_lakhs: [10]\n---\n",
	})

	_, err := logframeloam.New(repo).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget_range_lakhs")
}
