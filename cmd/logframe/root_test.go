package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTOC = `theme: FLN
nodes:
  - {id: A1, type: activity, label: Train teachers}
  - {id: O1, type: output, label: Teachers trained}
  - {id: C1, type: outcome, label: Improved reading fluency}
  - {id: I1, type: impact, label: Grade-level literacy}
edges:
  - {source: A1, target: O1}
  - {source: O1, target: C1}
  - {source: C1, target: I1}
`

const skippingTOC = `theme: FLN
nodes:
  - {id: A1, type: activity, label: Train teachers}
  - {id: C1, type: outcome, label: Improved reading fluency}
edges:
  - {source: A1, target: C1}
`

// resetFlags restores every flag to its default between executions of the
// shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "logframe version")
	assert.NotContains(t, out, "\x1b[", "plain output carries no ANSI codes")
}

func TestValidateTOC_JSON(t *testing.T) {
	out, err := execute(t, "validate-toc", "--format", "json", writeInput(t, "toc.yaml", validTOC))
	require.NoError(t, err)

	var report struct {
		IsValid bool     `json:"is_valid"`
		Issues  []string `json:"logic_issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.IsValid)
	assert.Empty(t, report.Issues)
}

func TestValidateTOC_Strict(t *testing.T) {
	path := writeInput(t, "toc.yaml", skippingTOC)

	out, err := execute(t, "validate-toc", path)
	require.NoError(t, err, "without --strict an invalid pathway is still a successful run")
	assert.Contains(t, out, "invalid")

	_, err = execute(t, "validate-toc", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issues")
}

func TestScoreCommand_EmptySnapshot(t *testing.T) {
	out, err := execute(t, "score", "--format", "json", writeInput(t, "snapshot.yaml", "{}\n"))
	require.NoError(t, err)

	var report struct {
		Completion float64  `json:"completion_percentage"`
		Missing    []string `json:"missing_sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Zero(t, report.Completion)
	assert.Len(t, report.Missing, 7)
}

func TestRefineThenRecords(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "refine", "--records-dir", dir, "--org", "org-1", "--format", "json",
		"Students", "lack", "basic", "reading", "skills")
	require.NoError(t, err)

	out, err := execute(t, "records", "--records-dir", dir, "--format", "json", "org-1")
	require.NoError(t, err)

	var recs []struct {
		Operation string `json:"operation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "refine_problem", recs[0].Operation)
}

func TestRecords_NoStore(t *testing.T) {
	_, err := execute(t, "records", "org-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no record store")
}

func TestGraphCommand(t *testing.T) {
	out, err := execute(t, "graph", "--kind", "toc", "--format", "json", writeInput(t, "toc.yaml", validTOC))
	require.NoError(t, err)

	var d struct {
		Source     string `json:"mermaid_diagram"`
		PreviewURL string `json:"mermaid_preview_url"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Contains(t, d.Source, "flowchart LR")

	_, err = execute(t, "graph", "--kind", "pie", writeInput(t, "toc.yaml", validTOC))
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	_, err := execute(t, "version", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestSeed_RequiresRedis(t *testing.T) {
	_, err := execute(t, "seed", "--catalog-file", writeInput(t, "ref.yaml", "{}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--redis")
}

const libraryYAML = `methodology_library:
  - methodology_id: M1
    name: Teacher Coaching
    theme: FLN
    geographies: [bihar]
    budget_range_lakhs: [10, 50]
    components: [Classroom observation]
  - methodology_id: M2
    name: Remedial Camps
    theme: FLN
    geographies: [all]
    budget_range_lakhs: [5, 20]
    components: [Learning camps, Classroom observation]
stakeholder_master:
  - {stakeholder_id: TCH, name: Teachers, themes: [FLN]}
  - {stakeholder_id: EMP, name: Employers, themes: [Career Readiness]}
`

func TestMethodologiesCommand(t *testing.T) {
	catalog := writeInput(t, "ref.yaml", libraryYAML)
	out, err := execute(t, "methodologies", "--catalog-file", catalog, "--format", "json",
		"--theme", "FLN", "--state", "Bihar", "--budget", "15")
	require.NoError(t, err)

	var sel struct {
		Methodologies []struct {
			Name string `json:"name"`
		} `json:"methodologies"`
		Components []struct {
			Component string   `json:"component"`
			UsedIn    []string `json:"used_in"`
		} `json:"component_library"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sel))
	require.Len(t, sel.Methodologies, 2)
	require.Len(t, sel.Components, 2)
	assert.Equal(t, "Classroom observation", sel.Components[0].Component)
	assert.Equal(t, []string{"Teacher Coaching", "Remedial Camps"}, sel.Components[0].UsedIn)

	_, err = execute(t, "methodologies", "--catalog-file", catalog)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--theme")
}

func TestStakeholdersCommand(t *testing.T) {
	out, err := execute(t, "stakeholders", "--catalog-file", writeInput(t, "ref.yaml", libraryYAML), "--format", "json", "FLN")
	require.NoError(t, err)

	var sel struct {
		Available   []json.RawMessage `json:"available_stakeholders"`
		Recommended []string          `json:"recommended_stakeholders"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sel))
	assert.Len(t, sel.Available, 2)
	assert.Equal(t, []string{"TCH"}, sel.Recommended)
}
