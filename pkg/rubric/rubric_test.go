package rubric

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_WeightsSumTo100(t *testing.T) {
	r := Default()
	if err := r.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v, want nil", err)
	}

	var total float64
	for _, s := range r.Sections {
		total += s.Weight
	}
	if total != TotalWeight {
		t.Errorf("total weight = %g, want %d", total, TotalWeight)
	}
	if len(r.Sections) != 7 {
		t.Errorf("len(Sections) = %d, want 7", len(r.Sections))
	}
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Sections[0].RequiredFields[0] = "mutated"
	a.Sections[0].Weight = 99

	b := Default()
	if b.Sections[0].RequiredFields[0] != "organization_id" {
		t.Errorf("Default() shares field slices between calls")
	}
	if b.Sections[0].Weight != 10 {
		t.Errorf("Default() shares section values between calls")
	}
}

func TestRubric_SectionAndNames(t *testing.T) {
	r := Default()

	s, ok := r.Section("outcomes")
	if !ok {
		t.Fatal("Section(outcomes) not found")
	}
	if s.Weight != 20 {
		t.Errorf("outcomes weight = %g, want 20", s.Weight)
	}

	if _, ok := r.Section("budget"); ok {
		t.Error("Section(budget) should not exist")
	}

	want := []string{
		"organization_profile", "problem_definition", "problem_tree",
		"outcomes", "methodology", "theory_of_change", "measurement",
	}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidate_Defects(t *testing.T) {
	r := Rubric{Sections: []Section{
		{Name: "a", Weight: 60, RequiredFields: []string{"x"}},
		{Name: "a", Weight: 30, RequiredFields: []string{"y"}},
		{Name: "b", Weight: 0},
	}}

	err := r.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	errs := ValidationErrors(err)
	// duplicate a, b weight, b fields, total 90
	if len(errs) != 4 {
		t.Fatalf("Validate() = %d errors, want 4: %v", len(errs), err)
	}

	first, ok := errs[0].(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", errs[0])
	}
	if first.Section != "a" {
		t.Errorf("first defect section = %q, want a", first.Section)
	}
}

func TestValidate_Empty(t *testing.T) {
	if err := (Rubric{}).Validate(); err == nil {
		t.Error("empty rubric should not validate")
	}
}

func TestParse(t *testing.T) {
	doc := []byte(`
sections:
  - name: problem
    weight: 40
    required_fields: [core_problem]
  - name: outcomes
    weight: 60
    required_fields: [smart_outcomes, indicators]
`)
	r, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(r.Sections) != 2 {
		t.Fatalf("len(Sections) = %d, want 2", len(r.Sections))
	}
	if r.Sections[1].RequiredFields[1] != "indicators" {
		t.Errorf("RequiredFields = %v", r.Sections[1].RequiredFields)
	}

	if _, err := Parse([]byte("sections:\n  - name: x\n    weight: 50\n    required_fields: [a]\n")); err == nil {
		t.Error("Parse() should reject weights not summing to 100")
	}
	if _, err := Parse([]byte("sections: [")); err == nil {
		t.Error("Parse() should reject invalid YAML")
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to default", func(t *testing.T) {
		r, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(r.Sections) != len(Default().Sections) {
			t.Errorf("Load() did not return default rubric")
		}
	})

	t.Run("reads override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rubric.yaml")
		content := "sections:\n  - name: only\n    weight: 100\n    required_fields: [a, b]\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		r, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if r.Names()[0] != "only" {
			t.Errorf("Names() = %v", r.Names())
		}
	})
}

func TestQualityRules_Score(t *testing.T) {
	q := DefaultQualityRules()
	tests := []struct {
		items int
		want  int
	}{
		{0, 100},
		{1, 92},
		{12, 4},
		{13, 0},
		{40, 0},
	}
	for _, tt := range tests {
		if got := q.Score(tt.items); got != tt.want {
			t.Errorf("Score(%d) = %d, want %d", tt.items, got, tt.want)
		}
	}
}

func TestDefaultQualityRules_CoversEveryCheck(t *testing.T) {
	q := DefaultQualityRules()
	for _, check := range CheckOrder {
		rule := q.Rule(check)
		if rule.Area == "" || rule.Severity == "" {
			t.Errorf("check %q has incomplete rule %+v", check, rule)
		}
	}
}

func TestQualityRules_Validate(t *testing.T) {
	if err := DefaultQualityRules().Validate(); err != nil {
		t.Fatalf("DefaultQualityRules().Validate() error = %v, want nil", err)
	}

	q := DefaultQualityRules()
	q.Penalty = 0
	q.ChangeChain = nil
	delete(q.Checks, CheckIndicatorValidity)
	rule := q.Checks[CheckOutcomeQuality]
	rule.Suggestion = ""
	q.Checks[CheckOutcomeQuality] = rule

	err := q.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if errs := ValidationErrors(err); len(errs) != 4 {
		t.Fatalf("Validate() = %d errors, want 4: %v", len(ValidationErrors(err)), err)
	}
}
