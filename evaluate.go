package logframe

import (
	"context"

	"github.com/aretw0/logframe/internal/pathway"
	"github.com/aretw0/logframe/internal/problemtree"
	"github.com/aretw0/logframe/internal/scoring"
	"github.com/aretw0/logframe/pkg/domain"
)

// PathwayRequest is a theory of change submitted for validation.
type PathwayRequest struct {
	OrganizationID string        `json:"organization_id,omitempty" yaml:"organization_id"`
	Theme          string        `json:"theme" yaml:"theme"`
	Nodes          []domain.Node `json:"nodes" yaml:"nodes"`
	Edges          []domain.Edge `json:"edges" yaml:"edges"`
}

// PathwayReport is the verdict on a theory of change.
type PathwayReport struct {
	IsValid     bool     `json:"is_valid"`
	Issues      []string `json:"logic_issues"`
	Suggestions []string `json:"ai_suggestions"`
}

// ValidatePathway checks every edge advances exactly one level and every
// level is present, then compares the labels with the theme's reference
// pattern. Only structural malformation is an error.
func (e *Engine) ValidatePathway(ctx context.Context, req PathwayRequest) (*PathwayReport, error) {
	g, err := domain.NewGraph(req.Nodes, req.Edges)
	if err != nil {
		return nil, err
	}

	ev := e.begin(ctx, domain.OpValidatePathway, req.OrganizationID, req.Theme)
	issues := pathway.Validate(g)
	report := &PathwayReport{
		IsValid:     pathway.IsValid(issues),
		Issues:      issues,
		Suggestions: pathway.DetectGaps(g, ev.pathwayPattern(req.Theme)),
	}
	ev.done(report, len(issues)+len(report.Suggestions), nil)
	return report, nil
}

// DetectGaps compares g with the reference pattern of theme.
// A nil g fails with domain.ErrNilGraph.
func (e *Engine) DetectGaps(ctx context.Context, theme string, g *domain.Graph) ([]string, error) {
	if g == nil {
		return nil, domain.ErrNilGraph
	}
	ev := e.begin(ctx, domain.OpDetectGaps, "", theme)
	gaps := pathway.DetectGaps(g, ev.pathwayPattern(theme))
	ev.done(gaps, len(gaps), nil)
	return gaps, nil
}

// ProblemTreeRequest is a refined problem statement with its root causes.
type ProblemTreeRequest struct {
	OrganizationID string             `json:"organization_id,omitempty" yaml:"organization_id"`
	Theme          string             `json:"theme" yaml:"theme"`
	State          string             `json:"state,omitempty" yaml:"state"`
	District       string             `json:"district,omitempty" yaml:"district"`
	Statement      string             `json:"refined_problem_statement" yaml:"refined_problem_statement"`
	RootCauses     []domain.RootCause `json:"suggested_root_causes" yaml:"suggested_root_causes"`
}

// ProblemTreeReport is a built tree plus the reference context it was checked against.
type ProblemTreeReport struct {
	Tree               domain.ProblemTree       `json:"problem_tree"`
	Warnings           []string                 `json:"validation_feedback"`
	Pattern            *domain.EcosystemPattern `json:"similar_program_pattern"`
	DistrictChallenges []string                 `json:"district_challenges"`
}

// BuildProblemTree assembles the causes -> problem -> effects tree and
// cross-checks the statement with the theme's ecosystem pattern.
func (e *Engine) BuildProblemTree(ctx context.Context, req ProblemTreeRequest) (*ProblemTreeReport, error) {
	ev := e.begin(ctx, domain.OpBuildProblemTree, req.OrganizationID, req.Theme)
	pattern := ev.ecosystemPattern(req.Theme)

	report := &ProblemTreeReport{
		Tree:               problemtree.Build(req.Statement, req.RootCauses, pattern),
		Warnings:           problemtree.CrossCheck(req.Statement, pattern),
		Pattern:            pattern,
		DistrictChallenges: []string{},
	}
	if req.State != "" && req.District != "" {
		report.DistrictChallenges = ev.districtChallenges(req.State, req.District)
	}

	ev.done(report, len(report.Warnings), nil)
	return report, nil
}

// ScoreCompleteness scores how much of the rubric the snapshot fills in.
func (e *Engine) ScoreCompleteness(ctx context.Context, orgID string, snapshot domain.Snapshot) (*domain.CompletenessReport, error) {
	ev := e.begin(ctx, domain.OpScoreCompleteness, orgID, "")
	report := scoring.Score(snapshot, e.rubric)
	score := report.CompletionPercentage
	ev.done(report, len(report.MissingSections), &score)
	return &report, nil
}

// ScoreDesignQuality runs the design quality checks over the snapshot.
func (e *Engine) ScoreDesignQuality(ctx context.Context, orgID string, snapshot domain.Snapshot) (*domain.QualityReport, error) {
	ev := e.begin(ctx, domain.OpScoreQuality, orgID, "")
	report := e.analyzer.Analyze(snapshot)
	score := float64(report.QualityScore)
	ev.done(report, len(report.FeedbackItems), &score)
	return &report, nil
}
