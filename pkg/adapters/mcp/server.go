// Package mcp exposes the engine as Model Context Protocol tools over stdio.
//
// Structured arguments (nodes, edges, snapshots) are passed as JSON strings.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/logframe"
	"github.com/aretw0/logframe/internal/cli"
	"github.com/aretw0/logframe/internal/presentation/graph"
	"github.com/aretw0/logframe/pkg/domain"
	"github.com/aretw0/logframe/pkg/rubric"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RubricURI is the resource holding the active completeness rubric.
const RubricURI = "logframe://rubric"

// Engine defines the engine calls the MCP server exposes.
type Engine interface {
	ValidatePathway(ctx context.Context, req logframe.PathwayRequest) (*logframe.PathwayReport, error)
	BuildProblemTree(ctx context.Context, req logframe.ProblemTreeRequest) (*logframe.ProblemTreeReport, error)
	ScoreCompleteness(ctx context.Context, orgID string, snapshot domain.Snapshot) (*domain.CompletenessReport, error)
	ScoreDesignQuality(ctx context.Context, orgID string, snapshot domain.Snapshot) (*domain.QualityReport, error)
	RefineProblem(ctx context.Context, orgID, statement string) (*domain.Refinement, error)
	ValidateOutcome(ctx context.Context, req logframe.OutcomeRequest) (*logframe.OutcomeReport, error)
	ValidatePractices(ctx context.Context, req logframe.PracticeRequest) (*logframe.PracticeReport, error)
	SelectMethodologies(ctx context.Context, req logframe.MethodologyRequest) (*logframe.MethodologySelection, error)
	RecommendStakeholders(ctx context.Context, orgID, theme string) (*logframe.StakeholderSelection, error)
	Localize(ctx context.Context, lang string, v any) (any, error)
	Rubric() rubric.Rubric
}

// TheoryOfChangeResponse is a pathway verdict with its flowchart.
type TheoryOfChangeResponse struct {
	logframe.PathwayReport
	graph.Diagram
}

// ProblemTreeResponse is a problem tree with its diagram.
type ProblemTreeResponse struct {
	logframe.ProblemTreeReport
	graph.Diagram
}

// OutcomeResponse is an outcome report with the outcome timeline.
type OutcomeResponse struct {
	logframe.OutcomeReport
	Timeline graph.Diagram `json:"outcome_timeline"`
}

// Server wraps the Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	language  string
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. language is the default
// output language of every tool; a per-call "language" argument overrides it.
func NewServer(engine Engine, language string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		language:  language,
		logger:    logger.With("component", "mcp"),
		mcpServer: server.NewMCPServer("logframe-mcp", strings.TrimSpace(logframe.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	lang := mcp.WithString("language", mcp.Description("Output language code (optional, default from config)"))
	org := mcp.WithString("organization_id", mcp.Description("Organization the evaluation is recorded under (optional)"))

	s.mcpServer.AddTool(mcp.NewTool("validate_theory_of_change",
		mcp.WithDescription("Validate a theory of change: every edge must advance exactly one level (activity -> output -> outcome -> impact) and all four levels must be present. Also lists gaps against the theme's reference pattern."),
		mcp.WithString("theme", mcp.Required(), mcp.Description("Program theme, e.g. FLN")),
		mcp.WithString("nodes", mcp.Required(), mcp.Description(`JSON array of {"id","type","label"}`)),
		mcp.WithString("edges", mcp.Required(), mcp.Description(`JSON array of {"source","target"}`)),
		org, lang,
		mcp.WithOutputSchema[TheoryOfChangeResponse](),
	), mcp.NewStructuredToolHandler(s.handleTheoryOfChange))

	s.mcpServer.AddTool(mcp.NewTool("build_problem_tree",
		mcp.WithDescription("Build a causes -> core problem -> effects tree and cross-check the statement with ecosystem patterns."),
		mcp.WithString("refined_problem_statement", mcp.Required(), mcp.Description("The core problem")),
		mcp.WithString("root_causes", mcp.Description(`JSON array of {"cause","rationale"}`)),
		mcp.WithString("theme", mcp.Description("Program theme")),
		mcp.WithString("state", mcp.Description("State, for district challenges")),
		mcp.WithString("district", mcp.Description("District, for district challenges")),
		org, lang,
		mcp.WithOutputSchema[ProblemTreeResponse](),
	), mcp.NewStructuredToolHandler(s.handleProblemTree))

	s.mcpServer.AddTool(mcp.NewTool("score_completeness",
		mcp.WithDescription("Score how completely a design snapshot fills the LFA rubric."),
		mcp.WithString("snapshot", mcp.Required(), mcp.Description("JSON object mapping rubric sections to their content")),
		org, lang,
		mcp.WithOutputSchema[domain.CompletenessReport](),
	), mcp.NewStructuredToolHandler(s.handleCompleteness))

	s.mcpServer.AddTool(mcp.NewTool("score_design_quality",
		mcp.WithDescription("Run the design quality checks over a snapshot and return the score with feedback items."),
		mcp.WithString("snapshot", mcp.Required(), mcp.Description("JSON object mapping rubric sections to their content")),
		org, lang,
		mcp.WithOutputSchema[domain.QualityReport](),
	), mcp.NewStructuredToolHandler(s.handleQuality))

	s.mcpServer.AddTool(mcp.NewTool("refine_problem",
		mcp.WithDescription("Score the clarity of a raw problem statement and suggest a rewrite with root causes."),
		mcp.WithString("statement", mcp.Required(), mcp.Description("Raw problem statement")),
		org, lang,
		mcp.WithOutputSchema[domain.Refinement](),
	), mcp.NewStructuredToolHandler(s.handleRefine))

	s.mcpServer.AddTool(mcp.NewTool("validate_outcome",
		mcp.WithDescription("Validate a student outcome against SMART heuristics."),
		mcp.WithString("outcome_statement", mcp.Required(), mcp.Description("Outcome statement")),
		mcp.WithNumber("baseline_value", mcp.Required(), mcp.Description("Baseline value")),
		mcp.WithNumber("target_value", mcp.Required(), mcp.Description("Target value")),
		mcp.WithNumber("timeline_months", mcp.Required(), mcp.Description("Timeline in months")),
		mcp.WithString("theme", mcp.Description("Program theme, for aligned competencies")),
		mcp.WithString("grade_range", mcp.Description("Grade range, e.g. 1-3, for aligned competencies")),
		org, lang,
		mcp.WithOutputSchema[OutcomeResponse](),
	), mcp.NewStructuredToolHandler(s.handleOutcome))

	s.mcpServer.AddTool(mcp.NewTool("validate_practice_change",
		mcp.WithDescription("Check a stakeholder's desired practices improve on the current ones and suggest typical practices for the theme."),
		mcp.WithString("stakeholder_id", mcp.Required(), mcp.Description("Stakeholder group, e.g. TCH")),
		mcp.WithString("theme", mcp.Description("Program theme, for practice suggestions")),
		mcp.WithString("current_practices", mcp.Description("JSON array of strings")),
		mcp.WithString("desired_practices", mcp.Description("JSON array of strings")),
		org, lang,
		mcp.WithOutputSchema[logframe.PracticeReport](),
	), mcp.NewStructuredToolHandler(s.handlePractices))

	s.mcpServer.AddTool(mcp.NewTool("select_methodologies",
		mcp.WithDescription("Shortlist the theme's methodologies available in a state within a budget, with the components they use."),
		mcp.WithString("theme", mcp.Required(), mcp.Description("Program theme")),
		mcp.WithString("state", mcp.Description("State the program runs in")),
		mcp.WithNumber("budget_lakhs", mcp.Required(), mcp.Description("Budget in lakhs")),
		org, lang,
		mcp.WithOutputSchema[logframe.MethodologySelection](),
	), mcp.NewStructuredToolHandler(s.handleMethodologies))

	s.mcpServer.AddTool(mcp.NewTool("select_stakeholders",
		mcp.WithDescription("List the stakeholder groups and recommend those that work on a theme."),
		mcp.WithString("theme", mcp.Required(), mcp.Description("Program theme")),
		org, lang,
		mcp.WithOutputSchema[logframe.StakeholderSelection](),
	), mcp.NewStructuredToolHandler(s.handleStakeholders))
}

// Handler methods for structured tools

func (s *Server) handleTheoryOfChange(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (TheoryOfChangeResponse, error) {
	req := logframe.PathwayRequest{
		Theme:          stringArg(args, "theme"),
		OrganizationID: stringArg(args, "organization_id"),
	}
	if err := jsonArg(args, "nodes", &req.Nodes); err != nil {
		return TheoryOfChangeResponse{}, err
	}
	if err := jsonArg(args, "edges", &req.Edges); err != nil {
		return TheoryOfChangeResponse{}, err
	}

	report, err := s.engine.ValidatePathway(ctx, req)
	if err != nil {
		s.logger.Warn("MCP validate_theory_of_change: graph rejected", "error", err, "nodes", len(req.Nodes))
		return TheoryOfChangeResponse{}, fmt.Errorf("validation failed: %w", err)
	}
	return TheoryOfChangeResponse{
		PathwayReport: localize(ctx, s, args, *report),
		Diagram:       graph.NewDiagram(graph.TheoryOfChange(req.Nodes, req.Edges)),
	}, nil
}

func (s *Server) handleProblemTree(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ProblemTreeResponse, error) {
	req := logframe.ProblemTreeRequest{
		OrganizationID: stringArg(args, "organization_id"),
		Theme:          stringArg(args, "theme"),
		State:          stringArg(args, "state"),
		District:       stringArg(args, "district"),
		Statement:      stringArg(args, "refined_problem_statement"),
	}
	if err := jsonArg(args, "root_causes", &req.RootCauses); err != nil {
		return ProblemTreeResponse{}, err
	}

	report, err := s.engine.BuildProblemTree(ctx, req)
	if err != nil {
		return ProblemTreeResponse{}, fmt.Errorf("problem tree failed: %w", err)
	}
	return ProblemTreeResponse{
		ProblemTreeReport: localize(ctx, s, args, *report),
		Diagram:           graph.NewDiagram(graph.ProblemTree(report.Tree)),
	}, nil
}

func (s *Server) handleCompleteness(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.CompletenessReport, error) {
	var snapshot domain.Snapshot
	if err := jsonArg(args, "snapshot", &snapshot); err != nil {
		return domain.CompletenessReport{}, err
	}
	report, err := s.engine.ScoreCompleteness(ctx, stringArg(args, "organization_id"), snapshot)
	if err != nil {
		return domain.CompletenessReport{}, err
	}
	return localize(ctx, s, args, *report), nil
}

func (s *Server) handleQuality(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.QualityReport, error) {
	var snapshot domain.Snapshot
	if err := jsonArg(args, "snapshot", &snapshot); err != nil {
		return domain.QualityReport{}, err
	}
	report, err := s.engine.ScoreDesignQuality(ctx, stringArg(args, "organization_id"), snapshot)
	if err != nil {
		return domain.QualityReport{}, err
	}
	return localize(ctx, s, args, *report), nil
}

func (s *Server) handleRefine(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Refinement, error) {
	r, err := s.engine.RefineProblem(ctx, stringArg(args, "organization_id"), stringArg(args, "statement"))
	if err != nil {
		return domain.Refinement{}, err
	}
	return localize(ctx, s, args, *r), nil
}

func (s *Server) handleOutcome(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (OutcomeResponse, error) {
	req := logframe.OutcomeRequest{
		OrganizationID: stringArg(args, "organization_id"),
		Statement:      stringArg(args, "outcome_statement"),
		Baseline:       numberArg(args, "baseline_value"),
		Target:         numberArg(args, "target_value"),
		TimelineMonths: int(numberArg(args, "timeline_months")),
		Theme:          stringArg(args, "theme"),
		GradeRange:     stringArg(args, "grade_range"),
	}
	r, err := s.engine.ValidateOutcome(ctx, req)
	if err != nil {
		return OutcomeResponse{}, err
	}
	return OutcomeResponse{
		OutcomeReport: localize(ctx, s, args, *r),
		Timeline:      graph.NewDiagram(graph.OutcomeTimeline(req.Statement, req.TimelineMonths)),
	}, nil
}

func (s *Server) handlePractices(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (logframe.PracticeReport, error) {
	req := logframe.PracticeRequest{
		OrganizationID: stringArg(args, "organization_id"),
		Theme:          stringArg(args, "theme"),
	}
	req.StakeholderID = stringArg(args, "stakeholder_id")
	if err := jsonArg(args, "current_practices", &req.CurrentPractices); err != nil {
		return logframe.PracticeReport{}, err
	}
	if err := jsonArg(args, "desired_practices", &req.DesiredPractices); err != nil {
		return logframe.PracticeReport{}, err
	}
	r, err := s.engine.ValidatePractices(ctx, req)
	if err != nil {
		return logframe.PracticeReport{}, err
	}
	return localize(ctx, s, args, *r), nil
}

func (s *Server) handleMethodologies(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (logframe.MethodologySelection, error) {
	r, err := s.engine.SelectMethodologies(ctx, logframe.MethodologyRequest{
		OrganizationID: stringArg(args, "organization_id"),
		Theme:          stringArg(args, "theme"),
		State:          stringArg(args, "state"),
		BudgetLakhs:    numberArg(args, "budget_lakhs"),
	})
	if err != nil {
		return logframe.MethodologySelection{}, err
	}
	return localize(ctx, s, args, *r), nil
}

func (s *Server) handleStakeholders(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (logframe.StakeholderSelection, error) {
	r, err := s.engine.RecommendStakeholders(ctx, stringArg(args, "organization_id"), stringArg(args, "theme"))
	if err != nil {
		return logframe.StakeholderSelection{}, err
	}
	return localize(ctx, s, args, *r), nil
}

func (s *Server) registerResources() {
	// EXPOSE: logframe://rubric
	s.mcpServer.AddResource(mcp.NewResource(RubricURI, "Completeness Rubric",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Rubric())
		if err != nil {
			return nil, fmt.Errorf("failed to encode rubric: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      RubricURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

// localize translates v into the requested language. Diagrams are never localized.
func localize[T any](ctx context.Context, s *Server, args map[string]interface{}, v T) T {
	lang := stringArg(args, "language")
	if lang == "" {
		lang = s.language
	}
	return cli.Localize(ctx, s.engine, lang, v)
}

func stringArg(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

func numberArg(args map[string]interface{}, key string) float64 {
	switch v := args[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	}
	return 0
}

// jsonArg decodes an optional JSON string argument into out.
func jsonArg(args map[string]interface{}, key string, out any) error {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	return nil
}
