package logframe_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/logframe"
	"github.com/aretw0/logframe/pkg/adapters/memory"
	"github.com/aretw0/logframe/pkg/domain"
)

// ExampleEngine_ValidatePathway validates a theory of change that skips the output level.
func ExampleEngine_ValidatePathway() {
	catalog := memory.NewCatalog(domain.ReferenceData{
		PathwayPatterns: []domain.PathwayPattern{{
			Theme:   "FLN",
			Outputs: []string{"Teachers trained"},
		}},
	})
	eng, err := logframe.New(logframe.WithCatalog(catalog))
	if err != nil {
		log.Fatal(err)
	}

	report, err := eng.ValidatePathway(context.Background(), logframe.PathwayRequest{
		Theme: "FLN",
		Nodes: []domain.Node{
			{ID: "A1", Kind: domain.KindActivity, Label: "Coach teachers"},
			{ID: "C1", Kind: domain.KindOutcome, Label: "Better pedagogy"},
		},
		Edges: []domain.Edge{{Source: "A1", Target: "C1"}},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("valid:", report.IsValid)
	for _, issue := range report.Issues {
		fmt.Println(issue)
	}
	fmt.Println(report.Suggestions[0])
	// Output:
	// valid: false
	// Invalid logical jump from activity to outcome: 'Coach teachers' → 'Better pedagogy'
	// Missing 'output' level in Theory of Change.
	// Missing 'impact' level in Theory of Change.
	// Consider adding output: 'Teachers trained' (commonly seen in successful programs).
}

// ExampleEngine_ScoreCompleteness scores a snapshot with one complete section.
func ExampleEngine_ScoreCompleteness() {
	eng, err := logframe.New()
	if err != nil {
		log.Fatal(err)
	}

	report, err := eng.ScoreCompleteness(context.Background(), "org-1", domain.Snapshot{
		domain.SectionOutcomes: map[string]any{"smart_outcomes": []any{"Increase ORF from 20 to 45 wpm"}},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(report.CompletionPercentage)
	fmt.Println(len(report.MissingSections), "sections missing")
	// Output:
	// 20
	// 6 sections missing
}
